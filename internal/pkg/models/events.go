package models

import (
	"time"

	"github.com/google/uuid"
)

// TripEvent is published on trip lifecycle changes
type TripEvent struct {
	TripID     uuid.UUID  `json:"trip_id"`
	DriverID   uuid.UUID  `json:"driver_id"`
	Status     TripStatus `json:"status"`
	StartTime  time.Time  `json:"start_time"`
	OccurredAt time.Time  `json:"occurred_at"`
}

// PassengerEvent is published on booking and cancellation
type PassengerEvent struct {
	TripID      uuid.UUID `json:"trip_id"`
	PassengerID uuid.UUID `json:"passenger_id"`
	Seats       int       `json:"seats"`
	BookedSeats int       `json:"booked_seats"`
	OccurredAt  time.Time `json:"occurred_at"`
}
