package gateway

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/danapr/tumpangan/internal/pkg/constants"
	"github.com/danapr/tumpangan/internal/pkg/models"
	natspkg "github.com/danapr/tumpangan/internal/pkg/nats"
)

// TripGW publishes trip events to NATS
type TripGW struct {
	producer *natspkg.Producer
}

// NewTripGW creates a new trip event gateway
func NewTripGW(client *natspkg.Client) *TripGW {
	return &TripGW{
		producer: natspkg.NewProducer(client),
	}
}

// PublishTripCreated announces a newly published trip
func (g *TripGW) PublishTripCreated(_ context.Context, trip *models.Trip) error {
	return g.producer.Publish(constants.SubjectTripCreated, tripEvent(trip))
}

// PublishTripUpdated announces a trip detail or status change
func (g *TripGW) PublishTripUpdated(_ context.Context, trip *models.Trip) error {
	return g.producer.Publish(constants.SubjectTripUpdated, tripEvent(trip))
}

// PublishTripDeleted announces a trip removal
func (g *TripGW) PublishTripDeleted(_ context.Context, trip *models.Trip) error {
	return g.producer.Publish(constants.SubjectTripDeleted, tripEvent(trip))
}

// PublishPassengerAdded announces a confirmed reservation
func (g *TripGW) PublishPassengerAdded(_ context.Context, trip *models.Trip, passengerID uuid.UUID, seats int) error {
	return g.producer.Publish(constants.SubjectPassengerAdded, passengerEvent(trip, passengerID, seats))
}

// PublishPassengerCancelled announces a reservation cancellation
func (g *TripGW) PublishPassengerCancelled(_ context.Context, trip *models.Trip, passengerID uuid.UUID, seats int) error {
	return g.producer.Publish(constants.SubjectPassengerCancelled, passengerEvent(trip, passengerID, seats))
}

func tripEvent(trip *models.Trip) *models.TripEvent {
	return &models.TripEvent{
		TripID:     trip.ID,
		DriverID:   trip.DriverID,
		Status:     trip.Status,
		StartTime:  trip.StartTime,
		OccurredAt: time.Now().UTC(),
	}
}

func passengerEvent(trip *models.Trip, passengerID uuid.UUID, seats int) *models.PassengerEvent {
	return &models.PassengerEvent{
		TripID:      trip.ID,
		PassengerID: passengerID,
		Seats:       seats,
		BookedSeats: trip.BookedSeats(),
		OccurredAt:  time.Now().UTC(),
	}
}
