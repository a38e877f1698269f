package models

import (
	"time"

	"github.com/google/uuid"
)

// TripStatus represents the current status of a trip
type TripStatus string

const (
	TripStatusScheduled TripStatus = "scheduled"
	TripStatusOngoing   TripStatus = "ongoing"
	TripStatusCompleted TripStatus = "completed"
	TripStatusCancelled TripStatus = "cancelled"
)

// PassengerStatus represents the status of a passenger reservation
type PassengerStatus string

const (
	PassengerStatusConfirmed PassengerStatus = "confirmed"
	PassengerStatusCancelled PassengerStatus = "cancelled"
)

// Trip limits
const (
	MaxSeats           = 16
	MaxSeatsPerBooking = 10
	MaxPricePerSeat    = 10000000 // minor currency units
	DefaultTotalSeats  = 4
)

// Coordinate is a bare latitude/longitude pair
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Point is a geographical point with a human readable address
type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}

// Distance holds an externally computed distance (meters plus display text)
type Distance struct {
	Value float64 `json:"value"`
	Text  string  `json:"text"`
}

// Duration holds an externally computed duration (seconds plus display text)
type Duration struct {
	Value int     `json:"value"`
	Text  string  `json:"text"`
}

// RouteStep is a single turn instruction of the externally computed route
type RouteStep struct {
	Instruction string     `json:"instruction"`
	Distance    Distance   `json:"distance"`
	Start       Coordinate `json:"start_location"`
	End         Coordinate `json:"end_location"`
}

// VehicleInfo is a snapshot of the driver's vehicle taken at trip creation.
// Later driver profile edits never alter it.
type VehicleInfo struct {
	CarPlate string `json:"car_plate"`
	CarModel string `json:"car_model"`
	Seats    int    `json:"seats"`
}

// PassengerInfo is a single reservation record. Records are appended on booking
// and flipped to cancelled on cancellation, never removed.
type PassengerInfo struct {
	PassengerID uuid.UUID       `json:"passenger_id"`
	Seats       int             `json:"seats"`
	Status      PassengerStatus `json:"status"`
	Pickup      *Point          `json:"pickup_location,omitempty"`
	Dropoff     *Point          `json:"dropoff_location,omitempty"`
	ReservedAt  time.Time       `json:"reserved_at"`
	CancelledAt *time.Time      `json:"cancelled_at,omitempty"`
}

// Trip represents a driver published ride offer
type Trip struct {
	ID             uuid.UUID       `json:"id" db:"id"`
	DriverID       uuid.UUID       `json:"driver_id" db:"driver_id"`
	Origin         Point           `json:"origin"`
	Destination    Point           `json:"destination"`
	Distance       Distance        `json:"distance"`
	Duration       Duration        `json:"duration"`
	Steps          []RouteStep     `json:"steps"`
	StartTime      time.Time       `json:"start_time" db:"start_time"`
	Status         TripStatus      `json:"status" db:"status"`
	AvailableSeats int             `json:"available_seats" db:"available_seats"`
	PricePerSeat   int64           `json:"price_per_seat" db:"price_per_seat"`
	VehicleInfo    *VehicleInfo    `json:"vehicle_info,omitempty"`
	Passengers     []PassengerInfo `json:"passengers"`
	Version        int64           `json:"-" db:"version"`
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at" db:"updated_at"`
}

// TotalSeats returns the bookable capacity of the trip: the vehicle snapshot
// seats when known, otherwise the driver declared seats, otherwise a default.
func (t *Trip) TotalSeats() int {
	if t.VehicleInfo != nil && t.VehicleInfo.Seats > 0 {
		return t.VehicleInfo.Seats
	}
	if t.AvailableSeats > 0 {
		return t.AvailableSeats
	}
	return DefaultTotalSeats
}

// BookedSeats sums the seats of confirmed reservation records
func (t *Trip) BookedSeats() int {
	total := 0
	for _, p := range t.Passengers {
		if p.Status == PassengerStatusConfirmed {
			total += p.Seats
		}
	}
	return total
}

// RemainingSeats returns the seats still open for booking
func (t *Trip) RemainingSeats() int {
	return t.TotalSeats() - t.BookedSeats()
}

// IsFull reports whether the trip has no remaining capacity
func (t *Trip) IsFull() bool {
	return t.BookedSeats() >= t.TotalSeats()
}

// ActiveReservation returns the confirmed reservation of the given passenger,
// or nil when every record of that passenger is cancelled
func (t *Trip) ActiveReservation(passengerID uuid.UUID) *PassengerInfo {
	for i := range t.Passengers {
		if t.Passengers[i].PassengerID == passengerID && t.Passengers[i].Status == PassengerStatusConfirmed {
			return &t.Passengers[i]
		}
	}
	return nil
}

// IsTerminal reports whether the status accepts no further mutations
func (s TripStatus) IsTerminal() bool {
	return s == TripStatusCompleted || s == TripStatusCancelled
}

// IsValid reports whether the status is one of the known lifecycle states
func (s TripStatus) IsValid() bool {
	switch s {
	case TripStatusScheduled, TripStatusOngoing, TripStatusCompleted, TripStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether the state machine allows moving to next.
// Transitions are monotone: scheduled -> ongoing -> completed, and
// scheduled|ongoing -> cancelled. Nothing re-enters scheduled.
func (s TripStatus) CanTransitionTo(next TripStatus) bool {
	switch s {
	case TripStatusScheduled:
		return next == TripStatusOngoing || next == TripStatusCancelled
	case TripStatusOngoing:
		return next == TripStatusCompleted || next == TripStatusCancelled
	}
	return false
}

// TripPatch carries the fields a driver may change on an existing trip.
// Nil pointers mean "leave untouched".
type TripPatch struct {
	StartTime      *time.Time  `json:"start_time,omitempty"`
	AvailableSeats *int        `json:"available_seats,omitempty"`
	PricePerSeat   *int64      `json:"price_per_seat,omitempty"`
	Status         *TripStatus `json:"status,omitempty"`
}

// TouchesFrozenFields reports whether the patch modifies fields that are
// frozen once the trip has progressed past scheduled
func (p *TripPatch) TouchesFrozenFields() bool {
	return p.StartTime != nil || p.AvailableSeats != nil || p.PricePerSeat != nil
}

// IsEmpty reports whether the patch changes nothing
func (p *TripPatch) IsEmpty() bool {
	return p.StartTime == nil && p.AvailableSeats == nil && p.PricePerSeat == nil && p.Status == nil
}

// SearchCriteria describes a passenger trip search
type SearchCriteria struct {
	Origin        Coordinate
	Destination   Coordinate
	StartTime     *time.Time
	MaxPrice      *int64
	SeatsRequired int
}

// TripFilter is the attribute filter of the trip store query operation
type TripFilter struct {
	DriverID    *uuid.UUID
	PassengerID *uuid.UUID
	Status      *TripStatus
	StartAfter  *time.Time
	StartBefore *time.Time
	MaxPrice    *int64
	SortDesc    bool
	Limit       int
	Offset      int
}
