package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/danapr/tumpangan/internal/pkg/apperrors"
	"github.com/danapr/tumpangan/internal/pkg/logger"
	"github.com/danapr/tumpangan/internal/pkg/models"
	"github.com/danapr/tumpangan/internal/utils"
)

// AddPassenger reserves seats on a scheduled trip. The reservation check and
// append run inside a version-guarded update so concurrent bookings can never
// push confirmed seats past the trip capacity.
func (uc *TripUC) AddPassenger(ctx context.Context, tripID, passengerID uuid.UUID, seats int, pickup, dropoff *models.Point) (*models.Trip, error) {
	if seats < 1 {
		return nil, apperrors.Validation("seats must be at least 1")
	}
	if seats > models.MaxSeatsPerBooking {
		return nil, apperrors.Validation(fmt.Sprintf("cannot reserve more than %d seats in one booking", models.MaxSeatsPerBooking))
	}
	if err := validateBookingPoints(pickup, dropoff); err != nil {
		return nil, err
	}

	passenger, err := uc.userGW.FindUserByID(ctx, passengerID)
	if err != nil {
		if apperrors.IsKind(err, apperrors.KindNotFound) {
			return nil, apperrors.Validation("passenger not found")
		}
		return nil, err
	}
	if passenger.Role != models.RolePassenger {
		return nil, apperrors.Validation("user is not a passenger")
	}

	updated, err := uc.atomicUpdateWithRetry(ctx, tripID, func(trip *models.Trip) error {
		if trip.Status != models.TripStatusScheduled {
			return apperrors.State(fmt.Sprintf("trip is not open for booking in status %s", trip.Status))
		}
		if trip.ActiveReservation(passengerID) != nil {
			return apperrors.Validation("passenger already has an active reservation on this trip")
		}
		if trip.BookedSeats()+seats > trip.TotalSeats() {
			return apperrors.Capacity(fmt.Sprintf("trip has %d seats remaining", trip.RemainingSeats()))
		}

		trip.Passengers = append(trip.Passengers, models.PassengerInfo{
			PassengerID: passengerID,
			Seats:       seats,
			Status:      models.PassengerStatusConfirmed,
			Pickup:      pickup,
			Dropoff:     dropoff,
			ReservedAt:  time.Now().UTC(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := uc.tripGW.PublishPassengerAdded(ctx, updated, passengerID, seats); err != nil {
		logger.Warn("failed to publish passenger added event",
			logger.String("trip_id", updated.ID.String()),
			logger.String("passenger_id", passengerID.String()),
			logger.Err(err))
	}

	return updated, nil
}

// CancelPassenger flips the passenger's confirmed reservation to cancelled,
// releasing the seats. The record itself stays on the trip for history.
func (uc *TripUC) CancelPassenger(ctx context.Context, tripID, passengerID uuid.UUID) (*models.Trip, error) {
	var cancelledSeats int

	updated, err := uc.atomicUpdateWithRetry(ctx, tripID, func(trip *models.Trip) error {
		if trip.Status.IsTerminal() {
			return apperrors.State(fmt.Sprintf("trip in status %s accepts no reservation changes", trip.Status))
		}

		reservation := trip.ActiveReservation(passengerID)
		if reservation == nil {
			return apperrors.NotFound("passenger has no active reservation on this trip")
		}

		now := time.Now().UTC()
		reservation.Status = models.PassengerStatusCancelled
		reservation.CancelledAt = &now
		cancelledSeats = reservation.Seats
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := uc.tripGW.PublishPassengerCancelled(ctx, updated, passengerID, cancelledSeats); err != nil {
		logger.Warn("failed to publish passenger cancelled event",
			logger.String("trip_id", updated.ID.String()),
			logger.String("passenger_id", passengerID.String()),
			logger.Err(err))
	}

	return updated, nil
}

func validateBookingPoints(points ...*models.Point) error {
	for _, p := range points {
		if p == nil {
			continue
		}
		coord := models.Coordinate{Latitude: p.Latitude, Longitude: p.Longitude}
		if !utils.ValidCoordinate(coord) {
			return apperrors.Validation("pickup or dropoff coordinates are out of range")
		}
	}
	return nil
}
