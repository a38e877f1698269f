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

// CreateTrip publishes a new trip for a fully verified driver. The driver's
// vehicle profile is snapshotted onto the trip so later profile edits never
// change an already published offer.
func (uc *TripUC) CreateTrip(ctx context.Context, req *models.CreateTripRequest, driverID uuid.UUID) (*models.Trip, error) {
	driver, err := uc.userGW.FindUserByID(ctx, driverID)
	if err != nil {
		if apperrors.IsKind(err, apperrors.KindNotFound) {
			return nil, apperrors.Validation("driver not found")
		}
		return nil, err
	}
	if driver.Role != models.RoleDriver {
		return nil, apperrors.Validation("user is not a driver")
	}
	if !driver.IsFullyVerified() {
		return nil, apperrors.Validation("driver is not fully verified")
	}

	if err := validateCreateRequest(req); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	trip := &models.Trip{
		ID:             uuid.New(),
		DriverID:       driverID,
		Origin:         req.Origin,
		Destination:    req.Destination,
		Distance:       req.Distance,
		Duration:       req.Duration,
		Steps:          req.Steps,
		StartTime:      req.StartTime.UTC(),
		Status:         models.TripStatusScheduled,
		AvailableSeats: req.AvailableSeats,
		PricePerSeat:   req.PricePerSeat,
		VehicleInfo:    driver.VehicleSnapshot(),
		Passengers:     []models.PassengerInfo{},
		Version:        1,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := uc.tripRepo.Create(ctx, trip); err != nil {
		return nil, err
	}

	origin := models.Coordinate{Latitude: trip.Origin.Latitude, Longitude: trip.Origin.Longitude}
	destination := models.Coordinate{Latitude: trip.Destination.Latitude, Longitude: trip.Destination.Longitude}
	if err := uc.geoRepo.AddTrip(ctx, trip.ID, origin, destination); err != nil {
		// The trip exists but will not show up in searches until re-indexed
		logger.Warn("failed to index trip endpoints",
			logger.String("trip_id", trip.ID.String()),
			logger.Err(err))
	}

	if err := uc.tripGW.PublishTripCreated(ctx, trip); err != nil {
		logger.Warn("failed to publish trip created event",
			logger.String("trip_id", trip.ID.String()),
			logger.Err(err))
	}

	return trip, nil
}

// GetTrip retrieves a trip by ID
func (uc *TripUC) GetTrip(ctx context.Context, tripID uuid.UUID) (*models.Trip, error) {
	return uc.tripRepo.Get(ctx, tripID)
}

// UpdateTrip applies a driver patch to a trip. Departure time, seats and price
// are frozen once the trip leaves scheduled; status changes must follow the
// forward-only state machine.
func (uc *TripUC) UpdateTrip(ctx context.Context, tripID uuid.UUID, patch *models.TripPatch, requesterID uuid.UUID) (*models.Trip, error) {
	if patch == nil || patch.IsEmpty() {
		return nil, apperrors.Validation("no fields to update")
	}

	updated, err := uc.atomicUpdateWithRetry(ctx, tripID, func(trip *models.Trip) error {
		if trip.DriverID != requesterID {
			return apperrors.Authorization("only the trip driver may update it")
		}

		if trip.Status != models.TripStatusScheduled && patch.TouchesFrozenFields() {
			return apperrors.State(fmt.Sprintf("trip details are frozen in status %s", trip.Status))
		}

		if patch.StartTime != nil {
			if !patch.StartTime.After(time.Now()) {
				return apperrors.Validation("start time must be in the future")
			}
			trip.StartTime = patch.StartTime.UTC()
		}
		if patch.AvailableSeats != nil {
			if *patch.AvailableSeats < 1 || *patch.AvailableSeats > models.MaxSeats {
				return apperrors.Validation(fmt.Sprintf("available seats must be between 1 and %d", models.MaxSeats))
			}
			trip.AvailableSeats = *patch.AvailableSeats
			if trip.BookedSeats() > trip.TotalSeats() {
				return apperrors.Capacity("cannot reduce seats below confirmed reservations")
			}
		}
		if patch.PricePerSeat != nil {
			if *patch.PricePerSeat < 0 || *patch.PricePerSeat > models.MaxPricePerSeat {
				return apperrors.Validation("price per seat is out of range")
			}
			trip.PricePerSeat = *patch.PricePerSeat
		}
		if patch.Status != nil {
			if !patch.Status.IsValid() {
				return apperrors.Validation(fmt.Sprintf("unknown trip status %s", *patch.Status))
			}
			if !trip.Status.CanTransitionTo(*patch.Status) {
				return apperrors.State(fmt.Sprintf("cannot transition trip from %s to %s", trip.Status, *patch.Status))
			}
			trip.Status = *patch.Status
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if updated.Status != models.TripStatusScheduled {
		// Once the trip is no longer bookable it must disappear from search
		if err := uc.geoRepo.RemoveTrip(ctx, updated.ID); err != nil {
			logger.Warn("failed to deregister trip endpoints",
				logger.String("trip_id", updated.ID.String()),
				logger.Err(err))
		}
	}

	if err := uc.tripGW.PublishTripUpdated(ctx, updated); err != nil {
		logger.Warn("failed to publish trip updated event",
			logger.String("trip_id", updated.ID.String()),
			logger.Err(err))
	}

	return updated, nil
}

// DeleteTrip removes a trip. Drivers may only delete their own trips and only
// while no confirmed reservations exist; admins may delete unconditionally.
func (uc *TripUC) DeleteTrip(ctx context.Context, tripID uuid.UUID, requesterID uuid.UUID, isAdmin bool) error {
	trip, err := uc.tripRepo.Get(ctx, tripID)
	if err != nil {
		return err
	}

	if !isAdmin {
		if trip.DriverID != requesterID {
			return apperrors.Authorization("only the trip driver may delete it")
		}
		if trip.BookedSeats() > 0 {
			return apperrors.Conflict("trip has confirmed passengers")
		}
	}

	if err := uc.tripRepo.Delete(ctx, tripID); err != nil {
		return err
	}

	if err := uc.geoRepo.RemoveTrip(ctx, tripID); err != nil {
		logger.Warn("failed to deregister trip endpoints",
			logger.String("trip_id", tripID.String()),
			logger.Err(err))
	}

	if err := uc.tripGW.PublishTripDeleted(ctx, trip); err != nil {
		logger.Warn("failed to publish trip deleted event",
			logger.String("trip_id", tripID.String()),
			logger.Err(err))
	}

	return nil
}

// ListDriverTrips returns the trips published by a driver, newest first
func (uc *TripUC) ListDriverTrips(ctx context.Context, driverID uuid.UUID, status *models.TripStatus) ([]*models.Trip, error) {
	return uc.tripRepo.Find(ctx, models.TripFilter{
		DriverID: &driverID,
		Status:   status,
		SortDesc: true,
	})
}

// ListPassengerTrips returns the trips a passenger holds a reservation on,
// cancelled records included, newest first
func (uc *TripUC) ListPassengerTrips(ctx context.Context, passengerID uuid.UUID, status *models.TripStatus) ([]*models.Trip, error) {
	return uc.tripRepo.Find(ctx, models.TripFilter{
		PassengerID: &passengerID,
		Status:      status,
		SortDesc:    true,
	})
}

func validateCreateRequest(req *models.CreateTripRequest) error {
	origin := models.Coordinate{Latitude: req.Origin.Latitude, Longitude: req.Origin.Longitude}
	destination := models.Coordinate{Latitude: req.Destination.Latitude, Longitude: req.Destination.Longitude}

	if !utils.ValidCoordinate(origin) || !utils.ValidCoordinate(destination) {
		return apperrors.Validation("origin or destination coordinates are out of range")
	}
	if !req.StartTime.After(time.Now()) {
		return apperrors.Validation("start time must be in the future")
	}
	if req.AvailableSeats < 1 || req.AvailableSeats > models.MaxSeats {
		return apperrors.Validation(fmt.Sprintf("available seats must be between 1 and %d", models.MaxSeats))
	}
	if req.PricePerSeat < 0 || req.PricePerSeat > models.MaxPricePerSeat {
		return apperrors.Validation("price per seat is out of range")
	}

	return nil
}
