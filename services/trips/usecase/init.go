package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/danapr/tumpangan/internal/pkg/apperrors"
	"github.com/danapr/tumpangan/internal/pkg/models"
	"github.com/danapr/tumpangan/services/trips"
)

// TripUC implements the trips.TripUC interface
type TripUC struct {
	cfg      *models.Config
	tripRepo trips.TripRepo
	geoRepo  trips.GeoRepo
	cache    trips.SearchCache
	tripGW   trips.TripGW
	userGW   trips.UserGW
}

// NewTripUC creates a new trip usecase
func NewTripUC(
	cfg *models.Config,
	tripRepo trips.TripRepo,
	geoRepo trips.GeoRepo,
	cache trips.SearchCache,
	tripGW trips.TripGW,
	userGW trips.UserGW,
) *TripUC {
	return &TripUC{
		cfg:      cfg,
		tripRepo: tripRepo,
		geoRepo:  geoRepo,
		cache:    cache,
		tripGW:   tripGW,
		userGW:   userGW,
	}
}

// atomicUpdateWithRetry drives an atomic update through bounded retries.
// Only version conflicts are retried; every other error aborts immediately.
func (uc *TripUC) atomicUpdateWithRetry(ctx context.Context, tripID uuid.UUID, mutate trips.Mutator) (*models.Trip, error) {
	retries := uc.cfg.Trips.BookingRetries
	if retries < 1 {
		retries = 1
	}

	var (
		trip *models.Trip
		err  error
	)
	for attempt := 0; attempt < retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, apperrors.Timeout("trip update cancelled", ctx.Err())
			case <-time.After(time.Duration(attempt) * 10 * time.Millisecond):
			}
		}

		trip, err = uc.tripRepo.AtomicUpdate(ctx, tripID, mutate)
		if err == nil || !apperrors.IsKind(err, apperrors.KindConflict) {
			return trip, err
		}
	}

	return nil, err
}
