package trips

import (
	"context"

	"github.com/google/uuid"

	"github.com/danapr/tumpangan/internal/pkg/models"
)

// Mutator modifies a trip in place inside an atomic update. Returning an
// error aborts the update without persisting anything.
type Mutator func(trip *models.Trip) error

// TripRepo defines the interface for trip data access operations
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/danapr/tumpangan/services/trips TripRepo,GeoRepo,SearchCache
type TripRepo interface {
	Create(ctx context.Context, trip *models.Trip) error
	Get(ctx context.Context, tripID uuid.UUID) (*models.Trip, error)
	GetMany(ctx context.Context, tripIDs []uuid.UUID) ([]*models.Trip, error)
	Delete(ctx context.Context, tripID uuid.UUID) error
	Find(ctx context.Context, filter models.TripFilter) ([]*models.Trip, error)

	// AtomicUpdate loads the trip, applies the mutator and persists the
	// result guarded by the trip's version. A concurrent write between load
	// and persist yields a conflict error.
	AtomicUpdate(ctx context.Context, tripID uuid.UUID, mutate Mutator) (*models.Trip, error)
}

// GeoRepo defines the geo-index operations for trip endpoints
type GeoRepo interface {
	AddTrip(ctx context.Context, tripID uuid.UUID, origin, destination models.Coordinate) error
	RemoveTrip(ctx context.Context, tripID uuid.UUID) error
	// TripsNearOrigin and TripsNearDestination are deliberately independent
	// proximity predicates.
	TripsNearOrigin(ctx context.Context, point models.Coordinate, radiusKm float64) ([]uuid.UUID, error)
	TripsNearDestination(ctx context.Context, point models.Coordinate, radiusKm float64) ([]uuid.UUID, error)
}

// SearchCache caches ranked search results for a short TTL
type SearchCache interface {
	Get(ctx context.Context, criteria models.SearchCriteria) ([]*models.Trip, bool)
	Set(ctx context.Context, criteria models.SearchCriteria, results []*models.Trip)
}
