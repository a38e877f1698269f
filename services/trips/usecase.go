package trips

import (
	"context"

	"github.com/google/uuid"

	"github.com/danapr/tumpangan/internal/pkg/models"
)

// TripUC defines the interface for trip business logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/danapr/tumpangan/services/trips TripUC
type TripUC interface {
	CreateTrip(ctx context.Context, req *models.CreateTripRequest, driverID uuid.UUID) (*models.Trip, error)
	GetTrip(ctx context.Context, tripID uuid.UUID) (*models.Trip, error)
	UpdateTrip(ctx context.Context, tripID uuid.UUID, patch *models.TripPatch, requesterID uuid.UUID) (*models.Trip, error)
	DeleteTrip(ctx context.Context, tripID uuid.UUID, requesterID uuid.UUID, isAdmin bool) error
	ListDriverTrips(ctx context.Context, driverID uuid.UUID, status *models.TripStatus) ([]*models.Trip, error)
	ListPassengerTrips(ctx context.Context, passengerID uuid.UUID, status *models.TripStatus) ([]*models.Trip, error)

	AddPassenger(ctx context.Context, tripID, passengerID uuid.UUID, seats int, pickup, dropoff *models.Point) (*models.Trip, error)
	CancelPassenger(ctx context.Context, tripID, passengerID uuid.UUID) (*models.Trip, error)

	SearchTrips(ctx context.Context, criteria models.SearchCriteria) ([]*models.Trip, error)
}
