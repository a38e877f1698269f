package trips

import (
	"context"

	"github.com/google/uuid"

	"github.com/danapr/tumpangan/internal/pkg/models"
)

// TripGW defines the interface for trip event publishing
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/danapr/tumpangan/services/trips TripGW,UserGW
type TripGW interface {
	PublishTripCreated(ctx context.Context, trip *models.Trip) error
	PublishTripUpdated(ctx context.Context, trip *models.Trip) error
	PublishTripDeleted(ctx context.Context, trip *models.Trip) error
	PublishPassengerAdded(ctx context.Context, trip *models.Trip, passengerID uuid.UUID, seats int) error
	PublishPassengerCancelled(ctx context.Context, trip *models.Trip, passengerID uuid.UUID, seats int) error
}

// UserGW defines the identity service lookup consumed by the trip core
type UserGW interface {
	FindUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error)
}
