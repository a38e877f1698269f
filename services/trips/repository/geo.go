package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/danapr/tumpangan/internal/pkg/constants"
	"github.com/danapr/tumpangan/internal/pkg/database"
	"github.com/danapr/tumpangan/internal/pkg/models"
)

// GeoRepo indexes trip origins and destinations in two Redis geo sets.
// The two sets are queried independently: proximity to the requested origin
// and proximity to the requested destination are separate predicates.
type GeoRepo struct {
	redisClient *database.RedisClient
}

// NewGeoRepository creates a new geo index repository
func NewGeoRepository(redisClient *database.RedisClient) *GeoRepo {
	return &GeoRepo{redisClient: redisClient}
}

// AddTrip registers the trip's endpoints in the geo index
func (r *GeoRepo) AddTrip(ctx context.Context, tripID uuid.UUID, origin, destination models.Coordinate) error {
	member := tripID.String()

	if err := r.redisClient.GeoAdd(ctx, constants.KeyTripOriginGeo, origin.Longitude, origin.Latitude, member); err != nil {
		return fmt.Errorf("failed to index trip origin: %w", err)
	}
	if err := r.redisClient.GeoAdd(ctx, constants.KeyTripDestinationGeo, destination.Longitude, destination.Latitude, member); err != nil {
		return fmt.Errorf("failed to index trip destination: %w", err)
	}

	return nil
}

// RemoveTrip deregisters the trip's endpoints from the geo index
func (r *GeoRepo) RemoveTrip(ctx context.Context, tripID uuid.UUID) error {
	member := tripID.String()

	if err := r.redisClient.GeoRemove(ctx, constants.KeyTripOriginGeo, member); err != nil {
		return fmt.Errorf("failed to remove trip origin: %w", err)
	}
	if err := r.redisClient.GeoRemove(ctx, constants.KeyTripDestinationGeo, member); err != nil {
		return fmt.Errorf("failed to remove trip destination: %w", err)
	}

	return nil
}

// TripsNearOrigin returns ids of trips whose origin lies within radiusKm of the point
func (r *GeoRepo) TripsNearOrigin(ctx context.Context, point models.Coordinate, radiusKm float64) ([]uuid.UUID, error) {
	return r.tripsNear(ctx, constants.KeyTripOriginGeo, point, radiusKm)
}

// TripsNearDestination returns ids of trips whose destination lies within radiusKm of the point
func (r *GeoRepo) TripsNearDestination(ctx context.Context, point models.Coordinate, radiusKm float64) ([]uuid.UUID, error) {
	return r.tripsNear(ctx, constants.KeyTripDestinationGeo, point, radiusKm)
}

func (r *GeoRepo) tripsNear(ctx context.Context, key string, point models.Coordinate, radiusKm float64) ([]uuid.UUID, error) {
	locations, err := r.redisClient.GeoRadius(ctx, key, point.Longitude, point.Latitude, radiusKm, "km")
	if err != nil {
		return nil, fmt.Errorf("failed to query geo index: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(locations))
	for _, loc := range locations {
		id, err := uuid.Parse(loc.Name)
		if err != nil {
			// Skip malformed members rather than failing the search
			continue
		}
		ids = append(ids, id)
	}

	return ids, nil
}
