package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danapr/tumpangan/internal/pkg/apperrors"
	"github.com/danapr/tumpangan/internal/pkg/models"
	"github.com/danapr/tumpangan/internal/utils"
)

const (
	defaultSearchRadiusKm  = 5.0
	defaultTimeWindowHours = 2
)

// SearchTrips matches scheduled trips against passenger criteria. Proximity
// to the requested origin and to the requested destination are evaluated as
// two independent radius queries; a trip must satisfy both. The remaining
// criteria (departure window, price ceiling, free seats) are filtered on the
// candidate set.
func (uc *TripUC) SearchTrips(ctx context.Context, criteria models.SearchCriteria) ([]*models.Trip, error) {
	if !utils.ValidCoordinate(criteria.Origin) || !utils.ValidCoordinate(criteria.Destination) {
		return nil, apperrors.Validation("origin or destination coordinates are out of range")
	}
	if criteria.SeatsRequired < 1 {
		criteria.SeatsRequired = 1
	}
	if criteria.MaxPrice != nil && *criteria.MaxPrice < 0 {
		return nil, apperrors.Validation("max price must not be negative")
	}

	if cached, ok := uc.cache.Get(ctx, criteria); ok {
		return cached, nil
	}

	radius := uc.cfg.Trips.SearchRadiusKm
	if radius <= 0 {
		radius = defaultSearchRadiusKm
	}

	nearOrigin, err := uc.geoRepo.TripsNearOrigin(ctx, criteria.Origin, radius)
	if err != nil {
		return nil, err
	}
	nearDestination, err := uc.geoRepo.TripsNearDestination(ctx, criteria.Destination, radius)
	if err != nil {
		return nil, err
	}

	candidates := intersectIDs(nearOrigin, nearDestination)
	if len(candidates) == 0 {
		results := []*models.Trip{}
		uc.cache.Set(ctx, criteria, results)
		return results, nil
	}

	trips, err := uc.tripRepo.GetMany(ctx, candidates)
	if err != nil {
		return nil, err
	}

	results := make([]*models.Trip, 0, len(trips))
	for _, trip := range trips {
		if uc.matches(trip, criteria) {
			results = append(results, trip)
		}
	}

	// Earliest departure first, ties broken by id for a stable order
	sort.Slice(results, func(i, j int) bool {
		if results[i].StartTime.Equal(results[j].StartTime) {
			return strings.Compare(results[i].ID.String(), results[j].ID.String()) < 0
		}
		return results[i].StartTime.Before(results[j].StartTime)
	})

	uc.cache.Set(ctx, criteria, results)
	return results, nil
}

func (uc *TripUC) matches(trip *models.Trip, criteria models.SearchCriteria) bool {
	if trip.Status != models.TripStatusScheduled {
		return false
	}
	if trip.RemainingSeats() < criteria.SeatsRequired {
		return false
	}
	if criteria.MaxPrice != nil && trip.PricePerSeat > *criteria.MaxPrice {
		return false
	}
	if criteria.StartTime != nil {
		window := uc.cfg.Trips.TimeWindowHours
		if window <= 0 {
			window = defaultTimeWindowHours
		}
		delta := time.Duration(window) * time.Hour
		if trip.StartTime.Before(criteria.StartTime.Add(-delta)) || trip.StartTime.After(criteria.StartTime.Add(delta)) {
			return false
		}
	}
	return true
}

func intersectIDs(a, b []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(a))
	for _, id := range a {
		seen[id] = struct{}{}
	}

	var result []uuid.UUID
	for _, id := range b {
		if _, ok := seen[id]; ok {
			result = append(result, id)
			delete(seen, id)
		}
	}
	return result
}
