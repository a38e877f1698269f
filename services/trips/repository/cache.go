package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/danapr/tumpangan/internal/pkg/constants"
	"github.com/danapr/tumpangan/internal/pkg/database"
	"github.com/danapr/tumpangan/internal/pkg/logger"
	"github.com/danapr/tumpangan/internal/pkg/models"
	"github.com/danapr/tumpangan/internal/utils"
)

// Geohash precision of ~5km cells, matching the search radius
const cacheGeohashPrecision = 5

// SearchCacheRepo caches search results in Redis for a short TTL. The cache
// key buckets origin and destination into geohash cells, so nearby searches
// share entries. Failures are logged and ignored: the cache only ever
// short-circuits the full query, never replaces it.
type SearchCacheRepo struct {
	redisClient *database.RedisClient
	ttl         time.Duration
}

// NewSearchCacheRepository creates a new search cache
func NewSearchCacheRepository(redisClient *database.RedisClient, ttl time.Duration) *SearchCacheRepo {
	return &SearchCacheRepo{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

// Get returns cached results for equivalent criteria, if present
func (r *SearchCacheRepo) Get(ctx context.Context, criteria models.SearchCriteria) ([]*models.Trip, bool) {
	raw, err := r.redisClient.Get(ctx, r.key(criteria))
	if err != nil {
		return nil, false
	}

	var results []*models.Trip
	if err := json.Unmarshal([]byte(raw), &results); err != nil {
		logger.Warn("discarding corrupt search cache entry", logger.Err(err))
		return nil, false
	}

	return results, true
}

// Set stores results for the criteria
func (r *SearchCacheRepo) Set(ctx context.Context, criteria models.SearchCriteria, results []*models.Trip) {
	data, err := json.Marshal(results)
	if err != nil {
		logger.Warn("failed to marshal search results for cache", logger.Err(err))
		return
	}

	if err := r.redisClient.Set(ctx, r.key(criteria), data, r.ttl); err != nil {
		logger.Warn("failed to store search cache entry", logger.Err(err))
	}
}

func (r *SearchCacheRepo) key(criteria models.SearchCriteria) string {
	originCell := utils.EncodeCoordinate(criteria.Origin, cacheGeohashPrecision)
	destCell := utils.EncodeCoordinate(criteria.Destination, cacheGeohashPrecision)

	startBucket := "any"
	if criteria.StartTime != nil {
		// Hour bucket keeps the key space small while honoring the ±2h window
		startBucket = criteria.StartTime.UTC().Format("2006010215")
	}

	price := "any"
	if criteria.MaxPrice != nil {
		price = fmt.Sprintf("%d", *criteria.MaxPrice)
	}

	seats := criteria.SeatsRequired
	if seats < 1 {
		seats = 1
	}

	return fmt.Sprintf(constants.KeyTripSearch,
		fmt.Sprintf("%s:%s:%s:%s:%d", originCell, destCell, startBucket, price, seats))
}
