package service

import (
	"context"
	"sync"
	"time"

	"github.com/Neurvinch/rageBetAds/internal/domain"
)

// DefaultCacheTTL is the freshness window for stored predictions.
const DefaultCacheTTL = 6 * time.Hour

type cacheEntry struct {
	prediction *domain.Prediction
	insertedAt time.Time
}

// PredictionCache memoizes predictions per match id within a freshness
// window. There is no single-flight: concurrent requests for the same
// uncached id may each run the compute function; the last write wins and the
// results are equivalent, so that is redundant work, not an error. The mutex
// guards the map structure only. Entries are never evicted, only overwritten
// after expiry; the key space is bounded by the matches queried.
type PredictionCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewPredictionCache(ttl time.Duration) *PredictionCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &PredictionCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// GetOrCompute returns the cached prediction for matchID if one exists and is
// younger than the freshness window, reporting a cache hit. Otherwise it runs
// compute, stores the result, and reports a miss. A compute error is returned
// as-is and nothing is stored.
func (c *PredictionCache) GetOrCompute(ctx context.Context, matchID string, compute func(ctx context.Context) (*domain.Prediction, error)) (*domain.Prediction, bool, error) {
	if p, ok := c.Get(matchID); ok {
		return p, true, nil
	}

	p, err := compute(ctx)
	if err != nil {
		return nil, false, err
	}

	c.mu.Lock()
	c.entries[matchID] = cacheEntry{prediction: p, insertedAt: c.now()}
	c.mu.Unlock()

	return p, false, nil
}

// Get returns the cached prediction for matchID if it is still fresh.
// Expired entries are left in place; they become eligible for overwrite on
// the next GetOrCompute.
func (c *PredictionCache) Get(matchID string) (*domain.Prediction, bool) {
	c.mu.RLock()
	entry, ok := c.entries[matchID]
	c.mu.RUnlock()

	if !ok || c.now().Sub(entry.insertedAt) >= c.ttl {
		return nil, false
	}
	return entry.prediction, true
}

// Clear drops all entries. Intended for test isolation.
func (c *PredictionCache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]cacheEntry)
	c.mu.Unlock()
}
