package cache

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// Cache is the contract of the read cache used by the query services.
// Entries hold already-serialized payloads and may be grouped under tags
// so that a write can evict every derived entry at once.
// Implementations: Redis (shared) and in-memory (single process).
type Cache interface {
	// Get returns (value, found, error). A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value under key with TTL and registers key under each tag.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration, tags ...string) error

	// InvalidateTags evicts every entry previously stored under any of the tags.
	InvalidateTags(ctx context.Context, tags ...string) error

	// Ping checks the backend connection.
	Ping(ctx context.Context) error
}

// ComputeFn produces the payload to cache on a miss.
type ComputeFn func(ctx context.Context) ([]byte, error)

// GetOrCompute is the cache-aside read path: return the cached value when
// present, otherwise run compute once, store the result under tags and
// return it. Cache failures never fail the read: a read error falls through
// to compute and a write error is only logged.
//
// Concurrent misses on the same key may each run compute.
func GetOrCompute(ctx context.Context, c Cache, key string, ttl time.Duration, tags []string, compute ComputeFn) ([]byte, error) {
	data, found, err := c.Get(ctx, key)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache read failed, computing value")
	} else if found {
		return data, nil
	}

	data, err = compute(ctx)
	if err != nil {
		return nil, err
	}

	if err := c.Set(ctx, key, data, ttl, tags...); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}

	return data, nil
}
