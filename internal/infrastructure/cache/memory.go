package cache

import (
	"context"
	"sync"
	"time"

	"github.com/viccon/sturdyc"
)

const (
	memoryShards          = 16
	memoryEvictionPercent = 10
)

// MemoryCache implements pkg/cache.Cache in process. Values are held by a
// sturdyc client; tags are indexed in a mutex-guarded map.
//
// sturdyc applies one TTL to the whole client, so the per-call ttl passed to
// Set is ignored in favour of the TTL given to NewMemoryCache.
type MemoryCache struct {
	store    *sturdyc.Client[[]byte]
	capacity int

	mu   sync.Mutex
	tags map[string]map[string]struct{}

	// indexed counts tag memberships; the index is pruned of evicted and
	// expired keys once it reaches pruneAt.
	indexed int
	pruneAt int
}

func NewMemoryCache(capacity int, ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		store:    sturdyc.New[[]byte](capacity, memoryShards, ttl, memoryEvictionPercent),
		capacity: capacity,
		tags:     make(map[string]map[string]struct{}),
		pruneAt:  2 * capacity,
	}
}

func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := c.store.Get(key)
	return v, ok, nil
}

func (c *MemoryCache) Set(_ context.Context, key string, value []byte, _ time.Duration, tags ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.store.Set(key, value)
	for _, tag := range tags {
		keys, ok := c.tags[tag]
		if !ok {
			keys = make(map[string]struct{})
			c.tags[tag] = keys
		}
		if _, ok := keys[key]; !ok {
			keys[key] = struct{}{}
			c.indexed++
		}
	}

	if c.indexed >= c.pruneAt {
		c.prune()
	}
	return nil
}

// prune drops index entries whose key sturdyc no longer holds. The next
// prune waits until the index doubles, keeping Set amortized O(1).
// Callers hold c.mu.
func (c *MemoryCache) prune() {
	c.indexed = 0
	for tag, keys := range c.tags {
		for key := range keys {
			if _, ok := c.store.Get(key); !ok {
				delete(keys, key)
			}
		}
		if len(keys) == 0 {
			delete(c.tags, tag)
			continue
		}
		c.indexed += len(keys)
	}
	c.pruneAt = max(2*c.capacity, 2*c.indexed)
}

func (c *MemoryCache) InvalidateTags(_ context.Context, tags ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, tag := range tags {
		for key := range c.tags[tag] {
			c.store.Delete(key)
		}
		c.indexed -= len(c.tags[tag])
		delete(c.tags, tag)
	}
	return nil
}

func (c *MemoryCache) Ping(context.Context) error { return nil }
