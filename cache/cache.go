package cache

import (
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

// Cache is a small typed wrapper over ristretto. Every entry expires.
type Cache[T any] struct {
	impl       *ristretto.Cache[string, T]
	cacheType  string
	defaultTTL time.Duration
}

// New creates a cache of roughly maxItems entries, each costing 1, expiring
// after defaultTTL unless set otherwise.
func New[T any](cacheType string, maxItems int64, defaultTTL time.Duration) (*Cache[T], error) {
	impl, err := ristretto.NewCache(&ristretto.Config[string, T]{
		NumCounters: maxItems * 10, // ristretto recommends 10x the expected item count
		MaxCost:     maxItems,
		BufferItems: 64,
		Metrics:     true,
		// cost is counted in items, not bytes
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, err
	}

	return &Cache[T]{
		impl:       impl,
		cacheType:  cacheType,
		defaultTTL: defaultTTL,
	}, nil
}

// Get retrieves a value from the cache
func (c *Cache[T]) Get(key string) (T, bool) {
	return c.impl.Get(key)
}

// Set stores a value with the default TTL. Sets are applied asynchronously;
// call Wait when a following Get must observe them.
func (c *Cache[T]) Set(key string, value T) bool {
	return c.SetWithTTL(key, value, c.defaultTTL)
}

// SetWithTTL stores a value with a specific TTL
func (c *Cache[T]) SetWithTTL(key string, value T, ttl time.Duration) bool {
	return c.impl.SetWithTTL(key, value, 1, ttl)
}

// Wait waits for the cache to finish processing
func (c *Cache[T]) Wait() {
	c.impl.Wait()
}

// Close stops the cache's background goroutines.
func (c *Cache[T]) Close() {
	c.impl.Close()
}

// Stats is a summary of cache activity for the system check page.
type Stats struct {
	CacheType string
	Hits      uint64
	Misses    uint64
	HitRate   float64
}

// Stats returns hit/miss counters since the cache was created.
func (c *Cache[T]) Stats() Stats {
	m := c.impl.Metrics
	stats := Stats{
		CacheType: c.cacheType,
		Hits:      m.Hits(),
		Misses:    m.Misses(),
	}
	if total := stats.Hits + stats.Misses; total > 0 {
		stats.HitRate = float64(stats.Hits) / float64(total) * 100
	}
	return stats
}
