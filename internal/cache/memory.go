package cache

import (
	"context"
	"sync/atomic"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryStore is an in-process Store backed by go-cache.
type MemoryStore struct {
	cache     *gocache.Cache
	hitCount  uint64
	missCount uint64
}

// NewMemoryStore creates a memory-backed store. defaultTTL applies when a
// caller passes a non-positive TTL to Set.
func NewMemoryStore(defaultTTL time.Duration) *MemoryStore {
	return &MemoryStore{
		cache: gocache.New(defaultTTL, defaultTTL*2),
	}
}

// Get returns the cached value for key if it has not expired.
func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, bool) {
	if v, found := m.cache.Get(key); found {
		if b, ok := v.([]byte); ok {
			atomic.AddUint64(&m.hitCount, 1)
			return b, true
		}
	}
	atomic.AddUint64(&m.missCount, 1)
	return nil, false
}

// Set stores value under key for ttl.
func (m *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) {
	if ttl <= 0 {
		ttl = gocache.DefaultExpiration
	}
	m.cache.Set(key, value, ttl)
}

// Delete removes key if present.
func (m *MemoryStore) Delete(_ context.Context, key string) {
	m.cache.Delete(key)
}

// Stats returns hit/miss counts and the hit ratio.
func (m *MemoryStore) Stats() (hits, misses uint64, ratio float64) {
	hits = atomic.LoadUint64(&m.hitCount)
	misses = atomic.LoadUint64(&m.missCount)
	total := hits + misses
	if total > 0 {
		ratio = float64(hits) / float64(total)
	}
	return
}

// ItemCount returns the number of live entries.
func (m *MemoryStore) ItemCount() int {
	return m.cache.ItemCount()
}
