package adapter

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"quizcraft/internal/domain"
)

// MemoryCacheAdapter implements domain.Cache with an in-process TTL cache.
// It is the default adapter when no Redis address is configured, suitable
// for single-node deployments and tests.
type MemoryCacheAdapter struct {
	cache *gocache.Cache
}

// NewMemoryCacheAdapter creates a memory-backed cache. cleanupInterval
// controls how often expired entries are purged.
func NewMemoryCacheAdapter(defaultTTL, cleanupInterval time.Duration) domain.Cache {
	return &MemoryCacheAdapter{cache: gocache.New(defaultTTL, cleanupInterval)}
}

// Get retrieves an item, returning domain.ErrCacheMiss when absent.
func (m *MemoryCacheAdapter) Get(_ context.Context, key string) (string, error) {
	if val, found := m.cache.Get(key); found {
		return val.(string), nil
	}
	return "", domain.ErrCacheMiss
}

// Set stores an item. A zero expiration keeps the item until eviction.
func (m *MemoryCacheAdapter) Set(_ context.Context, key string, value string, expiration time.Duration) error {
	if expiration == 0 {
		expiration = gocache.NoExpiration
	}
	m.cache.Set(key, value, expiration)
	return nil
}

// Delete removes an item; deleting a missing key is not an error.
func (m *MemoryCacheAdapter) Delete(_ context.Context, key string) error {
	m.cache.Delete(key)
	return nil
}

// Ping always succeeds for the in-process cache.
func (m *MemoryCacheAdapter) Ping(_ context.Context) error {
	return nil
}
