package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/platewise/v1/internal/ports/outbound"
)

// ErrCacheMiss is returned when a key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

type cacheItem struct {
	value     []byte
	expiresAt time.Time
}

// CacheRepository implements an in-memory cache with TTL expiry. Expired
// entries are evicted lazily on read, so the repository needs no
// background goroutine and no Close.
type CacheRepository struct {
	mu   sync.RWMutex
	data map[string]cacheItem
}

// NewCacheRepository creates a new in-memory cache.
func NewCacheRepository() outbound.CacheRepository {
	return &CacheRepository{
		data: make(map[string]cacheItem),
	}
}

// Get retrieves a value from cache, evicting the key when it has expired.
func (r *CacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	item, exists := r.data[key]
	r.mu.RUnlock()

	if !exists {
		return nil, ErrCacheMiss
	}
	if time.Now().After(item.expiresAt) {
		r.mu.Lock()
		// Re-check under the write lock; Set may have refreshed the key.
		if cur, ok := r.data[key]; ok && time.Now().After(cur.expiresAt) {
			delete(r.data, key)
		}
		r.mu.Unlock()
		return nil, ErrCacheMiss
	}
	return item.value, nil
}

// Set stores a value with a TTL. A zero TTL defaults to 24 hours.
func (r *CacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl == 0 {
		ttl = 24 * time.Hour
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[key] = cacheItem{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

// Delete removes a key from cache.
func (r *CacheRepository) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, key)
	return nil
}

// Exists checks if a key exists and is not expired.
func (r *CacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, exists := r.data[key]
	if !exists || time.Now().After(item.expiresAt) {
		return false, nil
	}
	return true, nil
}
