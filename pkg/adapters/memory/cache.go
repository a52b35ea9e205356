// Package memory provides an in-process ResultCache, used by default when
// no Redis backend is configured and in tests.
package memory

import (
	"context"
	"sync"

	"github.com/aretw0/verdict/pkg/domain"
)

// Cache is a concurrency-safe in-memory ResultCache.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]string
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{entries: make(map[string]string)}
}

// Load returns the cached result for key.
func (c *Cache) Load(ctx context.Context, key string) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result, ok := c.entries[key]
	if !ok {
		return "", domain.ErrResultNotFound
	}
	return result, nil
}

// Save stores the result under key, overwriting any previous entry.
func (c *Cache) Save(ctx context.Context, key string, result string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = result
	return nil
}
