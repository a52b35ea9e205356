// Package redis provides a Redis-backed ResultCache so multiple server
// instances can share compiled graph output.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/aretw0/verdict/pkg/domain"
)

const defaultPrefix = "verdict:"

// Cache implements ports.ResultCache on top of a Redis client.
type Cache struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

// Option configures the cache.
type Option func(*Cache)

// WithPrefix overrides the key namespace prefix.
func WithPrefix(prefix string) Option {
	return func(c *Cache) {
		c.prefix = prefix
	}
}

// WithTTL sets an expiration on cached entries. Zero means no expiry.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		c.ttl = ttl
	}
}

// NewFromClient wraps an existing Redis client.
func NewFromClient(client *backend.Client, opts ...Option) *Cache {
	c := &Cache{
		client: client,
		prefix: defaultPrefix,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load returns the cached result for key.
func (c *Cache) Load(ctx context.Context, key string) (string, error) {
	result, err := c.client.Get(ctx, c.prefix+key).Result()
	if errors.Is(err, backend.Nil) {
		return "", domain.ErrResultNotFound
	}
	if err != nil {
		return "", fmt.Errorf("redis get: %w", err)
	}
	return result, nil
}

// Save stores the result under key, applying the configured TTL.
func (c *Cache) Save(ctx context.Context, key string, result string) error {
	if err := c.client.Set(ctx, c.prefix+key, result, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}
