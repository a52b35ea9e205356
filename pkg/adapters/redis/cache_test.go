package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/aretw0/verdict/pkg/adapters/redis"
	"github.com/aretw0/verdict/pkg/domain"
	"github.com/aretw0/verdict/pkg/ports/tests"
)

func newTestClient(t *testing.T) (*miniredis.Miniredis, *backend.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	return mr, backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
}

func TestRedisCache_Contract(t *testing.T) {
	_, client := newTestClient(t)
	tests.RunResultCacheContract(t, redis.NewFromClient(client))
}

func TestRedisCache_TTL_Expiration(t *testing.T) {
	mr, client := newTestClient(t)

	cache := redis.NewFromClient(client, redis.WithTTL(1*time.Second))
	ctx := context.Background()

	err := cache.Save(ctx, "graph:ttl", "flowchart TD")
	assert.NoError(t, err)

	got, err := cache.Load(ctx, "graph:ttl")
	assert.NoError(t, err)
	assert.Equal(t, "flowchart TD", got)

	// Fast Forward time in miniredis (for Key Expiration)
	mr.FastForward(2 * time.Second)

	_, err = cache.Load(ctx, "graph:ttl")
	assert.ErrorIs(t, err, domain.ErrResultNotFound)
}

func TestRedisCache_Prefix(t *testing.T) {
	mr, client := newTestClient(t)

	cache := redis.NewFromClient(client, redis.WithPrefix("custom:app:"))
	ctx := context.Background()

	err := cache.Save(ctx, "my-graph", "dag")
	assert.NoError(t, err)

	// Verify keys in Redis directly
	exists := mr.Exists("custom:app:my-graph")
	assert.True(t, exists, "Expected key with custom prefix to exist")

	got, err := cache.Load(ctx, "my-graph")
	assert.NoError(t, err)
	assert.Equal(t, "dag", got)
}
