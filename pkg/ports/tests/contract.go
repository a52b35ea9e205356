// Package tests provides reusable contract suites for ports
// implementations. Every adapter must pass the contract for the port it
// implements.
package tests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/verdict/pkg/domain"
	"github.com/aretw0/verdict/pkg/ports"
)

// RunResultCacheContract verifies the behavior every ResultCache
// implementation must provide.
func RunResultCacheContract(t *testing.T, cache ports.ResultCache) {
	ctx := context.Background()

	t.Run("MissingKey", func(t *testing.T) {
		_, err := cache.Load(ctx, "absent")
		assert.ErrorIs(t, err, domain.ErrResultNotFound)
	})

	t.Run("SaveThenLoad", func(t *testing.T) {
		require.NoError(t, cache.Save(ctx, "graph:abc", "flowchart TD"))
		got, err := cache.Load(ctx, "graph:abc")
		require.NoError(t, err)
		assert.Equal(t, "flowchart TD", got)
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, cache.Save(ctx, "graph:xyz", "first"))
		require.NoError(t, cache.Save(ctx, "graph:xyz", "second"))
		got, err := cache.Load(ctx, "graph:xyz")
		require.NoError(t, err)
		assert.Equal(t, "second", got)
	})

	t.Run("KeysAreIndependent", func(t *testing.T) {
		require.NoError(t, cache.Save(ctx, "graph:one", "mermaid"))
		require.NoError(t, cache.Save(ctx, "graph:two", "dag"))
		got, err := cache.Load(ctx, "graph:one")
		require.NoError(t, err)
		assert.Equal(t, "mermaid", got)
	})
}
