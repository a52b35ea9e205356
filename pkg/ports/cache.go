package ports

import "context"

// ResultCache stores rendered compile results keyed by an input digest.
// Compilation is deterministic, so cached entries never go stale; TTLs
// exist purely to bound memory.
//
// Load returns domain.ErrResultNotFound when the key has no entry.
type ResultCache interface {
	Load(ctx context.Context, key string) (string, error)
	Save(ctx context.Context, key string, result string) error
}
