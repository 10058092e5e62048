// Package keystore persists small client-side values, most importantly the
// session's bearer token, in a local SQLite key-value table.
package keystore

import "context"

// Repository is the narrow contract the session layer depends on.
// Get returns (nil, nil) when the key is absent.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
