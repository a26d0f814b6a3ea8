// Package localstore is the durable key/value capability backing the session
// store. Values are opaque byte slices; the session layer decides what goes
// in them.
package localstore

import "context"

type Repository interface {
	// Get returns the stored value, or nil when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// SetAll persists every entry atomically.
	SetAll(ctx context.Context, entries map[string][]byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
