// Package history maintains the bounded, per-user conversation transcript
// and its durable mirror.
package history

import "context"

// KV is the durable key-value backend for conversation records.
// Get returns (nil, nil) when the key does not exist.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
