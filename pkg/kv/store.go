package kv

import "context"

// Store is durable synchronous key-value storage. Set is a total overwrite of
// the single key, Remove is idempotent, and there are no transactions or
// multi-key atomicity: every write is last-writer-wins. The system has
// exactly one logical writer, so read-after-write within the process always
// observes the latest value.
type Store interface {
	// Get returns the raw stored value. The second result is false when the
	// key was never written (or was removed).
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
