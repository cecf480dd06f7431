// Package cache provides a TTL key-value store abstraction shared by the
// game-log store and the inference token provider. Backends are injected so
// no component depends on a process-wide singleton.
package cache

import (
	"context"
	"time"
)

// Store is a TTL key-value cache. Implementations must be safe for
// concurrent use; writes are whole-value replacements.
type Store interface {
	// Get returns the value for key, or false when absent or expired.
	Get(ctx context.Context, key string) ([]byte, bool)
	// Set stores value under key for ttl.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	// Delete removes key if present.
	Delete(ctx context.Context, key string)
}
