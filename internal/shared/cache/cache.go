// Package cache provides the key/value adapters backing request correlation
// state and callback idempotency windows.
//
// Two adapters are available: Local keeps entries in process memory and is
// only valid for a single instance, Redis is shared by every instance and is
// the source of truth for multi-instance deployments.
package cache

import (
	"context"
	"errors"
)

var (
	// ErrCacheNotAccessible is returned when the backing store keeps failing
	// after retries. A miss is never reported through this error.
	ErrCacheNotAccessible = errors.New("cache: not accessible")

	// ErrUnsupportedOperation is returned by adapters that cannot perform an
	// operation atomically.
	ErrUnsupportedOperation = errors.New("cache: unsupported operation")
)

const (
	MethodLocal = "local"
	MethodRedis = "redis"
)

// Adapter is a TTL-bound key/value store. A missing key is reported with
// found=false and a nil error, never with a placeholder value.
// Implementations must be safe for concurrent use.
type Adapter[V any] interface {
	// Get returns the stored value. Adapters configured with a loader may
	// populate the entry on a miss.
	Get(ctx context.Context, key string) (value V, found bool, err error)

	// Put stores value with the adapter TTL, overwriting any existing entry.
	Put(ctx context.Context, key string, value V) error

	// PutIfAbsent stores value only when key is absent and reports whether it
	// did. The check and the write are a single atomic step.
	PutIfAbsent(ctx context.Context, key string, value V) (bool, error)

	// GetIfPresent is Get without any load-on-miss side effect.
	GetIfPresent(ctx context.Context, key string) (value V, found bool, err error)

	// Invalidate expires key immediately.
	Invalidate(ctx context.Context, key string) error

	Exists(ctx context.Context, key string) (bool, error)

	// Increment atomically adds one to the counter at key, starting at 1 when
	// absent. Returns ErrUnsupportedOperation when the adapter cannot
	// guarantee atomicity.
	Increment(ctx context.Context, key string) (int64, error)
}

// Loader fetches a value for a key missing from a Local adapter.
type Loader[V any] func(ctx context.Context, key string) (value V, found bool, err error)
