package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const (
	defaultLocalTTL        = 5 * time.Minute
	defaultLocalMaxEntries = 10000
)

var _ Adapter[string] = (*Local[string])(nil)

// LocalOptions configures a Local adapter.
type LocalOptions[V any] struct {
	// TTL applied to every entry. Zero uses five minutes.
	TTL time.Duration

	// MaxEntries bounds the number of live entries. When full, expired
	// entries are purged first, then the entry closest to expiry is evicted.
	MaxEntries int

	// Loader populates entries missing on Get. GetIfPresent never calls it.
	Loader Loader[V]
}

// Local is an in-process adapter backed by go-cache. It is only correct for a
// single service instance: nothing is shared across processes.
//
// Increment is supported when V is int64 and fails with
// ErrUnsupportedOperation for any other value type.
type Local[V any] struct {
	items      *gocache.Cache
	ttl        time.Duration
	maxEntries int
	loader     Loader[V]

	// serialises writes so the size bound holds
	mu sync.Mutex
}

func NewLocal[V any](opts LocalOptions[V]) *Local[V] {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = defaultLocalTTL
	}
	maxEntries := opts.MaxEntries
	if maxEntries <= 0 {
		maxEntries = defaultLocalMaxEntries
	}

	return &Local[V]{
		items:      gocache.New(ttl, ttl),
		ttl:        ttl,
		maxEntries: maxEntries,
		loader:     opts.Loader,
	}
}

func (l *Local[V]) Get(ctx context.Context, key string) (V, bool, error) {
	value, found := l.lookup(key)
	if found || l.loader == nil {
		return value, found, nil
	}

	loaded, found, err := l.loader(ctx, key)
	if err != nil {
		var zero V
		return zero, false, fmt.Errorf("%w: load %q: %w", ErrCacheNotAccessible, key, err)
	}
	if !found {
		var zero V
		return zero, false, nil
	}

	l.mu.Lock()
	l.ensureCapacityLocked(key)
	l.items.Set(key, loaded, l.ttl)
	l.mu.Unlock()

	return loaded, true, nil
}

func (l *Local[V]) Put(_ context.Context, key string, value V) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.ensureCapacityLocked(key)
	l.items.Set(key, value, l.ttl)
	return nil
}

func (l *Local[V]) PutIfAbsent(_ context.Context, key string, value V) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, found := l.items.Get(key); found {
		return false, nil
	}

	l.ensureCapacityLocked(key)
	if err := l.items.Add(key, value, l.ttl); err != nil {
		return false, nil
	}
	return true, nil
}

func (l *Local[V]) GetIfPresent(_ context.Context, key string) (V, bool, error) {
	value, found := l.lookup(key)
	return value, found, nil
}

func (l *Local[V]) Invalidate(_ context.Context, key string) error {
	l.items.Delete(key)
	return nil
}

func (l *Local[V]) Exists(_ context.Context, key string) (bool, error) {
	_, found := l.items.Get(key)
	return found, nil
}

func (l *Local[V]) Increment(_ context.Context, key string) (int64, error) {
	var zero V
	if _, ok := any(zero).(int64); !ok {
		return 0, fmt.Errorf("%w: increment on %T values", ErrUnsupportedOperation, zero)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, found := l.items.Get(key); !found {
		l.ensureCapacityLocked(key)
		l.items.Set(key, int64(1), l.ttl)
		return 1, nil
	}

	next, err := l.items.IncrementInt64(key, 1)
	if err != nil {
		// expired between the lookup and the increment
		if !l.has(key) {
			l.items.Set(key, int64(1), l.ttl)
			return 1, nil
		}
		return 0, fmt.Errorf("cache: increment %q: %w", key, err)
	}
	return next, nil
}

// Len reports the number of entries currently held, expired or not.
func (l *Local[V]) Len() int {
	return l.items.ItemCount()
}

func (l *Local[V]) lookup(key string) (V, bool) {
	raw, found := l.items.Get(key)
	if !found {
		var zero V
		return zero, false
	}
	value, ok := raw.(V)
	return value, ok
}

func (l *Local[V]) has(key string) bool {
	_, found := l.items.Get(key)
	return found
}

func (l *Local[V]) ensureCapacityLocked(key string) {
	if l.has(key) || l.items.ItemCount() < l.maxEntries {
		return
	}

	l.items.DeleteExpired()
	if l.items.ItemCount() < l.maxEntries {
		return
	}

	var (
		victim   string
		earliest int64
	)
	for candidate, item := range l.items.Items() {
		if victim == "" || item.Expiration < earliest {
			victim = candidate
			earliest = item.Expiration
		}
	}
	if victim != "" {
		l.items.Delete(victim)
	}
}
