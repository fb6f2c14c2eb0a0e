// Package ratelimit throttles callers with fixed-window counters kept in a
// cache adapter, so the window is shared by every instance when the adapter
// is distributed.
package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joshuarp/consent-bridge/internal/shared/cache"
)

var ErrEmptyKey = errors.New("ratelimit: key is required")

// Result contains the rate limit decision and metadata.
type Result struct {
	Allowed bool

	// Limit is the maximum requests per window.
	Limit int64

	// Remaining is the number of requests left in current window.
	Remaining int64

	// RetryAfter is an upper bound on the wait before the window resets.
	// Zero when allowed.
	RetryAfter time.Duration
}

type Config struct {
	// Limit is the maximum number of requests allowed per window.
	Limit int64

	// Window must match the TTL of the counter adapter; the window starts
	// at the first request for a key.
	Window time.Duration

	// OnLimited is called when rate limit is exceeded.
	OnLimited func(ctx context.Context, key string, result Result)
}

type Limiter interface {
	AllowKey(ctx context.Context, key string) (Result, error)
	ResetKey(ctx context.Context, key string) error
}

type fixedWindow struct {
	counters cache.Adapter[int64]
	config   Config
}

// New builds a fixed-window limiter. The counters adapter must support
// Increment.
func New(counters cache.Adapter[int64], config Config) (Limiter, error) {
	if counters == nil {
		return nil, fmt.Errorf("ratelimit: counter store is required")
	}

	if config.Limit <= 0 {
		return nil, fmt.Errorf("ratelimit: limit must be positive")
	}

	if config.Window <= 0 {
		return nil, fmt.Errorf("ratelimit: window must be positive")
	}

	return &fixedWindow{counters: counters, config: config}, nil
}

func (l *fixedWindow) AllowKey(ctx context.Context, key string) (Result, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return Result{}, ErrEmptyKey
	}

	count, err := l.counters.Increment(ctx, counterKey(key))
	if err != nil {
		return Result{}, fmt.Errorf("ratelimit: store error: %w", err)
	}

	result := Result{
		Allowed:   count <= l.config.Limit,
		Limit:     l.config.Limit,
		Remaining: max(l.config.Limit-count, 0),
	}
	if !result.Allowed {
		result.RetryAfter = l.config.Window
		if l.config.OnLimited != nil {
			l.config.OnLimited(ctx, key, result)
		}
	}

	return result, nil
}

func (l *fixedWindow) ResetKey(ctx context.Context, key string) error {
	if err := l.counters.Invalidate(ctx, counterKey(strings.TrimSpace(key))); err != nil {
		return fmt.Errorf("ratelimit: reset %s: %w", key, err)
	}
	return nil
}

func counterKey(key string) string {
	return "ratelimit_" + key
}
