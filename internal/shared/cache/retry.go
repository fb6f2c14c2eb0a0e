package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	defaultRetryBaseDelay = 100 * time.Millisecond
	defaultRetryMaxDelay  = 5 * time.Second
)

// RetryPolicy bounds how long a failing backing store is retried. Delays
// start at BaseDelay and double up to MaxDelay, without jitter. Retries is
// the number of extra attempts after the first one.
type RetryPolicy struct {
	Retries   int
	BaseDelay time.Duration
	MaxDelay  time.Duration
}

func (p RetryPolicy) backOff(ctx context.Context) backoff.BackOff {
	base := p.BaseDelay
	if base <= 0 {
		base = defaultRetryBaseDelay
	}
	maxDelay := p.MaxDelay
	if maxDelay <= 0 {
		maxDelay = defaultRetryMaxDelay
	}
	retries := p.Retries
	if retries < 0 {
		retries = 0
	}

	exponential := backoff.NewExponentialBackOff()
	exponential.InitialInterval = base
	exponential.Multiplier = 2
	exponential.RandomizationFactor = 0
	exponential.MaxInterval = maxDelay
	exponential.MaxElapsedTime = 0
	exponential.Reset()

	return backoff.WithContext(backoff.WithMaxRetries(exponential, uint64(retries)), ctx)
}

// do runs fn until it succeeds or the policy is exhausted. The last failure
// is returned wrapped in ErrCacheNotAccessible.
func (p RetryPolicy) do(ctx context.Context, logger *slog.Logger, operation, key string, fn func() error) error {
	attempt := 0
	err := backoff.RetryNotify(
		func() error {
			attempt++
			return fn()
		},
		p.backOff(ctx),
		func(err error, next time.Duration) {
			logger.Error("cache operation failed, retrying",
				"operation", operation,
				"key", key,
				"attempt", attempt,
				"next_delay_ms", next.Milliseconds(),
				"error", err,
			)
		},
	)
	if err != nil {
		return fmt.Errorf("%w: %s %q after %d attempt(s): %w", ErrCacheNotAccessible, operation, key, attempt, err)
	}
	return nil
}
