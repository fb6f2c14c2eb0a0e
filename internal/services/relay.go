package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/joshuarp/consent-bridge/internal/domain/vo"
	"github.com/joshuarp/consent-bridge/internal/shared/cache"
	"github.com/joshuarp/consent-bridge/internal/shared/correlation"
	"github.com/joshuarp/consent-bridge/internal/shared/scheduler"
)

// CallbackRelay carries a gateway callback to the request waiting for it.
type CallbackRelay[T any] interface {
	// Await runs send and blocks until the result for requestID is
	// delivered, the timeout passes or ctx ends. A failed send returns at once.
	Await(ctx context.Context, requestID string, timeout time.Duration, send func(ctx context.Context) error) (T, error)

	// Deliver hands result to the waiter of requestID. It reports false when
	// nobody can receive it any more.
	Deliver(ctx context.Context, requestID string, result T) (bool, error)
}

var (
	_ CallbackRelay[vo.DiscoveryResult] = (*CorrelatorRelay[vo.DiscoveryResult])(nil)
	_ CallbackRelay[vo.DiscoveryResult] = (*CacheRelay[vo.DiscoveryResult])(nil)
)

// CorrelatorRelay waits on the in-process pending table. Callback and caller
// must meet on the same instance, so it only serves a single instance.
type CorrelatorRelay[T any] struct {
	correlator *correlation.Correlator[T]
}

func NewCorrelatorRelay[T any](correlator *correlation.Correlator[T]) *CorrelatorRelay[T] {
	return &CorrelatorRelay[T]{correlator: correlator}
}

func (r *CorrelatorRelay[T]) Await(ctx context.Context, requestID string, timeout time.Duration, send func(ctx context.Context) error) (T, error) {
	var zero T

	handle, err := r.correlator.Register(requestID, time.Now().Add(timeout))
	if err != nil {
		return zero, err
	}

	if err := send(ctx); err != nil {
		r.correlator.Reject(requestID, err)
		return zero, err
	}

	return r.correlator.Await(ctx, handle)
}

func (r *CorrelatorRelay[T]) Deliver(_ context.Context, requestID string, result T) (bool, error) {
	return r.correlator.Resolve(requestID, result), nil
}

// Pending is the number of requests still waiting on this instance.
func (r *CorrelatorRelay[T]) Pending() int {
	return r.correlator.Pending()
}

// CacheRelay parks results in a shared cache and the waiter polls for them,
// so a callback landing on any instance reaches the caller.
type CacheRelay[T any] struct {
	results  cache.Adapter[T]
	minDelay time.Duration
	maxDelay time.Duration
	logger   *slog.Logger
}

func NewCacheRelay[T any](results cache.Adapter[T], logger *slog.Logger) *CacheRelay[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return &CacheRelay[T]{
		results:  results,
		minDelay: scheduler.DefaultMinDelay,
		maxDelay: scheduler.DefaultMaxDelay,
		logger:   logger,
	}
}

// WithPollDelays overrides the first and the largest delay between polls.
func (r *CacheRelay[T]) WithPollDelays(minDelay, maxDelay time.Duration) *CacheRelay[T] {
	r.minDelay, r.maxDelay = minDelay, maxDelay
	return r
}

func (r *CacheRelay[T]) Await(ctx context.Context, requestID string, timeout time.Duration, send func(ctx context.Context) error) (T, error) {
	var zero T
	logger := r.logger.With("request_id", requestID)

	wait := scheduler.ScheduleThis(func(ctx context.Context) (string, error) {
		return requestID, send(ctx)
	}).
		Timeout(timeout).
		WithDelays(r.minDelay, r.maxDelay).
		WithLogger(logger)

	result, err := scheduler.ResponseFrom(ctx, wait, r.results.Get)
	if err != nil {
		return zero, err
	}

	if err := r.results.Invalidate(ctx, requestID); err != nil {
		logger.WarnContext(ctx, "failed to invalidate relayed result", "error", err)
	}
	return result, nil
}

func (r *CacheRelay[T]) Deliver(ctx context.Context, requestID string, result T) (bool, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return false, vo.ErrInvalidRequest
	}
	if err := r.results.Put(ctx, requestID, result); err != nil {
		return false, err
	}
	return true, nil
}
