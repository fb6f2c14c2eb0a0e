// Package scheduler polls for an asynchronous response that is expected to
// appear in a shared store, backing off between attempts until a deadline.
package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	DefaultMinDelay = 100 * time.Millisecond
	DefaultMaxDelay = 500 * time.Millisecond
)

// ErrDelayTimeout is returned when the extractor still reports no value once
// the deadline has passed.
var ErrDelayTimeout = errors.New("scheduler: no response before deadline")

// Producer starts the asynchronous work, typically the outbound request.
type Producer[T any] func(ctx context.Context) (T, error)

// Extractor looks up the response for what the producer returned. It reports
// (value, true, nil) once the response is available and (_, false, nil) while
// it is still pending. Any error ends the wait immediately.
type Extractor[T, U any] func(ctx context.Context, produced T) (U, bool, error)

type Schedule[T any] struct {
	producer Producer[T]
}

// ScheduleThis wraps producer so its response can be awaited with a timeout.
func ScheduleThis[T any](producer Producer[T]) *Schedule[T] {
	return &Schedule[T]{producer: producer}
}

// Wrapper is a schedule bound to a timeout.
type Wrapper[T any] struct {
	producer Producer[T]
	timeout  time.Duration
	minDelay time.Duration
	maxDelay time.Duration
	logger   *slog.Logger
}

func (s *Schedule[T]) Timeout(d time.Duration) *Wrapper[T] {
	return &Wrapper[T]{
		producer: s.producer,
		timeout:  d,
		minDelay: DefaultMinDelay,
		maxDelay: DefaultMaxDelay,
		logger:   slog.Default(),
	}
}

// WithDelays overrides the first and the largest delay between polls.
func (w *Wrapper[T]) WithDelays(minDelay, maxDelay time.Duration) *Wrapper[T] {
	if minDelay > 0 {
		w.minDelay = minDelay
	}
	if maxDelay >= w.minDelay {
		w.maxDelay = maxDelay
	}
	return w
}

func (w *Wrapper[T]) WithLogger(logger *slog.Logger) *Wrapper[T] {
	if logger != nil {
		w.logger = logger
	}
	return w
}

// ResponseFrom runs the producer once, then polls extractor with its result.
// The deadline starts counting when ResponseFrom is called.
func ResponseFrom[T, U any](ctx context.Context, w *Wrapper[T], extractor Extractor[T, U]) (U, error) {
	var zero U
	finish := time.Now().Add(w.timeout)

	produced, err := w.producer(ctx)
	if err != nil {
		return zero, err
	}

	delays := w.delays()
	for {
		value, ok, err := extractor(ctx, produced)
		if err != nil {
			return zero, err
		}
		if ok {
			return value, nil
		}

		if time.Now().After(finish) {
			return zero, ErrDelayTimeout
		}

		delay := delays.NextBackOff()
		w.logger.DebugContext(ctx, "response not available yet, delaying",
			"delay_ms", delay.Milliseconds(),
		)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return zero, ctx.Err()
		case <-timer.C:
		}
	}
}

func (w *Wrapper[T]) delays() backoff.BackOff {
	exponential := backoff.NewExponentialBackOff()
	exponential.InitialInterval = w.minDelay
	exponential.Multiplier = 2
	exponential.RandomizationFactor = 0
	exponential.MaxInterval = w.maxDelay
	exponential.MaxElapsedTime = 0
	exponential.Reset()
	return exponential
}
