// Package dedup drops repeated gateway callbacks. The first callback for a
// request id is marked in the shared cache; every later one inside the cache
// TTL is reported as a duplicate.
package dedup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joshuarp/consent-bridge/internal/shared/cache"
)

const (
	seenKeyPrefix  = "replay_"
	countKeyPrefix = "replay_count_"

	// Callback timestamps are accepted from one minute in the past up to nine
	// minutes ahead to tolerate gateway clock skew.
	timestampLowerBound = time.Minute
	timestampUpperBound = 9 * time.Minute
)

var ErrEmptyRequestID = errors.New("dedup: request id is empty")

type Options struct {
	// Counter tracks how many duplicates a request id received. Optional.
	Counter cache.Adapter[int64]
	Logger  *slog.Logger
	Now     func() time.Time
}

type Deduplicator struct {
	seen    cache.Adapter[time.Time]
	counter cache.Adapter[int64]
	logger  *slog.Logger
	now     func() time.Time
}

// New builds a Deduplicator on top of seen. The adapter TTL is the dedup
// window and should cover the longest plausible callback delay.
func New(seen cache.Adapter[time.Time], opts Options) *Deduplicator {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &Deduplicator{
		seen:    seen,
		counter: opts.Counter,
		logger:  logger,
		now:     now,
	}
}

// ShouldProcess atomically checks and marks requestID. It returns true for
// the first caller only. Cache failures are returned, never treated as fresh.
func (d *Deduplicator) ShouldProcess(ctx context.Context, requestID string) (bool, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return false, ErrEmptyRequestID
	}

	stored, err := d.seen.PutIfAbsent(ctx, seenKeyPrefix+requestID, d.now().UTC())
	if err != nil {
		return false, fmt.Errorf("dedup: mark %s: %w", requestID, err)
	}
	if stored {
		return true, nil
	}

	d.countDuplicate(ctx, requestID)
	return false, nil
}

// FirstSeen returns when requestID was first marked, if it is still inside the window.
func (d *Deduplicator) FirstSeen(ctx context.Context, requestID string) (time.Time, bool, error) {
	seenAt, found, err := d.seen.GetIfPresent(ctx, seenKeyPrefix+strings.TrimSpace(requestID))
	if err != nil {
		return time.Time{}, false, fmt.Errorf("dedup: lookup %s: %w", requestID, err)
	}
	return seenAt, found, nil
}

// Forget removes the mark for requestID so a redelivery is processed again.
// Callers use it when processing a fresh callback failed.
func (d *Deduplicator) Forget(ctx context.Context, requestID string) error {
	if err := d.seen.Invalidate(ctx, seenKeyPrefix+strings.TrimSpace(requestID)); err != nil {
		return fmt.Errorf("dedup: forget %s: %w", requestID, err)
	}
	return nil
}

// ValidTimestamp reports whether a callback timestamp lies inside the
// accepted window around now.
func (d *Deduplicator) ValidTimestamp(ts time.Time) bool {
	now := d.now().UTC()
	return ts.After(now.Add(-timestampLowerBound)) && ts.Before(now.Add(timestampUpperBound))
}

func (d *Deduplicator) countDuplicate(ctx context.Context, requestID string) {
	logger := d.logger.With("request_id", requestID)
	if d.counter == nil {
		logger.InfoContext(ctx, "duplicate callback dropped")
		return
	}

	count, err := d.counter.Increment(ctx, countKeyPrefix+requestID)
	switch {
	case errors.Is(err, cache.ErrUnsupportedOperation):
		logger.InfoContext(ctx, "duplicate callback dropped")
	case err != nil:
		logger.WarnContext(ctx, "duplicate callback dropped, counter unavailable", "error", err)
	default:
		logger.InfoContext(ctx, "duplicate callback dropped", "duplicates", count)
	}
}
