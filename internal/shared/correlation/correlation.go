// Package correlation pairs an outbound request with the callback that
// answers it. A caller registers a request id with a deadline, hands the id
// to the remote party and awaits; the callback handler resolves the id.
// Exactly one of resolution or timeout is observed per registration.
package correlation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

var (
	ErrDuplicateRequestID = errors.New("correlation: request id is already pending")
	ErrInvalidRequestID   = errors.New("correlation: request id is empty")
	ErrTimeout            = errors.New("correlation: no response before deadline")
)

// TimeoutError carries the request that expired. It matches ErrTimeout.
type TimeoutError struct {
	RequestID string
	Deadline  time.Time
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("correlation: request %s timed out at %s", e.RequestID, e.Deadline.UTC().Format(time.RFC3339Nano))
}

func (e *TimeoutError) Is(target error) bool {
	return target == ErrTimeout
}

type state int32

const (
	stateRegistered state = iota
	stateResolved
	stateTimedOut
	stateCancelled
)

// Handle is the caller's side of a pending request.
type Handle[T any] struct {
	requestID string
	deadline  time.Time
	timer     *time.Timer

	state atomic.Int32
	done  chan struct{}
	value T
	err   error
}

func (h *Handle[T]) RequestID() string { return h.requestID }

func (h *Handle[T]) Deadline() time.Time { return h.deadline }

// Done is closed once the handle reaches a terminal state.
func (h *Handle[T]) Done() <-chan struct{} { return h.done }

// complete moves the handle out of REGISTERED. Only the first caller wins;
// value and err are written before done is closed.
func (h *Handle[T]) complete(to state, value T, err error) bool {
	if !h.state.CompareAndSwap(int32(stateRegistered), int32(to)) {
		return false
	}
	h.value = value
	h.err = err
	if to != stateTimedOut {
		h.timer.Stop()
	}
	close(h.done)
	return true
}

// Correlator holds the table of pending requests. The zero value is not usable.
type Correlator[T any] struct {
	mu      sync.Mutex
	pending map[string]*Handle[T]
	logger  *slog.Logger
}

func New[T any](logger *slog.Logger) *Correlator[T] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Correlator[T]{
		pending: make(map[string]*Handle[T]),
		logger:  logger,
	}
}

// Register adds requestID to the pending table. The timeout fires at deadline
// whether or not anybody awaits the handle.
func (c *Correlator[T]) Register(requestID string, deadline time.Time) (*Handle[T], error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return nil, ErrInvalidRequestID
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.pending[requestID]; exists {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateRequestID, requestID)
	}

	handle := &Handle[T]{
		requestID: requestID,
		deadline:  deadline,
		done:      make(chan struct{}),
	}
	c.pending[requestID] = handle
	handle.timer = time.AfterFunc(time.Until(deadline), func() {
		c.expire(handle)
	})

	return handle, nil
}

// Resolve fills the result slot of requestID. It reports false when the id is
// unknown, already resolved or already expired.
func (c *Correlator[T]) Resolve(requestID string, value T) bool {
	return c.finish(requestID, value, nil)
}

// Reject resolves requestID with an error, e.g. a callback carrying a remote failure.
func (c *Correlator[T]) Reject(requestID string, err error) bool {
	var zero T
	return c.finish(requestID, zero, err)
}

// Await blocks until the handle is resolved, times out or ctx is done. When
// ctx wins, the registration is cancelled and removed.
func (c *Correlator[T]) Await(ctx context.Context, handle *Handle[T]) (T, error) {
	var zero T
	if handle == nil {
		return zero, ErrInvalidRequestID
	}

	select {
	case <-handle.done:
		return handle.value, handle.err
	case <-ctx.Done():
		if handle.complete(stateCancelled, zero, ctx.Err()) {
			c.remove(handle)
			return zero, ctx.Err()
		}
		<-handle.done
		return handle.value, handle.err
	}
}

// Pending returns the number of registrations still waiting.
func (c *Correlator[T]) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

func (c *Correlator[T]) finish(requestID string, value T, err error) bool {
	c.mu.Lock()
	handle, ok := c.pending[strings.TrimSpace(requestID)]
	c.mu.Unlock()
	if !ok {
		c.logger.Debug("no pending request for callback", "request_id", requestID)
		return false
	}

	if !handle.complete(stateResolved, value, err) {
		return false
	}
	c.remove(handle)
	return true
}

func (c *Correlator[T]) expire(handle *Handle[T]) {
	var zero T
	timeoutErr := &TimeoutError{RequestID: handle.requestID, Deadline: handle.deadline}
	if !handle.complete(stateTimedOut, zero, timeoutErr) {
		return
	}
	c.remove(handle)
	c.logger.Warn("pending request timed out",
		"request_id", handle.requestID,
		"deadline", handle.deadline.UTC().Format(time.RFC3339Nano),
	)
}

// remove deletes handle only if it is still the registration for its id.
func (c *Correlator[T]) remove(handle *Handle[T]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if current, ok := c.pending[handle.requestID]; ok && current == handle {
		delete(c.pending, handle.requestID)
	}
}
