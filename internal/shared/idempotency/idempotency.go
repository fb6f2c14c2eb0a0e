// Package idempotency remembers the outcome of patient-facing POSTs that
// carry an X-Idempotency-Key, so a retried submission replays the stored
// response instead of dispatching a second gateway request. Records live in
// the consent cache (local or redis, see CacheStore); the cache TTL is the
// replay window.
package idempotency

import (
	"context"
	"errors"
	"strings"
	"time"
)

const recordKeyPrefix = "idempotency_"

type DecisionType string

const (
	DecisionAcquired   DecisionType = "acquired"
	DecisionReplay     DecisionType = "replay"
	DecisionInProgress DecisionType = "in_progress"
	DecisionConflict   DecisionType = "conflict"
)

var (
	ErrScopeRequired       = errors.New("idempotency: scope is required")
	ErrKeyRequired         = errors.New("idempotency: key is required")
	ErrRequestHashRequired = errors.New("idempotency: request hash is required")
	ErrKeyNotFound         = errors.New("idempotency: key not found")
)

type Request struct {
	// Scope separates key spaces, e.g. route and authenticated subject.
	Scope       string
	Key         string
	RequestHash string
	// LockTTL bounds how long an unfinished attempt blocks retries.
	LockTTL time.Duration
}

type Decision struct {
	Type        DecisionType
	StatusCode  int
	Body        []byte
	ContentType string
}

type StoredResponse struct {
	StatusCode  int
	Body        []byte
	ContentType string
}

// Store decides what to do with a keyed request. Complete and Release only
// act on a record whose hash matches, otherwise they return ErrKeyNotFound.
type Store interface {
	Acquire(ctx context.Context, request Request) (Decision, error)
	Complete(ctx context.Context, request Request, response StoredResponse) error
	// Release drops an unfinished attempt so the caller can retry it.
	Release(ctx context.Context, request Request) error
}

// recordKey validates request and returns the cache key and trimmed hash.
func (r Request) recordKey() (string, string, error) {
	scope := strings.TrimSpace(r.Scope)
	if scope == "" {
		return "", "", ErrScopeRequired
	}

	key := strings.TrimSpace(r.Key)
	if key == "" {
		return "", "", ErrKeyRequired
	}

	hash := strings.TrimSpace(r.RequestHash)
	if hash == "" {
		return "", "", ErrRequestHashRequired
	}

	return recordKeyPrefix + scope + ":" + key, hash, nil
}
