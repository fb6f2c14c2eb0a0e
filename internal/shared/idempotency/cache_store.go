package idempotency

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/joshuarp/consent-bridge/internal/shared/cache"
)

const (
	defaultLockTTL = 30 * time.Second

	statusInProgress = "in_progress"
	statusCompleted  = "completed"
)

// Record is what the store keeps per scope and key.
type Record struct {
	RequestHash string    `json:"requestHash"`
	Status      string    `json:"status"`
	LockedUntil time.Time `json:"lockedUntil"`
	StatusCode  int       `json:"statusCode,omitempty"`
	Body        []byte    `json:"body,omitempty"`
	ContentType string    `json:"contentType,omitempty"`
}

// CacheStore keeps idempotency records in a cache adapter. The adapter's TTL
// bounds how long a completed response can be replayed.
type CacheStore struct {
	records cache.Adapter[Record]
	now     func() time.Time
}

func NewCacheStore(records cache.Adapter[Record]) *CacheStore {
	return &CacheStore{records: records, now: time.Now}
}

func (s *CacheStore) Acquire(ctx context.Context, request Request) (Decision, error) {
	key, hash, err := request.recordKey()
	if err != nil {
		return Decision{}, err
	}

	lockTTL := request.LockTTL
	if lockTTL <= 0 {
		lockTTL = defaultLockTTL
	}

	now := s.now().UTC()
	locked := Record{RequestHash: hash, Status: statusInProgress, LockedUntil: now.Add(lockTTL)}

	acquired, err := s.records.PutIfAbsent(ctx, key, locked)
	if err != nil {
		return Decision{}, fmt.Errorf("idempotency: failed to acquire key: %w", err)
	}
	if acquired {
		return Decision{Type: DecisionAcquired}, nil
	}

	existing, found, err := s.records.GetIfPresent(ctx, key)
	if err != nil {
		return Decision{}, fmt.Errorf("idempotency: failed to query key: %w", err)
	}
	if !found {
		// expired between the two calls
		return s.reacquire(ctx, key, locked)
	}

	if existing.RequestHash != hash {
		return Decision{Type: DecisionConflict}, nil
	}

	if existing.Status == statusCompleted {
		return Decision{
			Type:        DecisionReplay,
			StatusCode:  existing.StatusCode,
			Body:        append([]byte(nil), existing.Body...),
			ContentType: existing.ContentType,
		}, nil
	}

	if existing.LockedUntil.After(now) {
		return Decision{Type: DecisionInProgress}, nil
	}

	if err := s.records.Invalidate(ctx, key); err != nil {
		return Decision{}, fmt.Errorf("idempotency: failed to drop stale lock: %w", err)
	}
	return s.reacquire(ctx, key, locked)
}

func (s *CacheStore) reacquire(ctx context.Context, key string, locked Record) (Decision, error) {
	acquired, err := s.records.PutIfAbsent(ctx, key, locked)
	if err != nil {
		return Decision{}, fmt.Errorf("idempotency: failed to reacquire key: %w", err)
	}
	if !acquired {
		return Decision{Type: DecisionInProgress}, nil
	}
	return Decision{Type: DecisionAcquired}, nil
}

func (s *CacheStore) Complete(ctx context.Context, request Request, response StoredResponse) error {
	key, hash, err := request.recordKey()
	if err != nil {
		return err
	}

	if _, err := s.owned(ctx, key, hash); err != nil {
		return err
	}

	record := Record{
		RequestHash: hash,
		Status:      statusCompleted,
		LockedUntil: s.now().UTC(),
		StatusCode:  response.StatusCode,
		Body:        append([]byte(nil), response.Body...),
		ContentType: strings.TrimSpace(response.ContentType),
	}
	if err := s.records.Put(ctx, key, record); err != nil {
		return fmt.Errorf("idempotency: failed to persist response: %w", err)
	}
	return nil
}

// Release forgets an in-progress key so the client may retry it, for
// instance after a server-side failure that should not be replayed.
func (s *CacheStore) Release(ctx context.Context, request Request) error {
	key, hash, err := request.recordKey()
	if err != nil {
		return err
	}

	existing, err := s.owned(ctx, key, hash)
	if err != nil {
		return err
	}
	if existing.Status == statusCompleted {
		return nil
	}

	if err := s.records.Invalidate(ctx, key); err != nil {
		return fmt.Errorf("idempotency: failed to release key: %w", err)
	}
	return nil
}

func (s *CacheStore) owned(ctx context.Context, key, hash string) (Record, error) {
	existing, found, err := s.records.GetIfPresent(ctx, key)
	if err != nil {
		return Record{}, fmt.Errorf("idempotency: failed to query key: %w", err)
	}
	if !found || existing.RequestHash != hash {
		return Record{}, ErrKeyNotFound
	}
	return existing, nil
}
