package idempotency

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	cachemocks "github.com/joshuarp/consent-bridge/internal/mock/shared/cache"
	"github.com/joshuarp/consent-bridge/internal/shared/cache"
)

type CacheStoreSuite struct {
	suite.Suite

	ctx     context.Context
	now     time.Time
	records *cache.Local[Record]
	store   *CacheStore
	request Request
}

func (s *CacheStoreSuite) SetupTest() {
	s.ctx = context.Background()
	s.now = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	s.records = cache.NewLocal[Record](cache.LocalOptions[Record]{TTL: time.Hour})
	s.store = NewCacheStore(s.records)
	s.store.now = func() time.Time { return s.now }
	s.request = Request{Scope: "links", Key: "key-1", RequestHash: "hash-1", LockTTL: 30 * time.Second}
}

func (s *CacheStoreSuite) TestAcquire_FirstCallerWins() {
	decision, err := s.store.Acquire(s.ctx, s.request)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), DecisionAcquired, decision.Type)

	decision, err = s.store.Acquire(s.ctx, s.request)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), DecisionInProgress, decision.Type)
}

func (s *CacheStoreSuite) TestAcquire_DifferentPayloadConflicts() {
	_, err := s.store.Acquire(s.ctx, s.request)
	require.NoError(s.T(), err)

	other := s.request
	other.RequestHash = "hash-2"
	decision, err := s.store.Acquire(s.ctx, other)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), DecisionConflict, decision.Type)
}

func (s *CacheStoreSuite) TestAcquire_ReplaysCompletedResponse() {
	_, err := s.store.Acquire(s.ctx, s.request)
	require.NoError(s.T(), err)

	err = s.store.Complete(s.ctx, s.request, StoredResponse{
		StatusCode:  200,
		Body:        []byte(`{"status":"ok"}`),
		ContentType: " application/json ",
	})
	require.NoError(s.T(), err)

	decision, err := s.store.Acquire(s.ctx, s.request)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), DecisionReplay, decision.Type)
	assert.Equal(s.T(), 200, decision.StatusCode)
	assert.JSONEq(s.T(), `{"status":"ok"}`, string(decision.Body))
	assert.Equal(s.T(), "application/json", decision.ContentType)
}

func (s *CacheStoreSuite) TestAcquire_StaleLockIsReacquired() {
	_, err := s.store.Acquire(s.ctx, s.request)
	require.NoError(s.T(), err)

	s.now = s.now.Add(time.Minute)

	decision, err := s.store.Acquire(s.ctx, s.request)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), DecisionAcquired, decision.Type)

	record, found, err := s.records.GetIfPresent(s.ctx, "idempotency_links:key-1")
	require.NoError(s.T(), err)
	require.True(s.T(), found)
	assert.Equal(s.T(), s.now.Add(30*time.Second), record.LockedUntil)
}

func (s *CacheStoreSuite) TestRelease_AllowsRetry() {
	_, err := s.store.Acquire(s.ctx, s.request)
	require.NoError(s.T(), err)

	require.NoError(s.T(), s.store.Release(s.ctx, s.request))

	decision, err := s.store.Acquire(s.ctx, s.request)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), DecisionAcquired, decision.Type)
}

func (s *CacheStoreSuite) TestRelease_KeepsCompletedResponse() {
	_, err := s.store.Acquire(s.ctx, s.request)
	require.NoError(s.T(), err)
	require.NoError(s.T(), s.store.Complete(s.ctx, s.request, StoredResponse{StatusCode: 201}))

	require.NoError(s.T(), s.store.Release(s.ctx, s.request))

	decision, err := s.store.Acquire(s.ctx, s.request)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), DecisionReplay, decision.Type)
	assert.Equal(s.T(), 201, decision.StatusCode)
}

func (s *CacheStoreSuite) TestComplete_UnknownKey() {
	err := s.store.Complete(s.ctx, s.request, StoredResponse{StatusCode: 200})
	assert.ErrorIs(s.T(), err, ErrKeyNotFound)

	_, err = s.store.Acquire(s.ctx, s.request)
	require.NoError(s.T(), err)

	other := s.request
	other.RequestHash = "hash-2"
	err = s.store.Complete(s.ctx, other, StoredResponse{StatusCode: 200})
	assert.ErrorIs(s.T(), err, ErrKeyNotFound)
}

func (s *CacheStoreSuite) TestValidation_TableDriven() {
	tests := []struct {
		name    string
		request Request
		wantErr error
	}{
		{name: "scope", request: Request{Key: "k", RequestHash: "h"}, wantErr: ErrScopeRequired},
		{name: "key", request: Request{Scope: "s", Key: "  ", RequestHash: "h"}, wantErr: ErrKeyRequired},
		{name: "hash", request: Request{Scope: "s", Key: "k"}, wantErr: ErrRequestHashRequired},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			_, err := s.store.Acquire(s.ctx, tc.request)
			assert.ErrorIs(s.T(), err, tc.wantErr)

			assert.ErrorIs(s.T(), s.store.Complete(s.ctx, tc.request, StoredResponse{}), tc.wantErr)
			assert.ErrorIs(s.T(), s.store.Release(s.ctx, tc.request), tc.wantErr)
		})
	}
}

func TestCacheStoreSuite(t *testing.T) {
	suite.Run(t, new(CacheStoreSuite))
}

func TestAcquire_CacheFailures(t *testing.T) {
	cacheDown := fmt.Errorf("%w: connection refused", cache.ErrCacheNotAccessible)
	request := Request{Scope: "links", Key: "key-1", RequestHash: "hash-1"}
	key := "idempotency_links:key-1"

	tests := []struct {
		name      string
		setupMock func(records *cachemocks.Adapter[Record])
		assertion func(t *testing.T, decision Decision, err error)
	}{
		{
			name: "acquire failure",
			setupMock: func(records *cachemocks.Adapter[Record]) {
				records.EXPECT().PutIfAbsent(mock.Anything, key, mock.Anything).Return(false, cacheDown).Once()
			},
			assertion: func(t *testing.T, _ Decision, err error) {
				assert.ErrorIs(t, err, cache.ErrCacheNotAccessible)
			},
		},
		{
			name: "lookup failure",
			setupMock: func(records *cachemocks.Adapter[Record]) {
				records.EXPECT().PutIfAbsent(mock.Anything, key, mock.Anything).Return(false, nil).Once()
				records.EXPECT().GetIfPresent(mock.Anything, key).Return(Record{}, false, cacheDown).Once()
			},
			assertion: func(t *testing.T, _ Decision, err error) {
				assert.ErrorIs(t, err, cache.ErrCacheNotAccessible)
			},
		},
		{
			name: "record expired between calls",
			setupMock: func(records *cachemocks.Adapter[Record]) {
				records.EXPECT().PutIfAbsent(mock.Anything, key, mock.Anything).Return(false, nil).Once()
				records.EXPECT().GetIfPresent(mock.Anything, key).Return(Record{}, false, nil).Once()
				records.EXPECT().PutIfAbsent(mock.Anything, key, mock.Anything).Return(true, nil).Once()
			},
			assertion: func(t *testing.T, decision Decision, err error) {
				require.NoError(t, err)
				assert.Equal(t, DecisionAcquired, decision.Type)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			records := cachemocks.NewAdapter[Record](t)
			tc.setupMock(records)

			decision, err := NewCacheStore(records).Acquire(context.Background(), request)
			tc.assertion(t, decision, err)
		})
	}
}

func TestRequestRecordKey(t *testing.T) {
	tests := []struct {
		name       string
		request    Request
		expectKey  string
		expectHash string
		expectErr  error
	}{
		{name: "trims every part", request: Request{Scope: " links ", Key: " key-1 ", RequestHash: " h "}, expectKey: "idempotency_links:key-1", expectHash: "h"},
		{name: "scope required", request: Request{Key: "k", RequestHash: "h"}, expectErr: ErrScopeRequired},
		{name: "key required", request: Request{Scope: "s", Key: "  ", RequestHash: "h"}, expectErr: ErrKeyRequired},
		{name: "hash required", request: Request{Scope: "s", Key: "k"}, expectErr: ErrRequestHashRequired},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			key, hash, err := tc.request.recordKey()
			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expectKey, key)
			assert.Equal(t, tc.expectHash, hash)
		})
	}
}
