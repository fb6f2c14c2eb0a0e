package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultRedisTTL = 5 * time.Minute

var _ Adapter[string] = (*Redis[string])(nil)

// incrementScript starts the counter TTL on the first increment only, so the
// window is measured from the first hit.
var incrementScript = redis.NewScript(`
local current = redis.call('INCR', KEYS[1])
if current == 1 then
	redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
return current
`)

// RedisOptions configures a Redis adapter.
type RedisOptions struct {
	// Prefix is prepended to every key as "<prefix>:<key>".
	Prefix string

	// TTL applied on Put, PutIfAbsent and the first Increment.
	TTL time.Duration

	Retry  RetryPolicy
	Logger *slog.Logger
}

// Redis is the distributed adapter. It is safe for multi-instance
// deployments; every command is retried according to the RetryPolicy.
type Redis[V any] struct {
	client redis.UniversalClient
	codec  Codec[V]
	prefix string
	ttl    time.Duration
	retry  RetryPolicy
	logger *slog.Logger
}

func NewRedis[V any](client redis.UniversalClient, codec Codec[V], opts RedisOptions) *Redis[V] {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = defaultRedisTTL
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Redis[V]{
		client: client,
		codec:  codec,
		prefix: opts.Prefix,
		ttl:    ttl,
		retry:  opts.Retry,
		logger: logger,
	}
}

func (r *Redis[V]) Get(ctx context.Context, key string) (V, bool, error) {
	var (
		raw   string
		found bool
	)
	err := r.retry.do(ctx, r.logger, "get", key, func() error {
		value, err := r.client.Get(ctx, r.fullKey(key)).Result()
		if errors.Is(err, redis.Nil) {
			found = false
			return nil
		}
		if err != nil {
			return err
		}
		raw, found = value, true
		return nil
	})

	var zero V
	if err != nil || !found {
		return zero, false, err
	}

	value, err := r.codec.Decode(raw)
	if err != nil {
		return zero, false, err
	}
	return value, true, nil
}

// GetIfPresent is identical to Get: the distributed adapter never loads on a miss.
func (r *Redis[V]) GetIfPresent(ctx context.Context, key string) (V, bool, error) {
	return r.Get(ctx, key)
}

func (r *Redis[V]) Put(ctx context.Context, key string, value V) error {
	encoded, err := r.codec.Encode(value)
	if err != nil {
		return err
	}

	return r.retry.do(ctx, r.logger, "put", key, func() error {
		return r.client.Set(ctx, r.fullKey(key), encoded, r.ttl).Err()
	})
}

func (r *Redis[V]) PutIfAbsent(ctx context.Context, key string, value V) (bool, error) {
	encoded, err := r.codec.Encode(value)
	if err != nil {
		return false, err
	}

	var stored bool
	err = r.retry.do(ctx, r.logger, "put_if_absent", key, func() error {
		ok, err := r.client.SetNX(ctx, r.fullKey(key), encoded, r.ttl).Result()
		if err != nil {
			return err
		}
		stored = ok
		return nil
	})
	return stored, err
}

// Invalidate expires the key now rather than deleting it, which replicas
// apply the same way.
func (r *Redis[V]) Invalidate(ctx context.Context, key string) error {
	return r.retry.do(ctx, r.logger, "invalidate", key, func() error {
		return r.client.PExpire(ctx, r.fullKey(key), 0).Err()
	})
}

func (r *Redis[V]) Exists(ctx context.Context, key string) (bool, error) {
	var exists bool
	err := r.retry.do(ctx, r.logger, "exists", key, func() error {
		count, err := r.client.Exists(ctx, r.fullKey(key)).Result()
		if err != nil {
			return err
		}
		exists = count > 0
		return nil
	})
	return exists, err
}

func (r *Redis[V]) Increment(ctx context.Context, key string) (int64, error) {
	var current int64
	err := r.retry.do(ctx, r.logger, "increment", key, func() error {
		value, err := incrementScript.Run(ctx, r.client, []string{r.fullKey(key)}, r.ttl.Milliseconds()).Int64()
		if err != nil {
			return err
		}
		current = value
		return nil
	})
	return current, err
}

func (r *Redis[V]) fullKey(key string) string {
	if r.prefix == "" {
		return key
	}
	return r.prefix + ":" + key
}
