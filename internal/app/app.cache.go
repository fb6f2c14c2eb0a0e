package app

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/joshuarp/consent-bridge/internal/shared/cache"
	"github.com/joshuarp/consent-bridge/internal/shared/config"
)

const defaultCachePrefix = "consent-bridge"

// cacheFactory hands out adapters of one configured method. With the redis
// method every adapter shares the same client and differs only in prefix.
type cacheFactory struct {
	method     string
	client     redis.UniversalClient
	prefix     string
	retry      cache.RetryPolicy
	maxEntries int
	logger     *slog.Logger
}

func newCacheFactory(cfg config.ConfigProvider, logger *slog.Logger) (*cacheFactory, error) {
	method := strings.TrimSpace(strings.ToLower(cfg.GetString("cache.method")))
	if method == "" {
		method = cache.MethodLocal
	}

	prefix := strings.TrimSpace(cfg.GetString("cache.prefix"))
	if prefix == "" {
		prefix = defaultCachePrefix
	}

	factory := &cacheFactory{
		method: method,
		prefix: prefix,
		retry: cache.RetryPolicy{
			Retries:   cfg.GetInt("cache.retry"),
			BaseDelay: cfg.GetDuration("cache.retry_base_delay"),
			MaxDelay:  cfg.GetDuration("cache.retry_max_delay"),
		},
		maxEntries: cfg.GetInt("cache.max_entries"),
		logger:     logger,
	}

	switch method {
	case cache.MethodLocal:
	case cache.MethodRedis:
		factory.client = provideRedisClient(cfg)
	default:
		return nil, fmt.Errorf("app: unknown cache method %q", method)
	}

	return factory, nil
}

func provideRedisClient(cfg config.ConfigProvider) redis.UniversalClient {
	host := strings.TrimSpace(cfg.GetString("redis.host"))
	if host == "" {
		host = "localhost"
	}

	port := cfg.GetInt("redis.port")
	if port == 0 {
		port = 6379
	}

	return redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs:    []string{fmt.Sprintf("%s:%d", host, port)},
		Password: cfg.GetString("redis.password"),
		DB:       cfg.GetInt("redis.db"),
	})
}

// newAdapter builds a named adapter. The codec is only used by the redis
// method; local adapters keep values in memory as they are.
func newAdapter[V any](factory *cacheFactory, name string, ttl time.Duration, codec cache.Codec[V]) cache.Adapter[V] {
	if factory.method == cache.MethodRedis {
		return cache.NewRedis[V](factory.client, codec, cache.RedisOptions{
			Prefix: factory.prefix + ":" + name,
			TTL:    ttl,
			Retry:  factory.retry,
			Logger: factory.logger.With("cache", name),
		})
	}

	return cache.NewLocal[V](cache.LocalOptions[V]{
		TTL:        ttl,
		MaxEntries: factory.maxEntries,
	})
}
