package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/joshuarp/consent-bridge/internal/shared/cache"
	"github.com/joshuarp/consent-bridge/internal/shared/config"
	sharedratelimit "github.com/joshuarp/consent-bridge/internal/shared/ratelimit"
)

const (
	defaultCallbackLimit  = 600
	defaultCallbackWindow = time.Minute
)

// provideCallbackRateLimiter throttles inbound gateway callbacks per client.
func provideCallbackRateLimiter(cfg config.ConfigProvider, caches *cacheFactory, logger *slog.Logger) (sharedratelimit.Limiter, error) {
	limit := cfg.GetInt("rate_limit.callbacks.limit")
	if limit <= 0 {
		limit = defaultCallbackLimit
	}

	window := cfg.GetDuration("rate_limit.callbacks.window")
	if window <= 0 {
		window = defaultCallbackWindow
	}

	counters := newAdapter[int64](caches, "ratelimit", window, cache.JSONCodec[int64]{})

	return sharedratelimit.New(counters, sharedratelimit.Config{
		Limit:  int64(limit),
		Window: window,
		OnLimited: func(_ context.Context, key string, result sharedratelimit.Result) {
			logger.Warn("rate limit exceeded", "scope", "callbacks", "key", key, "limit", result.Limit)
		},
	})
}
