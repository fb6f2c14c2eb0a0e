package cache

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const healthProbeTimeout = 2 * time.Second

// Health reports whether the configured cache backing store is reachable.
// The local method has no remote dependency and is always up.
type Health struct {
	method string
	client redis.UniversalClient
}

func NewHealth(method string, client redis.UniversalClient) *Health {
	return &Health{method: strings.ToLower(strings.TrimSpace(method)), client: client}
}

func (h *Health) IsUp(ctx context.Context) bool {
	if h.method != MethodRedis {
		return true
	}
	if h.client == nil {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, healthProbeTimeout)
	defer cancel()
	return h.client.Ping(ctx).Err() == nil
}
