package app

import (
	"log/slog"
	"sort"
	"time"

	"github.com/joshuarp/consent-bridge/internal/services"
	"github.com/joshuarp/consent-bridge/internal/shared/cache"
	"github.com/joshuarp/consent-bridge/internal/shared/correlation"
)

// correlationTables counts the in-flight requests of this instance per flow.
// Only flows relayed through the in-process correlator appear here.
type correlationTables map[string]interface{ Pending() int }

// pending returns the flows that still wait for a callback, sorted by name.
func (t correlationTables) pending() []any {
	flows := make([]string, 0, len(t))
	for flow, table := range t {
		if table.Pending() > 0 {
			flows = append(flows, flow)
		}
	}
	sort.Strings(flows)

	attrs := make([]any, 0, 2*len(flows))
	for _, flow := range flows {
		attrs = append(attrs, flow, t[flow].Pending())
	}
	return attrs
}

// newRelay picks how callbacks of one flow reach their waiter. A local cache
// is private to the process, so the in-process correlator serves and the
// flow is tracked in tables. With redis every instance parks results in the
// shared cache and the waiter polls, wherever the callback lands.
func newRelay[T any](factory *cacheFactory, tables correlationTables, flow string, ttl time.Duration, codec cache.Codec[T], logger *slog.Logger) services.CallbackRelay[T] {
	if factory.method == cache.MethodRedis {
		return services.NewCacheRelay[T](newAdapter[T](factory, flow+"_results", ttl, codec), logger)
	}

	relay := services.NewCorrelatorRelay(correlation.New[T](logger))
	tables[flow] = relay
	return relay
}
