package app

import (
	"fmt"
	"strings"

	"github.com/joshuarp/consent-bridge/internal/shared/config"
	"github.com/joshuarp/consent-bridge/internal/shared/notification"
	"github.com/joshuarp/consent-bridge/internal/shared/uid"
)

// destinationsFromConfig overlays notification.destinations.<queue>.exchange
// and .routing_key on the default one-queue-per-key layout.
func destinationsFromConfig(cfg config.ConfigProvider) notification.Destinations {
	destinations := notification.DefaultDestinations()

	for key, value := range cfg.GetStringMapString("notification.destinations") {
		queue, field, ok := strings.Cut(key, ".")
		if !ok {
			continue
		}

		destination := destinations[queue]
		switch field {
		case "exchange":
			destination.Exchange = value
		case "routing_key":
			destination.RoutingKey = value
		default:
			continue
		}
		destinations[queue] = destination
	}

	return destinations
}

// provideRequestIDs mints gateway request ids and transaction ids. The
// gateway expects UUIDs, so the strategy is fixed.
func provideRequestIDs() (uid.UIDGenerator, error) {
	return uid.New(uid.Options{Strategy: uid.StrategyUUIDv7})
}

// provideMessageIDs mints broker message ids.
func provideMessageIDs(cfg config.ConfigProvider) (uid.UIDGenerator, error) {
	strategy := uid.Strategy(strings.TrimSpace(strings.ToLower(cfg.GetString("notification.message_id.strategy"))))
	generator, err := uid.New(uid.Options{
		Strategy: strategy,
		NodeID:   int64(cfg.GetInt("notification.message_id.node_id")),
	})
	if err != nil {
		return nil, fmt.Errorf("app: message id generator: %w", err)
	}
	return generator, nil
}
