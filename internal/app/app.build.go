package app

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/joshuarp/consent-bridge/internal/clients"
	"github.com/joshuarp/consent-bridge/internal/domain/vo"
	"github.com/joshuarp/consent-bridge/internal/handlers"
	"github.com/joshuarp/consent-bridge/internal/repository"
	"github.com/joshuarp/consent-bridge/internal/services"
	"github.com/joshuarp/consent-bridge/internal/shared/cache"
	"github.com/joshuarp/consent-bridge/internal/shared/config"
	"github.com/joshuarp/consent-bridge/internal/shared/dedup"
	"github.com/joshuarp/consent-bridge/internal/shared/idempotency"
	"github.com/joshuarp/consent-bridge/internal/shared/notification"
)

const (
	defaultDedupWindow       = 10 * time.Minute
	defaultIdempotencyWindow = 24 * time.Hour
	defaultProviderCacheTTL  = time.Minute
)

// Root owns every long-lived resource of the process.
type Root struct {
	Bin    string
	Config config.ConfigProvider
	Logger *slog.Logger
	App    *fiber.App

	DB        *sqlx.DB
	Redis     redis.UniversalClient
	Publisher *notification.AMQPPublisher

	Correlations correlationTables
}

// Close releases connections in reverse order of acquisition.
func (r *Root) Close() error {
	var errs []error
	if r.Publisher != nil {
		if err := r.Publisher.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if r.Redis != nil {
		if err := r.Redis.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if r.DB != nil {
		if err := r.DB.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

type rootIn struct {
	fx.In

	Bin    string `name:"bin"`
	Config config.ConfigProvider
	Logger *slog.Logger
}

func provideRoot(in rootIn) (*Root, error) {
	return Build(in.Bin, in.Config, in.Logger)
}

// Build is the composition root: it opens every connection and constructs
// every component the selected binary serves, passing references
// explicitly. On failure nothing stays open.
func Build(bin string, cfg config.ConfigProvider, logger *slog.Logger) (_ *Root, err error) {
	bin = normalizeBin(bin)
	root := &Root{Bin: bin, Config: cfg, Logger: logger}
	defer func() {
		if err != nil {
			_ = root.Close()
		}
	}()

	flows := enabledFlows(bin)

	caches, err := newCacheFactory(cfg, logger)
	if err != nil {
		return nil, err
	}
	root.Redis = caches.client

	root.DB, err = providePostgresSQLX(cfg, bin)
	if err != nil {
		return nil, err
	}

	root.Publisher, err = notification.DialAMQP(cfg.GetString("amqp.url"))
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	ids, err := provideRequestIDs()
	if err != nil {
		return nil, err
	}
	messageIDs, err := provideMessageIDs(cfg)
	if err != nil {
		return nil, err
	}

	tokens, err := provideTokenManagers(cfg)
	if err != nil {
		return nil, err
	}

	dispatcher := notification.NewDispatcher(root.Publisher, destinationsFromConfig(cfg), messageIDs, logger)
	transactions := repository.NewTransactionRepository(root.DB)
	gateway := clients.NewGatewayClient(clients.GatewayOptions{
		BaseURL:  cfg.GetString("gateway.base_url"),
		Timeout:  cfg.GetDuration("gateway.timeout"),
		ClientID: cfg.GetString("gateway.client_id"),
	}, tokens.service, logger)

	responseTimeout := cfg.GetDuration("callback.response_timeout")

	dedupWindow := cfg.GetDuration("callback.dedup_window")
	if dedupWindow <= 0 {
		dedupWindow = defaultDedupWindow
	}
	replays := dedup.New(
		newAdapter[time.Time](caches, "replay", dedupWindow, cache.TimeCodec{}),
		dedup.Options{
			Counter: newAdapter[int64](caches, "replay_count", dedupWindow, cache.JSONCodec[int64]{}),
			Logger:  logger,
		},
	)

	idempotencyWindow := cfg.GetDuration("idempotency.window")
	if idempotencyWindow <= 0 {
		idempotencyWindow = defaultIdempotencyWindow
	}
	idempotencyStore := idempotency.NewCacheStore(
		newAdapter[idempotency.Record](caches, "idempotency", idempotencyWindow, cache.JSONCodec[idempotency.Record]{}),
	)

	callbackLimiter, err := provideCallbackRateLimiter(cfg, caches, logger)
	if err != nil {
		return nil, err
	}

	root.Correlations = correlationTables{}
	resultTTL := cfg.GetDuration("cache.expiry")
	routes := routeSet{
		health:           cache.NewHealth(caches.method, caches.client),
		patientVerifier:  tokens.patient,
		gatewayVerifier:  tokens.gateway,
		idempotencyStore: idempotencyStore,
		callbackLimiter:  callbackLimiter,
	}

	var (
		discoveryCallbacks         handlers.DiscoveryCallbackService
		linkCallbacks              handlers.LinkCallbackService
		healthInformationCallbacks handlers.HealthInformationCallbackService
		consentCallbacks           handlers.ConsentCallbackService
	)

	if flows.link {
		discoveryRelay := newRelay[vo.DiscoveryResult](caches, root.Correlations, "discovery", resultTTL, cache.JSONCodec[vo.DiscoveryResult]{}, logger)
		discovery := services.NewCareContextDiscoveryService(transactions, gateway, discoveryRelay, ids, responseTimeout, logger)
		discoveryCallbacks = discovery

		// link results always go through the cache, local or shared
		linkRelay := services.NewCacheRelay[vo.LinkConfirmationResult](
			newAdapter[vo.LinkConfirmationResult](caches, "link_results", resultTTL, cache.JSONCodec[vo.LinkConfirmationResult]{}),
			logger,
		)
		links := services.NewLinkConfirmationService(transactions, gateway, linkRelay, dispatcher, ids, responseTimeout, logger)
		linkCallbacks = links

		routes.patient = append(routes.patient,
			handlers.NewCareContextDiscoveryHandler(discovery, logger),
			handlers.NewLinkConfirmationHandler(links, logger),
		)
	}

	if flows.dataFlow {
		healthInformationRelay := newRelay[vo.HealthInformationResult](caches, root.Correlations, "health_information", resultTTL, cache.JSONCodec[vo.HealthInformationResult]{}, logger)
		providerTTL := cfg.GetDuration("cache.consent_provider_ttl")
		if providerTTL <= 0 {
			providerTTL = defaultProviderCacheTTL
		}
		providers := repository.NewConsentProviderCache(transactions, providerTTL, cfg.GetInt("cache.max_entries"))

		healthInformation := services.NewHealthInformationRequestService(providers, gateway, healthInformationRelay, dispatcher, ids, responseTimeout, logger)
		healthInformationCallbacks = healthInformation

		routes.patient = append(routes.patient, handlers.NewHealthInformationRequestHandler(healthInformation, logger))
	}

	if flows.consent {
		consentRelay := newRelay[vo.ConsentRequestResult](caches, root.Correlations, "consent_request", resultTTL, cache.JSONCodec[vo.ConsentRequestResult]{}, logger)
		consents := services.NewConsentRequestService(transactions, gateway, consentRelay, dispatcher, ids, responseTimeout, logger)
		consentCallbacks = consents

		routes.patient = append(routes.patient, handlers.NewConsentRequestHandler(consents, logger))
	}

	routes.callbacks = handlers.NewGatewayCallbackHandler(replays, discoveryCallbacks, linkCallbacks, healthInformationCallbacks, consentCallbacks, logger)

	root.App = newFiberApp(cfg)
	registerRoutes(root.App, cfg, logger, routes)

	logger.Info("components built",
		"bin", bin,
		"cache_method", caches.method,
		"link_flows", flows.link,
		"data_flows", flows.dataFlow,
		"consent_flows", flows.consent,
	)
	return root, nil
}

type flowSet struct {
	link     bool
	dataFlow bool
	consent  bool
}

func enabledFlows(bin string) flowSet {
	switch normalizeBin(bin) {
	case BinLink:
		return flowSet{link: true}
	case BinDataFlow:
		return flowSet{dataFlow: true}
	case BinConsent:
		return flowSet{consent: true}
	default:
		return flowSet{link: true, dataFlow: true, consent: true}
	}
}
