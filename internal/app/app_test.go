package app

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/joshuarp/consent-bridge/internal/domain/vo"
	configmocks "github.com/joshuarp/consent-bridge/internal/mock/shared/config"
	"github.com/joshuarp/consent-bridge/internal/services"
	"github.com/joshuarp/consent-bridge/internal/shared/cache"
	"github.com/joshuarp/consent-bridge/internal/shared/config"
	"github.com/joshuarp/consent-bridge/internal/shared/correlation"
	"github.com/joshuarp/consent-bridge/internal/shared/idempotency"
	"github.com/joshuarp/consent-bridge/internal/shared/notification"
)

const testSecret = "12345678901234567890123456789012"

var discardLogger = slog.New(slog.DiscardHandler)

func newYAMLConfig(t *testing.T, body string) config.ConfigProvider {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := config.Init(config.Options{YAMLPath: path})
	require.NoError(t, err)
	return cfg
}

type AppHelpersSuite struct {
	suite.Suite

	cfg *configmocks.ConfigProvider
}

func (s *AppHelpersSuite) SetupTest() {
	s.cfg = configmocks.NewConfigProvider(s.T())
}

func (s *AppHelpersSuite) TestNormalizeBin_TableDriven() {
	tests := []struct {
		name       string
		bin        string
		expect     string
		singleBin  bool
		expectFlow flowSet
	}{
		{name: "empty runs everything", bin: "", expect: BinAll, singleBin: true, expectFlow: flowSet{link: true, dataFlow: true, consent: true}},
		{name: "mixed case all", bin: " All ", expect: BinAll, singleBin: true, expectFlow: flowSet{link: true, dataFlow: true, consent: true}},
		{name: "link only", bin: "LINK", expect: BinLink, expectFlow: flowSet{link: true}},
		{name: "dataflow only", bin: "dataflow", expect: BinDataFlow, expectFlow: flowSet{dataFlow: true}},
		{name: "consent only", bin: " consent", expect: BinConsent, expectFlow: flowSet{consent: true}},
		{name: "dashed dataflow alias", bin: "data-flow", expect: BinDataFlow, expectFlow: flowSet{dataFlow: true}},
		{name: "unknown falls back to all", bin: "inquiry", expect: BinAll, singleBin: true, expectFlow: flowSet{link: true, dataFlow: true, consent: true}},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			assert.Equal(s.T(), tc.expect, normalizeBin(tc.bin))
			assert.Equal(s.T(), tc.singleBin, isSingleBinaryBin(normalizeBin(tc.bin)))
			assert.Equal(s.T(), tc.expectFlow, enabledFlows(tc.bin))
		})
	}
}

func (s *AppHelpersSuite) TestModuleDBString_TableDriven() {
	tests := []struct {
		name            string
		useModuleConfig bool
		setupMock       func()
		expect          string
	}{
		{
			name:            "prefer module yaml key",
			useModuleConfig: true,
			setupMock: func() {
				s.cfg.EXPECT().IsSet("database.link.host").Return(true)
				s.cfg.EXPECT().GetString("database.link.host").Return("link-host")
			},
			expect: "link-host",
		},
		{
			name:            "fallback to module env key",
			useModuleConfig: true,
			setupMock: func() {
				s.cfg.EXPECT().IsSet("database.link.host").Return(false)
				s.cfg.EXPECT().IsSet("DATABASE_LINK_HOST").Return(true)
				s.cfg.EXPECT().GetString("DATABASE_LINK_HOST").Return("link-env-host")
			},
			expect: "link-env-host",
		},
		{
			name:            "module config falls through to global yaml key",
			useModuleConfig: true,
			setupMock: func() {
				s.cfg.EXPECT().IsSet("database.link.host").Return(false)
				s.cfg.EXPECT().IsSet("DATABASE_LINK_HOST").Return(false)
				s.cfg.EXPECT().IsSet("database.host").Return(true)
				s.cfg.EXPECT().GetString("database.host").Return("global-host")
			},
			expect: "global-host",
		},
		{
			name:            "fallback to global env key",
			useModuleConfig: false,
			setupMock: func() {
				s.cfg.EXPECT().IsSet("database.host").Return(false)
				s.cfg.EXPECT().GetString("DATABASE_HOST").Return("global-env-host")
			},
			expect: "global-env-host",
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			tc.setupMock()

			value := moduleDBString(s.cfg, "link", "host", tc.useModuleConfig)
			assert.Equal(s.T(), tc.expect, value)
		})
	}
}

func (s *AppHelpersSuite) TestModuleDBInt_TableDriven() {
	tests := []struct {
		name            string
		useModuleConfig bool
		setupMock       func()
		expect          int
	}{
		{
			name:            "prefer module yaml int",
			useModuleConfig: true,
			setupMock: func() {
				s.cfg.EXPECT().IsSet("database.dataflow.port").Return(true)
				s.cfg.EXPECT().GetInt("database.dataflow.port").Return(5433)
			},
			expect: 5433,
		},
		{
			name:            "fallback to global env int",
			useModuleConfig: false,
			setupMock: func() {
				s.cfg.EXPECT().IsSet("database.port").Return(false)
				s.cfg.EXPECT().GetInt("DATABASE_PORT").Return(5432)
			},
			expect: 5432,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			tc.setupMock()

			value := moduleDBInt(s.cfg, "dataflow", "port", tc.useModuleConfig)
			assert.Equal(s.T(), tc.expect, value)
		})
	}
}

func (s *AppHelpersSuite) TestNewFiberApp_TableDriven() {
	tests := []struct {
		name       string
		readValue  time.Duration
		writeValue time.Duration
	}{
		{name: "defaults when config missing", readValue: 0, writeValue: 0},
		{name: "uses configured timeout", readValue: 10 * time.Second, writeValue: 12 * time.Second},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.cfg.EXPECT().GetDuration("server.read_timeout").Return(tc.readValue)
			s.cfg.EXPECT().GetDuration("server.write_timeout").Return(tc.writeValue)
			s.cfg.EXPECT().GetString("app.name").Return("consent-bridge")

			assert.NotNil(s.T(), newFiberApp(s.cfg))
		})
	}
}

func (s *AppHelpersSuite) TestProvideJWTTokenManager_TableDriven() {
	tests := []struct {
		name      string
		secret    string
		algorithm string
		expectErr string
	}{
		{name: "valid secret", secret: testSecret, algorithm: "HS256"},
		{name: "short secret", secret: "short", algorithm: "HS256", expectErr: "app: gateway token manager"},
		{name: "unsupported algorithm", secret: testSecret, algorithm: "RS256", expectErr: "unsupported HMAC algorithm"},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.cfg.EXPECT().GetString("security.jwt.gateway.secret").Return(tc.secret)
			s.cfg.EXPECT().GetString("security.jwt.gateway.algorithm").Return(tc.algorithm).Maybe()
			s.cfg.EXPECT().GetString("security.jwt.gateway.issuer").Return("gateway").Maybe()
			s.cfg.EXPECT().GetString("security.jwt.gateway.audience").Return("consent-bridge, hip").Maybe()
			s.cfg.EXPECT().GetDuration("security.jwt.gateway.ttl").Return(5 * time.Minute).Maybe()

			manager, err := provideJWTTokenManager(s.cfg, "gateway")
			if tc.expectErr != "" {
				assert.ErrorContains(s.T(), err, tc.expectErr)
				assert.Nil(s.T(), manager)
				return
			}
			assert.NoError(s.T(), err)
			assert.NotNil(s.T(), manager)
		})
	}
}

func (s *AppHelpersSuite) TestSplitList() {
	assert.Equal(s.T(), []string{"a", "b"}, splitList(" a ,, b "))
	assert.Nil(s.T(), splitList(""))
}

func TestAppHelpersSuite(t *testing.T) {
	suite.Run(t, new(AppHelpersSuite))
}

func TestDestinationsFromConfig(t *testing.T) {
	cfg := newYAMLConfig(t, `
notification:
  destinations:
    hip-link-queue:
      exchange: hip
      routing_key: hip.link
    consent-request-queue:
      exchange: consent
    unknown-field-queue:
      priority: 3
`)

	destinations := destinationsFromConfig(cfg)

	assert.Equal(t, notification.Destination{Exchange: "hip", RoutingKey: "hip.link"}, destinations[notification.QueueLink])
	assert.Equal(t, notification.Destination{Exchange: "consent", RoutingKey: notification.QueueConsentRequest}, destinations[notification.QueueConsentRequest])
	assert.Equal(t, notification.Destination{RoutingKey: notification.QueueDataFlowRequest}, destinations[notification.QueueDataFlowRequest])
	assert.NotContains(t, destinations, "unknown-field-queue")
}

func TestProvideMessageIDs(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		expectErr bool
	}{
		{name: "defaults to uuidv7", body: "app:\n  name: test\n"},
		{name: "snowflake with node id", body: "notification:\n  message_id:\n    strategy: Snowflake\n    node_id: 7\n"},
		{name: "unknown strategy", body: "notification:\n  message_id:\n    strategy: ulid\n", expectErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			generator, err := provideMessageIDs(newYAMLConfig(t, tc.body))
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			id, err := generator.Generate(context.Background())
			require.NoError(t, err)
			assert.NotEmpty(t, id)
		})
	}
}

func TestNewCacheFactory(t *testing.T) {
	t.Run("defaults to local", func(t *testing.T) {
		factory, err := newCacheFactory(newYAMLConfig(t, "app:\n  name: test\n"), discardLogger)
		require.NoError(t, err)
		assert.Equal(t, cache.MethodLocal, factory.method)
		assert.Nil(t, factory.client)
		assert.Equal(t, defaultCachePrefix, factory.prefix)

		adapter := newAdapter[string](factory, "names", time.Minute, cache.StringCodec{})
		assert.IsType(t, &cache.Local[string]{}, adapter)
	})

	t.Run("rejects unknown method", func(t *testing.T) {
		_, err := newCacheFactory(newYAMLConfig(t, "cache:\n  method: memcached\n"), discardLogger)
		assert.ErrorContains(t, err, `unknown cache method "memcached"`)
	})

	t.Run("redis adapters share one client", func(t *testing.T) {
		server := miniredis.RunT(t)
		port, err := strconv.Atoi(server.Port())
		require.NoError(t, err)

		cfg := newYAMLConfig(t, "cache:\n  method: redis\n  prefix: test\nredis:\n  host: "+server.Host()+"\n  port: "+strconv.Itoa(port)+"\n")
		factory, err := newCacheFactory(cfg, discardLogger)
		require.NoError(t, err)
		t.Cleanup(func() { _ = factory.client.Close() })

		records := newAdapter[idempotency.Record](factory, "idempotency", time.Minute, cache.JSONCodec[idempotency.Record]{})
		require.NoError(t, records.Put(context.Background(), "k", idempotency.Record{RequestHash: "h", Status: "completed"}))

		raw, err := server.Get("test:idempotency:k")
		require.NoError(t, err)
		assert.Contains(t, raw, `"h"`)

		assert.True(t, cache.NewHealth(factory.method, factory.client).IsUp(context.Background()))
	})
}

func TestProvideCallbackRateLimiter(t *testing.T) {
	cfg := newYAMLConfig(t, "rate_limit:\n  callbacks:\n    limit: 2\n    window: 1m\n")
	factory, err := newCacheFactory(cfg, discardLogger)
	require.NoError(t, err)

	limiter, err := provideCallbackRateLimiter(cfg, factory, discardLogger)
	require.NoError(t, err)

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		result, err := limiter.AllowKey(ctx, "callbacks:subject:gateway")
		require.NoError(t, err)
		assert.True(t, result.Allowed)
	}

	result, err := limiter.AllowKey(ctx, "callbacks:subject:gateway")
	require.NoError(t, err)
	assert.False(t, result.Allowed)
	assert.Equal(t, int64(2), result.Limit)
}

type recordingRegistrar struct {
	paths []string
}

func (r *recordingRegistrar) Register(router fiber.Router) {
	for _, path := range r.paths {
		router.Post(path, func(c fiber.Ctx) error {
			return c.SendStatus(fiber.StatusAccepted)
		})
	}
}

func TestRegisterRoutes(t *testing.T) {
	cfg := newYAMLConfig(t, `
security:
  jwt:
    patient:
      secret: "`+testSecret+`"
    gateway:
      secret: "`+testSecret+`"
`)
	patient, err := provideJWTTokenManager(cfg, "patient")
	require.NoError(t, err)
	gateway, err := provideJWTTokenManager(cfg, "gateway")
	require.NoError(t, err)

	factory, err := newCacheFactory(cfg, discardLogger)
	require.NoError(t, err)
	limiter, err := provideCallbackRateLimiter(cfg, factory, discardLogger)
	require.NoError(t, err)

	app := fiber.New()
	registerRoutes(app, cfg, discardLogger, routeSet{
		health:           cache.NewHealth(cache.MethodLocal, nil),
		patientVerifier:  patient,
		gatewayVerifier:  gateway,
		idempotencyStore: idempotency.NewCacheStore(newAdapter[idempotency.Record](factory, "idempotency", time.Minute, cache.JSONCodec[idempotency.Record]{})),
		callbackLimiter:  limiter,
		patient:          []routeRegistrar{&recordingRegistrar{paths: []string{"/care-contexts/discover"}}},
		callbacks:        &recordingRegistrar{paths: []string{"/v1/care-contexts/on-discover"}},
	})

	tests := []struct {
		name         string
		method       string
		path         string
		expectStatus int
	}{
		{name: "health is public", method: http.MethodGet, path: "/healthz", expectStatus: fiber.StatusOK},
		{name: "patient route requires token", method: http.MethodPost, path: "/api/v1/care-contexts/discover", expectStatus: fiber.StatusUnauthorized},
		{name: "callback route requires token", method: http.MethodPost, path: "/v1/care-contexts/on-discover", expectStatus: fiber.StatusUnauthorized},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(tc.method, tc.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tc.expectStatus, resp.StatusCode)
			assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
		})
	}
}

func TestRootClose_NothingOpen(t *testing.T) {
	assert.NoError(t, (&Root{}).Close())
}

func TestCorrelationTablesPending(t *testing.T) {
	var missing correlationTables
	assert.Empty(t, missing.pending())

	discovery := correlation.New[vo.DiscoveryResult](discardLogger)
	tables := correlationTables{
		"health_information": correlation.New[vo.HealthInformationResult](discardLogger),
		"discovery":          discovery,
	}
	assert.Empty(t, tables.pending())

	_, err := discovery.Register("req-1", time.Now().Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, []any{"discovery", 1}, tables.pending())
}

func TestNewRelay(t *testing.T) {
	t.Run("local cache keeps callbacks in process", func(t *testing.T) {
		factory, err := newCacheFactory(newYAMLConfig(t, "cache:\n  method: local\n"), discardLogger)
		require.NoError(t, err)

		tables := correlationTables{}
		relay := newRelay[vo.DiscoveryResult](factory, tables, "discovery", time.Minute, cache.JSONCodec[vo.DiscoveryResult]{}, discardLogger)
		assert.IsType(t, &services.CorrelatorRelay[vo.DiscoveryResult]{}, relay)
		assert.Contains(t, tables, "discovery")
	})

	t.Run("redis cache shares results across instances", func(t *testing.T) {
		server := miniredis.RunT(t)
		cfg := newYAMLConfig(t, "cache:\n  method: redis\n  prefix: test\nredis:\n  host: "+server.Host()+"\n  port: "+server.Port()+"\n")
		factory, err := newCacheFactory(cfg, discardLogger)
		require.NoError(t, err)
		t.Cleanup(func() { _ = factory.client.Close() })

		tables := correlationTables{}
		first := newRelay[vo.DiscoveryResult](factory, tables, "discovery", time.Minute, cache.JSONCodec[vo.DiscoveryResult]{}, discardLogger)
		second := newRelay[vo.DiscoveryResult](factory, tables, "discovery", time.Minute, cache.JSONCodec[vo.DiscoveryResult]{}, discardLogger)
		assert.IsType(t, &services.CacheRelay[vo.DiscoveryResult]{}, first)
		assert.Empty(t, tables)

		delivered, err := second.Deliver(context.Background(), "req-1", vo.DiscoveryResult{RequestID: "cb-1"})
		require.NoError(t, err)
		assert.True(t, delivered)
		assert.True(t, server.Exists("test:discovery_results:req-1"))

		result, err := first.Await(context.Background(), "req-1", time.Second, func(context.Context) error { return nil })
		require.NoError(t, err)
		assert.Equal(t, "cb-1", result.RequestID)
	})
}
