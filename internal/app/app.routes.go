package app

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/joshuarp/consent-bridge/internal/middlewares"
	"github.com/joshuarp/consent-bridge/internal/shared/cache"
	"github.com/joshuarp/consent-bridge/internal/shared/config"
	sharedidempotency "github.com/joshuarp/consent-bridge/internal/shared/idempotency"
	sharedjwt "github.com/joshuarp/consent-bridge/internal/shared/jwt"
	sharedratelimit "github.com/joshuarp/consent-bridge/internal/shared/ratelimit"
)

type routeRegistrar interface {
	Register(router fiber.Router)
}

type routeSet struct {
	health           *cache.Health
	patientVerifier  sharedjwt.Verifier
	gatewayVerifier  sharedjwt.Verifier
	idempotencyStore sharedidempotency.Store
	callbackLimiter  sharedratelimit.Limiter

	patient   []routeRegistrar
	callbacks routeRegistrar
}

func registerRoutes(app *fiber.App, cfg config.ConfigProvider, logger *slog.Logger, routes routeSet) {
	app.Use(middlewares.NewHTTPRecoveryMiddleware(logger))
	app.Use(middlewares.NewHTTPRequestIDMiddleware())
	app.Use(middlewares.NewHTTPCorrelationIDMiddleware())
	app.Use(middlewares.NewHTTPCORSMiddleware(splitList(cfg.GetString("server.cors.allow_origins"))))
	app.Use(middlewares.NewHTTPRequestResponseLogMiddleware(logger))

	app.Get("/healthz", func(c fiber.Ctx) error {
		if routes.health != nil && !routes.health.IsUp(c.Context()) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "down", "cache": "down"})
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1",
		middlewares.NewHTTPJWTMiddleware(routes.patientVerifier),
		middlewares.NewHTTPIdempotencyMiddleware(routes.idempotencyStore, logger),
	)
	for _, handler := range routes.patient {
		handler.Register(api)
	}

	if routes.callbacks == nil {
		return
	}

	callbacks := app.Group("",
		middlewares.NewHTTPJWTMiddleware(routes.gatewayVerifier),
		middlewares.NewHTTPRateLimitMiddleware(middlewares.RateLimitConfig{
			Limiter:      routes.callbackLimiter,
			Logger:       logger,
			KeyExtractor: middlewares.PerSubjectKeyExtractor("callbacks"),
		}),
	)
	routes.callbacks.Register(callbacks)
}
