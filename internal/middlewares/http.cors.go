package middlewares

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"

	sharedlog "github.com/joshuarp/consent-bridge/internal/shared/log"
)

func NewHTTPCORSMiddleware(allowOrigins []string) fiber.Handler {
	if len(allowOrigins) == 0 {
		allowOrigins = []string{"*"}
	}

	return cors.New(cors.Config{
		AllowOrigins:  allowOrigins,
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", sharedlog.CorrelationIDHeader, IdempotencyKeyHeader},
		AllowMethods:  []string{fiber.MethodGet, fiber.MethodPost, fiber.MethodOptions},
		ExposeHeaders: []string{sharedlog.CorrelationIDHeader, RequestIDHeader},
	})
}
