package middlewares

import (
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/joshuarp/consent-bridge/internal/shared/ratelimit"
)

type RateLimitConfig struct {
	Limiter      ratelimit.Limiter
	KeyExtractor func(c fiber.Ctx) string
	Logger       *slog.Logger
}

func NewHTTPRateLimitMiddleware(cfg RateLimitConfig) fiber.Handler {
	if cfg.Limiter == nil {
		return func(c fiber.Ctx) error {
			return c.Next()
		}
	}

	if cfg.KeyExtractor == nil {
		cfg.KeyExtractor = PerSubjectKeyExtractor("")
	}

	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return func(c fiber.Ctx) error {
		key := cfg.KeyExtractor(c)

		result, err := cfg.Limiter.AllowKey(RequestContext(c), key)
		if err != nil {
			cfg.Logger.Error("rate limit check failed", "error", err, "key", key)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "internal server error",
			})
		}

		c.Set("X-RateLimit-Limit", strconv.FormatInt(result.Limit, 10))
		c.Set("X-RateLimit-Remaining", strconv.FormatInt(result.Remaining, 10))

		if !result.Allowed {
			retryAfter := int(result.RetryAfter.Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(retryAfter))

			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error":       "rate limit exceeded",
				"retry_after": retryAfter,
			})
		}

		return c.Next()
	}
}

// PerSubjectKeyExtractor keys on the authenticated subject, falling back to
// the client address.
func PerSubjectKeyExtractor(prefix string) func(c fiber.Ctx) string {
	return func(c fiber.Ctx) string {
		key := "ip:" + c.IP()
		if subject := SubjectFromContext(c); subject != "" {
			key = "subject:" + subject
		}
		if prefix != "" {
			return prefix + ":" + key
		}
		return key
	}
}
