package middlewares

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v3"

	sharedidempotency "github.com/joshuarp/consent-bridge/internal/shared/idempotency"
)

const IdempotencyKeyHeader = "X-Idempotency-Key"

// NewHTTPIdempotencyMiddleware replays the stored response of a repeated
// submission. Requests without the header pass through. A server-side
// failure releases the key so the client can retry.
func NewHTTPIdempotencyMiddleware(store sharedidempotency.Store, logger *slog.Logger) fiber.Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return func(c fiber.Ctx) error {
		idempotencyKey := strings.TrimSpace(c.Get(IdempotencyKeyHeader))
		if idempotencyKey == "" {
			return c.Next()
		}

		if store == nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "idempotency store is not available"})
		}

		subject := SubjectFromContext(c)
		if strings.TrimSpace(subject) == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing authenticated user"})
		}

		requestBody := append([]byte(nil), c.BodyRaw()...)
		request := sharedidempotency.Request{
			Scope:       fmt.Sprintf("%s:%s", c.Path(), subject),
			Key:         idempotencyKey,
			RequestHash: requestHash(c.Method(), c.Path(), subject, requestBody),
		}

		ctx := RequestContext(c)
		decision, err := store.Acquire(ctx, request)
		if err != nil {
			logger.Error("idempotency acquire failed", "error", err, "correlation_id", CorrelationIDFromContext(c))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to acquire idempotency key"})
		}

		switch decision.Type {
		case sharedidempotency.DecisionReplay:
			if decision.ContentType != "" {
				c.Set(fiber.HeaderContentType, decision.ContentType)
			}
			if decision.StatusCode <= 0 {
				decision.StatusCode = fiber.StatusOK
			}

			return c.Status(decision.StatusCode).Send(decision.Body)
		case sharedidempotency.DecisionInProgress:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "request is already in progress"})
		case sharedidempotency.DecisionConflict:
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "idempotency key reused with different payload"})
		case sharedidempotency.DecisionAcquired:
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "invalid idempotency state"})
		}

		handlerErr := c.Next()
		statusCode := c.Response().StatusCode()

		if handlerErr != nil || statusCode >= fiber.StatusInternalServerError {
			if err := store.Release(ctx, request); err != nil {
				logger.Warn("idempotency release failed", "error", err, "correlation_id", CorrelationIDFromContext(c))
			}
			return handlerErr
		}

		response := sharedidempotency.StoredResponse{
			StatusCode:  statusCode,
			Body:        append([]byte(nil), c.Response().Body()...),
			ContentType: string(c.Response().Header.ContentType()),
		}

		if err := store.Complete(ctx, request, response); err != nil {
			logger.Error("idempotency complete failed", "error", err, "correlation_id", CorrelationIDFromContext(c))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to persist idempotency response"})
		}

		return nil
	}
}

func requestHash(method, path, subject string, body []byte) string {
	hasher := sha256.New()
	hasher.Write([]byte(strings.ToUpper(strings.TrimSpace(method))))
	hasher.Write([]byte("\n"))
	hasher.Write([]byte(strings.TrimSpace(path)))
	hasher.Write([]byte("\n"))
	hasher.Write([]byte(strings.TrimSpace(subject)))
	hasher.Write([]byte("\n"))
	hasher.Write(body)

	return hex.EncodeToString(hasher.Sum(nil))
}
