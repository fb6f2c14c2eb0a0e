package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/joshuarp/consent-bridge/internal/domain/vo"
	"github.com/joshuarp/consent-bridge/internal/middlewares"
	"github.com/joshuarp/consent-bridge/internal/shared/cache"
	"github.com/joshuarp/consent-bridge/internal/shared/correlation"
	"github.com/joshuarp/consent-bridge/internal/shared/notification"
	"github.com/joshuarp/consent-bridge/internal/shared/scheduler"
)

// writeError maps service errors onto responses. Infrastructure failures are
// logged with their cause and answered with a generic body.
func writeError(c fiber.Ctx, logger *slog.Logger, message string, err error) error {
	switch {
	case errors.Is(err, correlation.ErrTimeout), errors.Is(err, scheduler.ErrDelayTimeout):
		return c.Status(fiber.StatusGatewayTimeout).JSON(fiber.Map{"error": "provider did not respond in time"})
	case errors.Is(err, correlation.ErrDuplicateRequestID):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "request is already pending"})
	case errors.Is(err, vo.ErrInvalidRequest), errors.Is(err, correlation.ErrInvalidRequestID):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
	case errors.Is(err, vo.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	case errors.Is(err, vo.ErrLinkReferenceExpired):
		return c.Status(fiber.StatusGone).JSON(fiber.Map{"error": "link reference expired"})
	case errors.Is(err, vo.ErrProviderRejected):
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, vo.ErrGatewayUnavailable), errors.Is(err, cache.ErrCacheNotAccessible):
		logger.Error(message, "correlation_id", middlewares.CorrelationIDFromContext(c), "error", err)
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "service unavailable"})
	case errors.Is(err, notification.ErrBrokerPublishFailed), errors.Is(err, vo.ErrStoreOperationFailed):
		logger.Error(message, "correlation_id", middlewares.CorrelationIDFromContext(c), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	default:
		logger.Error(message, "correlation_id", middlewares.CorrelationIDFromContext(c), "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
}

func authenticatedSubject(c fiber.Ctx) (string, bool) {
	subject := middlewares.SubjectFromContext(c)
	return subject, subject != ""
}
