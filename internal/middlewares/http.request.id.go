package middlewares

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/requestid"

	sharedlog "github.com/joshuarp/consent-bridge/internal/shared/log"
)

const (
	RequestIDHeader = "X-Request-ID"

	localCorrelationID = "correlation_id"
)

func NewHTTPRequestIDMiddleware() fiber.Handler {
	return requestid.New(requestid.Config{
		Header: RequestIDHeader,
	})
}

func RequestIDFromContext(c fiber.Ctx) string {
	requestID := requestid.FromContext(c)
	if requestID != "" {
		return requestID
	}

	return c.Get(RequestIDHeader)
}

// NewHTTPCorrelationIDMiddleware keeps the caller's correlation id, or starts
// one from the request id, and echoes it on the response. It must run after
// the request id middleware.
func NewHTTPCorrelationIDMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		correlationID := strings.TrimSpace(c.Get(sharedlog.CorrelationIDHeader))
		if correlationID == "" {
			correlationID = RequestIDFromContext(c)
		}

		c.Locals(localCorrelationID, correlationID)
		c.Set(sharedlog.CorrelationIDHeader, correlationID)
		return c.Next()
	}
}

func CorrelationIDFromContext(c fiber.Ctx) string {
	correlationID, _ := c.Locals(localCorrelationID).(string)
	return correlationID
}

// RequestContext is the context handed to services: the request context
// carrying the correlation id.
func RequestContext(c fiber.Ctx) context.Context {
	return sharedlog.WithCorrelationID(c.Context(), CorrelationIDFromContext(c))
}
