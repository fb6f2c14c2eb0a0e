package handlers

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/joshuarp/consent-bridge/internal/domain/vo"
	"github.com/joshuarp/consent-bridge/internal/middlewares"
)

type CareContextDiscoveryService interface {
	Discover(ctx context.Context, patientID string, query vo.DiscoveryQuery) (vo.DiscoveryResult, error)
}

type CareContextDiscoveryHandler struct {
	service CareContextDiscoveryService
	logger  *slog.Logger
}

func NewCareContextDiscoveryHandler(service CareContextDiscoveryService, logger *slog.Logger) *CareContextDiscoveryHandler {
	return &CareContextDiscoveryHandler{service: service, logger: logger}
}

func (h *CareContextDiscoveryHandler) Register(router fiber.Router) {
	router.Post("/care-contexts/discover", h.Handle)
}

func (h *CareContextDiscoveryHandler) Handle(c fiber.Ctx) error {
	patientID, ok := authenticatedSubject(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "missing authenticated user",
		})
	}

	var query vo.DiscoveryQuery
	if err := c.Bind().JSON(&query); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	result, err := h.service.Discover(middlewares.RequestContext(c), patientID, query)
	if err != nil {
		return writeError(c, h.logger, "failed to discover care contexts", err)
	}

	return c.Status(fiber.StatusOK).JSON(result)
}
