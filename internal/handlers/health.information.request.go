package handlers

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/joshuarp/consent-bridge/internal/domain/vo"
	"github.com/joshuarp/consent-bridge/internal/middlewares"
)

type HealthInformationRequestService interface {
	RequestHealthInformation(ctx context.Context, requesterID string, query vo.HealthInformationQuery) (vo.HealthInformationResult, error)
}

type HealthInformationRequestHandler struct {
	service HealthInformationRequestService
	logger  *slog.Logger
}

func NewHealthInformationRequestHandler(service HealthInformationRequestService, logger *slog.Logger) *HealthInformationRequestHandler {
	return &HealthInformationRequestHandler{service: service, logger: logger}
}

func (h *HealthInformationRequestHandler) Register(router fiber.Router) {
	router.Post("/health-information/request", h.Handle)
}

func (h *HealthInformationRequestHandler) Handle(c fiber.Ctx) error {
	requesterID, ok := authenticatedSubject(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "missing authenticated user",
		})
	}

	var query vo.HealthInformationQuery
	if err := c.Bind().JSON(&query); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	result, err := h.service.RequestHealthInformation(middlewares.RequestContext(c), requesterID, query)
	if err != nil {
		return writeError(c, h.logger, "failed to request health information", err)
	}

	return c.Status(fiber.StatusOK).JSON(result)
}
