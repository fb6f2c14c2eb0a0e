package handlers

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/joshuarp/consent-bridge/internal/domain/vo"
	"github.com/joshuarp/consent-bridge/internal/middlewares"
)

type LinkConfirmationService interface {
	ConfirmLink(ctx context.Context, patientID string, confirmation vo.LinkConfirmation) (vo.LinkConfirmationResult, error)
}

type LinkConfirmationHandler struct {
	service LinkConfirmationService
	logger  *slog.Logger
}

func NewLinkConfirmationHandler(service LinkConfirmationService, logger *slog.Logger) *LinkConfirmationHandler {
	return &LinkConfirmationHandler{service: service, logger: logger}
}

func (h *LinkConfirmationHandler) Register(router fiber.Router) {
	router.Post("/links/link/confirm", h.Handle)
}

func (h *LinkConfirmationHandler) Handle(c fiber.Ctx) error {
	patientID, ok := authenticatedSubject(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "missing authenticated user",
		})
	}

	var confirmation vo.LinkConfirmation
	if err := c.Bind().JSON(&confirmation); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	result, err := h.service.ConfirmLink(middlewares.RequestContext(c), patientID, confirmation)
	if err != nil {
		return writeError(c, h.logger, "failed to confirm link", err)
	}

	return c.Status(fiber.StatusOK).JSON(result)
}
