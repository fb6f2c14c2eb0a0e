package handlers

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/joshuarp/consent-bridge/internal/domain/vo"
	"github.com/joshuarp/consent-bridge/internal/middlewares"
)

type ConsentRequestService interface {
	RequestConsent(ctx context.Context, requesterID string, consent vo.ConsentRequestDetail) (vo.ConsentRequestResult, error)
}

type consentRequestBody struct {
	Consent vo.ConsentRequestDetail `json:"consent"`
}

type ConsentRequestHandler struct {
	service ConsentRequestService
	logger  *slog.Logger
}

func NewConsentRequestHandler(service ConsentRequestService, logger *slog.Logger) *ConsentRequestHandler {
	return &ConsentRequestHandler{service: service, logger: logger}
}

func (h *ConsentRequestHandler) Register(router fiber.Router) {
	router.Post("/consent-requests/init", h.Handle)
}

func (h *ConsentRequestHandler) Handle(c fiber.Ctx) error {
	requesterID, ok := authenticatedSubject(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "missing authenticated user",
		})
	}

	var body consentRequestBody
	if err := c.Bind().JSON(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	result, err := h.service.RequestConsent(middlewares.RequestContext(c), requesterID, body.Consent)
	if err != nil {
		return writeError(c, h.logger, "failed to request consent", err)
	}

	return c.Status(fiber.StatusOK).JSON(result)
}
