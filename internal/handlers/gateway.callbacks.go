package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/joshuarp/consent-bridge/internal/domain"
	"github.com/joshuarp/consent-bridge/internal/domain/vo"
	"github.com/joshuarp/consent-bridge/internal/middlewares"
	sharedlog "github.com/joshuarp/consent-bridge/internal/shared/log"
)

type CallbackDeduplicator interface {
	FirstSeen(ctx context.Context, requestID string) (time.Time, bool, error)
	ShouldProcess(ctx context.Context, requestID string) (bool, error)
	Forget(ctx context.Context, requestID string) error
	ValidTimestamp(ts time.Time) bool
}

type DiscoveryCallbackService interface {
	OnDiscover(ctx context.Context, result vo.DiscoveryResult) error
}

type LinkCallbackService interface {
	OnConfirm(ctx context.Context, result vo.LinkConfirmationResult) error
}

type HealthInformationCallbackService interface {
	OnRequest(ctx context.Context, result vo.HealthInformationResult) error
}

type ConsentCallbackService interface {
	OnInit(ctx context.Context, result vo.ConsentRequestResult) error
	OnNotify(ctx context.Context, n vo.ConsentNotification) error
}

// GatewayCallbackHandler receives the gateway's answers. Every callback is
// acknowledged with 202 once accepted; redeliveries of an accepted callback
// are acknowledged without being processed again.
type GatewayCallbackHandler struct {
	dedup             CallbackDeduplicator
	discovery         DiscoveryCallbackService
	links             LinkCallbackService
	healthInformation HealthInformationCallbackService
	consents          ConsentCallbackService
	logger            *slog.Logger
}

func NewGatewayCallbackHandler(
	dedup CallbackDeduplicator,
	discovery DiscoveryCallbackService,
	links LinkCallbackService,
	healthInformation HealthInformationCallbackService,
	consents ConsentCallbackService,
	logger *slog.Logger,
) *GatewayCallbackHandler {
	return &GatewayCallbackHandler{
		dedup:             dedup,
		discovery:         discovery,
		links:             links,
		healthInformation: healthInformation,
		consents:          consents,
		logger:            logger,
	}
}

func (h *GatewayCallbackHandler) Register(router fiber.Router) {
	for _, kind := range []domain.CallbackKind{
		domain.CallbackDiscovery,
		domain.CallbackLinkConfirmation,
		domain.CallbackHealthInformation,
		domain.CallbackConsentRequest,
		domain.CallbackConsentNotification,
	} {
		if h.serves(kind) {
			router.Post(kind.Path(), h.handler(kind))
		}
	}
}

// serves reports whether the flow behind kind is wired in this binary.
func (h *GatewayCallbackHandler) serves(kind domain.CallbackKind) bool {
	switch kind {
	case domain.CallbackDiscovery:
		return h.discovery != nil
	case domain.CallbackLinkConfirmation:
		return h.links != nil
	case domain.CallbackHealthInformation:
		return h.healthInformation != nil
	case domain.CallbackConsentRequest, domain.CallbackConsentNotification:
		return h.consents != nil
	default:
		return false
	}
}

func (h *GatewayCallbackHandler) handler(kind domain.CallbackKind) fiber.Handler {
	return func(c fiber.Ctx) error {
		body := c.Body()

		var header vo.CallbackHeader
		if err := json.Unmarshal(body, &header); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}

		requestID := strings.TrimSpace(header.RequestID)
		if requestID == "" || (kind.AnswersRequest() && strings.TrimSpace(header.Resp.RequestID) == "") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing request id"})
		}

		ctx := middlewares.RequestContext(c)
		logger := sharedlog.With(ctx, h.logger).With(
			"callback", kind.String(),
			"callback_request_id", requestID,
			"request_id", header.Resp.RequestID,
		)

		// a redelivery keeps its original timestamp, so it is acknowledged
		// before the timestamp window is checked
		firstSeen, seen, err := h.dedup.FirstSeen(ctx, requestID)
		if err != nil {
			logger.Error("failed to check callback replay", "error", err)
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "service unavailable"})
		}
		if seen {
			logger.Debug("duplicate callback acknowledged", "first_seen", firstSeen)
			return c.SendStatus(fiber.StatusAccepted)
		}

		ts, err := vo.ParseTimestamp(header.Timestamp)
		if err != nil || !h.dedup.ValidTimestamp(ts) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid timestamp"})
		}

		fresh, err := h.dedup.ShouldProcess(ctx, requestID)
		if err != nil {
			logger.Error("failed to check callback replay", "error", err)
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "service unavailable"})
		}
		if !fresh {
			logger.Debug("duplicate callback acknowledged")
			return c.SendStatus(fiber.StatusAccepted)
		}

		if err := h.dispatch(ctx, kind, body); err != nil {
			if forgetErr := h.dedup.Forget(ctx, requestID); forgetErr != nil {
				logger.Warn("failed to forget unprocessed callback", "error", forgetErr)
			}
			if errors.Is(err, vo.ErrInvalidRequest) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
			}
			return writeError(c, h.logger, "failed to process "+kind.String()+" callback", err)
		}

		return c.SendStatus(fiber.StatusAccepted)
	}
}

func (h *GatewayCallbackHandler) dispatch(ctx context.Context, kind domain.CallbackKind, body []byte) error {
	switch kind {
	case domain.CallbackDiscovery:
		var result vo.DiscoveryResult
		if err := decodeCallback(body, &result); err != nil {
			return err
		}
		return h.discovery.OnDiscover(ctx, result)
	case domain.CallbackLinkConfirmation:
		var result vo.LinkConfirmationResult
		if err := decodeCallback(body, &result); err != nil {
			return err
		}
		return h.links.OnConfirm(ctx, result)
	case domain.CallbackHealthInformation:
		var result vo.HealthInformationResult
		if err := decodeCallback(body, &result); err != nil {
			return err
		}
		return h.healthInformation.OnRequest(ctx, result)
	case domain.CallbackConsentRequest:
		var result vo.ConsentRequestResult
		if err := decodeCallback(body, &result); err != nil {
			return err
		}
		return h.consents.OnInit(ctx, result)
	case domain.CallbackConsentNotification:
		var n vo.ConsentNotification
		if err := decodeCallback(body, &n); err != nil {
			return err
		}
		return h.consents.OnNotify(ctx, n)
	default:
		return fmt.Errorf("%w: callback kind %d", vo.ErrInvalidRequest, kind)
	}
}

func decodeCallback(body []byte, v any) error {
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %w", vo.ErrInvalidRequest, err)
	}
	return nil
}
