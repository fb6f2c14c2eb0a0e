package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joshuarp/consent-bridge/internal/domain"
	"github.com/joshuarp/consent-bridge/internal/domain/vo"
	sharedlog "github.com/joshuarp/consent-bridge/internal/shared/log"
	"github.com/joshuarp/consent-bridge/internal/shared/notification"
)

type LinkRepository interface {
	ProviderForLinkReference(ctx context.Context, linkRefNumber string) (domain.LinkReference, error)
}

type LinkGateway interface {
	ConfirmLink(ctx context.Context, hipID string, request vo.GatewayLinkConfirmRequest) error
}

// LinkConfirmationService confirms a care-context link. The on-confirm
// callback may land on any instance, so it is always wired with a CacheRelay.
type LinkConfirmationService struct {
	repository      LinkRepository
	gateway         LinkGateway
	relay           CallbackRelay[vo.LinkConfirmationResult]
	publisher       NotificationPublisher
	ids             IDGenerator
	responseTimeout time.Duration
	logger          *slog.Logger
}

func NewLinkConfirmationService(
	repository LinkRepository,
	gateway LinkGateway,
	relay CallbackRelay[vo.LinkConfirmationResult],
	publisher NotificationPublisher,
	ids IDGenerator,
	responseTimeout time.Duration,
	logger *slog.Logger,
) *LinkConfirmationService {
	return &LinkConfirmationService{
		repository:      repository,
		gateway:         gateway,
		relay:           relay,
		publisher:       publisher,
		ids:             ids,
		responseTimeout: responseTimeoutOrDefault(responseTimeout),
		logger:          logger,
	}
}

func (s *LinkConfirmationService) ConfirmLink(ctx context.Context, patientID string, confirmation vo.LinkConfirmation) (vo.LinkConfirmationResult, error) {
	if strings.TrimSpace(patientID) == "" || strings.TrimSpace(confirmation.Token) == "" {
		return vo.LinkConfirmationResult{}, vo.ErrInvalidRequest
	}

	reference, err := s.repository.ProviderForLinkReference(ctx, confirmation.LinkRefNumber)
	if err != nil {
		return vo.LinkConfirmationResult{}, err
	}
	if reference.PatientID != patientID {
		return vo.LinkConfirmationResult{}, vo.ErrNotFound
	}

	requestID, err := s.ids.Generate(ctx)
	if err != nil {
		return vo.LinkConfirmationResult{}, fmt.Errorf("services: generate request id: %w", err)
	}

	result, err := s.relay.Await(ctx, requestID, s.responseTimeout, func(ctx context.Context) error {
		return s.gateway.ConfirmLink(ctx, reference.HIPID, vo.GatewayLinkConfirmRequest{
			RequestID:    requestID,
			Timestamp:    vo.FormatTimestamp(time.Now()),
			Confirmation: confirmation,
		})
	})
	if err != nil {
		return vo.LinkConfirmationResult{}, err
	}

	if err := result.Error.Err(); err != nil {
		return vo.LinkConfirmationResult{}, err
	}

	var careContexts []vo.CareContext
	if result.Patient != nil {
		careContexts = result.Patient.CareContexts
	}
	if err := s.publisher.Publish(ctx, notification.Notification{
		CorrelationID: sharedlog.CorrelationIDFrom(ctx),
		Action:        notification.CareContextLinked,
		Payload: vo.CareContextLinkedEvent{
			PatientID:     patientID,
			HIPID:         reference.HIPID,
			LinkRefNumber: reference.LinkRefNumber,
			CareContexts:  careContexts,
		},
	}); err != nil {
		return vo.LinkConfirmationResult{}, err
	}

	return result, nil
}

// OnConfirm hands the callback to the instance polling for it.
func (s *LinkConfirmationService) OnConfirm(ctx context.Context, result vo.LinkConfirmationResult) error {
	delivered, err := s.relay.Deliver(ctx, result.Resp.RequestID, result)
	if err != nil {
		return err
	}
	if !delivered {
		sharedlog.With(ctx, s.logger).Warn("link callback has no pending request",
			"request_id", result.Resp.RequestID,
		)
	}
	return nil
}
