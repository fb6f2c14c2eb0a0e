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

type HealthInformationRepository interface {
	ProviderForConsent(ctx context.Context, consentID string) (domain.ConsentProvider, error)
}

type HealthInformationGateway interface {
	RequestHealthInformation(ctx context.Context, hipID string, request vo.GatewayHealthInformationRequest) error
}

type HealthInformationRequestService struct {
	repository      HealthInformationRepository
	gateway         HealthInformationGateway
	relay           CallbackRelay[vo.HealthInformationResult]
	publisher       NotificationPublisher
	ids             IDGenerator
	responseTimeout time.Duration
	logger          *slog.Logger
}

func NewHealthInformationRequestService(
	repository HealthInformationRepository,
	gateway HealthInformationGateway,
	relay CallbackRelay[vo.HealthInformationResult],
	publisher NotificationPublisher,
	ids IDGenerator,
	responseTimeout time.Duration,
	logger *slog.Logger,
) *HealthInformationRequestService {
	return &HealthInformationRequestService{
		repository:      repository,
		gateway:         gateway,
		relay:           relay,
		publisher:       publisher,
		ids:             ids,
		responseTimeout: responseTimeoutOrDefault(responseTimeout),
		logger:          logger,
	}
}

// RequestHealthInformation forwards a data request under a granted consent
// to the provider holding the records, then announces the data flow.
func (s *HealthInformationRequestService) RequestHealthInformation(ctx context.Context, requesterID string, query vo.HealthInformationQuery) (vo.HealthInformationResult, error) {
	if strings.TrimSpace(requesterID) == "" || strings.TrimSpace(query.DataPushURL) == "" {
		return vo.HealthInformationResult{}, vo.ErrInvalidRequest
	}

	provider, err := s.repository.ProviderForConsent(ctx, query.ConsentID)
	if err != nil {
		return vo.HealthInformationResult{}, err
	}

	requestID, err := s.ids.Generate(ctx)
	if err != nil {
		return vo.HealthInformationResult{}, fmt.Errorf("services: generate request id: %w", err)
	}
	transactionID, err := s.ids.Generate(ctx)
	if err != nil {
		return vo.HealthInformationResult{}, fmt.Errorf("services: generate transaction id: %w", err)
	}

	request := vo.GatewayHealthInformationRequest{
		RequestID:     requestID,
		Timestamp:     vo.FormatTimestamp(time.Now()),
		TransactionID: transactionID,
		HIRequest:     query,
	}

	result, err := s.relay.Await(ctx, requestID, s.responseTimeout, func(ctx context.Context) error {
		return s.gateway.RequestHealthInformation(ctx, provider.HIPID, request)
	})
	if err != nil {
		return vo.HealthInformationResult{}, err
	}

	if err := result.Error.Err(); err != nil {
		return vo.HealthInformationResult{}, err
	}

	if err := s.publisher.Publish(ctx, notification.Notification{
		CorrelationID: sharedlog.CorrelationIDFrom(ctx),
		Action:        notification.HealthInformationRequested,
		Payload: vo.HealthInformationRequestedEvent{
			TransactionID: transactionID,
			ConsentID:     provider.ConsentID,
			HIPID:         provider.HIPID,
			HIRequest:     query,
		},
	}); err != nil {
		return vo.HealthInformationResult{}, err
	}

	sharedlog.With(ctx, s.logger).Info("health information requested",
		"requester_id", requesterID,
		"consent_id", provider.ConsentID,
		"transaction_id", transactionID,
	)
	return result, nil
}

func (s *HealthInformationRequestService) OnRequest(ctx context.Context, result vo.HealthInformationResult) error {
	delivered, err := s.relay.Deliver(ctx, result.Resp.RequestID, result)
	if err != nil {
		return err
	}
	if !delivered {
		sharedlog.With(ctx, s.logger).Warn("health information callback has no pending request",
			"request_id", result.Resp.RequestID,
		)
	}
	return nil
}
