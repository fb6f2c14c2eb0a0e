package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joshuarp/consent-bridge/internal/domain"
	"github.com/joshuarp/consent-bridge/internal/domain/vo"
	sharedlog "github.com/joshuarp/consent-bridge/internal/shared/log"
	"github.com/joshuarp/consent-bridge/internal/shared/notification"
)

type ConsentRequestRepository interface {
	RecordConsentRequest(ctx context.Context, request domain.ConsentRequest) error
	AssignConsentRequestID(ctx context.Context, requestID, consentRequestID string) error
	UpdateConsentRequestStatus(ctx context.Context, consentRequestID, status string) error
}

type ConsentGateway interface {
	RequestConsent(ctx context.Context, hiuID string, request vo.GatewayConsentRequest) error
}

// ConsentRequestService raises consent requests on behalf of a health
// information user and follows them until the patient decides.
type ConsentRequestService struct {
	repository      ConsentRequestRepository
	gateway         ConsentGateway
	relay           CallbackRelay[vo.ConsentRequestResult]
	publisher       NotificationPublisher
	ids             IDGenerator
	responseTimeout time.Duration
	logger          *slog.Logger
}

func NewConsentRequestService(
	repository ConsentRequestRepository,
	gateway ConsentGateway,
	relay CallbackRelay[vo.ConsentRequestResult],
	publisher NotificationPublisher,
	ids IDGenerator,
	responseTimeout time.Duration,
	logger *slog.Logger,
) *ConsentRequestService {
	return &ConsentRequestService{
		repository:      repository,
		gateway:         gateway,
		relay:           relay,
		publisher:       publisher,
		ids:             ids,
		responseTimeout: responseTimeoutOrDefault(responseTimeout),
		logger:          logger,
	}
}

func validConsentDetail(consent vo.ConsentRequestDetail) bool {
	return strings.TrimSpace(consent.Patient.ID) != "" &&
		strings.TrimSpace(consent.HIU.ID) != "" &&
		strings.TrimSpace(consent.Purpose.Code) != "" &&
		len(consent.HITypes) > 0
}

// RequestConsent stores the request, sends it through the gateway and waits
// for the consent manager to assign it an id. The new request is announced
// on the consent request queue.
func (s *ConsentRequestService) RequestConsent(ctx context.Context, requesterID string, consent vo.ConsentRequestDetail) (vo.ConsentRequestResult, error) {
	if strings.TrimSpace(requesterID) == "" || !validConsentDetail(consent) {
		return vo.ConsentRequestResult{}, vo.ErrInvalidRequest
	}
	if consent.Requester.Identifier == "" {
		consent.Requester.Identifier = requesterID
	}

	requestID, err := s.ids.Generate(ctx)
	if err != nil {
		return vo.ConsentRequestResult{}, fmt.Errorf("services: generate request id: %w", err)
	}

	if err := s.repository.RecordConsentRequest(ctx, domain.ConsentRequest{
		RequestID: requestID,
		HIUID:     consent.HIU.ID,
		PatientID: consent.Patient.ID,
		Purpose:   consent.Purpose.Code,
		Status:    vo.ConsentStatusRequested,
	}); err != nil {
		return vo.ConsentRequestResult{}, err
	}

	request := vo.GatewayConsentRequest{
		RequestID: requestID,
		Timestamp: vo.FormatTimestamp(time.Now()),
		Consent:   consent,
	}

	result, err := s.relay.Await(ctx, requestID, s.responseTimeout, func(ctx context.Context) error {
		return s.gateway.RequestConsent(ctx, consent.HIU.ID, request)
	})
	if err != nil {
		return vo.ConsentRequestResult{}, err
	}

	if err := result.Error.Err(); err != nil {
		return vo.ConsentRequestResult{}, err
	}
	if result.ConsentRequest == nil || strings.TrimSpace(result.ConsentRequest.ID) == "" {
		return vo.ConsentRequestResult{}, fmt.Errorf("%w: on-init carried no consent request id", vo.ErrProviderRejected)
	}
	consentRequestID := result.ConsentRequest.ID

	if err := s.repository.AssignConsentRequestID(ctx, requestID, consentRequestID); err != nil {
		return vo.ConsentRequestResult{}, err
	}

	if err := s.publisher.Publish(ctx, notification.Notification{
		CorrelationID: sharedlog.CorrelationIDFrom(ctx),
		Action:        notification.ConsentRequestCreated,
		Payload: vo.ConsentRequestCreatedEvent{
			ConsentRequestID: consentRequestID,
			RequestID:        requestID,
			Consent:          consent,
		},
	}); err != nil {
		return vo.ConsentRequestResult{}, err
	}

	sharedlog.With(ctx, s.logger).Info("consent requested",
		"requester_id", requesterID,
		"hiu_id", consent.HIU.ID,
		"consent_request_id", consentRequestID,
	)
	return result, nil
}

func (s *ConsentRequestService) OnInit(ctx context.Context, result vo.ConsentRequestResult) error {
	delivered, err := s.relay.Deliver(ctx, result.Resp.RequestID, result)
	if err != nil {
		return err
	}
	if !delivered {
		sharedlog.With(ctx, s.logger).Warn("consent request callback has no pending request",
			"request_id", result.Resp.RequestID,
		)
	}
	return nil
}

// OnNotify records the patient's decision. Granted artefacts are handed to
// the health information user's consumers.
func (s *ConsentRequestService) OnNotify(ctx context.Context, n vo.ConsentNotification) error {
	detail := n.Notification
	if strings.TrimSpace(detail.ConsentRequestID) == "" || strings.TrimSpace(detail.Status) == "" {
		return vo.ErrInvalidRequest
	}
	granted := detail.Status == vo.ConsentStatusGranted
	if granted && len(detail.ConsentArtefacts) == 0 {
		return fmt.Errorf("%w: granted consent without artefacts", vo.ErrInvalidRequest)
	}

	logger := sharedlog.With(ctx, s.logger).With(
		"consent_request_id", detail.ConsentRequestID,
		"status", detail.Status,
	)

	if err := s.repository.UpdateConsentRequestStatus(ctx, detail.ConsentRequestID, detail.Status); err != nil {
		if !errors.Is(err, vo.ErrNotFound) {
			return err
		}
		// raised by another requester; nothing here to follow up
		logger.Warn("consent notification for unknown request")
		return nil
	}

	if !granted {
		logger.Info("consent request closed")
		return nil
	}

	if err := s.publisher.Publish(ctx, notification.Notification{
		CorrelationID: sharedlog.CorrelationIDFrom(ctx),
		Action:        notification.ConsentArtefactGranted,
		Payload: vo.ConsentArtefactGrantedEvent{
			ConsentRequestID: detail.ConsentRequestID,
			ConsentArtefacts: detail.ConsentArtefacts,
		},
	}); err != nil {
		return err
	}

	logger.Info("consent artefacts granted", "artefacts", len(detail.ConsentArtefacts))
	return nil
}
