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
)

type DiscoveryRepository interface {
	RecordDiscoveryRequest(ctx context.Context, request domain.DiscoveryRequest) error
}

type DiscoveryGateway interface {
	DiscoverCareContexts(ctx context.Context, hipID string, request vo.GatewayDiscoveryRequest) error
}

type CareContextDiscoveryService struct {
	repository      DiscoveryRepository
	gateway         DiscoveryGateway
	relay           CallbackRelay[vo.DiscoveryResult]
	ids             IDGenerator
	responseTimeout time.Duration
	logger          *slog.Logger
}

func NewCareContextDiscoveryService(
	repository DiscoveryRepository,
	gateway DiscoveryGateway,
	relay CallbackRelay[vo.DiscoveryResult],
	ids IDGenerator,
	responseTimeout time.Duration,
	logger *slog.Logger,
) *CareContextDiscoveryService {
	return &CareContextDiscoveryService{
		repository:      repository,
		gateway:         gateway,
		relay:           relay,
		ids:             ids,
		responseTimeout: responseTimeoutOrDefault(responseTimeout),
		logger:          logger,
	}
}

// Discover asks a provider for the patient's care contexts and waits for the
// on-discover callback.
func (s *CareContextDiscoveryService) Discover(ctx context.Context, patientID string, query vo.DiscoveryQuery) (vo.DiscoveryResult, error) {
	if strings.TrimSpace(patientID) == "" || strings.TrimSpace(query.HIPID) == "" {
		return vo.DiscoveryResult{}, vo.ErrInvalidRequest
	}

	requestID, err := s.ids.Generate(ctx)
	if err != nil {
		return vo.DiscoveryResult{}, fmt.Errorf("services: generate request id: %w", err)
	}
	transactionID, err := s.ids.Generate(ctx)
	if err != nil {
		return vo.DiscoveryResult{}, fmt.Errorf("services: generate transaction id: %w", err)
	}

	if err := s.repository.RecordDiscoveryRequest(ctx, domain.DiscoveryRequest{
		TransactionID: transactionID,
		RequestID:     requestID,
		PatientID:     patientID,
		HIPID:         query.HIPID,
	}); err != nil {
		return vo.DiscoveryResult{}, err
	}

	request := vo.GatewayDiscoveryRequest{
		RequestID:     requestID,
		Timestamp:     vo.FormatTimestamp(time.Now()),
		TransactionID: transactionID,
		Patient: vo.DiscoveryPatient{
			ID:                    patientID,
			Name:                  query.Name,
			Gender:                query.Gender,
			YearOfBirth:           query.YearOfBirth,
			VerifiedIdentifiers:   query.VerifiedIdentifiers,
			UnverifiedIdentifiers: query.UnverifiedIdentifiers,
		},
	}

	result, err := s.relay.Await(ctx, requestID, s.responseTimeout, func(ctx context.Context) error {
		return s.gateway.DiscoverCareContexts(ctx, query.HIPID, request)
	})
	if err != nil {
		return vo.DiscoveryResult{}, err
	}

	if err := result.Error.Err(); err != nil {
		return vo.DiscoveryResult{}, err
	}
	return result, nil
}

// OnDiscover hands the callback to whoever awaits it. A callback for an
// unknown or expired request is acknowledged and dropped.
func (s *CareContextDiscoveryService) OnDiscover(ctx context.Context, result vo.DiscoveryResult) error {
	delivered, err := s.relay.Deliver(ctx, result.Resp.RequestID, result)
	if err != nil {
		return err
	}
	if !delivered {
		sharedlog.With(ctx, s.logger).Warn("discovery callback has no pending request",
			"request_id", result.Resp.RequestID,
			"transaction_id", result.TransactionID,
		)
	}
	return nil
}
