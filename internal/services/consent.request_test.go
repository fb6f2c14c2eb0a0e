package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/joshuarp/consent-bridge/internal/domain"
	"github.com/joshuarp/consent-bridge/internal/domain/vo"
	servicemocks "github.com/joshuarp/consent-bridge/internal/mock/services"
	"github.com/joshuarp/consent-bridge/internal/shared/correlation"
	"github.com/joshuarp/consent-bridge/internal/shared/notification"
)

type ConsentRequestServiceSuite struct {
	suite.Suite

	repository *servicemocks.ConsentRequestRepository
	gateway    *servicemocks.ConsentGateway
	publisher  *servicemocks.NotificationPublisher
	ids        *servicemocks.IDGenerator
	correlator *correlation.Correlator[vo.ConsentRequestResult]
	service    *ConsentRequestService
}

func (s *ConsentRequestServiceSuite) SetupTest() {
	s.repository = servicemocks.NewConsentRequestRepository(s.T())
	s.gateway = servicemocks.NewConsentGateway(s.T())
	s.publisher = servicemocks.NewNotificationPublisher(s.T())
	s.ids = servicemocks.NewIDGenerator(s.T())
	s.correlator = correlation.New[vo.ConsentRequestResult](discardLogger)
	s.service = NewConsentRequestService(s.repository, s.gateway, NewCorrelatorRelay(s.correlator), s.publisher, s.ids, 50*time.Millisecond, discardLogger)
}

func consentDetail() vo.ConsentRequestDetail {
	return vo.ConsentRequestDetail{
		Purpose: vo.ConsentPurpose{Text: "Care Management", Code: "CAREMGT"},
		Patient: vo.ConsentParty{ID: "patient@ncg"},
		HIU:     vo.ConsentParty{ID: "hiu-1"},
		HITypes: []string{"OPConsultation"},
		Permission: vo.ConsentPermission{
			AccessMode: "VIEW",
			DateRange:  vo.DateRange{From: "2025-01-01T00:00:00", To: "2025-12-31T00:00:00"},
		},
	}
}

func (s *ConsentRequestServiceSuite) TestRequestConsent_TableDriven() {
	storeErr := errors.Join(vo.ErrStoreOperationFailed, errors.New("deadlock"))

	answer := func(result vo.ConsentRequestResult) func(context.Context, string, vo.GatewayConsentRequest) {
		return func(ctx context.Context, _ string, request vo.GatewayConsentRequest) {
			go func() {
				time.Sleep(5 * time.Millisecond)
				result.Resp.RequestID = request.RequestID
				_ = s.service.OnInit(ctx, result)
			}()
		}
	}
	recorded := domain.ConsentRequest{
		RequestID: "req-1",
		HIUID:     "hiu-1",
		PatientID: "patient@ncg",
		Purpose:   "CAREMGT",
		Status:    vo.ConsentStatusRequested,
	}

	tests := []struct {
		name      string
		consent   func() vo.ConsentRequestDetail
		setupMock func()
		assertion func(vo.ConsentRequestResult, error)
	}{
		{
			name: "invalid without health information types",
			consent: func() vo.ConsentRequestDetail {
				consent := consentDetail()
				consent.HITypes = nil
				return consent
			},
			assertion: func(_ vo.ConsentRequestResult, err error) {
				assert.ErrorIs(s.T(), err, vo.ErrInvalidRequest)
			},
		},
		{
			name: "invalid without requesting hiu",
			consent: func() vo.ConsentRequestDetail {
				consent := consentDetail()
				consent.HIU.ID = " "
				return consent
			},
			assertion: func(_ vo.ConsentRequestResult, err error) {
				assert.ErrorIs(s.T(), err, vo.ErrInvalidRequest)
			},
		},
		{
			name:    "store failure stops before sending",
			consent: consentDetail,
			setupMock: func() {
				expectIDs(s.ids, "req-1")
				s.repository.EXPECT().RecordConsentRequest(mock.Anything, recorded).Return(storeErr)
			},
			assertion: func(_ vo.ConsentRequestResult, err error) {
				assert.ErrorIs(s.T(), err, vo.ErrStoreOperationFailed)
			},
		},
		{
			name:    "created request is announced",
			consent: consentDetail,
			setupMock: func() {
				expectIDs(s.ids, "req-1")
				s.repository.EXPECT().RecordConsentRequest(mock.Anything, recorded).Return(nil)
				s.gateway.EXPECT().
					RequestConsent(mock.Anything, "hiu-1", mock.MatchedBy(func(request vo.GatewayConsentRequest) bool {
						return request.RequestID == "req-1" && request.Consent.Requester.Identifier == "hiu-user"
					})).
					Run(answer(vo.ConsentRequestResult{ConsentRequest: &vo.ConsentRequestReference{ID: "cr-1"}})).
					Return(nil)
				s.repository.EXPECT().AssignConsentRequestID(mock.Anything, "req-1", "cr-1").Return(nil)
				s.publisher.EXPECT().
					Publish(mock.Anything, mock.MatchedBy(func(n notification.Notification) bool {
						event, ok := n.Payload.(vo.ConsentRequestCreatedEvent)
						return n.Action == notification.ConsentRequestCreated && ok &&
							event.ConsentRequestID == "cr-1" && event.Consent.Patient.ID == "patient@ncg"
					})).
					Return(nil)
			},
			assertion: func(result vo.ConsentRequestResult, err error) {
				require.NoError(s.T(), err)
				assert.Equal(s.T(), "cr-1", result.ConsentRequest.ID)
				assert.Zero(s.T(), s.correlator.Pending())
			},
		},
		{
			name:    "gateway failure releases registration",
			consent: consentDetail,
			setupMock: func() {
				expectIDs(s.ids, "req-1")
				s.repository.EXPECT().RecordConsentRequest(mock.Anything, recorded).Return(nil)
				s.gateway.EXPECT().RequestConsent(mock.Anything, "hiu-1", mock.Anything).Return(gatewayDown)
			},
			assertion: func(_ vo.ConsentRequestResult, err error) {
				assert.ErrorIs(s.T(), err, vo.ErrGatewayUnavailable)
				assert.Zero(s.T(), s.correlator.Pending())
			},
		},
		{
			name:    "rejected by the consent manager",
			consent: consentDetail,
			setupMock: func() {
				expectIDs(s.ids, "req-1")
				s.repository.EXPECT().RecordConsentRequest(mock.Anything, recorded).Return(nil)
				s.gateway.EXPECT().RequestConsent(mock.Anything, "hiu-1", mock.Anything).
					Run(answer(vo.ConsentRequestResult{Error: &vo.GatewayError{Code: 1000, Message: "unknown patient"}})).
					Return(nil)
			},
			assertion: func(_ vo.ConsentRequestResult, err error) {
				assert.ErrorIs(s.T(), err, vo.ErrProviderRejected)
			},
		},
		{
			name:    "on-init without consent request id",
			consent: consentDetail,
			setupMock: func() {
				expectIDs(s.ids, "req-1")
				s.repository.EXPECT().RecordConsentRequest(mock.Anything, recorded).Return(nil)
				s.gateway.EXPECT().RequestConsent(mock.Anything, "hiu-1", mock.Anything).
					Run(answer(vo.ConsentRequestResult{})).
					Return(nil)
			},
			assertion: func(_ vo.ConsentRequestResult, err error) {
				assert.ErrorIs(s.T(), err, vo.ErrProviderRejected)
			},
		},
		{
			name:    "no callback before deadline",
			consent: consentDetail,
			setupMock: func() {
				expectIDs(s.ids, "req-1")
				s.repository.EXPECT().RecordConsentRequest(mock.Anything, recorded).Return(nil)
				s.gateway.EXPECT().RequestConsent(mock.Anything, "hiu-1", mock.Anything).Return(nil)
			},
			assertion: func(_ vo.ConsentRequestResult, err error) {
				assert.ErrorIs(s.T(), err, correlation.ErrTimeout)
			},
		},
		{
			name:    "broker failure surfaces",
			consent: consentDetail,
			setupMock: func() {
				expectIDs(s.ids, "req-1")
				s.repository.EXPECT().RecordConsentRequest(mock.Anything, recorded).Return(nil)
				s.gateway.EXPECT().RequestConsent(mock.Anything, "hiu-1", mock.Anything).
					Run(answer(vo.ConsentRequestResult{ConsentRequest: &vo.ConsentRequestReference{ID: "cr-1"}})).
					Return(nil)
				s.repository.EXPECT().AssignConsentRequestID(mock.Anything, "req-1", "cr-1").Return(nil)
				s.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(notification.ErrBrokerPublishFailed)
			},
			assertion: func(_ vo.ConsentRequestResult, err error) {
				assert.ErrorIs(s.T(), err, notification.ErrBrokerPublishFailed)
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			if tc.setupMock != nil {
				tc.setupMock()
			}

			result, err := s.service.RequestConsent(context.Background(), "hiu-user", tc.consent())
			tc.assertion(result, err)
		})
	}
}

func (s *ConsentRequestServiceSuite) TestOnNotify_TableDriven() {
	artefacts := []vo.ConsentArtefactReference{{ID: "artefact-1"}, {ID: "artefact-2"}}
	notify := func(status string, artefacts []vo.ConsentArtefactReference) vo.ConsentNotification {
		return vo.ConsentNotification{
			RequestID: "cb-1",
			Notification: vo.ConsentNotificationDetail{
				ConsentRequestID: "cr-1",
				Status:           status,
				ConsentArtefacts: artefacts,
			},
		}
	}

	tests := []struct {
		name         string
		notification vo.ConsentNotification
		setupMock    func()
		assertion    func(error)
	}{
		{
			name:         "missing consent request id",
			notification: vo.ConsentNotification{Notification: vo.ConsentNotificationDetail{Status: "GRANTED"}},
			assertion: func(err error) {
				assert.ErrorIs(s.T(), err, vo.ErrInvalidRequest)
			},
		},
		{
			name:         "granted without artefacts",
			notification: notify(vo.ConsentStatusGranted, nil),
			assertion: func(err error) {
				assert.ErrorIs(s.T(), err, vo.ErrInvalidRequest)
			},
		},
		{
			name:         "granted artefacts are announced",
			notification: notify(vo.ConsentStatusGranted, artefacts),
			setupMock: func() {
				s.repository.EXPECT().UpdateConsentRequestStatus(mock.Anything, "cr-1", "GRANTED").Return(nil)
				s.publisher.EXPECT().
					Publish(mock.Anything, mock.MatchedBy(func(n notification.Notification) bool {
						event, ok := n.Payload.(vo.ConsentArtefactGrantedEvent)
						return n.Action == notification.ConsentArtefactGranted && ok && len(event.ConsentArtefacts) == 2
					})).
					Return(nil)
			},
			assertion: func(err error) {
				require.NoError(s.T(), err)
			},
		},
		{
			name:         "denied is recorded only",
			notification: notify(vo.ConsentStatusDenied, nil),
			setupMock: func() {
				s.repository.EXPECT().UpdateConsentRequestStatus(mock.Anything, "cr-1", "DENIED").Return(nil)
			},
			assertion: func(err error) {
				require.NoError(s.T(), err)
			},
		},
		{
			name:         "unknown consent request is acknowledged",
			notification: notify(vo.ConsentStatusGranted, artefacts),
			setupMock: func() {
				s.repository.EXPECT().UpdateConsentRequestStatus(mock.Anything, "cr-1", "GRANTED").Return(vo.ErrNotFound)
			},
			assertion: func(err error) {
				require.NoError(s.T(), err)
			},
		},
		{
			name:         "store failure is returned",
			notification: notify(vo.ConsentStatusRevoked, nil),
			setupMock: func() {
				s.repository.EXPECT().UpdateConsentRequestStatus(mock.Anything, "cr-1", "REVOKED").Return(vo.ErrStoreOperationFailed)
			},
			assertion: func(err error) {
				assert.ErrorIs(s.T(), err, vo.ErrStoreOperationFailed)
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			if tc.setupMock != nil {
				tc.setupMock()
			}

			tc.assertion(s.service.OnNotify(context.Background(), tc.notification))
		})
	}
}

func (s *ConsentRequestServiceSuite) TestOnInit_UnknownRequestIsAcknowledged() {
	err := s.service.OnInit(context.Background(), vo.ConsentRequestResult{Resp: vo.GatewayResponse{RequestID: "unknown"}})
	assert.NoError(s.T(), err)
}

func TestConsentRequestServiceSuite(t *testing.T) {
	suite.Run(t, new(ConsentRequestServiceSuite))
}
