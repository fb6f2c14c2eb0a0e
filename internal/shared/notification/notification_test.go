package notification

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/joshuarp/consent-bridge/internal/shared/log"
)

type recordingPublisher struct {
	err       error
	published []published
}

type published struct {
	destination Destination
	message     Message
}

func (p *recordingPublisher) Publish(_ context.Context, destination Destination, message Message) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, published{destination: destination, message: message})
	return nil
}

type sequenceIDs struct {
	next string
	err  error
}

func (g sequenceIDs) Generate(context.Context) (string, error) {
	return g.next, g.err
}

var fixedNow = time.Date(2026, 5, 1, 8, 30, 0, 0, time.UTC)

type DispatcherSuite struct {
	suite.Suite

	ctx        context.Context
	publisher  *recordingPublisher
	dispatcher *Dispatcher
}

func (s *DispatcherSuite) SetupTest() {
	s.ctx = context.Background()
	s.publisher = &recordingPublisher{}
	s.dispatcher = NewDispatcher(s.publisher, nil, sequenceIDs{next: "1790000000000000001"}, nil)
	s.dispatcher.now = func() time.Time { return fixedNow }
}

func (s *DispatcherSuite) TestPublish_RoutesByAction() {
	tests := []struct {
		action     Action
		routingKey string
	}{
		{action: CareContextLinked, routingKey: QueueLink},
		{action: HealthInformationRequested, routingKey: QueueDataFlowRequest},
		{action: ConsentRequestCreated, routingKey: QueueConsentRequest},
		{action: ConsentArtefactGranted, routingKey: QueueConsentNotification},
	}

	for _, tc := range tests {
		s.Run(tc.action.String(), func() {
			s.SetupTest()
			err := s.dispatcher.Publish(s.ctx, Notification{CorrelationID: "corr-1", Action: tc.action, Payload: map[string]string{"k": "v"}})
			require.NoError(s.T(), err)
			require.Len(s.T(), s.publisher.published, 1)
			assert.Equal(s.T(), tc.routingKey, s.publisher.published[0].destination.RoutingKey)
			assert.Equal(s.T(), tc.action.String(), s.publisher.published[0].message.Type)
		})
	}
}

func (s *DispatcherSuite) TestPublish_WrapsPayloadInTraceableEnvelope() {
	payload := map[string]any{"linkRefNumber": "ref-1", "patientId": "p-1"}

	err := s.dispatcher.Publish(s.ctx, Notification{CorrelationID: "corr-9", Action: CareContextLinked, Payload: payload})
	require.NoError(s.T(), err)

	message := s.publisher.published[0].message
	assert.Equal(s.T(), "1790000000000000001", message.ID)
	assert.Equal(s.T(), "corr-9", message.CorrelationID)
	assert.Equal(s.T(), fixedNow, message.Timestamp)
	assert.JSONEq(s.T(),
		`{"correlationId":"corr-9","action":"CareContextLinked","message":{"linkRefNumber":"ref-1","patientId":"p-1"}}`,
		string(message.Body),
	)
}

func (s *DispatcherSuite) TestPublish_CorrelationIDFromContext() {
	ctx := log.WithCorrelationID(s.ctx, "corr-from-request")

	err := s.dispatcher.Publish(ctx, Notification{ID: "given-id", Action: ConsentRequestCreated, Payload: "x"})
	require.NoError(s.T(), err)

	message := s.publisher.published[0].message
	assert.Equal(s.T(), "given-id", message.ID)
	assert.Equal(s.T(), "corr-from-request", message.CorrelationID)
}

func (s *DispatcherSuite) TestPublish_MissingCorrelationIDIsNotAFailure() {
	err := s.dispatcher.Publish(s.ctx, Notification{Action: ConsentArtefactGranted, Payload: "x"})
	require.NoError(s.T(), err)

	var body map[string]any
	require.NoError(s.T(), json.Unmarshal(s.publisher.published[0].message.Body, &body))
	assert.NotContains(s.T(), body, "correlationId")
}

func (s *DispatcherSuite) TestPublish_Failures() {
	tests := []struct {
		name         string
		notification Notification
		setup        func()
		assertion    func(err error)
	}{
		{
			name:         "unknown action",
			notification: Notification{Action: ActionUnknown},
			assertion: func(err error) {
				assert.ErrorIs(s.T(), err, ErrUnknownDestination)
			},
		},
		{
			name:         "destination missing from table",
			notification: Notification{Action: CareContextLinked},
			setup: func() {
				s.dispatcher.destinations = Destinations{}
			},
			assertion: func(err error) {
				assert.ErrorIs(s.T(), err, ErrUnknownDestination)
			},
		},
		{
			name:         "broker failure",
			notification: Notification{Action: CareContextLinked, CorrelationID: "c"},
			setup: func() {
				s.publisher.err = errors.New("channel closed")
			},
			assertion: func(err error) {
				assert.ErrorIs(s.T(), err, ErrBrokerPublishFailed)
				assert.ErrorContains(s.T(), err, "channel closed")
			},
		},
		{
			name:         "id generation failure",
			notification: Notification{Action: CareContextLinked, CorrelationID: "c"},
			setup: func() {
				s.dispatcher.ids = sequenceIDs{err: errors.New("clock moved backwards")}
			},
			assertion: func(err error) {
				assert.ErrorContains(s.T(), err, "clock moved backwards")
			},
		},
		{
			name:         "payload cannot be encoded",
			notification: Notification{Action: CareContextLinked, CorrelationID: "c", Payload: make(chan int)},
			assertion: func(err error) {
				require.Error(s.T(), err)
				assert.NotErrorIs(s.T(), err, ErrBrokerPublishFailed)
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			if tc.setup != nil {
				tc.setup()
			}
			err := s.dispatcher.Publish(s.ctx, tc.notification)
			tc.assertion(err)
			assert.Empty(s.T(), s.publisher.published)
		})
	}
}

func TestDispatcherSuite(t *testing.T) {
	suite.Run(t, new(DispatcherSuite))
}

type fakeChannel struct {
	err        error
	publishing amqp.Publishing
	exchange   string
	key        string
	mandatory  bool
	closed     bool
	returns    chan amqp.Return
	returnCode uint16
}

func (c *fakeChannel) PublishWithDeferredConfirmWithContext(_ context.Context, exchange, key string, mandatory, _ bool, msg amqp.Publishing) (*amqp.DeferredConfirmation, error) {
	if c.err != nil {
		return nil, c.err
	}
	c.exchange, c.key, c.mandatory, c.publishing = exchange, key, mandatory, msg
	if c.returnCode != 0 {
		c.returns <- amqp.Return{ReplyCode: c.returnCode, ReplyText: "NO_ROUTE", Exchange: exchange, RoutingKey: key, MessageId: msg.MessageId}
	}
	return nil, nil
}

func (c *fakeChannel) IsClosed() bool { return c.closed }

func (c *fakeChannel) Close() error {
	c.closed = true
	return nil
}

type fakeConn struct{ closed bool }

func (c *fakeConn) Close() error {
	c.closed = true
	return nil
}

func newFakeSession(channel *fakeChannel) *amqpSession {
	if channel.returns == nil {
		channel.returns = make(chan amqp.Return, returnBuffer)
	}
	return &amqpSession{conn: &fakeConn{}, channel: channel, returns: channel.returns}
}

func TestAMQPPublisher_SetsMessageProperties(t *testing.T) {
	channel := &fakeChannel{}
	session := newFakeSession(channel)
	publisher := &AMQPPublisher{session: session}

	err := publisher.Publish(context.Background(), Destination{Exchange: "consent", RoutingKey: QueueLink}, Message{
		ID:            "n-1",
		CorrelationID: "corr-1",
		Type:          CareContextLinked.String(),
		Body:          []byte(`{}`),
		Timestamp:     fixedNow,
	})
	require.NoError(t, err)

	assert.Equal(t, "consent", channel.exchange)
	assert.Equal(t, QueueLink, channel.key)
	assert.True(t, channel.mandatory)
	assert.Equal(t, "n-1", channel.publishing.MessageId)
	assert.Equal(t, "corr-1", channel.publishing.CorrelationId)
	assert.Equal(t, "CareContextLinked", channel.publishing.Type)
	assert.Equal(t, amqp.Persistent, channel.publishing.DeliveryMode)
	assert.Equal(t, "application/json", channel.publishing.ContentType)

	require.NoError(t, publisher.Close())
	assert.True(t, channel.closed)
	assert.True(t, session.conn.(*fakeConn).closed)
}

func TestAMQPPublisher_Failures(t *testing.T) {
	tests := []struct {
		name      string
		publisher func() (*AMQPPublisher, *int)
		expectErr error
		expectMsg string
		dials     int
	}{
		{
			name: "unroutable message is returned",
			publisher: func() (*AMQPPublisher, *int) {
				return &AMQPPublisher{session: newFakeSession(&fakeChannel{returnCode: amqp.NoRoute})}, new(int)
			},
			expectErr: errUnroutable,
			expectMsg: "312 NO_ROUTE",
		},
		{
			name: "closed channel is redialed",
			publisher: func() (*AMQPPublisher, *int) {
				dials := new(int)
				return &AMQPPublisher{
					session: newFakeSession(&fakeChannel{closed: true}),
					dial: func() (*amqpSession, error) {
						*dials++
						return newFakeSession(&fakeChannel{}), nil
					},
				}, dials
			},
			dials: 1,
		},
		{
			name: "publish on a dead session retries once on a fresh one",
			publisher: func() (*AMQPPublisher, *int) {
				dials := new(int)
				return &AMQPPublisher{
					session: newFakeSession(&fakeChannel{err: amqp.ErrClosed}),
					dial: func() (*amqpSession, error) {
						*dials++
						return newFakeSession(&fakeChannel{}), nil
					},
				}, dials
			},
			dials: 1,
		},
		{
			name: "redial failure is returned",
			publisher: func() (*AMQPPublisher, *int) {
				dials := new(int)
				return &AMQPPublisher{
					dial: func() (*amqpSession, error) {
						*dials++
						return nil, errors.New("connection refused")
					},
				}, dials
			},
			expectMsg: "connection refused",
			dials:     1,
		},
		{
			name: "closed session without dialer",
			publisher: func() (*AMQPPublisher, *int) {
				return &AMQPPublisher{session: newFakeSession(&fakeChannel{err: amqp.ErrClosed})}, new(int)
			},
			expectErr: amqp.ErrClosed,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			publisher, dials := tc.publisher()

			err := publisher.Publish(context.Background(), Destination{RoutingKey: QueueLink}, Message{ID: "n-1"})
			switch {
			case tc.expectErr != nil:
				assert.ErrorIs(t, err, tc.expectErr)
			case tc.expectMsg != "":
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}
			if tc.expectMsg != "" {
				assert.ErrorContains(t, err, tc.expectMsg)
			}
			assert.Equal(t, tc.dials, *dials)
		})
	}
}

func TestUnroutable_IgnoresOtherMessages(t *testing.T) {
	returns := make(chan amqp.Return, 2)
	returns <- amqp.Return{MessageId: "other"}

	assert.NoError(t, unroutable(returns, "n-1"))
	assert.Empty(t, returns)
}
