// Package notification hands domain events to the message broker. Each
// event action is routed to exactly one destination; delivery beyond the
// broker hand-off is the broker's responsibility.
package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/joshuarp/consent-bridge/internal/shared/log"
	"github.com/joshuarp/consent-bridge/internal/shared/uid"
)

var (
	ErrBrokerPublishFailed = errors.New("notification: broker publish failed")
	ErrUnknownDestination  = errors.New("notification: no destination for action")
)

// Action is the kind of event being announced.
type Action int

const (
	ActionUnknown Action = iota
	CareContextLinked
	HealthInformationRequested
	ConsentRequestCreated
	ConsentArtefactGranted
)

// Destination keys, named after the queues the consumers bind to.
const (
	QueueLink                = "hip-link-queue"
	QueueDataFlowRequest     = "hip-data-flow-request-queue"
	QueueConsentRequest      = "consent-request-queue"
	QueueConsentNotification = "hiu-consent-notification-queue"
)

func (a Action) String() string {
	switch a {
	case CareContextLinked:
		return "CareContextLinked"
	case HealthInformationRequested:
		return "HealthInformationRequested"
	case ConsentRequestCreated:
		return "ConsentRequestCreated"
	case ConsentArtefactGranted:
		return "ConsentArtefactGranted"
	default:
		return "Unknown"
	}
}

func (a Action) destinationKey() (string, bool) {
	switch a {
	case CareContextLinked:
		return QueueLink, true
	case HealthInformationRequested:
		return QueueDataFlowRequest, true
	case ConsentRequestCreated:
		return QueueConsentRequest, true
	case ConsentArtefactGranted:
		return QueueConsentNotification, true
	default:
		return "", false
	}
}

// Destination is where a message is published on the broker.
type Destination struct {
	Exchange   string
	RoutingKey string
}

// Destinations maps a destination key to its broker address.
type Destinations map[string]Destination

// DefaultDestinations publishes every key on the default exchange with the
// key itself as routing key.
func DefaultDestinations() Destinations {
	return Destinations{
		QueueLink:                {RoutingKey: QueueLink},
		QueueDataFlowRequest:     {RoutingKey: QueueDataFlowRequest},
		QueueConsentRequest:      {RoutingKey: QueueConsentRequest},
		QueueConsentNotification: {RoutingKey: QueueConsentNotification},
	}
}

// Notification is a single event. The dispatcher keeps nothing once Publish returns.
type Notification struct {
	ID            string
	CorrelationID string
	Action        Action
	Payload       any
}

// Message is the broker-level form of a Notification.
type Message struct {
	ID            string
	CorrelationID string
	Type          string
	Body          []byte
	Timestamp     time.Time
}

// Publisher delivers a message to the broker and reports the hand-off result.
type Publisher interface {
	Publish(ctx context.Context, destination Destination, message Message) error
}

// envelope is the traceable body consumers receive.
type envelope struct {
	CorrelationID string `json:"correlationId,omitempty"`
	Action        string `json:"action"`
	Message       any    `json:"message"`
}

type Dispatcher struct {
	publisher    Publisher
	destinations Destinations
	ids          uid.UIDGenerator
	logger       *slog.Logger
	now          func() time.Time
}

func NewDispatcher(publisher Publisher, destinations Destinations, ids uid.UIDGenerator, logger *slog.Logger) *Dispatcher {
	if destinations == nil {
		destinations = DefaultDestinations()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		publisher:    publisher,
		destinations: destinations,
		ids:          ids,
		logger:       logger,
		now:          time.Now,
	}
}

// Publish routes n by its action and hands it to the broker. There is no
// retry here; a broker failure is returned wrapped in ErrBrokerPublishFailed.
func (d *Dispatcher) Publish(ctx context.Context, n Notification) error {
	key, ok := n.Action.destinationKey()
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownDestination, n.Action)
	}
	destination, ok := d.destinations[key]
	if !ok {
		return fmt.Errorf("%w: %s has no %q entry", ErrUnknownDestination, n.Action, key)
	}

	correlationID := n.CorrelationID
	if correlationID == "" {
		correlationID = log.CorrelationIDFrom(ctx)
	}
	logger := log.With(log.WithCorrelationID(ctx, correlationID), d.logger).With("action", n.Action.String())
	if correlationID == "" {
		logger.WarnContext(ctx, "publishing notification without correlation id")
	}

	id := n.ID
	if id == "" && d.ids != nil {
		generated, err := d.ids.Generate(ctx)
		if err != nil {
			return fmt.Errorf("notification: generate id: %w", err)
		}
		id = generated
	}

	body, err := json.Marshal(envelope{
		CorrelationID: correlationID,
		Action:        n.Action.String(),
		Message:       n.Payload,
	})
	if err != nil {
		return fmt.Errorf("notification: encode %s: %w", n.Action, err)
	}

	message := Message{
		ID:            id,
		CorrelationID: correlationID,
		Type:          n.Action.String(),
		Body:          body,
		Timestamp:     d.now().UTC(),
	}
	if err := d.publisher.Publish(ctx, destination, message); err != nil {
		logger.ErrorContext(ctx, "failed to publish notification",
			"notification_id", id,
			"routing_key", destination.RoutingKey,
			"error", err,
		)
		return fmt.Errorf("%w: %s: %w", ErrBrokerPublishFailed, n.Action, err)
	}

	logger.InfoContext(ctx, "notification published",
		"notification_id", id,
		"routing_key", destination.RoutingKey,
	)
	return nil
}
