package notification

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
)

var _ Publisher = (*AMQPPublisher)(nil)

var (
	errNacked     = errors.New("broker did not acknowledge the message")
	errUnroutable = errors.New("broker returned the message as unroutable")
)

// returnBuffer holds basic.return frames until the publish that caused them
// reads them. Publishes are serialized, so one slot per publish is enough.
const returnBuffer = 8

type publishChannel interface {
	PublishWithDeferredConfirmWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) (*amqp.DeferredConfirmation, error)
	IsClosed() bool
	Close() error
}

// amqpSession is one connection with its confirm-mode channel.
type amqpSession struct {
	conn    io.Closer
	channel publishChannel
	returns chan amqp.Return
}

func (s *amqpSession) close() error {
	var errs []error
	if s.channel != nil && !s.channel.IsClosed() {
		errs = append(errs, s.channel.Close())
	}
	if s.conn != nil {
		errs = append(errs, s.conn.Close())
	}
	return errors.Join(errs...)
}

// AMQPPublisher publishes mandatory messages on a confirm-mode channel and
// waits for the broker ack of every message. A closed channel or connection
// is redialed on the next publish.
type AMQPPublisher struct {
	dial    func() (*amqpSession, error)
	session *amqpSession
	mu      sync.Mutex
}

// DialAMQP connects to url and puts a fresh channel into confirm mode.
func DialAMQP(url string) (*AMQPPublisher, error) {
	publisher := &AMQPPublisher{
		dial: func() (*amqpSession, error) { return dialSession(url) },
	}

	session, err := publisher.dial()
	if err != nil {
		return nil, err
	}
	publisher.session = session
	return publisher, nil
}

func dialSession(url string) (*amqpSession, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("notification: dial broker: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("notification: open channel: %w", err)
	}

	if err := channel.Confirm(false); err != nil {
		_ = channel.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("notification: enable confirm mode: %w", err)
	}

	return &amqpSession{
		conn:    conn,
		channel: channel,
		returns: channel.NotifyReturn(make(chan amqp.Return, returnBuffer)),
	}, nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, destination Destination, message Message) error {
	publishing := amqp.Publishing{
		ContentType:   "application/json",
		DeliveryMode:  amqp.Persistent,
		MessageId:     message.ID,
		CorrelationId: message.CorrelationID,
		Type:          message.Type,
		Timestamp:     message.Timestamp,
		Body:          message.Body,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err := p.publishLocked(ctx, destination, publishing)
	if !errors.Is(err, amqp.ErrClosed) {
		return err
	}

	// the session died between publishes; one fresh session, one more try
	p.dropSessionLocked()
	return p.publishLocked(ctx, destination, publishing)
}

func (p *AMQPPublisher) publishLocked(ctx context.Context, destination Destination, publishing amqp.Publishing) error {
	session, err := p.sessionLocked()
	if err != nil {
		return err
	}

	confirmation, err := session.channel.PublishWithDeferredConfirmWithContext(
		ctx,
		destination.Exchange,
		destination.RoutingKey,
		true,
		false,
		publishing,
	)
	if err != nil {
		return err
	}

	// nil when the channel is not in confirm mode
	if confirmation != nil {
		acked, err := confirmation.WaitContext(ctx)
		if err != nil {
			return err
		}
		if !acked {
			return errNacked
		}
	}

	// the broker sends basic.return before the ack of an unroutable message
	return unroutable(session.returns, publishing.MessageId)
}

func unroutable(returns <-chan amqp.Return, messageID string) error {
	for {
		select {
		case returned, ok := <-returns:
			if !ok {
				return nil
			}
			if returned.MessageId == messageID {
				return fmt.Errorf("%w: %d %s (exchange %q, routing key %q)",
					errUnroutable, returned.ReplyCode, returned.ReplyText, returned.Exchange, returned.RoutingKey)
			}
		default:
			return nil
		}
	}
}

func (p *AMQPPublisher) sessionLocked() (*amqpSession, error) {
	if p.session != nil && !p.session.channel.IsClosed() {
		return p.session, nil
	}
	p.dropSessionLocked()

	if p.dial == nil {
		return nil, amqp.ErrClosed
	}
	session, err := p.dial()
	if err != nil {
		return nil, err
	}
	p.session = session
	return session, nil
}

func (p *AMQPPublisher) dropSessionLocked() {
	if p.session == nil {
		return
	}
	_ = p.session.close()
	p.session = nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.session == nil {
		return nil
	}
	err := p.session.close()
	p.session = nil
	return err
}
