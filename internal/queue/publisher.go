// Package queue implements the publishing side of the durable task queue.
package queue

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// ErrBroker marks any transport-level failure while talking to the message
// broker: a refused connection, an authentication failure, a malformed
// connection URL, or a disruption during publish. Callers match it with
// errors.Is and map it to an HTTP 502.
var ErrBroker = errors.New("message broker unavailable")

// Publisher sends a pre-serialized message body to the work queue.
type Publisher interface {
	Publish(ctx context.Context, body []byte) error
}

// AMQPPublisher publishes messages to a durable RabbitMQ queue.
//
// Each Publish call opens its own connection and releases it before
// returning, including on failure paths. Nothing is pooled or shared across
// requests, and a failed publish is never retried here.
type AMQPPublisher struct {
	url   string
	queue string
}

// Statically verify the interface is satisfied.
var _ Publisher = (*AMQPPublisher)(nil)

// NewAMQPPublisher creates a publisher targeting the queue named queue on the
// broker at url. The URL is not validated here; a bad URL surfaces as
// ErrBroker on the first Publish.
func NewAMQPPublisher(url, queue string) *AMQPPublisher {
	return &AMQPPublisher{
		url:   url,
		queue: queue,
	}
}

// Publish declares the durable queue and publishes body to it through the
// default exchange with persistent delivery, so the broker writes the message
// to stable storage before acknowledging. Success means the broker accepted
// the message for durable delivery, not that a consumer has processed it.
func (p *AMQPPublisher) Publish(ctx context.Context, body []byte) error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return fmt.Errorf("%w: dial: %v", ErrBroker, err)
	}
	// Closing the connection also tears down its channels.
	defer func() {
		_ = conn.Close()
	}()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("%w: open channel: %v", ErrBroker, err)
	}

	_, err = ch.QueueDeclare(
		p.queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	)
	if err != nil {
		return fmt.Errorf("%w: declare queue %q: %v", ErrBroker, p.queue, err)
	}

	err = ch.PublishWithContext(ctx,
		"",      // default exchange
		p.queue, // routing key
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    uuid.NewString(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("%w: publish to queue %q: %v", ErrBroker, p.queue, err)
	}

	return nil
}
