package bookingevents

import (
	"context"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"
	"sync"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Publisher pushes booking lifecycle events to a durable RabbitMQ queue.
// Settlement treats publication as fire-and-forget; a failed publish is
// logged, never surfaced to the booking caller.
type Publisher struct {
	ch        *amqp.Channel
	queueName string
	log       *zap.Logger
	mu        sync.Mutex
}

func NewPublisher(conn *amqp.Connection, queueName string, log *zap.Logger) (*Publisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	)
	if err != nil {
		return nil, err
	}

	return &Publisher{
		ch:        ch,
		queueName: queueName,
		log:       log,
	}, nil
}

func (p *Publisher) Publish(ctx context.Context, event contracts.BookingEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.ch.PublishWithContext(ctx,
		"",          // exchange
		p.queueName, // routing key
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType:  constvars.MIMEApplicationJSON,
			DeliveryMode: amqp.Persistent,
			MessageId:    event.ID,
			Body:         body,
		},
	)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.queueName)
	}

	p.log.Info("bookingevents.Publish delivered event",
		zap.String(constvars.LoggingEventTypeKey, event.Type),
		zap.String(constvars.LoggingBookingIDKey, event.BookingID),
	)
	return nil
}
