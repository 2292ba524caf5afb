package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

// Exchange is the durable topic exchange all vault events are published to.
const Exchange = "vault_events"

// Publisher fans events out to external consumers. Publication happens
// after the owning transaction commits and must never fail the operation.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close()
}

// NopPublisher is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(ctx context.Context, event Event) error { return nil }

func (NopPublisher) Close() {}

// AMQPPublisher publishes events to RabbitMQ as JSON messages routed by
// event type.
type AMQPPublisher struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	logger  *logrus.Logger
}

// NewAMQPPublisher dials the broker with a bounded timeout so startup does
// not hang when RabbitMQ is down.
func NewAMQPPublisher(amqpURL string, logger *logrus.Logger) (*AMQPPublisher, error) {
	conn, err := amqp091.DialConfig(amqpURL, amqp091.Config{Dial: amqp091.DefaultDial(10 * time.Second)})
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	if err := ch.ExchangeDeclare(Exchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	return &AMQPPublisher{conn: conn, channel: ch, logger: logger}, nil
}

type message struct {
	ID        string    `json:"id"`
	Account   string    `json:"account"`
	Type      string    `json:"type"`
	Payload   any       `json:"payload"`
	CreatedAt time.Time `json:"createdAt"`
}

func (p *AMQPPublisher) Publish(ctx context.Context, event Event) error {
	body, err := json.Marshal(message{
		ID:        event.ID.String(),
		Account:   event.Account,
		Type:      event.Type,
		Payload:   event.Payload,
		CreatedAt: event.CreatedAt,
	})
	if err != nil {
		return err
	}

	err = p.channel.PublishWithContext(ctx,
		Exchange,
		event.Type,
		false,
		false,
		amqp091.Publishing{
			ContentType: "application/json",
			MessageId:   event.ID.String(),
			Timestamp:   event.CreatedAt,
			Body:        body,
		},
	)
	if err != nil {
		// One-shot retry on a fresh channel; the connection may have
		// outlived the channel.
		p.logger.WithError(err).Warn("AMQPPublisher.Publish.reopening channel")
		ch, chErr := p.conn.Channel()
		if chErr != nil {
			return err
		}
		p.channel = ch
		if exErr := ch.ExchangeDeclare(Exchange, "topic", true, false, false, false, nil); exErr != nil {
			return err
		}
		return ch.PublishWithContext(ctx, Exchange, event.Type, false, false, amqp091.Publishing{
			ContentType: "application/json",
			MessageId:   event.ID.String(),
			Timestamp:   event.CreatedAt,
			Body:        body,
		})
	}
	return nil
}

func (p *AMQPPublisher) Close() {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}
