package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/jakejarvis/domainstack.io-sub006/internal/changes"
	"github.com/jakejarvis/domainstack.io-sub006/internal/domain"
)

// Broker publishes in-app notifications to the message bus the web tier
// consumes.
type Broker struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	routingKey string
	logger     *slog.Logger
}

type BrokerConfig struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string
}

func NewBroker(cfg BrokerConfig, logger *slog.Logger) (*Broker, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		cfg.Exchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(
		cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	err = ch.QueueBind(
		q.Name,
		cfg.RoutingKey,
		cfg.Exchange,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("bind queue: %w", err)
	}

	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"routing_key", cfg.RoutingKey,
	)

	return &Broker{
		conn:       conn,
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		logger:     logger,
	}, nil
}

type notificationMessage struct {
	TrackedDomainID int64                   `json:"tracked_domain_id"`
	UserID          string                  `json:"user_id"`
	Domain          string                  `json:"domain"`
	Type            domain.NotificationType `json:"type"`
	DedupKey        string                  `json:"dedup_key"`
	Fields          []changes.FieldChange   `json:"fields"`
	Timestamp       time.Time               `json:"timestamp"`
}

func (b *Broker) Publish(ctx context.Context, ev Event) error {
	msg := notificationMessage{
		TrackedDomainID: ev.Tracked.ID,
		UserID:          ev.Tracked.UserID,
		Domain:          ev.Tracked.DomainName,
		Type:            ev.Change.Type,
		DedupKey:        ev.DedupKey,
		Fields:          ev.Change.Fields,
		Timestamp:       ev.At,
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	err = b.channel.PublishWithContext(
		ctx,
		b.exchange,
		b.routingKey,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			// DedupKey doubles as the broker message id so consumers can
			// drop replays too.
			MessageId: ev.DedupKey,
			Body:      body,
			Timestamp: time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	b.logger.Debug("published notification",
		"tracked_domain_id", ev.Tracked.ID,
		"type", ev.Change.Type,
	)

	return nil
}

func (b *Broker) Close() error {
	if b.channel != nil {
		b.channel.Close()
	}
	if b.conn != nil {
		return b.conn.Close()
	}
	return nil
}
