package rabbitmq

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"hub-booking/internal/notify"
	"hub-booking/internal/pkg/config"
	"hub-booking/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Channel is the subset of *amqp.Channel the sink publishes through.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Sink publishes notifications to a topic exchange, routed by notification kind.
type Sink struct {
	conn     *amqp.Connection
	channel  Channel
	exchange string
	logger   *slog.Logger
}

func Connect(cfg config.RabbitMQConfig, logger *slog.Logger) (*Sink, error) {
	var conn *amqp.Connection
	var err error

	for i := 0; i < 6; i++ {
		conn, err = amqp.DialConfig(cfg.URL, amqp.Config{
			Heartbeat: 10 * time.Second,
			Dial:      amqp.DefaultDial(10 * time.Second),
		})
		if err == nil {
			break
		}
		logger.Warn("failed to connect to RabbitMQ, retrying", "attempt", i+1, "error", err)
		time.Sleep(5 * time.Second)
	}
	if err != nil {
		return nil, errs.Wrap(err, "failed to connect to RabbitMQ after retries")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "failed to open channel")
	}

	err = ch.ExchangeDeclare(
		cfg.Exchange,
		"topic",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errs.Wrap(err, "failed to declare exchange")
	}

	s := NewSink(ch, cfg.Exchange, logger)
	s.conn = conn
	return s, nil
}

func NewSink(ch Channel, exchange string, logger *slog.Logger) *Sink {
	return &Sink{channel: ch, exchange: exchange, logger: logger}
}

func (s *Sink) Name() string { return "rabbitmq" }

func (s *Sink) Deliver(ctx context.Context, n notify.Notification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return errs.Wrap(err, "failed to marshal notification")
	}

	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = s.channel.PublishWithContext(pubCtx,
		s.exchange,
		string(n.Kind), // routing key
		false,          // mandatory
		false,          // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    n.ID.String(),
			Timestamp:    n.OccurredAt,
			Type:         string(n.Kind),
			Body:         body,
		},
	)
	if err != nil {
		return errs.Wrap(err, "failed to publish notification")
	}

	s.logger.Debug("published notification", "kind", string(n.Kind), "notification_id", n.ID.String())
	return nil
}

func (s *Sink) Close() {
	if s.channel != nil {
		_ = s.channel.Close()
	}
	if s.conn != nil {
		_ = s.conn.Close()
	}
}
