package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"sandwich-storefront/internal/domain/order"
	"sandwich-storefront/internal/pkg/clock"
	"sandwich-storefront/internal/pkg/config"

	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 3 * time.Second

type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// RabbitPublisher sends order events to a durable topic exchange.
type RabbitPublisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	ch       channel
	exchange string
	clock    clock.Clock
}

func Dial(cfg config.RabbitMQConfig, clk clock.Clock) (*RabbitPublisher, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to RabbitMQ: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(cfg.Exchange, "topic", true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("declare %s: %w", cfg.Exchange, err)
	}
	return &RabbitPublisher{conn: conn, ch: ch, exchange: cfg.Exchange, clock: clk}, nil
}

func (p *RabbitPublisher) PublishOrderSubmitted(ctx context.Context, d *order.Details) error {
	body, err := json.Marshal(NewOrderSubmitted(d, p.clock.Now()))
	if err != nil {
		return fmt.Errorf("marshal OrderSubmitted: %w", err)
	}
	return p.publishJSON(ctx, OrderSubmittedRoutingKey, body)
}

// Channels are not safe for concurrent publishing.
func (p *RabbitPublisher) publishJSON(ctx context.Context, routingKey string, body []byte) error {
	pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ch.PublishWithContext(
		pubCtx,
		p.exchange,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    p.clock.Now(),
			Body:         body,
		},
	)
}

func (p *RabbitPublisher) Close() error {
	if err := p.ch.Close(); err != nil {
		return err
	}
	if p.conn == nil {
		return nil
	}
	return p.conn.Close()
}

// LogPublisher stands in when no broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) PublishOrderSubmitted(ctx context.Context, d *order.Details) error {
	p.logger.InfoContext(ctx, "order submitted",
		"routing_key", OrderSubmittedRoutingKey,
		"order_id", d.ID.String(),
		"order_number", d.Number,
		"items", d.ItemCount(),
		"total", d.Total.StringFixed(2))
	return nil
}

func (p *LogPublisher) Close() error { return nil }
