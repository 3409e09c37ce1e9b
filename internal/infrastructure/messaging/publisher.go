// Package messaging broadcasts order status changes over RabbitMQ so kitchen
// displays and notification workers can follow an order without polling.
package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"

	"github.com/lionscafe/storefront/internal/core/domain"
)

// ExchangeOrderEvents is the fanout exchange order status changes go to.
const ExchangeOrderEvents = "order_events"

const publishTimeout = 5 * time.Second

type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher implements ports.OrderEventPublisher on a RabbitMQ channel.
type Publisher struct {
	mu     sync.Mutex
	conn   *amqp.Connection
	ch     channel
	logger zerolog.Logger
}

// Dial connects to url and declares the order events exchange.
func Dial(url string, logger zerolog.Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("amqp dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("amqp channel: %w", err)
	}
	err = ch.ExchangeDeclare(
		ExchangeOrderEvents, // name
		"fanout",            // type
		true,                // durable
		false,               // auto-deleted
		false,               // internal
		false,               // no-wait
		nil,                 // arguments
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare %s exchange: %w", ExchangeOrderEvents, err)
	}
	return &Publisher{conn: conn, ch: ch, logger: logger}, nil
}

// PublishOrderStatus sends change as a persistent JSON message.
func (p *Publisher) PublishOrderStatus(ctx context.Context, change domain.OrderStatusChange) error {
	body, err := json.Marshal(change)
	if err != nil {
		return fmt.Errorf("marshal order status change: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	// amqp channels are not safe for concurrent publishing.
	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.ch.PublishWithContext(ctx, ExchangeOrderEvents, "", false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    change.ChangedAt,
		Type:         "order.status_changed",
		MessageId:    change.OrderID + ":" + string(change.Status),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish order status: %w", err)
	}
	p.logger.Debug().Str("order_id", change.OrderID).Str("status", string(change.Status)).Msg("order status published")
	return nil
}

// Ping reports whether the broker connection is still open.
func (p *Publisher) Ping(context.Context) error {
	if p.conn == nil || p.conn.IsClosed() {
		return fmt.Errorf("amqp connection closed")
	}
	return nil
}

// Close closes the channel and the connection.
func (p *Publisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
