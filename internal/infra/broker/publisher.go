package broker

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
)

const exchangeKind = "topic"

// AMQPPublisher publishes reservation events to a durable topic exchange,
// routed by event type. The channel is re-opened lazily after a broker drop.
type AMQPPublisher struct {
	url      string
	exchange string

	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
}

func NewAMQPPublisher(url, exchange string) (*AMQPPublisher, error) {
	p := &AMQPPublisher{url: url, exchange: exchange}
	if err := p.ensureChannel(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *AMQPPublisher) ensureChannel() error {
	if p.conn != nil && !p.conn.IsClosed() && p.channel != nil && !p.channel.IsClosed() {
		return nil
	}
	p.closeLocked()

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return errs.Wrap(err, "failed to connect to broker")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return errs.Wrap(err, "failed to open broker channel")
	}
	if err := ch.ExchangeDeclare(p.exchange, exchangeKind, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return errs.Wrapf(err, "failed to declare exchange %s", p.exchange)
	}

	p.conn = conn
	p.channel = ch
	return nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, evt shared.ReservationEvent) error {
	body, err := json.Marshal(evt)
	if err != nil {
		return errs.Wrap(err, "failed to marshal event")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ensureChannel(); err != nil {
		return err
	}

	err = p.channel.PublishWithContext(ctx, p.exchange, string(evt.Type), false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    evt.ReservationID.String() + ":" + string(evt.Type),
		Timestamp:    time.Now().UTC(),
		Type:         string(evt.Type),
		Body:         body,
	})
	if err != nil {
		return errs.Wrapf(err, "failed to publish %s", evt.Type)
	}

	slog.Debug("event published", "type", string(evt.Type), "reservation_id", evt.ReservationID.String())
	return nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closeLocked()
	return nil
}

func (p *AMQPPublisher) closeLocked() {
	if p.channel != nil {
		if err := p.channel.Close(); err != nil && !errs.Is(err, amqp.ErrClosed) {
			slog.Warn("failed to close broker channel", "error", err.Error())
		}
		p.channel = nil
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil && !errs.Is(err, amqp.ErrClosed) {
			slog.Warn("failed to close broker connection", "error", err.Error())
		}
		p.conn = nil
	}
}

// NopPublisher drops events when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, shared.ReservationEvent) error { return nil }
