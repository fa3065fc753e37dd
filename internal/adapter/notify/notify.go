// Package notify contains port.Notifier implementations.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"payout-engine/internal/core/port"
)

// Topic is the routing key notifications are published under.
const Topic = "payout.notifications"

// Outbox persists notifications in the outbox table so the relay worker can
// deliver them after the fact. Notify never talks to the broker directly.
type Outbox struct {
	store port.OutboxStore
	clock port.Clock
}

var _ port.Notifier = (*Outbox)(nil)

func NewOutbox(store port.OutboxStore, clock port.Clock) *Outbox {
	if clock == nil {
		clock = port.SystemClock{}
	}
	return &Outbox{store: store, clock: clock}
}

// Envelope is the message body published for every notification.
type Envelope struct {
	EventID    string            `json:"event_id"`
	OccurredAt string            `json:"occurred_at"`
	Data       port.Notification `json:"data"`
}

func (o *Outbox) Notify(ctx context.Context, n port.Notification) error {
	now := o.clock.Now().UTC()
	env := Envelope{
		EventID:    uuid.NewString(),
		OccurredAt: now.Format("2006-01-02T15:04:05.000Z07:00"),
		Data:       n,
	}
	payload, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("encode notification: %w", err)
	}
	return o.store.AppendOutbox(ctx, port.OutboxMessage{
		ID:        env.EventID,
		Topic:     Topic,
		Payload:   payload,
		CreatedAt: now,
	})
}

// Log writes notifications to the logger. It is used when no broker is
// configured.
type Log struct {
	logger *slog.Logger
}

var _ port.Notifier = (*Log)(nil)

func NewLog(logger *slog.Logger) *Log {
	if logger == nil {
		logger = slog.Default()
	}
	return &Log{logger: logger}
}

func (l *Log) Notify(ctx context.Context, n port.Notification) error {
	l.logger.InfoContext(ctx, "notification",
		slog.String("event", "notification_sent"),
		slog.String("module", "notify"),
		slog.String("user_id", n.UserID),
		slog.String("type", n.Type),
		slog.String("title", n.Title),
		slog.String("link", n.Link),
	)
	return nil
}

// LogPublisher is a port.Publisher that only logs payloads. The outbox relay
// uses it when AMQP is disabled so the outbox still drains.
type LogPublisher struct {
	logger *slog.Logger
}

var _ port.Publisher = (*LogPublisher)(nil)

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, topic string, payload []byte) error {
	p.logger.InfoContext(ctx, "outbox message",
		slog.String("topic", topic),
		slog.String("payload", string(payload)),
	)
	return nil
}
