package port

import (
	"context"
	"time"
)

// Notification types emitted by the engine.
const (
	NotifySubmissionApproved = "submission_approved"
	NotifySubmissionRejected = "submission_rejected"
	NotifyNewSubmission      = "campaign_new_submission"
	NotifyPaymentRequested   = "payment_requested"
	NotifyPaymentCompleted   = "payment_completed"
	NotifyCampaignFinished   = "campaign_finished"
)

// Notification is a fire-and-forget message to one user.
type Notification struct {
	UserID string `json:"user_id"`
	Type   string `json:"type"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	Link   string `json:"link"`
}

// Notifier delivers notifications. Callers log and swallow its errors.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// OutboxMessage is a pending notification persisted for the relay.
type OutboxMessage struct {
	ID        string
	Topic     string
	Payload   []byte
	CreatedAt time.Time
}

// OutboxStore persists notifications for asynchronous delivery.
type OutboxStore interface {
	AppendOutbox(ctx context.Context, msg OutboxMessage) error
	ListPendingOutbox(ctx context.Context, limit int) ([]OutboxMessage, error)
	MarkOutboxPublished(ctx context.Context, id string, at time.Time) error
}

// Publisher ships outbox payloads to a message broker.
type Publisher interface {
	Publish(ctx context.Context, topic string, payload []byte) error
}
