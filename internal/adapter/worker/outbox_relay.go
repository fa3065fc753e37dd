package worker

import (
	"context"
	"log/slog"

	"payout-engine/internal/core/port"
)

// OutboxRelay publishes pending outbox messages and marks them published.
// Delivery is at least once: a crash between Publish and MarkOutboxPublished
// republishes the message on the next pass.
type OutboxRelay struct {
	Outbox    port.OutboxStore
	Publisher port.Publisher
	Clock     port.Clock
	BatchSize int
	Logger    *slog.Logger
}

func (r OutboxRelay) RunOnce(ctx context.Context) error {
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}
	clock := r.Clock
	if clock == nil {
		clock = port.SystemClock{}
	}
	limit := r.BatchSize
	if limit <= 0 {
		limit = 100
	}

	pending, err := r.Outbox.ListPendingOutbox(ctx, limit)
	if err != nil {
		logger.Error("outbox list failed",
			slog.String("event", "outbox_list_failed"),
			slog.String("module", "worker"),
			slog.Any("error", err),
		)
		return err
	}

	for _, msg := range pending {
		if err = r.Publisher.Publish(ctx, msg.Topic, msg.Payload); err != nil {
			logger.Error("outbox publish failed",
				slog.String("event", "outbox_publish_failed"),
				slog.String("module", "worker"),
				slog.String("outbox_id", msg.ID),
				slog.Any("error", err),
			)
			return err
		}
		if err = r.Outbox.MarkOutboxPublished(ctx, msg.ID, clock.Now().UTC()); err != nil {
			return err
		}
	}
	return nil
}
