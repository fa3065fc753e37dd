package worker

import (
	"context"
	"log/slog"
)

// CampaignFinisher closes campaigns whose deadline has passed.
type CampaignFinisher interface {
	CompleteExpiredCampaigns(ctx context.Context, limit int) (int, error)
}

// DeadlineSweeper finishes OPEN and PAUSED campaigns past their deadline.
type DeadlineSweeper struct {
	Campaigns CampaignFinisher
	BatchSize int
	Logger    *slog.Logger
}

func (j DeadlineSweeper) RunOnce(ctx context.Context) error {
	logger := j.Logger
	if logger == nil {
		logger = slog.Default()
	}
	limit := j.BatchSize
	if limit <= 0 {
		limit = 100
	}

	completed, err := j.Campaigns.CompleteExpiredCampaigns(ctx, limit)
	if err != nil {
		logger.Error("deadline sweep failed",
			slog.String("event", "campaign_deadline_sweep_failed"),
			slog.String("module", "worker"),
			slog.Any("error", err),
		)
		return err
	}
	if completed > 0 {
		logger.Info("deadline sweep completed",
			slog.String("event", "campaign_deadline_sweep_completed"),
			slog.String("module", "worker"),
			slog.Int("completed_count", completed),
		)
	}
	return nil
}
