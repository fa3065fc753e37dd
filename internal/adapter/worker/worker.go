// Package worker holds the background jobs run next to the HTTP server.
package worker

import (
	"context"
	"log/slog"
	"time"
)

// Job is one pass of a periodic worker.
type Job interface {
	RunOnce(ctx context.Context) error
}

// Run calls job.RunOnce every interval until ctx is done. Errors are logged
// and the loop continues. It returns nil on cancellation.
func Run(ctx context.Context, name string, interval time.Duration, job Job, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("worker", name))
	logger.Info("worker started", slog.Duration("interval", interval))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		if err := job.RunOnce(ctx); err != nil && ctx.Err() == nil {
			logger.Error("worker pass failed", slog.Any("error", err))
		}
		select {
		case <-ctx.Done():
			logger.Info("worker stopped")
			return nil
		case <-ticker.C:
		}
	}
}
