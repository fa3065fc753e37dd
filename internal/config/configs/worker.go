package configs

import "time"

// Worker configures the background jobs.
type Worker struct {
	OutboxInterval   time.Duration `env:"OUTBOX_INTERVAL" envDefault:"2s"`
	DeadlineInterval time.Duration `env:"DEADLINE_INTERVAL" envDefault:"1m"`
	BatchSize        int           `env:"BATCH_SIZE" envDefault:"100"`
}
