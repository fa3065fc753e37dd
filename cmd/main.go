package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"payout-engine/internal/adapter/broker"
	"payout-engine/internal/adapter/http"
	"payout-engine/internal/adapter/memory"
	"payout-engine/internal/adapter/notify"
	"payout-engine/internal/adapter/postgres"
	"payout-engine/internal/adapter/usecase"
	"payout-engine/internal/adapter/verifier"
	"payout-engine/internal/adapter/worker"
	"payout-engine/internal/config"
	"payout-engine/internal/core/port"
	"payout-engine/internal/db"
)

// store is what the engine needs from a ledger backend.
type store interface {
	port.LedgerStore
	port.ReferralStore
	port.OutboxStore
}

// main is the entry point of the payout engine. It loads configuration,
// optionally runs database migrations, wires the ledger store, verifier
// clients and use case, then runs the HTTP server and background workers
// until a termination signal arrives.
func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env", slog.Any("error", err))
	}

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler).With(slog.String("env", cfg.Env))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err = run(ctx, cfg, logger); err != nil {
		logger.Error("service stopped with error", slog.Any("error", err))
		cancel()
		os.Exit(1)
	}
	logger.Info("service stopped")
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	st, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	publisher, closePublisher, err := openPublisher(cfg, logger)
	if err != nil {
		return err
	}
	defer closePublisher()

	vc := cfg.Verifier
	svc := usecase.NewPayoutUseCase(usecase.Deps{
		Store:     st,
		Referrals: st,
		Identity:  verifier.NewIdentityClient(vc.IdentityURL.String(), vc.APIKey, vc.Timeout),
		Metrics:   verifier.NewMetricsClient(vc.MetricsURL.String(), vc.APIKey, vc.Timeout),
		Content:   verifier.NewContentClient(vc.ContentURL.String(), vc.APIKey, vc.Timeout),
		Payments:  verifier.NewPaymentClient(vc.PaymentURL.String(), vc.APIKey, vc.Timeout),
		Notifier:  notify.NewOutbox(st, nil),
		Logger:    logger.With(slog.String("layer", "usecase")),
	}, usecase.Config{
		AntiSpamFee:     cfg.Payout.AntiSpamFee,
		SystemAddress:   cfg.Payout.SystemAddress,
		PlatformFeeBps:  cfg.Payout.PlatformFeeBps,
		VerifierTimeout: vc.Timeout,
		StuckLease:      cfg.Payout.StuckLease,
		PublicURL:       cfg.Payout.PublicURL,
	})

	handler := httpadapter.NewHandler(svc, logger.With(slog.String("layer", "http")), []byte(cfg.Auth.JWTSecret))
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	workerLogger := logger.With(slog.String("layer", "worker"))
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		logger.Info("server gracefully stopped")
		return nil
	})
	g.Go(func() error {
		relay := worker.OutboxRelay{
			Outbox:    st,
			Publisher: publisher,
			BatchSize: cfg.Worker.BatchSize,
			Logger:    workerLogger,
		}
		return worker.Run(gctx, "outbox_relay", cfg.Worker.OutboxInterval, relay, workerLogger)
	})
	g.Go(func() error {
		sweeper := worker.DeadlineSweeper{
			Campaigns: svc,
			BatchSize: cfg.Worker.BatchSize,
			Logger:    workerLogger,
		}
		return worker.Run(gctx, "deadline_sweeper", cfg.Worker.DeadlineInterval, sweeper, workerLogger)
	})
	return g.Wait()
}

func openStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (store, func(), error) {
	if !cfg.Psql.Enabled {
		logger.Warn("postgres disabled, using in-memory ledger store")
		return memory.NewStore(), func() {}, nil
	}

	// Optionally run migrations if configured. We use the Psql sub-config.
	if cfg.Psql.RunMigrations {
		if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
			return nil, nil, fmt.Errorf("migrations: %w", err)
		}
		logger.Info("migrations applied successfully")
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection: %w", err)
	}
	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("seed: %w", err)
		}
		logger.Info("demo data seeded")
	}
	return postgres.NewLedgerStore(pool, cfg.Psql.MaxTxRetries, logger.With(slog.String("layer", "postgres"))), pool.Close, nil
}

func openPublisher(cfg config.Config, logger *slog.Logger) (port.Publisher, func(), error) {
	if !cfg.AMQP.Enabled {
		return notify.NewLogPublisher(logger), func() {}, nil
	}
	pub, err := broker.Dial(cfg.AMQP.URL, cfg.AMQP.Exchange)
	if err != nil {
		return nil, nil, err
	}
	return pub, func() {
		if err := pub.Close(); err != nil {
			logger.Warn("broker close failed", slog.Any("error", err))
		}
	}, nil
}
