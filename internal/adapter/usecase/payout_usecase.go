package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"payout-engine/internal/core/domain"
	"payout-engine/internal/core/port"
	"payout-engine/internal/metrics"
)

// Config holds the fee constants and timing knobs of the engine. They are
// passed in at construction so tests and deployments can vary them.
type Config struct {
	// AntiSpamFee is the exact amount a submitter pays to SystemAddress
	// with every submission.
	AntiSpamFee   int64
	SystemAddress string
	// PlatformFeeBps is the platform's cut of a bundle in basis points.
	PlatformFeeBps int64
	// VerifierTimeout bounds every external verifier call.
	VerifierTimeout time.Duration
	// StuckLease is how long an intermediate submission is protected from
	// being reclaimed by a retry. Zero reclaims immediately.
	StuckLease time.Duration
	// PublicURL prefixes links placed in notifications.
	PublicURL string
}

// DefaultConfig mirrors the production defaults.
func DefaultConfig() Config {
	return Config{
		AntiSpamFee:     100_000_000,
		PlatformFeeBps:  1000,
		VerifierTimeout: 15 * time.Second,
		StuckLease:      2 * time.Minute,
	}
}

// Deps groups the collaborators of PayoutUseCase.
type Deps struct {
	Store     port.LedgerStore
	Referrals port.ReferralStore
	Identity  port.IdentityVerifier
	Metrics   port.MetricsVerifier
	Content   port.ContentVerifier
	Payments  port.PaymentVerifier
	Notifier  port.Notifier
	Clock     port.Clock
	Logger    *slog.Logger
}

// PayoutUseCase provides business logic for engagement intake, budget
// allocation, payment bundling and reconciliation. It orchestrates the ledger
// store and external verifiers to implement port.PayoutUseCase.
type PayoutUseCase struct {
	store     port.LedgerStore
	referrals port.ReferralStore
	identity  port.IdentityVerifier
	metrics   port.MetricsVerifier
	content   port.ContentVerifier
	payments  port.PaymentVerifier
	notifier  port.Notifier
	clock     port.Clock
	logger    *slog.Logger
	cfg       Config
}

var _ port.PayoutUseCase = (*PayoutUseCase)(nil)

// NewPayoutUseCase creates a new usecase from its collaborators. A nil clock
// falls back to the system clock and a nil logger to slog.Default.
func NewPayoutUseCase(deps Deps, cfg Config) *PayoutUseCase {
	u := &PayoutUseCase{
		store:     deps.Store,
		referrals: deps.Referrals,
		identity:  deps.Identity,
		metrics:   deps.Metrics,
		content:   deps.Content,
		payments:  deps.Payments,
		notifier:  deps.Notifier,
		clock:     deps.Clock,
		logger:    deps.Logger,
		cfg:       cfg,
	}
	if u.clock == nil {
		u.clock = port.SystemClock{}
	}
	if u.logger == nil {
		u.logger = slog.Default()
	}
	if u.cfg.VerifierTimeout <= 0 {
		u.cfg.VerifierTimeout = DefaultConfig().VerifierTimeout
	}
	return u
}

func (u *PayoutUseCase) now() time.Time {
	return u.clock.Now().UTC()
}

// callVerifier runs fn under the verifier timeout and records its latency.
func (u *PayoutUseCase) callVerifier(ctx context.Context, name string, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, u.cfg.VerifierTimeout)
	defer cancel()

	start := time.Now()
	err := fn(ctx)
	result := "ok"
	if err != nil {
		result = "error"
	}
	metrics.VerifierDuration.WithLabelValues(name, result).Observe(time.Since(start).Seconds())
	return err
}

// notify delivers n and swallows failures; notifications never affect the
// outcome of the operation that produced them.
func (u *PayoutUseCase) notify(ctx context.Context, n port.Notification) {
	if u.notifier == nil || n.UserID == "" {
		return
	}
	if err := u.notifier.Notify(ctx, n); err != nil {
		u.logger.Warn("notification failed",
			slog.String("user_id", n.UserID),
			slog.String("type", n.Type),
			slog.Any("error", err))
	}
}

func (u *PayoutUseCase) link(format string, args ...any) string {
	return u.cfg.PublicURL + fmt.Sprintf(format, args...)
}

// requireCreator fails with FORBIDDEN unless actorID created the campaign.
func requireCreator(c domain.Campaign, actorID string) error {
	if actorID == "" || c.CreatorID != actorID {
		return domain.Errorf(domain.CodeForbidden, "only the campaign creator may do this")
	}
	return nil
}

func required(fields ...string) error {
	for i := 0; i+1 < len(fields); i += 2 {
		if fields[i+1] == "" {
			return domain.Errorf(domain.CodeInvalidInput, "%s is required", fields[i])
		}
	}
	return nil
}

func newID() string {
	return uuid.NewString()
}

// txProofError maps payment verifier failures on transfer proofs.
func txProofError(txRef string, err error) error {
	switch {
	case errors.Is(err, port.ErrTxNotFound):
		return domain.Errorf(domain.CodeTxNotFound, "transaction %s not found", txRef)
	case errors.Is(err, port.ErrTxFailed):
		return domain.Errorf(domain.CodeTxFailed, "transaction %s failed on chain", txRef)
	default:
		return domain.Errorf(domain.CodeTxVerifyError, "could not verify transaction %s: %v", txRef, err)
	}
}
