package port

import (
	"context"
	"time"

	"payout-engine/internal/core/domain"
)

// SubmissionFilter narrows ListSubmissions. Zero fields match everything.
type SubmissionFilter struct {
	CampaignID  string
	SubmitterID string
	BundleID    string
	States      []domain.SubmissionState
}

// StateAggregate is the count and payout sum of submissions in one state.
type StateAggregate struct {
	Count  int64
	Payout int64
}

// Ledger is the set of reads and writes the engine performs against durable
// state. Inside LedgerStore.WithinTx every call joins the same serializable
// unit of work; outside it each call commits on its own.
type Ledger interface {
	InsertCampaign(ctx context.Context, c domain.Campaign) error
	// GetCampaign returns domain.ErrNotFound-coded errors for unknown ids.
	GetCampaign(ctx context.Context, id string) (domain.Campaign, error)
	UpdateCampaignStatus(ctx context.Context, id string, status domain.CampaignStatus, refundTxRef string, at time.Time) error
	ListCampaignsPastDeadline(ctx context.Context, now time.Time, limit int) ([]domain.Campaign, error)

	// TryAllocate decrements the remaining budget by min(amount, remaining)
	// as one conditional update and returns the amount actually reserved.
	// It returns 0, never an error, when the budget is exhausted.
	TryAllocate(ctx context.Context, campaignID string, amount int64) (int64, error)
	// Release returns amount to the remaining budget, capped at the total.
	// Once the campaign is closed the amount is added to its refund due
	// instead, so a finished ledger never grows again.
	Release(ctx context.Context, campaignID string, amount int64) error

	IsBanned(ctx context.Context, creatorID, submitterID string) (bool, error)
	AddBan(ctx context.Context, ban domain.Ban) error

	// InsertSubmission fails with a DUPLICATE error when the (campaign, post)
	// pair already exists and INVALID_PAYMENT when the fee proof was used.
	InsertSubmission(ctx context.Context, s domain.Submission) error
	UpdateSubmission(ctx context.Context, s domain.Submission) error
	GetSubmission(ctx context.Context, id string) (domain.Submission, error)
	// FindSubmissionByPost returns nil when the pair has no submission.
	FindSubmissionByPost(ctx context.Context, campaignID, postID string) (*domain.Submission, error)
	// DeleteStaleSubmission deletes id only if it is still in an
	// intermediate state and was last updated at or before updatedBefore.
	DeleteStaleSubmission(ctx context.Context, id string, updatedBefore time.Time) (bool, error)
	ListSubmissions(ctx context.Context, filter SubmissionFilter) ([]domain.Submission, error)
	// SumAllocated sums payouts the submitter holds in approved, requested
	// and paid submissions of the campaign.
	SumAllocated(ctx context.Context, campaignID, submitterID string) (int64, error)
	AggregateSubmissions(ctx context.Context, campaignID string) (map[domain.SubmissionState]StateAggregate, error)

	InsertBundle(ctx context.Context, b domain.PaymentBundle) error
	// UpdateBundle fails with a DUPLICATE error when b is marked paid with a
	// transfer reference that already settled another bundle.
	UpdateBundle(ctx context.Context, b domain.PaymentBundle) error
	GetBundle(ctx context.Context, id string) (domain.PaymentBundle, error)
	// FindPendingBundle returns nil when the requester has no open bundle.
	FindPendingBundle(ctx context.Context, campaignID, requesterID string) (*domain.PaymentBundle, error)
	CountBundles(ctx context.Context, campaignID string, status domain.BundleStatus) (int64, error)
}

// LedgerStore is the outbound port for the ledger. Implementations must make
// WithinTx serializable with respect to concurrent callers, including callers
// in other processes.
type LedgerStore interface {
	Ledger
	WithinTx(ctx context.Context, fn func(tx Ledger) error) error
}

// ReferralStore reads referral links and records referral earnings.
type ReferralStore interface {
	// ActiveReferral returns nil when the user was not referred.
	ActiveReferral(ctx context.Context, userID string) (*domain.ReferralLink, error)
	// RecordReferralEarning is idempotent per bundle.
	RecordReferralEarning(ctx context.Context, e domain.ReferralEarning) error
}

// Clock abstracts time for tests.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall clock in UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }
