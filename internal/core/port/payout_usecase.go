package port

import (
	"context"
	"time"

	"payout-engine/internal/core/domain"
)

// PayoutUseCase defines the business operations exposed by the payout
// engine. This interface represents the primary port into the application
// domain. Every error it returns is either a *domain.Error with a stable code
// or an internal failure.
type PayoutUseCase interface {
	// SubmitEngagement runs the intake pipeline for one post. Once the fee
	// proof is accepted a submission row exists; failures after that point
	// return the updated row together with the error.
	SubmitEngagement(ctx context.Context, req SubmitEngagementReq) (*domain.Submission, error)

	// RejectSubmission lets the campaign creator reject an approved or
	// payment-requested submission, releasing its payout back to the budget
	// and optionally banning the submitter.
	RejectSubmission(ctx context.Context, req RejectReq) error

	// OverrideApprove promotes a rejected submission using the engagement
	// already measured, subject to the same budget clamp as intake.
	OverrideApprove(ctx context.Context, submissionID, actorID string) (*domain.Submission, error)

	// RequestPayment bundles all of the requester's approved submissions.
	RequestPayment(ctx context.Context, campaignID, requesterID string) (*domain.PaymentBundle, error)

	// ReconcilePayment marks a bundle and its current members paid once the
	// transfer proof is confirmed on the external ledger.
	ReconcilePayment(ctx context.Context, bundleID, actorID string, proof domain.TransferProof) (*ReconcileResult, error)

	// FinishCampaign closes a campaign and releases unbundled approvals.
	FinishCampaign(ctx context.Context, campaignID, actorID, refundTxRef string) (*FinishResult, error)

	// PauseCampaign and ResumeCampaign toggle intake between OPEN and PAUSED.
	PauseCampaign(ctx context.Context, campaignID, actorID string) error
	ResumeCampaign(ctx context.Context, campaignID, actorID string) error

	// CreateCampaign registers a campaign with its full budget remaining.
	CreateCampaign(ctx context.Context, c domain.Campaign) (*domain.Campaign, error)

	// GetCampaignStats returns aggregate counts and sums; creator only.
	GetCampaignStats(ctx context.Context, campaignID, callerID string) (*CampaignStats, error)

	// GetSubmission is visible to the submitter and the campaign creator.
	GetSubmission(ctx context.Context, submissionID, callerID string) (*domain.Submission, error)

	// ListSubmissions returns every submission of the campaign to its
	// creator and only the caller's own submissions to anyone else.
	ListSubmissions(ctx context.Context, campaignID, callerID string) ([]domain.Submission, error)
}

// SubmitEngagementReq carries the inputs of one intake call.
type SubmitEngagementReq struct {
	CampaignID  string
	SubmitterID string
	PostURL     string
	FeeTxRef    string
}

// RejectReq carries a creator rejection.
type RejectReq struct {
	SubmissionID string
	ActorID      string
	Reason       string
	Ban          bool
}

// ReconcileResult reports what a reconciliation paid.
type ReconcileResult struct {
	Bundle      domain.PaymentBundle
	Submissions []domain.Submission
	Fees        domain.FeeSplit
}

// FinishResult reports the effect of closing a campaign.
type FinishResult struct {
	Campaign      domain.Campaign
	Released      int
	ReleasedTotal int64
	RefundAmount  int64
}

// CampaignStats contains aggregated submission counts and payout sums for a
// campaign. Amounts are integer units of the campaign token.
type CampaignStats struct {
	CampaignID      string
	Status          domain.CampaignStatus
	TotalBudget     int64
	BudgetRemaining int64
	RefundDue       int64
	Allocated       int64
	ApprovedPayout  int64
	RequestedPayout int64
	PaidPayout      int64
	Submissions     int64
	ByState         map[domain.SubmissionState]int64
	PendingBundles  int64
	GeneratedAt     time.Time
}
