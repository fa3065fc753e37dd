package usecase

import (
	"context"

	"payout-engine/internal/core/domain"
	"payout-engine/internal/core/port"
)

// GetCampaignStats returns aggregated submission counts and payout sums for
// the campaign. Only its creator may read them.
func (u *PayoutUseCase) GetCampaignStats(ctx context.Context, campaignID, callerID string) (*port.CampaignStats, error) {
	if err := required("campaign_id", campaignID, "caller_id", callerID); err != nil {
		return nil, err
	}
	c, err := u.store.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if err = requireCreator(c, callerID); err != nil {
		return nil, err
	}
	agg, err := u.store.AggregateSubmissions(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	pending, err := u.store.CountBundles(ctx, campaignID, domain.BundlePending)
	if err != nil {
		return nil, err
	}

	stats := &port.CampaignStats{
		CampaignID:      c.ID,
		Status:          c.Status,
		TotalBudget:     c.TotalBudget,
		BudgetRemaining: c.BudgetRemaining,
		RefundDue:       c.RefundDue,
		Allocated:       c.Allocated(),
		ApprovedPayout:  agg[domain.StateApproved].Payout,
		RequestedPayout: agg[domain.StatePaymentRequested].Payout,
		PaidPayout:      agg[domain.StatePaid].Payout,
		ByState:         make(map[domain.SubmissionState]int64, len(domain.AllSubmissionStates)),
		PendingBundles:  pending,
		GeneratedAt:     u.now(),
	}
	for _, st := range domain.AllSubmissionStates {
		n := agg[st].Count
		stats.ByState[st] = n
		stats.Submissions += n
	}
	return stats, nil
}

// GetSubmission returns a submission to its submitter or the campaign creator.
func (u *PayoutUseCase) GetSubmission(ctx context.Context, submissionID, callerID string) (*domain.Submission, error) {
	if err := required("submission_id", submissionID, "caller_id", callerID); err != nil {
		return nil, err
	}
	s, err := u.store.GetSubmission(ctx, submissionID)
	if err != nil {
		return nil, err
	}
	if s.SubmitterID == callerID {
		return &s, nil
	}
	c, err := u.store.GetCampaign(ctx, s.CampaignID)
	if err != nil {
		return nil, err
	}
	if err = requireCreator(c, callerID); err != nil {
		return nil, err
	}
	return &s, nil
}

// ListSubmissions returns all submissions of the campaign to its creator and
// only the caller's own submissions to anyone else.
func (u *PayoutUseCase) ListSubmissions(ctx context.Context, campaignID, callerID string) ([]domain.Submission, error) {
	if err := required("campaign_id", campaignID, "caller_id", callerID); err != nil {
		return nil, err
	}
	c, err := u.store.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	filter := port.SubmissionFilter{CampaignID: campaignID}
	if c.CreatorID != callerID {
		filter.SubmitterID = callerID
	}
	return u.store.ListSubmissions(ctx, filter)
}
