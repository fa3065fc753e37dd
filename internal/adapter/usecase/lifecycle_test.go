package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payout-engine/internal/core/domain"
	"payout-engine/internal/core/port"
)

// TestFinishCampaignReleasesUnbundled rejects approved submissions and gives
// their payout back before the campaign closes.
func TestFinishCampaignReleasesUnbundled(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.campaign(t, 50_000, 1_000)
	sub := f.approve(t, c.ID, "alice", "1", 40_000)
	require.Equal(t, int64(10_000), f.remaining(t, c.ID))

	res, err := f.uc.FinishCampaign(ctx, c.ID, creatorID, "")
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignCompleted, res.Campaign.Status)
	assert.Equal(t, 1, res.Released)
	assert.Equal(t, int64(40_000), res.ReleasedTotal)
	assert.Equal(t, int64(50_000), res.RefundAmount)
	assert.Equal(t, int64(50_000), f.remaining(t, c.ID))

	stored, err := f.store.GetSubmission(ctx, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StateRejected, stored.State)
	assert.Equal(t, domain.RejectCampaignFinished, stored.RejectionCode)

	assert.Len(t, f.notifications(port.NotifyCampaignFinished), 1)
	assert.Len(t, f.notifications(port.NotifySubmissionRejected), 1)

	_, err = f.uc.FinishCampaign(ctx, c.ID, creatorID, "")
	requireCode(t, err, domain.CodeClosed)

	_, err = f.uc.OverrideApprove(ctx, sub.ID, creatorID)
	requireCode(t, err, domain.CodeClosed)
}

// TestRejectAfterFinishRecordsRefundDue keeps the finished ledger closed and
// owes the released payout back to the creator.
func TestRejectAfterFinishRecordsRefundDue(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.campaign(t, 1_000_000, 1_000)
	sub := f.approve(t, c.ID, "alice", "1", 40_000)
	bundle, err := f.uc.RequestPayment(ctx, c.ID, "alice")
	require.NoError(t, err)

	res, err := f.uc.FinishCampaign(ctx, c.ID, creatorID, "")
	require.NoError(t, err)
	assert.Equal(t, int64(960_000), res.RefundAmount)

	f.clock.Advance(time.Hour)
	require.NoError(t, f.uc.RejectSubmission(ctx, port.RejectReq{SubmissionID: sub.ID, ActorID: creatorID, Reason: "WRONG_CONTENT"}))

	stored, err := f.store.GetCampaign(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignCompleted, stored.Status)
	assert.Equal(t, int64(960_000), stored.BudgetRemaining)
	assert.Equal(t, int64(40_000), stored.RefundDue)
	assert.Equal(t, res.Campaign.UpdatedAt, stored.UpdatedAt)

	b, err := f.store.GetBundle(ctx, bundle.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BundleCancelled, b.Status)

	stats, err := f.uc.GetCampaignStats(ctx, c.ID, creatorID)
	require.NoError(t, err)
	assert.Equal(t, int64(40_000), stats.RefundDue)
	assert.Zero(t, stats.Allocated)

	finished := f.notifications(port.NotifyCampaignFinished)
	require.Len(t, finished, 2)
	assert.Equal(t, "Refund due", finished[1].Title)
	assert.Equal(t, creatorID, finished[1].UserID)

	_, err = f.uc.FinishCampaign(ctx, c.ID, creatorID, "")
	requireCode(t, err, domain.CodeClosed)
}

// TestFinishCampaignKeepsRequestedReconcilable leaves bundled submissions
// alone so they can still be paid after close.
func TestFinishCampaignKeepsRequestedReconcilable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.campaign(t, 1_000_000, 1_000)
	f.approve(t, c.ID, "alice", "1", 10_000)
	bundle, err := f.uc.RequestPayment(ctx, c.ID, "alice")
	require.NoError(t, err)
	f.approve(t, c.ID, "bob", "2", 5_000)

	res, err := f.uc.FinishCampaign(ctx, c.ID, creatorID, "")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Released)
	assert.Equal(t, int64(990_000), res.RefundAmount)

	paid, err := f.uc.ReconcilePayment(ctx, bundle.ID, creatorID, domain.TransferProof{TxRef: "0xpaid"})
	require.NoError(t, err)
	assert.Equal(t, int64(10_000), paid.Bundle.TotalAmount)
}

// TestFinishCampaignRefundProof stores an existing refund proof and refuses an
// unknown one.
func TestFinishCampaignRefundProof(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.campaign(t, 1_000_000, 1_000)

	f.set(func(f *fixture) { f.confirmErr = port.ErrTxNotFound })
	_, err := f.uc.FinishCampaign(ctx, c.ID, creatorID, "0xrefund")
	requireCode(t, err, domain.CodeTxNotFound)
	assert.Equal(t, domain.CampaignOpen, f.campaignStatus(t, c.ID))

	f.set(func(f *fixture) { f.confirmErr = nil })
	res, err := f.uc.FinishCampaign(ctx, c.ID, creatorID, "0xrefund")
	require.NoError(t, err)
	assert.Equal(t, "0xrefund", res.Campaign.RefundTxRef)
}

// TestFinishCampaignForbidden only lets the creator close a campaign.
func TestFinishCampaignForbidden(t *testing.T) {
	f := newFixture(t)
	c := f.campaign(t, 1_000_000, 1_000)

	_, err := f.uc.FinishCampaign(context.Background(), c.ID, "alice", "")
	requireCode(t, err, domain.CodeForbidden)
	assert.Equal(t, domain.CampaignOpen, f.campaignStatus(t, c.ID))
}

// TestPauseResume toggles intake.
func TestPauseResume(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.campaign(t, 1_000_000, 1_000)
	f.post("1", 10_000)

	requireCode(t, f.uc.PauseCampaign(ctx, c.ID, "alice"), domain.CodeForbidden)
	f.clock.Advance(time.Minute)
	require.NoError(t, f.uc.PauseCampaign(ctx, c.ID, creatorID))
	paused, err := f.store.GetCampaign(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CampaignPaused, paused.Status)
	assert.Equal(t, f.clock.Now(), paused.UpdatedAt)
	requireCode(t, f.uc.PauseCampaign(ctx, c.ID, creatorID), domain.CodeInvalidState)

	_, err = f.submit(c.ID, "alice", "1")
	requireCode(t, err, domain.CodeClosed)

	require.NoError(t, f.uc.ResumeCampaign(ctx, c.ID, creatorID))
	_, err = f.submit(c.ID, "alice", "1")
	require.NoError(t, err)

	// A paused campaign can still be finished.
	require.NoError(t, f.uc.PauseCampaign(ctx, c.ID, creatorID))
	_, err = f.uc.FinishCampaign(ctx, c.ID, creatorID, "")
	require.NoError(t, err)
	requireCode(t, f.uc.ResumeCampaign(ctx, c.ID, creatorID), domain.CodeClosed)
}

// TestCompleteExpiredCampaigns finishes only campaigns past their deadline.
func TestCompleteExpiredCampaigns(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	soon := f.clock.Now().Add(time.Hour)
	later := f.clock.Now().Add(48 * time.Hour)
	expiring := f.campaign(t, 1_000_000, 1_000, func(c *domain.Campaign) { c.Deadline = &soon })
	running := f.campaign(t, 1_000_000, 1_000, func(c *domain.Campaign) { c.Deadline = &later })
	open := f.campaign(t, 1_000_000, 1_000)
	f.approve(t, expiring.ID, "alice", "1", 10_000)

	f.clock.Advance(2 * time.Hour)
	done, err := f.uc.CompleteExpiredCampaigns(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, done)

	assert.Equal(t, domain.CampaignCompleted, f.campaignStatus(t, expiring.ID))
	assert.Equal(t, domain.CampaignOpen, f.campaignStatus(t, running.ID))
	assert.Equal(t, domain.CampaignOpen, f.campaignStatus(t, open.ID))
	assert.Equal(t, expiring.TotalBudget, f.remaining(t, expiring.ID))

	done, err = f.uc.CompleteExpiredCampaigns(ctx, 10)
	require.NoError(t, err)
	assert.Zero(t, done)
}

func (f *fixture) campaignStatus(t *testing.T, campaignID string) domain.CampaignStatus {
	t.Helper()
	c, err := f.store.GetCampaign(context.Background(), campaignID)
	require.NoError(t, err)
	return c.Status
}
