package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payout-engine/internal/core/domain"
	"payout-engine/internal/core/port"
)

// TestRejectThenOverrideRoundTrip ensures allocate, release and allocate
// again leaves the ledger where the first allocation left it.
func TestRejectThenOverrideRoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.campaign(t, 1_000_000, 1_000)

	sub := f.approve(t, c.ID, "alice", "1", 300_000)
	afterApprove := f.remaining(t, c.ID)
	require.Equal(t, int64(700_000), afterApprove)

	err := f.uc.RejectSubmission(ctx, port.RejectReq{SubmissionID: sub.ID, ActorID: creatorID, Reason: "low_quality"})
	require.NoError(t, err)

	rejected, err := f.store.GetSubmission(ctx, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StateCreatorRejected, rejected.State)
	assert.Equal(t, domain.RejectByCreator, rejected.RejectionCode)
	assert.Equal(t, "Low quality content", rejected.RejectionReason)
	assert.Nil(t, rejected.Payout)
	assert.Equal(t, c.TotalBudget, f.remaining(t, c.ID))
	require.Len(t, f.notifications(port.NotifySubmissionRejected), 1)

	restored, err := f.uc.OverrideApprove(ctx, sub.ID, creatorID)
	require.NoError(t, err)
	assert.Equal(t, domain.StateApproved, restored.State)
	assert.Equal(t, sub.PayoutAmount(), restored.PayoutAmount())
	assert.Empty(t, restored.RejectionCode)
	assert.Equal(t, afterApprove, f.remaining(t, c.ID))
}

// TestRejectSubmissionGuards covers authorization, state and input checks.
func TestRejectSubmissionGuards(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.campaign(t, 1_000_000, 1_000, func(c *domain.Campaign) { c.MinViews = 100 })
	sub := f.approve(t, c.ID, "alice", "1", 10_000)

	err := f.uc.RejectSubmission(ctx, port.RejectReq{SubmissionID: sub.ID, ActorID: "alice", Reason: "OTHER"})
	requireCode(t, err, domain.CodeForbidden)

	err = f.uc.RejectSubmission(ctx, port.RejectReq{SubmissionID: sub.ID, ActorID: creatorID, Reason: "   "})
	requireCode(t, err, domain.CodeInvalidInput)

	err = f.uc.RejectSubmission(ctx, port.RejectReq{SubmissionID: "missing", ActorID: creatorID, Reason: "OTHER"})
	requireCode(t, err, domain.CodeNotFound)

	f.post("2", 10)
	low, err := f.submit(c.ID, "bob", "2")
	requireCode(t, err, domain.CodeInsufficientViews)
	err = f.uc.RejectSubmission(ctx, port.RejectReq{SubmissionID: low.ID, ActorID: creatorID, Reason: "OTHER"})
	requireCode(t, err, domain.CodeInvalidState)

	stored, err := f.store.GetSubmission(ctx, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StateApproved, stored.State)
	assert.Equal(t, int64(990_000), f.remaining(t, c.ID))
}

// TestRejectSubmissionBansAcrossCampaigns ensures a ban applies to every
// campaign of the same creator, current and future.
func TestRejectSubmissionBansAcrossCampaigns(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	first := f.campaign(t, 1_000_000, 1_000)
	sub := f.approve(t, first.ID, "alice", "1", 10_000)

	err := f.uc.RejectSubmission(ctx, port.RejectReq{SubmissionID: sub.ID, ActorID: creatorID, Reason: "bought likes", Ban: true})
	require.NoError(t, err)

	banned, err := f.store.IsBanned(ctx, creatorID, "alice")
	require.NoError(t, err)
	assert.True(t, banned)

	second := f.campaign(t, 1_000_000, 1_000)
	f.post("2", 10_000)
	_, err = f.submit(second.ID, "alice", "2")
	requireCode(t, err, domain.CodeBanned)

	other, err := f.uc.CreateCampaign(ctx, domain.Campaign{CreatorID: "someone-else", TotalBudget: 1_000, CPM: 1_000})
	require.NoError(t, err)
	f.post("3", 1_000)
	_, err = f.submit(other.ID, "alice", "3")
	require.NoError(t, err)
}

// TestRejectRequestedSubmissionLeavesBundle checks a rejected member leaves
// its bundle and the last one out cancels it.
func TestRejectRequestedSubmissionLeavesBundle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.campaign(t, 1_000_000, 1_000)
	a := f.approve(t, c.ID, "alice", "1", 10_000)
	b := f.approve(t, c.ID, "alice", "2", 20_000)

	bundle, err := f.uc.RequestPayment(ctx, c.ID, "alice")
	require.NoError(t, err)

	require.NoError(t, f.uc.RejectSubmission(ctx, port.RejectReq{SubmissionID: a.ID, ActorID: creatorID, Reason: "OTHER"}))
	stored, err := f.store.GetSubmission(ctx, a.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.BundleID)

	got, err := f.store.GetBundle(ctx, bundle.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BundlePending, got.Status)

	require.NoError(t, f.uc.RejectSubmission(ctx, port.RejectReq{SubmissionID: b.ID, ActorID: creatorID, Reason: "OTHER"}))
	got, err = f.store.GetBundle(ctx, bundle.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BundleCancelled, got.Status)
	assert.Equal(t, c.TotalBudget, f.remaining(t, c.ID))

	// With the bundle cancelled, new approvals can be requested again.
	f.approve(t, c.ID, "alice", "3", 5_000)
	_, err = f.uc.RequestPayment(ctx, c.ID, "alice")
	require.NoError(t, err)
}

// TestOverrideApproveGuards covers the refusals of the override path.
func TestOverrideApproveGuards(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.campaign(t, 100_000, 1_000, func(c *domain.Campaign) { c.MinViews = 1_000 })

	f.post("low", 500)
	low, err := f.submit(c.ID, "bob", "low")
	requireCode(t, err, domain.CodeInsufficientViews)

	_, err = f.uc.OverrideApprove(ctx, low.ID, "bob")
	requireCode(t, err, domain.CodeForbidden)

	approved := f.approve(t, c.ID, "alice", "big", 200_000)
	require.Equal(t, int64(100_000), approved.PayoutAmount())

	_, err = f.uc.OverrideApprove(ctx, approved.ID, creatorID)
	requireCode(t, err, domain.CodeInvalidState)

	_, err = f.uc.OverrideApprove(ctx, low.ID, creatorID)
	requireCode(t, err, domain.CodeBudgetExhausted)

	stored, err := f.store.GetSubmission(ctx, low.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StateRejected, stored.State)

	// Releasing budget makes the override possible; it ignores minViews.
	require.NoError(t, f.uc.RejectSubmission(ctx, port.RejectReq{SubmissionID: approved.ID, ActorID: creatorID, Reason: "FAKE_ENGAGEMENT"}))
	restored, err := f.uc.OverrideApprove(ctx, low.ID, creatorID)
	require.NoError(t, err)
	assert.Equal(t, int64(500), restored.PayoutAmount())
	assert.Equal(t, int64(99_500), f.remaining(t, c.ID))
}

// TestOverrideApproveNeedsMeasuredEngagement refuses submissions rejected
// before engagement was read.
func TestOverrideApproveNeedsMeasuredEngagement(t *testing.T) {
	f := newFixture(t)
	c := f.campaign(t, 100_000, 1_000)
	f.set(func(f *fixture) { f.metricsErr = assert.AnError })

	sub, err := f.submit(c.ID, "alice", "1")
	requireCode(t, err, domain.CodeExternalAPI)

	_, err = f.uc.OverrideApprove(context.Background(), sub.ID, creatorID)
	requireCode(t, err, domain.CodeInvalidState)
}
