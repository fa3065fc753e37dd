package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payout-engine/internal/core/domain"
	"payout-engine/internal/core/port"
)

// TestRequestPaymentBundlesApproved moves every approved submission of the
// requester into one pending bundle.
func TestRequestPaymentBundlesApproved(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.campaign(t, 1_000_000, 1_000)
	a := f.approve(t, c.ID, "alice", "1", 10_000)
	b := f.approve(t, c.ID, "alice", "2", 15_000)
	other := f.approve(t, c.ID, "bob", "3", 7_000)

	bundle, err := f.uc.RequestPayment(ctx, c.ID, "alice")
	require.NoError(t, err)
	assert.Equal(t, domain.BundlePending, bundle.Status)
	assert.Equal(t, int64(25_000), bundle.TotalAmount)
	assert.Equal(t, "alice", bundle.RequesterID)

	members, err := f.store.ListSubmissions(ctx, port.SubmissionFilter{BundleID: bundle.ID})
	require.NoError(t, err)
	require.Len(t, members, 2)
	for _, m := range members {
		assert.Equal(t, domain.StatePaymentRequested, m.State)
		assert.Contains(t, []string{a.ID, b.ID}, m.ID)
	}

	untouched, err := f.store.GetSubmission(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StateApproved, untouched.State)

	requested := f.notifications(port.NotifyPaymentRequested)
	require.Len(t, requested, 1)
	assert.Equal(t, creatorID, requested[0].UserID)
}

// TestRequestPaymentSecondRequestWhilePending ensures a requester cannot open
// a second bundle and amounts already bundled do not change.
func TestRequestPaymentSecondRequestWhilePending(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.campaign(t, 1_000_000, 1_000)
	f.approve(t, c.ID, "alice", "1", 10_000)

	first, err := f.uc.RequestPayment(ctx, c.ID, "alice")
	require.NoError(t, err)

	late := f.approve(t, c.ID, "alice", "2", 5_000)
	_, err = f.uc.RequestPayment(ctx, c.ID, "alice")
	requireCode(t, err, domain.CodeBundlePending)

	stored, err := f.store.GetBundle(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10_000), stored.TotalAmount)
	lateStored, err := f.store.GetSubmission(ctx, late.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StateApproved, lateStored.State)
}

// TestRequestPaymentBelowThreshold leaves everything as it was when the total
// is under the campaign minimum.
func TestRequestPaymentBelowThreshold(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.campaign(t, 1_000_000, 1_000, func(c *domain.Campaign) { c.MinPayoutThreshold = 100_000 })
	f.approve(t, c.ID, "alice", "1", 10_000)
	f.approve(t, c.ID, "alice", "2", 15_000)
	f.approve(t, c.ID, "alice", "3", 25_000)

	_, err := f.uc.RequestPayment(ctx, c.ID, "alice")
	requireCode(t, err, domain.CodeBelowThreshold)

	n, err := f.store.CountBundles(ctx, c.ID, domain.BundlePending)
	require.NoError(t, err)
	assert.Zero(t, n)

	approved, err := f.store.ListSubmissions(ctx, port.SubmissionFilter{
		CampaignID: c.ID,
		States:     []domain.SubmissionState{domain.StateApproved},
	})
	require.NoError(t, err)
	assert.Len(t, approved, 3)
}

// TestRequestPaymentNoSubmissions fails when nothing is approved.
func TestRequestPaymentNoSubmissions(t *testing.T) {
	f := newFixture(t)
	c := f.campaign(t, 1_000_000, 1_000)

	_, err := f.uc.RequestPayment(context.Background(), c.ID, "alice")
	requireCode(t, err, domain.CodeNoSubmissions)

	_, err = f.uc.RequestPayment(context.Background(), "missing", "alice")
	requireCode(t, err, domain.CodeNotFound)

	_, err = f.uc.RequestPayment(context.Background(), c.ID, "")
	requireCode(t, err, domain.CodeInvalidInput)
}
