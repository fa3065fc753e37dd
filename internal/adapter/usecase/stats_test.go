package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payout-engine/internal/core/domain"
)

// TestGetCampaignStats aggregates counts and sums per state.
func TestGetCampaignStats(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.campaign(t, 1_000_000, 1_000, func(c *domain.Campaign) { c.MinViews = 100 })
	f.approve(t, c.ID, "alice", "1", 10_000)
	f.approve(t, c.ID, "alice", "2", 20_000)
	f.approve(t, c.ID, "bob", "3", 5_000)
	f.post("4", 10)
	_, err := f.submit(c.ID, "carol", "4")
	requireCode(t, err, domain.CodeInsufficientViews)
	_, err = f.uc.RequestPayment(ctx, c.ID, "alice")
	require.NoError(t, err)

	stats, err := f.uc.GetCampaignStats(ctx, c.ID, creatorID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.Submissions)
	assert.Equal(t, int64(1), stats.ByState[domain.StateApproved])
	assert.Equal(t, int64(2), stats.ByState[domain.StatePaymentRequested])
	assert.Equal(t, int64(1), stats.ByState[domain.StateRejected])
	assert.Equal(t, int64(0), stats.ByState[domain.StatePaid])
	assert.Len(t, stats.ByState, len(domain.AllSubmissionStates))
	assert.Equal(t, int64(5_000), stats.ApprovedPayout)
	assert.Equal(t, int64(30_000), stats.RequestedPayout)
	assert.Equal(t, int64(35_000), stats.Allocated)
	assert.Equal(t, int64(965_000), stats.BudgetRemaining)
	assert.Equal(t, int64(1), stats.PendingBundles)
	assert.Equal(t, f.clock.Now(), stats.GeneratedAt)

	_, err = f.uc.GetCampaignStats(ctx, c.ID, "alice")
	requireCode(t, err, domain.CodeForbidden)
}

// TestSubmissionVisibility lets submitters see their own rows and creators see
// everything in their campaign.
func TestSubmissionVisibility(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.campaign(t, 1_000_000, 1_000)
	a := f.approve(t, c.ID, "alice", "1", 10_000)
	f.approve(t, c.ID, "bob", "2", 10_000)

	got, err := f.uc.GetSubmission(ctx, a.ID, "alice")
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)

	_, err = f.uc.GetSubmission(ctx, a.ID, creatorID)
	require.NoError(t, err)

	_, err = f.uc.GetSubmission(ctx, a.ID, "bob")
	requireCode(t, err, domain.CodeForbidden)

	all, err := f.uc.ListSubmissions(ctx, c.ID, creatorID)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	own, err := f.uc.ListSubmissions(ctx, c.ID, "bob")
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, "bob", own[0].SubmitterID)
}
