package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payout-engine/internal/core/domain"
	"payout-engine/internal/core/port"
)

// TestReconcilePaysCurrentMembersOnly covers a member rejected out of the
// bundle before the proof arrives: it is neither paid nor counted.
func TestReconcilePaysCurrentMembersOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.set(func(f *fixture) { f.sequence = domain.Int64(42) })
	c := f.campaign(t, 1_000_000, 1_000)
	a := f.approve(t, c.ID, "alice", "1", 10_000)
	b := f.approve(t, c.ID, "alice", "2", 20_000)
	dropped := f.approve(t, c.ID, "alice", "3", 30_000)

	bundle, err := f.uc.RequestPayment(ctx, c.ID, "alice")
	require.NoError(t, err)
	require.Equal(t, int64(60_000), bundle.TotalAmount)

	require.NoError(t, f.uc.RejectSubmission(ctx, port.RejectReq{SubmissionID: dropped.ID, ActorID: creatorID, Reason: "WRONG_CONTENT"}))

	res, err := f.uc.ReconcilePayment(ctx, bundle.ID, creatorID, domain.TransferProof{TxRef: "0xpaid"})
	require.NoError(t, err)
	assert.Equal(t, domain.BundlePaid, res.Bundle.Status)
	assert.Equal(t, int64(30_000), res.Bundle.TotalAmount)
	assert.Equal(t, "0xpaid", res.Bundle.PaymentTxRef)
	require.NotNil(t, res.Bundle.Sequence)
	assert.Equal(t, int64(42), *res.Bundle.Sequence)
	require.Len(t, res.Submissions, 2)

	for _, id := range []string{a.ID, b.ID} {
		s, err := f.store.GetSubmission(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, domain.StatePaid, s.State)
		assert.Equal(t, "0xpaid", s.PaymentTxRef)
		assert.Equal(t, bundle.ID, s.BundleID)
	}
	d, err := f.store.GetSubmission(ctx, dropped.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StateCreatorRejected, d.State)
	assert.Empty(t, d.PaymentTxRef)

	stored, err := f.store.GetBundle(ctx, bundle.ID)
	require.NoError(t, err)
	assert.Equal(t, res.Bundle, stored)

	assert.Equal(t, domain.FeeSplit{Total: 30_000, RequesterNet: 27_000, PlatformFee: 3_000, PlatformKeeps: 3_000}, res.Fees)
	assert.Len(t, f.notifications(port.NotifyPaymentCompleted), 2)

	stats, err := f.uc.GetCampaignStats(ctx, c.ID, creatorID)
	require.NoError(t, err)
	assert.Equal(t, int64(30_000), stats.PaidPayout)
	assert.Equal(t, int64(30_000), stats.Allocated)
}

// TestReconcileRejectsReusedProof ensures one transfer settles one bundle.
func TestReconcileRejectsReusedProof(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.campaign(t, 1_000_000, 1_000)
	f.approve(t, c.ID, "alice", "1", 10_000)
	bobSub := f.approve(t, c.ID, "bob", "2", 20_000)
	aliceBundle, err := f.uc.RequestPayment(ctx, c.ID, "alice")
	require.NoError(t, err)
	bobBundle, err := f.uc.RequestPayment(ctx, c.ID, "bob")
	require.NoError(t, err)

	_, err = f.uc.ReconcilePayment(ctx, aliceBundle.ID, creatorID, domain.TransferProof{TxRef: "0xsame"})
	require.NoError(t, err)

	_, err = f.uc.ReconcilePayment(ctx, bobBundle.ID, creatorID, domain.TransferProof{TxRef: "0xsame"})
	requireCode(t, err, domain.CodeDuplicate)

	stored, err := f.store.GetBundle(ctx, bobBundle.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BundlePending, stored.Status)
	assert.Empty(t, stored.PaymentTxRef)
	s, err := f.store.GetSubmission(ctx, bobSub.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatePaymentRequested, s.State)

	res, err := f.uc.ReconcilePayment(ctx, bobBundle.ID, creatorID, domain.TransferProof{TxRef: "0xbob"})
	require.NoError(t, err)
	assert.Equal(t, domain.BundlePaid, res.Bundle.Status)
}

// TestReconcileReferralSplit records the referrer's share of the platform fee.
func TestReconcileReferralSplit(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.store.SeedReferral(domain.ReferralLink{
		ReferrerID: "ref",
		ReferredID: "alice",
		FeeShare:   decimal.RequireFromString("0.25"),
		Active:     true,
	})
	c := f.campaign(t, 1_000_000, 1_000)
	f.approve(t, c.ID, "alice", "1", 200_000)
	bundle, err := f.uc.RequestPayment(ctx, c.ID, "alice")
	require.NoError(t, err)

	res, err := f.uc.ReconcilePayment(ctx, bundle.ID, creatorID, domain.TransferProof{TxRef: "0xpaid", Sequence: domain.Int64(7)})
	require.NoError(t, err)
	assert.Equal(t, domain.FeeSplit{
		Total:         200_000,
		RequesterNet:  180_000,
		PlatformFee:   20_000,
		PlatformKeeps: 15_000,
		ReferrerShare: 5_000,
		ReferrerID:    "ref",
	}, res.Fees)
	assert.Equal(t, int64(7), *res.Bundle.Sequence)

	earning, ok := f.store.Earnings()[bundle.ID]
	require.True(t, ok)
	assert.Equal(t, int64(5_000), earning.Amount)
	assert.Equal(t, "ref", earning.ReferrerID)
	assert.Equal(t, "alice", earning.ReferredID)
}

// TestReconcileProofFailuresLeaveBundlePending maps verifier failures and
// keeps the bundle open for a new proof.
func TestReconcileProofFailuresLeaveBundlePending(t *testing.T) {
	cases := []struct {
		err  error
		code domain.Code
	}{
		{err: port.ErrTxNotFound, code: domain.CodeTxNotFound},
		{err: port.ErrTxFailed, code: domain.CodeTxFailed},
		{err: errors.New("rpc timeout"), code: domain.CodeTxVerifyError},
	}
	for _, tc := range cases {
		t.Run(string(tc.code), func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()
			c := f.campaign(t, 1_000_000, 1_000)
			sub := f.approve(t, c.ID, "alice", "1", 10_000)
			bundle, err := f.uc.RequestPayment(ctx, c.ID, "alice")
			require.NoError(t, err)

			f.set(func(f *fixture) { f.confirmErr = tc.err })
			_, err = f.uc.ReconcilePayment(ctx, bundle.ID, creatorID, domain.TransferProof{TxRef: "0xbad"})
			requireCode(t, err, tc.code)

			stored, err := f.store.GetBundle(ctx, bundle.ID)
			require.NoError(t, err)
			assert.Equal(t, domain.BundlePending, stored.Status)
			s, err := f.store.GetSubmission(ctx, sub.ID)
			require.NoError(t, err)
			assert.Equal(t, domain.StatePaymentRequested, s.State)

			f.set(func(f *fixture) { f.confirmErr = nil })
			_, err = f.uc.ReconcilePayment(ctx, bundle.ID, creatorID, domain.TransferProof{TxRef: "0xgood"})
			require.NoError(t, err)
		})
	}
}

// TestReconcileGuards covers authorization and bundle state checks.
func TestReconcileGuards(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.campaign(t, 1_000_000, 1_000)
	sub := f.approve(t, c.ID, "alice", "1", 10_000)
	bundle, err := f.uc.RequestPayment(ctx, c.ID, "alice")
	require.NoError(t, err)

	_, err = f.uc.ReconcilePayment(ctx, bundle.ID, "alice", domain.TransferProof{TxRef: "0x1"})
	requireCode(t, err, domain.CodeForbidden)

	_, err = f.uc.ReconcilePayment(ctx, "missing", creatorID, domain.TransferProof{TxRef: "0x1"})
	requireCode(t, err, domain.CodeNotFound)

	_, err = f.uc.ReconcilePayment(ctx, bundle.ID, creatorID, domain.TransferProof{})
	requireCode(t, err, domain.CodeInvalidInput)

	_, err = f.uc.ReconcilePayment(ctx, bundle.ID, creatorID, domain.TransferProof{TxRef: "0x1"})
	require.NoError(t, err)

	_, err = f.uc.ReconcilePayment(ctx, bundle.ID, creatorID, domain.TransferProof{TxRef: "0x2"})
	requireCode(t, err, domain.CodeInvalidState)

	err = f.uc.RejectSubmission(ctx, port.RejectReq{SubmissionID: sub.ID, ActorID: creatorID, Reason: "OTHER"})
	requireCode(t, err, domain.CodeInvalidState)
}

// TestReconcileCancelledBundle refuses a bundle whose members were all
// rejected.
func TestReconcileCancelledBundle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.campaign(t, 1_000_000, 1_000)
	sub := f.approve(t, c.ID, "alice", "1", 10_000)
	bundle, err := f.uc.RequestPayment(ctx, c.ID, "alice")
	require.NoError(t, err)
	require.NoError(t, f.uc.RejectSubmission(ctx, port.RejectReq{SubmissionID: sub.ID, ActorID: creatorID, Reason: "OTHER"}))

	_, err = f.uc.ReconcilePayment(ctx, bundle.ID, creatorID, domain.TransferProof{TxRef: "0x1"})
	requireCode(t, err, domain.CodeInvalidState)
}

// TestReconcileSurvivesBookkeepingFailures ensures notification failures
// never undo a payment.
func TestReconcileSurvivesBookkeepingFailures(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.campaign(t, 1_000_000, 1_000)
	f.approve(t, c.ID, "alice", "1", 10_000)
	bundle, err := f.uc.RequestPayment(ctx, c.ID, "alice")
	require.NoError(t, err)

	f.set(func(f *fixture) { f.notifyErr = errors.New("sink down") })
	res, err := f.uc.ReconcilePayment(ctx, bundle.ID, creatorID, domain.TransferProof{TxRef: "0x1"})
	require.NoError(t, err)
	assert.Equal(t, domain.BundlePaid, res.Bundle.Status)
}
