package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payout-engine/internal/core/domain"
	"payout-engine/internal/core/port"
)

func seedCampaign(t *testing.T, s *Store, budget int64) domain.Campaign {
	t.Helper()
	c := domain.Campaign{ID: "c1", CreatorID: "creator", TotalBudget: budget, BudgetRemaining: budget, CPM: 1_000, Status: domain.CampaignOpen}
	require.NoError(t, s.InsertCampaign(context.Background(), c))
	return c
}

func TestTryAllocateClampsAndRelease(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	seedCampaign(t, s, 1_000)

	got, err := s.TryAllocate(ctx, "c1", 600)
	require.NoError(t, err)
	assert.Equal(t, int64(600), got)

	got, err = s.TryAllocate(ctx, "c1", 600)
	require.NoError(t, err)
	assert.Equal(t, int64(400), got)

	got, err = s.TryAllocate(ctx, "c1", 1)
	require.NoError(t, err)
	assert.Zero(t, got)

	require.NoError(t, s.Release(ctx, "c1", 5_000))
	c, err := s.GetCampaign(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, int64(1_000), c.BudgetRemaining)

	_, err = s.TryAllocate(ctx, "missing", 1)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestConcurrentTryAllocate(t *testing.T) {
	s := NewStore()
	seedCampaign(t, s, 10_000)

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		total int64
	)
	wg.Add(50)
	for range 50 {
		go func() {
			defer wg.Done()
			got, err := s.TryAllocate(context.Background(), "c1", 333)
			if err != nil {
				return
			}
			mu.Lock()
			total += got
			mu.Unlock()
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(10_000), total)
}

func TestWithinTxRollsBack(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	seedCampaign(t, s, 1_000)

	boom := errors.New("boom")
	err := s.WithinTx(ctx, func(tx port.Ledger) error {
		if _, err := tx.TryAllocate(ctx, "c1", 700); err != nil {
			return err
		}
		if err := tx.InsertSubmission(ctx, domain.Submission{ID: "s1", CampaignID: "c1", PostID: "p1", FeeTxRef: "fee"}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	c, err := s.GetCampaign(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, int64(1_000), c.BudgetRemaining)
	_, err = s.GetSubmission(ctx, "s1")
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	// The unique indexes were rolled back too.
	require.NoError(t, s.InsertSubmission(ctx, domain.Submission{ID: "s2", CampaignID: "c1", PostID: "p1", FeeTxRef: "fee"}))
}

func TestSubmissionUniqueness(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	seedCampaign(t, s, 1_000)

	require.NoError(t, s.InsertSubmission(ctx, domain.Submission{ID: "s1", CampaignID: "c1", PostID: "p1", FeeTxRef: "fee-1"}))

	err := s.InsertSubmission(ctx, domain.Submission{ID: "s2", CampaignID: "c1", PostID: "p1", FeeTxRef: "fee-2"})
	assert.Equal(t, domain.CodeDuplicate, domain.CodeOf(err))

	err = s.InsertSubmission(ctx, domain.Submission{ID: "s3", CampaignID: "c1", PostID: "p2", FeeTxRef: "fee-1"})
	assert.Equal(t, domain.CodeInvalidPayment, domain.CodeOf(err))

	require.NoError(t, s.InsertSubmission(ctx, domain.Submission{ID: "s4", CampaignID: "c2", PostID: "p1", FeeTxRef: "fee-4"}))
}

func TestDeleteStaleSubmission(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, s.InsertSubmission(ctx, domain.Submission{
		ID: "s1", CampaignID: "c1", PostID: "p1", FeeTxRef: "fee-1",
		State: domain.StateReadingViews, UpdatedAt: now,
	}))
	require.NoError(t, s.InsertSubmission(ctx, domain.Submission{
		ID: "s2", CampaignID: "c1", PostID: "p2",
		State: domain.StateApproved, UpdatedAt: now.Add(-time.Hour),
	}))

	ok, err := s.DeleteStaleSubmission(ctx, "s1", now.Add(-time.Minute))
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = s.DeleteStaleSubmission(ctx, "s2", now)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = s.DeleteStaleSubmission(ctx, "s1", now)
	require.NoError(t, err)
	assert.True(t, ok)

	found, err := s.FindSubmissionByPost(ctx, "c1", "p1")
	require.NoError(t, err)
	assert.Nil(t, found)
	require.NoError(t, s.InsertSubmission(ctx, domain.Submission{ID: "s3", CampaignID: "c1", PostID: "p1", FeeTxRef: "fee-1"}))
}

func TestOnePendingBundlePerRequester(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	b := domain.PaymentBundle{ID: "b1", CampaignID: "c1", RequesterID: "alice", Status: domain.BundlePending}
	require.NoError(t, s.InsertBundle(ctx, b))

	err := s.InsertBundle(ctx, domain.PaymentBundle{ID: "b2", CampaignID: "c1", RequesterID: "alice", Status: domain.BundlePending})
	assert.Equal(t, domain.CodeBundlePending, domain.CodeOf(err))

	b.Status = domain.BundlePaid
	require.NoError(t, s.UpdateBundle(ctx, b))
	require.NoError(t, s.InsertBundle(ctx, domain.PaymentBundle{ID: "b2", CampaignID: "c1", RequesterID: "alice", Status: domain.BundlePending}))

	pending, err := s.FindPendingBundle(ctx, "c1", "alice")
	require.NoError(t, err)
	require.NotNil(t, pending)
	assert.Equal(t, "b2", pending.ID)

	n, err := s.CountBundles(ctx, "c1", domain.BundlePaid)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestPaidTransferSettlesOneBundle(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	require.NoError(t, s.InsertBundle(ctx, domain.PaymentBundle{ID: "b1", CampaignID: "c1", RequesterID: "alice", Status: domain.BundlePending}))
	require.NoError(t, s.InsertBundle(ctx, domain.PaymentBundle{ID: "b2", CampaignID: "c1", RequesterID: "bob", Status: domain.BundlePending}))

	require.NoError(t, s.UpdateBundle(ctx, domain.PaymentBundle{ID: "b1", CampaignID: "c1", RequesterID: "alice", Status: domain.BundlePaid, PaymentTxRef: "0xsame"}))
	err := s.UpdateBundle(ctx, domain.PaymentBundle{ID: "b2", CampaignID: "c1", RequesterID: "bob", Status: domain.BundlePaid, PaymentTxRef: "0xsame"})
	assert.Equal(t, domain.CodeDuplicate, domain.CodeOf(err))

	b2, err := s.GetBundle(ctx, "b2")
	require.NoError(t, err)
	assert.Equal(t, domain.BundlePending, b2.Status)

	require.NoError(t, s.UpdateBundle(ctx, domain.PaymentBundle{ID: "b2", CampaignID: "c1", RequesterID: "bob", Status: domain.BundlePaid, PaymentTxRef: "0xother"}))
}

func TestReleaseAfterClose(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	seedCampaign(t, s, 1_000)

	got, err := s.TryAllocate(ctx, "c1", 300)
	require.NoError(t, err)
	require.Equal(t, int64(300), got)

	closedAt := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	require.NoError(t, s.UpdateCampaignStatus(ctx, "c1", domain.CampaignCompleted, "", closedAt))
	require.NoError(t, s.Release(ctx, "c1", 200))
	require.NoError(t, s.Release(ctx, "c1", 500))

	c, err := s.GetCampaign(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, int64(700), c.BudgetRemaining)
	assert.Equal(t, int64(300), c.RefundDue)
	assert.Zero(t, c.Allocated())
	assert.Equal(t, closedAt, c.UpdatedAt)
}

func TestReadsHonourContext(t *testing.T) {
	s := NewStore()
	seedCampaign(t, s, 1_000)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.GetCampaign(ctx, "c1")
	assert.ErrorIs(t, err, context.Canceled)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for range 100 {
			_, _ = s.TryAllocate(context.Background(), "c1", 1)
		}
	}()
	go func() {
		defer wg.Done()
		for range 100 {
			c, err := s.GetCampaign(context.Background(), "c1")
			if assert.NoError(t, err) {
				assert.GreaterOrEqual(t, c.BudgetRemaining, int64(900))
			}
		}
	}()
	wg.Wait()

	c, err := s.GetCampaign(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, int64(900), c.BudgetRemaining)
}

func TestOutbox(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, s.AppendOutbox(ctx, port.OutboxMessage{ID: "m1", Topic: "t", Payload: []byte("1"), CreatedAt: now}))
	require.NoError(t, s.AppendOutbox(ctx, port.OutboxMessage{ID: "m1", Topic: "t", Payload: []byte("dup"), CreatedAt: now}))
	require.NoError(t, s.AppendOutbox(ctx, port.OutboxMessage{ID: "m2", Topic: "t", Payload: []byte("2"), CreatedAt: now}))

	pending, err := s.ListPendingOutbox(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, []byte("1"), pending[0].Payload)

	require.NoError(t, s.MarkOutboxPublished(ctx, "m1", now))
	require.NoError(t, s.AppendOutbox(ctx, port.OutboxMessage{ID: "m1", Topic: "t", Payload: []byte("again"), CreatedAt: now}))

	pending, err = s.ListPendingOutbox(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "m2", pending[0].ID)
}
