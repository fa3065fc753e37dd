package usecase

import (
	"context"

	"payout-engine/internal/core/domain"
	"payout-engine/internal/core/port"
	"payout-engine/internal/metrics"
)

// allocate reserves budget for sub inside tx. The raw payout is derived from
// engagement, capped per post and per submitter against the campaign total,
// and finally clamped by the ledger to what remains. It returns the amount
// actually reserved, which is 0 when nothing could be allocated.
func allocate(ctx context.Context, tx port.Ledger, c domain.Campaign, sub domain.Submission, engagement int64) (int64, error) {
	held, err := tx.SumAllocated(ctx, c.ID, sub.SubmitterID)
	if err != nil {
		return 0, err
	}
	amount := domain.CapPayout(domain.RawPayout(engagement, c.CPM), c, held)
	if amount <= 0 {
		return 0, nil
	}
	return tx.TryAllocate(ctx, c.ID, amount)
}

// release returns amount to the campaign budget inside tx.
func release(ctx context.Context, tx port.Ledger, campaignID string, amount int64) error {
	if amount <= 0 {
		return nil
	}
	return tx.Release(ctx, campaignID, amount)
}

func observeAllocated(amount int64) {
	if amount > 0 {
		metrics.BudgetAllocatedTotal.Add(float64(amount))
	}
}

func observeReleased(amount int64) {
	if amount > 0 {
		metrics.BudgetReleasedTotal.Add(float64(amount))
	}
}
