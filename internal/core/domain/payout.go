package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

var (
	thousand    = decimal.NewFromInt(1000)
	bpsDivisor  = decimal.NewFromInt(10000)
	maxInt64Dec = decimal.NewFromInt(math.MaxInt64)
)

// RawPayout returns floor(engagement / 1000 * cpm). The product is computed
// with arbitrary precision and saturates at MaxInt64.
func RawPayout(engagement, cpm int64) int64 {
	if engagement <= 0 || cpm <= 0 {
		return 0
	}
	v := decimal.NewFromInt(engagement).Mul(decimal.NewFromInt(cpm)).Div(thousand).Floor()
	if v.GreaterThan(maxInt64Dec) {
		return math.MaxInt64
	}
	return v.IntPart()
}

// PercentOf returns floor(total * percent / 100).
func PercentOf(total, percent int64) int64 {
	return decimal.NewFromInt(total).Mul(decimal.NewFromInt(percent)).Div(decimal.NewFromInt(100)).Floor().IntPart()
}

// CapPayout applies the per-post and per-user ceilings to a raw payout. Both
// ceilings are a share of the campaign's total budget, never of what remains.
// submitterAllocated is what the submitter already holds in the campaign
// across approved, requested and paid submissions. The overall remaining
// budget is not considered here; the ledger clamps to it on allocation.
func CapPayout(raw int64, c Campaign, submitterAllocated int64) int64 {
	amount := raw
	if c.MaxBudgetPerPostPercent > 0 {
		amount = min(amount, PercentOf(c.TotalBudget, c.MaxBudgetPerPostPercent))
	}
	if c.MaxBudgetPerUserPercent > 0 {
		room := PercentOf(c.TotalBudget, c.MaxBudgetPerUserPercent) - submitterAllocated
		amount = min(amount, max(room, 0))
	}
	return max(amount, 0)
}

// SplitFees computes the platform fee on a bundle total and, if link is an
// active referral, the referrer's share of that fee.
func SplitFees(total, feeBps int64, link *ReferralLink) FeeSplit {
	fee := decimal.NewFromInt(total).Mul(decimal.NewFromInt(feeBps)).Div(bpsDivisor).Floor().IntPart()
	split := FeeSplit{
		Total:         total,
		PlatformFee:   fee,
		PlatformKeeps: fee,
		RequesterNet:  total - fee,
	}
	if link == nil || !link.Active || link.FeeShare.LessThanOrEqual(decimal.Zero) {
		return split
	}
	share := decimal.NewFromInt(fee).Mul(link.FeeShare).Floor().IntPart()
	share = min(max(share, 0), fee)
	split.ReferrerShare = share
	split.PlatformKeeps = fee - share
	split.ReferrerID = link.ReferrerID
	return split
}
