package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReferralLink is owned by the referral program; the engine only reads it.
// FeeShare is the fraction of the platform fee redirected to the referrer.
type ReferralLink struct {
	ReferrerID string
	ReferredID string
	FeeShare   decimal.Decimal
	Active     bool
}

// ReferralEarning records the referrer's share of one paid bundle.
type ReferralEarning struct {
	BundleID   string
	CampaignID string
	ReferrerID string
	ReferredID string
	Amount     int64
	CreatedAt  time.Time
}

// FeeSplit is the three-way split the external transfer was built to perform.
type FeeSplit struct {
	Total         int64  `json:"total"`
	RequesterNet  int64  `json:"requester_net"`
	PlatformFee   int64  `json:"platform_fee"`
	PlatformKeeps int64  `json:"platform_keeps"`
	ReferrerShare int64  `json:"referrer_share"`
	ReferrerID    string `json:"referrer_id,omitempty"`
}
