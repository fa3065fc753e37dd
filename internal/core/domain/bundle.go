package domain

import "time"

// BundleStatus is the status of a payment bundle.
type BundleStatus string

const (
	BundlePending   BundleStatus = "PENDING"
	BundlePaid      BundleStatus = "PAID"
	BundleCancelled BundleStatus = "CANCELLED"
)

// PaymentBundle aggregates one requester's approved submissions into a single
// payable unit. TotalAmount is the sum at creation; the reconciler always
// recomputes from the current members.
type PaymentBundle struct {
	ID           string
	CampaignID   string
	RequesterID  string
	TotalAmount  int64
	Status       BundleStatus
	PaymentTxRef string
	Sequence     *int64
	CreatedAt    time.Time
	PaidAt       *time.Time
}

// TransferProof references an externally executed transfer.
type TransferProof struct {
	TxRef    string
	Sequence *int64
}
