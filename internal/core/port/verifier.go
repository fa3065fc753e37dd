package port

import (
	"context"
	"errors"

	"payout-engine/internal/core/domain"
)

var (
	ErrIdentityNotLinked = errors.New("no platform account linked")
	ErrCredentialExpired = errors.New("platform credential expired")

	ErrTxNotFound = errors.New("transaction not found")
	ErrTxFailed   = errors.New("transaction failed")
	ErrTxMismatch = errors.New("transaction does not match expected transfer")
)

// RemoteError is implemented by transport errors that carry the
// collaborator's own error text.
type RemoteError interface {
	error
	RemoteMessage() string
}

// LinkedAccount is the submitter's verified external platform identity.
type LinkedAccount struct {
	PlatformUserID string
	Credential     string
}

// IdentityVerifier resolves the platform account linked to a user.
type IdentityVerifier interface {
	// LinkedAccount returns ErrIdentityNotLinked or ErrCredentialExpired.
	LinkedAccount(ctx context.Context, userID string) (LinkedAccount, error)
}

// Media describes one attachment of a post.
type Media struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

// PostMetrics is what the metrics verifier reports about a post.
type PostMetrics struct {
	Engagement int64
	AuthorID   string
	Text       string
	Media      []Media
}

// MetricsVerifier reads engagement and ownership data for a post. Error
// messages are surfaced verbatim in rejection reasons.
type MetricsVerifier interface {
	FetchPost(ctx context.Context, ref domain.PostRef, credential string) (PostMetrics, error)
}

// ContentVerdict is the compliance service's decision.
type ContentVerdict struct {
	Passed      bool
	Explanation string
}

// ContentVerifier checks a post against campaign guidelines.
type ContentVerifier interface {
	CheckContent(ctx context.Context, text string, media []Media, g domain.Guidelines) (ContentVerdict, error)
}

// TxReceipt is a confirmed external transaction.
type TxReceipt struct {
	TxRef    string
	Sequence *int64
}

// PaymentVerifier checks transfers on the external ledger.
type PaymentVerifier interface {
	// VerifyTransfer asserts a confirmed, successful transfer of exactly
	// amount to recipient. Typed failures: ErrTxNotFound, ErrTxFailed,
	// ErrTxMismatch.
	VerifyTransfer(ctx context.Context, txRef, recipient string, amount int64) error
	// VerifyConfirmed asserts the transaction exists, is confirmed and did
	// not fail, without checking amounts.
	VerifyConfirmed(ctx context.Context, txRef string) (TxReceipt, error)
}
