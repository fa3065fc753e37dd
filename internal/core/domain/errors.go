package domain

import (
	"errors"
	"fmt"
)

// Code is a stable machine readable error code returned to callers.
type Code string

const (
	CodeInvalidInput      Code = "INVALID_INPUT"
	CodeInvalidPostURL    Code = "INVALID_POST_URL"
	CodeForbidden         Code = "FORBIDDEN"
	CodeIdentityNotLinked Code = "IDENTITY_NOT_LINKED"
	CodeIdentityExpired   Code = "IDENTITY_EXPIRED"
	CodeNotFound          Code = "NOT_FOUND"
	CodeInvalidType       Code = "INVALID_TYPE"
	CodeClosed            Code = "CLOSED"
	CodeDeadlinePassed    Code = "DEADLINE_PASSED"
	CodeOwnCampaign       Code = "OWN_CAMPAIGN"
	CodeBanned            Code = "BANNED"
	CodeDuplicate         Code = "DUPLICATE"
	CodeBudgetExhausted   Code = "BUDGET_EXHAUSTED"
	CodeInvalidPayment    Code = "INVALID_PAYMENT"
	CodeExternalAPI       Code = "EXTERNAL_API_ERROR"
	CodeNotPostOwner      Code = "NOT_POST_OWNER"
	CodeInsufficientViews Code = "INSUFFICIENT_ENGAGEMENT"
	CodeContentCheckError Code = "CONTENT_CHECK_ERROR"
	CodeContentRejected   Code = "CONTENT_REJECTED"
	CodeInvalidState      Code = "INVALID_STATE"
	CodeBelowThreshold    Code = "BELOW_THRESHOLD"
	CodeNoSubmissions     Code = "NO_SUBMISSIONS"
	CodeBundlePending     Code = "BUNDLE_PENDING"
	CodeTxNotFound        Code = "TX_NOT_FOUND"
	CodeTxFailed          Code = "TX_FAILED"
	CodeTxVerifyError     Code = "TX_VERIFY_ERROR"
	CodeConflict          Code = "CONFLICT"
)

// Error is a user visible failure with a stable code.
type Error struct {
	Code    Code
	Message string
	// Measured carries the engagement count for INSUFFICIENT_ENGAGEMENT.
	Measured *int64
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is matches any *Error with the same code, so callers can write
// errors.Is(err, domain.ErrDuplicate).
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// Errorf builds an *Error with a formatted message.
func Errorf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// CodeOf extracts the code of err, or "" if err carries none.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// Sentinels for errors.Is comparisons.
var (
	ErrNotFound        = &Error{Code: CodeNotFound}
	ErrDuplicate       = &Error{Code: CodeDuplicate}
	ErrForbidden       = &Error{Code: CodeForbidden}
	ErrInvalidState    = &Error{Code: CodeInvalidState}
	ErrClosed          = &Error{Code: CodeClosed}
	ErrBudgetExhausted = &Error{Code: CodeBudgetExhausted}
)
