package domain

import "time"

// SubmissionState is the position of a submission in the intake and payout
// state machine.
type SubmissionState string

const (
	StateReadingViews     SubmissionState = "READING_VIEWS"
	StateCheckingContent  SubmissionState = "CHECKING_CONTENT"
	StateApproved         SubmissionState = "APPROVED"
	StatePaymentRequested SubmissionState = "PAYMENT_REQUESTED"
	StatePaid             SubmissionState = "PAID"
	StateRejected         SubmissionState = "REJECTED"
	StateCreatorRejected  SubmissionState = "CREATOR_REJECTED"
	StatePaymentFailed    SubmissionState = "PAYMENT_FAILED"
)

// AllSubmissionStates lists every state in display order.
var AllSubmissionStates = []SubmissionState{
	StateReadingViews,
	StateCheckingContent,
	StateApproved,
	StatePaymentRequested,
	StatePaid,
	StateRejected,
	StateCreatorRejected,
	StatePaymentFailed,
}

// Valid reports whether s is a known state.
func (s SubmissionState) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// Intermediate reports whether s is one of the in-pipeline states a crashed
// intake can leave behind.
func (s SubmissionState) Intermediate() bool {
	return s == StateReadingViews || s == StateCheckingContent
}

// Allocated reports whether a submission in state s holds budget.
func (s SubmissionState) Allocated() bool {
	switch s {
	case StateApproved, StatePaymentRequested, StatePaid:
		return true
	case StateReadingViews, StateCheckingContent, StateRejected, StateCreatorRejected, StatePaymentFailed:
		return false
	}
	return false
}

// Terminal reports whether no transition leaves s.
func (s SubmissionState) Terminal() bool {
	return len(transitions[s]) == 0
}

var transitions = map[SubmissionState][]SubmissionState{
	StateReadingViews:     {StateCheckingContent, StateRejected},
	StateCheckingContent:  {StateApproved, StateRejected},
	StateApproved:         {StatePaymentRequested, StateCreatorRejected, StateRejected},
	StatePaymentRequested: {StatePaid, StateCreatorRejected},
	StateRejected:         {StateApproved},
	StateCreatorRejected:  {StateApproved},
	StatePaid:             nil,
	StatePaymentFailed:    nil,
}

// CanTransition reports whether the state machine allows from -> to.
func CanTransition(from, to SubmissionState) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Rejection codes stored on a rejected submission.
const (
	RejectExternalAPI       = "EXTERNAL_API_ERROR"
	RejectNotPostOwner      = "NOT_POST_OWNER"
	RejectInsufficientViews = "INSUFFICIENT_ENGAGEMENT"
	RejectContentCheckError = "CONTENT_CHECK_ERROR"
	RejectContentRejected   = "CONTENT_REJECTED"
	RejectBudgetExhausted   = "BUDGET_EXHAUSTED"
	RejectCampaignFinished  = "CAMPAIGN_FINISHED"
	RejectByCreator         = "CREATOR_REJECTED"
)

// Submission is one engagement claim against a campaign.
type Submission struct {
	ID                 string
	CampaignID         string
	SubmitterID        string
	Platform           Platform
	PostID             string
	PostURL            string
	State              SubmissionState
	Engagement         *int64
	Payout             *int64
	RejectionCode      string
	RejectionReason    string
	ContentPassed      *bool
	ContentExplanation string
	FeeTxRef           string
	PaymentTxRef       string
	BundleID           string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// PayoutAmount returns the payout or zero when none was computed.
func (s Submission) PayoutAmount() int64 {
	if s.Payout == nil {
		return 0
	}
	return *s.Payout
}

// Reject moves the submission into REJECTED with the given code and reason.
func (s *Submission) Reject(code, reason string, now time.Time) {
	s.State = StateRejected
	s.RejectionCode = code
	s.RejectionReason = reason
	s.UpdatedAt = now
}

// Transition moves the submission to the next state, enforcing the state
// machine.
func (s *Submission) Transition(to SubmissionState, now time.Time) error {
	if !CanTransition(s.State, to) {
		return Errorf(CodeInvalidState, "submission %s cannot move from %s to %s", s.ID, s.State, to)
	}
	s.State = to
	s.UpdatedAt = now
	return nil
}

// Stale reports whether an intermediate submission has not been touched for
// longer than lease and may be reclaimed by a retry. A zero lease treats every
// intermediate submission as stale.
func (s Submission) Stale(now time.Time, lease time.Duration) bool {
	if !s.State.Intermediate() {
		return false
	}
	return lease <= 0 || now.Sub(s.UpdatedAt) >= lease
}

// Int64 returns a pointer to v.
func Int64(v int64) *int64 { return &v }

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }
