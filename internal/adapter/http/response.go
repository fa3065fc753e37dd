package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"payout-engine/internal/core/domain"
	"payout-engine/internal/core/port"
)

// Codes produced by the HTTP layer itself.
const (
	codeUnauthorized = "UNAUTHORIZED"
	codeInternal     = "INTERNAL"
	codeBadJSON      = "INVALID_JSON"
)

type errorBody struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

type errorEnvelope struct {
	RequestID string    `json:"request_id"`
	Error     errorBody `json:"error"`
}

// statusFor maps an error code to the HTTP status it is reported with.
func statusFor(code domain.Code) int {
	switch code {
	case domain.CodeInvalidInput, domain.CodeInvalidPostURL:
		return http.StatusBadRequest
	case domain.CodeForbidden, domain.CodeOwnCampaign, domain.CodeBanned, domain.CodeNotPostOwner,
		domain.CodeIdentityNotLinked, domain.CodeIdentityExpired:
		return http.StatusForbidden
	case domain.CodeNotFound:
		return http.StatusNotFound
	case domain.CodeDuplicate, domain.CodeInvalidState, domain.CodeBundlePending, domain.CodeClosed, domain.CodeConflict:
		return http.StatusConflict
	case domain.CodeInvalidType, domain.CodeDeadlinePassed, domain.CodeBudgetExhausted, domain.CodeInvalidPayment,
		domain.CodeInsufficientViews, domain.CodeContentRejected, domain.CodeBelowThreshold, domain.CodeNoSubmissions,
		domain.CodeTxNotFound, domain.CodeTxFailed:
		return http.StatusUnprocessableEntity
	case domain.CodeExternalAPI, domain.CodeContentCheckError, domain.CodeTxVerifyError:
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

func (h *Handler) respond(w http.ResponseWriter, status int, v any) {
	if err := writeJSON(w, status, v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, status int, code, message string, details map[string]any) {
	env := errorEnvelope{
		RequestID: requestID(r.Context()),
		Error:     errorBody{Code: code, Message: message, Details: details},
	}
	h.respond(w, status, env)
}

// fail reports err. Domain errors keep their code and message; anything else
// is logged and hidden behind a generic 500.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error, details map[string]any) {
	var de *domain.Error
	if !errors.As(err, &de) {
		h.logger.Error("request failed",
			slog.String("request_id", requestID(r.Context())),
			slog.String("route", r.URL.Path),
			slog.Any("error", err))
		h.writeError(w, r, http.StatusInternalServerError, codeInternal, "internal error", nil)
		return
	}
	if de.Measured != nil {
		if details == nil {
			details = map[string]any{}
		}
		details["measured"] = *de.Measured
	}
	h.writeError(w, r, statusFor(de.Code), string(de.Code), de.Message, details)
}

type requestIDKey struct{}

func requestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

type campaignResponse struct {
	ID                      string                `json:"id"`
	CreatorID               string                `json:"creator_id"`
	Type                    domain.TaskType       `json:"type"`
	Title                   string                `json:"title"`
	TotalBudget             int64                 `json:"total_budget"`
	BudgetRemaining         int64                 `json:"budget_remaining"`
	CPM                     int64                 `json:"cpm"`
	MinViews                int64                 `json:"min_views"`
	MinPayoutThreshold      int64                 `json:"min_payout_threshold"`
	MaxBudgetPerUserPercent int64                 `json:"max_budget_per_user_percent"`
	MaxBudgetPerPostPercent int64                 `json:"max_budget_per_post_percent"`
	Guidelines              domain.Guidelines     `json:"guidelines"`
	Deadline                *time.Time            `json:"deadline,omitempty"`
	Token                   domain.PaymentToken   `json:"token"`
	Status                  domain.CampaignStatus `json:"status"`
	RefundTxRef             string                `json:"refund_tx_ref,omitempty"`
	RefundDue               int64                 `json:"refund_due"`
	CreatedAt               time.Time             `json:"created_at"`
	UpdatedAt               time.Time             `json:"updated_at"`
}

func toCampaignResponse(c domain.Campaign) campaignResponse {
	return campaignResponse{
		ID:                      c.ID,
		CreatorID:               c.CreatorID,
		Type:                    c.Type,
		Title:                   c.Title,
		TotalBudget:             c.TotalBudget,
		BudgetRemaining:         c.BudgetRemaining,
		CPM:                     c.CPM,
		MinViews:                c.MinViews,
		MinPayoutThreshold:      c.MinPayoutThreshold,
		MaxBudgetPerUserPercent: c.MaxBudgetPerUserPercent,
		MaxBudgetPerPostPercent: c.MaxBudgetPerPostPercent,
		Guidelines:              c.Guidelines,
		Deadline:                c.Deadline,
		Token:                   c.Token,
		Status:                  c.Status,
		RefundTxRef:             c.RefundTxRef,
		RefundDue:               c.RefundDue,
		CreatedAt:               c.CreatedAt,
		UpdatedAt:               c.UpdatedAt,
	}
}

type submissionResponse struct {
	ID                 string                 `json:"id"`
	CampaignID         string                 `json:"campaign_id"`
	SubmitterID        string                 `json:"submitter_id"`
	Platform           domain.Platform        `json:"platform"`
	PostID             string                 `json:"post_id"`
	PostURL            string                 `json:"post_url"`
	State              domain.SubmissionState `json:"state"`
	Engagement         *int64                 `json:"engagement"`
	Payout             *int64                 `json:"payout"`
	RejectionCode      string                 `json:"rejection_code,omitempty"`
	RejectionReason    string                 `json:"rejection_reason,omitempty"`
	ContentPassed      *bool                  `json:"content_passed"`
	ContentExplanation string                 `json:"content_explanation,omitempty"`
	FeeTxRef           string                 `json:"fee_tx_ref"`
	PaymentTxRef       string                 `json:"payment_tx_ref,omitempty"`
	BundleID           string                 `json:"bundle_id,omitempty"`
	CreatedAt          time.Time              `json:"created_at"`
	UpdatedAt          time.Time              `json:"updated_at"`
}

func toSubmissionResponse(s domain.Submission) submissionResponse {
	return submissionResponse{
		ID:                 s.ID,
		CampaignID:         s.CampaignID,
		SubmitterID:        s.SubmitterID,
		Platform:           s.Platform,
		PostID:             s.PostID,
		PostURL:            s.PostURL,
		State:              s.State,
		Engagement:         s.Engagement,
		Payout:             s.Payout,
		RejectionCode:      s.RejectionCode,
		RejectionReason:    s.RejectionReason,
		ContentPassed:      s.ContentPassed,
		ContentExplanation: s.ContentExplanation,
		FeeTxRef:           s.FeeTxRef,
		PaymentTxRef:       s.PaymentTxRef,
		BundleID:           s.BundleID,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
}

func toSubmissionResponses(subs []domain.Submission) []submissionResponse {
	out := make([]submissionResponse, 0, len(subs))
	for _, s := range subs {
		out = append(out, toSubmissionResponse(s))
	}
	return out
}

type bundleResponse struct {
	ID           string              `json:"id"`
	CampaignID   string              `json:"campaign_id"`
	RequesterID  string              `json:"requester_id"`
	TotalAmount  int64               `json:"total_amount"`
	Status       domain.BundleStatus `json:"status"`
	PaymentTxRef string              `json:"payment_tx_ref,omitempty"`
	Sequence     *int64              `json:"sequence,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
	PaidAt       *time.Time          `json:"paid_at,omitempty"`
}

func toBundleResponse(b domain.PaymentBundle) bundleResponse {
	return bundleResponse{
		ID:           b.ID,
		CampaignID:   b.CampaignID,
		RequesterID:  b.RequesterID,
		TotalAmount:  b.TotalAmount,
		Status:       b.Status,
		PaymentTxRef: b.PaymentTxRef,
		Sequence:     b.Sequence,
		CreatedAt:    b.CreatedAt,
		PaidAt:       b.PaidAt,
	}
}

type reconcileResponse struct {
	Bundle      bundleResponse       `json:"bundle"`
	Submissions []submissionResponse `json:"submissions"`
	Fees        domain.FeeSplit      `json:"fees"`
}

type finishResponse struct {
	Campaign      campaignResponse `json:"campaign"`
	Released      int              `json:"released"`
	ReleasedTotal int64            `json:"released_total"`
	RefundAmount  int64            `json:"refund_amount"`
}

type statsResponse struct {
	CampaignID      string                `json:"campaign_id"`
	Status          domain.CampaignStatus `json:"status"`
	TotalBudget     int64                 `json:"total_budget"`
	BudgetRemaining int64                 `json:"budget_remaining"`
	RefundDue       int64                 `json:"refund_due"`
	Allocated       int64                 `json:"allocated"`
	ApprovedPayout  int64                 `json:"approved_payout"`
	RequestedPayout int64                 `json:"requested_payout"`
	PaidPayout      int64                 `json:"paid_payout"`
	Submissions     int64                 `json:"submissions"`
	ByState         map[string]int64      `json:"by_state"`
	PendingBundles  int64                 `json:"pending_bundles"`
	GeneratedAt     time.Time             `json:"generated_at"`
}

func toStatsResponse(s port.CampaignStats) statsResponse {
	byState := make(map[string]int64, len(s.ByState))
	for st, n := range s.ByState {
		byState[string(st)] = n
	}
	return statsResponse{
		CampaignID:      s.CampaignID,
		Status:          s.Status,
		TotalBudget:     s.TotalBudget,
		BudgetRemaining: s.BudgetRemaining,
		RefundDue:       s.RefundDue,
		Allocated:       s.Allocated,
		ApprovedPayout:  s.ApprovedPayout,
		RequestedPayout: s.RequestedPayout,
		PaidPayout:      s.PaidPayout,
		Submissions:     s.Submissions,
		ByState:         byState,
		PendingBundles:  s.PendingBundles,
		GeneratedAt:     s.GeneratedAt,
	}
}
