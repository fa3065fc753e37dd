package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"payout-engine/internal/core/domain"
)

const maxBodyBytes = 1 << 20

// decode reads a JSON body into v. An empty body leaves v untouched so that
// endpoints with only optional fields accept bodiless requests.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		h.writeError(w, r, http.StatusBadRequest, codeBadJSON, "invalid JSON: "+err.Error(), nil)
		return false
	}
	return true
}

type createCampaignRequest struct {
	Type                    domain.TaskType     `json:"type"`
	Title                   string              `json:"title"`
	TotalBudget             int64               `json:"total_budget"`
	CPM                     int64               `json:"cpm"`
	MinViews                int64               `json:"min_views"`
	MinPayoutThreshold      int64               `json:"min_payout_threshold"`
	MaxBudgetPerUserPercent int64               `json:"max_budget_per_user_percent"`
	MaxBudgetPerPostPercent int64               `json:"max_budget_per_post_percent"`
	Guidelines              domain.Guidelines   `json:"guidelines"`
	Deadline                *time.Time          `json:"deadline"`
	Token                   domain.PaymentToken `json:"token"`
}

func (req createCampaignRequest) campaign(creatorID string) domain.Campaign {
	return domain.Campaign{
		CreatorID:               creatorID,
		Type:                    domain.TaskType(strings.ToUpper(string(req.Type))),
		Title:                   req.Title,
		TotalBudget:             req.TotalBudget,
		CPM:                     req.CPM,
		MinViews:                req.MinViews,
		MinPayoutThreshold:      req.MinPayoutThreshold,
		MaxBudgetPerUserPercent: req.MaxBudgetPerUserPercent,
		MaxBudgetPerPostPercent: req.MaxBudgetPerPostPercent,
		Guidelines:              req.Guidelines,
		Deadline:                req.Deadline,
		Token:                   req.Token,
	}
}

type submitRequest struct {
	PostURL  string `json:"post_url"`
	FeeTxRef string `json:"fee_tx_ref"`
}

type rejectRequest struct {
	Reason string `json:"reason"`
	Ban    bool   `json:"ban"`
}

type reconcileRequest struct {
	TxRef    string `json:"tx_ref"`
	Sequence *int64 `json:"sequence"`
}

type finishRequest struct {
	RefundTxRef string `json:"refund_tx_ref"`
}
