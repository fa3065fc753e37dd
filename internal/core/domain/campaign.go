package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TaskType distinguishes engagement campaigns from the other task kinds that
// share the same task table. Only TaskTypeCampaign accepts submissions.
type TaskType string

const (
	TaskTypeCampaign    TaskType = "CAMPAIGN"
	TaskTypeQuote       TaskType = "QUOTE"
	TaskTypeCompetition TaskType = "COMPETITION"
)

// CampaignStatus is the lifecycle status of a campaign.
type CampaignStatus string

const (
	CampaignOpen      CampaignStatus = "OPEN"
	CampaignPaused    CampaignStatus = "PAUSED"
	CampaignCompleted CampaignStatus = "COMPLETED"
	CampaignCancelled CampaignStatus = "CANCELLED"
)

// Valid reports whether s is one of the known statuses.
func (s CampaignStatus) Valid() bool {
	switch s {
	case CampaignOpen, CampaignPaused, CampaignCompleted, CampaignCancelled:
		return true
	}
	return false
}

// Closed reports whether the campaign no longer accepts lifecycle changes.
func (s CampaignStatus) Closed() bool {
	switch s {
	case CampaignCompleted, CampaignCancelled:
		return true
	case CampaignOpen, CampaignPaused:
		return false
	}
	return true
}

// TokenKind describes what kind of asset pays out a campaign.
type TokenKind string

const (
	TokenNative TokenKind = "native"
	TokenStable TokenKind = "stable"
	TokenCustom TokenKind = "custom"
)

// PaymentToken describes the asset budgets and payouts are denominated in.
// Amounts everywhere are integers in the token's smallest unit.
type PaymentToken struct {
	Kind     TokenKind `json:"kind"`
	Symbol   string    `json:"symbol"`
	Decimals int32     `json:"decimals"`
	Address  string    `json:"address,omitempty"`
}

// Format renders a smallest-unit amount as a human readable decimal string
// with the token symbol, e.g. "1.5 SUI".
func (t PaymentToken) Format(amount int64) string {
	s := decimal.New(amount, -t.Decimals).String()
	if t.Symbol == "" {
		return s
	}
	return s + " " + t.Symbol
}

// Guidelines are the creator's content rules passed to the compliance check.
type Guidelines struct {
	Dos   []string `json:"dos"`
	Donts []string `json:"donts"`
}

// Campaign is an engagement campaign with a capped budget.
// Budgets are stored in integer units of the payment token.
type Campaign struct {
	ID                      string
	CreatorID               string
	Type                    TaskType
	Title                   string
	TotalBudget             int64
	BudgetRemaining         int64
	CPM                     int64 // payout per 1000 engagement units
	MinViews                int64
	MinPayoutThreshold      int64
	MaxBudgetPerUserPercent int64 // 0 disables the cap
	MaxBudgetPerPostPercent int64 // 0 disables the cap
	Guidelines              Guidelines
	Deadline                *time.Time
	Token                   PaymentToken
	Status                  CampaignStatus
	RefundTxRef             string
	RefundDue               int64 // released after close, owed back to the creator
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// Allocated returns how much budget has left the ledger.
func (c Campaign) Allocated() int64 {
	return c.TotalBudget - c.BudgetRemaining - c.RefundDue
}

// DeadlinePassed reports whether now is past the campaign deadline.
func (c Campaign) DeadlinePassed(now time.Time) bool {
	return c.Deadline != nil && now.After(*c.Deadline)
}

// Validate checks the fields required to create a campaign.
func (c Campaign) Validate() error {
	switch {
	case c.CreatorID == "":
		return Errorf(CodeInvalidInput, "creator is required")
	case c.TotalBudget <= 0:
		return Errorf(CodeInvalidInput, "total budget must be positive")
	case c.CPM <= 0:
		return Errorf(CodeInvalidInput, "cpm must be positive")
	case c.MinViews < 0 || c.MinPayoutThreshold < 0:
		return Errorf(CodeInvalidInput, "thresholds must not be negative")
	case !validPercent(c.MaxBudgetPerUserPercent) || !validPercent(c.MaxBudgetPerPostPercent):
		return Errorf(CodeInvalidInput, "budget caps must be within 0..100 percent")
	case c.Token.Decimals < 0:
		return Errorf(CodeInvalidInput, "token decimals must not be negative")
	}
	return nil
}

func validPercent(p int64) bool {
	return p >= 0 && p <= 100
}

// Ban is a creator-scoped blocklist entry. A banned submitter cannot submit to
// any current or future campaign of that creator.
type Ban struct {
	CreatorID   string
	SubmitterID string
	Reason      string
	CreatedAt   time.Time
}
