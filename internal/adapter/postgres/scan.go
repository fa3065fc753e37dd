package postgres

import (
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"payout-engine/internal/core/domain"
)

func encodeCampaignJSON(c domain.Campaign) (guidelines, token []byte, err error) {
	g := c.Guidelines
	if g.Dos == nil {
		g.Dos = []string{}
	}
	if g.Donts == nil {
		g.Donts = []string{}
	}
	if guidelines, err = json.Marshal(g); err != nil {
		return nil, nil, fmt.Errorf("encode guidelines: %w", err)
	}
	if token, err = json.Marshal(c.Token); err != nil {
		return nil, nil, fmt.Errorf("encode token: %w", err)
	}
	return guidelines, token, nil
}

func scanCampaign(row pgx.Row) (domain.Campaign, error) {
	var (
		c                       domain.Campaign
		taskType, status        string
		guidelinesRaw, tokenRaw []byte
	)
	err := row.Scan(
		&c.ID,
		&c.CreatorID,
		&taskType,
		&c.Title,
		&c.TotalBudget,
		&c.BudgetRemaining,
		&c.CPM,
		&c.MinViews,
		&c.MinPayoutThreshold,
		&c.MaxBudgetPerUserPercent,
		&c.MaxBudgetPerPostPercent,
		&guidelinesRaw,
		&c.Deadline,
		&tokenRaw,
		&status,
		&c.RefundTxRef,
		&c.RefundDue,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return domain.Campaign{}, err
	}
	c.Type = domain.TaskType(taskType)
	c.Status = domain.CampaignStatus(status)
	if err = json.Unmarshal(guidelinesRaw, &c.Guidelines); err != nil {
		return domain.Campaign{}, fmt.Errorf("decode guidelines of campaign %s: %w", c.ID, err)
	}
	if err = json.Unmarshal(tokenRaw, &c.Token); err != nil {
		return domain.Campaign{}, fmt.Errorf("decode token of campaign %s: %w", c.ID, err)
	}
	return c, nil
}

func scanSubmission(row pgx.Row) (domain.Submission, error) {
	var (
		s               domain.Submission
		platform, state string
		bundleID        *string
	)
	err := row.Scan(
		&s.ID,
		&s.CampaignID,
		&s.SubmitterID,
		&platform,
		&s.PostID,
		&s.PostURL,
		&state,
		&s.Engagement,
		&s.Payout,
		&s.RejectionCode,
		&s.RejectionReason,
		&s.ContentPassed,
		&s.ContentExplanation,
		&s.FeeTxRef,
		&s.PaymentTxRef,
		&bundleID,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return domain.Submission{}, err
	}
	s.Platform = domain.Platform(platform)
	s.State = domain.SubmissionState(state)
	if bundleID != nil {
		s.BundleID = *bundleID
	}
	return s, nil
}

func scanBundle(row pgx.Row) (domain.PaymentBundle, error) {
	var (
		b      domain.PaymentBundle
		status string
	)
	err := row.Scan(&b.ID, &b.CampaignID, &b.RequesterID, &b.TotalAmount, &status, &b.PaymentTxRef, &b.Sequence, &b.CreatedAt, &b.PaidAt)
	if err != nil {
		return domain.PaymentBundle{}, err
	}
	b.Status = domain.BundleStatus(status)
	return b, nil
}
