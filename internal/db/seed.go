package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"payout-engine/internal/core/domain"
)

// DemoCampaignID returns the stable id of the i-th seeded campaign.
func DemoCampaignID(i int) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, fmt.Appendf(nil, "payout-engine/demo/campaign/%d", i)).String()
}

// Seed inserts demo campaigns and referral links. It is idempotent.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	token, err := json.Marshal(domain.PaymentToken{Kind: domain.TokenNative, Symbol: "SUI", Decimals: 9})
	if err != nil {
		return err
	}

	// create campaigns
	for i := 1; i <= 3; i++ {
		guidelines, err := json.Marshal(domain.Guidelines{
			Dos:   []string{fmt.Sprintf("Mention #demo%d", i), "Tag the project account"},
			Donts: []string{"No offensive content", "No paid engagement"},
		})
		if err != nil {
			return err
		}
		totalBudget := int64(i) * 1_000_000_000_000 // i * 1000 SUI
		deadline := time.Now().UTC().AddDate(0, 0, 7*i)
		_, err = db.Exec(ctx, `INSERT INTO campaigns
    (id, creator_id, task_type, title, total_budget, budget_remaining, cpm, min_views,
     min_payout_threshold, max_budget_per_user_percent, max_budget_per_post_percent,
     guidelines, deadline, token, status, created_at, updated_at)
VALUES ($1,$2,'CAMPAIGN',$3,$4,$4,$5,$6,$7,$8,$9,$10,$11,$12,'OPEN',now(),now()) ON CONFLICT DO NOTHING`,
			DemoCampaignID(i),
			fmt.Sprintf("demo-creator-%d", i),
			fmt.Sprintf("Demo campaign %d", i),
			totalBudget,
			int64(500_000_000), // 0.5 SUI per 1000 views
			int64(1000*i),
			int64(1_000_000_000),
			int64(25),
			int64(10),
			guidelines,
			deadline,
			token,
		)
		if err != nil {
			return err
		}
	}

	// referral links
	for i := 1; i <= 5; i++ {
		_, err = db.Exec(ctx, `INSERT INTO referral_links (referred_id, referrer_id, fee_share, active)
VALUES ($1,$2,$3,TRUE) ON CONFLICT DO NOTHING`,
			fmt.Sprintf("demo-user-%d", i), "demo-referrer", 0.25)
		if err != nil {
			return err
		}
	}
	return nil
}
