package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"payout-engine/internal/core/domain"
	"payout-engine/internal/core/port"
)

// ActiveReferral returns the active referral link of userID, or nil.
func (s *LedgerStore) ActiveReferral(ctx context.Context, userID string) (*domain.ReferralLink, error) {
	var (
		link  domain.ReferralLink
		share string
	)
	err := s.pool.QueryRow(ctx, `SELECT referrer_id, referred_id, fee_share::text, active
		FROM referral_links WHERE referred_id = $1 AND active`, userID).
		Scan(&link.ReferrerID, &link.ReferredID, &share, &link.Active)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if link.FeeShare, err = decimal.NewFromString(share); err != nil {
		return nil, fmt.Errorf("decode referral fee share %q: %w", share, err)
	}
	return &link, nil
}

// RecordReferralEarning inserts the earning once per bundle.
func (s *LedgerStore) RecordReferralEarning(ctx context.Context, e domain.ReferralEarning) error {
	_, err := s.pool.Exec(ctx, `INSERT INTO referral_earnings
		(bundle_id, campaign_id, referrer_id, referred_id, amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT (bundle_id) DO NOTHING`,
		e.BundleID, e.CampaignID, e.ReferrerID, e.ReferredID, e.Amount, e.CreatedAt)
	return err
}

// AppendOutbox stores a pending notification; re-appending an id is a no-op.
func (s *LedgerStore) AppendOutbox(ctx context.Context, msg port.OutboxMessage) error {
	_, err := s.pool.Exec(ctx, `INSERT INTO notification_outbox (id, topic, payload, created_at)
		VALUES ($1, $2, $3, $4) ON CONFLICT (id) DO NOTHING`, msg.ID, msg.Topic, msg.Payload, msg.CreatedAt)
	return err
}

// ListPendingOutbox returns the oldest unpublished messages first.
func (s *LedgerStore) ListPendingOutbox(ctx context.Context, limit int) ([]port.OutboxMessage, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.pool.Query(ctx, `SELECT id, topic, payload, created_at FROM notification_outbox
		WHERE published_at IS NULL ORDER BY created_at ASC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.OutboxMessage, error) {
		var m port.OutboxMessage
		err := row.Scan(&m.ID, &m.Topic, &m.Payload, &m.CreatedAt)
		return m, err
	})
}

// MarkOutboxPublished stamps the message as delivered.
func (s *LedgerStore) MarkOutboxPublished(ctx context.Context, id string, at time.Time) error {
	_, err := s.pool.Exec(ctx, `UPDATE notification_outbox SET published_at = $2 WHERE id = $1`, id, at)
	return err
}
