package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"payout-engine/internal/core/domain"
	"payout-engine/internal/core/port"
)

// SQLSTATE codes the store reacts to.
const (
	codeUniqueViolation      = "23505"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// LedgerStore implements port.LedgerStore, port.ReferralStore and
// port.OutboxStore using pgxpool for PostgreSQL. Units of work run at
// SERIALIZABLE isolation and are retried on serialization failures.
type LedgerStore struct {
	*queries
	pool       *pgxpool.Pool
	maxRetries int
	logger     *slog.Logger
}

// NewLedgerStore returns a store over pool. maxRetries bounds how many times a
// unit of work is re-run after a serialization failure.
func NewLedgerStore(pool *pgxpool.Pool, maxRetries int, logger *slog.Logger) *LedgerStore {
	if logger == nil {
		logger = slog.Default()
	}
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &LedgerStore{
		queries:    &queries{db: pool},
		pool:       pool,
		maxRetries: maxRetries,
		logger:     logger,
	}
}

// WithinTx runs fn in a serializable transaction. fn may be invoked more than
// once, so it must not leak state between attempts.
func (s *LedgerStore) WithinTx(ctx context.Context, fn func(tx port.Ledger) error) error {
	var err error
	for attempt := 0; attempt <= s.maxRetries; attempt++ {
		err = s.runTx(ctx, fn)
		if !isRetryable(err) {
			return err
		}
		s.logger.Debug("retrying serializable transaction",
			"event", "ledger_tx_retry",
			"module", "adapter/postgres",
			"layer", "adapter",
			"attempt", attempt+1,
			"error", err.Error(),
		)
	}
	return domain.Errorf(domain.CodeConflict, "ledger contention, retry later: %v", err)
}

func (s *LedgerStore) runTx(ctx context.Context, fn func(tx port.Ledger) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()
	return fn(&queries{db: tx})
}

func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == codeSerializationFailure || pgErr.Code == codeDeadlockDetected
}

func uniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation {
		return pgErr.ConstraintName, true
	}
	return "", false
}

// queries holds every statement; it runs against the pool or a transaction.
type queries struct {
	db querier
}

const campaignColumns = `id, creator_id, task_type, title, total_budget, budget_remaining, cpm, min_views,
	min_payout_threshold, max_budget_per_user_percent, max_budget_per_post_percent, guidelines,
	deadline, token, status, refund_tx_ref, refund_due, created_at, updated_at`

func (q *queries) InsertCampaign(ctx context.Context, c domain.Campaign) error {
	guidelines, token, err := encodeCampaignJSON(c)
	if err != nil {
		return err
	}
	_, err = q.db.Exec(ctx, `INSERT INTO campaigns (`+campaignColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19)`,
		c.ID, c.CreatorID, string(c.Type), c.Title, c.TotalBudget, c.BudgetRemaining, c.CPM, c.MinViews,
		c.MinPayoutThreshold, c.MaxBudgetPerUserPercent, c.MaxBudgetPerPostPercent, guidelines,
		c.Deadline, token, string(c.Status), c.RefundTxRef, c.RefundDue, c.CreatedAt, c.UpdatedAt)
	if _, ok := uniqueViolation(err); ok {
		return domain.Errorf(domain.CodeDuplicate, "campaign %s already exists", c.ID)
	}
	return err
}

func (q *queries) GetCampaign(ctx context.Context, id string) (domain.Campaign, error) {
	row := q.db.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	c, err := scanCampaign(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Campaign{}, domain.Errorf(domain.CodeNotFound, "campaign %s not found", id)
	}
	return c, err
}

func (q *queries) UpdateCampaignStatus(ctx context.Context, id string, status domain.CampaignStatus, refundTxRef string, at time.Time) error {
	tag, err := q.db.Exec(ctx, `UPDATE campaigns
		SET status = $2,
		    refund_tx_ref = CASE WHEN $3 = '' THEN refund_tx_ref ELSE $3 END,
		    updated_at = $4
		WHERE id = $1`, id, string(status), refundTxRef, at)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.Errorf(domain.CodeNotFound, "campaign %s not found", id)
	}
	return nil
}

func (q *queries) ListCampaignsPastDeadline(ctx context.Context, now time.Time, limit int) ([]domain.Campaign, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := q.db.Query(ctx, `SELECT `+campaignColumns+` FROM campaigns
		WHERE status IN ('OPEN', 'PAUSED') AND deadline IS NOT NULL AND deadline < $1
		ORDER BY deadline ASC LIMIT $2`, now, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		return scanCampaign(row)
	})
}

// TryAllocate is a single conditional update: the row lock taken by the CTE
// serializes concurrent allocations on one campaign.
func (q *queries) TryAllocate(ctx context.Context, campaignID string, amount int64) (int64, error) {
	var got int64
	err := q.db.QueryRow(ctx, `
		WITH cur AS (
			SELECT id, budget_remaining FROM campaigns WHERE id = $1 FOR UPDATE
		)
		UPDATE campaigns c
		SET budget_remaining = c.budget_remaining - LEAST($2::bigint, cur.budget_remaining),
		    updated_at = now()
		FROM cur
		WHERE c.id = cur.id
		RETURNING LEAST($2::bigint, cur.budget_remaining)`, campaignID, max(amount, 0)).Scan(&got)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, domain.Errorf(domain.CodeNotFound, "campaign %s not found", campaignID)
	}
	return got, err
}

func (q *queries) Release(ctx context.Context, campaignID string, amount int64) error {
	tag, err := q.db.Exec(ctx, `UPDATE campaigns
		SET budget_remaining = CASE WHEN status IN ('COMPLETED', 'CANCELLED') THEN budget_remaining
		        ELSE LEAST(total_budget - refund_due, budget_remaining + $2::bigint) END,
		    refund_due = CASE WHEN status IN ('COMPLETED', 'CANCELLED')
		        THEN LEAST(total_budget - budget_remaining, refund_due + $2::bigint) ELSE refund_due END,
		    updated_at = now()
		WHERE id = $1`, campaignID, max(amount, 0))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.Errorf(domain.CodeNotFound, "campaign %s not found", campaignID)
	}
	return nil
}

func (q *queries) IsBanned(ctx context.Context, creatorID, submitterID string) (bool, error) {
	var banned bool
	err := q.db.QueryRow(ctx, `SELECT EXISTS (
		SELECT 1 FROM creator_bans WHERE creator_id = $1 AND submitter_id = $2)`, creatorID, submitterID).Scan(&banned)
	return banned, err
}

func (q *queries) AddBan(ctx context.Context, ban domain.Ban) error {
	_, err := q.db.Exec(ctx, `INSERT INTO creator_bans (creator_id, submitter_id, reason, created_at)
		VALUES ($1, $2, $3, $4) ON CONFLICT DO NOTHING`, ban.CreatorID, ban.SubmitterID, ban.Reason, ban.CreatedAt)
	return err
}

const submissionColumns = `id, campaign_id, submitter_id, platform, post_id, post_url, state, engagement, payout,
	rejection_code, rejection_reason, content_passed, content_explanation, fee_tx_ref, payment_tx_ref,
	bundle_id, created_at, updated_at`

func (q *queries) InsertSubmission(ctx context.Context, s domain.Submission) error {
	_, err := q.db.Exec(ctx, `INSERT INTO submissions (`+submissionColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19)`,
		s.ID, s.CampaignID, s.SubmitterID, string(s.Platform), s.PostID, s.PostURL, string(s.State),
		s.Engagement, s.Payout, s.RejectionCode, s.RejectionReason, s.ContentPassed, s.ContentExplanation,
		s.FeeTxRef, s.PaymentTxRef, nullable(s.BundleID), s.CreatedAt, s.UpdatedAt)
	if constraint, ok := uniqueViolation(err); ok {
		if constraint == "submissions_fee_tx_key" {
			return domain.Errorf(domain.CodeInvalidPayment, "fee transaction %s was already used", s.FeeTxRef)
		}
		return domain.Errorf(domain.CodeDuplicate, "post %s already submitted to campaign %s", s.PostID, s.CampaignID)
	}
	return err
}

func (q *queries) UpdateSubmission(ctx context.Context, s domain.Submission) error {
	tag, err := q.db.Exec(ctx, `UPDATE submissions SET
		state = $2, engagement = $3, payout = $4, rejection_code = $5, rejection_reason = $6,
		content_passed = $7, content_explanation = $8, payment_tx_ref = $9, bundle_id = $10, updated_at = $11
		WHERE id = $1`,
		s.ID, string(s.State), s.Engagement, s.Payout, s.RejectionCode, s.RejectionReason,
		s.ContentPassed, s.ContentExplanation, s.PaymentTxRef, nullable(s.BundleID), s.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.Errorf(domain.CodeNotFound, "submission %s not found", s.ID)
	}
	return nil
}

func (q *queries) GetSubmission(ctx context.Context, id string) (domain.Submission, error) {
	s, err := scanSubmission(q.db.QueryRow(ctx, `SELECT `+submissionColumns+` FROM submissions WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Submission{}, domain.Errorf(domain.CodeNotFound, "submission %s not found", id)
	}
	return s, err
}

func (q *queries) FindSubmissionByPost(ctx context.Context, campaignID, postID string) (*domain.Submission, error) {
	s, err := scanSubmission(q.db.QueryRow(ctx, `SELECT `+submissionColumns+` FROM submissions
		WHERE campaign_id = $1 AND post_id = $2`, campaignID, postID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (q *queries) DeleteStaleSubmission(ctx context.Context, id string, updatedBefore time.Time) (bool, error) {
	tag, err := q.db.Exec(ctx, `DELETE FROM submissions
		WHERE id = $1 AND state IN ('READING_VIEWS', 'CHECKING_CONTENT') AND updated_at <= $2`, id, updatedBefore)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (q *queries) ListSubmissions(ctx context.Context, f port.SubmissionFilter) ([]domain.Submission, error) {
	var (
		where = "WHERE TRUE"
		args  []any
	)
	add := func(clause string, v any) {
		args = append(args, v)
		where += fmt.Sprintf(" AND "+clause, len(args))
	}
	if f.CampaignID != "" {
		add("campaign_id = $%d", f.CampaignID)
	}
	if f.SubmitterID != "" {
		add("submitter_id = $%d", f.SubmitterID)
	}
	if f.BundleID != "" {
		add("bundle_id = $%d", f.BundleID)
	}
	if len(f.States) > 0 {
		states := make([]string, len(f.States))
		for i, st := range f.States {
			states[i] = string(st)
		}
		add("state = ANY($%d)", states)
	}
	rows, err := q.db.Query(ctx, `SELECT `+submissionColumns+` FROM submissions `+where+` ORDER BY created_at, id`, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Submission, error) {
		return scanSubmission(row)
	})
}

func (q *queries) SumAllocated(ctx context.Context, campaignID, submitterID string) (int64, error) {
	var sum int64
	err := q.db.QueryRow(ctx, `SELECT COALESCE(SUM(payout), 0) FROM submissions
		WHERE campaign_id = $1 AND submitter_id = $2 AND state IN ('APPROVED', 'PAYMENT_REQUESTED', 'PAID')`,
		campaignID, submitterID).Scan(&sum)
	return sum, err
}

func (q *queries) AggregateSubmissions(ctx context.Context, campaignID string) (map[domain.SubmissionState]port.StateAggregate, error) {
	rows, err := q.db.Query(ctx, `SELECT state, COUNT(*), COALESCE(SUM(payout), 0) FROM submissions
		WHERE campaign_id = $1 GROUP BY state`, campaignID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	agg := make(map[domain.SubmissionState]port.StateAggregate)
	for rows.Next() {
		var (
			state string
			a     port.StateAggregate
		)
		if err = rows.Scan(&state, &a.Count, &a.Payout); err != nil {
			return nil, err
		}
		agg[domain.SubmissionState(state)] = a
	}
	return agg, rows.Err()
}

const bundleColumns = `id, campaign_id, requester_id, total_amount, status, payment_tx_ref, sequence, created_at, paid_at`

func (q *queries) InsertBundle(ctx context.Context, b domain.PaymentBundle) error {
	_, err := q.db.Exec(ctx, `INSERT INTO payment_bundles (`+bundleColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		b.ID, b.CampaignID, b.RequesterID, b.TotalAmount, string(b.Status), b.PaymentTxRef, b.Sequence, b.CreatedAt, b.PaidAt)
	if _, ok := uniqueViolation(err); ok {
		return domain.Errorf(domain.CodeBundlePending, "requester %s already has a pending bundle", b.RequesterID)
	}
	return err
}

func (q *queries) UpdateBundle(ctx context.Context, b domain.PaymentBundle) error {
	tag, err := q.db.Exec(ctx, `UPDATE payment_bundles
		SET total_amount = $2, status = $3, payment_tx_ref = $4, sequence = $5, paid_at = $6
		WHERE id = $1`, b.ID, b.TotalAmount, string(b.Status), b.PaymentTxRef, b.Sequence, b.PaidAt)
	if name, ok := uniqueViolation(err); ok && name == "payment_bundles_paid_tx_key" {
		return domain.Errorf(domain.CodeDuplicate, "transaction %s already settled another bundle", b.PaymentTxRef)
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.Errorf(domain.CodeNotFound, "bundle %s not found", b.ID)
	}
	return nil
}

func (q *queries) GetBundle(ctx context.Context, id string) (domain.PaymentBundle, error) {
	b, err := scanBundle(q.db.QueryRow(ctx, `SELECT `+bundleColumns+` FROM payment_bundles WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.PaymentBundle{}, domain.Errorf(domain.CodeNotFound, "bundle %s not found", id)
	}
	return b, err
}

func (q *queries) FindPendingBundle(ctx context.Context, campaignID, requesterID string) (*domain.PaymentBundle, error) {
	b, err := scanBundle(q.db.QueryRow(ctx, `SELECT `+bundleColumns+` FROM payment_bundles
		WHERE campaign_id = $1 AND requester_id = $2 AND status = 'PENDING'`, campaignID, requesterID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (q *queries) CountBundles(ctx context.Context, campaignID string, status domain.BundleStatus) (int64, error) {
	var n int64
	err := q.db.QueryRow(ctx, `SELECT COUNT(*) FROM payment_bundles WHERE campaign_id = $1 AND status = $2`,
		campaignID, string(status)).Scan(&n)
	return n, err
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
