package memory

import (
	"context"
	"maps"
	"slices"
	"sort"
	"sync"
	"time"

	"payout-engine/internal/core/domain"
	"payout-engine/internal/core/port"
)

// Store is an in-process implementation of port.LedgerStore, port.ReferralStore
// and port.OutboxStore. Units of work are serialized by a single mutex and
// rolled back on error by restoring a snapshot, which makes them trivially
// serializable. It is used by tests and for running without PostgreSQL.
type Store struct {
	mu sync.Mutex
	st *state
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{st: newState()}
}

// WithinTx runs fn as one unit of work. Changes made through tx are discarded
// if fn returns an error.
func (s *Store) WithinTx(ctx context.Context, fn func(tx port.Ledger) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.st.clone()
	if err := fn(&ledger{st: s.st}); err != nil {
		s.st = snapshot
		return err
	}
	return nil
}

func (s *Store) do(ctx context.Context, fn func(l *ledger) error) error {
	return s.WithinTx(ctx, func(tx port.Ledger) error { return fn(tx.(*ledger)) })
}

// read runs fn under the lock without taking a rollback snapshot.
func (s *Store) read(ctx context.Context, fn func(l *ledger) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&ledger{st: s.st})
}

// SeedReferral registers a referral link.
func (s *Store) SeedReferral(link domain.ReferralLink) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.referrals[link.ReferredID] = link
}

// Earnings returns recorded referral earnings keyed by bundle id.
func (s *Store) Earnings() map[string]domain.ReferralEarning {
	s.mu.Lock()
	defer s.mu.Unlock()
	return maps.Clone(s.st.earnings)
}

func (s *Store) InsertCampaign(ctx context.Context, c domain.Campaign) error {
	return s.do(ctx, func(l *ledger) error { return l.InsertCampaign(ctx, c) })
}

func (s *Store) GetCampaign(ctx context.Context, id string) (c domain.Campaign, err error) {
	err = s.read(ctx, func(l *ledger) error {
		c, err = l.GetCampaign(ctx, id)
		return err
	})
	return c, err
}

func (s *Store) UpdateCampaignStatus(ctx context.Context, id string, status domain.CampaignStatus, refundTxRef string, at time.Time) error {
	return s.do(ctx, func(l *ledger) error { return l.UpdateCampaignStatus(ctx, id, status, refundTxRef, at) })
}

func (s *Store) ListCampaignsPastDeadline(ctx context.Context, now time.Time, limit int) (out []domain.Campaign, err error) {
	err = s.read(ctx, func(l *ledger) error {
		out, err = l.ListCampaignsPastDeadline(ctx, now, limit)
		return err
	})
	return out, err
}

func (s *Store) TryAllocate(ctx context.Context, campaignID string, amount int64) (got int64, err error) {
	err = s.do(ctx, func(l *ledger) error {
		got, err = l.TryAllocate(ctx, campaignID, amount)
		return err
	})
	return got, err
}

func (s *Store) Release(ctx context.Context, campaignID string, amount int64) error {
	return s.do(ctx, func(l *ledger) error { return l.Release(ctx, campaignID, amount) })
}

func (s *Store) IsBanned(ctx context.Context, creatorID, submitterID string) (banned bool, err error) {
	err = s.read(ctx, func(l *ledger) error {
		banned, err = l.IsBanned(ctx, creatorID, submitterID)
		return err
	})
	return banned, err
}

func (s *Store) AddBan(ctx context.Context, ban domain.Ban) error {
	return s.do(ctx, func(l *ledger) error { return l.AddBan(ctx, ban) })
}

func (s *Store) InsertSubmission(ctx context.Context, sub domain.Submission) error {
	return s.do(ctx, func(l *ledger) error { return l.InsertSubmission(ctx, sub) })
}

func (s *Store) UpdateSubmission(ctx context.Context, sub domain.Submission) error {
	return s.do(ctx, func(l *ledger) error { return l.UpdateSubmission(ctx, sub) })
}

func (s *Store) GetSubmission(ctx context.Context, id string) (sub domain.Submission, err error) {
	err = s.read(ctx, func(l *ledger) error {
		sub, err = l.GetSubmission(ctx, id)
		return err
	})
	return sub, err
}

func (s *Store) FindSubmissionByPost(ctx context.Context, campaignID, postID string) (sub *domain.Submission, err error) {
	err = s.read(ctx, func(l *ledger) error {
		sub, err = l.FindSubmissionByPost(ctx, campaignID, postID)
		return err
	})
	return sub, err
}

func (s *Store) DeleteStaleSubmission(ctx context.Context, id string, updatedBefore time.Time) (ok bool, err error) {
	err = s.do(ctx, func(l *ledger) error {
		ok, err = l.DeleteStaleSubmission(ctx, id, updatedBefore)
		return err
	})
	return ok, err
}

func (s *Store) ListSubmissions(ctx context.Context, filter port.SubmissionFilter) (out []domain.Submission, err error) {
	err = s.read(ctx, func(l *ledger) error {
		out, err = l.ListSubmissions(ctx, filter)
		return err
	})
	return out, err
}

func (s *Store) SumAllocated(ctx context.Context, campaignID, submitterID string) (sum int64, err error) {
	err = s.read(ctx, func(l *ledger) error {
		sum, err = l.SumAllocated(ctx, campaignID, submitterID)
		return err
	})
	return sum, err
}

func (s *Store) AggregateSubmissions(ctx context.Context, campaignID string) (agg map[domain.SubmissionState]port.StateAggregate, err error) {
	err = s.read(ctx, func(l *ledger) error {
		agg, err = l.AggregateSubmissions(ctx, campaignID)
		return err
	})
	return agg, err
}

func (s *Store) InsertBundle(ctx context.Context, b domain.PaymentBundle) error {
	return s.do(ctx, func(l *ledger) error { return l.InsertBundle(ctx, b) })
}

func (s *Store) UpdateBundle(ctx context.Context, b domain.PaymentBundle) error {
	return s.do(ctx, func(l *ledger) error { return l.UpdateBundle(ctx, b) })
}

func (s *Store) GetBundle(ctx context.Context, id string) (b domain.PaymentBundle, err error) {
	err = s.read(ctx, func(l *ledger) error {
		b, err = l.GetBundle(ctx, id)
		return err
	})
	return b, err
}

func (s *Store) FindPendingBundle(ctx context.Context, campaignID, requesterID string) (b *domain.PaymentBundle, err error) {
	err = s.read(ctx, func(l *ledger) error {
		b, err = l.FindPendingBundle(ctx, campaignID, requesterID)
		return err
	})
	return b, err
}

func (s *Store) CountBundles(ctx context.Context, campaignID string, status domain.BundleStatus) (n int64, err error) {
	err = s.read(ctx, func(l *ledger) error {
		n, err = l.CountBundles(ctx, campaignID, status)
		return err
	})
	return n, err
}

func (s *Store) ActiveReferral(_ context.Context, userID string) (*domain.ReferralLink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	link, ok := s.st.referrals[userID]
	if !ok || !link.Active {
		return nil, nil
	}
	return &link, nil
}

func (s *Store) RecordReferralEarning(_ context.Context, e domain.ReferralEarning) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.st.earnings[e.BundleID]; !ok {
		s.st.earnings[e.BundleID] = e
	}
	return nil
}

func (s *Store) AppendOutbox(_ context.Context, msg port.OutboxMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.st.published[msg.ID]; ok {
		return nil
	}
	for _, m := range s.st.outbox {
		if m.ID == msg.ID {
			return nil
		}
	}
	s.st.outbox = append(s.st.outbox, msg)
	return nil
}

func (s *Store) ListPendingOutbox(_ context.Context, limit int) ([]port.OutboxMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if limit <= 0 {
		limit = 100
	}
	n := min(limit, len(s.st.outbox))
	return slices.Clone(s.st.outbox[:n]), nil
}

func (s *Store) MarkOutboxPublished(_ context.Context, id string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.outbox = slices.DeleteFunc(s.st.outbox, func(m port.OutboxMessage) bool { return m.ID == id })
	s.st.published[id] = at
	return nil
}

type state struct {
	campaigns   map[string]domain.Campaign
	submissions map[string]domain.Submission
	postIndex   map[string]string
	feeIndex    map[string]string
	bundles     map[string]domain.PaymentBundle
	bans        map[string]domain.Ban
	referrals   map[string]domain.ReferralLink
	earnings    map[string]domain.ReferralEarning
	outbox      []port.OutboxMessage
	published   map[string]time.Time
}

func newState() *state {
	return &state{
		campaigns:   make(map[string]domain.Campaign),
		submissions: make(map[string]domain.Submission),
		postIndex:   make(map[string]string),
		feeIndex:    make(map[string]string),
		bundles:     make(map[string]domain.PaymentBundle),
		bans:        make(map[string]domain.Ban),
		referrals:   make(map[string]domain.ReferralLink),
		earnings:    make(map[string]domain.ReferralEarning),
		published:   make(map[string]time.Time),
	}
}

func (st *state) clone() *state {
	return &state{
		campaigns:   maps.Clone(st.campaigns),
		submissions: maps.Clone(st.submissions),
		postIndex:   maps.Clone(st.postIndex),
		feeIndex:    maps.Clone(st.feeIndex),
		bundles:     maps.Clone(st.bundles),
		bans:        maps.Clone(st.bans),
		referrals:   maps.Clone(st.referrals),
		earnings:    maps.Clone(st.earnings),
		outbox:      slices.Clone(st.outbox),
		published:   maps.Clone(st.published),
	}
}

func postKey(campaignID, postID string) string { return campaignID + "\x00" + postID }

func banKey(creatorID, submitterID string) string { return creatorID + "\x00" + submitterID }

// ledger is the unlocked view handed to units of work.
type ledger struct {
	st *state
}

func (l *ledger) InsertCampaign(_ context.Context, c domain.Campaign) error {
	if _, ok := l.st.campaigns[c.ID]; ok {
		return domain.Errorf(domain.CodeDuplicate, "campaign %s already exists", c.ID)
	}
	l.st.campaigns[c.ID] = c
	return nil
}

func (l *ledger) GetCampaign(_ context.Context, id string) (domain.Campaign, error) {
	c, ok := l.st.campaigns[id]
	if !ok {
		return domain.Campaign{}, domain.Errorf(domain.CodeNotFound, "campaign %s not found", id)
	}
	return c, nil
}

func (l *ledger) UpdateCampaignStatus(_ context.Context, id string, status domain.CampaignStatus, refundTxRef string, at time.Time) error {
	c, ok := l.st.campaigns[id]
	if !ok {
		return domain.Errorf(domain.CodeNotFound, "campaign %s not found", id)
	}
	c.Status = status
	if refundTxRef != "" {
		c.RefundTxRef = refundTxRef
	}
	c.UpdatedAt = at
	l.st.campaigns[id] = c
	return nil
}

func (l *ledger) ListCampaignsPastDeadline(_ context.Context, now time.Time, limit int) ([]domain.Campaign, error) {
	var out []domain.Campaign
	for _, c := range l.st.campaigns {
		if !c.Status.Closed() && c.DeadlinePassed(now) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Deadline.Before(*out[j].Deadline) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (l *ledger) TryAllocate(_ context.Context, campaignID string, amount int64) (int64, error) {
	c, ok := l.st.campaigns[campaignID]
	if !ok {
		return 0, domain.Errorf(domain.CodeNotFound, "campaign %s not found", campaignID)
	}
	got := min(max(amount, 0), c.BudgetRemaining)
	c.BudgetRemaining -= got
	l.st.campaigns[campaignID] = c
	return got, nil
}

func (l *ledger) Release(_ context.Context, campaignID string, amount int64) error {
	c, ok := l.st.campaigns[campaignID]
	if !ok {
		return domain.Errorf(domain.CodeNotFound, "campaign %s not found", campaignID)
	}
	if c.Status.Closed() {
		c.RefundDue = min(c.RefundDue+max(amount, 0), c.TotalBudget-c.BudgetRemaining)
	} else {
		c.BudgetRemaining = min(c.BudgetRemaining+max(amount, 0), c.TotalBudget-c.RefundDue)
	}
	l.st.campaigns[campaignID] = c
	return nil
}

func (l *ledger) IsBanned(_ context.Context, creatorID, submitterID string) (bool, error) {
	_, ok := l.st.bans[banKey(creatorID, submitterID)]
	return ok, nil
}

func (l *ledger) AddBan(_ context.Context, ban domain.Ban) error {
	key := banKey(ban.CreatorID, ban.SubmitterID)
	if _, ok := l.st.bans[key]; !ok {
		l.st.bans[key] = ban
	}
	return nil
}

func (l *ledger) InsertSubmission(_ context.Context, sub domain.Submission) error {
	key := postKey(sub.CampaignID, sub.PostID)
	if _, ok := l.st.postIndex[key]; ok {
		return domain.Errorf(domain.CodeDuplicate, "post %s already submitted to campaign %s", sub.PostID, sub.CampaignID)
	}
	if sub.FeeTxRef != "" {
		if _, ok := l.st.feeIndex[sub.FeeTxRef]; ok {
			return domain.Errorf(domain.CodeInvalidPayment, "fee transaction %s was already used", sub.FeeTxRef)
		}
		l.st.feeIndex[sub.FeeTxRef] = sub.ID
	}
	l.st.postIndex[key] = sub.ID
	l.st.submissions[sub.ID] = sub
	return nil
}

func (l *ledger) UpdateSubmission(_ context.Context, sub domain.Submission) error {
	if _, ok := l.st.submissions[sub.ID]; !ok {
		return domain.Errorf(domain.CodeNotFound, "submission %s not found", sub.ID)
	}
	l.st.submissions[sub.ID] = sub
	return nil
}

func (l *ledger) GetSubmission(_ context.Context, id string) (domain.Submission, error) {
	sub, ok := l.st.submissions[id]
	if !ok {
		return domain.Submission{}, domain.Errorf(domain.CodeNotFound, "submission %s not found", id)
	}
	return sub, nil
}

func (l *ledger) FindSubmissionByPost(_ context.Context, campaignID, postID string) (*domain.Submission, error) {
	id, ok := l.st.postIndex[postKey(campaignID, postID)]
	if !ok {
		return nil, nil
	}
	sub := l.st.submissions[id]
	return &sub, nil
}

func (l *ledger) DeleteStaleSubmission(_ context.Context, id string, updatedBefore time.Time) (bool, error) {
	sub, ok := l.st.submissions[id]
	if !ok || !sub.State.Intermediate() || sub.UpdatedAt.After(updatedBefore) {
		return false, nil
	}
	delete(l.st.submissions, id)
	delete(l.st.postIndex, postKey(sub.CampaignID, sub.PostID))
	if sub.FeeTxRef != "" {
		delete(l.st.feeIndex, sub.FeeTxRef)
	}
	return true, nil
}

func (l *ledger) ListSubmissions(_ context.Context, f port.SubmissionFilter) ([]domain.Submission, error) {
	out := make([]domain.Submission, 0)
	for _, sub := range l.st.submissions {
		if f.CampaignID != "" && sub.CampaignID != f.CampaignID {
			continue
		}
		if f.SubmitterID != "" && sub.SubmitterID != f.SubmitterID {
			continue
		}
		if f.BundleID != "" && sub.BundleID != f.BundleID {
			continue
		}
		if len(f.States) > 0 && !slices.Contains(f.States, sub.State) {
			continue
		}
		out = append(out, sub)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (l *ledger) SumAllocated(_ context.Context, campaignID, submitterID string) (int64, error) {
	var sum int64
	for _, sub := range l.st.submissions {
		if sub.CampaignID == campaignID && sub.SubmitterID == submitterID && sub.State.Allocated() {
			sum += sub.PayoutAmount()
		}
	}
	return sum, nil
}

func (l *ledger) AggregateSubmissions(_ context.Context, campaignID string) (map[domain.SubmissionState]port.StateAggregate, error) {
	agg := make(map[domain.SubmissionState]port.StateAggregate)
	for _, sub := range l.st.submissions {
		if sub.CampaignID != campaignID {
			continue
		}
		a := agg[sub.State]
		a.Count++
		a.Payout += sub.PayoutAmount()
		agg[sub.State] = a
	}
	return agg, nil
}

func (l *ledger) InsertBundle(_ context.Context, b domain.PaymentBundle) error {
	if b.Status == domain.BundlePending {
		for _, other := range l.st.bundles {
			if other.Status == domain.BundlePending && other.CampaignID == b.CampaignID && other.RequesterID == b.RequesterID {
				return domain.Errorf(domain.CodeBundlePending, "requester %s already has pending bundle %s", b.RequesterID, other.ID)
			}
		}
	}
	l.st.bundles[b.ID] = b
	return nil
}

func (l *ledger) UpdateBundle(_ context.Context, b domain.PaymentBundle) error {
	if _, ok := l.st.bundles[b.ID]; !ok {
		return domain.Errorf(domain.CodeNotFound, "bundle %s not found", b.ID)
	}
	if b.Status == domain.BundlePaid {
		for _, other := range l.st.bundles {
			if other.ID != b.ID && other.Status == domain.BundlePaid && other.PaymentTxRef == b.PaymentTxRef {
				return domain.Errorf(domain.CodeDuplicate, "transaction %s already settled bundle %s", b.PaymentTxRef, other.ID)
			}
		}
	}
	l.st.bundles[b.ID] = b
	return nil
}

func (l *ledger) GetBundle(_ context.Context, id string) (domain.PaymentBundle, error) {
	b, ok := l.st.bundles[id]
	if !ok {
		return domain.PaymentBundle{}, domain.Errorf(domain.CodeNotFound, "bundle %s not found", id)
	}
	return b, nil
}

func (l *ledger) FindPendingBundle(_ context.Context, campaignID, requesterID string) (*domain.PaymentBundle, error) {
	for _, b := range l.st.bundles {
		if b.Status == domain.BundlePending && b.CampaignID == campaignID && b.RequesterID == requesterID {
			return &b, nil
		}
	}
	return nil, nil
}

func (l *ledger) CountBundles(_ context.Context, campaignID string, status domain.BundleStatus) (int64, error) {
	var n int64
	for _, b := range l.st.bundles {
		if b.CampaignID == campaignID && b.Status == status {
			n++
		}
	}
	return n, nil
}
