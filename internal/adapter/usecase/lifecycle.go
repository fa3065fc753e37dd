package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"payout-engine/internal/core/domain"
	"payout-engine/internal/core/port"
)

// CreateCampaign registers a campaign with its whole budget remaining.
func (u *PayoutUseCase) CreateCampaign(ctx context.Context, c domain.Campaign) (*domain.Campaign, error) {
	c.Title = strings.TrimSpace(c.Title)
	if c.Type == "" {
		c.Type = domain.TaskTypeCampaign
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.ID == "" {
		c.ID = newID()
	}
	now := u.now()
	if c.Deadline != nil && !c.Deadline.After(now) {
		return nil, domain.Errorf(domain.CodeInvalidInput, "deadline must be in the future")
	}
	c.BudgetRemaining = c.TotalBudget
	c.Status = domain.CampaignOpen
	c.RefundTxRef = ""
	c.CreatedAt = now
	c.UpdatedAt = now
	if err := u.store.InsertCampaign(ctx, c); err != nil {
		return nil, err
	}
	u.logger.Info("campaign created",
		slog.String("campaign_id", c.ID),
		slog.String("creator_id", c.CreatorID),
		slog.Int64("budget", c.TotalBudget))
	return &c, nil
}

// FinishCampaign closes the campaign for its creator. Approved submissions
// that were never bundled are rejected and their payouts released; requested
// and paid ones stay reconcilable. A refund proof, when given, must exist on
// the external ledger and is stored for audit.
func (u *PayoutUseCase) FinishCampaign(ctx context.Context, campaignID, actorID, refundTxRef string) (*port.FinishResult, error) {
	if err := required("campaign_id", campaignID, "actor_id", actorID); err != nil {
		return nil, err
	}
	c, err := u.store.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if err = requireCreator(c, actorID); err != nil {
		return nil, err
	}
	if c.Status.Closed() {
		return nil, domain.Errorf(domain.CodeClosed, "campaign %s is already %s", c.ID, c.Status)
	}
	if refundTxRef != "" {
		err = u.callVerifier(ctx, "payment", func(ctx context.Context) error {
			_, err := u.payments.VerifyConfirmed(ctx, refundTxRef)
			return err
		})
		if err != nil {
			return nil, txProofError(refundTxRef, err)
		}
	}
	return u.finish(ctx, campaignID, refundTxRef, "Campaign was finished by the creator")
}

// CompleteExpiredCampaigns finishes up to limit campaigns whose deadline has
// passed and returns how many it closed.
func (u *PayoutUseCase) CompleteExpiredCampaigns(ctx context.Context, limit int) (int, error) {
	expired, err := u.store.ListCampaignsPastDeadline(ctx, u.now(), limit)
	if err != nil {
		return 0, err
	}
	var done int
	for _, c := range expired {
		if err = ctx.Err(); err != nil {
			return done, err
		}
		if _, err = u.finish(ctx, c.ID, "", "Campaign deadline passed"); err != nil {
			if errors.Is(err, domain.ErrClosed) {
				continue
			}
			u.logger.Error("failed to complete expired campaign",
				slog.String("campaign_id", c.ID),
				slog.Any("error", err))
			continue
		}
		done++
	}
	return done, nil
}

func (u *PayoutUseCase) finish(ctx context.Context, campaignID, refundTxRef, reason string) (*port.FinishResult, error) {
	var (
		res      port.FinishResult
		rejected []domain.Submission
	)
	err := u.store.WithinTx(ctx, func(tx port.Ledger) error {
		res, rejected = port.FinishResult{}, nil
		now := u.now()

		c, err := tx.GetCampaign(ctx, campaignID)
		if err != nil {
			return err
		}
		if c.Status.Closed() {
			return domain.Errorf(domain.CodeClosed, "campaign %s is already %s", c.ID, c.Status)
		}
		approved, err := tx.ListSubmissions(ctx, port.SubmissionFilter{
			CampaignID: campaignID,
			States:     []domain.SubmissionState{domain.StateApproved},
		})
		if err != nil {
			return err
		}
		for _, s := range approved {
			amount := s.PayoutAmount()
			s.Reject(domain.RejectCampaignFinished, reason, now)
			s.Payout = nil
			if err = tx.UpdateSubmission(ctx, s); err != nil {
				return err
			}
			if err = release(ctx, tx, campaignID, amount); err != nil {
				return err
			}
			res.ReleasedTotal += amount
			rejected = append(rejected, s)
		}
		if err = tx.UpdateCampaignStatus(ctx, campaignID, domain.CampaignCompleted, refundTxRef, now); err != nil {
			return err
		}
		if res.Campaign, err = tx.GetCampaign(ctx, campaignID); err != nil {
			return err
		}
		res.Released = len(rejected)
		res.RefundAmount = res.Campaign.BudgetRemaining
		return nil
	})
	if err != nil {
		return nil, err
	}

	c := res.Campaign
	observeReleased(res.ReleasedTotal)
	u.logger.Info("campaign finished",
		slog.String("campaign_id", c.ID),
		slog.Int("released", res.Released),
		slog.Int64("refund", res.RefundAmount))
	for _, s := range rejected {
		u.notify(ctx, port.Notification{
			UserID: s.SubmitterID,
			Type:   port.NotifySubmissionRejected,
			Title:  "Submission closed",
			Body:   fmt.Sprintf("%q ended before your approved submission was bundled for payment", c.Title),
			Link:   u.link("/submissions/%s", s.ID),
		})
	}
	u.notify(ctx, port.Notification{
		UserID: c.CreatorID,
		Type:   port.NotifyCampaignFinished,
		Title:  "Campaign finished",
		Body:   fmt.Sprintf("%q is closed; %s can be refunded", c.Title, c.Token.Format(res.RefundAmount)),
		Link:   u.link("/campaigns/%s", c.ID),
	})
	return &res, nil
}

// PauseCampaign stops intake on an open campaign.
func (u *PayoutUseCase) PauseCampaign(ctx context.Context, campaignID, actorID string) error {
	return u.setStatus(ctx, campaignID, actorID, domain.CampaignOpen, domain.CampaignPaused)
}

// ResumeCampaign reopens a paused campaign.
func (u *PayoutUseCase) ResumeCampaign(ctx context.Context, campaignID, actorID string) error {
	return u.setStatus(ctx, campaignID, actorID, domain.CampaignPaused, domain.CampaignOpen)
}

func (u *PayoutUseCase) setStatus(ctx context.Context, campaignID, actorID string, from, to domain.CampaignStatus) error {
	if err := required("campaign_id", campaignID, "actor_id", actorID); err != nil {
		return err
	}
	err := u.store.WithinTx(ctx, func(tx port.Ledger) error {
		c, err := tx.GetCampaign(ctx, campaignID)
		if err != nil {
			return err
		}
		if err = requireCreator(c, actorID); err != nil {
			return err
		}
		if c.Status.Closed() {
			return domain.Errorf(domain.CodeClosed, "campaign %s is %s", c.ID, c.Status)
		}
		if c.Status != from {
			return domain.Errorf(domain.CodeInvalidState, "campaign %s is %s, not %s", c.ID, c.Status, from)
		}
		return tx.UpdateCampaignStatus(ctx, campaignID, to, "", u.now())
	})
	if err != nil {
		return err
	}
	u.logger.Info("campaign status changed",
		slog.String("campaign_id", campaignID),
		slog.String("status", string(to)))
	return nil
}
