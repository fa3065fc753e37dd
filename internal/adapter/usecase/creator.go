package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"payout-engine/internal/core/domain"
	"payout-engine/internal/core/port"
)

// RejectSubmission lets the campaign creator pull an approved or requested
// submission. Its payout goes back to the budget in the same unit of work, or
// to the campaign's refund due once the campaign is closed, and a bundle left
// without members is cancelled.
func (u *PayoutUseCase) RejectSubmission(ctx context.Context, req port.RejectReq) error {
	if err := required("submission_id", req.SubmissionID, "actor_id", req.ActorID); err != nil {
		return err
	}
	reason, err := domain.RejectReason(req.Reason)
	if err != nil {
		return err
	}

	var (
		sub      domain.Submission
		c        domain.Campaign
		released int64
	)
	err = u.store.WithinTx(ctx, func(tx port.Ledger) error {
		released = 0
		now := u.now()

		var err error
		if sub, err = tx.GetSubmission(ctx, req.SubmissionID); err != nil {
			return err
		}
		if c, err = tx.GetCampaign(ctx, sub.CampaignID); err != nil {
			return err
		}
		if err = requireCreator(c, req.ActorID); err != nil {
			return err
		}
		if sub.State != domain.StateApproved && sub.State != domain.StatePaymentRequested {
			return domain.Errorf(domain.CodeInvalidState, "submission %s is %s", sub.ID, sub.State)
		}

		bundleID := sub.BundleID
		released = sub.PayoutAmount()
		if err = sub.Transition(domain.StateCreatorRejected, now); err != nil {
			return err
		}
		sub.RejectionCode = domain.RejectByCreator
		sub.RejectionReason = reason
		sub.BundleID = ""
		sub.Payout = nil
		if err = tx.UpdateSubmission(ctx, sub); err != nil {
			return err
		}
		if err = release(ctx, tx, c.ID, released); err != nil {
			return err
		}
		if bundleID != "" {
			if err = cancelIfEmpty(ctx, tx, bundleID); err != nil {
				return err
			}
		}
		if req.Ban {
			return tx.AddBan(ctx, domain.Ban{
				CreatorID:   c.CreatorID,
				SubmitterID: sub.SubmitterID,
				Reason:      reason,
				CreatedAt:   now,
			})
		}
		return nil
	})
	if err != nil {
		return err
	}

	observeReleased(released)
	u.logger.Info("submission rejected by creator",
		slog.String("submission_id", sub.ID),
		slog.Int64("released", released),
		slog.Bool("campaign_closed", c.Status.Closed()),
		slog.Bool("ban", req.Ban))
	if c.Status.Closed() && released > 0 {
		u.notify(ctx, port.Notification{
			UserID: c.CreatorID,
			Type:   port.NotifyCampaignFinished,
			Title:  "Refund due",
			Body:   fmt.Sprintf("%s released from %q after it closed can be refunded", c.Token.Format(released), c.Title),
			Link:   u.link("/campaigns/%s", c.ID),
		})
	}
	u.notify(ctx, port.Notification{
		UserID: sub.SubmitterID,
		Type:   port.NotifySubmissionRejected,
		Title:  "Submission rejected",
		Body:   fmt.Sprintf("The creator of %q rejected your submission: %s", c.Title, reason),
		Link:   u.link("/submissions/%s", sub.ID),
	})
	return nil
}

// cancelIfEmpty cancels a pending bundle that no longer has requested members.
func cancelIfEmpty(ctx context.Context, tx port.Ledger, bundleID string) error {
	members, err := tx.ListSubmissions(ctx, requestedIn(bundleID))
	if err != nil {
		return err
	}
	if len(members) > 0 {
		return nil
	}
	b, err := tx.GetBundle(ctx, bundleID)
	if err != nil {
		return err
	}
	if b.Status != domain.BundlePending {
		return nil
	}
	b.Status = domain.BundleCancelled
	return tx.UpdateBundle(ctx, b)
}

// OverrideApprove promotes a rejected submission without re-running the
// verifiers. The payout is derived again from the measured engagement and
// allocated under the same caps and clamp as intake.
func (u *PayoutUseCase) OverrideApprove(ctx context.Context, submissionID, actorID string) (*domain.Submission, error) {
	if err := required("submission_id", submissionID, "actor_id", actorID); err != nil {
		return nil, err
	}

	var (
		sub domain.Submission
		c   domain.Campaign
	)
	err := u.store.WithinTx(ctx, func(tx port.Ledger) error {
		now := u.now()

		var err error
		if sub, err = tx.GetSubmission(ctx, submissionID); err != nil {
			return err
		}
		if c, err = tx.GetCampaign(ctx, sub.CampaignID); err != nil {
			return err
		}
		if err = requireCreator(c, actorID); err != nil {
			return err
		}
		if sub.State != domain.StateRejected && sub.State != domain.StateCreatorRejected {
			return domain.Errorf(domain.CodeInvalidState, "submission %s is %s", sub.ID, sub.State)
		}
		if sub.Engagement == nil {
			return domain.Errorf(domain.CodeInvalidState, "submission %s has no measured engagement", sub.ID)
		}
		if c.Status.Closed() {
			return domain.Errorf(domain.CodeClosed, "campaign %s is %s", c.ID, c.Status)
		}

		got, err := allocate(ctx, tx, c, sub, *sub.Engagement)
		if err != nil {
			return err
		}
		if got <= 0 {
			return domain.Errorf(domain.CodeBudgetExhausted, "campaign %s cannot cover this submission", c.ID)
		}
		if err = sub.Transition(domain.StateApproved, now); err != nil {
			return err
		}
		sub.Payout = domain.Int64(got)
		sub.RejectionCode = ""
		sub.RejectionReason = ""
		return tx.UpdateSubmission(ctx, sub)
	})
	if err != nil {
		return nil, err
	}

	observeAllocated(sub.PayoutAmount())
	u.logger.Info("submission approved by creator override",
		slog.String("submission_id", sub.ID),
		slog.Int64("payout", sub.PayoutAmount()))
	u.notify(ctx, port.Notification{
		UserID: sub.SubmitterID,
		Type:   port.NotifySubmissionApproved,
		Title:  "Submission approved",
		Body:   fmt.Sprintf("The creator of %q approved your submission for %s", c.Title, c.Token.Format(sub.PayoutAmount())),
		Link:   u.link("/submissions/%s", sub.ID),
	})
	return &sub, nil
}
