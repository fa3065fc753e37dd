package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"payout-engine/internal/core/domain"
	"payout-engine/internal/core/port"
)

// RequestPayment moves all of the requester's approved submissions in the
// campaign into one pending bundle. A requester has at most one pending bundle
// per campaign; asking again while it is open fails with BUNDLE_PENDING.
func (u *PayoutUseCase) RequestPayment(ctx context.Context, campaignID, requesterID string) (*domain.PaymentBundle, error) {
	if err := required("campaign_id", campaignID, "requester_id", requesterID); err != nil {
		return nil, err
	}

	var (
		bundle  domain.PaymentBundle
		c       domain.Campaign
		members int
	)
	err := u.store.WithinTx(ctx, func(tx port.Ledger) error {
		now := u.now()

		var err error
		if c, err = tx.GetCampaign(ctx, campaignID); err != nil {
			return err
		}
		pending, err := tx.FindPendingBundle(ctx, campaignID, requesterID)
		if err != nil {
			return err
		}
		if pending != nil {
			return domain.Errorf(domain.CodeBundlePending, "bundle %s is still awaiting payment", pending.ID)
		}

		approved, err := tx.ListSubmissions(ctx, port.SubmissionFilter{
			CampaignID:  campaignID,
			SubmitterID: requesterID,
			States:      []domain.SubmissionState{domain.StateApproved},
		})
		if err != nil {
			return err
		}
		if len(approved) == 0 {
			return domain.Errorf(domain.CodeNoSubmissions, "no approved submissions to pay out")
		}
		var total int64
		for _, s := range approved {
			total += s.PayoutAmount()
		}
		if total < c.MinPayoutThreshold {
			return domain.Errorf(domain.CodeBelowThreshold, "approved total %s is below the minimum payout of %s",
				c.Token.Format(total), c.Token.Format(c.MinPayoutThreshold))
		}

		bundle = domain.PaymentBundle{
			ID:          newID(),
			CampaignID:  campaignID,
			RequesterID: requesterID,
			TotalAmount: total,
			Status:      domain.BundlePending,
			CreatedAt:   now,
		}
		if err = tx.InsertBundle(ctx, bundle); err != nil {
			return err
		}
		for _, s := range approved {
			if err = s.Transition(domain.StatePaymentRequested, now); err != nil {
				return err
			}
			s.BundleID = bundle.ID
			if err = tx.UpdateSubmission(ctx, s); err != nil {
				return err
			}
		}
		members = len(approved)
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.logger.Info("payment requested",
		slog.String("bundle_id", bundle.ID),
		slog.String("campaign_id", campaignID),
		slog.Int("submissions", members),
		slog.Int64("total", bundle.TotalAmount))
	u.notify(ctx, port.Notification{
		UserID: c.CreatorID,
		Type:   port.NotifyPaymentRequested,
		Title:  "Payment requested",
		Body:   fmt.Sprintf("%d submissions to %q are awaiting payment of %s", members, c.Title, c.Token.Format(bundle.TotalAmount)),
		Link:   u.link("/bundles/%s", bundle.ID),
	})
	return &bundle, nil
}
