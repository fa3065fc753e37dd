package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"payout-engine/internal/core/domain"
	"payout-engine/internal/core/port"
	"payout-engine/internal/metrics"
)

// ReconcilePayment marks a pending bundle paid once its transfer proof is
// confirmed on the external ledger. Only the submissions still requested at
// commit time are paid; the bundle total is recomputed from them. A transfer
// settles at most one bundle; reusing it fails with DUPLICATE. Fee split
// bookkeeping and notifications run after the commit and never undo it.
func (u *PayoutUseCase) ReconcilePayment(ctx context.Context, bundleID, actorID string, proof domain.TransferProof) (*port.ReconcileResult, error) {
	if err := required("bundle_id", bundleID, "actor_id", actorID, "tx_ref", proof.TxRef); err != nil {
		return nil, err
	}

	b, err := u.store.GetBundle(ctx, bundleID)
	if err != nil {
		return nil, err
	}
	c, err := u.store.GetCampaign(ctx, b.CampaignID)
	if err != nil {
		return nil, err
	}
	if err = requireCreator(c, actorID); err != nil {
		return nil, err
	}
	if b.Status != domain.BundlePending {
		return nil, domain.Errorf(domain.CodeInvalidState, "bundle %s is %s", b.ID, b.Status)
	}
	members, err := u.store.ListSubmissions(ctx, requestedIn(b.ID))
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return nil, domain.Errorf(domain.CodeNoSubmissions, "bundle %s has no submissions left to pay", b.ID)
	}

	var receipt port.TxReceipt
	err = u.callVerifier(ctx, "payment", func(ctx context.Context) (err error) {
		receipt, err = u.payments.VerifyConfirmed(ctx, proof.TxRef)
		return err
	})
	if err != nil {
		return nil, txProofError(proof.TxRef, err)
	}
	sequence := proof.Sequence
	if receipt.Sequence != nil {
		sequence = receipt.Sequence
	}

	var paid []domain.Submission
	err = u.store.WithinTx(ctx, func(tx port.Ledger) error {
		paid = nil
		now := u.now()

		var err error
		if b, err = tx.GetBundle(ctx, bundleID); err != nil {
			return err
		}
		if b.Status != domain.BundlePending {
			return domain.Errorf(domain.CodeInvalidState, "bundle %s is %s", b.ID, b.Status)
		}
		current, err := tx.ListSubmissions(ctx, requestedIn(b.ID))
		if err != nil {
			return err
		}
		if len(current) == 0 {
			return domain.Errorf(domain.CodeNoSubmissions, "bundle %s has no submissions left to pay", b.ID)
		}

		var total int64
		for _, s := range current {
			if err = s.Transition(domain.StatePaid, now); err != nil {
				return err
			}
			s.PaymentTxRef = proof.TxRef
			if err = tx.UpdateSubmission(ctx, s); err != nil {
				return err
			}
			total += s.PayoutAmount()
			paid = append(paid, s)
		}

		b.Status = domain.BundlePaid
		b.TotalAmount = total
		b.PaymentTxRef = proof.TxRef
		b.Sequence = sequence
		b.PaidAt = &now
		return tx.UpdateBundle(ctx, b)
	})
	if err != nil {
		return nil, err
	}

	metrics.BundlesPaidTotal.Inc()
	u.logger.Info("bundle paid",
		slog.String("bundle_id", b.ID),
		slog.String("tx_ref", proof.TxRef),
		slog.Int("submissions", len(paid)),
		slog.Int64("total", b.TotalAmount))

	fees := u.settleFees(ctx, b)
	u.notify(ctx, port.Notification{
		UserID: b.RequesterID,
		Type:   port.NotifyPaymentCompleted,
		Title:  "Payment completed",
		Body:   fmt.Sprintf("You were paid %s for %d submissions to %q", c.Token.Format(fees.RequesterNet), len(paid), c.Title),
		Link:   u.link("/bundles/%s", b.ID),
	})
	u.notify(ctx, port.Notification{
		UserID: c.CreatorID,
		Type:   port.NotifyPaymentCompleted,
		Title:  "Payment recorded",
		Body:   fmt.Sprintf("Payment of %s for %q was confirmed", c.Token.Format(b.TotalAmount), c.Title),
		Link:   u.link("/bundles/%s", b.ID),
	})

	return &port.ReconcileResult{Bundle: b, Submissions: paid, Fees: fees}, nil
}

// settleFees computes the platform and referral split of a paid bundle and
// records the referrer's earning. Failures are logged; the split is returned
// without the referral part when the referral lookup fails.
func (u *PayoutUseCase) settleFees(ctx context.Context, b domain.PaymentBundle) domain.FeeSplit {
	var link *domain.ReferralLink
	if u.referrals != nil {
		var err error
		if link, err = u.referrals.ActiveReferral(ctx, b.RequesterID); err != nil {
			u.logger.Warn("referral lookup failed",
				slog.String("bundle_id", b.ID),
				slog.Any("error", err))
			link = nil
		}
	}

	split := domain.SplitFees(b.TotalAmount, u.cfg.PlatformFeeBps, link)
	if split.ReferrerShare <= 0 {
		return split
	}
	err := u.referrals.RecordReferralEarning(ctx, domain.ReferralEarning{
		BundleID:   b.ID,
		CampaignID: b.CampaignID,
		ReferrerID: split.ReferrerID,
		ReferredID: b.RequesterID,
		Amount:     split.ReferrerShare,
		CreatedAt:  u.now(),
	})
	if err != nil {
		u.logger.Warn("failed to record referral earning",
			slog.String("bundle_id", b.ID),
			slog.String("referrer_id", split.ReferrerID),
			slog.Any("error", err))
	}
	return split
}

func requestedIn(bundleID string) port.SubmissionFilter {
	return port.SubmissionFilter{
		BundleID: bundleID,
		States:   []domain.SubmissionState{domain.StatePaymentRequested},
	}
}
