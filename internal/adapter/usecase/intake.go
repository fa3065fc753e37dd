package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"payout-engine/internal/core/domain"
	"payout-engine/internal/core/port"
	"payout-engine/internal/metrics"
)

// SubmitEngagement runs one post through the intake pipeline. Checks before
// the fee gate fail without side effects. Once the fee proof is accepted the
// submission row exists and every later failure is recorded on it, so the
// returned submission is non-nil together with the error.
func (u *PayoutUseCase) SubmitEngagement(ctx context.Context, req port.SubmitEngagementReq) (sub *domain.Submission, err error) {
	defer func() {
		outcome := string(domain.StateApproved)
		if err != nil {
			outcome = string(domain.CodeOf(err))
			if outcome == "" {
				outcome = "INTERNAL"
			}
		}
		metrics.SubmissionsTotal.WithLabelValues(outcome).Inc()
	}()

	if err = required("campaign_id", req.CampaignID, "submitter_id", req.SubmitterID,
		"post_url", req.PostURL, "fee_tx_ref", req.FeeTxRef); err != nil {
		return nil, err
	}
	post, err := domain.ParsePostURL(req.PostURL)
	if err != nil {
		return nil, err
	}

	account, err := u.linkedAccount(ctx, req.SubmitterID)
	if err != nil {
		return nil, err
	}

	c, err := u.openCampaignFor(ctx, req.CampaignID, req.SubmitterID)
	if err != nil {
		return nil, err
	}

	if err = u.reclaimStuck(ctx, c.ID, post.PostID); err != nil {
		return nil, err
	}

	if c.BudgetRemaining <= 0 {
		return nil, domain.Errorf(domain.CodeBudgetExhausted, "campaign %s has no budget left", c.ID)
	}

	if err = u.verifyFee(ctx, req.FeeTxRef); err != nil {
		return nil, err
	}

	now := u.now()
	s := domain.Submission{
		ID:          newID(),
		CampaignID:  c.ID,
		SubmitterID: req.SubmitterID,
		Platform:    post.Platform,
		PostID:      post.PostID,
		PostURL:     post.URL,
		State:       domain.StateReadingViews,
		FeeTxRef:    req.FeeTxRef,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err = u.store.InsertSubmission(ctx, s); err != nil {
		return nil, err
	}

	// Past the fee gate the pipeline runs to a terminal or retryable state
	// even if the caller goes away.
	ctx = context.WithoutCancel(ctx)
	return u.process(ctx, c, s, account)
}

func (u *PayoutUseCase) process(ctx context.Context, c domain.Campaign, s domain.Submission, account port.LinkedAccount) (*domain.Submission, error) {
	var pm port.PostMetrics
	err := u.callVerifier(ctx, "metrics", func(ctx context.Context) (err error) {
		pm, err = u.metrics.FetchPost(ctx, domain.PostRef{Platform: s.Platform, PostID: s.PostID, URL: s.PostURL}, account.Credential)
		return err
	})
	if err != nil {
		return u.rejectIntake(ctx, s, &domain.Error{
			Code:    domain.CodeExternalAPI,
			Message: collaboratorMessage(err),
		})
	}

	s.Engagement = domain.Int64(pm.Engagement)
	if pm.AuthorID != account.PlatformUserID {
		return u.rejectIntake(ctx, s, domain.Errorf(domain.CodeNotPostOwner,
			"post author %s is not the linked account %s", pm.AuthorID, account.PlatformUserID))
	}
	if pm.Engagement < c.MinViews {
		return u.rejectIntake(ctx, s, &domain.Error{
			Code:     domain.CodeInsufficientViews,
			Message:  fmt.Sprintf("measured %d, campaign requires %d", pm.Engagement, c.MinViews),
			Measured: domain.Int64(pm.Engagement),
		})
	}

	if err = s.Transition(domain.StateCheckingContent, u.now()); err != nil {
		return nil, err
	}
	if err = u.store.UpdateSubmission(ctx, s); err != nil {
		return nil, fmt.Errorf("advance submission %s: %w", s.ID, err)
	}

	var verdict port.ContentVerdict
	err = u.callVerifier(ctx, "content", func(ctx context.Context) (err error) {
		verdict, err = u.content.CheckContent(ctx, pm.Text, pm.Media, c.Guidelines)
		return err
	})
	if err != nil {
		return u.rejectIntake(ctx, s, domain.Errorf(domain.CodeContentCheckError, "content check failed: %v", err))
	}
	s.ContentPassed = domain.Bool(verdict.Passed)
	s.ContentExplanation = verdict.Explanation
	if !verdict.Passed {
		out, rerr := u.rejectIntake(ctx, s, domain.Errorf(domain.CodeContentRejected, "%s", verdict.Explanation))
		if out != nil {
			u.notify(ctx, port.Notification{
				UserID: s.SubmitterID,
				Type:   port.NotifySubmissionRejected,
				Title:  "Submission rejected",
				Body:   fmt.Sprintf("Your post for %q did not pass the content check: %s", c.Title, verdict.Explanation),
				Link:   u.link("/submissions/%s", s.ID),
			})
		}
		return out, rerr
	}

	return u.approveIntake(ctx, s)
}

// approveIntake allocates budget and approves s in one unit of work. The
// campaign is re-read inside the unit so a close that raced the verifiers is
// observed.
func (u *PayoutUseCase) approveIntake(ctx context.Context, s domain.Submission) (*domain.Submission, error) {
	var (
		out       domain.Submission
		c         domain.Campaign
		rejectErr *domain.Error
	)
	err := u.store.WithinTx(ctx, func(tx port.Ledger) error {
		out, rejectErr = s, nil
		now := u.now()

		var err error
		if c, err = tx.GetCampaign(ctx, s.CampaignID); err != nil {
			return err
		}
		if c.Status.Closed() {
			rejectErr = domain.Errorf(domain.CodeClosed, "campaign %s closed during review", c.ID)
			out.Reject(domain.RejectCampaignFinished, rejectErr.Message, now)
			return tx.UpdateSubmission(ctx, out)
		}

		got, err := allocate(ctx, tx, c, out, *out.Engagement)
		if err != nil {
			return err
		}
		if got <= 0 {
			rejectErr = domain.Errorf(domain.CodeBudgetExhausted, "no budget left for this post")
			out.Reject(domain.RejectBudgetExhausted, rejectErr.Message, now)
			return tx.UpdateSubmission(ctx, out)
		}
		if err = out.Transition(domain.StateApproved, now); err != nil {
			return err
		}
		out.Payout = domain.Int64(got)
		return tx.UpdateSubmission(ctx, out)
	})
	if err != nil {
		return nil, fmt.Errorf("approve submission %s: %w", s.ID, err)
	}
	if rejectErr != nil {
		u.logger.Info("submission rejected",
			slog.String("submission_id", out.ID),
			slog.String("code", string(rejectErr.Code)))
		return &out, rejectErr
	}

	observeAllocated(out.PayoutAmount())
	u.logger.Info("submission approved",
		slog.String("submission_id", out.ID),
		slog.String("campaign_id", out.CampaignID),
		slog.Int64("payout", out.PayoutAmount()))

	amount := c.Token.Format(out.PayoutAmount())
	u.notify(ctx, port.Notification{
		UserID: out.SubmitterID,
		Type:   port.NotifySubmissionApproved,
		Title:  "Submission approved",
		Body:   fmt.Sprintf("Your post for %q was approved for %s", c.Title, amount),
		Link:   u.link("/submissions/%s", out.ID),
	})
	u.notify(ctx, port.Notification{
		UserID: c.CreatorID,
		Type:   port.NotifyNewSubmission,
		Title:  "New approved submission",
		Body:   fmt.Sprintf("A submission to %q was approved for %s", c.Title, amount),
		Link:   u.link("/campaigns/%s/submissions", c.ID),
	})
	return &out, nil
}

// rejectIntake records cause on s as a terminal rejection and returns the
// stored row with cause.
func (u *PayoutUseCase) rejectIntake(ctx context.Context, s domain.Submission, cause *domain.Error) (*domain.Submission, error) {
	s.Reject(string(cause.Code), cause.Message, u.now())
	if err := u.store.UpdateSubmission(ctx, s); err != nil {
		u.logger.Error("failed to record rejection",
			slog.String("submission_id", s.ID),
			slog.String("code", string(cause.Code)),
			slog.Any("error", err))
		return nil, fmt.Errorf("reject submission %s: %w", s.ID, err)
	}
	u.logger.Info("submission rejected",
		slog.String("submission_id", s.ID),
		slog.String("code", string(cause.Code)))
	return &s, cause
}

// collaboratorMessage returns the collaborator's own error text when the
// transport carried one.
func collaboratorMessage(err error) string {
	var re port.RemoteError
	if errors.As(err, &re) && re.RemoteMessage() != "" {
		return re.RemoteMessage()
	}
	return err.Error()
}

func (u *PayoutUseCase) linkedAccount(ctx context.Context, userID string) (port.LinkedAccount, error) {
	var account port.LinkedAccount
	err := u.callVerifier(ctx, "identity", func(ctx context.Context) (err error) {
		account, err = u.identity.LinkedAccount(ctx, userID)
		return err
	})
	switch {
	case err == nil:
		if account.PlatformUserID == "" {
			return port.LinkedAccount{}, domain.Errorf(domain.CodeIdentityNotLinked, "user %s has no linked platform account", userID)
		}
		return account, nil
	case errors.Is(err, port.ErrIdentityNotLinked):
		return port.LinkedAccount{}, domain.Errorf(domain.CodeIdentityNotLinked, "user %s has no linked platform account", userID)
	case errors.Is(err, port.ErrCredentialExpired):
		return port.LinkedAccount{}, domain.Errorf(domain.CodeIdentityExpired, "platform credential of user %s expired, relink the account", userID)
	default:
		return port.LinkedAccount{}, domain.Errorf(domain.CodeExternalAPI, "identity lookup failed: %v", err)
	}
}

// openCampaignFor loads the campaign and checks it accepts submissions from
// submitterID.
func (u *PayoutUseCase) openCampaignFor(ctx context.Context, campaignID, submitterID string) (domain.Campaign, error) {
	c, err := u.store.GetCampaign(ctx, campaignID)
	if err != nil {
		return domain.Campaign{}, err
	}
	switch {
	case c.Type != domain.TaskTypeCampaign:
		return domain.Campaign{}, domain.Errorf(domain.CodeInvalidType, "task %s is not an engagement campaign", c.ID)
	case c.Status != domain.CampaignOpen:
		return domain.Campaign{}, domain.Errorf(domain.CodeClosed, "campaign %s is %s", c.ID, c.Status)
	case c.DeadlinePassed(u.now()):
		return domain.Campaign{}, domain.Errorf(domain.CodeDeadlinePassed, "campaign %s deadline passed", c.ID)
	case c.CreatorID == submitterID:
		return domain.Campaign{}, domain.Errorf(domain.CodeOwnCampaign, "creators cannot submit to their own campaign")
	}
	banned, err := u.store.IsBanned(ctx, c.CreatorID, submitterID)
	if err != nil {
		return domain.Campaign{}, err
	}
	if banned {
		return domain.Campaign{}, domain.Errorf(domain.CodeBanned, "submitter is banned from this creator's campaigns")
	}
	return c, nil
}

// reclaimStuck clears an earlier attempt for the same post when it is stuck
// in an intermediate state past the lease. Any other existing submission is a
// duplicate.
func (u *PayoutUseCase) reclaimStuck(ctx context.Context, campaignID, postID string) error {
	existing, err := u.store.FindSubmissionByPost(ctx, campaignID, postID)
	if err != nil {
		return err
	}
	if existing == nil {
		return nil
	}
	now := u.now()
	if !existing.Stale(now, u.cfg.StuckLease) {
		return domain.Errorf(domain.CodeDuplicate, "post %s was already submitted to this campaign", postID)
	}
	deleted, err := u.store.DeleteStaleSubmission(ctx, existing.ID, now.Add(-max(u.cfg.StuckLease, 0)))
	if err != nil {
		return err
	}
	if !deleted {
		// Another request advanced or reclaimed it first.
		return domain.Errorf(domain.CodeDuplicate, "post %s was already submitted to this campaign", postID)
	}
	u.logger.Warn("reclaimed stuck submission",
		slog.String("submission_id", existing.ID),
		slog.String("state", string(existing.State)))
	return nil
}

func (u *PayoutUseCase) verifyFee(ctx context.Context, txRef string) error {
	err := u.callVerifier(ctx, "payment", func(ctx context.Context) error {
		return u.payments.VerifyTransfer(ctx, txRef, u.cfg.SystemAddress, u.cfg.AntiSpamFee)
	})
	if err != nil {
		return domain.Errorf(domain.CodeInvalidPayment, "anti-spam fee %s not accepted: %v", txRef, err)
	}
	return nil
}
