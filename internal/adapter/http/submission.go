package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"payout-engine/internal/core/port"
)

// handleSubmitEngagement runs intake for one post. Approved submissions are
// returned with HTTP 201. When intake rejects a submission after the fee was
// accepted, the error body carries the stored submission in details.
func (h *Handler) handleSubmitEngagement(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if !h.decode(w, r, &req) {
		return
	}
	sub, err := h.svc.SubmitEngagement(r.Context(), port.SubmitEngagementReq{
		CampaignID:  chi.URLParam(r, "id"),
		SubmitterID: actorID(r.Context()),
		PostURL:     req.PostURL,
		FeeTxRef:    req.FeeTxRef,
	})
	if err != nil {
		var details map[string]any
		if sub != nil {
			details = map[string]any{"submission": toSubmissionResponse(*sub)}
		}
		h.fail(w, r, err, details)
		return
	}
	h.respond(w, http.StatusCreated, toSubmissionResponse(*sub))
}

func (h *Handler) handleListSubmissions(w http.ResponseWriter, r *http.Request) {
	subs, err := h.svc.ListSubmissions(r.Context(), chi.URLParam(r, "id"), actorID(r.Context()))
	if err != nil {
		h.fail(w, r, err, nil)
		return
	}
	h.respond(w, http.StatusOK, map[string]any{"submissions": toSubmissionResponses(subs)})
}

func (h *Handler) handleGetSubmission(w http.ResponseWriter, r *http.Request) {
	sub, err := h.svc.GetSubmission(r.Context(), chi.URLParam(r, "id"), actorID(r.Context()))
	if err != nil {
		h.fail(w, r, err, nil)
		return
	}
	h.respond(w, http.StatusOK, toSubmissionResponse(*sub))
}

// handleRejectSubmission lets the creator reject an approved or requested
// submission, optionally banning the submitter.
func (h *Handler) handleRejectSubmission(w http.ResponseWriter, r *http.Request) {
	var req rejectRequest
	if !h.decode(w, r, &req) {
		return
	}
	err := h.svc.RejectSubmission(r.Context(), port.RejectReq{
		SubmissionID: chi.URLParam(r, "id"),
		ActorID:      actorID(r.Context()),
		Reason:       req.Reason,
		Ban:          req.Ban,
	})
	if err != nil {
		h.fail(w, r, err, nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleOverrideApprove(w http.ResponseWriter, r *http.Request) {
	sub, err := h.svc.OverrideApprove(r.Context(), chi.URLParam(r, "id"), actorID(r.Context()))
	if err != nil {
		h.fail(w, r, err, nil)
		return
	}
	h.respond(w, http.StatusOK, toSubmissionResponse(*sub))
}
