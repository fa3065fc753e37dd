package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"payout-engine/internal/core/domain"
)

// handleRequestPayment bundles the caller's approved submissions in the
// campaign and returns the pending bundle with HTTP 201.
func (h *Handler) handleRequestPayment(w http.ResponseWriter, r *http.Request) {
	b, err := h.svc.RequestPayment(r.Context(), chi.URLParam(r, "id"), actorID(r.Context()))
	if err != nil {
		h.fail(w, r, err, nil)
		return
	}
	h.respond(w, http.StatusCreated, toBundleResponse(*b))
}

// handleReconcilePayment marks a bundle paid once the creator's transfer
// proof is confirmed. A proof that cannot be verified leaves the bundle
// pending and is reported with its TX_* code.
func (h *Handler) handleReconcilePayment(w http.ResponseWriter, r *http.Request) {
	var req reconcileRequest
	if !h.decode(w, r, &req) {
		return
	}
	proof := domain.TransferProof{TxRef: req.TxRef, Sequence: req.Sequence}
	res, err := h.svc.ReconcilePayment(r.Context(), chi.URLParam(r, "id"), actorID(r.Context()), proof)
	if err != nil {
		h.fail(w, r, err, nil)
		return
	}
	h.respond(w, http.StatusOK, reconcileResponse{
		Bundle:      toBundleResponse(res.Bundle),
		Submissions: toSubmissionResponses(res.Submissions),
		Fees:        res.Fees,
	})
}
