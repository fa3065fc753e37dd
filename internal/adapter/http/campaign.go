package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// handleCreateCampaign registers a campaign owned by the caller and returns
// it with HTTP 201.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if !h.decode(w, r, &req) {
		return
	}
	c, err := h.svc.CreateCampaign(r.Context(), req.campaign(actorID(r.Context())))
	if err != nil {
		h.fail(w, r, err, nil)
		return
	}
	h.respond(w, http.StatusCreated, toCampaignResponse(*c))
}

// handleFinishCampaign closes the campaign. The optional refund_tx_ref is
// verified before it is stored.
func (h *Handler) handleFinishCampaign(w http.ResponseWriter, r *http.Request) {
	var req finishRequest
	if !h.decode(w, r, &req) {
		return
	}
	res, err := h.svc.FinishCampaign(r.Context(), chi.URLParam(r, "id"), actorID(r.Context()), req.RefundTxRef)
	if err != nil {
		h.fail(w, r, err, nil)
		return
	}
	h.respond(w, http.StatusOK, finishResponse{
		Campaign:      toCampaignResponse(res.Campaign),
		Released:      res.Released,
		ReleasedTotal: res.ReleasedTotal,
		RefundAmount:  res.RefundAmount,
	})
}

func (h *Handler) handlePauseCampaign(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.PauseCampaign(r.Context(), chi.URLParam(r, "id"), actorID(r.Context())); err != nil {
		h.fail(w, r, err, nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleResumeCampaign(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ResumeCampaign(r.Context(), chi.URLParam(r, "id"), actorID(r.Context())); err != nil {
		h.fail(w, r, err, nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
