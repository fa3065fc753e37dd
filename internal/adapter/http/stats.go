package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// handleCampaignStats returns aggregated submission counts and payout sums
// for the campaign in the {id} path parameter. Only the campaign creator may
// read them; anyone else gets HTTP 403.
func (h *Handler) handleCampaignStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.GetCampaignStats(r.Context(), chi.URLParam(r, "id"), actorID(r.Context()))
	if err != nil {
		h.fail(w, r, err, nil)
		return
	}
	h.respond(w, http.StatusOK, toStatsResponse(*stats))
}
