package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"payout-engine/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the payout use case, a logger for structured logging and the
// secret used to verify bearer tokens. Routes are registered on a chi.Router.
type Handler struct {
	svc       port.PayoutUseCase
	logger    *slog.Logger
	jwtSecret []byte
	router    chi.Router
}

// NewHandler creates a handler with all routes configured. Every /api/v1 route
// requires a bearer token whose subject is the acting user id.
func NewHandler(svc port.PayoutUseCase, logger *slog.Logger, jwtSecret []byte) *Handler {
	h := &Handler{svc: svc, logger: logger, jwtSecret: jwtSecret}
	r := chi.NewRouter()
	r.Use(withRequestID, middleware.RealIP, middleware.Recoverer, instrument)

	r.Get("/healthz", h.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(h.authenticate)

		r.Post("/campaigns", h.handleCreateCampaign)
		r.Route("/campaigns/{id}", func(r chi.Router) {
			r.Get("/stats", h.handleCampaignStats)
			r.Post("/finish", h.handleFinishCampaign)
			r.Post("/pause", h.handlePauseCampaign)
			r.Post("/resume", h.handleResumeCampaign)
			r.Post("/submissions", h.handleSubmitEngagement)
			r.Get("/submissions", h.handleListSubmissions)
			r.Post("/payment-requests", h.handleRequestPayment)
		})
		r.Get("/submissions/{id}", h.handleGetSubmission)
		r.Post("/submissions/{id}/reject", h.handleRejectSubmission)
		r.Post("/submissions/{id}/approve", h.handleOverrideApprove)
		r.Post("/bundles/{id}/reconcile", h.handleReconcilePayment)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.respond(w, http.StatusOK, map[string]string{"status": "ok"})
}
