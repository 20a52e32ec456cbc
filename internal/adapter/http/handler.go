package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"seva-donate/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter
// for HTTP. It holds the campaign and payment usecases and a logger for
// structured logging. Routes are registered on a chi.Router for
// convenient method handling.
type Handler struct {
	campaigns port.CampaignUseCase
	payments  port.PaymentUseCase
	logger    *slog.Logger
	router    chi.Router
}

// NewHandler creates a handler with all routes configured. The
// returned Handler registers handlers for each endpoint on a new
// chi.Router.
func NewHandler(campaigns port.CampaignUseCase, payments port.PaymentUseCase, logger *slog.Logger) *Handler {
	h := &Handler{campaigns: campaigns, payments: payments, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/campaigns", h.handleListCampaigns)
		r.Get("/campaigns/{id}", h.handleGetCampaign)
		r.Post("/campaigns", h.handleReplaceCampaigns)
		r.Put("/campaigns", h.handleUpsertCampaign)
		r.Delete("/campaigns", h.handleDeleteCampaign)

		r.Post("/payments", h.handleCapturePayment)
		r.Post("/payments/retry", h.handleRetryCapture)
		r.Get("/payments", h.handlePaymentInfo)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
