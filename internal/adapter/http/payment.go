package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"seva-donate/internal/core/domain"
)

// paymentResponse mirrors the envelope the checkout widget's handler
// expects: flat success/status fields plus the gateway payload or error
// description.
type paymentResponse struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message,omitempty"`
	PaymentID  string          `json:"paymentId,omitempty"`
	Status     string          `json:"status,omitempty"`
	CampaignID string          `json:"campaignId,omitempty"`
	Data       json.RawMessage `json:"data,omitempty"`
	Error      string          `json:"error,omitempty"`
}

type paymentRequest struct {
	PaymentID  string `json:"paymentId"`
	Amount     int64  `json:"amount"`
	CampaignID string `json:"campaignId"`
	// Delay in milliseconds, retry endpoint only.
	Delay int64 `json:"delay"`
}

// handleCapturePayment captures an authorized payment reported by the
// checkout widget. Without a paymentId the request is a fire-and-forget
// notification: it is logged and acknowledged with HTTP 200. A failed
// capture leaves the authorization in place, reported as HTTP 500 with
// status "authorized" so the client can retry.
func (h *Handler) handleCapturePayment(w http.ResponseWriter, r *http.Request) {
	var body paymentRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if body.CampaignID == "" {
		body.CampaignID = domain.DefaultCampaignTag
	}

	if body.PaymentID == "" {
		h.logger.Info("payment notification received",
			slog.String("campaign_id", body.CampaignID),
			slog.Int64("amount", body.Amount))
		h.respond(w, http.StatusOK, paymentResponse{
			Success:    true,
			Message:    "Payment processed successfully",
			CampaignID: body.CampaignID,
		})
		return
	}

	result := h.payments.Capture(r.Context(), domain.CaptureRequest{
		PaymentID:  body.PaymentID,
		Amount:     body.Amount,
		CampaignID: body.CampaignID,
	})
	if !result.Success {
		h.respond(w, http.StatusInternalServerError, paymentResponse{
			Success:   false,
			Message:   "Payment capture failed",
			PaymentID: body.PaymentID,
			Status:    result.Status,
			Error:     result.Error,
		})
		return
	}
	h.respond(w, http.StatusOK, paymentResponse{
		Success:    true,
		Message:    "Payment captured successfully",
		PaymentID:  body.PaymentID,
		Status:     result.Status,
		CampaignID: body.CampaignID,
		Data:       result.Data,
	})
}

// handleRetryCapture re-attempts a capture after the requested delay
// (milliseconds, default 5000). The outcome is always HTTP 200; failure
// is reported in the body, not via the status code.
func (h *Handler) handleRetryCapture(w http.ResponseWriter, r *http.Request) {
	var body paymentRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	delay := time.Duration(body.Delay) * time.Millisecond
	h.logger.Info("scheduling retry capture",
		slog.String("payment_id", body.PaymentID),
		slog.Duration("delay", delay))

	result := h.payments.RetryCapture(r.Context(), domain.CaptureRequest{
		PaymentID:  body.PaymentID,
		Amount:     body.Amount,
		CampaignID: body.CampaignID,
	}, delay)

	message := "Retry capture failed"
	if result.Success {
		message = "Payment captured successfully on retry"
	}
	h.respond(w, http.StatusOK, paymentResponse{
		Success:   result.Success,
		Message:   message,
		PaymentID: body.PaymentID,
		Status:    result.Status,
		Data:      result.Data,
		Error:     result.Error,
	})
}

// handlePaymentInfo returns aggregate donation stats for a campaign, or
// across all campaigns when the campaignId query parameter is absent.
func (h *Handler) handlePaymentInfo(w http.ResponseWriter, r *http.Request) {
	campaignID := r.URL.Query().Get("campaignId")

	stats, err := h.payments.Stats(r.Context(), campaignID)
	if err != nil {
		h.logger.Error("payment stats error", slog.Any("error", err))
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve payment data")
		return
	}

	label := campaignID
	if label == "" {
		label = "all"
	}
	h.respond(w, http.StatusOK, paymentResponse{
		Success:    true,
		Message:    "Payment data retrieved successfully",
		CampaignID: label,
		Data:       mustJSON(stats),
	})
}

func mustJSON(v any) json.RawMessage {
	data, err := json.Marshal(v)
	if err != nil {
		return json.RawMessage(`{}`)
	}
	return data
}
