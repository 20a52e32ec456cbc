package httpadapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"seva-donate/internal/core/port"
)

// handleListCampaigns returns every campaign. An empty store is
// bootstrapped with the default record before responding, so this
// endpoint never returns an empty collection.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.campaigns.List(r.Context())
	if err != nil {
		h.logger.Error("list campaigns error", slog.Any("error", err))
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve campaigns")
		return
	}
	h.respond(w, http.StatusOK, envelope{Success: true, Data: campaigns})
}

// handleGetCampaign returns a single campaign by its {id} path
// parameter. Unknown ids yield HTTP 404.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	campaign, err := h.campaigns.Get(r.Context(), id)
	switch {
	case errors.Is(err, port.ErrCampaignNotFound):
		h.respondError(w, http.StatusNotFound, "Campaign not found")
		return
	case err != nil:
		h.logger.Error("get campaign error", slog.String("id", id), slog.Any("error", err))
		h.respondError(w, http.StatusInternalServerError, "Failed to retrieve campaign")
		return
	}
	h.respond(w, http.StatusOK, envelope{Success: true, Data: campaign})
}

// handleReplaceCampaigns overwrites the whole collection with the
// `campaigns` object from the request body. A missing field or a
// payload that is not an object yields HTTP 400 and leaves the store
// untouched.
func (h *Handler) handleReplaceCampaigns(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Campaigns json.RawMessage `json:"campaigns"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if len(body.Campaigns) == 0 || bytes.Equal(bytes.TrimSpace(body.Campaigns), []byte("null")) {
		h.respondError(w, http.StatusBadRequest, "Invalid campaigns data")
		return
	}

	campaigns, err := h.campaigns.Replace(r.Context(), body.Campaigns)
	switch {
	case errors.Is(err, port.ErrInvalidCollection):
		h.respondError(w, http.StatusBadRequest, "Invalid campaigns data")
		return
	case err != nil:
		h.logger.Error("replace campaigns error", slog.Any("error", err))
		h.respondError(w, http.StatusInternalServerError, "Failed to save campaigns")
		return
	}
	h.respond(w, http.StatusOK, envelope{
		Success: true,
		Data:    campaigns,
		Message: "Campaigns saved successfully",
	})
}

// handleUpsertCampaign creates or updates a single campaign from a
// `{campaignId, campaign}` body. Both fields are required.
func (h *Handler) handleUpsertCampaign(w http.ResponseWriter, r *http.Request) {
	var body struct {
		CampaignID string          `json:"campaignId"`
		Campaign   json.RawMessage `json:"campaign"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if body.CampaignID == "" || len(body.Campaign) == 0 {
		h.respondError(w, http.StatusBadRequest, "Campaign ID and campaign data are required")
		return
	}

	campaign, err := h.campaigns.Upsert(r.Context(), body.CampaignID, body.Campaign)
	switch {
	case errors.Is(err, port.ErrInvalidCampaign):
		h.respondError(w, http.StatusBadRequest, "Invalid campaign data")
		return
	case err != nil:
		h.logger.Error("upsert campaign error",
			slog.String("id", body.CampaignID), slog.Any("error", err))
		h.respondError(w, http.StatusInternalServerError, "Failed to update campaign")
		return
	}
	h.respond(w, http.StatusOK, envelope{
		Success: true,
		Data:    campaign,
		Message: "Campaign updated successfully",
	})
}

// handleDeleteCampaign removes the campaign named by the `id` query
// parameter. A missing parameter is HTTP 400, an unknown id HTTP 404.
func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		h.respondError(w, http.StatusBadRequest, "Campaign ID is required")
		return
	}

	err := h.campaigns.Remove(r.Context(), id)
	switch {
	case errors.Is(err, port.ErrCampaignNotFound):
		h.respondError(w, http.StatusNotFound, "Campaign not found")
		return
	case err != nil:
		h.logger.Error("delete campaign error", slog.String("id", id), slog.Any("error", err))
		h.respondError(w, http.StatusInternalServerError, "Failed to delete campaign")
		return
	}
	h.respond(w, http.StatusOK, envelope{Success: true, Message: "Campaign deleted successfully"})
}
