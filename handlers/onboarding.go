package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"finfit/backend/middleware"
	"finfit/backend/models"
	"finfit/backend/storage"
)

// OnboardingHandler reads and writes the per-user onboarding record.
type OnboardingHandler struct {
	store storage.Store
	log   zerolog.Logger
}

func NewOnboardingHandler(store storage.Store, log zerolog.Logger) *OnboardingHandler {
	return &OnboardingHandler{store: store, log: log}
}

// GetOnboarding handles GET /onboarding. The access token is redacted; it
// is only ever used server-side.
func (h *OnboardingHandler) GetOnboarding(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r)
	if userID == "" {
		respondError(w, http.StatusUnauthorized, "Unauthorized", "")
		return
	}

	rec, err := h.store.Get(r.Context(), userID)
	if err != nil {
		h.log.Error().Err(err).Str("user_id", userID).Msg("error reading onboarding record")
		respondError(w, http.StatusInternalServerError, "Failed to load onboarding data", err.Error())
		return
	}
	if rec == nil {
		respondJSON(w, http.StatusOK, struct{}{})
		return
	}

	rec.PlaidAccessToken = ""
	respondJSON(w, http.StatusOK, rec)
}

// UpdateOnboarding handles POST /onboarding. Writes are partial: only the
// provided fields are merged into the record. The access token cannot be
// set through this endpoint; it is written by the token exchange only.
func (h *OnboardingHandler) UpdateOnboarding(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r)
	if userID == "" {
		respondError(w, http.StatusUnauthorized, "Unauthorized", "")
		return
	}

	var update models.OnboardingUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	update.UserID = userID
	update.PlaidAccessToken = nil
	update.PlaidItemID = nil

	rec, err := h.store.Upsert(r.Context(), update)
	if err != nil {
		h.log.Error().Err(err).Str("user_id", userID).Msg("error upserting onboarding record")
		respondError(w, http.StatusInternalServerError, "Failed to save onboarding data", err.Error())
		return
	}

	rec.PlaidAccessToken = ""
	respondJSON(w, http.StatusOK, rec)
}
