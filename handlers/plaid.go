package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"finfit/backend/middleware"
	"finfit/backend/models"
	"finfit/backend/plaid"
	"finfit/backend/storage"
)

// transactionsWindowDays is the default trailing query window.
const transactionsWindowDays = 30

var errBankNotConnected = errors.New("bank not connected")

// PlaidHandler proxies the bank-data aggregator.
type PlaidHandler struct {
	client plaid.Client
	store  storage.Store
	log    zerolog.Logger
}

func NewPlaidHandler(client plaid.Client, store storage.Store, log zerolog.Logger) *PlaidHandler {
	return &PlaidHandler{client: client, store: store, log: log}
}

// CreateLinkToken handles POST /plaid/link-token.
func (h *PlaidHandler) CreateLinkToken(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r)
	if userID == "" {
		respondError(w, http.StatusUnauthorized, "Unauthorized", "")
		return
	}

	result, err := h.client.CreateLinkToken(r.Context(), userID)
	if err != nil {
		h.log.Error().Err(err).Str("user_id", userID).Msg("error creating link token")
		respondError(w, http.StatusInternalServerError, "Failed to create link token", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, result)
}

type exchangeTokenRequest struct {
	PublicToken string `json:"public_token"`
}

type exchangeTokenResponse struct {
	Success bool   `json:"success"`
	ItemID  string `json:"item_id"`
	Message string `json:"message,omitempty"`
}

// ExchangePublicToken handles POST /plaid/exchange-token. On success the
// bank connection is persisted through the onboarding store; the store
// encrypts the access token before it reaches the durable database.
func (h *PlaidHandler) ExchangePublicToken(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r)
	if userID == "" {
		respondError(w, http.StatusUnauthorized, "Unauthorized", "")
		return
	}

	var req exchangeTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if req.PublicToken == "" {
		respondError(w, http.StatusBadRequest, "Public token is required", "")
		return
	}

	result, err := h.client.ExchangePublicToken(r.Context(), req.PublicToken)
	if err != nil {
		h.log.Error().Err(err).Str("user_id", userID).Msg("error exchanging public token")
		respondError(w, http.StatusInternalServerError, "Failed to exchange token", err.Error())
		return
	}

	update := models.OnboardingUpdate{
		UserID:         userID,
		PlaidConnected: models.Bool(true),
	}
	if result.AccessToken != "" {
		update.PlaidAccessToken = &result.AccessToken
	}
	if result.ItemID != "" {
		update.PlaidItemID = &result.ItemID
	}

	if _, err := h.store.Upsert(r.Context(), update); err != nil {
		h.log.Error().Err(err).Str("user_id", userID).Msg("error storing bank connection")
		respondError(w, http.StatusInternalServerError, "Failed to store bank connection", err.Error())
		return
	}

	h.log.Info().Str("user_id", userID).Str("item_id", result.ItemID).Msg("bank connection established")
	respondJSON(w, http.StatusOK, exchangeTokenResponse{
		Success: true,
		ItemID:  result.ItemID,
		Message: result.Message,
	})
}

// GetAccounts handles GET /plaid/accounts.
func (h *PlaidHandler) GetAccounts(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r)
	if userID == "" {
		respondError(w, http.StatusUnauthorized, "Unauthorized", "")
		return
	}

	token, err := resolveAccessToken(r.Context(), h.client, h.store, userID)
	if err != nil {
		respondTokenError(w, h.log, userID, err)
		return
	}

	accounts, err := h.client.GetAccounts(r.Context(), token)
	if err != nil {
		h.logUpstreamError(err, userID, "accounts")
		respondError(w, http.StatusInternalServerError, "Failed to fetch accounts", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string][]models.Account{"accounts": accounts})
}

// GetTransactions handles GET /plaid/transactions. Defaults to a trailing
// 30-day window; start_date/end_date query params override it.
func (h *PlaidHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserIDFromContext(r)
	if userID == "" {
		respondError(w, http.StatusUnauthorized, "Unauthorized", "")
		return
	}

	token, err := resolveAccessToken(r.Context(), h.client, h.store, userID)
	if err != nil {
		respondTokenError(w, h.log, userID, err)
		return
	}

	end := time.Now()
	start := end.AddDate(0, 0, -transactionsWindowDays)

	if v := r.URL.Query().Get("start_date"); v != "" {
		parsed, err := time.Parse(models.DateLayout, v)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid start_date", err.Error())
			return
		}
		start = parsed
	}
	if v := r.URL.Query().Get("end_date"); v != "" {
		parsed, err := time.Parse(models.DateLayout, v)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid end_date", err.Error())
			return
		}
		end = parsed
	}

	transactions, err := h.client.GetTransactions(r.Context(), token, start, end)
	if err != nil {
		h.logUpstreamError(err, userID, "transactions")
		respondError(w, http.StatusInternalServerError, "Failed to fetch transactions", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string][]models.Transaction{"transactions": transactions})
}

// respondTokenError maps resolveAccessToken failures to responses: a
// missing bank link is a client error, anything else is a store failure.
func respondTokenError(w http.ResponseWriter, log zerolog.Logger, userID string, err error) {
	if errors.Is(err, errBankNotConnected) {
		respondError(w, http.StatusBadRequest, "Bank not connected", "")
		return
	}
	log.Error().Err(err).Str("user_id", userID).Msg("error loading bank connection")
	respondError(w, http.StatusInternalServerError, "Failed to load bank connection", err.Error())
}

func (h *PlaidHandler) logUpstreamError(err error, userID, operation string) {
	var apiErr *plaid.APIError
	if errors.As(err, &apiErr) {
		h.log.Error().
			Str("user_id", userID).
			Str("operation", operation).
			Int("status", apiErr.StatusCode).
			Str("error_type", apiErr.ErrorType).
			Str("error_code", apiErr.ErrorCode).
			Str("error_message", apiErr.ErrorMessage).
			Msg("aggregator error")
		return
	}
	h.log.Error().Err(err).Str("user_id", userID).Str("operation", operation).Msg("aggregator call failed")
}

// resolveAccessToken looks up the user's stored aggregator token. Demo-mode
// clients serve fixed data, so no token is required there.
func resolveAccessToken(ctx context.Context, client plaid.Client, store storage.Store, userID string) (string, error) {
	if client.Demo() {
		return "", nil
	}
	rec, err := store.Get(ctx, userID)
	if err != nil {
		return "", err
	}
	if rec == nil || rec.PlaidAccessToken == "" {
		return "", errBankNotConnected
	}
	return rec.PlaidAccessToken, nil
}
