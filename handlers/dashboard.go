package handlers

import (
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"finfit/backend/charts"
	"finfit/backend/middleware"
	"finfit/backend/models"
	"finfit/backend/plaid"
	"finfit/backend/storage"
	"finfit/backend/transform"
)

// DashboardHandler composes the full dashboard payload from raw aggregator
// data and the pure transform layer.
type DashboardHandler struct {
	client plaid.Client
	store  storage.Store
	charts *charts.Generator
	log    zerolog.Logger
	now    func() time.Time
}

func NewDashboardHandler(client plaid.Client, store storage.Store, log zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{
		client: client,
		store:  store,
		charts: charts.NewGenerator(),
		log:    log,
		now:    time.Now,
	}
}

// GetDashboard handles GET /dashboard. Accounts and transactions are the
// only two network calls and they run concurrently.
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
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

	now := h.now()
	start := now.AddDate(0, 0, -transactionsWindowDays)

	var (
		accounts     []models.Account
		transactions []models.Transaction
		accountsErr  error
		txErr        error
		wg           sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		accounts, accountsErr = h.client.GetAccounts(r.Context(), token)
	}()
	go func() {
		defer wg.Done()
		transactions, txErr = h.client.GetTransactions(r.Context(), token, start, now)
	}()
	wg.Wait()

	if accountsErr != nil {
		h.log.Error().Err(accountsErr).Str("user_id", userID).Msg("error fetching accounts for dashboard")
		respondError(w, http.StatusInternalServerError, "Failed to fetch accounts", accountsErr.Error())
		return
	}
	if txErr != nil {
		h.log.Error().Err(txErr).Str("user_id", userID).Msg("error fetching transactions for dashboard")
		respondError(w, http.StatusInternalServerError, "Failed to fetch transactions", txErr.Error())
		return
	}

	dashboard := models.Dashboard{
		Accounts:      accounts,
		Transactions:  transactions,
		Balance:       transform.BalanceSummary(accounts),
		Spending:      transform.WeeklySeries(transactions, now),
		Categories:    transform.CategoryBreakdown(transactions),
		UpcomingBills: transform.UpcomingBills(transactions, now),
		Activity:      transform.Activity(transactions),
	}

	respondJSON(w, http.StatusOK, dashboard)
}

// SpendingChart handles GET /dashboard/spending-chart and renders the
// weekly series as a PNG.
func (h *DashboardHandler) SpendingChart(w http.ResponseWriter, r *http.Request) {
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

	now := h.now()
	transactions, err := h.client.GetTransactions(r.Context(), token, now.AddDate(0, 0, -transactionsWindowDays), now)
	if err != nil {
		h.log.Error().Err(err).Str("user_id", userID).Msg("error fetching transactions for chart")
		respondError(w, http.StatusInternalServerError, "Failed to fetch transactions", err.Error())
		return
	}

	png, err := h.charts.SpendingChart(transform.WeeklySeries(transactions, now))
	if err != nil {
		h.log.Error().Err(err).Str("user_id", userID).Msg("error rendering spending chart")
		respondError(w, http.StatusInternalServerError, "Failed to render chart", err.Error())
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
