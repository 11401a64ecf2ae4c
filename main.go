package main

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"finfit/backend/config"
	"finfit/backend/handlers"
	"finfit/backend/logger"
	"finfit/backend/middleware"
	"finfit/backend/plaid"
	"finfit/backend/security"
	"finfit/backend/storage"
)

func main() {
	cfg := config.Load()
	log := logger.New()

	encryptionKey := cfg.EncryptionKey
	if encryptionKey == "" {
		log.Warn().Msg("ENCRYPTION_KEY not set, using a default key. This is NOT secure for production!")
		encryptionKey = "default-key-for-development-only"
	}
	security.InitializeEncryption(encryptionKey)

	// Onboarding store: durable when Supabase credentials are present,
	// in-memory otherwise. The fallback wrapper also degrades at runtime
	// when the database stops answering.
	var durable storage.Durable
	if cfg.SupabaseConfigured() {
		supabaseStore, err := storage.NewSupabaseStore(cfg.SupabaseURL, cfg.SupabaseKey, log)
		if err != nil {
			log.Warn().Err(err).Msg("failed to initialize supabase client, onboarding data will live in memory")
		} else {
			log.Info().Msg("supabase onboarding store configured")
			durable = supabaseStore
		}
	} else {
		log.Warn().Msg("supabase credentials not set, onboarding data will live in memory")
	}
	store := storage.NewFallbackStore(durable, log)

	// Aggregator client: live when Plaid credentials are present, mock
	// otherwise. Chosen once; every bank-data endpoint uses the same client.
	client := plaid.New(cfg, log)

	if err := middleware.InitializeFirebase(); err != nil {
		log.Warn().Err(err).Msg("failed to initialize Firebase, auth token verification will be disabled")
	}

	plaidHandler := handlers.NewPlaidHandler(client, store, log)
	onboardingHandler := handlers.NewOnboardingHandler(store, log)
	dashboardHandler := handlers.NewDashboardHandler(client, store, log)

	r := mux.NewRouter()
	r.Use(middleware.EnableCORS)

	// Register routes with both direct paths and /api prefix to maintain
	// compatibility with the frontend proxy.
	registerRoutes(r, plaidHandler, onboardingHandler, dashboardHandler)
	apiRouter := r.PathPrefix("/api").Subrouter()
	registerRoutes(apiRouter, plaidHandler, onboardingHandler, dashboardHandler)

	srv := &http.Server{
		Handler:      r,
		Addr:         ":" + cfg.Port,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	log.Info().Str("port", cfg.Port).Msg("starting server")
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// registerRoutes sets up all API routes.
func registerRoutes(r *mux.Router, plaidHandler *handlers.PlaidHandler, onboardingHandler *handlers.OnboardingHandler, dashboardHandler *handlers.DashboardHandler) {
	// Public routes (no auth required)
	r.HandleFunc("/health", handlers.HealthCheck).Methods("GET", "OPTIONS")

	// Create a subrouter for authenticated routes
	protectedRouter := r.PathPrefix("").Subrouter()
	protectedRouter.Use(middleware.AuthMiddleware)

	// Bank-data aggregator routes
	protectedRouter.HandleFunc("/plaid/link-token", plaidHandler.CreateLinkToken).Methods("POST")
	protectedRouter.HandleFunc("/plaid/exchange-token", plaidHandler.ExchangePublicToken).Methods("POST")
	protectedRouter.HandleFunc("/plaid/accounts", plaidHandler.GetAccounts).Methods("GET")
	protectedRouter.HandleFunc("/plaid/transactions", plaidHandler.GetTransactions).Methods("GET")

	// Onboarding routes
	protectedRouter.HandleFunc("/onboarding", onboardingHandler.GetOnboarding).Methods("GET")
	protectedRouter.HandleFunc("/onboarding", onboardingHandler.UpdateOnboarding).Methods("POST")

	// Dashboard routes
	protectedRouter.HandleFunc("/dashboard", dashboardHandler.GetDashboard).Methods("GET")
	protectedRouter.HandleFunc("/dashboard/spending-chart", dashboardHandler.SpendingChart).Methods("GET")
}
