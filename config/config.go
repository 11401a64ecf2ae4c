package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds every external boundary the server talks to. All values come
// from the environment; missing aggregator or database credentials are not
// errors, they switch the corresponding component into its fallback mode.
type Config struct {
	Port string

	PlaidClientID string
	PlaidSecret   string
	PlaidEnv      string

	SupabaseURL string
	SupabaseKey string

	EncryptionKey string

	FirebaseProjectID string
}

// Load reads configuration from the environment. A .env file is loaded first
// when present so local development matches production wiring.
func Load() *Config {
	// Best effort: production sets real environment variables.
	_ = godotenv.Load()

	cfg := &Config{
		Port:              os.Getenv("PORT"),
		PlaidClientID:     os.Getenv("PLAID_CLIENT_ID"),
		PlaidSecret:       os.Getenv("PLAID_SECRET"),
		PlaidEnv:          os.Getenv("PLAID_ENV"),
		SupabaseURL:       os.Getenv("SUPABASE_URL"),
		SupabaseKey:       os.Getenv("SUPABASE_KEY"),
		EncryptionKey:     os.Getenv("ENCRYPTION_KEY"),
		FirebaseProjectID: os.Getenv("FIREBASE_PROJECT_ID"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.PlaidEnv == "" {
		cfg.PlaidEnv = "sandbox"
	}

	return cfg
}

// PlaidConfigured reports whether aggregator credentials are present. When
// false the server runs in mock mode across all bank-data endpoints.
func (c *Config) PlaidConfigured() bool {
	return c.PlaidClientID != "" && c.PlaidSecret != ""
}

// SupabaseConfigured reports whether the durable onboarding store is
// reachable in principle. The URL must be https, matching what the hosted
// service issues.
func (c *Config) SupabaseConfigured() bool {
	return c.SupabaseURL != "" && c.SupabaseKey != "" && strings.HasPrefix(c.SupabaseURL, "https://")
}
