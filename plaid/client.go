package plaid

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"finfit/backend/config"
	"finfit/backend/models"
)

// Client is the bank-data aggregator boundary. The live implementation
// talks to the Plaid API; the mock implementation serves fixed sample data
// when credentials are absent. The choice is made once at startup.
type Client interface {
	CreateLinkToken(ctx context.Context, userID string) (*LinkTokenResult, error)
	ExchangePublicToken(ctx context.Context, publicToken string) (*ExchangeResult, error)
	GetAccounts(ctx context.Context, accessToken string) ([]models.Account, error)
	GetTransactions(ctx context.Context, accessToken string, startDate, endDate time.Time) ([]models.Transaction, error)

	// Demo reports whether this client serves mock data. Handlers skip
	// access-token resolution in demo mode.
	Demo() bool
}

// LinkTokenResult is the response of CreateLinkToken. Message is set in
// demo mode so the UI can signal that no real bank link will happen.
type LinkTokenResult struct {
	LinkToken string `json:"link_token"`
	Message   string `json:"message,omitempty"`
}

// ExchangeResult is the response of ExchangePublicToken. AccessToken is
// never serialized; it goes to the onboarding store only.
type ExchangeResult struct {
	AccessToken string `json:"-"`
	ItemID      string `json:"item_id"`
	Message     string `json:"message,omitempty"`
}

// New selects the aggregator client for this process. Missing credentials
// are a designed fallback, not an error.
func New(cfg *config.Config, log zerolog.Logger) Client {
	if cfg.PlaidConfigured() {
		log.Info().Str("env", cfg.PlaidEnv).Msg("plaid client configured")
		return NewLiveClient(cfg.PlaidClientID, cfg.PlaidSecret, cfg.PlaidEnv, log)
	}
	log.Info().Msg("plaid credentials not set, serving mock bank data")
	return NewMockClient()
}
