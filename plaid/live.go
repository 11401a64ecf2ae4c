package plaid

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"finfit/backend/models"
)

const (
	sandboxBaseURL    = "https://sandbox.plaid.com"
	productionBaseURL = "https://production.plaid.com"

	clientName = "FinFit"
)

// LiveClient calls the Plaid REST API directly. Every endpoint is a POST
// with the client credentials in the JSON body. No retries: a failed
// upstream call is a failed operation.
type LiveClient struct {
	clientID   string
	secret     string
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewLiveClient builds a client against the sandbox or production
// environment.
func NewLiveClient(clientID, secret, env string, log zerolog.Logger) *LiveClient {
	baseURL := sandboxBaseURL
	if env == "production" {
		baseURL = productionBaseURL
	}
	return &LiveClient{
		clientID:   clientID,
		secret:     secret,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        log,
	}
}

func (c *LiveClient) Demo() bool { return false }

type linkTokenRequest struct {
	ClientID     string        `json:"client_id"`
	Secret       string        `json:"secret"`
	ClientName   string        `json:"client_name"`
	User         linkTokenUser `json:"user"`
	Products     []string      `json:"products"`
	CountryCodes []string      `json:"country_codes"`
	Language     string        `json:"language"`
}

type linkTokenUser struct {
	ClientUserID string `json:"client_user_id"`
}

type linkTokenResponse struct {
	LinkToken string `json:"link_token"`
}

func (c *LiveClient) CreateLinkToken(ctx context.Context, userID string) (*LinkTokenResult, error) {
	if userID == "" {
		return nil, errors.New("user id is required")
	}

	req := linkTokenRequest{
		ClientID:     c.clientID,
		Secret:       c.secret,
		ClientName:   clientName,
		User:         linkTokenUser{ClientUserID: userID},
		Products:     []string{"transactions"},
		CountryCodes: []string{"US"},
		Language:     "en",
	}

	var resp linkTokenResponse
	if err := c.post(ctx, "/link/token/create", req, &resp); err != nil {
		return nil, err
	}
	return &LinkTokenResult{LinkToken: resp.LinkToken}, nil
}

type exchangeRequest struct {
	ClientID    string `json:"client_id"`
	Secret      string `json:"secret"`
	PublicToken string `json:"public_token"`
}

type exchangeResponse struct {
	AccessToken string `json:"access_token"`
	ItemID      string `json:"item_id"`
}

func (c *LiveClient) ExchangePublicToken(ctx context.Context, publicToken string) (*ExchangeResult, error) {
	if publicToken == "" {
		return nil, errors.New("public token is required")
	}

	req := exchangeRequest{
		ClientID:    c.clientID,
		Secret:      c.secret,
		PublicToken: publicToken,
	}

	var resp exchangeResponse
	if err := c.post(ctx, "/item/public_token/exchange", req, &resp); err != nil {
		return nil, err
	}
	return &ExchangeResult{AccessToken: resp.AccessToken, ItemID: resp.ItemID}, nil
}

type accountsRequest struct {
	ClientID    string `json:"client_id"`
	Secret      string `json:"secret"`
	AccessToken string `json:"access_token"`
}

type accountsResponse struct {
	Accounts []models.Account `json:"accounts"`
}

func (c *LiveClient) GetAccounts(ctx context.Context, accessToken string) ([]models.Account, error) {
	req := accountsRequest{
		ClientID:    c.clientID,
		Secret:      c.secret,
		AccessToken: accessToken,
	}

	var resp accountsResponse
	if err := c.post(ctx, "/accounts/get", req, &resp); err != nil {
		return nil, err
	}
	return resp.Accounts, nil
}

type transactionsRequest struct {
	ClientID    string `json:"client_id"`
	Secret      string `json:"secret"`
	AccessToken string `json:"access_token"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

type transactionsResponse struct {
	Transactions []models.Transaction `json:"transactions"`
}

func (c *LiveClient) GetTransactions(ctx context.Context, accessToken string, startDate, endDate time.Time) ([]models.Transaction, error) {
	req := transactionsRequest{
		ClientID:    c.clientID,
		Secret:      c.secret,
		AccessToken: accessToken,
		StartDate:   startDate.Format(models.DateLayout),
		EndDate:     endDate.Format(models.DateLayout),
	}

	var resp transactionsResponse
	if err := c.post(ctx, "/transactions/get", req, &resp); err != nil {
		return nil, err
	}
	return resp.Transactions, nil
}

// post sends one JSON request and decodes the response into out. Non-200
// responses are decoded into an APIError so callers can log status, code
// and message.
func (c *LiveClient) post(ctx context.Context, path string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("error encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error calling plaid API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(resp.Body)
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.Unmarshal(data, apiErr); err != nil {
			return fmt.Errorf("plaid API returned status %d: %s", resp.StatusCode, string(data))
		}
		c.log.Error().
			Str("path", path).
			Int("status", resp.StatusCode).
			Str("error_type", apiErr.ErrorType).
			Str("error_code", apiErr.ErrorCode).
			Str("error_message", apiErr.ErrorMessage).
			Msg("plaid API error")
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("error decoding response: %w", err)
	}
	return nil
}
