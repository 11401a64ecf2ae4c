package plaid

import (
	"context"
	"errors"
	"time"

	"finfit/backend/models"
)

// Sentinel values the mock client hands out. The frontend's link widget
// recognizes the mock link token and skips the real bank-link flow.
const (
	MockLinkToken = "mock_link_token_for_development"
	MockItemID    = "mock_item_id"
)

// MockClient serves a fixed sample dataset. It is selected when aggregator
// credentials are absent; serving it is designed behavior, never an error.
type MockClient struct {
	now func() time.Time
}

func NewMockClient() *MockClient {
	return &MockClient{now: time.Now}
}

func (c *MockClient) Demo() bool { return true }

func (c *MockClient) CreateLinkToken(ctx context.Context, userID string) (*LinkTokenResult, error) {
	if userID == "" {
		return nil, errors.New("user id is required")
	}
	return &LinkTokenResult{
		LinkToken: MockLinkToken,
		Message:   "Using mock token (Plaid not configured)",
	}, nil
}

func (c *MockClient) ExchangePublicToken(ctx context.Context, publicToken string) (*ExchangeResult, error) {
	if publicToken == "" {
		return nil, errors.New("public token is required")
	}
	return &ExchangeResult{
		ItemID:  MockItemID,
		Message: "Bank connection simulated (Plaid not configured)",
	}, nil
}

// GetAccounts ignores the access token; in mock mode no bank is linked.
func (c *MockClient) GetAccounts(ctx context.Context, accessToken string) ([]models.Account, error) {
	return []models.Account{
		{
			AccountID: "mock_checking_account",
			Name:      "Chase Checking",
			Type:      "depository",
			Subtype:   "checking",
			Balances: models.Balances{
				Available:       models.Float(2847.35),
				Current:         models.Float(2847.35),
				ISOCurrencyCode: "USD",
			},
		},
		{
			AccountID: "mock_savings_account",
			Name:      "Chase Savings",
			Type:      "depository",
			Subtype:   "savings",
			Balances: models.Balances{
				Available:       models.Float(15420.75),
				Current:         models.Float(15420.75),
				ISOCurrencyCode: "USD",
			},
		},
		{
			AccountID: "mock_credit_account",
			Name:      "Chase Freedom Credit Card",
			Type:      "credit",
			Subtype:   "credit card",
			Balances: models.Balances{
				Available:       models.Float(4762.50),
				Current:         models.Float(-1237.50),
				ISOCurrencyCode: "USD",
			},
		},
	}, nil
}

// GetTransactions returns a week of sample activity dated relative to now.
// Amounts follow the aggregator sign convention: positive = expense,
// negative = income.
func (c *MockClient) GetTransactions(ctx context.Context, accessToken string, startDate, endDate time.Time) ([]models.Transaction, error) {
	day := func(daysAgo int) string {
		return c.now().AddDate(0, 0, -daysAgo).Format(models.DateLayout)
	}

	return []models.Transaction{
		{
			TransactionID: "mock_transaction_1",
			AccountID:     "mock_checking_account",
			Name:          "Starbucks",
			Amount:        4.95,
			Date:          day(0),
			Category:      []string{"Food and Drink", "Coffee"},
		},
		{
			TransactionID: "mock_transaction_2",
			AccountID:     "mock_checking_account",
			Name:          "Whole Foods Market",
			Amount:        127.84,
			Date:          day(1),
			Category:      []string{"Shops", "Groceries"},
		},
		{
			TransactionID: "mock_transaction_3",
			AccountID:     "mock_checking_account",
			Name:          "Shell Gas Station",
			Amount:        52.30,
			Date:          day(2),
			Category:      []string{"Transportation", "Gas"},
		},
		{
			TransactionID: "mock_transaction_4",
			AccountID:     "mock_checking_account",
			Name:          "Netflix",
			Amount:        15.99,
			Date:          day(3),
			Category:      []string{"Entertainment", "Streaming"},
		},
		{
			TransactionID: "mock_transaction_5",
			AccountID:     "mock_checking_account",
			Name:          "Direct Deposit - Payroll",
			Amount:        -3250.00,
			Date:          day(4),
			Category:      []string{"Deposit", "Payroll"},
		},
		{
			TransactionID: "mock_transaction_6",
			AccountID:     "mock_credit_account",
			Name:          "Amazon Prime",
			Amount:        14.99,
			Date:          day(5),
			Category:      []string{"Shops", "Online"},
		},
		{
			TransactionID: "mock_transaction_7",
			AccountID:     "mock_credit_account",
			Name:          "Uber",
			Amount:        23.45,
			Date:          day(6),
			Category:      []string{"Transportation", "Ride Share"},
		},
	}, nil
}
