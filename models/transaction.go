package models

// DateLayout is the calendar-day format the aggregator uses for transaction
// and bill dates.
const DateLayout = "2006-01-02"

// Transaction is the aggregator's transaction record. Sign convention is the
// aggregator's throughout the codebase: positive = money out (expense),
// negative = money in (income).
type Transaction struct {
	TransactionID string   `json:"transaction_id"`
	AccountID     string   `json:"account_id"`
	Name          string   `json:"name"`
	MerchantName  string   `json:"merchant_name,omitempty"`
	Amount        float64  `json:"amount"`
	Date          string   `json:"date"`
	Category      []string `json:"category,omitempty"`
	Pending       bool     `json:"pending,omitempty"`
}
