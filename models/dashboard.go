package models

// BalanceSummary is the headline balance card. Income and Expenses are
// coarse proxies derived from account types, not ledger figures.
type BalanceSummary struct {
	TotalBalance float64 `json:"total_balance"`
	AccountCount int     `json:"account_count"`
	Income       float64 `json:"income"`
	Expenses     float64 `json:"expenses"`
	Savings      float64 `json:"savings"`
}

// SpendingSeries holds four weekly buckets per series. Index 3 is the most
// recent week.
type SpendingSeries struct {
	Labels   []string  `json:"labels"`
	Spending []float64 `json:"spending"`
	Income   []float64 `json:"income"`
}

// BudgetCategory is a per-category spend rollup. Budget is synthesized as
// 1.2x observed spend; it is a demo ceiling, not a user-set budget.
type BudgetCategory struct {
	Name   string  `json:"name"`
	Spent  float64 `json:"spent"`
	Budget float64 `json:"budget"`
	Color  string  `json:"color"`
}

// UpcomingBill is inferred from recurring-looking transactions. DueDate is a
// synthetic placeholder, not a real due-date source.
type UpcomingBill struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	DueDate  string  `json:"due_date"`
	Category string  `json:"category"`
	Icon     string  `json:"icon"`
}

// ActivityItem is one row of the recent-activity feed.
type ActivityItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Date        string  `json:"date"`
	Vendor      string  `json:"vendor"`
	Type        string  `json:"type"`
}

// Dashboard is the composed payload for a full dashboard load.
type Dashboard struct {
	Accounts      []Account        `json:"accounts"`
	Transactions  []Transaction    `json:"transactions"`
	Balance       BalanceSummary   `json:"balance"`
	Spending      SpendingSeries   `json:"spending"`
	Categories    []BudgetCategory `json:"categories"`
	UpcomingBills []UpcomingBill   `json:"upcoming_bills"`
	Activity      []ActivityItem   `json:"activity"`
}
