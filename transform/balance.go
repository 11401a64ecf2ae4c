// Package transform shapes raw aggregator records into the view-models the
// dashboard renders. Every function is pure: same inputs and same "now"
// produce the same output.
package transform

import (
	"math"

	"finfit/backend/models"
)

// BalanceSummary rolls account balances up into the headline figures.
// Income and expenses are proxies derived from account types (checking +
// savings, and credit balances respectively), not ledger computations.
func BalanceSummary(accounts []models.Account) models.BalanceSummary {
	var total, checking, savings, credit float64

	for _, a := range accounts {
		current := a.Balances.CurrentValue()
		total += current

		if a.Subtype == "checking" {
			checking += current
		}
		if a.Subtype == "savings" {
			savings += current
		}
		if a.Type == "credit" {
			credit += current
		}
	}

	return models.BalanceSummary{
		TotalBalance: total,
		AccountCount: len(accounts),
		Income:       checking + savings,
		Expenses:     math.Abs(credit),
		Savings:      savings,
	}
}
