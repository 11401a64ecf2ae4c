package transform

import "finfit/backend/models"

// Activity maps raw transactions to the recent-activity feed. Type follows
// the sign convention: negative amounts are income, everything else is an
// expense.
func Activity(transactions []models.Transaction) []models.ActivityItem {
	items := make([]models.ActivityItem, 0, len(transactions))

	for _, t := range transactions {
		category := "Other"
		if len(t.Category) > 0 {
			category = t.Category[0]
		}

		kind := "expense"
		if t.Amount < 0 {
			kind = "income"
		}

		items = append(items, models.ActivityItem{
			ID:          t.TransactionID,
			Description: t.Name,
			Amount:      t.Amount,
			Category:    category,
			Date:        t.Date,
			Vendor:      t.Name,
			Type:        kind,
		})
	}

	return items
}
