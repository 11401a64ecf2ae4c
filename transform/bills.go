package transform

import (
	"strings"
	"time"

	"finfit/backend/models"
)

const maxUpcomingBills = 4

var billKeywords = []string{"subscription", "utilities", "rent", "insurance"}

var billIcons = map[string]string{
	"Entertainment":  "🎬",
	"Service":        "🎵",
	"Bills":          "🏠",
	"Transportation": "🚗",
	"Healthcare":     "🏥",
	"Other":          "📱",
}

// UpcomingBills picks transactions whose categories look recurring and
// turns the first four into bills. Due dates are synthetic, staggered a
// week apart from now; there is no real due-date source in this layer.
func UpcomingBills(transactions []models.Transaction, now time.Time) []models.UpcomingBill {
	bills := make([]models.UpcomingBill, 0, maxUpcomingBills)

	for _, t := range transactions {
		if !looksRecurring(t.Category) {
			continue
		}

		category := "Other"
		if len(t.Category) > 0 {
			category = t.Category[0]
		}

		due := now.AddDate(0, 0, (len(bills)+1)*7).Format(models.DateLayout)
		bills = append(bills, models.UpcomingBill{
			ID:       t.TransactionID,
			Name:     t.Name,
			Amount:   t.Amount,
			DueDate:  due,
			Category: category,
			Icon:     billIcon(category),
		})

		if len(bills) == maxUpcomingBills {
			break
		}
	}

	return bills
}

func looksRecurring(categories []string) bool {
	for _, c := range categories {
		lower := strings.ToLower(c)
		for _, keyword := range billKeywords {
			if strings.Contains(lower, keyword) {
				return true
			}
		}
	}
	return false
}

func billIcon(category string) string {
	if icon, ok := billIcons[category]; ok {
		return icon
	}
	return billIcons["Other"]
}
