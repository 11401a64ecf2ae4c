package transform

import (
	"time"

	"finfit/backend/models"
)

const weeksTracked = 4

// WeeklySeries buckets transactions into four trailing weeks. Index 3 is
// the most recent week; anything 28 days or older is dropped. Positive
// amounts accumulate into spending, negative amounts (income) into income
// as absolute values.
func WeeklySeries(transactions []models.Transaction, now time.Time) models.SpendingSeries {
	spending := make([]float64, weeksTracked)
	income := make([]float64, weeksTracked)

	for _, t := range transactions {
		day, err := time.Parse(models.DateLayout, t.Date)
		if err != nil {
			continue
		}
		daysAgo := int(now.Sub(day).Hours() / 24)
		if daysAgo < 0 {
			continue
		}
		week := daysAgo / 7
		if week >= weeksTracked {
			continue
		}

		idx := weeksTracked - 1 - week
		if t.Amount > 0 {
			spending[idx] += t.Amount
		} else {
			income[idx] += -t.Amount
		}
	}

	return models.SpendingSeries{
		Labels:   []string{"Week 1", "Week 2", "Week 3", "Week 4"},
		Spending: spending,
		Income:   income,
	}
}
