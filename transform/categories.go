package transform

import (
	"math"
	"sort"
	"strings"

	"finfit/backend/models"
)

// Ordered so matching is deterministic when a raw category could contain
// more than one key.
var displayCategories = []struct {
	match   string
	display string
}{
	{"Food and Drink", "Food"},
	{"Shops", "Shopping"},
	{"Transportation", "Transportation"},
	{"Entertainment", "Entertainment"},
	{"Travel", "Travel"},
	{"Service", "Subscriptions"},
	{"Healthcare", "Healthcare"},
	{"Bills", "Bills"},
	{"Transfer", "Transfer"},
	{"Deposit", "Income"},
}

var categoryColors = map[string]string{
	"Food":           "#FF6B6B",
	"Shopping":       "#4ECDC4",
	"Transportation": "#45B7D1",
	"Subscriptions":  "#96CEB4",
	"Travel":         "#FFEAA7",
	"Entertainment":  "#DDA0DD",
	"Healthcare":     "#FFB6C1",
	"Bills":          "#FFA07A",
	"Other":          "#D3D3D3",
}

// CategoryBreakdown totals expense transactions per display category. The
// budget ceiling is synthesized as 1.2x observed spend. Output is sorted by
// spend (then name) so shuffled input produces identical results.
func CategoryBreakdown(transactions []models.Transaction) []models.BudgetCategory {
	totals := make(map[string]float64)

	for _, t := range transactions {
		if t.Amount <= 0 {
			continue
		}
		raw := "Other"
		if len(t.Category) > 0 {
			raw = t.Category[0]
		}
		totals[displayCategory(raw)] += t.Amount
	}

	categories := make([]models.BudgetCategory, 0, len(totals))
	for name, spent := range totals {
		categories = append(categories, models.BudgetCategory{
			Name:   name,
			Spent:  math.Round(spent),
			Budget: math.Round(spent * 1.2),
			Color:  categoryColor(name),
		})
	}

	sort.Slice(categories, func(i, j int) bool {
		if categories[i].Spent != categories[j].Spent {
			return categories[i].Spent > categories[j].Spent
		}
		return categories[i].Name < categories[j].Name
	})

	return categories
}

func displayCategory(raw string) string {
	for _, c := range displayCategories {
		if strings.Contains(raw, c.match) {
			return c.display
		}
	}
	return "Other"
}

func categoryColor(name string) string {
	if color, ok := categoryColors[name]; ok {
		return color
	}
	return categoryColors["Other"]
}
