// Package metrics computes derived budget figures from raw expense data.
// Every function is pure: no state, no side effects, safe to call
// redundantly on every read.
package metrics

import (
	"kakei/internal/model"
)

// TotalSpent sums the amounts of all expenses. An empty slice sums to 0.
func TotalSpent(expenses []model.Expense) float64 {
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}

// Remaining returns budget minus spent. Negative results are
// meaningful: the week is over budget.
func Remaining(budget, spent float64) float64 {
	return budget - spent
}

// PercentageUsed returns spent as a percentage of budget, clamped to
// 100 for display. A zero budget yields 0 rather than dividing by zero.
func PercentageUsed(budget, spent float64) float64 {
	if budget == 0 {
		return 0
	}
	pct := spent / budget * 100
	if pct > 100 {
		return 100
	}
	return pct
}

// CategoryTotals sums expense amounts per category. Every category key
// is present in the result, zero-spend categories included, so callers
// can iterate without existence checks.
func CategoryTotals(expenses []model.Expense) model.CategoryTotals {
	totals := make(model.CategoryTotals, len(model.Categories))
	for _, c := range model.Categories {
		totals[c] = 0
	}
	for _, e := range expenses {
		totals[e.Category] += e.Amount
	}
	return totals
}
