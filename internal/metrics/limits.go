package metrics

import (
	"sort"

	"kakei/internal/model"
)

// WarnThreshold is the percentage of a category limit at which a
// warning is emitted.
const WarnThreshold = 80

// EvaluateLimits returns a warning for every category whose spend has
// reached WarnThreshold percent of its configured limit. Categories
// without a positive limit never warn. The result is sorted by
// descending percentage so the worst overage comes first; callers
// derive the near-limit vs exceeded band by comparing against 100.
func EvaluateLimits(limits model.CategoryLimits, totals model.CategoryTotals) []model.LimitWarning {
	var warnings []model.LimitWarning
	for _, c := range model.Categories {
		limit, ok := limits[c]
		if !ok || limit <= 0 {
			continue
		}
		spent := totals[c]
		pct := spent / limit * 100
		if pct < WarnThreshold {
			continue
		}
		warnings = append(warnings, model.LimitWarning{
			Category:   c,
			Limit:      limit,
			Spent:      spent,
			Percentage: pct,
		})
	}

	sort.Slice(warnings, func(i, j int) bool {
		return warnings[i].Percentage > warnings[j].Percentage
	})

	return warnings
}
