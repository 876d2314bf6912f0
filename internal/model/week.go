package model

import "time"

// Expense is a single spending event inside a week. Expenses are
// immutable after creation; the only lifecycle transition is removal.
type Expense struct {
	ID          string    `json:"id"`
	Amount      float64   `json:"amount"`
	Category    Category  `json:"category"`
	Description string    `json:"description,omitempty"`
	Date        Date      `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CategoryLimits maps a category to an optional positive spending
// ceiling. A missing entry (or one ≤ 0) means the category has no limit.
type CategoryLimits map[Category]float64

// Clone returns an independent copy of the limits map.
func (l CategoryLimits) Clone() CategoryLimits {
	if l == nil {
		return nil
	}
	out := make(CategoryLimits, len(l))
	for c, v := range l {
		out[c] = v
	}
	return out
}

// CategoryTotals maps every category to its summed spend. All five
// keys are always present, zero-valued categories included.
type CategoryTotals map[Category]float64

// LimitWarning reports a category whose spend has reached 80% or more
// of its configured limit.
type LimitWarning struct {
	Category   Category
	Limit      float64
	Spent      float64
	Percentage float64
}

// Exceeded reports whether the limit itself has been passed, as
// opposed to merely approached.
func (w LimitWarning) Exceeded() bool {
	return w.Percentage >= 100
}

// Week is the aggregation root: one budgeting period with its own
// budget, expenses, and optional per-category limits. StartDate and
// EndDate span Monday through Sunday inclusive and are fixed at
// creation. Expenses are ordered newest-first by insertion.
type Week struct {
	ID             string         `json:"id"`
	StartDate      Date           `json:"startDate"`
	EndDate        Date           `json:"endDate"`
	InitialBudget  float64        `json:"initialBudget"`
	Expenses       []Expense      `json:"expenses"`
	CategoryLimits CategoryLimits `json:"categoryLimits,omitempty"`
}

// AppState is the persisted root: all weeks newest-first plus the id
// of the currently selected week. A CurrentWeekID that matches no week
// means no week is selected.
type AppState struct {
	Weeks         []Week  `json:"weeks"`
	CurrentWeekID *string `json:"currentWeekId"`
}
