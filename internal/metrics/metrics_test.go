package metrics

import (
	"math"
	"testing"
	"time"

	"kakei/internal/model"
)

func expense(amount float64, category model.Category) model.Expense {
	return model.Expense{
		ID:        "e-" + category.Label(),
		Amount:    amount,
		Category:  category,
		Date:      model.NewDate(2026, time.March, 2),
		CreatedAt: time.Date(2026, time.March, 2, 12, 0, 0, 0, time.UTC),
	}
}

func TestTotalSpent(t *testing.T) {
	if got := TotalSpent(nil); got != 0 {
		t.Fatalf("TotalSpent(nil) = %v, want 0", got)
	}

	expenses := []model.Expense{
		expense(300, model.CategoryFood),
		expense(450, model.CategoryTransport),
		expense(12.5, model.CategoryLeisure),
	}
	if got := TotalSpent(expenses); math.Abs(got-762.5) > 1e-9 {
		t.Fatalf("TotalSpent = %v, want 762.5", got)
	}
}

func TestRemaining(t *testing.T) {
	tests := []struct {
		budget, spent, want float64
	}{
		{1000, 750, 250},
		{100, 0, 100},
		{100, 150, -50}, // over budget stays representable
		{0, 0, 0},
	}
	for _, tt := range tests {
		if got := Remaining(tt.budget, tt.spent); got != tt.want {
			t.Fatalf("Remaining(%v, %v) = %v, want %v", tt.budget, tt.spent, got, tt.want)
		}
	}
}

func TestPercentageUsed(t *testing.T) {
	tests := []struct {
		name                string
		budget, spent, want float64
	}{
		{"three quarters", 1000, 750, 75},
		{"exactly full", 200, 200, 100},
		{"clamped above 100", 200, 500, 100},
		{"zero budget yields zero", 0, 500, 0},
		{"nothing spent", 800, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PercentageUsed(tt.budget, tt.spent)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("PercentageUsed(%v, %v) = %v, want %v", tt.budget, tt.spent, got, tt.want)
			}
			if got < 0 || got > 100 {
				t.Fatalf("PercentageUsed(%v, %v) = %v, outside [0, 100]", tt.budget, tt.spent, got)
			}
		})
	}
}

func TestCategoryTotalsAllKeysPresent(t *testing.T) {
	totals := CategoryTotals(nil)
	if len(totals) != len(model.Categories) {
		t.Fatalf("CategoryTotals(nil) has %d keys, want %d", len(totals), len(model.Categories))
	}
	for _, c := range model.Categories {
		v, ok := totals[c]
		if !ok {
			t.Fatalf("category %s missing from totals", c)
		}
		if v != 0 {
			t.Fatalf("category %s = %v, want 0", c, v)
		}
	}
}

func TestCategoryTotalsScenario(t *testing.T) {
	expenses := []model.Expense{
		expense(300, model.CategoryFood),
		expense(450, model.CategoryTransport),
	}

	totals := CategoryTotals(expenses)
	want := map[model.Category]float64{
		model.CategoryFood:      300,
		model.CategoryTransport: 450,
		model.CategoryEducation: 0,
		model.CategoryLeisure:   0,
		model.CategoryEmergency: 0,
	}
	for c, w := range want {
		if totals[c] != w {
			t.Fatalf("totals[%s] = %v, want %v", c, totals[c], w)
		}
	}

	// The per-category sums account for every expense
	var sum float64
	for _, v := range totals {
		sum += v
	}
	if math.Abs(sum-TotalSpent(expenses)) > 1e-9 {
		t.Fatalf("sum of category totals = %v, want %v", sum, TotalSpent(expenses))
	}
}
