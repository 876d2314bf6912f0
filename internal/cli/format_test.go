package cli

import (
	"testing"
	"time"

	"kakei/internal/model"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"whole small", 250, "$250"},
		{"whole with grouping", 1234, "$1,234"},
		{"large grouping", 1234567, "$1,234,567"},
		{"fraction keeps two decimals", 99.5, "$99.50"},
		{"fraction with grouping", 1234.56, "$1,234.56"},
		{"zero", 0, "$0"},
		{"negative", -250, "-$250"},
		{"negative fraction", -10.25, "-$10.25"},
		{"rounding carries into whole", 99.999, "$100.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatMoney("$", tt.amount); got != tt.want {
				t.Fatalf("FormatMoney($, %v) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}

func TestFormatMoneyOtherSymbol(t *testing.T) {
	if got := FormatMoney("€", 1500.5); got != "€1,500.50" {
		t.Fatalf("got %q, want €1,500.50", got)
	}
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		pct  float64
		want string
	}{
		{0, "0%"},
		{75, "75%"},
		{75.4, "75%"},
		{75.5, "76%"},
		{100, "100%"},
	}
	for _, tt := range tests {
		if got := FormatPercent(tt.pct); got != tt.want {
			t.Fatalf("FormatPercent(%v) = %q, want %q", tt.pct, got, tt.want)
		}
	}
}

func TestFormatWeekRange(t *testing.T) {
	start := model.NewDate(2026, time.January, 2)
	end := start.AddDays(6)
	if got := FormatWeekRange(start, end); got != "2 Jan - 8 Jan" {
		t.Fatalf("FormatWeekRange = %q, want \"2 Jan - 8 Jan\"", got)
	}
}

func TestGroupThousands(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{12345, "12,345"},
		{1234567, "1,234,567"},
	}
	for _, tt := range tests {
		if got := groupThousands(tt.in); got != tt.want {
			t.Fatalf("groupThousands(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
