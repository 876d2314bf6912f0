// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"kakei/internal/model"
)

// FormatMoney formats an amount with the configured currency symbol.
// Whole amounts drop the fraction; everything else keeps two decimals.
// e.g., 1234 -> "$1,234", 99.5 -> "$99.50", -250 -> "-$250"
func FormatMoney(symbol string, amount float64) string {
	if amount < 0 {
		return "-" + FormatMoney(symbol, -amount)
	}

	whole := int64(amount)
	frac := amount - float64(whole)

	if math.Abs(frac) < 0.005 {
		return symbol + groupThousands(whole)
	}

	cents := int64(math.Round(frac * 100))
	if cents >= 100 {
		// rounding carried into the next unit
		whole++
		cents -= 100
	}
	return fmt.Sprintf("%s%s.%02d", symbol, groupThousands(whole), cents)
}

// FormatPercent formats a 0-100 percentage with no decimals.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.0f%%", pct)
}

// FormatDate formats a date for display, e.g. "2 Jan".
func FormatDate(d model.Date) string {
	return fmt.Sprintf("%d %s", d.Day(), d.Month().String()[:3])
}

// FormatWeekRange formats a week's span, e.g. "2 Jan - 8 Jan".
func FormatWeekRange(start, end model.Date) string {
	return FormatDate(start) + " - " + FormatDate(end)
}

// groupThousands adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func groupThousands(n int64) string {
	if n < 0 {
		return "-" + groupThousands(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}
