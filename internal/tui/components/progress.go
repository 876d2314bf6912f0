package components

import (
	"fmt"

	"kakei/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ColorForPct returns green/yellow/red for a 0-100 budget percentage,
// matching the banding used everywhere amounts are displayed.
func ColorForPct(pct float64) string {
	t := theme.Active
	switch {
	case pct <= 50:
		return string(t.Green)
	case pct <= 80:
		return string(t.Yellow)
	default:
		return string(t.Red)
	}
}

// BudgetBar renders a labeled budget utilization bar. pct is 0-100 and
// may exceed 100; the bar saturates but the printed percentage does not.
func BudgetBar(label string, pct float64, labelW, barWidth int) string {
	t := theme.Active

	shown := pct
	if shown < 0 {
		shown = 0
	}
	frac := shown / 100
	if frac > 1 {
		frac = 1
	}

	bar := progress.New(
		progress.WithSolidFill(ColorForPct(pct)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	pctStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorForPct(pct))).Bold(true)

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		" " +
		bar.ViewAs(frac) +
		" " +
		pctStyle.Render(fmt.Sprintf("%3.0f%%", shown))
}
