package tui

import (
	"fmt"
	"strings"

	"kakei/internal/cli"
	"kakei/internal/metrics"
	"kakei/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderWeeksTab() string {
	t := theme.Active
	sym := a.cfg.General.Currency

	weeks := a.store.Weeks()
	if len(weeks) == 0 {
		style := lipgloss.NewStyle().Foreground(t.TextMuted).Padding(1, 2)
		return style.Render("No weeks yet.\nPress n to start one.")
	}

	currentID, _ := a.store.CurrentWeekID()

	selectedStyle := lipgloss.NewStyle().
		Foreground(t.TextPrimary).
		Background(t.SurfaceHover).
		Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	currentStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	var b strings.Builder
	for i, w := range weeks {
		spent := metrics.TotalSpent(w.Expenses)
		marker := "  "
		if w.ID == currentID {
			marker = currentStyle.Render("* ")
		}
		line := fmt.Sprintf("%s%-17s  budget %-10s  spent %-10s  %d expenses",
			marker,
			cli.FormatWeekRange(w.StartDate, w.EndDate),
			cli.FormatMoney(sym, w.InitialBudget),
			cli.FormatMoney(sym, spent),
			len(w.Expenses),
		)
		if i == a.weekCursor {
			b.WriteString(selectedStyle.Render("▸ " + line))
		} else {
			b.WriteString(rowStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	return b.String()
}
