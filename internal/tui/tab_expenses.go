package tui

import (
	"fmt"
	"strings"

	"kakei/internal/cli"
	"kakei/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderExpensesTab() string {
	t := theme.Active
	sym := a.cfg.General.Currency

	week, ok := a.store.CurrentWeek()
	if !ok {
		style := lipgloss.NewStyle().Foreground(t.TextMuted).Padding(1, 2)
		return style.Render("No active week.\nPress n on the Weeks tab to start one.")
	}
	if len(week.Expenses) == 0 {
		style := lipgloss.NewStyle().Foreground(t.TextMuted).Padding(1, 2)
		return style.Render("No expenses this week.\nPress a to add one.")
	}

	selectedStyle := lipgloss.NewStyle().
		Foreground(t.TextPrimary).
		Background(t.SurfaceHover).
		Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	// Visible window around the cursor
	visible := a.height - 10
	if visible < 3 {
		visible = 3
	}
	start := 0
	if a.expCursor >= visible {
		start = a.expCursor - visible + 1
	}
	end := start + visible
	if end > len(week.Expenses) {
		end = len(week.Expenses)
	}

	var b strings.Builder
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  %d expenses · %s spent",
		len(week.Expenses), cli.FormatMoney(sym, a.store.TotalSpent()))))
	b.WriteString("\n\n")

	for i := start; i < end; i++ {
		e := week.Expenses[i]
		desc := e.Description
		if desc == "" {
			desc = "—"
		}
		line := fmt.Sprintf(" %-7s %s %-12s %-24s %10s ",
			cli.FormatDate(e.Date),
			e.Category.Kanji(),
			e.Category.Label(),
			truncate(desc, 24),
			cli.FormatMoney(sym, e.Amount),
		)
		if i == a.expCursor {
			b.WriteString(selectedStyle.Render("▸" + line))
		} else {
			b.WriteString(rowStyle.Render(" " + line))
		}
		b.WriteString("\n")
	}

	if end < len(week.Expenses) {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("  … %d more", len(week.Expenses)-end)))
		b.WriteString("\n")
	}

	return b.String()
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
