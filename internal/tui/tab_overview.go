package tui

import (
	"fmt"
	"strings"

	"kakei/internal/cli"
	"kakei/internal/model"
	"kakei/internal/tui/components"
	"kakei/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderOverviewTab() string {
	t := theme.Active
	cw := a.contentWidth()
	sym := a.cfg.General.Currency

	week, ok := a.store.CurrentWeek()
	if !ok {
		style := lipgloss.NewStyle().Foreground(t.TextMuted).Padding(1, 2)
		return style.Render("No active week.\nPress n to start one.")
	}

	spent := a.store.TotalSpent()
	remaining := a.store.Remaining()
	pct := a.store.PercentageUsed()
	totals := a.store.CategoryTotals()
	limits := a.store.CategoryLimits()
	warnings := a.store.LimitWarnings()

	var b strings.Builder

	weekStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	b.WriteString("  ")
	b.WriteString(weekStyle.Render("Week " + cli.FormatWeekRange(week.StartDate, week.EndDate)))
	b.WriteString("\n\n")

	// Row 1: metric cards
	cards := []struct{ Label, Value, Note string }{
		{"Budget", cli.FormatMoney(sym, week.InitialBudget), ""},
		{"Spent", cli.FormatMoney(sym, spent), fmt.Sprintf("%d expenses", len(week.Expenses))},
		{"Remaining", cli.FormatMoney(sym, remaining), remainingNote(remaining)},
	}
	b.WriteString(components.MetricCardRow(cards, cw))
	b.WriteString("\n")

	// Row 2: overall utilization
	barW := cw - 22
	if barW < 10 {
		barW = 10
	}
	b.WriteString(components.ContentCard("Budget used",
		components.BudgetBar("", pct, 0, barW), cw))
	b.WriteString("\n")

	// Row 3: per-category bars against limits (or against the whole
	// budget when no limit is set)
	var catLines []string
	for _, c := range model.Categories {
		denominator := week.InitialBudget
		if limit, ok := limits[c]; ok && limit > 0 {
			denominator = limit
		}
		catPct := 0.0
		if denominator > 0 {
			catPct = totals[c] / denominator * 100
		}
		line := components.BudgetBar(c.Kanji()+" "+c.Label(), catPct, 14, barW-14) +
			"  " + cli.FormatMoney(sym, totals[c])
		catLines = append(catLines, line)
	}
	b.WriteString(components.ContentCard("By category", strings.Join(catLines, "\n"), cw))
	b.WriteString("\n")

	// Warnings, worst first
	if len(warnings) > 0 {
		var warnLines []string
		for _, w := range warnings {
			style := lipgloss.NewStyle().Foreground(t.Orange)
			marker := "▲"
			if w.Exceeded() {
				style = lipgloss.NewStyle().Foreground(t.Red).Bold(true)
				marker = "■"
			}
			warnLines = append(warnLines, style.Render(fmt.Sprintf("%s %s at %s of its %s limit",
				marker, w.Category.Label(), cli.FormatPercent(w.Percentage), cli.FormatMoney(sym, w.Limit))))
		}
		b.WriteString(components.ContentCard("Limit warnings", strings.Join(warnLines, "\n"), cw))
		b.WriteString("\n")
	}

	return b.String()
}

func remainingNote(remaining float64) string {
	if remaining < 0 {
		return "over budget"
	}
	return ""
}
