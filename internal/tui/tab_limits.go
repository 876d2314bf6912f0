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

func (a App) renderLimitsTab() string {
	t := theme.Active
	cw := a.contentWidth()
	sym := a.cfg.General.Currency

	if _, ok := a.store.CurrentWeek(); !ok {
		style := lipgloss.NewStyle().Foreground(t.TextMuted).Padding(1, 2)
		return style.Render("No active week.\nPress n on the Weeks tab to start one.")
	}

	limits := a.store.CategoryLimits()
	totals := a.store.CategoryTotals()

	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	if len(limits) == 0 {
		b.WriteString(mutedStyle.Render("  No limits configured for this week. Press s to set them."))
		b.WriteString("\n")
		return b.String()
	}

	barW := cw - 40
	if barW < 10 {
		barW = 10
	}

	var lines []string
	for _, c := range model.Categories {
		limit, ok := limits[c]
		if !ok || limit <= 0 {
			lines = append(lines, mutedStyle.Render(fmt.Sprintf("%-14s no limit", c.Kanji()+" "+c.Label())))
			continue
		}
		pct := totals[c] / limit * 100
		lines = append(lines, components.BudgetBar(c.Kanji()+" "+c.Label(), pct, 14, barW)+
			"  "+cli.FormatMoney(sym, totals[c])+" / "+cli.FormatMoney(sym, limit))
	}
	b.WriteString(components.ContentCard("Limits", strings.Join(lines, "\n"), cw))
	b.WriteString("\n")

	for _, w := range a.store.LimitWarnings() {
		style := lipgloss.NewStyle().Foreground(t.Orange)
		marker := "▲"
		if w.Exceeded() {
			style = lipgloss.NewStyle().Foreground(t.Red).Bold(true)
			marker = "■"
		}
		b.WriteString("  ")
		b.WriteString(style.Render(fmt.Sprintf("%s %s has used %s of its limit",
			marker, w.Category.Label(), cli.FormatPercent(w.Percentage))))
		b.WriteString("\n")
	}

	return b.String()
}
