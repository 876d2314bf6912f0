// Package tui provides the interactive Bubble Tea dashboard for kakei.
package tui

import (
	"strings"

	"kakei/internal/config"
	"kakei/internal/store"
	"kakei/internal/tui/components"
	"kakei/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// formKind identifies which modal form, if any, is open.
type formKind int

const (
	formNone formKind = iota
	formNewWeek
	formAddExpense
	formLimits
)

// App is the root Bubble Tea model.
type App struct {
	store *store.Store
	cfg   config.Config

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Per-tab cursors
	expCursor  int
	weekCursor int

	// Modal form state
	form     *huh.Form
	formKind formKind
	formVals *formValues
}

const minTerminalWidth = 60

// NewApp creates a new TUI app model over an initialized store.
func NewApp(st *store.Store, cfg config.Config) App {
	return App{
		store: st,
		cfg:   cfg,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.form.WithWidth(msg.Width - 4)
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		// Global: quit
		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// An open form intercepts all keys
		if a.form != nil {
			return a.updateForm(msg)
		}

		// Help toggle
		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch key {
		case "q":
			return a, tea.Quit
		case "tab":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		case "shift+tab":
			a.activeTab = (a.activeTab + len(components.Tabs) - 1) % len(components.Tabs)
			return a, nil
		}

		if len(key) == 1 {
			if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
				a.activeTab = idx
				return a, nil
			}
		}

		switch a.activeTab {
		case tabOverview:
			return a.updateOverviewKeys(key)
		case tabExpenses:
			return a.updateExpensesKeys(key)
		case tabWeeks:
			return a.updateWeeksKeys(key)
		case tabLimits:
			return a.updateLimitsKeys(key)
		}
		return a, nil
	}

	// Forward everything else (blink ticks etc.) to an open form
	if a.form != nil {
		return a.updateForm(msg)
	}
	return a, nil
}

// Tab indices, matching components.Tabs order.
const (
	tabOverview = iota
	tabExpenses
	tabWeeks
	tabLimits
)

func (a App) updateOverviewKeys(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "a":
		return a.openAddExpenseForm()
	case "n":
		return a.openNewWeekForm()
	}
	return a, nil
}

func (a App) updateExpensesKeys(key string) (tea.Model, tea.Cmd) {
	week, ok := a.store.CurrentWeek()
	switch key {
	case "a":
		return a.openAddExpenseForm()
	case "j", "down":
		if ok && a.expCursor < len(week.Expenses)-1 {
			a.expCursor++
		}
	case "k", "up":
		if a.expCursor > 0 {
			a.expCursor--
		}
	case "g":
		a.expCursor = 0
	case "G":
		if ok && len(week.Expenses) > 0 {
			a.expCursor = len(week.Expenses) - 1
		}
	case "d", "x":
		if ok && a.expCursor < len(week.Expenses) {
			a.store.DeleteExpense(week.Expenses[a.expCursor].ID)
			if a.expCursor > 0 {
				a.expCursor--
			}
		}
	}
	return a, nil
}

func (a App) updateWeeksKeys(key string) (tea.Model, tea.Cmd) {
	weeks := a.store.Weeks()
	switch key {
	case "n":
		return a.openNewWeekForm()
	case "j", "down":
		if a.weekCursor < len(weeks)-1 {
			a.weekCursor++
		}
	case "k", "up":
		if a.weekCursor > 0 {
			a.weekCursor--
		}
	case "enter":
		if a.weekCursor < len(weeks) {
			a.store.SelectWeek(weeks[a.weekCursor].ID)
			a.expCursor = 0
		}
	}
	return a, nil
}

func (a App) updateLimitsKeys(key string) (tea.Model, tea.Cmd) {
	if key == "s" || key == "enter" {
		return a.openLimitsForm()
	}
	return a, nil
}

// View implements tea.Model.
func (a App) View() string {
	t := theme.Active

	if a.width > 0 && a.width < minTerminalWidth {
		return lipgloss.NewStyle().
			Foreground(t.TextMuted).
			Padding(1, 2).
			Render("Terminal too narrow — need at least 60 columns.")
	}

	if a.form != nil {
		return a.renderForm()
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(components.RenderTabBar(a.activeTab))
	b.WriteString("\n\n")

	if a.showHelp {
		b.WriteString(a.renderHelp())
	} else {
		switch a.activeTab {
		case tabOverview:
			b.WriteString(a.renderOverviewTab())
		case tabExpenses:
			b.WriteString(a.renderExpensesTab())
		case tabWeeks:
			b.WriteString(a.renderWeeksTab())
		case tabLimits:
			b.WriteString(a.renderLimitsTab())
		}
	}

	b.WriteString("\n")
	b.WriteString(a.renderStatusBar())
	return b.String()
}

func (a App) renderStatusBar() string {
	t := theme.Active
	style := lipgloss.NewStyle().Foreground(t.TextMuted)

	hints := " [?]help  [q]uit"
	switch a.activeTab {
	case tabOverview:
		hints = " [a]dd expense  [n]ew week  [?]help  [q]uit"
	case tabExpenses:
		hints = " [a]dd  [d]elete  [j/k]move  [?]help  [q]uit"
	case tabWeeks:
		hints = " [enter]select  [n]ew week  [j/k]move  [?]help  [q]uit"
	case tabLimits:
		hints = " [s]et limits  [?]help  [q]uit"
	}
	return style.Render(hints)
}

func (a App) renderHelp() string {
	t := theme.Active
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	rows := []struct{ key, desc string }{
		{"o / e / w / l", "jump to tab"},
		{"tab / shift+tab", "cycle tabs"},
		{"a", "add an expense"},
		{"n", "start a new week"},
		{"j / k", "move cursor"},
		{"d", "delete selected expense"},
		{"enter", "select week / edit limits"},
		{"q", "quit"},
	}

	var b strings.Builder
	b.WriteString("  Keys\n\n")
	for _, r := range rows {
		b.WriteString("  ")
		b.WriteString(keyStyle.Render(padRight(r.key, 18)))
		b.WriteString(descStyle.Render(r.desc))
		b.WriteString("\n")
	}
	return b.String()
}

func padRight(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return s + strings.Repeat(" ", w-len(s))
}

// contentWidth returns the usable width for tab content.
func (a App) contentWidth() int {
	w := a.width - 2
	if w < 40 {
		w = 40
	}
	if w > 110 {
		w = 110
	}
	return w
}
