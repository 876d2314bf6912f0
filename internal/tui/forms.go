package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"kakei/internal/model"
	"kakei/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// formValues holds the raw string inputs of whichever form is open.
// It lives behind a pointer so every copy of the App model shares the
// cells the form fields are bound to.
type formValues struct {
	budget      string
	amount      string
	category    string
	description string
	date        string
	limits      map[model.Category]*string
}

// validatePositiveAmount rejects anything that is not a positive
// decimal number. Input validation happens here, before the store is
// ever called.
func validatePositiveAmount(s string) error {
	amount, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	if amount <= 0 {
		return fmt.Errorf("must be positive")
	}
	return nil
}

// validateOptionalAmount accepts empty input or a positive number.
func validateOptionalAmount(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return validatePositiveAmount(s)
}

func validateDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := model.ParseDate(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

func (a App) openNewWeekForm() (tea.Model, tea.Cmd) {
	a.formVals = &formValues{}
	a.formKind = formNewWeek
	a.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Weekly budget").
				Placeholder("1000").
				Validate(validatePositiveAmount).
				Value(&a.formVals.budget),
		),
	).WithWidth(a.width - 4)
	return a, a.form.Init()
}

func (a App) openAddExpenseForm() (tea.Model, tea.Cmd) {
	if _, ok := a.store.CurrentWeek(); !ok {
		// No week to add into; send the user to week creation instead.
		return a.openNewWeekForm()
	}

	options := make([]huh.Option[string], len(model.Categories))
	for i, c := range model.Categories {
		options[i] = huh.NewOption(c.Kanji()+" "+c.Label(), string(c))
	}

	a.formVals = &formValues{category: string(model.CategoryFood)}
	a.formKind = formAddExpense
	a.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Amount").
				Placeholder("120").
				Validate(validatePositiveAmount).
				Value(&a.formVals.amount),
			huh.NewSelect[string]().
				Title("Category").
				Options(options...).
				Value(&a.formVals.category),
			huh.NewInput().
				Title("Description").
				Placeholder("optional").
				Value(&a.formVals.description),
			huh.NewInput().
				Title("Date").
				Placeholder(model.DateOf(time.Now()).String()).
				Validate(validateDate).
				Value(&a.formVals.date),
		),
	).WithWidth(a.width - 4)
	return a, a.form.Init()
}

func (a App) openLimitsForm() (tea.Model, tea.Cmd) {
	if _, ok := a.store.CurrentWeek(); !ok {
		return a.openNewWeekForm()
	}

	existing := a.store.CategoryLimits()
	a.formVals = &formValues{limits: make(map[model.Category]*string, len(model.Categories))}

	var fields []huh.Field
	for _, c := range model.Categories {
		cell := new(string)
		if limit, ok := existing[c]; ok && limit > 0 {
			*cell = strconv.FormatFloat(limit, 'f', -1, 64)
		}
		a.formVals.limits[c] = cell
		fields = append(fields, huh.NewInput().
			Title(c.Kanji()+" "+c.Label()).
			Placeholder("no limit").
			Validate(validateOptionalAmount).
			Value(cell))
	}

	a.formKind = formLimits
	a.form = huh.NewForm(huh.NewGroup(fields...)).WithWidth(a.width - 4)
	return a, a.form.Init()
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		a.form = nil
		a.formKind = formNone
		return a, nil
	}

	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	switch a.form.State {
	case huh.StateCompleted:
		kind := a.formKind
		a.form = nil
		a.formKind = formNone
		switch kind {
		case formNewWeek:
			a.applyNewWeekForm()
		case formAddExpense:
			a.applyAddExpenseForm()
		case formLimits:
			a.applyLimitsForm()
		}
		return a, nil
	case huh.StateAborted:
		a.form = nil
		a.formKind = formNone
		return a, nil
	}

	return a, cmd
}

func (a *App) applyNewWeekForm() {
	budget, err := strconv.ParseFloat(strings.TrimSpace(a.formVals.budget), 64)
	if err != nil || budget <= 0 {
		return
	}
	a.store.CreateWeek(budget, nil)
	a.expCursor = 0
	a.weekCursor = 0
}

func (a *App) applyAddExpenseForm() {
	amount, err := strconv.ParseFloat(strings.TrimSpace(a.formVals.amount), 64)
	if err != nil || amount <= 0 {
		return
	}
	category, ok := model.ParseCategory(a.formVals.category)
	if !ok {
		return
	}
	date := model.DateOf(time.Now())
	if raw := strings.TrimSpace(a.formVals.date); raw != "" {
		if parsed, err := model.ParseDate(raw); err == nil {
			date = parsed
		}
	}
	a.store.AddExpense(category, amount, strings.TrimSpace(a.formVals.description), date)
	a.expCursor = 0
}

func (a *App) applyLimitsForm() {
	// Wholesale replacement: blank or non-positive entries are stripped
	// here, at the caller boundary.
	limits := model.CategoryLimits{}
	for _, c := range model.Categories {
		cell, ok := a.formVals.limits[c]
		if !ok {
			continue
		}
		raw := strings.TrimSpace(*cell)
		if raw == "" {
			continue
		}
		limit, err := strconv.ParseFloat(raw, 64)
		if err != nil || limit <= 0 {
			continue
		}
		limits[c] = limit
	}
	a.store.UpdateCategoryLimits(limits)
}

func (a App) renderForm() string {
	t := theme.Active
	titleStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	hintStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	title := ""
	switch a.formKind {
	case formNewWeek:
		title = "  Start a new week"
	case formAddExpense:
		title = "  Add expense"
	case formLimits:
		title = "  Category limits"
	}

	return "\n" + titleStyle.Render(title) + "\n\n" +
		a.form.View() + "\n" +
		hintStyle.Render("  esc to cancel")
}
