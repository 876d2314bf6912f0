package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"kakei/internal/cli"
	"kakei/internal/metrics"
	"kakei/internal/model"

	"github.com/spf13/cobra"
)

var flagWeekLimits []string

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Manage budgeting weeks",
}

var weekNewCmd = &cobra.Command{
	Use:   "new <budget>",
	Short: "Start a new week with the given budget and select it",
	Args:  cobra.ExactArgs(1),
	RunE:  runWeekNew,
}

var weekListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all weeks, newest first",
	RunE:  runWeekList,
}

var weekSelectCmd = &cobra.Command{
	Use:   "select <week-id>",
	Short: "Switch to a different week",
	Args:  cobra.ExactArgs(1),
	RunE:  runWeekSelect,
}

var weekBudgetCmd = &cobra.Command{
	Use:   "budget <week-id> <amount>",
	Short: "Change a week's budget",
	Args:  cobra.ExactArgs(2),
	RunE:  runWeekBudget,
}

func init() {
	weekNewCmd.Flags().StringArrayVarP(&flagWeekLimits, "limit", "l", nil,
		"Category limit as category=amount (repeatable)")
	weekCmd.AddCommand(weekNewCmd, weekListCmd, weekSelectCmd, weekBudgetCmd)
	rootCmd.AddCommand(weekCmd)
}

// parseAmount validates a positive decimal amount. Validation lives
// here at the caller boundary; the store trusts its input.
func parseAmount(s string) (float64, error) {
	amount, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if amount <= 0 {
		return 0, fmt.Errorf("amount must be positive, got %s", s)
	}
	return amount, nil
}

// parseLimitPairs parses category=amount pairs, rejecting unknown
// categories and non-positive amounts.
func parseLimitPairs(pairs []string) (model.CategoryLimits, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	limits := model.CategoryLimits{}
	for _, pair := range pairs {
		name, value, found := strings.Cut(pair, "=")
		if !found {
			return nil, fmt.Errorf("limit %q must be category=amount", pair)
		}
		category, ok := model.ParseCategory(strings.TrimSpace(name))
		if !ok {
			return nil, fmt.Errorf("unknown category %q (valid: %s)", name, categoryNames())
		}
		amount, err := parseAmount(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("limit for %s: %w", category, err)
		}
		limits[category] = amount
	}
	return limits, nil
}

func categoryNames() string {
	names := make([]string, len(model.Categories))
	for i, c := range model.Categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

func runWeekNew(_ *cobra.Command, args []string) error {
	budget, err := parseAmount(args[0])
	if err != nil {
		return err
	}
	limits, err := parseLimitPairs(flagWeekLimits)
	if err != nil {
		return err
	}

	st, slot, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = slot.Close() }()

	st.CreateWeek(budget, limits)

	week, _ := st.CurrentWeek()
	fmt.Printf("  Started week %s with budget %s\n",
		cli.FormatWeekRange(week.StartDate, week.EndDate),
		cli.FormatMoney(cfg.General.Currency, budget))
	if len(limits) > 0 {
		fmt.Printf("  Limits set for %d categories\n", len(limits))
	}
	return nil
}

func runWeekList(_ *cobra.Command, _ []string) error {
	st, slot, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = slot.Close() }()

	weeks := st.Weeks()
	if len(weeks) == 0 {
		fmt.Println("  No weeks yet. Start one with `kakei week new <budget>`.")
		return nil
	}

	currentID, _ := st.CurrentWeekID()
	sym := cfg.General.Currency

	table := cli.Table{
		Headers: []string{"ID", "Week", "Budget", "Spent", "Expenses"},
	}
	for _, w := range weeks {
		id := w.ID
		if w.ID == currentID {
			id = "* " + id
		}
		table.Rows = append(table.Rows, []string{
			id,
			cli.FormatWeekRange(w.StartDate, w.EndDate),
			cli.FormatMoney(sym, w.InitialBudget),
			cli.FormatMoney(sym, metrics.TotalSpent(w.Expenses)),
			strconv.Itoa(len(w.Expenses)),
		})
	}
	fmt.Println(cli.RenderTable(table))
	return nil
}

func runWeekSelect(_ *cobra.Command, args []string) error {
	st, slot, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = slot.Close() }()

	st.SelectWeek(args[0])

	if week, ok := st.CurrentWeek(); ok {
		fmt.Printf("  Now on week %s\n", cli.FormatWeekRange(week.StartDate, week.EndDate))
	} else {
		// The selector is set unconditionally; a dangling id just
		// means no week is selected.
		fmt.Printf("  No week with id %s; no week is selected now\n", args[0])
	}
	return nil
}

func runWeekBudget(_ *cobra.Command, args []string) error {
	budget, err := parseAmount(args[1])
	if err != nil {
		return err
	}

	st, slot, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = slot.Close() }()

	st.UpdateWeekBudget(args[0], budget)
	fmt.Printf("  Budget set to %s\n", cli.FormatMoney(cfg.General.Currency, budget))
	return nil
}
