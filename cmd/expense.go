package cmd

import (
	"fmt"
	"strings"
	"time"

	"kakei/internal/cli"
	"kakei/internal/model"

	"github.com/spf13/cobra"
)

var flagExpenseDate string

var addCmd = &cobra.Command{
	Use:   "add <amount> <category> [description...]",
	Short: "Record an expense in the current week",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runAdd,
}

var rmCmd = &cobra.Command{
	Use:   "rm <expense-id>",
	Short: "Delete an expense from the current week",
	Args:  cobra.ExactArgs(1),
	RunE:  runRm,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the current week's expenses, newest first",
	RunE:  runList,
}

func init() {
	addCmd.Flags().StringVar(&flagExpenseDate, "date", "", "Expense date as YYYY-MM-DD (default today)")
	rootCmd.AddCommand(addCmd, rmCmd, listCmd)
}

func runAdd(_ *cobra.Command, args []string) error {
	amount, err := parseAmount(args[0])
	if err != nil {
		return err
	}

	category, ok := model.ParseCategory(args[1])
	if !ok {
		return fmt.Errorf("unknown category %q (valid: %s)", args[1], categoryNames())
	}

	description := strings.Join(args[2:], " ")

	date := model.DateOf(time.Now())
	if flagExpenseDate != "" {
		date, err = model.ParseDate(flagExpenseDate)
		if err != nil {
			return err
		}
	}

	st, slot, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = slot.Close() }()

	if _, ok := st.CurrentWeek(); !ok {
		return fmt.Errorf("no active week; start one with `kakei week new <budget>`")
	}

	st.AddExpense(category, amount, description, date)

	sym := cfg.General.Currency
	fmt.Printf("  %s %s  %s\n", category.Kanji(), cli.FormatMoney(sym, amount), category.Label())
	fmt.Printf("  Remaining: %s\n", cli.FormatMoney(sym, st.Remaining()))

	for _, w := range st.LimitWarnings() {
		label := fmt.Sprintf("%s at %s of limit", w.Category.Label(), cli.FormatPercent(w.Percentage))
		detail := fmt.Sprintf("(%s of %s)", cli.FormatMoney(sym, w.Spent), cli.FormatMoney(sym, w.Limit))
		fmt.Println(cli.RenderWarning(label, detail, w.Exceeded()))
	}
	return nil
}

func runRm(_ *cobra.Command, args []string) error {
	st, slot, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = slot.Close() }()

	before := 0
	if week, ok := st.CurrentWeek(); ok {
		before = len(week.Expenses)
	}

	st.DeleteExpense(args[0])

	week, ok := st.CurrentWeek()
	if !ok {
		return fmt.Errorf("no active week")
	}
	if len(week.Expenses) == before {
		fmt.Printf("  No expense with id %s in the current week\n", args[0])
		return nil
	}
	fmt.Println("  Expense removed")
	return nil
}

func runList(_ *cobra.Command, _ []string) error {
	st, slot, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = slot.Close() }()

	week, ok := st.CurrentWeek()
	if !ok {
		fmt.Println("  No active week. Start one with `kakei week new <budget>`.")
		return nil
	}
	if len(week.Expenses) == 0 {
		fmt.Println("  No expenses recorded this week.")
		return nil
	}

	sym := cfg.General.Currency
	table := cli.Table{
		Title:   fmt.Sprintf("Week %s", cli.FormatWeekRange(week.StartDate, week.EndDate)),
		Headers: []string{"ID", "Date", "Category", "Description", "Amount"},
	}
	for _, e := range week.Expenses {
		table.Rows = append(table.Rows, []string{
			e.ID,
			cli.FormatDate(e.Date),
			e.Category.Kanji() + " " + e.Category.Label(),
			e.Description,
			cli.FormatMoney(sym, e.Amount),
		})
	}
	fmt.Println(cli.RenderTable(table))
	return nil
}
