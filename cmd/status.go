package cmd

import (
	"fmt"

	"kakei/internal/cli"
	"kakei/internal/model"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current week's budget summary",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
	st, slot, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = slot.Close() }()

	week, ok := st.CurrentWeek()
	if !ok {
		fmt.Println()
		fmt.Println("  No active week.")
		fmt.Println("  Start one with `kakei week new <budget>`.")
		fmt.Println()
		return nil
	}

	sym := cfg.General.Currency
	spent := st.TotalSpent()
	remaining := st.Remaining()
	pct := st.PercentageUsed()
	totals := st.CategoryTotals()
	limits := st.CategoryLimits()
	warnings := st.LimitWarnings()

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("Week %s", cli.FormatWeekRange(week.StartDate, week.EndDate))))
	fmt.Println()
	fmt.Printf("  Budget:    %s\n", cli.FormatMoney(sym, week.InitialBudget))
	fmt.Printf("  Spent:     %s\n", cli.FormatMoney(sym, spent))
	fmt.Printf("  Remaining: %s\n", cli.FormatMoney(sym, remaining))
	fmt.Println()
	fmt.Printf("  %s\n", cli.RenderBudgetBar(pct, 40))
	fmt.Println()

	// Per-category breakdown, with limits where configured
	table := cli.Table{
		Title:   "By category",
		Headers: []string{"Category", "Spent", "Limit"},
	}
	for _, c := range model.Categories {
		limitCell := "—"
		if limit, ok := limits[c]; ok && limit > 0 {
			limitCell = cli.FormatMoney(sym, limit)
		}
		table.Rows = append(table.Rows, []string{
			c.Kanji() + " " + c.Label(),
			cli.FormatMoney(sym, totals[c]),
			limitCell,
		})
	}
	fmt.Println(cli.RenderTable(table))

	// Spend by weekday (Mon..Sun)
	if len(week.Expenses) > 0 {
		fmt.Printf("  Mon-Sun: %s\n", cli.RenderSparkline(weekdaySpend(week)))
		fmt.Println()
	}

	for _, w := range warnings {
		label := fmt.Sprintf("%s at %s of limit", w.Category.Label(), cli.FormatPercent(w.Percentage))
		detail := fmt.Sprintf("(%s of %s)", cli.FormatMoney(sym, w.Spent), cli.FormatMoney(sym, w.Limit))
		fmt.Println(cli.RenderWarning(label, detail, w.Exceeded()))
	}
	if len(warnings) > 0 {
		fmt.Println()
	}

	return nil
}

// weekdaySpend buckets the week's expenses by day, Monday first.
func weekdaySpend(week model.Week) []float64 {
	days := make([]float64, 7)
	for _, e := range week.Expenses {
		idx := int(e.Date.Sub(week.StartDate.Time).Hours() / 24)
		if idx < 0 || idx > 6 {
			continue // expense dated outside the week span
		}
		days[idx] += e.Amount
	}
	return days
}
