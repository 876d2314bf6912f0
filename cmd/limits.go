package cmd

import (
	"fmt"

	"kakei/internal/cli"
	"kakei/internal/model"

	"github.com/spf13/cobra"
)

var limitsCmd = &cobra.Command{
	Use:   "limits",
	Short: "Manage the current week's category limits",
}

var limitsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show configured limits and how close each is",
	RunE:  runLimitsShow,
}

var limitsSetCmd = &cobra.Command{
	Use:   "set category=amount ...",
	Short: "Replace the current week's limits",
	Long: "Replace the current week's category limits wholesale. Categories not\n" +
		"listed lose their limit. Run with no arguments to remove all limits.",
	RunE: runLimitsSet,
}

func init() {
	limitsCmd.AddCommand(limitsShowCmd, limitsSetCmd)
	rootCmd.AddCommand(limitsCmd)
}

func runLimitsShow(_ *cobra.Command, _ []string) error {
	st, slot, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = slot.Close() }()

	if _, ok := st.CurrentWeek(); !ok {
		fmt.Println("  No active week. Start one with `kakei week new <budget>`.")
		return nil
	}

	limits := st.CategoryLimits()
	if len(limits) == 0 {
		fmt.Println("  No limits configured. Set some with `kakei limits set food=200 ...`.")
		return nil
	}

	sym := cfg.General.Currency
	totals := st.CategoryTotals()

	table := cli.Table{
		Headers: []string{"Category", "Limit", "Spent", "Used"},
	}
	for _, c := range model.Categories {
		limit, ok := limits[c]
		if !ok || limit <= 0 {
			continue
		}
		table.Rows = append(table.Rows, []string{
			c.Kanji() + " " + c.Label(),
			cli.FormatMoney(sym, limit),
			cli.FormatMoney(sym, totals[c]),
			cli.FormatPercent(totals[c] / limit * 100),
		})
	}
	fmt.Println(cli.RenderTable(table))

	for _, w := range st.LimitWarnings() {
		label := fmt.Sprintf("%s at %s of limit", w.Category.Label(), cli.FormatPercent(w.Percentage))
		detail := fmt.Sprintf("(%s of %s)", cli.FormatMoney(sym, w.Spent), cli.FormatMoney(sym, w.Limit))
		fmt.Println(cli.RenderWarning(label, detail, w.Exceeded()))
	}
	return nil
}

func runLimitsSet(_ *cobra.Command, args []string) error {
	limits, err := parseLimitPairs(args)
	if err != nil {
		return err
	}

	st, slot, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = slot.Close() }()

	if _, ok := st.CurrentWeek(); !ok {
		return fmt.Errorf("no active week; start one with `kakei week new <budget>`")
	}

	st.UpdateCategoryLimits(limits)

	if len(limits) == 0 {
		fmt.Println("  All limits removed")
		return nil
	}
	fmt.Printf("  Limits set for %d categories\n", len(limits))
	return nil
}
