package cmd

import (
	"fmt"

	"kakei/internal/config"
	"kakei/internal/tui/theme"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

var configSetCmd = &cobra.Command{
	Use:       "set <key> <value>",
	Short:     "Set a configuration value (currency, theme, data_dir)",
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"currency", "theme", "data_dir"},
	RunE:      runConfigSet,
}

func init() {
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Currency:  %s\n", cfg.General.Currency)
	if cfg.General.DataDir != "" {
		fmt.Printf("    Data dir:  %s\n", cfg.General.DataDir)
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	return nil
}

func runConfigSet(_ *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	key, value := args[0], args[1]
	switch key {
	case "currency":
		cfg.General.Currency = value
	case "theme":
		if theme.ByName(value).Name != value {
			return fmt.Errorf("unknown theme %q", value)
		}
		cfg.Appearance.Theme = value
	case "data_dir":
		cfg.General.DataDir = value
	default:
		return fmt.Errorf("unknown key %q (valid: currency, theme, data_dir)", key)
	}

	if err := config.Save(cfg); err != nil {
		return err
	}
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	return nil
}
