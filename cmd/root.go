// Package cmd implements the kakei CLI commands.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"kakei/internal/config"
	"kakei/internal/persist"
	"kakei/internal/store"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	flagDataDir string
	flagDebug   bool
)

var rootCmd = &cobra.Command{
	Use:   "kakei",
	Short: "Weekly budget tracker",
	Long:  "Track weekly budgets: record expenses, set per-category limits, and see where the money went.",
	RunE:  runStatus,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
		if flagDebug {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
	},
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Override state database directory")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
}

// statePath resolves the state database location: flag, then config
// override, then the XDG default.
func statePath(cfg config.Config) string {
	if flagDataDir != "" {
		return filepath.Join(flagDataDir, "kakei.db")
	}
	if cfg.General.DataDir != "" {
		return filepath.Join(cfg.General.DataDir, "kakei.db")
	}
	return persist.DefaultPath()
}

// openStore is the shared open path used by all commands. The caller
// closes the returned slot when done.
func openStore() (*store.Store, *persist.Slot, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		// A broken config file should not lock the user out of their data.
		log.Warn().Err(err).Msg("config unreadable, using defaults")
		cfg = config.DefaultConfig()
	}

	slot, err := persist.Open(statePath(cfg))
	if err != nil {
		return nil, nil, cfg, fmt.Errorf("opening state: %w", err)
	}

	return store.New(slot), slot, cfg, nil
}
