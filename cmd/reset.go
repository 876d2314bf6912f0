package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var flagResetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all saved weeks and expenses",
	RunE:  runReset,
}

func init() {
	resetCmd.Flags().BoolVarP(&flagResetForce, "force", "f", false, "Skip confirmation")
	rootCmd.AddCommand(resetCmd)
}

func runReset(_ *cobra.Command, _ []string) error {
	st, slot, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = slot.Close() }()

	weeks := st.Weeks()
	if len(weeks) == 0 {
		fmt.Println("  Nothing to reset.")
		return nil
	}

	if !flagResetForce {
		fmt.Printf("  This deletes %d weeks and all their expenses. Type 'yes' to continue: ", len(weeks))
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if strings.TrimSpace(answer) != "yes" {
			fmt.Println("  Aborted.")
			return nil
		}
	}

	if err := slot.Clear(); err != nil {
		return fmt.Errorf("clearing state: %w", err)
	}
	fmt.Println("  All data cleared.")
	return nil
}
