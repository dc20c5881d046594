package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded movements, newest first",
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, _ []string) error {
	l, cfg, cleanup, err := openLedger()
	if err != nil {
		return err
	}
	defer cleanup()

	dm := buildDisplay(l, cfg)
	fmt.Println()
	printHistory(dm)
	fmt.Println()
	return nil
}
