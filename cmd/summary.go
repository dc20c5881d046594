package cmd

import (
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show totals, goal progress, and movement history",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	l, cfg, cleanup, err := openLedger()
	if err != nil {
		return err
	}
	defer cleanup()

	renderDashboard(l, cfg)
	return nil
}
