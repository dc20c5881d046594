package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var goalCmd = &cobra.Command{
	Use:   "goal [amount]",
	Short: "Set or show the monthly savings goal",
	Long: "Set the monthly savings goal. Input that is not a non-negative\n" +
		"number resets the goal to zero. Without an amount, shows the current\n" +
		"goal progress.",
	Args: cobra.MaximumNArgs(1),
	RunE: runGoal,
}

func init() {
	rootCmd.AddCommand(goalCmd)
}

func runGoal(_ *cobra.Command, args []string) error {
	l, cfg, cleanup, err := openLedger()
	if err != nil {
		return err
	}
	defer cleanup()

	if len(args) == 1 {
		if _, err := l.SetGoal(args[0]); err != nil {
			return err
		}
		renderDashboard(l, cfg)
		return nil
	}

	dm := buildDisplay(l, cfg)
	fmt.Println()
	printGoal(dm)
	fmt.Println()
	return nil
}
