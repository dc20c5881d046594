package cmd

import (
	"errors"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var flagClearYes bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded movements",
	Long:  "Delete every movement from the ledger. The savings goal is kept.",
	RunE:  runClear,
}

func init() {
	clearCmd.Flags().BoolVarP(&flagClearYes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(clearCmd)
}

func runClear(_ *cobra.Command, _ []string) error {
	l, cfg, cleanup, err := openLedger()
	if err != nil {
		return err
	}
	defer cleanup()

	if !flagClearYes {
		confirmed := false
		form := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title("Clear all movements?").
				Description("The savings goal is kept.").
				Affirmative("Clear").
				Negative("Cancel").
				Value(&confirmed),
		))
		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}
		if !confirmed {
			return nil
		}
	}

	if err := l.Clear(); err != nil {
		return err
	}

	renderDashboard(l, cfg)
	return nil
}
