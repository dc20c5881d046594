package cmd

import (
	"errors"
	"fmt"
	"strings"

	"ahorro/internal/ledger"
	"ahorro/internal/model"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add [concept] [type] [amount]",
	Short: "Record an income or expense movement",
	Long: "Record a movement. With no arguments an interactive form is shown;\n" +
		"otherwise pass the concept, the type (income or expense), and the amount.",
	Args: cobra.MaximumNArgs(3),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, args []string) error {
	l, cfg, cleanup, err := openLedger()
	if err != nil {
		return err
	}
	defer cleanup()

	var concept, typ, amount string
	switch len(args) {
	case 3:
		concept, typ, amount = args[0], args[1], args[2]
	case 0:
		var aborted bool
		concept, typ, amount, aborted, err = promptMovement()
		if err != nil {
			return err
		}
		if aborted {
			return nil
		}
	default:
		return fmt.Errorf("expects no arguments (interactive) or exactly three: concept type amount")
	}

	// Invalid input is a silent no-op; the dashboard below simply shows
	// the unchanged state.
	if _, _, err := l.Add(concept, typ, amount); err != nil {
		return err
	}

	renderDashboard(l, cfg)
	return nil
}

// promptMovement runs the interactive add form. The form enforces
// presence/positivity up front so the user is not dropped into the
// silent-abort path by accident.
func promptMovement() (concept, typ, amount string, aborted bool, err error) {
	typ = string(model.Income)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Concept").
				Placeholder("e.g. Salary, groceries").
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("concept must not be empty")
					}
					return nil
				}).
				Value(&concept),
			huh.NewSelect[string]().
				Title("Type").
				Options(
					huh.NewOption("Income", string(model.Income)),
					huh.NewOption("Expense", string(model.Expense)),
				).
				Value(&typ),
			huh.NewInput().
				Title("Amount").
				Placeholder("0.00").
				Validate(func(s string) error {
					if _, ok := ledger.ParseAmount(s); !ok {
						return errors.New("amount must be a positive number")
					}
					return nil
				}).
				Value(&amount),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", "", "", true, nil
		}
		return "", "", "", false, err
	}

	return concept, typ, amount, false, nil
}
