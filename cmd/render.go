package cmd

import (
	"fmt"

	"ahorro/internal/cli"
	"ahorro/internal/config"
	"ahorro/internal/display"
	"ahorro/internal/ledger"
	"ahorro/internal/pipeline"
)

const goalBarWidth = 40

// buildDisplay recomputes the aggregates and projects the current state
// onto a display model.
func buildDisplay(l *ledger.Ledger, cfg config.Config) display.Model {
	st := l.State()
	totals := pipeline.Aggregate(st)
	return display.Build(st, totals, cfg.General.Currency)
}

// renderDashboard prints the full dashboard: summary figures, goal
// section, and movement history.
func renderDashboard(l *ledger.Ledger, cfg config.Config) {
	dm := buildDisplay(l, cfg)

	fmt.Println()
	fmt.Println(cli.RenderTitle("AHORRO  Personal Savings"))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Income", dm.Summary.TotalIncome},
			{"Expense", dm.Summary.TotalExpense},
			{"Balance", dm.Summary.Balance},
			{"Savings Rate", dm.Summary.SavingsRate},
		},
	}))
	fmt.Println()

	printGoal(dm)
	fmt.Println()
	printHistory(dm)
}

func printGoal(dm display.Model) {
	fmt.Printf("  %s\n", cli.RenderGoalBar(dm.Goal.ProgressPct, goalBarWidth))
	fmt.Printf("  %s\n", dm.Goal.Status)
}

func printHistory(dm display.Model) {
	fmt.Println("  History")

	if len(dm.History) == 0 {
		fmt.Printf("    %s\n", display.EmptyHistoryText)
		return
	}

	conceptW := 0
	for _, e := range dm.History {
		if len(e.Concept) > conceptW {
			conceptW = len(e.Concept)
		}
	}

	for _, e := range dm.History {
		style := cli.ExpenseStyle
		if e.Income {
			style = cli.IncomeStyle
		}
		fmt.Printf("    %-*s  %s\n", conceptW, e.Concept, style.Render(e.Amount))
	}
}
