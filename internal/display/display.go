// Package display projects ledger state and totals onto a plain display
// model. The projection is a pure function; the terminal adapters in
// internal/cli and internal/tui decide how the model is drawn.
package display

import (
	"fmt"

	"ahorro/internal/cli"
	"ahorro/internal/model"
	"ahorro/internal/pipeline"

	"github.com/shopspring/decimal"
)

// EmptyHistoryText is the placeholder entry shown when no movements exist.
const EmptyHistoryText = "No movements recorded yet."

// Summary holds the formatted top-line figures.
type Summary struct {
	TotalIncome  string
	TotalExpense string
	Balance      string
	SavingsRate  string
}

// GoalView describes the goal section: whether a goal is set, whether it
// has been met, the clamped progress percentage, and the status line.
type GoalView struct {
	Set         bool
	Met         bool
	ProgressPct float64 // 0-100, 0 when no goal is set
	Status      string
}

// Entry is one history row: the concept and the signed, formatted amount.
type Entry struct {
	Concept string
	Amount  string
	Income  bool
}

// Model is everything a presentation surface needs to draw the tracker.
type Model struct {
	Summary Summary
	Goal    GoalView
	History []Entry
}

// Build projects a state snapshot and its totals onto a display model.
// Deterministic and side-effect free: identical input produces identical
// output on every call.
func Build(st model.State, totals model.Totals, currency string) Model {
	var m Model

	m.Summary = Summary{
		TotalIncome:  cli.FormatCurrency(totals.TotalIncome, currency),
		TotalExpense: cli.FormatCurrency(totals.TotalExpense, currency),
		Balance:      cli.FormatCurrency(totals.Balance, currency),
		SavingsRate:  cli.FormatPercent(totals.SavingsRate),
	}

	m.Goal = buildGoal(totals.Balance, st.Goal, currency)

	m.History = make([]Entry, 0, len(st.Movements))
	for _, mv := range st.Movements {
		sign := "+"
		if mv.Type == model.Expense {
			sign = "-"
		}
		m.History = append(m.History, Entry{
			Concept: mv.Concept,
			Amount:  sign + " " + cli.FormatCurrency(mv.Amount, currency),
			Income:  mv.Type == model.Income,
		})
	}

	return m
}

func buildGoal(balance, goal decimal.Decimal, currency string) GoalView {
	pct, ok := pipeline.GoalProgress(balance, goal)
	if !ok {
		return GoalView{
			Status: "Set a savings goal to track your progress.",
		}
	}

	if balance.GreaterThanOrEqual(goal) {
		return GoalView{
			Set:         true,
			Met:         true,
			ProgressPct: pct,
			Status: fmt.Sprintf("Goal met! You passed your monthly target of %s.",
				cli.FormatCurrency(goal, currency)),
		}
	}

	floor := balance
	if floor.IsNegative() {
		floor = decimal.Zero
	}
	missing := goal.Sub(floor)

	return GoalView{
		Set:         true,
		ProgressPct: pct,
		Status: fmt.Sprintf("You need %s more to reach your savings goal.",
			cli.FormatCurrency(missing, currency)),
	}
}
