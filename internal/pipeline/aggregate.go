// Package pipeline derives the display aggregates from a ledger state
// snapshot.
package pipeline

import (
	"ahorro/internal/model"

	"github.com/shopspring/decimal"
)

// Aggregate computes the totals for a state snapshot. Pure: no caching, no
// mutation; every call recomputes from scratch.
func Aggregate(st model.State) model.Totals {
	var t model.Totals
	t.TotalIncome = decimal.Zero
	t.TotalExpense = decimal.Zero

	for _, m := range st.Movements {
		switch m.Type {
		case model.Income:
			t.TotalIncome = t.TotalIncome.Add(m.Amount)
		case model.Expense:
			t.TotalExpense = t.TotalExpense.Add(m.Amount)
		}
	}

	t.Balance = t.TotalIncome.Sub(t.TotalExpense)

	if t.TotalIncome.IsPositive() {
		t.SavingsRate = t.Balance.Div(t.TotalIncome).InexactFloat64() * 100
	}

	return t
}

// GoalProgress returns how far the balance is toward the goal as a
// percentage clamped to [0, 100]. The second return is false when no goal
// is set (goal <= 0), in which case progress is not applicable.
func GoalProgress(balance, goal decimal.Decimal) (float64, bool) {
	if !goal.IsPositive() {
		return 0, false
	}

	pct := balance.Div(goal).InexactFloat64() * 100
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return pct, true
}
