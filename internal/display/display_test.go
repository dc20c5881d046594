package display

import (
	"reflect"
	"strings"
	"testing"

	"ahorro/internal/model"
	"ahorro/internal/pipeline"

	"github.com/shopspring/decimal"
)

func stateWith(t *testing.T, goal string, movements ...model.Movement) model.State {
	t.Helper()
	g, err := decimal.NewFromString(goal)
	if err != nil {
		t.Fatalf("parse goal %q: %v", goal, err)
	}
	return model.State{Movements: movements, Goal: g}
}

func mv(t *testing.T, concept string, typ model.Type, amount string) model.Movement {
	t.Helper()
	d, err := decimal.NewFromString(amount)
	if err != nil {
		t.Fatalf("parse amount %q: %v", amount, err)
	}
	return model.Movement{Concept: concept, Type: typ, Amount: d}
}

func build(t *testing.T, st model.State) Model {
	t.Helper()
	return Build(st, pipeline.Aggregate(st), "")
}

func TestBuild_SummaryFigures(t *testing.T) {
	st := stateWith(t, "0",
		mv(t, "Rent", model.Expense, "400"),
		mv(t, "Salary", model.Income, "1000"),
	)

	m := build(t, st)

	if m.Summary.TotalIncome != "$1,000.00" {
		t.Errorf("TotalIncome = %q, want $1,000.00", m.Summary.TotalIncome)
	}
	if m.Summary.TotalExpense != "$400.00" {
		t.Errorf("TotalExpense = %q, want $400.00", m.Summary.TotalExpense)
	}
	if m.Summary.Balance != "$600.00" {
		t.Errorf("Balance = %q, want $600.00", m.Summary.Balance)
	}
	if m.Summary.SavingsRate != "60.0%" {
		t.Errorf("SavingsRate = %q, want 60.0%%", m.Summary.SavingsRate)
	}
}

func TestBuild_NoGoal(t *testing.T) {
	// Regardless of balance, goal <= 0 means the neutral message and a
	// zero-width indicator.
	st := stateWith(t, "0", mv(t, "Salary", model.Income, "5000"))

	m := build(t, st)

	if m.Goal.Set || m.Goal.Met {
		t.Errorf("Goal.Set/Met = %v/%v, want false/false", m.Goal.Set, m.Goal.Met)
	}
	if m.Goal.ProgressPct != 0 {
		t.Errorf("ProgressPct = %v, want 0", m.Goal.ProgressPct)
	}
	if !strings.Contains(m.Goal.Status, "Set a savings goal") {
		t.Errorf("Status = %q, want the neutral define-a-goal message", m.Goal.Status)
	}
}

func TestBuild_GoalMissing(t *testing.T) {
	st := stateWith(t, "1000",
		mv(t, "Rent", model.Expense, "400"),
		mv(t, "Salary", model.Income, "1000"),
	)

	m := build(t, st)

	if !m.Goal.Set || m.Goal.Met {
		t.Errorf("Goal.Set/Met = %v/%v, want true/false", m.Goal.Set, m.Goal.Met)
	}
	if m.Goal.ProgressPct != 60 {
		t.Errorf("ProgressPct = %v, want 60", m.Goal.ProgressPct)
	}
	if !strings.Contains(m.Goal.Status, "$400.00") {
		t.Errorf("Status = %q, want the missing amount $400.00", m.Goal.Status)
	}
}

func TestBuild_GoalMissingNegativeBalance(t *testing.T) {
	// missing = goal - max(balance, 0): a negative balance doesn't inflate
	// the missing amount.
	st := stateWith(t, "1000", mv(t, "Rent", model.Expense, "300"))

	m := build(t, st)

	if m.Goal.ProgressPct != 0 {
		t.Errorf("ProgressPct = %v, want 0", m.Goal.ProgressPct)
	}
	if !strings.Contains(m.Goal.Status, "$1,000.00") {
		t.Errorf("Status = %q, want missing amount $1,000.00", m.Goal.Status)
	}
}

func TestBuild_GoalMet(t *testing.T) {
	st := stateWith(t, "1000",
		mv(t, "Bonus", model.Income, "400"),
		mv(t, "Rent", model.Expense, "400"),
		mv(t, "Salary", model.Income, "1000"),
	)

	m := build(t, st)

	if !m.Goal.Met {
		t.Fatal("Goal.Met = false, want true")
	}
	if m.Goal.ProgressPct != 100 {
		t.Errorf("ProgressPct = %v, want 100", m.Goal.ProgressPct)
	}
	if !strings.Contains(m.Goal.Status, "$1,000.00") {
		t.Errorf("Status = %q, want the goal amount $1,000.00", m.Goal.Status)
	}
}

func TestBuild_GoalMetCapsAt100(t *testing.T) {
	st := stateWith(t, "100", mv(t, "Windfall", model.Income, "100000"))

	m := build(t, st)

	if m.Goal.ProgressPct != 100 {
		t.Errorf("ProgressPct = %v, want exactly 100", m.Goal.ProgressPct)
	}
}

func TestBuild_HistoryOrderAndSigns(t *testing.T) {
	st := stateWith(t, "0",
		mv(t, "Rent", model.Expense, "400"),
		mv(t, "Salary", model.Income, "1000"),
	)

	m := build(t, st)

	if len(m.History) != 2 {
		t.Fatalf("len(History) = %d, want 2", len(m.History))
	}
	if m.History[0].Concept != "Rent" || m.History[1].Concept != "Salary" {
		t.Errorf("history order = %q, %q; want Rent above Salary",
			m.History[0].Concept, m.History[1].Concept)
	}
	if m.History[0].Amount != "- $400.00" || m.History[0].Income {
		t.Errorf("expense entry = %q (income=%v), want \"- $400.00\" tagged expense",
			m.History[0].Amount, m.History[0].Income)
	}
	if m.History[1].Amount != "+ $1,000.00" || !m.History[1].Income {
		t.Errorf("income entry = %q (income=%v), want \"+ $1,000.00\" tagged income",
			m.History[1].Amount, m.History[1].Income)
	}
}

func TestBuild_EmptyHistory(t *testing.T) {
	m := build(t, model.DefaultState())

	if len(m.History) != 0 {
		t.Errorf("len(History) = %d, want 0 (renderers show the placeholder)", len(m.History))
	}
}

func TestBuild_CurrencyCode(t *testing.T) {
	st := stateWith(t, "0", mv(t, "Salary", model.Income, "1000"))

	m := Build(st, pipeline.Aggregate(st), "MXN")

	if m.Summary.TotalIncome != "$1,000.00 MXN" {
		t.Errorf("TotalIncome = %q, want $1,000.00 MXN", m.Summary.TotalIncome)
	}
}

func TestBuild_Idempotent(t *testing.T) {
	st := stateWith(t, "1000",
		mv(t, "Rent", model.Expense, "400"),
		mv(t, "Salary", model.Income, "1000"),
	)
	totals := pipeline.Aggregate(st)

	first := Build(st, totals, "MXN")
	second := Build(st, totals, "MXN")

	if !reflect.DeepEqual(first, second) {
		t.Error("Build is not idempotent: two calls with identical input differ")
	}
}
