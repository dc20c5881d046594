// Package ledger owns the in-memory ledger state and applies the three
// user mutations: add movement, clear all, set goal. Every successful
// mutation is persisted to the store before returning.
package ledger

import (
	"strings"

	"ahorro/internal/model"
	"ahorro/internal/store"

	"github.com/shopspring/decimal"
)

// Ledger holds the single State instance for the process lifetime. All
// mutation goes through its methods; nothing else touches the state.
type Ledger struct {
	store *store.Store
	state model.State
}

// Open loads the persisted state from the store and wraps it in a Ledger.
func Open(st *store.Store) (*Ledger, error) {
	state, err := st.LoadState()
	if err != nil {
		return nil, err
	}
	return &Ledger{store: st, state: state}, nil
}

// State returns the current state snapshot. Callers must treat it as
// read-only.
func (l *Ledger) State() model.State {
	return l.state
}

// Add validates and records a movement, prepending it so the history stays
// newest first. Invalid input (blank concept, unknown type, amount that is
// not a positive number) is a silent no-op: ok is false and the state is
// untouched. The error covers persistence only.
func (l *Ledger) Add(concept, typ, amount string) (model.Movement, bool, error) {
	concept = strings.TrimSpace(concept)
	if concept == "" {
		return model.Movement{}, false, nil
	}

	mt, ok := ParseType(typ)
	if !ok {
		return model.Movement{}, false, nil
	}

	amt, ok := ParseAmount(amount)
	if !ok {
		return model.Movement{}, false, nil
	}

	m := model.NewMovement(concept, mt, amt)
	l.state.Movements = append([]model.Movement{m}, l.state.Movements...)

	if err := l.store.SaveState(l.state); err != nil {
		return m, true, err
	}
	return m, true, nil
}

// Clear removes every movement. The goal is untouched.
func (l *Ledger) Clear() error {
	l.state.Movements = []model.Movement{}
	return l.store.SaveState(l.state)
}

// SetGoal overwrites the savings goal. Input that does not parse as a
// non-negative number is coerced to zero rather than rejected.
func (l *Ledger) SetGoal(raw string) (decimal.Decimal, error) {
	l.state.Goal = ParseGoal(raw)
	return l.state.Goal, l.store.SaveState(l.state)
}

// ParseType maps user input onto a movement type.
func ParseType(raw string) (model.Type, bool) {
	t := model.Type(strings.ToLower(strings.TrimSpace(raw)))
	return t, t.Valid()
}

// ParseAmount parses a movement amount. Only strictly positive numbers are
// accepted.
func ParseAmount(raw string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || !d.IsPositive() {
		return decimal.Zero, false
	}
	return d, true
}

// ParseGoal parses a goal amount, coercing anything that is not a
// non-negative number to zero.
func ParseGoal(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}
