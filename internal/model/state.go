package model

import "github.com/shopspring/decimal"

// State is the full persisted ledger state: every recorded movement plus
// the monthly savings goal. Movements are ordered newest first; new entries
// are always prepended, never inserted mid-sequence or appended.
type State struct {
	Movements []Movement      `json:"movements"`
	Goal      decimal.Decimal `json:"goal"`
}

// DefaultState returns the empty state used when nothing has been persisted
// yet, or when the persisted blob cannot be decoded.
func DefaultState() State {
	return State{Movements: []Movement{}, Goal: decimal.Zero}
}
