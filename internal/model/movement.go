// Package model defines the core data types for the ahorro ledger.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Type is the movement direction: money in or money out.
type Type string

const (
	Income  Type = "income"
	Expense Type = "expense"
)

// Valid reports whether t is one of the two known movement types.
func (t Type) Valid() bool {
	return t == Income || t == Expense
}

// Movement is one recorded financial event. Movements are immutable once
// created; the only way to remove one is clearing the whole ledger.
type Movement struct {
	ID        string          `json:"id"`
	Concept   string          `json:"concept"`
	Type      Type            `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"createdAt"`
}

// NewMovement builds a movement with a fresh ID and the current timestamp.
// Callers are expected to have validated concept and amount already.
func NewMovement(concept string, typ Type, amount decimal.Decimal) Movement {
	return Movement{
		ID:        uuid.NewString(),
		Concept:   concept,
		Type:      typ,
		Amount:    amount,
		CreatedAt: time.Now().UTC(),
	}
}
