package model

import "github.com/shopspring/decimal"

// Totals holds the aggregates derived from a State snapshot. Never
// persisted; recomputed from scratch on every render.
type Totals struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Balance      decimal.Decimal

	// SavingsRate is the balance as a percentage of total income
	// (0 when there is no income).
	SavingsRate float64
}
