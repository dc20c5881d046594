// Package cli provides formatting and rendering utilities for terminal
// output.
package cli

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCurrency formats an amount as currency with comma grouping and two
// decimals, e.g. 1234.5 -> "$1,234.50". A non-empty currency code is
// appended: "$1,234.50 MXN". Negative amounts render as "-$123.45".
func FormatCurrency(d decimal.Decimal, code string) string {
	s := d.Abs().StringFixed(2)

	intPart := s
	fracPart := "00"
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
	}

	sign := ""
	if d.IsNegative() {
		sign = "-"
	}

	out := sign + "$" + groupThousands(intPart) + "." + fracPart
	if code != "" {
		out += " " + code
	}
	return out
}

// FormatPercent formats a 0-100 percentage with one decimal place.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// groupThousands adds comma separators to a digit string.
// e.g. "1234567" -> "1,234,567"
func groupThousands(s string) string {
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		b.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
