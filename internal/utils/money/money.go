// Package money provides fixed-point parsing and rounding for user-supplied
// amount strings. Amounts are never handled as binary floats; they are parsed
// into decimals and rounded to the owning currency's digit precision before
// any arithmetic or persistence.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a user-supplied numeric string into a decimal rounded to
// the given number of digits (round half away from zero, so "10.005" at two
// digits becomes "10.01"). Empty and malformed strings are rejected.
func ParseAmount(s string, digits int32) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return decimal.Zero, fmt.Errorf("amount is empty")
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return d.Round(digits), nil
}

// Round rounds a decimal to the given number of digits, half away from zero.
func Round(d decimal.Decimal, digits int32) decimal.Decimal {
	return d.Round(digits)
}

// Format renders a decimal with exactly the given number of decimal places,
// matching how amounts are displayed for a currency.
func Format(d decimal.Decimal, digits int32) string {
	return d.StringFixed(digits)
}
