// Package money holds the rounding and parsing rules shared by every
// component that produces monetary values. All amounts are decimals with
// exactly 2 fractional digits, rounded half up (away from zero), never
// binary floats.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Round2 rounds d to exactly 2 fractional digits using round-half-up
// semantics. Every monetary result in the application must pass through
// this function before being stored or displayed.
func Round2(d decimal.Decimal) decimal.Decimal {
	// decimal.Round rounds half away from zero, which is round-half-up
	// for the non-negative amounts invoices carry.
	return d.Round(2)
}

// FromPtr returns the pointed-to decimal, or zero when p is nil.
// Absent inputs are treated as zero so partially filled forms can be
// recalculated without erroring.
func FromPtr(p *decimal.Decimal) decimal.Decimal {
	if p == nil {
		return decimal.Zero
	}
	return *p
}

// Parse converts a textual amount into a decimal. The empty string is
// zero; anything else must be a valid decimal literal. Parsing goes
// through decimal string parsing, never through float64.
func Parse(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}
