// Package money converts between decimal amounts and integer minor units.
//
// Every amount inside the pipeline is an int64 count of cents; decimals only
// appear at the edges (API payloads and the payment processor).
package money

import (
	"errors"

	"github.com/shopspring/decimal"
)

const minorDigits = 2

var (
	ErrTooPrecise    = errors.New("amount has more than two decimal places")
	ErrNegative      = errors.New("amount is negative")
	ErrInvalidSplit  = errors.New("invalid split")
	ErrOutOfRange    = errors.New("amount out of range")
	hundred          = decimal.NewFromInt(100)
	maxDecimalAmount = decimal.NewFromInt(1 << 53)
)

// ToCents converts a decimal amount into minor units without rounding.
func ToCents(d decimal.Decimal) (int64, error) {
	if d.IsNegative() {
		return 0, ErrNegative
	}
	if d.Exponent() < -minorDigits && !d.Equal(d.Round(minorDigits)) {
		return 0, ErrTooPrecise
	}
	if d.GreaterThan(maxDecimalAmount) {
		return 0, ErrOutOfRange
	}
	return d.Mul(hundred).IntPart(), nil
}

// FromCents converts minor units to a decimal with two fractional digits.
func FromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -minorDigits)
}

// Format renders minor units as a fixed two-digit string, e.g. 1000.00.
func Format(cents int64) string {
	return FromCents(cents).StringFixed(minorDigits)
}

// Float is the representation expected by processor SDKs taking float64.
func Float(cents int64) float64 {
	f, _ := FromCents(cents).Float64()
	return f
}

// FromFloat converts a processor-reported float amount back to minor units.
func FromFloat(v float64) int64 {
	return decimal.NewFromFloat(v).Round(minorDigits).Mul(hundred).IntPart()
}

// Split divides total into n parts; the rounding remainder goes to the last one.
func Split(total int64, n int) ([]int64, error) {
	if n < 1 || total < 0 {
		return nil, ErrInvalidSplit
	}
	base := total / int64(n)
	parts := make([]int64, n)
	for i := 0; i < n-1; i++ {
		parts[i] = base
	}
	parts[n-1] = total - base*int64(n-1)
	return parts, nil
}
