package types

import (
	"github.com/shopspring/decimal"

	ierr "github.com/petshield/petshield/internal/errors"
)

// Money is an amount in minor currency units (cents). All internal billing
// arithmetic happens on integers; decimal strings exist only at API and
// display boundaries.
type Money int64

// MoneyFromDecimal converts a major-unit decimal amount to minor units,
// rounding half-up at two decimal places.
func MoneyFromDecimal(d decimal.Decimal) Money {
	return Money(d.Round(2).Shift(2).IntPart())
}

// MoneyFromString parses a major-unit decimal string ("150.00") into minor
// units.
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, ierr.WithError(err).
			WithHintf("Invalid decimal amount: %s", s).
			Mark(ierr.ErrValidation)
	}
	return MoneyFromDecimal(d), nil
}

// Decimal returns the amount in major units.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(int64(m), -2)
}

// String formats the amount as a major-unit decimal string with two places.
func (m Money) String() string {
	return m.Decimal().StringFixed(2)
}

// MulPeriods multiplies the amount by a number of billing periods.
func (m Money) MulPeriods(periods int) Money {
	return m * Money(periods)
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m == 0
}
