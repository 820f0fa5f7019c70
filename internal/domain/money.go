package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Balances are stored as int64 minor units (cents). Decimal values only
// exist at the API boundary; converting in loses nothing because
// amounts with more than two fractional digits are rejected.

const minorUnitExponent = 2

// AmountToMinor converts a decimal major-unit amount ("40.00") to minor
// units. Amounts with sub-cent precision are rejected as invalid.
func AmountToMinor(d decimal.Decimal) (int64, error) {
	shifted := d.Shift(minorUnitExponent)
	if !shifted.IsInteger() {
		return 0, fmt.Errorf("%w: sub-cent precision not supported", ErrInvalidAmount)
	}

	if !shifted.BigInt().IsInt64() {
		return 0, fmt.Errorf("%w: amount out of range", ErrInvalidAmount)
	}

	return shifted.IntPart(), nil
}

// MinorToAmount converts minor units back to a decimal major-unit amount.
func MinorToAmount(minor int64) decimal.Decimal {
	return decimal.New(minor, -minorUnitExponent)
}
