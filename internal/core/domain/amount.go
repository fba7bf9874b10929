package domain

import (
	"fmt"
	"strings"

	"github.com/ahmedhedefa/cashier-ca-web/internal/apperrors"
	"github.com/shopspring/decimal"
)

// MaxAmountCents is the largest amount accepted at the boundary
// ($1,000,000,000,000.00). It leaves room for change arithmetic and top-up
// scans without overflowing int64.
const MaxAmountCents int64 = 100_000_000_000_000

var maxAmount = decimal.NewFromInt(MaxAmountCents)

// ParseAmount reads a user-entered amount. Empty, non-numeric and negative
// input all coerce to zero.
func ParseAmount(raw string) decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// ToMinorUnits converts a decimal amount to integer cents, rounding half away
// from zero at two decimal places. Amounts outside [0, MaxAmountCents] return
// apperrors.ErrValidation.
func ToMinorUnits(d decimal.Decimal) (int64, error) {
	cents := d.Round(2).Shift(2)
	if cents.IsNegative() || cents.GreaterThan(maxAmount) {
		return 0, fmt.Errorf("%w: amount %s is out of range", apperrors.ErrValidation, d.String())
	}
	return cents.IntPart(), nil
}

// CheckMinorUnits reports whether cents lies within [0, MaxAmountCents].
func CheckMinorUnits(cents int64) error {
	if cents < 0 || cents > MaxAmountCents {
		return fmt.Errorf("%w: amount %d cents is out of range", apperrors.ErrValidation, cents)
	}
	return nil
}

// FromMinorUnits converts cents back to a two-place decimal.
func FromMinorUnits(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}
