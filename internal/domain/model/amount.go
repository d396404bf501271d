package model

import (
	"fmt"
	"math"

	domainErrors "github.com/polkiloo/mywallet/internal/domain/errors"
)

// Cents stores a monetary amount as an integer number of hundredths,
// avoiding float drift across the ledger.
type Cents int64

// maxAmount keeps the cents conversion clear of int64 overflow.
const maxAmount = 9e16

// ParseAmount converts a user-supplied decimal value into Cents, rounding
// half away from zero to two fractional digits. Negative, non-finite and
// overflowing values are rejected.
func ParseAmount(value float64) (Cents, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, domainErrors.ErrInvalidAmount
	}
	if value < 0 || value > maxAmount {
		return 0, domainErrors.ErrInvalidAmount
	}
	return Cents(math.Round(value * 100)), nil
}

// String renders the amount with exactly two fractional digits, e.g. "50.00".
func (c Cents) String() string {
	sign := ""
	v := int64(c)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}
