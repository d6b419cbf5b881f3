package domain

import (
	"github.com/shopspring/decimal"
)

const (
	// MaxAmountScale is the number of fractional digits an amount may carry.
	MaxAmountScale = 18
	// MaxAmountIntegerDigits bounds the integer part; amounts stay below 10^20.
	MaxAmountIntegerDigits = 20

	// 10^38 < 2^127, so no in-range coefficient needs more bits than this.
	maxCoefficientBits = 127
)

var amountCeiling = decimal.New(1, MaxAmountIntegerDigits)

// AmountInRange reports whether d fits the scale and magnitude the ledger stores.
// It only inspects the exponent and coefficient size before comparing, so values
// like 1e50000000 are rejected without being expanded.
func AmountInRange(d decimal.Decimal) bool {
	exp := d.Exponent()
	if exp < -MaxAmountScale || exp > MaxAmountIntegerDigits {
		return false
	}
	if d.Coefficient().BitLen() > maxCoefficientBits {
		return false
	}
	return d.Abs().LessThan(amountCeiling)
}

// FormatAmount renders d keeping its scale, so "12.50" stays "12.50".
func FormatAmount(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.String()
}
