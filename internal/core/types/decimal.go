// Package types provides common type aliases and utilities.
package types

import (
	"github.com/shopspring/decimal"
)

// Money represents a monetary value with full precision.
// Uses decimal.Decimal to avoid floating-point errors.
type Money = decimal.Decimal

// MoneyScale is the number of fractional digits prices and amounts carry.
const MoneyScale int32 = 2

// NewMoneyFromString creates a Money value from a string.
// This is the preferred method for monetary values.
func NewMoneyFromString(s string) (Money, error) {
	return decimal.NewFromString(s)
}

// MustMoney creates a Money value from a string, panics on error.
// Use only for constants.
func MustMoney(s string) Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// NewMoneyFromInt creates a whole Money value.
func NewMoneyFromInt(v int64) Money {
	return decimal.NewFromInt(v)
}

// Zero returns zero Money value.
func Zero() Money {
	return decimal.Zero
}

// FormatMoney renders a value with exactly MoneyScale fractional digits ("1299.00").
func FormatMoney(m Money) string {
	return m.StringFixed(MoneyScale)
}

// HasMoneyScale reports whether m carries no more than MoneyScale fractional digits.
func HasMoneyScale(m Money) bool {
	return m.Equal(m.Round(MoneyScale))
}

// SumMoney adds up values. Empty input yields zero.
func SumMoney(values ...Money) Money {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

// MoneyToFloat converts for expression evaluation only; never store the result.
func MoneyToFloat(m Money) float64 {
	return m.InexactFloat64()
}
