package service

import "github.com/shopspring/decimal"

// Currency is the single ISO code used everywhere: stored prices, line
// items, and formatting.
const Currency = "ZAR"

var hundred = decimal.NewFromInt(100)

// MinorUnits converts a major-unit price to the provider's minor-unit
// integer representation (price × 100).
func MinorUnits(price decimal.Decimal) int64 {
	return price.Mul(hundred).IntPart()
}

// FormatAmount renders a price for display in the fixed currency.
func FormatAmount(price decimal.Decimal) string {
	return Currency + " " + price.StringFixed(2)
}
