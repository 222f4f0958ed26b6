package utils

import "math"

// MoneyEpsilon absorbs floating point rounding when comparing totals.
const MoneyEpsilon = 0.01

// Round2 rounds a monetary amount to two decimals.
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}
