// Package money does price arithmetic in decimal so line totals and sums
// don't pick up binary floating point noise.
package money

import (
	"math"

	"github.com/shopspring/decimal"
)

// DeliveryFee is charged on every order. Delivery is currently free.
const DeliveryFee = 0.0

// Finite reports whether f is neither NaN nor infinite.
func Finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// dec converts an amount. NaN and infinities count as zero.
func dec(f float64) decimal.Decimal {
	if !Finite(f) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}

// LineTotal is pricePerKg × weightKg.
func LineTotal(pricePerKg, weightKg float64) float64 {
	f, _ := dec(pricePerKg).Mul(dec(weightKg)).Float64()
	return f
}

// Sum adds amounts.
func Sum(amounts ...float64) float64 {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(dec(a))
	}
	f, _ := total.Float64()
	return f
}

// Format renders an amount with two decimals, as shown next to the ₾ sign.
func Format(amount float64) string {
	return dec(amount).StringFixed(2)
}
