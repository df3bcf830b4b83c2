// Package money provides presentation-layer currency helpers. The engines
// work in raw float64 and never round; rounding to cents happens here, when
// a number is formatted for display.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// RoundCents rounds a raw amount to two decimal places using half-up
// rounding, the convention for displayed currency.
func RoundCents(amount float64) float64 {
	rounded, _ := decimal.NewFromFloat(amount).Round(2).Float64()
	return rounded
}

// Format renders an amount as a currency string with a dollar sign,
// thousands separators, and exactly two decimals, e.g. "$1,798.65".
// Negative amounts render as "-$1,798.65".
func Format(amount float64) string {
	d := decimal.NewFromFloat(amount).Round(2)

	negative := d.IsNegative()
	if negative {
		d = d.Neg()
	}

	fixed := d.StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteByte('.')
	b.WriteString(frac)

	return b.String()
}
