// Package money rounds and formats monetary amounts for display.
// Calculations stay in float64; decimal arithmetic is used only at the edge
// so that rounding is half-away-from-zero on the decimal value.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Round2 rounds an amount to cents.
func Round2(value float64) float64 {
	f, _ := decimal.NewFromFloat(value).Round(2).Float64()
	return f
}

// Sum adds amounts in decimal to avoid accumulating binary rounding noise.
func Sum(values ...float64) float64 {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(decimal.NewFromFloat(v))
	}
	f, _ := total.Float64()
	return f
}

// FormatEUR formats an amount the way the app displays euros,
// e.g. 1234.5 -> "1 234,50 €", -3 -> "-3,00 €".
func FormatEUR(value float64) string {
	d := decimal.NewFromFloat(value).Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}

	fixed := d.StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	b.WriteString(sign)
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > len(sign) {
			b.WriteByte(' ')
		}
		b.WriteString(intPart[i : i+3])
	}
	b.WriteByte(',')
	b.WriteString(frac)
	b.WriteString(" €")
	return b.String()
}

// FormatPercent formats a 0-100 value with one decimal, e.g. 42.25 -> "42.3%".
func FormatPercent(value float64) string {
	return decimal.NewFromFloat(value).Round(1).StringFixed(1) + "%"
}
