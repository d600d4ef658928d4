// Package money formats centavo amounts for display.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatBRL renders centavos as "R$ 1.234,56".
func FormatBRL(cents int64) string {
	d := decimal.New(cents, -2)
	neg := d.IsNegative()
	fixed := d.Abs().StringFixed(2)

	intPart, frac, _ := strings.Cut(fixed, ".")
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	out := "R$ " + b.String() + "," + frac
	if neg {
		return "-" + out
	}
	return out
}

// FromAny converts a gateway amount (centavos as number or numeric string) to
// int64. ok is false for anything else.
func FromAny(v any) (int64, bool) {
	var d decimal.Decimal
	var err error
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case float64:
		d = decimal.NewFromFloat(n)
	case string:
		d, err = decimal.NewFromString(n)
	case interface{ String() string }:
		d, err = decimal.NewFromString(n.String())
	default:
		return 0, false
	}
	if err != nil {
		return 0, false
	}
	return d.Round(0).IntPart(), true
}
