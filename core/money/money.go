// Package money holds the tax-inclusive total computation shared by the
// receiving and sales paths, plus the one rounding rule applied at the
// persistence boundary.
//
// Totals are computed at full decimal precision. RoundForStorage (half-up,
// two fractional digits) is applied exactly once, when a value is about to be
// persisted; reading a stored total back therefore reproduces the rounded
// value exactly.
package money

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Total returns quantity*rate + quantity*rate*taxPct/100 at full precision.
// Pure and deterministic; taxPct is a percentage in [0,100].
func Total(quantity int, ratePerUnit, taxPct decimal.Decimal) decimal.Decimal {
	subtotal := ratePerUnit.Mul(decimal.NewFromInt(int64(quantity)))
	return subtotal.Add(subtotal.Mul(taxPct).Div(hundred))
}

// RoundForStorage rounds d to two fractional digits, half away from zero.
func RoundForStorage(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Display formats d the way the forms show currency: "$ 1,234.50".
func Display(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	intPart, fracPart := s, ""
	if i := len(s) - 3; i >= 0 && s[i] == '.' {
		intPart, fracPart = s[:i], s[i:]
	}
	var grouped []byte
	for i, c := range []byte(intPart) {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, c)
	}
	out := "$ " + string(grouped) + fracPart
	if neg {
		out = "-" + out
	}
	return out
}
