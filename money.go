package einvoice

import (
	"regexp"

	"github.com/shopspring/decimal"
)

var trailingZeroRE = regexp.MustCompile(`^(.*?)\.?0+$`)

// RoundHalfUp rounds d to scale fractional digits using commercial
// rounding (midpoint away from zero). shopspring/decimal's Round already
// implements half-away-from-zero, so this is a thin, self-documenting
// wrapper kept as the single rounding primitive the rest of the package
// calls, per the fixed-point rounding law the totals engine depends on.
func RoundHalfUp(d decimal.Decimal, scale int32) decimal.Decimal {
	return d.Round(scale)
}

// FormatAmount renders d in the canonical XML form: values with at
// most two fractional digits are padded to exactly two, while values
// that carry more than two fractional digits keep their full precision.
func FormatAmount(d decimal.Decimal) string {
	if d.Equal(d.Round(2)) {
		return d.StringFixed(2)
	}
	return d.String()
}

// FormatPercent removes trailing zeros and a dangling decimal point
// from a percentage value, e.g. 19.0000 -> "19", 7.5000 -> "7.5".
func FormatPercent(d decimal.Decimal) string {
	s := d.StringFixed(4)
	return trailingZeroRE.ReplaceAllString(s, "$1")
}
