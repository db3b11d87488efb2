package generators

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencyPrefix precedes every formatted amount.
const CurrencyPrefix = "R$ "

// FormatCurrency renders amount the way the API does: "R$ " followed by the
// integer part, a comma and two decimals. Rounding is half away from zero and
// there is no thousands grouping.
func FormatCurrency(amount float64) string {
	return FormatDecimal(decimal.NewFromFloat(amount))
}

// FormatDecimal is FormatCurrency for an exact decimal amount.
func FormatDecimal(amount decimal.Decimal) string {
	s := amount.Round(2).StringFixed(2)
	if s == "-0.00" {
		s = "0.00"
	}
	return CurrencyPrefix + strings.Replace(s, ".", ",", 1)
}

// ParseCurrency reverses FormatDecimal. ok is false when s is not a
// well-formed money string.
func ParseCurrency(s string) (decimal.Decimal, bool) {
	rest, found := strings.CutPrefix(s, CurrencyPrefix)
	if !found {
		return decimal.Zero, false
	}
	intPart, frac, found := strings.Cut(rest, ",")
	if !found || len(frac) != 2 {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(intPart + "." + frac)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
