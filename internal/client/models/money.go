package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	// The backend stores integers and floats; quoted numbers would be rejected.
	decimal.MarshalJSONWithoutQuotes = true
}

// FormatMoney renders an amount the way the dashboard shows it: "$1.234.567,5".
func FormatMoney(d decimal.Decimal) string {
	return "$" + FormatNumber(d)
}

// FormatNumber renders d with es-CL grouping: dot thousands separator,
// comma decimal separator, at most three fraction digits.
func FormatNumber(d decimal.Decimal) string {
	neg := d.IsNegative()
	s := d.Abs().Round(3).StringFixed(3)

	intPart, frac, _ := strings.Cut(s, ".")
	frac = strings.TrimRight(frac, "0")

	var b strings.Builder
	if neg && (strings.Trim(intPart, "0") != "" || frac != "") {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	if frac != "" {
		b.WriteByte(',')
		b.WriteString(frac)
	}
	return b.String()
}

// ParseMoney reads a user-typed amount such as "1000", "1234.5" or "$ 99".
func ParseMoney(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	if s == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", s)
	}
	return d, nil
}

// Sum adds up f(item) over items.
func Sum[T any](items []T, f func(T) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(f(it))
	}
	return total
}
