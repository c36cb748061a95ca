package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatAmount formatea un monto con separador de miles y dos decimales,
// por ejemplo 1234567.5 -> "1,234,567.50".
func FormatAmount(d decimal.Decimal) string {
	fixed := d.StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	if negative {
		fixed = fixed[1:]
	}

	intPart, decPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	b.WriteByte('.')
	b.WriteString(decPart)

	return b.String()
}

// FormatMoney formatea un monto en soles: "S/ 1,234.56".
func FormatMoney(d decimal.Decimal) string {
	return "S/ " + FormatAmount(d)
}

// FormatCount formatea un entero con separador de miles: 12345 -> "12,345".
func FormatCount(n int) string {
	s := decimal.NewFromInt(int64(n)).StringFixed(0)

	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	for i, digit := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	return b.String()
}
