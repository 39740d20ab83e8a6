package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatNaira renders an amount the way receipts show it: ₦12,500 or ₦1,250.5
func FormatNaira(amount float64) string {
	s := decimal.NewFromFloat(amount).Round(2).String()

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	whole, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, c := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	if frac != "" {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return sign + "₦" + b.String()
}

// FormatSigned prefixes credits with + and debits with -
func FormatSigned(amount float64, credit bool) string {
	if credit {
		return "+" + FormatNaira(amount)
	}
	return "-" + FormatNaira(amount)
}
