package course

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const CurrencySuffix = " so'm"

// ParsePrice keeps only the ASCII digits of s and reads them as a base-10
// integer, so "300,000 so'm/oy" is 300000. Strings with no digits, or whose
// digits overflow int64, are worth 0.
func ParsePrice(s string) int64 {
	var n int64
	seen := false
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch < '0' || ch > '9' {
			continue
		}
		d := int64(ch - '0')
		if n > (math.MaxInt64-d)/10 {
			return 0
		}
		n = n*10 + d
		seen = true
	}
	if !seen {
		return 0
	}
	return n
}

// FormatAmount renders amount with thousands separators for tag,
// e.g. 750000 -> "750,000 so'm" in English.
func FormatAmount(tag language.Tag, amount int64) string {
	return message.NewPrinter(tag).Sprintf("%d", amount) + CurrencySuffix
}
