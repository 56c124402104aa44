package ingest

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// ParseAmount reads a currency-formatted amount such as "$2,400,000", "£2,400,000",
// "-1,250.50" or the accounting form "(1,250.50)". Any currency symbol, thousands
// separator and whitespace is dropped. Unparseable input yields 0.
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	neg := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		neg = true
		s = strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
	}

	s = strings.Map(func(r rune) rune {
		if r == ',' || unicode.IsSpace(r) || unicode.Is(unicode.Sc, r) {
			return -1
		}
		return r
	}, s)

	val, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	if neg {
		val = val.Neg()
	}
	return val.InexactFloat64()
}
