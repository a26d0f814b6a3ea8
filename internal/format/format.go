// Package format holds the presentation helpers for monetary values, dates
// and documents. Pure functions, no state.
package format

import (
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// Currency renders v as Brazilian Reais with two decimals, e.g. "R$ 1.234,56".
func Currency(v float64) string {
	return printer.Sprintf("R$ %.2f", v)
}

// dateLayouts are tried in order; the backend serializes LocalDateTime
// without a zone, but RFC3339 is accepted too.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

// Date renders an ISO timestamp as "02/01/2006 15:04". Unparseable input is
// returned unchanged.
func Date(s string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("02/01/2006 15:04")
		}
	}
	return s
}

// CPF masks an 11-digit document as "000.000.000-00". Anything else is
// returned unchanged.
func CPF(s string) string {
	if len(s) != 11 {
		return s
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return s
		}
	}
	return s[0:3] + "." + s[3:6] + "." + s[6:9] + "-" + s[9:11]
}

// Digits strips every non-digit rune from s.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
