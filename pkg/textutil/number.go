package textutil

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Thousands inserts a comma between every group of three digits in the
// integer part of a numeric string. The sign and fraction are kept as is.
func Thousands(s string) string {
	start := 0
	if start < len(s) && (s[start] == '-' || s[start] == '+') {
		start++
	}
	end := start
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	digits := s[start:end]
	if len(digits) <= 3 {
		return s
	}
	var b strings.Builder
	b.WriteString(s[:start])
	for i, c := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	b.WriteString(s[end:])
	return b.String()
}

// ThousandsFixed rounds s to places decimals and groups the integer part.
func ThousandsFixed(s string, places int32) (string, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return "", err
	}
	return Thousands(d.StringFixed(places)), nil
}

// Thousands2 is ThousandsFixed with two decimals, the usual money display.
func Thousands2(s string) (string, error) { return ThousandsFixed(s, 2) }

// FormatCardNumber keeps only the digits of s and separates them in groups
// of four: "6222020200112233" -> "6222 0202 0011 2233".
func FormatCardNumber(s string) string {
	var b strings.Builder
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			continue
		}
		if n > 0 && n%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(c)
		n++
	}
	return b.String()
}
