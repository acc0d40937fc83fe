// Package textutil holds small string helpers for rendering user-facing
// numbers and text.
package textutil

import (
	"strings"
	"unicode/utf16"
)

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
	"\n", "<br />",
)

// EscapeHTML escapes s for inclusion in HTML text and turns newlines into
// <br /> line breaks.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// DisplayWidth counts CJK unified ideographs (U+4E00..U+9FA5) as two columns
// and every other rune as one.
func DisplayWidth(s string) int {
	n := 0
	for _, r := range s {
		if r >= 0x4e00 && r <= 0x9fa5 {
			n += 2
		} else {
			n++
		}
	}
	return n
}

// TokenHash derives a request token from s. The shift wraps at 32 bits while
// the accumulator does not, and the result keeps the low 31 bits.
func TokenHash(s string) int32 {
	h := int64(5381)
	for _, c := range utf16.Encode([]rune(s)) {
		h += int64(int32(uint32(h)<<5)) + int64(c)
	}
	return int32(uint32(h) & 0x7fffffff)
}
