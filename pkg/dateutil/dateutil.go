package dateutil

import (
	"strconv"
	"strings"
	"time"
)

// DefaultLayout renders a date and time to the second
const DefaultLayout = "yyyy-MM-dd HH:mm:ss"

// TokenKind identifies what a layout token renders
type TokenKind int

const (
	Literal TokenKind = iota
	Year
	Month
	Day
	Hour12
	Hour24
	Minute
	Second
	Fraction
	FractionTrimmed
	Meridiem
)

var fieldKinds = map[byte]TokenKind{
	'y': Year,
	'M': Month,
	'd': Day,
	'h': Hour12,
	'H': Hour24,
	'm': Minute,
	's': Second,
	'f': Fraction,
	'F': FractionTrimmed,
	't': Meridiem,
}

// Token is one element of a parsed layout. Width is the run length of a
// field letter; Text holds the literal or the original run.
type Token struct {
	Kind  TokenKind
	Width int
	Text  string
}

var (
	monthsShort = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	monthsLong  = [12]string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"}
	monthsCN    = [12]string{"一月", "二月", "三月", "四月", "五月", "六月", "七月", "八月", "九月", "十月", "十一月", "十二月"}
	daysShort   = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	daysLong    = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	daysCN      = [7]string{"周日", "周一", "周二", "周三", "周四", "周五", "周六"}
)

// Tokenize splits a layout into literal and field tokens. A field token is a
// maximal run of one repeated field letter, so "yyyyMMdd" yields three fields.
func Tokenize(layout string) []Token {
	var tokens []Token
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			tokens = append(tokens, Token{Kind: Literal, Text: lit.String()})
			lit.Reset()
		}
	}
	for i := 0; i < len(layout); {
		c := layout[i]
		kind, ok := fieldKinds[c]
		if !ok {
			lit.WriteByte(c)
			i++
			continue
		}
		j := i + 1
		for j < len(layout) && layout[j] == c {
			j++
		}
		flush()
		tokens = append(tokens, Token{Kind: kind, Width: j - i, Text: layout[i:j]})
		i = j
	}
	flush()
	return tokens
}

// Format renders t according to layout, e.g. "yyyy-MM-dd HH:mm:ss".
// english selects English month, weekday and meridiem names; otherwise
// Chinese names are used. Characters that are not field letters are copied.
func Format(t time.Time, layout string, english bool) string {
	var b strings.Builder
	for _, tok := range Tokenize(layout) {
		b.WriteString(renderToken(t, tok, english))
	}
	return b.String()
}

func renderToken(t time.Time, tok Token, english bool) string {
	n := tok.Width
	switch tok.Kind {
	case Year:
		return keepLast(strconv.Itoa(t.Year()), min(n, 4))
	case Month:
		if n <= 2 {
			return padLeft(int(t.Month()), n)
		}
		return pickName(int(t.Month())-1, n, english, monthsShort[:], monthsLong[:], monthsCN[:])
	case Day:
		if n <= 2 {
			return padLeft(t.Day(), n)
		}
		return pickName(int(t.Weekday()), n, english, daysShort[:], daysLong[:], daysCN[:])
	case Hour12:
		h := t.Hour() % 12
		if h == 0 {
			h = 12
		}
		return padLeft(h, n)
	case Hour24:
		return padLeft(t.Hour(), n)
	case Minute:
		return padLeft(t.Minute(), n)
	case Second:
		return padLeft(t.Second(), n)
	case Fraction, FractionTrimmed:
		return fraction(t, n, tok.Kind == FractionTrimmed)
	case Meridiem:
		label := "上午"
		if english {
			label = "AM"
		}
		if t.Hour() >= 12 {
			label = "下午"
			if english {
				label = "PM"
			}
		}
		return keepFirst(label, min(n, 2))
	default:
		return tok.Text
	}
}

func pickName(i, n int, english bool, short, long, cn []string) string {
	if !english {
		return cn[i]
	}
	if n == 3 {
		return short[i]
	}
	return long[i]
}

// padLeft zero-pads v to min(width, 2) digits without truncating.
func padLeft(v, width int) string {
	s := strconv.Itoa(v)
	if w := min(width, 2); len(s) < w {
		s = strings.Repeat("0", w-len(s)) + s
	}
	return s
}

// fraction renders milliseconds as up to three digits with trailing zeros
// removed; trimLeading also removes leading zeros. At least one digit stays.
func fraction(t time.Time, width int, trimLeading bool) string {
	ms := t.Nanosecond() / int(time.Millisecond)
	s := keepFirst(padThree(ms), min(width, 3))
	trimmed := strings.TrimRight(s, "0")
	if trimLeading {
		trimmed = strings.TrimLeft(trimmed, "0")
	}
	if trimmed == "" {
		return "0"
	}
	return trimmed
}

func padThree(ms int) string {
	s := strconv.Itoa(ms)
	return strings.Repeat("0", 3-len(s)) + s
}

func keepLast(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

func keepFirst(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
