package acc

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

type kind uint8

const (
	missing kind = iota
	number
	text
)

// Operand is a decimal operand given either as a number or as decimal text.
// The zero value is a missing operand.
type Operand struct {
	text string
	num  float64
	kind kind
}

// Float creates an operand from a float64. Its text form is the shortest
// decimal that round-trips, without an exponent.
func Float(f float64) Operand {
	return Operand{text: strconv.FormatFloat(f, 'f', -1, 64), num: f, kind: number}
}

// Int creates an operand from an integer
func Int(i int64) Operand {
	return Operand{text: strconv.FormatInt(i, 10), num: float64(i), kind: number}
}

// String creates an operand from decimal text such as "3.14"
func String(s string) Operand {
	return Operand{text: s, kind: text}
}

// From converts a loosely typed value. Unsupported types, including nil,
// produce a missing operand.
func From(v any) Operand {
	switch x := v.(type) {
	case Operand:
		return x
	case float64:
		return Float(x)
	case float32:
		return Float(float64(x))
	case int:
		return Int(int64(x))
	case int32:
		return Int(int64(x))
	case int64:
		return Int(x)
	case uint:
		return Float(float64(x))
	case uint32:
		return Int(int64(x))
	case uint64:
		return Float(float64(x))
	case string:
		return String(x)
	default:
		return Operand{}
	}
}

// IsMissing reports whether the operand carries no value at all
func (o Operand) IsMissing() bool { return o.kind == missing }

// String returns the decimal text of the operand
func (o Operand) String() string { return o.text }

// Value returns the native float64 value. Missing operands and unparsable
// text yield NaN; blank text yields 0.
func (o Operand) Value() float64 {
	switch o.kind {
	case number:
		return o.num
	case text:
		return parseNumber(o.text)
	default:
		return math.NaN()
	}
}

// Decimal returns the exact decimal value when the operand is representable.
func (o Operand) Decimal() (decimal.Decimal, bool) {
	switch o.kind {
	case number:
		if math.IsNaN(o.num) || math.IsInf(o.num, 0) {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat(o.num), true
	case text:
		d, err := decimal.NewFromString(strings.TrimSpace(o.text))
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	default:
		return decimal.Zero, false
	}
}

// falsy reports whether the operand short-circuits to native arithmetic:
// missing, zero, NaN or empty text.
func (o Operand) falsy() bool {
	switch o.kind {
	case number:
		return o.num == 0 || math.IsNaN(o.num)
	case text:
		return o.text == ""
	default:
		return true
	}
}

// integral returns the operand with its first decimal point removed.
func (o Operand) integral() float64 {
	return parseNumber(strings.Replace(o.text, ".", "", 1))
}

// FracDigits returns the number of digits after the decimal point in s.
// ok is false when s has no decimal point.
func FracDigits(s string) (n int, ok bool) {
	_, frac, found := strings.Cut(s, ".")
	if !found {
		return 0, false
	}
	if i := strings.IndexByte(frac, '.'); i >= 0 {
		frac = frac[:i]
	}
	return len(frac), true
}

func fracDigits(o Operand) int {
	n, ok := FracDigits(o.text)
	if !ok {
		return 0
	}
	return n
}

func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return f
		}
		return math.NaN()
	}
	return f
}
