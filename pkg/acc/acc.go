// Package acc provides arithmetic on decimal operands that avoids binary
// floating-point artifacts by scaling operands to integers first, so that
// 0.1 + 0.2 yields 0.3.
//
// Results stay exact while the scaled integers fit in float64's safe integer
// range. Operands that are zero, NaN, empty or missing skip the correction
// and use native float64 arithmetic, which is a known precision gap for
// legitimate zero operands.
package acc

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Div returns a divided by b
func Div(a, b Operand) float64 {
	if a.falsy() || b.falsy() {
		return a.Value() / b.Value()
	}
	t1, t2 := fracDigits(a), fracDigits(b)
	return (a.integral() / b.integral()) * math.Pow10(t2-t1)
}

// Mul returns a multiplied by b
func Mul(a, b Operand) float64 {
	if a.falsy() || b.falsy() {
		return a.Value() * b.Value()
	}
	m := fracDigits(a) + fracDigits(b)
	return a.integral() * b.integral() / math.Pow10(m)
}

// Add returns a plus b. A missing operand falls back to native addition,
// which yields NaN.
func Add(a, b Operand) float64 {
	if a.IsMissing() || b.IsMissing() {
		return a.Value() + b.Value()
	}
	m := math.Pow10(max(fracDigits(a), fracDigits(b)))
	scale := Float(m)
	return (math.Trunc(Mul(a, scale)) + math.Trunc(Mul(b, scale))) / m
}

// Sub returns a minus b formatted with as many decimals as the longer
// fractional part of the two operands.
func Sub(a, b Operand) string {
	if a.falsy() || b.falsy() {
		return formatNative(a.Value() - b.Value())
	}
	n := max(fracDigits(a), fracDigits(b))
	m := math.Pow10(n)
	scale := Float(m)
	return fixed((Mul(a, scale)-Mul(b, scale))/m, n)
}

// fixed renders f with exactly places decimals, rounding half away from zero.
func fixed(f float64, places int) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return formatNative(f)
	}
	return decimal.NewFromFloat(f).StringFixed(int32(places))
}

func formatNative(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
