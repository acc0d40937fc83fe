// Package cnmoney converts Arabic-numeral amounts into the capitalized
// Chinese numerals used on financial documents, e.g. 100 -> 壹佰元整.
package cnmoney

import (
	"errors"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxIntegerDigits is the longest integer part that can be spelled
const MaxIntegerDigits = 10

var (
	// ErrInvalidAmount is returned when the input is not a plain non-negative decimal
	ErrInvalidAmount = errors.New("请检查小写金额是否正确")
	// ErrTooLarge is returned when the integer part exceeds MaxIntegerDigits
	ErrTooLarge = errors.New("位数过大，无法计算")
)

var digits = [10]string{"零", "壹", "贰", "叁", "肆", "伍", "陆", "柒", "捌", "玖"}

// intUnits is indexed by digit position counted from the least significant
// digit. Positions 0, 4 and 8 are always emitted; the others only for
// non-zero digits.
var intUnits = [MaxIntegerDigits]string{"元", "拾", "佰", "仟", "万", "拾", "佰", "仟", "亿", "拾"}

var fracUnits = [2]string{"角", "分"}

var cleanup = []struct{ old, new string }{
	{"零亿", "亿"},
	{"零万", "万"},
	{"亿万", "亿"},
	{"零元", "元"},
	{"零角", ""},
	{"零分", ""},
}

var stripper = strings.NewReplacer(",", "", " ", "", "￥", "", "¥", "")

// ToUpper converts amount, which may carry thousands separators, spaces or a
// yuan sign, into capitalized Chinese numerals. Fractions beyond two digits
// are truncated. Zero and empty input yield "".
func ToUpper(amount string) (string, error) {
	s := stripper.Replace(amount)
	if s == "" {
		return "", nil
	}
	intPart, fracPart, err := split(s)
	if err != nil {
		return "", err
	}
	if strings.Trim(intPart+fracPart, "0") == "" {
		return "", nil
	}
	if len(intPart) > MaxIntegerDigits {
		return "", ErrTooLarge
	}
	if len(fracPart) > len(fracUnits) {
		fracPart = fracPart[:len(fracUnits)]
	}

	var b strings.Builder
	if intPart != "0" || fracPart == "" {
		for i := 0; i < len(intPart); i++ {
			d := intPart[i] - '0'
			pos := len(intPart) - i - 1
			b.WriteString(digits[d])
			if d != 0 || pos%4 == 0 {
				b.WriteString(intUnits[pos])
			}
		}
	}
	for i := 0; i < len(fracPart); i++ {
		b.WriteString(digits[fracPart[i]-'0'])
		b.WriteString(fracUnits[i])
	}
	return tidy(b.String()), nil
}

// Convert is ToUpper for callers that want a single string: failures are
// reported as the error message itself.
func Convert(amount string) string {
	s, err := ToUpper(amount)
	if err != nil {
		return err.Error()
	}
	return s
}

// FromFloat converts a numeric amount
func FromFloat(f float64) string {
	return Convert(strconv.FormatFloat(f, 'f', -1, 64))
}

// split validates s as a plain non-negative decimal and returns its integer
// part without leading zeros and its fraction digits.
func split(s string) (intPart, fracPart string, err error) {
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() || strings.ContainsAny(s, "eE+-") {
		return "", "", ErrInvalidAmount
	}
	intPart, fracPart, _ = strings.Cut(s, ".")
	intPart = strings.TrimLeft(intPart, "0")
	if intPart == "" {
		intPart = "0"
	}
	return intPart, fracPart, nil
}

func tidy(s string) string {
	for strings.Contains(s, "零零") {
		s = strings.ReplaceAll(s, "零零", "零")
	}
	for _, r := range cleanup {
		s = strings.ReplaceAll(s, r.old, r.new)
	}
	if strings.HasSuffix(s, "元") || strings.HasSuffix(s, "角") {
		s += "整"
	}
	return s
}
