package decimal

import (
	"strings"

	"github.com/rpgo/accfmt/pkg/cnmoney"
	"github.com/rpgo/accfmt/pkg/textutil"
	"github.com/shopspring/decimal"
)

// Money represents a yuan amount with exact decimal precision
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a new Money instance from a string. Thousands
// separators are not accepted here; strip them first.
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Round rounds the amount to fen (two decimals), half away from zero
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// Add adds another Money amount
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sub subtracts another Money amount
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// Mul multiplies by a decimal factor
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{m.Decimal.Mul(factor)}
}

// Div divides by a decimal factor
func (m Money) Div(factor decimal.Decimal) Money {
	return Money{m.Decimal.Div(factor)}
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// String returns the amount with exactly two decimals
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders the amount with a yuan sign and thousands separators
func (m Money) Format() string {
	r := m.Round()
	s := textutil.Thousands(r.String())
	if r.IsNegative() {
		return "-¥" + strings.TrimPrefix(s, "-")
	}
	return "¥" + s
}

// Upper spells the amount, truncated to fen, in capitalized Chinese numerals.
// Negative amounts are rejected with cnmoney.ErrInvalidAmount.
func (m Money) Upper() (string, error) {
	return cnmoney.ToUpper(m.Decimal.Truncate(2).String())
}
