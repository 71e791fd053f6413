package famfolio

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is an amount of Korean won. The ledger is single-currency: prices
// and deposits are recorded in whole won, but derived amounts (a fractional
// quantity times a price) may carry fractions, so the value is kept exact.
type Money struct {
	value decimal.Decimal
}

// Won builds a Money from a whole number of won.
func Won(v int64) Money { return Money{value: decimal.NewFromInt(v)} }

// MoneyOf builds a Money from an exact decimal amount.
func MoneyOf(v decimal.Decimal) Money { return Money{value: v} }

// ParseMoney parses a decimal amount of won such as "10000".
func ParseMoney(s string) (Money, error) {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{value: v}, nil
}

func (m Money) Add(n Money) Money    { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money    { return Money{value: m.value.Sub(n.value)} }
func (m Money) Neg() Money           { return Money{value: m.value.Neg()} }
func (m Money) Mul(q Quantity) Money { return Money{value: m.value.Mul(q.value)} }
func (m Money) Equal(n Money) bool   { return m.value.Equal(n.value) }
func (m Money) IsZero() bool         { return m.value.IsZero() }
func (m Money) IsPositive() bool     { return m.value.IsPositive() }
func (m Money) IsNegative() bool     { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool    { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool { return m.value.GreaterThan(n.value) }

// Div divides the amount by a quantity. Division by zero is the caller's
// bug, positions guard it before calling.
func (m Money) Div(q Quantity) Money { return Money{value: m.value.Div(q.value)} }

// Decimal exposes the underlying decimal value for series arithmetic.
func (m Money) Decimal() decimal.Decimal { return m.value }

// Float64 returns the amount as a float64, for ratios and chart axes only.
func (m Money) Float64() float64 { return m.value.InexactFloat64() }

// String formats the amount as won with thousand separators, e.g. "₩12,000".
// Fractions of a won are rounded away for display.
func (m Money) String() string {
	return money.New(m.value.Round(0).IntPart(), money.KRW).Display()
}

// SignedString is like String but with an explicit sign, and "-" for zero.
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

// csv returns the exact value for persistence, without currency decoration.
func (m Money) csv() string { return m.value.String() }
