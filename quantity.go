package famfolio

import "github.com/shopspring/decimal"

// Quantity is a number of shares. Fractional quantities are allowed, some
// brokers fill recurring orders in fractions.
type Quantity struct {
	value decimal.Decimal
}

// Q builds a Quantity from any common numeric type.
func Q[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Quantity {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return Quantity{value: v}
	case float32:
		return Quantity{value: decimal.NewFromFloat32(v)}
	case float64:
		return Quantity{value: decimal.NewFromFloat(v)}
	case int:
		return Quantity{value: decimal.NewFromInt(int64(v))}
	case int32:
		return Quantity{value: decimal.NewFromInt32(v)}
	case int64:
		return Quantity{value: decimal.NewFromInt(v)}
	default:
		panic("unsupported numeric type")
	}
}

// ParseQuantity parses a decimal string such as "1.5".
func ParseQuantity(s string) (Quantity, error) {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{value: v}, nil
}

func (q Quantity) Add(p Quantity) Quantity { return Quantity{value: q.value.Add(p.value)} }
func (q Quantity) Sub(p Quantity) Quantity { return Quantity{value: q.value.Sub(p.value)} }
func (q Quantity) Neg() Quantity           { return Quantity{value: q.value.Neg()} }
func (q Quantity) Equal(p Quantity) bool   { return q.value.Equal(p.value) }
func (q Quantity) IsZero() bool            { return q.value.IsZero() }
func (q Quantity) IsPositive() bool        { return q.value.IsPositive() }
func (q Quantity) IsNegative() bool        { return q.value.IsNegative() }
func (q Quantity) String() string          { return q.value.String() }

// Decimal exposes the underlying decimal value for series arithmetic.
func (q Quantity) Decimal() decimal.Decimal { return q.value }
