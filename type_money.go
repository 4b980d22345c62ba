package pulley

import "github.com/shopspring/decimal"

// Money is a monetary amount. The engine is currency-agnostic: a currency
// symbol is applied only at render time, from the Settings.
type Money struct {
	value decimal.Decimal
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

// ParseMoney parses a decimal string into a Money amount.
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{value: d}, nil
}

func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) IsPositive() bool         { return m.value.IsPositive() }
func (m Money) IsNegative() bool         { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool    { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool { return m.value.GreaterThan(n.value) }
func (m Money) Neg() Money               { return Money{value: m.value.Neg()} }
func (m Money) Add(n Money) Money        { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money        { return Money{value: m.value.Sub(n.value)} }
func (m Money) Mul(q Quantity) Money     { return Money{value: m.value.Mul(q.value)} }

// Div divides the amount by a quantity. Division by zero yields zero, the
// convention used for an effective rate over an empty selection.
func (m Money) Div(q Quantity) Money {
	if q.IsZero() {
		return Money{}
	}
	return Money{value: m.value.Div(q.value)}
}

// Decimal exposes the underlying decimal value for rendering.
func (m Money) Decimal() decimal.Decimal { return m.value }

// String returns the plain decimal representation, without any currency.
func (m Money) String() string { return m.value.String() }

// MarshalJSON implements the json.Marshaler interface for Money.
func (m Money) MarshalJSON() ([]byte, error) {
	return m.value.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Money.
func (m *Money) UnmarshalJSON(decimalBytes []byte) error {
	return m.value.UnmarshalJSON(decimalBytes)
}
