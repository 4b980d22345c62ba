// Package renderer turns the engine's report structures into markdown and
// CSV documents. It is the only layer that knows about currency display:
// the engine computes bare amounts, the renderer marks them up.
package renderer

import (
	"github.com/Rhymond/go-money"

	"github.com/shaikhmech/pulley"
)

// Amount formats a monetary value for display. An ISO-4217 currency code
// formats through its locale rules, any other non-empty string is used as a
// verbatim prefix, and an empty currency renders the bare number.
func Amount(m pulley.Money, currency string) string {
	if currency == "" {
		return m.Decimal().StringFixed(2)
	}
	if cur := money.GetCurrency(currency); cur != nil {
		dec := m.Decimal().Shift(int32(cur.Fraction))
		return cur.Formatter().Format(dec.IntPart())
	}
	return currency + m.Decimal().StringFixed(2)
}

// SignedAmount renders like Amount but with an explicit sign, and "-" for
// zero. Used for difference columns where the sign carries the meaning.
func SignedAmount(m pulley.Money, currency string) string {
	if m.IsZero() {
		return "-"
	}
	if m.IsPositive() {
		return "+" + Amount(m, currency)
	}
	return Amount(m, currency)
}
