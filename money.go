package allocation

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value, as a major unit amount in a currency.
type Money struct {
	value decimal.Decimal
	cur   string
}

// M builds a Money from a numeric value and an ISO 4217 currency code.
func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// currency returns the money's currency metadata.
func (m Money) currency() *money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return money.New(0, m.cur).Currency()
}

// minor returns the amount in the currency's minor units (e.g. cents),
// truncated.
func (m Money) minor() int64 {
	return m.value.Shift(int32(m.currency().Fraction)).IntPart()
}

// fromMinor builds a Money from a minor unit amount in the given currency.
func fromMinor(amount int64, currency string) Money {
	fraction := int32(money.New(0, currency).Currency().Fraction)
	return Money{value: decimal.NewFromInt(amount).Shift(-fraction), cur: currency}
}

// String returns the money value formatted for its currency.
func (m Money) String() string {
	cur := m.currency()
	return cur.Formatter().Format(m.minor())
}

func (m Money) Currency() string   { return m.cur }
func (m Money) Equal(n Money) bool { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool       { return m.value.IsZero() }
func (m Money) IsNegative() bool   { return m.value.IsNegative() }
func (m Money) Add(n Money) Money  { return Money{value: m.value.Add(n.value), cur: m.cur} }
