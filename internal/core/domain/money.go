package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Money is a currency amount in major units. It always renders with two
// fraction digits ("4.50"), both in String and in JSON.
type Money struct {
	decimal.Decimal
}

// NewMoney parses a decimal string such as "4.50" or "12".
func NewMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("%w: invalid amount %q", ErrValidation, s)
	}
	return Money{Decimal: d}, nil
}

// MustMoney is NewMoney for literals known to be valid (seed data, tests).
func MustMoney(s string) Money {
	m, err := NewMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) String() string {
	return m.StringFixed(2)
}

// MinorUnits returns the amount in the smallest currency unit, rounded to the
// nearest cent (half away from zero).
func (m Money) MinorUnits() int64 {
	return m.Mul(hundred).Round(0).IntPart()
}

// Times multiplies the amount by an item quantity.
func (m Money) Times(qty int) Money {
	return Money{Decimal: m.Mul(decimal.NewFromInt(int64(qty)))}
}

// Plus adds two amounts.
func (m Money) Plus(o Money) Money {
	return Money{Decimal: m.Add(o.Decimal)}
}

// MarshalJSON renders the amount as a quoted fixed-point string.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON accepts both quoted strings and bare JSON numbers.
func (m *Money) UnmarshalJSON(b []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		return fmt.Errorf("%w: invalid amount", ErrValidation)
	}
	m.Decimal = d
	return nil
}
