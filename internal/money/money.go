package money

import (
	"github.com/shopspring/decimal"
)

// Exponent is the minor-unit precision of the supported currencies (cents).
const Exponent = 2

var symbols = map[string]string{
	"USD": "$",
	"GBP": "£",
	"EUR": "€",
}

// Money is a currency-tagged decimal amount.
//
// Arithmetic keeps full decimal precision so repeated scaling and summation
// stay cent-exact; rounding to the minor unit happens on construction, on
// Round, and when rendering. The rounding mode is half-to-even throughout.
// Add, Sub and Cmp assume both operands carry the same currency; convert
// through a Rates table first when they may not.
type Money struct {
	Amount   decimal.Decimal
	Currency string
}

// New creates a Money rounded to the minor unit.
func New(amount decimal.Decimal, currency string) Money {
	return Money{Amount: amount.RoundBank(Exponent), Currency: currency}
}

// Zero is the zero amount in the given currency.
func Zero(currency string) Money {
	return Money{Amount: decimal.Zero, Currency: currency}
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{Amount: m.Amount.Add(other.Amount), Currency: m.Currency}
}

// Sub returns m - other.
func (m Money) Sub(other Money) Money {
	return Money{Amount: m.Amount.Sub(other.Amount), Currency: m.Currency}
}

// Neg returns -m.
func (m Money) Neg() Money {
	return Money{Amount: m.Amount.Neg(), Currency: m.Currency}
}

// Abs returns |m|.
func (m Money) Abs() Money {
	return Money{Amount: m.Amount.Abs(), Currency: m.Currency}
}

// Scale multiplies the amount by an exact decimal fraction. The result is
// deliberately not rounded: a share of a share must not lose precision
// before it reaches an externally observable boundary.
func (m Money) Scale(f decimal.Decimal) Money {
	return Money{Amount: m.Amount.Mul(f), Currency: m.Currency}
}

// Round returns m rounded half-to-even to the minor unit.
func (m Money) Round() Money {
	return Money{Amount: m.Amount.RoundBank(Exponent), Currency: m.Currency}
}

// Cmp compares amounts: -1 if m < other, 0 if equal, +1 if m > other.
func (m Money) Cmp(other Money) int {
	return m.Amount.Cmp(other.Amount)
}

// IsZero reports whether the amount rounds to zero at the minor unit.
// Sub-cent residue from fractional shares is treated as settled.
func (m Money) IsZero() bool {
	return m.Amount.RoundBank(Exponent).IsZero()
}

// String renders the rounded amount with a currency symbol where one is
// known ("$12.34"), otherwise prefixed with the code ("CHF 12.34").
func (m Money) String() string {
	amt := m.Amount.RoundBank(Exponent).StringFixed(Exponent)
	if sym, ok := symbols[m.Currency]; ok {
		return sym + amt
	}
	return m.Currency + " " + amt
}
