package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Rates converts amounts into a fixed base currency. Table maps a currency
// code to the number of base units one unit of that currency is worth.
type Rates struct {
	Base  string
	Table map[string]decimal.Decimal
}

// NewRates creates an empty rate table targeting the given base currency.
func NewRates(base string) Rates {
	return Rates{
		Base:  base,
		Table: make(map[string]decimal.Decimal),
	}
}

// Convert returns m expressed in the base currency. Amounts already in the
// base currency pass through unchanged; an unknown currency is an error
// because silently keeping the original would corrupt every balance it
// touches.
func (r Rates) Convert(m Money) (Money, error) {
	if m.Currency == r.Base {
		return m, nil
	}
	rate, ok := r.Table[m.Currency]
	if !ok {
		return Money{}, fmt.Errorf("Convert: no exchange rate from %s to %s", m.Currency, r.Base)
	}
	return Money{Amount: m.Amount.Mul(rate), Currency: r.Base}, nil
}
