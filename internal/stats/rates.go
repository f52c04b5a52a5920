package stats

import (
	"github.com/nicehand/nicehand/internal/session"
)

// ExchangeRates maps a currency to its value in terms of USD, the
// fixed base currency. rate[USD] is pinned to 1; the table is
// user-editable and can be reset to the built-in defaults.
type ExchangeRates map[session.Currency]float64

// DefaultRates returns the built-in exchange-rate table
func DefaultRates() ExchangeRates {
	return ExchangeRates{
		session.USD: 1,
		session.CNY: 7.2,
		session.HKD: 7.8,
		session.EUR: 0.92,
	}
}

// Rate returns the rate for a currency, defaulting to 1 for unknown or
// missing entries so a partial table never divides by zero
func (r ExchangeRates) Rate(c session.Currency) float64 {
	if rate, ok := r[c]; ok && rate != 0 {
		return rate
	}
	return 1
}

// ToBase converts an amount from the given currency into USD
func (r ExchangeRates) ToBase(amount float64, c session.Currency) float64 {
	return amount / r.Rate(c)
}

// FromBase converts a USD amount into the given currency
func (r ExchangeRates) FromBase(amount float64, c session.Currency) float64 {
	return amount * r.Rate(c)
}
