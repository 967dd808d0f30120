package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Currency identifies an ISO 4217 currency by its alphabetic code.
type Currency string

// defaultCurrency is the system default applied by the currency cascade when
// neither the account nor its group carries a currency code.
var defaultCurrency = Currency("USD")

// DefaultCurrency returns the system default currency.
func DefaultCurrency() Currency {
	return defaultCurrency
}

// SetDefaultCurrency overrides the system default currency. Call once at
// startup, before any pipeline runs.
func SetDefaultCurrency(c Currency) {
	if c != "" {
		defaultCurrency = c
	}
}

// ParseCurrency parses a three-letter alphabetic currency code.
func ParseCurrency(field string) (Currency, error) {
	if len(field) != 3 {
		return "", fmt.Errorf("expected 3-letter currency code, got '%s'", field)
	}
	for _, r := range field {
		if r < 'A' || r > 'Z' {
			return "", fmt.Errorf("invalid currency code '%s'", field)
		}
	}
	return Currency(field), nil
}

// Currencies whose minor unit is not the usual two digits.
var currencyExponents = map[Currency]int32{
	"BIF": 0, "CLP": 0, "DJF": 0, "GNF": 0, "ISK": 0, "JPY": 0,
	"KMF": 0, "KRW": 0, "PYG": 0, "RWF": 0, "UGX": 0, "VND": 0,
	"VUV": 0, "XAF": 0, "XOF": 0, "XPF": 0,
	"BHD": 3, "IQD": 3, "JOD": 3, "KWD": 3, "LYD": 3, "OMR": 3, "TND": 3,
}

// Exponent returns the number of minor-unit digits for the currency.
func (c Currency) Exponent() int32 {
	if exp, ok := currencyExponents[c]; ok {
		return exp
	}
	return 2
}

// Money represents a monetary value with currency.
type Money struct {
	Amount   decimal.Decimal `json:"amount" yaml:"amount"`
	Currency Currency        `json:"currency" yaml:"currency"`
}

// NewMoney creates a Money instance from a decimal amount and currency.
func NewMoney(amount decimal.Decimal, currency Currency) Money {
	return Money{
		Amount:   amount,
		Currency: currency,
	}
}

// NewMoneyMinor creates a Money instance from an integer amount in the
// currency's minor units, as transmitted on the wire. 1250 in USD is 12.50,
// 1250 in JPY is 1250.
func NewMoneyMinor(units int64, currency Currency) Money {
	return Money{
		Amount:   decimal.New(units, -currency.Exponent()),
		Currency: currency,
	}
}

// IsZero returns true if the amount is zero.
func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}

// IsNegative returns true if the amount is negative.
func (m Money) IsNegative() bool {
	return m.Amount.IsNegative()
}

// Neg returns the negated money amount.
func (m Money) Neg() Money {
	return Money{
		Amount:   m.Amount.Neg(),
		Currency: m.Currency,
	}
}

// Add adds another Money value to this one.
// Returns an error if currencies don't match.
func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, fmt.Errorf("cannot add different currencies: %s and %s", m.Currency, other.Currency)
	}
	return Money{
		Amount:   m.Amount.Add(other.Amount),
		Currency: m.Currency,
	}, nil
}

// Equal returns true if two Money values are equal (same amount and currency).
func (m Money) Equal(other Money) bool {
	return m.Amount.Equal(other.Amount) && m.Currency == other.Currency
}

// String returns a string representation of the money value, scaled to the
// currency's minor unit.
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Amount.StringFixed(m.Currency.Exponent()), m.Currency)
}
