package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCurrency(t *testing.T) {
	cur, err := ParseCurrency("CHF")
	require.NoError(t, err)
	assert.Equal(t, Currency("CHF"), cur)

	_, err = ParseCurrency("US")
	assert.Error(t, err, "currency codes are three letters")

	_, err = ParseCurrency("usd")
	assert.Error(t, err, "currency codes are upper case")

	_, err = ParseCurrency("U5D")
	assert.Error(t, err)
}

func TestCurrencyExponent(t *testing.T) {
	assert.Equal(t, int32(2), Currency("USD").Exponent())
	assert.Equal(t, int32(0), Currency("JPY").Exponent())
	assert.Equal(t, int32(3), Currency("BHD").Exponent())
	assert.Equal(t, int32(2), Currency("XYZ").Exponent(), "unknown currencies default to two minor-unit digits")
}

func TestNewMoneyMinor(t *testing.T) {
	m := NewMoneyMinor(1250, "USD")
	assert.Equal(t, "12.50 USD", m.String())

	m = NewMoneyMinor(1250, "JPY")
	assert.Equal(t, "1250 JPY", m.String())

	m = NewMoneyMinor(1250, "BHD")
	assert.Equal(t, "1.250 BHD", m.String())

	m = NewMoneyMinor(-500, "USD")
	assert.True(t, m.IsNegative())
	assert.Equal(t, "-5.00 USD", m.String())
}

func TestMoneyAdd(t *testing.T) {
	a := NewMoneyMinor(100, "USD")
	b := NewMoneyMinor(250, "USD")
	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.True(t, sum.Equal(NewMoneyMinor(350, "USD")))

	_, err = a.Add(NewMoneyMinor(100, "EUR"))
	assert.Error(t, err, "mixed-currency arithmetic is rejected")
}

func TestMoneyEqual(t *testing.T) {
	assert.True(t, NewMoney(decimal.NewFromInt(5), "USD").Equal(NewMoneyMinor(500, "USD")))
	assert.False(t, NewMoneyMinor(500, "USD").Equal(NewMoneyMinor(500, "EUR")))
	assert.True(t, NewMoneyMinor(0, "USD").IsZero())
	assert.True(t, NewMoneyMinor(500, "USD").Neg().IsNegative())
}

func TestDefaultCurrencyOverride(t *testing.T) {
	defer SetDefaultCurrency("USD")

	assert.Equal(t, Currency("USD"), DefaultCurrency())
	SetDefaultCurrency("EUR")
	assert.Equal(t, Currency("EUR"), DefaultCurrency())
	SetDefaultCurrency("")
	assert.Equal(t, Currency("EUR"), DefaultCurrency(), "empty override is ignored")
}
