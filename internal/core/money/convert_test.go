package money_test

import (
	"testing"

	"github.com/jefremassingue/sales-plat-backend/internal/apperrors"
	"github.com/jefremassingue/sales-plat-backend/internal/core/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	// Rates are expressed against one unit of the base currency.
	mznRate := money.AmountFromInt(1)
	usdRate := money.MustAmount("0.0157")

	// 6400 MZN at 0.0157 USD per MZN-base unit.
	got, err := money.Convert(money.AmountFromInt(6400), mznRate, usdRate)
	require.NoError(t, err)
	assert.Equal(t, "100.48", got.Round(2).String())
}

func TestConvert_RoundTripIdentity(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		rate   string
	}{
		{name: "base currency", amount: "1234.5678", rate: "1"},
		{name: "fractional rate", amount: "1234.5678", rate: "0.0157"},
		{name: "rate above one", amount: "99.99", rate: "63.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount := money.MustAmount(tt.amount)
			rate := money.MustAmount(tt.rate)

			got, err := money.Convert(amount, rate, rate)
			require.NoError(t, err)
			assert.Equal(t, amount.Round(4).String(), got.Round(4).String())
		})
	}
}

func TestConvert_Composition(t *testing.T) {
	amount := money.MustAmount("1250.75")
	usdRate := money.MustAmount("0.0157")
	eurRate := money.MustAmount("0.0145")

	inEUR, err := money.Convert(amount, usdRate, eurRate)
	require.NoError(t, err)
	back, err := money.Convert(inEUR, eurRate, usdRate)
	require.NoError(t, err)

	assert.Equal(t, amount.Round(4).String(), back.Round(4).String())
}

func TestConvert_RejectsNonPositiveRates(t *testing.T) {
	amount := money.AmountFromInt(100)
	valid := money.AmountFromInt(1)

	tests := []struct {
		name     string
		fromRate money.Amount
		toRate   money.Amount
	}{
		{name: "zero source rate", fromRate: money.Zero, toRate: valid},
		{name: "zero target rate", fromRate: valid, toRate: money.Zero},
		{name: "negative source rate", fromRate: money.MustAmount("-1"), toRate: valid},
		{name: "negative target rate", fromRate: valid, toRate: money.MustAmount("-0.5")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := money.Convert(amount, tt.fromRate, tt.toRate)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrInvalidExchangeRate)
		})
	}
}
