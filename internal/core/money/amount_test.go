package money_test

import (
	"testing"

	"github.com/jefremassingue/sales-plat-backend/internal/apperrors"
	"github.com/jefremassingue/sales-plat-backend/internal/core/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "plain integer", input: "100", want: "100"},
		{name: "decimal fraction", input: "1234.5678", want: "1234.5678"},
		{name: "negative", input: "-12.5", want: "-12.5"},
		{name: "zero", input: "0", want: "0"},
		{name: "empty string", input: "", wantErr: true},
		{name: "not a number", input: "abc", wantErr: true},
		{name: "NaN rejected", input: "NaN", wantErr: true},
		{name: "infinity rejected", input: "Inf", wantErr: true},
		{name: "double separator", input: "1.2.3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := money.ParseAmount(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestAmountRound_HalfUp(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		places int
		want   string
	}{
		{name: "half rounds up", input: "2.345", places: 2, want: "2.35"},
		{name: "half rounds up at integer boundary", input: "2.5", places: 0, want: "3"},
		{name: "below half rounds down", input: "2.344", places: 2, want: "2.34"},
		{name: "negative half rounds away from zero", input: "-2.345", places: 2, want: "-2.35"},
		{name: "already at precision", input: "10.10", places: 2, want: "10.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := money.MustAmount(tt.input).Round(tt.places)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestAmountDiv_KeepsIntermediatePrecision(t *testing.T) {
	// 1/3 must carry well past the 6 fractional digits the engine guarantees
	// before any display rounding happens.
	got := money.AmountFromInt(1).Div(money.AmountFromInt(3))
	assert.Equal(t, "0.333333333333", got.String())
}

func TestAmountArithmetic(t *testing.T) {
	a := money.MustAmount("10.50")
	b := money.MustAmount("0.25")

	assert.Equal(t, "10.75", a.Add(b).String())
	assert.Equal(t, "10.25", a.Sub(b).String())
	assert.Equal(t, "2.625", a.Mul(b).String())
	assert.Equal(t, "42", a.Div(b).String())
	assert.True(t, a.Neg().IsNegative())
	assert.True(t, money.Zero.IsZero())
}

func TestAmountJSONRoundTrip(t *testing.T) {
	a := money.MustAmount("1234.5678")

	data, err := a.MarshalJSON()
	require.NoError(t, err)

	var back money.Amount
	require.NoError(t, back.UnmarshalJSON(data))
	assert.True(t, a.Equal(back))

	var fromString money.Amount
	require.NoError(t, fromString.UnmarshalJSON([]byte(`"99.95"`)))
	assert.Equal(t, "99.95", fromString.String())

	var bad money.Amount
	err = bad.UnmarshalJSON([]byte(`"not-a-number"`))
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
}
