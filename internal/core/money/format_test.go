package money_test

import (
	"testing"

	"github.com/jefremassingue/sales-plat-backend/internal/apperrors"
	"github.com/jefremassingue/sales-plat-backend/internal/core/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mznSpec() money.FormatSpec {
	return money.FormatSpec{
		Symbol:            "MT",
		DecimalPlaces:     2,
		DecimalSeparator:  ",",
		ThousandSeparator: ".",
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name          string
		amount        string
		spec          money.FormatSpec
		includeSymbol bool
		want          string
	}{
		{
			name:          "MZN style grouping",
			amount:        "1234567.89",
			spec:          mznSpec(),
			includeSymbol: true,
			want:          "MT 1.234.567,89",
		},
		{
			name:   "without symbol",
			amount: "1234567.89",
			spec:   mznSpec(),
			want:   "1.234.567,89",
		},
		{
			name:          "small amount no grouping",
			amount:        "950",
			spec:          mznSpec(),
			includeSymbol: true,
			want:          "MT 950,00",
		},
		{
			name:          "rounds half up to currency places",
			amount:        "10.555",
			spec:          mznSpec(),
			includeSymbol: true,
			want:          "MT 10,56",
		},
		{
			name:   "zero decimal places omits the separator",
			amount: "1234567.89",
			spec: money.FormatSpec{
				Symbol:            "¥",
				DecimalPlaces:     0,
				DecimalSeparator:  ".",
				ThousandSeparator: ",",
			},
			includeSymbol: true,
			want:          "¥ 1,234,568",
		},
		{
			name:   "four decimal places",
			amount: "42.12345",
			spec: money.FormatSpec{
				Symbol:            "$",
				DecimalPlaces:     4,
				DecimalSeparator:  ".",
				ThousandSeparator: ",",
			},
			want: "42.1235",
		},
		{
			name:          "negative takes the sign before the symbol",
			amount:        "-956",
			spec:          mznSpec(),
			includeSymbol: true,
			want:          "-MT 956,00",
		},
		{
			name:          "zero",
			amount:        "0",
			spec:          mznSpec(),
			includeSymbol: true,
			want:          "MT 0,00",
		},
		{
			name:   "exact group boundary",
			amount: "100000",
			spec:   mznSpec(),
			want:   "100.000,00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := money.Format(money.MustAmount(tt.amount), tt.spec, tt.includeSymbol)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_RejectsOutOfRangeDecimalPlaces(t *testing.T) {
	for _, places := range []int{-1, 5, 18} {
		spec := mznSpec()
		spec.DecimalPlaces = places

		_, err := money.Format(money.AmountFromInt(1), spec, true)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrInvalidDecimalPlaces)
	}
}

func TestFormat_Idempotent(t *testing.T) {
	amount := money.MustAmount("1044")

	first, err := money.Format(amount, mznSpec(), true)
	require.NoError(t, err)
	second, err := money.Format(amount, mznSpec(), true)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
