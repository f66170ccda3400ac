package money_test

import (
	"testing"

	"github.com/jefremassingue/sales-plat-backend/internal/core/money"
	"github.com/stretchr/testify/assert"
)

func TestComputeLine(t *testing.T) {
	tests := []struct {
		name         string
		input        money.LineInput
		wantSubtotal string
		wantDiscount string
		wantTax      string
		wantTotal    string
	}{
		{
			// Tax applies to the post-discount base: (1000-100)*16% = 144.
			name: "tax on discounted base",
			input: money.LineInput{
				Quantity:           money.AmountFromInt(10),
				UnitPrice:          money.AmountFromInt(100),
				DiscountPercentage: money.AmountFromInt(10),
				TaxPercentage:      money.AmountFromInt(16),
			},
			wantSubtotal: "1000",
			wantDiscount: "100",
			wantTax:      "144",
			wantTotal:    "1044",
		},
		{
			name: "no discount no tax",
			input: money.LineInput{
				Quantity:  money.MustAmount("2.5"),
				UnitPrice: money.MustAmount("199.90"),
			},
			wantSubtotal: "499.75",
			wantDiscount: "0",
			wantTax:      "0",
			wantTotal:    "499.75",
		},
		{
			name: "zero quantity yields zeros not an error",
			input: money.LineInput{
				Quantity:           money.Zero,
				UnitPrice:          money.AmountFromInt(500),
				DiscountPercentage: money.AmountFromInt(5),
				TaxPercentage:      money.AmountFromInt(16),
			},
			wantSubtotal: "0",
			wantDiscount: "0",
			wantTax:      "0",
			wantTotal:    "0",
		},
		{
			name: "zero unit price yields zeros",
			input: money.LineInput{
				Quantity:      money.AmountFromInt(3),
				UnitPrice:     money.Zero,
				TaxPercentage: money.AmountFromInt(16),
			},
			wantSubtotal: "0",
			wantDiscount: "0",
			wantTax:      "0",
			wantTotal:    "0",
		},
		{
			name: "full discount leaves zero tax base",
			input: money.LineInput{
				Quantity:           money.AmountFromInt(1),
				UnitPrice:          money.AmountFromInt(250),
				DiscountPercentage: money.AmountFromInt(100),
				TaxPercentage:      money.AmountFromInt(16),
			},
			wantSubtotal: "250",
			wantDiscount: "250",
			wantTax:      "0",
			wantTotal:    "0",
		},
		{
			name: "fractional quantity and percentages",
			input: money.LineInput{
				Quantity:           money.MustAmount("1.5"),
				UnitPrice:          money.MustAmount("33.33"),
				DiscountPercentage: money.MustAmount("7.5"),
				TaxPercentage:      money.MustAmount("16"),
			},
			wantSubtotal: "49.995",
			wantDiscount: "3.749625",
			wantTax:      "7.39926",
			wantTotal:    "53.644635",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := money.ComputeLine(tt.input)
			assert.Equal(t, tt.wantSubtotal, got.Subtotal.String(), "subtotal")
			assert.Equal(t, tt.wantDiscount, got.DiscountAmount.String(), "discount")
			assert.Equal(t, tt.wantTax, got.TaxAmount.String(), "tax")
			assert.Equal(t, tt.wantTotal, got.Total.String(), "total")
		})
	}
}

func TestComputeLine_Idempotent(t *testing.T) {
	input := money.LineInput{
		Quantity:           money.MustAmount("3"),
		UnitPrice:          money.MustAmount("149.99"),
		DiscountPercentage: money.MustAmount("12.5"),
		TaxPercentage:      money.MustAmount("16"),
	}

	first := money.ComputeLine(input)
	second := money.ComputeLine(input)
	assert.Equal(t, first, second)
}
