package money

var hundred = AmountFromInt(100)

// LineInput holds the raw fields of one sale or quotation line. Range
// validation (non-negative quantity and price, discount within [0,100])
// happens at the request boundary before a LineInput is built.
type LineInput struct {
	Quantity           Amount
	UnitPrice          Amount
	DiscountPercentage Amount
	TaxPercentage      Amount
}

// LineResult holds the computed figures for one line, at full precision.
type LineResult struct {
	Subtotal       Amount
	DiscountAmount Amount
	TaxAmount      Amount
	Total          Amount
}

// ComputeLine derives the subtotal, discount, tax and total for a single
// line. Tax is charged on the post-discount base, never on the raw subtotal;
// that ordering is what every persisted and printed total relies on.
// A zero quantity or unit price yields an all-zero result.
func ComputeLine(in LineInput) LineResult {
	subtotal := in.Quantity.Mul(in.UnitPrice)
	discount := subtotal.Mul(in.DiscountPercentage).Div(hundred)
	tax := subtotal.Sub(discount).Mul(in.TaxPercentage).Div(hundred)

	return LineResult{
		Subtotal:       subtotal,
		DiscountAmount: discount,
		TaxAmount:      tax,
		Total:          subtotal.Sub(discount).Add(tax),
	}
}
