package money

// DocumentTotals aggregates line results plus shipping into document-level
// figures for a sale or quotation.
//
// AmountDue is the raw Total - AmountPaid and is deliberately not clamped at
// zero: a negative value is how overpayment surfaces. Clamping, if wanted,
// is a presentation decision outside this package.
type DocumentTotals struct {
	Subtotal       Amount
	DiscountAmount Amount
	TaxAmount      Amount
	ShippingAmount Amount
	Total          Amount
	AmountPaid     Amount
	AmountDue      Amount
	IncludeTax     bool
}

// AggregateLines folds per-line results and shipping into document totals.
//
// When includeTax is false the aggregated tax is still computed and reported
// but left out of Total (tax-exclusive display mode). An empty line slice is
// a valid draft document and aggregates to all zeros.
func AggregateLines(lines []LineResult, shipping Amount, includeTax bool, amountPaid Amount) DocumentTotals {
	var subtotal, discount, tax Amount
	for _, line := range lines {
		subtotal = subtotal.Add(line.Subtotal)
		discount = discount.Add(line.DiscountAmount)
		tax = tax.Add(line.TaxAmount)
	}

	total := subtotal.Sub(discount)
	if includeTax {
		total = total.Add(tax)
	}
	total = total.Add(shipping)

	return DocumentTotals{
		Subtotal:       subtotal,
		DiscountAmount: discount,
		TaxAmount:      tax,
		ShippingAmount: shipping,
		Total:          total,
		AmountPaid:     amountPaid,
		AmountDue:      total.Sub(amountPaid),
		IncludeTax:     includeTax,
	}
}
