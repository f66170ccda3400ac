package services

import (
	"fmt"

	"github.com/jefremassingue/sales-plat-backend/internal/apperrors"
	"github.com/jefremassingue/sales-plat-backend/internal/core/domain"
	"github.com/jefremassingue/sales-plat-backend/internal/core/money"
	"github.com/jefremassingue/sales-plat-backend/internal/dto"
)

// validateLineRequest guards the ranges the money engine itself does not
// re-check: amounts parse at the request boundary, ranges are enforced here.
func validateLineRequest(i int, line dto.SaleLineRequest) error {
	if line.Quantity.IsNegative() {
		return fmt.Errorf("%w: line %d quantity cannot be negative", apperrors.ErrValidation, i+1)
	}
	if line.UnitPrice.IsNegative() {
		return fmt.Errorf("%w: line %d unit price cannot be negative", apperrors.ErrValidation, i+1)
	}
	if line.DiscountPercentage.IsNegative() || line.DiscountPercentage.Cmp(money.AmountFromInt(100)) > 0 {
		return fmt.Errorf("%w: line %d discount must be within [0,100]", apperrors.ErrValidation, i+1)
	}
	if line.TaxPercentage.IsNegative() {
		return fmt.Errorf("%w: line %d tax percentage cannot be negative", apperrors.ErrValidation, i+1)
	}
	return nil
}

// computeDocumentLines validates every line request and runs it through the
// line calculator, returning the per-line results in request order.
func computeDocumentLines(lines []dto.SaleLineRequest, shipping money.Amount) ([]money.LineResult, error) {
	if shipping.IsNegative() {
		return nil, fmt.Errorf("%w: shipping amount cannot be negative", apperrors.ErrValidation)
	}

	results := make([]money.LineResult, len(lines))
	for i, line := range lines {
		if err := validateLineRequest(i, line); err != nil {
			return nil, err
		}
		results[i] = money.ComputeLine(money.LineInput{
			Quantity:           line.Quantity,
			UnitPrice:          line.UnitPrice,
			DiscountPercentage: line.DiscountPercentage,
			TaxPercentage:      line.TaxPercentage,
		})
	}
	return results, nil
}

// documentFigures is the currency-agnostic slice of a document that the
// formatted payload is built from. Sales and quotations both project into it.
type documentFigures struct {
	Number         string
	CustomerName   string
	CurrencyCode   string
	Subtotal       money.Amount
	DiscountAmount money.Amount
	TaxAmount      money.Amount
	ShippingAmount money.Amount
	Total          money.Amount
}

// formatDocument renders the document-level figures with the owning
// currency's display rules. Per-line rows are appended by the caller since
// their shapes differ between sales and quotations.
func formatDocument(fig documentFigures, currency *domain.Currency) (*dto.DocumentResponse, error) {
	spec := currency.FormatSpec()

	doc := &dto.DocumentResponse{
		DocumentNumber: fig.Number,
		CustomerName:   fig.CustomerName,
		CurrencyCode:   fig.CurrencyCode,
	}

	var err error
	if doc.Subtotal, err = money.Format(fig.Subtotal, spec, true); err != nil {
		return nil, err
	}
	if doc.DiscountAmount, err = money.Format(fig.DiscountAmount, spec, true); err != nil {
		return nil, err
	}
	if doc.TaxAmount, err = money.Format(fig.TaxAmount, spec, true); err != nil {
		return nil, err
	}
	if doc.ShippingAmount, err = money.Format(fig.ShippingAmount, spec, true); err != nil {
		return nil, err
	}
	if doc.Total, err = money.Format(fig.Total, spec, true); err != nil {
		return nil, err
	}
	return doc, nil
}

// formatDocumentLine renders one row of a printable document. All monetary
// values go through the same formatter the editor summary uses.
func formatDocumentLine(description string, quantity, unitPrice, discountPct, subtotal, taxAmount, total money.Amount, spec money.FormatSpec) (dto.DocumentLine, error) {
	line := dto.DocumentLine{
		Description:        description,
		Quantity:           quantity.String(),
		DiscountPercentage: discountPct.String() + "%",
	}

	var err error
	if line.UnitPrice, err = money.Format(unitPrice, spec, true); err != nil {
		return dto.DocumentLine{}, err
	}
	if line.Subtotal, err = money.Format(subtotal, spec, true); err != nil {
		return dto.DocumentLine{}, err
	}
	if line.TaxAmount, err = money.Format(taxAmount, spec, true); err != nil {
		return dto.DocumentLine{}, err
	}
	if line.Total, err = money.Format(total, spec, true); err != nil {
		return dto.DocumentLine{}, err
	}
	return line, nil
}
