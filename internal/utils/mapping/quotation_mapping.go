package mapping

import (
	"github.com/jefremassingue/sales-plat-backend/internal/core/domain"
	"github.com/jefremassingue/sales-plat-backend/internal/models"
)

// ToModelQuotation converts a domain Quotation to a model Quotation.
func ToModelQuotation(d domain.Quotation) models.Quotation {
	var convertedSaleID *string
	if d.ConvertedSaleID != "" {
		id := d.ConvertedSaleID
		convertedSaleID = &id
	}
	return models.Quotation{
		QuotationID:     d.QuotationID,
		QuotationNumber: d.QuotationNumber,
		CustomerName:    d.CustomerName,
		CurrencyCode:    d.CurrencyCode,
		ExchangeRate:    d.ExchangeRate,
		Status:          string(d.Status),
		IncludeTax:      d.IncludeTax,
		ShippingAmount:  d.ShippingAmount,
		Subtotal:        d.Subtotal,
		DiscountAmount:  d.DiscountAmount,
		TaxAmount:       d.TaxAmount,
		Total:           d.Total,
		ValidUntil:      d.ValidUntil,
		ConvertedSaleID: convertedSaleID,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainQuotation converts a model Quotation to a domain Quotation, without lines.
func ToDomainQuotation(m models.Quotation) domain.Quotation {
	convertedSaleID := ""
	if m.ConvertedSaleID != nil {
		convertedSaleID = *m.ConvertedSaleID
	}
	return domain.Quotation{
		QuotationID:     m.QuotationID,
		QuotationNumber: m.QuotationNumber,
		CustomerName:    m.CustomerName,
		CurrencyCode:    m.CurrencyCode,
		ExchangeRate:    m.ExchangeRate,
		Status:          domain.QuotationStatus(m.Status),
		IncludeTax:      m.IncludeTax,
		ShippingAmount:  m.ShippingAmount,
		Subtotal:        m.Subtotal,
		DiscountAmount:  m.DiscountAmount,
		TaxAmount:       m.TaxAmount,
		Total:           m.Total,
		ValidUntil:      m.ValidUntil,
		ConvertedSaleID: convertedSaleID,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainQuotationSlice converts a slice of model Quotations to domain Quotations.
func ToDomainQuotationSlice(ms []models.Quotation) []domain.Quotation {
	ds := make([]domain.Quotation, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainQuotation(m)
	}
	return ds
}

// ToModelQuotationLine converts a domain QuotationLine to a model QuotationLine.
func ToModelQuotationLine(d domain.QuotationLine) models.QuotationLine {
	var productID *string
	if d.ProductID != "" {
		id := d.ProductID
		productID = &id
	}
	return models.QuotationLine{
		LineID:             d.LineID,
		QuotationID:        d.QuotationID,
		ProductID:          productID,
		Description:        d.Description,
		Quantity:           d.Quantity,
		UnitPrice:          d.UnitPrice,
		DiscountPercentage: d.DiscountPercentage,
		TaxPercentage:      d.TaxPercentage,
		Subtotal:           d.Subtotal,
		DiscountAmount:     d.DiscountAmount,
		TaxAmount:          d.TaxAmount,
		Total:              d.Total,
	}
}

// ToDomainQuotationLine converts a model QuotationLine to a domain QuotationLine.
func ToDomainQuotationLine(m models.QuotationLine) domain.QuotationLine {
	productID := ""
	if m.ProductID != nil {
		productID = *m.ProductID
	}
	return domain.QuotationLine{
		LineID:             m.LineID,
		QuotationID:        m.QuotationID,
		ProductID:          productID,
		Description:        m.Description,
		Quantity:           m.Quantity,
		UnitPrice:          m.UnitPrice,
		DiscountPercentage: m.DiscountPercentage,
		TaxPercentage:      m.TaxPercentage,
		Subtotal:           m.Subtotal,
		DiscountAmount:     m.DiscountAmount,
		TaxAmount:          m.TaxAmount,
		Total:              m.Total,
	}
}

// ToDomainQuotationLineSlice converts model QuotationLines to domain QuotationLines.
func ToDomainQuotationLineSlice(ms []models.QuotationLine) []domain.QuotationLine {
	ds := make([]domain.QuotationLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainQuotationLine(m)
	}
	return ds
}
