package mapping

import (
	"github.com/jefremassingue/sales-plat-backend/internal/core/domain"
	"github.com/jefremassingue/sales-plat-backend/internal/models"
)

// ToModelSale converts a domain Sale to a model Sale. Lines are mapped
// separately since they live in their own table.
func ToModelSale(d domain.Sale) models.Sale {
	return models.Sale{
		SaleID:         d.SaleID,
		SaleNumber:     d.SaleNumber,
		CustomerName:   d.CustomerName,
		CurrencyCode:   d.CurrencyCode,
		ExchangeRate:   d.ExchangeRate,
		Status:         string(d.Status),
		IncludeTax:     d.IncludeTax,
		ShippingAmount: d.ShippingAmount,
		Subtotal:       d.Subtotal,
		DiscountAmount: d.DiscountAmount,
		TaxAmount:      d.TaxAmount,
		Total:          d.Total,
		AmountPaid:     d.AmountPaid,
		AmountDue:      d.AmountDue,
		IssuedAt:       d.IssuedAt,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSale converts a model Sale to a domain Sale, without lines.
func ToDomainSale(m models.Sale) domain.Sale {
	return domain.Sale{
		SaleID:         m.SaleID,
		SaleNumber:     m.SaleNumber,
		CustomerName:   m.CustomerName,
		CurrencyCode:   m.CurrencyCode,
		ExchangeRate:   m.ExchangeRate,
		Status:         domain.SaleStatus(m.Status),
		IncludeTax:     m.IncludeTax,
		ShippingAmount: m.ShippingAmount,
		Subtotal:       m.Subtotal,
		DiscountAmount: m.DiscountAmount,
		TaxAmount:      m.TaxAmount,
		Total:          m.Total,
		AmountPaid:     m.AmountPaid,
		AmountDue:      m.AmountDue,
		IssuedAt:       m.IssuedAt,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainSaleSlice converts a slice of model Sales to domain Sales.
func ToDomainSaleSlice(ms []models.Sale) []domain.Sale {
	ds := make([]domain.Sale, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSale(m)
	}
	return ds
}

// ToModelSaleLine converts a domain SaleLine to a model SaleLine.
func ToModelSaleLine(d domain.SaleLine) models.SaleLine {
	var productID *string
	if d.ProductID != "" {
		id := d.ProductID
		productID = &id
	}
	return models.SaleLine{
		LineID:             d.LineID,
		SaleID:             d.SaleID,
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

// ToDomainSaleLine converts a model SaleLine to a domain SaleLine.
func ToDomainSaleLine(m models.SaleLine) domain.SaleLine {
	productID := ""
	if m.ProductID != nil {
		productID = *m.ProductID
	}
	return domain.SaleLine{
		LineID:             m.LineID,
		SaleID:             m.SaleID,
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

// ToDomainSaleLineSlice converts a slice of model SaleLines to domain SaleLines.
func ToDomainSaleLineSlice(ms []models.SaleLine) []domain.SaleLine {
	ds := make([]domain.SaleLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSaleLine(m)
	}
	return ds
}

// ToModelPayment converts a domain Payment to a model Payment.
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:   d.PaymentID,
		SaleID:      d.SaleID,
		Amount:      d.Amount,
		Method:      d.Method,
		Reference:   d.Reference,
		PaidAt:      d.PaidAt,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPayment converts a model Payment to a domain Payment.
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:   m.PaymentID,
		SaleID:      m.SaleID,
		Amount:      m.Amount,
		Method:      m.Method,
		Reference:   m.Reference,
		PaidAt:      m.PaidAt,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPaymentSlice converts a slice of model Payments to domain Payments.
func ToDomainPaymentSlice(ms []models.Payment) []domain.Payment {
	ds := make([]domain.Payment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayment(m)
	}
	return ds
}
