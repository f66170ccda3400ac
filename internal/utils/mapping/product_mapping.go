package mapping

import (
	"github.com/jefremassingue/sales-plat-backend/internal/core/domain"
	"github.com/jefremassingue/sales-plat-backend/internal/models"
)

// ToModelProduct converts a domain Product to a model Product.
func ToModelProduct(d domain.Product) models.Product {
	return models.Product{
		ProductID:     d.ProductID,
		SKU:           d.SKU,
		Name:          d.Name,
		Description:   d.Description,
		UnitPrice:     d.UnitPrice,
		CurrencyCode:  d.CurrencyCode,
		TaxPercentage: d.TaxPercentage,
		StockQuantity: d.StockQuantity,
		IsActive:      d.IsActive,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProduct converts a model Product to a domain Product.
func ToDomainProduct(m models.Product) domain.Product {
	return domain.Product{
		ProductID:     m.ProductID,
		SKU:           m.SKU,
		Name:          m.Name,
		Description:   m.Description,
		UnitPrice:     m.UnitPrice,
		CurrencyCode:  m.CurrencyCode,
		TaxPercentage: m.TaxPercentage,
		StockQuantity: m.StockQuantity,
		IsActive:      m.IsActive,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainProductSlice converts a slice of model Products to domain Products.
func ToDomainProductSlice(ms []models.Product) []domain.Product {
	ds := make([]domain.Product, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProduct(m)
	}
	return ds
}
