package domain

import (
	"github.com/jefremassingue/sales-plat-backend/internal/core/money"
)

// Product represents a catalog item (an EPI article) available for sale.
// UnitPrice is expressed in the product's CurrencyCode.
type Product struct {
	ProductID     string       `json:"productID"` // Primary Key (UUID)
	SKU           string       `json:"sku"`       // Unique stock keeping unit
	Name          string       `json:"name"`
	Description   string       `json:"description"`
	UnitPrice     money.Amount `json:"unitPrice"`
	CurrencyCode  string       `json:"currencyCode"`  // FK -> currencies.currency_code
	TaxPercentage money.Amount `json:"taxPercentage"` // Default tax applied when the product is added to a document
	StockQuantity money.Amount `json:"stockQuantity"`
	IsActive      bool         `json:"isActive"`
	AuditFields
}
