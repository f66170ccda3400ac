package models

import (
	"github.com/jefremassingue/sales-plat-backend/internal/core/money"
)

// Product is the persistence representation of a catalog item.
type Product struct {
	ProductID     string       `json:"productID"` // Primary Key
	SKU           string       `json:"sku"`
	Name          string       `json:"name"`
	Description   string       `json:"description"`
	UnitPrice     money.Amount `json:"unitPrice"`
	CurrencyCode  string       `json:"currencyCode"`
	TaxPercentage money.Amount `json:"taxPercentage"`
	StockQuantity money.Amount `json:"stockQuantity"`
	IsActive      bool         `json:"isActive"`
	AuditFields
}
