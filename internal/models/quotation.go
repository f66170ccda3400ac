package models

import (
	"time"

	"github.com/jefremassingue/sales-plat-backend/internal/core/money"
)

// Quotation is the persistence representation of a quotation document.
type Quotation struct {
	QuotationID     string       `json:"quotationID"` // Primary Key
	QuotationNumber string       `json:"quotationNumber"`
	CustomerName    string       `json:"customerName"`
	CurrencyCode    string       `json:"currencyCode"`
	ExchangeRate    money.Amount `json:"exchangeRate"`
	Status          string       `json:"status"`
	IncludeTax      bool         `json:"includeTax"`
	ShippingAmount  money.Amount `json:"shippingAmount"`
	Subtotal        money.Amount `json:"subtotal"`
	DiscountAmount  money.Amount `json:"discountAmount"`
	TaxAmount       money.Amount `json:"taxAmount"`
	Total           money.Amount `json:"total"`
	ValidUntil      time.Time    `json:"validUntil"`
	ConvertedSaleID *string      `json:"convertedSaleID,omitempty"` // Nullable FK
	AuditFields
}

// QuotationLine is the persistence representation of one quotation row.
type QuotationLine struct {
	LineID             string       `json:"lineID"` // Primary Key
	QuotationID        string       `json:"quotationID"`
	ProductID          *string      `json:"productID,omitempty"` // Nullable FK
	Description        string       `json:"description"`
	Quantity           money.Amount `json:"quantity"`
	UnitPrice          money.Amount `json:"unitPrice"`
	DiscountPercentage money.Amount `json:"discountPercentage"`
	TaxPercentage      money.Amount `json:"taxPercentage"`
	Subtotal           money.Amount `json:"subtotal"`
	DiscountAmount     money.Amount `json:"discountAmount"`
	TaxAmount          money.Amount `json:"taxAmount"`
	Total              money.Amount `json:"total"`
}
