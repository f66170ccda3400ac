package models

import (
	"time"

	"github.com/jefremassingue/sales-plat-backend/internal/core/money"
)

// Sale is the persistence representation of a sales document.
type Sale struct {
	SaleID         string       `json:"saleID"` // Primary Key
	SaleNumber     string       `json:"saleNumber"`
	CustomerName   string       `json:"customerName"`
	CurrencyCode   string       `json:"currencyCode"`
	ExchangeRate   money.Amount `json:"exchangeRate"`
	Status         string       `json:"status"`
	IncludeTax     bool         `json:"includeTax"`
	ShippingAmount money.Amount `json:"shippingAmount"`
	Subtotal       money.Amount `json:"subtotal"`
	DiscountAmount money.Amount `json:"discountAmount"`
	TaxAmount      money.Amount `json:"taxAmount"`
	Total          money.Amount `json:"total"`
	AmountPaid     money.Amount `json:"amountPaid"`
	AmountDue      money.Amount `json:"amountDue"`
	IssuedAt       time.Time    `json:"issuedAt"`
	AuditFields
}

// SaleLine is the persistence representation of one sale row.
type SaleLine struct {
	LineID             string       `json:"lineID"` // Primary Key
	SaleID             string       `json:"saleID"`
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

// Payment is the persistence representation of money received on a sale.
type Payment struct {
	PaymentID string       `json:"paymentID"` // Primary Key
	SaleID    string       `json:"saleID"`
	Amount    money.Amount `json:"amount"`
	Method    string       `json:"method"`
	Reference string       `json:"reference"`
	PaidAt    time.Time    `json:"paidAt"`
	AuditFields
}
