package domain

import (
	"time"

	"github.com/jefremassingue/sales-plat-backend/internal/core/money"
)

// QuotationStatus tracks a quotation through its lifecycle.
type QuotationStatus string

const (
	QuotationDraft     QuotationStatus = "DRAFT"
	QuotationSent      QuotationStatus = "SENT"
	QuotationAccepted  QuotationStatus = "ACCEPTED"
	QuotationRejected  QuotationStatus = "REJECTED"
	QuotationConverted QuotationStatus = "CONVERTED"
	QuotationExpired   QuotationStatus = "EXPIRED"
)

// QuotationLine mirrors SaleLine for quotation documents.
type QuotationLine struct {
	LineID             string       `json:"lineID"`      // Primary Key (UUID)
	QuotationID        string       `json:"quotationID"` // FK -> quotations.quotation_id
	ProductID          string       `json:"productID,omitempty"`
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

// Quotation is a priced offer that can later be converted into a sale.
// Totals follow the same computation and storage rules as Sale, minus any
// payment state.
type Quotation struct {
	QuotationID     string          `json:"quotationID"` // Primary Key (UUID)
	QuotationNumber string          `json:"quotationNumber"`
	CustomerName    string          `json:"customerName"`
	CurrencyCode    string          `json:"currencyCode"` // FK -> currencies.currency_code
	ExchangeRate    money.Amount    `json:"exchangeRate"`
	Status          QuotationStatus `json:"status"`
	IncludeTax      bool            `json:"includeTax"`
	ShippingAmount  money.Amount    `json:"shippingAmount"`
	Subtotal        money.Amount    `json:"subtotal"`
	DiscountAmount  money.Amount    `json:"discountAmount"`
	TaxAmount       money.Amount    `json:"taxAmount"`
	Total           money.Amount    `json:"total"`
	ValidUntil      time.Time       `json:"validUntil"`
	ConvertedSaleID string          `json:"convertedSaleID,omitempty"` // Set when status is CONVERTED
	Lines           []QuotationLine `json:"lines,omitempty"`
	AuditFields
}
