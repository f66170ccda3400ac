package domain

import (
	"time"

	"github.com/jefremassingue/sales-plat-backend/internal/core/money"
)

// SaleStatus tracks a sale through its lifecycle.
type SaleStatus string

const (
	SaleDraft     SaleStatus = "DRAFT"
	SaleIssued    SaleStatus = "ISSUED"
	SalePaid      SaleStatus = "PAID"
	SaleCancelled SaleStatus = "CANCELLED"
)

// SaleLine is one row of a sale: the raw input fields the user entered plus
// the figures computed from them at submission time. The computed fields are
// persisted so printed documents reproduce exactly what the editor showed.
type SaleLine struct {
	LineID             string       `json:"lineID"` // Primary Key (UUID)
	SaleID             string       `json:"saleID"` // FK -> sales.sale_id
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

// Sale is a sales document: line items plus shipping and payment state.
// ExchangeRate snapshots the currency's rate against the base currency at
// creation so later rate edits do not rewrite issued documents. AmountDue is
// stored raw (Total - AmountPaid); a negative value records overpayment.
type Sale struct {
	SaleID         string       `json:"saleID"` // Primary Key (UUID)
	SaleNumber     string       `json:"saleNumber"`
	CustomerName   string       `json:"customerName"`
	CurrencyCode   string       `json:"currencyCode"` // FK -> currencies.currency_code
	ExchangeRate   money.Amount `json:"exchangeRate"`
	Status         SaleStatus   `json:"status"`
	IncludeTax     bool         `json:"includeTax"`
	ShippingAmount money.Amount `json:"shippingAmount"`
	Subtotal       money.Amount `json:"subtotal"`
	DiscountAmount money.Amount `json:"discountAmount"`
	TaxAmount      money.Amount `json:"taxAmount"`
	Total          money.Amount `json:"total"`
	AmountPaid     money.Amount `json:"amountPaid"`
	AmountDue      money.Amount `json:"amountDue"`
	IssuedAt       time.Time    `json:"issuedAt"`
	Lines          []SaleLine   `json:"lines,omitempty"`
	AuditFields
}

// Payment records money received against a sale.
type Payment struct {
	PaymentID string       `json:"paymentID"` // Primary Key (UUID)
	SaleID    string       `json:"saleID"`    // FK -> sales.sale_id
	Amount    money.Amount `json:"amount"`
	Method    string       `json:"method"` // e.g., "CASH", "TRANSFER"
	Reference string       `json:"reference,omitempty"`
	PaidAt    time.Time    `json:"paidAt"`
	AuditFields
}
