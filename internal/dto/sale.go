package dto

import (
	"time"

	"github.com/jefremassingue/sales-plat-backend/internal/core/domain"
	"github.com/jefremassingue/sales-plat-backend/internal/core/money"
)

// SaleLineRequest is one row of a sale as entered in the editor. Only the raw
// input fields travel in; every derived figure is computed server-side.
type SaleLineRequest struct {
	ProductID          string       `json:"productID,omitempty"`
	Description        string       `json:"description" binding:"required"`
	Quantity           money.Amount `json:"quantity" binding:"required"`
	UnitPrice          money.Amount `json:"unitPrice" binding:"required"`
	DiscountPercentage money.Amount `json:"discountPercentage"`
	TaxPercentage      money.Amount `json:"taxPercentage"`
}

// CreateSaleRequest defines the data needed to create a sale.
type CreateSaleRequest struct {
	CustomerName   string            `json:"customerName" binding:"required"`
	CurrencyCode   string            `json:"currencyCode" binding:"required,uppercase,len=3"`
	IncludeTax     bool              `json:"includeTax"`
	ShippingAmount money.Amount      `json:"shippingAmount"`
	IssuedAt       *time.Time        `json:"issuedAt,omitempty"`
	Lines          []SaleLineRequest `json:"lines" binding:"dive"`
}

// UpdateSaleStatusRequest transitions a sale's lifecycle status.
type UpdateSaleStatusRequest struct {
	Status domain.SaleStatus `json:"status" binding:"required,oneof=DRAFT ISSUED PAID CANCELLED"`
}

// RegisterPaymentRequest records money received against a sale.
type RegisterPaymentRequest struct {
	Amount    money.Amount `json:"amount" binding:"required"`
	Method    string       `json:"method" binding:"required"`
	Reference string       `json:"reference"`
	PaidAt    *time.Time   `json:"paidAt,omitempty"`
}

// SaleLineResponse is one computed sale row.
type SaleLineResponse struct {
	LineID             string       `json:"lineID"`
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

// SaleResponse defines the data returned for a sale.
type SaleResponse struct {
	SaleID         string             `json:"saleID"`
	SaleNumber     string             `json:"saleNumber"`
	CustomerName   string             `json:"customerName"`
	CurrencyCode   string             `json:"currencyCode"`
	ExchangeRate   money.Amount       `json:"exchangeRate"`
	Status         domain.SaleStatus  `json:"status"`
	IncludeTax     bool               `json:"includeTax"`
	ShippingAmount money.Amount       `json:"shippingAmount"`
	Subtotal       money.Amount       `json:"subtotal"`
	DiscountAmount money.Amount       `json:"discountAmount"`
	TaxAmount      money.Amount       `json:"taxAmount"`
	Total          money.Amount       `json:"total"`
	AmountPaid     money.Amount       `json:"amountPaid"`
	AmountDue      money.Amount       `json:"amountDue"`
	IssuedAt       time.Time          `json:"issuedAt"`
	Lines          []SaleLineResponse `json:"lines,omitempty"`
	CreatedAt      time.Time          `json:"createdAt"`
	CreatedBy      string             `json:"createdBy"`
	LastUpdatedAt  time.Time          `json:"lastUpdatedAt"`
	LastUpdatedBy  string             `json:"lastUpdatedBy"`
}

// ListSalesResponse wraps a sales page with its pagination cursor.
type ListSalesResponse struct {
	Sales     []SaleResponse `json:"sales"`
	NextToken string         `json:"nextToken,omitempty"`
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	PaymentID string       `json:"paymentID"`
	SaleID    string       `json:"saleID"`
	Amount    money.Amount `json:"amount"`
	Method    string       `json:"method"`
	Reference string       `json:"reference,omitempty"`
	PaidAt    time.Time    `json:"paidAt"`
}

// DocumentLine is one row of a printable document, every monetary figure
// already rendered with the document currency's display rules.
type DocumentLine struct {
	Description        string `json:"description"`
	Quantity           string `json:"quantity"`
	UnitPrice          string `json:"unitPrice"`
	DiscountPercentage string `json:"discountPercentage"`
	Subtotal           string `json:"subtotal"`
	TaxAmount          string `json:"taxAmount"`
	Total              string `json:"total"`
}

// DocumentResponse is the display payload shared by the live editor summary
// and the printable invoice/quotation render. Both consume this one shape so
// the printed totals can never drift from what the editor showed.
type DocumentResponse struct {
	DocumentNumber string         `json:"documentNumber"`
	CustomerName   string         `json:"customerName"`
	CurrencyCode   string         `json:"currencyCode"`
	IssuedAt       time.Time      `json:"issuedAt"`
	Lines          []DocumentLine `json:"lines"`
	Subtotal       string         `json:"subtotal"`
	DiscountAmount string         `json:"discountAmount"`
	TaxAmount      string         `json:"taxAmount"`
	ShippingAmount string         `json:"shippingAmount"`
	Total          string         `json:"total"`
	AmountPaid     string         `json:"amountPaid,omitempty"`
	AmountDue      string         `json:"amountDue,omitempty"`
	ValidUntil     *time.Time     `json:"validUntil,omitempty"`
}

// ToSaleLineResponse converts a domain.SaleLine to its response DTO.
func ToSaleLineResponse(l domain.SaleLine) SaleLineResponse {
	return SaleLineResponse{
		LineID:             l.LineID,
		ProductID:          l.ProductID,
		Description:        l.Description,
		Quantity:           l.Quantity,
		UnitPrice:          l.UnitPrice,
		DiscountPercentage: l.DiscountPercentage,
		TaxPercentage:      l.TaxPercentage,
		Subtotal:           l.Subtotal,
		DiscountAmount:     l.DiscountAmount,
		TaxAmount:          l.TaxAmount,
		Total:              l.Total,
	}
}

// ToSaleResponse converts a domain.Sale to a SaleResponse DTO.
func ToSaleResponse(s *domain.Sale) SaleResponse {
	lines := make([]SaleLineResponse, len(s.Lines))
	for i, l := range s.Lines {
		lines[i] = ToSaleLineResponse(l)
	}
	return SaleResponse{
		SaleID:         s.SaleID,
		SaleNumber:     s.SaleNumber,
		CustomerName:   s.CustomerName,
		CurrencyCode:   s.CurrencyCode,
		ExchangeRate:   s.ExchangeRate,
		Status:         s.Status,
		IncludeTax:     s.IncludeTax,
		ShippingAmount: s.ShippingAmount,
		Subtotal:       s.Subtotal,
		DiscountAmount: s.DiscountAmount,
		TaxAmount:      s.TaxAmount,
		Total:          s.Total,
		AmountPaid:     s.AmountPaid,
		AmountDue:      s.AmountDue,
		IssuedAt:       s.IssuedAt,
		Lines:          lines,
		CreatedAt:      s.CreatedAt,
		CreatedBy:      s.CreatedBy,
		LastUpdatedAt:  s.LastUpdatedAt,
		LastUpdatedBy:  s.LastUpdatedBy,
	}
}

// ToListSaleResponse converts a slice of domain.Sale to response DTOs.
func ToListSaleResponse(sales []domain.Sale) []SaleResponse {
	res := make([]SaleResponse, len(sales))
	for i, s := range sales {
		res[i] = ToSaleResponse(&s)
	}
	return res
}

// ToPaymentResponse converts a domain.Payment to its response DTO.
func ToPaymentResponse(p domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID: p.PaymentID,
		SaleID:    p.SaleID,
		Amount:    p.Amount,
		Method:    p.Method,
		Reference: p.Reference,
		PaidAt:    p.PaidAt,
	}
}

// ToListPaymentResponse converts a slice of domain.Payment to response DTOs.
func ToListPaymentResponse(payments []domain.Payment) []PaymentResponse {
	res := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		res[i] = ToPaymentResponse(p)
	}
	return res
}
