package dto

import (
	"time"

	"github.com/jefremassingue/sales-plat-backend/internal/core/domain"
	"github.com/jefremassingue/sales-plat-backend/internal/core/money"
)

// CreateQuotationRequest defines the data needed to create a quotation.
// Lines reuse the sale line shape; both document kinds share one computation.
type CreateQuotationRequest struct {
	CustomerName   string            `json:"customerName" binding:"required"`
	CurrencyCode   string            `json:"currencyCode" binding:"required,uppercase,len=3"`
	IncludeTax     bool              `json:"includeTax"`
	ShippingAmount money.Amount      `json:"shippingAmount"`
	ValidUntil     time.Time         `json:"validUntil" binding:"required"`
	Lines          []SaleLineRequest `json:"lines" binding:"dive"`
}

// UpdateQuotationStatusRequest transitions a quotation's lifecycle status.
// Conversion happens through its own endpoint, not through this request.
type UpdateQuotationStatusRequest struct {
	Status domain.QuotationStatus `json:"status" binding:"required,oneof=DRAFT SENT ACCEPTED REJECTED EXPIRED"`
}

// QuotationLineResponse is one computed quotation row.
type QuotationLineResponse struct {
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

// QuotationResponse defines the data returned for a quotation.
type QuotationResponse struct {
	QuotationID     string                  `json:"quotationID"`
	QuotationNumber string                  `json:"quotationNumber"`
	CustomerName    string                  `json:"customerName"`
	CurrencyCode    string                  `json:"currencyCode"`
	ExchangeRate    money.Amount            `json:"exchangeRate"`
	Status          domain.QuotationStatus  `json:"status"`
	IncludeTax      bool                    `json:"includeTax"`
	ShippingAmount  money.Amount            `json:"shippingAmount"`
	Subtotal        money.Amount            `json:"subtotal"`
	DiscountAmount  money.Amount            `json:"discountAmount"`
	TaxAmount       money.Amount            `json:"taxAmount"`
	Total           money.Amount            `json:"total"`
	ValidUntil      time.Time               `json:"validUntil"`
	ConvertedSaleID string                  `json:"convertedSaleID,omitempty"`
	Lines           []QuotationLineResponse `json:"lines,omitempty"`
	CreatedAt       time.Time               `json:"createdAt"`
	CreatedBy       string                  `json:"createdBy"`
	LastUpdatedAt   time.Time               `json:"lastUpdatedAt"`
	LastUpdatedBy   string                  `json:"lastUpdatedBy"`
}

// ListQuotationsResponse wraps a quotation page with its pagination cursor.
type ListQuotationsResponse struct {
	Quotations []QuotationResponse `json:"quotations"`
	NextToken  string              `json:"nextToken,omitempty"`
}

// ToQuotationLineResponse converts a domain.QuotationLine to its response DTO.
func ToQuotationLineResponse(l domain.QuotationLine) QuotationLineResponse {
	return QuotationLineResponse{
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

// ToQuotationResponse converts a domain.Quotation to a QuotationResponse DTO.
func ToQuotationResponse(q *domain.Quotation) QuotationResponse {
	lines := make([]QuotationLineResponse, len(q.Lines))
	for i, l := range q.Lines {
		lines[i] = ToQuotationLineResponse(l)
	}
	return QuotationResponse{
		QuotationID:     q.QuotationID,
		QuotationNumber: q.QuotationNumber,
		CustomerName:    q.CustomerName,
		CurrencyCode:    q.CurrencyCode,
		ExchangeRate:    q.ExchangeRate,
		Status:          q.Status,
		IncludeTax:      q.IncludeTax,
		ShippingAmount:  q.ShippingAmount,
		Subtotal:        q.Subtotal,
		DiscountAmount:  q.DiscountAmount,
		TaxAmount:       q.TaxAmount,
		Total:           q.Total,
		ValidUntil:      q.ValidUntil,
		ConvertedSaleID: q.ConvertedSaleID,
		Lines:           lines,
		CreatedAt:       q.CreatedAt,
		CreatedBy:       q.CreatedBy,
		LastUpdatedAt:   q.LastUpdatedAt,
		LastUpdatedBy:   q.LastUpdatedBy,
	}
}

// ToListQuotationResponse converts a slice of domain.Quotation to response DTOs.
func ToListQuotationResponse(quotations []domain.Quotation) []QuotationResponse {
	res := make([]QuotationResponse, len(quotations))
	for i, q := range quotations {
		res[i] = ToQuotationResponse(&q)
	}
	return res
}
