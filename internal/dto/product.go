package dto

import (
	"time"

	"github.com/jefremassingue/sales-plat-backend/internal/core/domain"
	"github.com/jefremassingue/sales-plat-backend/internal/core/money"
)

// CreateProductRequest defines the data needed to create a catalog item.
type CreateProductRequest struct {
	SKU           string       `json:"sku" binding:"required"`
	Name          string       `json:"name" binding:"required"`
	Description   string       `json:"description"`
	UnitPrice     money.Amount `json:"unitPrice" binding:"required"`
	CurrencyCode  string       `json:"currencyCode" binding:"required,uppercase,len=3"`
	TaxPercentage money.Amount `json:"taxPercentage"`
	StockQuantity money.Amount `json:"stockQuantity"`
}

// UpdateProductRequest defines the editable fields of a product.
type UpdateProductRequest struct {
	Name          *string       `json:"name,omitempty"`
	Description   *string       `json:"description,omitempty"`
	UnitPrice     *money.Amount `json:"unitPrice,omitempty"`
	TaxPercentage *money.Amount `json:"taxPercentage,omitempty"`
}

// AdjustStockRequest applies a signed delta to a product's stock.
type AdjustStockRequest struct {
	Delta money.Amount `json:"delta" binding:"required"`
}

// ProductResponse defines the data returned for a product. FormattedPrice is
// the unit price rendered with the product currency's display rules.
type ProductResponse struct {
	ProductID      string       `json:"productID"`
	SKU            string       `json:"sku"`
	Name           string       `json:"name"`
	Description    string       `json:"description"`
	UnitPrice      money.Amount `json:"unitPrice"`
	FormattedPrice string       `json:"formattedPrice,omitempty"`
	CurrencyCode   string       `json:"currencyCode"`
	TaxPercentage  money.Amount `json:"taxPercentage"`
	StockQuantity  money.Amount `json:"stockQuantity"`
	IsActive       bool         `json:"isActive"`
	CreatedAt      time.Time    `json:"createdAt"`
	LastUpdatedAt  time.Time    `json:"lastUpdatedAt"`
}

// ListProductsResponse wraps a product page with its pagination cursor.
type ListProductsResponse struct {
	Products  []ProductResponse `json:"products"`
	NextToken string            `json:"nextToken,omitempty"`
}

// ToProductResponse converts a domain.Product to a ProductResponse DTO.
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID:     p.ProductID,
		SKU:           p.SKU,
		Name:          p.Name,
		Description:   p.Description,
		UnitPrice:     p.UnitPrice,
		CurrencyCode:  p.CurrencyCode,
		TaxPercentage: p.TaxPercentage,
		StockQuantity: p.StockQuantity,
		IsActive:      p.IsActive,
		CreatedAt:     p.CreatedAt,
		LastUpdatedAt: p.LastUpdatedAt,
	}
}

// ToListProductResponse converts a slice of domain.Product to response DTOs.
func ToListProductResponse(products []domain.Product) []ProductResponse {
	res := make([]ProductResponse, len(products))
	for i, p := range products {
		res[i] = ToProductResponse(&p)
	}
	return res
}
