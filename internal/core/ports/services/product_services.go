package services

import (
	"context"

	"github.com/jefremassingue/sales-plat-backend/internal/core/domain"
	"github.com/jefremassingue/sales-plat-backend/internal/core/money"
	"github.com/jefremassingue/sales-plat-backend/internal/dto"
)

// ProductReaderSvc defines read operations for the catalog
type ProductReaderSvc interface {
	// GetProductByID retrieves a specific product.
	GetProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// ListProducts retrieves a page of products plus the cursor for the next
	// page, empty when the listing is exhausted.
	ListProducts(ctx context.Context, limit int, nextToken string) ([]domain.Product, string, error)
}

// ProductWriterSvc defines write operations for the catalog
type ProductWriterSvc interface {
	// CreateProduct persists a new product.
	CreateProduct(ctx context.Context, req dto.CreateProductRequest, creatorUserID string) (*domain.Product, error)

	// UpdateProduct edits an existing product.
	UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest, updaterUserID string) (*domain.Product, error)

	// DeactivateProduct removes a product from active listings without
	// deleting it.
	DeactivateProduct(ctx context.Context, productID string, updaterUserID string) error

	// AdjustStock applies a signed stock delta, rejecting adjustments that
	// would take stock below zero.
	AdjustStock(ctx context.Context, productID string, delta money.Amount, updaterUserID string) (money.Amount, error)
}

// ProductSvcFacade combines all product-related service interfaces
type ProductSvcFacade interface {
	ProductReaderSvc
	ProductWriterSvc
}
