package repositories

import (
	"context"
	"time"

	"github.com/jefremassingue/sales-plat-backend/internal/core/domain"
	"github.com/jefremassingue/sales-plat-backend/internal/core/money"
)

// ProductReader defines read operations for catalog data
type ProductReader interface {
	// FindProductByID retrieves a specific product by its ID.
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// ListProducts retrieves products created before the cursor, newest first.
	ListProducts(ctx context.Context, limit int, createdBefore *time.Time) ([]domain.Product, error)
}

// ProductWriter defines write operations for catalog data
type ProductWriter interface {
	// SaveProduct persists a new product.
	SaveProduct(ctx context.Context, product domain.Product) error

	// UpdateProduct updates an existing product.
	UpdateProduct(ctx context.Context, product domain.Product) error

	// AdjustStock applies a signed stock delta atomically and returns the new
	// quantity.
	AdjustStock(ctx context.Context, productID string, delta money.Amount, updatedBy string) (money.Amount, error)
}

// ProductRepositoryFacade combines all product-related repository interfaces
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
}

// ProductRepositoryWithTx extends ProductRepositoryFacade with transaction capabilities
type ProductRepositoryWithTx interface {
	ProductRepositoryFacade
	TransactionManager
}
