package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jefremassingue/sales-plat-backend/internal/apperrors"
	"github.com/jefremassingue/sales-plat-backend/internal/core/domain"
	"github.com/jefremassingue/sales-plat-backend/internal/core/money"
	portsrepo "github.com/jefremassingue/sales-plat-backend/internal/core/ports/repositories"
	"github.com/jefremassingue/sales-plat-backend/internal/models"
	"github.com/jefremassingue/sales-plat-backend/internal/utils/mapping"
)

type PgxProductRepository struct {
	BaseRepository
}

// newPgxProductRepository creates a new repository for catalog data.
func newPgxProductRepository(pool *pgxpool.Pool) portsrepo.ProductRepositoryWithTx {
	return &PgxProductRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ProductRepositoryWithTx = (*PgxProductRepository)(nil)

const productColumns = `product_id, sku, name, description, unit_price, currency_code, tax_percentage, stock_quantity, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanProduct(row pgx.Row) (models.Product, error) {
	var p models.Product
	err := row.Scan(
		&p.ProductID,
		&p.SKU,
		&p.Name,
		&p.Description,
		&p.UnitPrice,
		&p.CurrencyCode,
		&p.TaxPercentage,
		&p.StockQuantity,
		&p.IsActive,
		&p.CreatedAt,
		&p.CreatedBy,
		&p.LastUpdatedAt,
		&p.LastUpdatedBy,
	)
	return p, err
}

// SaveProduct inserts a new product.
func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	modelProd := mapping.ToModelProduct(product)

	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`

	_, err := r.Pool.Exec(ctx, query,
		modelProd.ProductID,
		modelProd.SKU,
		modelProd.Name,
		modelProd.Description,
		modelProd.UnitPrice,
		modelProd.CurrencyCode,
		modelProd.TaxPercentage,
		modelProd.StockQuantity,
		modelProd.IsActive,
		modelProd.CreatedAt,
		modelProd.CreatedBy,
		modelProd.LastUpdatedAt,
		modelProd.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save product %s: %w", modelProd.ProductID, err)
	}
	return nil
}

// UpdateProduct updates an existing product.
func (r *PgxProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	modelProd := mapping.ToModelProduct(product)

	query := `
		UPDATE products SET
			name = $2,
			description = $3,
			unit_price = $4,
			tax_percentage = $5,
			is_active = $6,
			last_updated_at = $7,
			last_updated_by = $8
		WHERE product_id = $1;
	`

	tag, err := r.Pool.Exec(ctx, query,
		modelProd.ProductID,
		modelProd.Name,
		modelProd.Description,
		modelProd.UnitPrice,
		modelProd.TaxPercentage,
		modelProd.IsActive,
		modelProd.LastUpdatedAt,
		modelProd.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update product %s: %w", modelProd.ProductID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// AdjustStock applies the delta in one statement so concurrent adjustments
// serialize on the row instead of clobbering each other.
func (r *PgxProductRepository) AdjustStock(ctx context.Context, productID string, delta money.Amount, updatedBy string) (money.Amount, error) {
	query := `
		UPDATE products
		SET stock_quantity = stock_quantity + $2,
			last_updated_at = $3,
			last_updated_by = $4
		WHERE product_id = $1 AND stock_quantity + $2 >= 0
		RETURNING stock_quantity;
	`

	var newQuantity money.Amount
	err := r.Pool.QueryRow(ctx, query, productID, delta, time.Now(), updatedBy).Scan(&newQuantity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return money.Zero, fmt.Errorf("%w: product %s missing or stock would go negative", apperrors.ErrValidation, productID)
		}
		return money.Zero, fmt.Errorf("failed to adjust stock for product %s: %w", productID, err)
	}
	return newQuantity, nil
}

// FindProductByID retrieves a specific product.
func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE product_id = $1;
	`
	modelProd, err := scanProduct(r.Pool.QueryRow(ctx, query, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID %s: %w", productID, err)
	}

	domainProd := mapping.ToDomainProduct(modelProd)
	return &domainProd, nil
}

// ListProducts retrieves products created before the cursor, newest first.
func (r *PgxProductRepository) ListProducts(ctx context.Context, limit int, createdBefore *time.Time) ([]domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE ($2::timestamptz IS NULL OR created_at < $2)
		ORDER BY created_at DESC
		LIMIT $1;
	`
	rows, err := r.Pool.Query(ctx, query, limit, createdBefore)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	modelProducts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Product, error) {
		return scanProduct(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan products: %w", err)
	}

	return mapping.ToDomainProductSlice(modelProducts), nil
}
