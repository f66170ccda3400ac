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
	portsrepo "github.com/jefremassingue/sales-plat-backend/internal/core/ports/repositories"
	"github.com/jefremassingue/sales-plat-backend/internal/models"
	"github.com/jefremassingue/sales-plat-backend/internal/utils/mapping"
)

type PgxSaleRepository struct {
	BaseRepository
}

// newPgxSaleRepository creates a new repository for sales documents.
func newPgxSaleRepository(pool *pgxpool.Pool) portsrepo.SaleRepositoryWithTx {
	return &PgxSaleRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.SaleRepositoryWithTx = (*PgxSaleRepository)(nil)

const saleColumns = `sale_id, sale_number, customer_name, currency_code, exchange_rate, status, include_tax, shipping_amount, subtotal, discount_amount, tax_amount, total, amount_paid, amount_due, issued_at, created_at, created_by, last_updated_at, last_updated_by`

const saleLineColumns = `line_id, sale_id, product_id, description, quantity, unit_price, discount_percentage, tax_percentage, subtotal, discount_amount, tax_amount, total`

func scanSale(row pgx.Row) (models.Sale, error) {
	var s models.Sale
	err := row.Scan(
		&s.SaleID,
		&s.SaleNumber,
		&s.CustomerName,
		&s.CurrencyCode,
		&s.ExchangeRate,
		&s.Status,
		&s.IncludeTax,
		&s.ShippingAmount,
		&s.Subtotal,
		&s.DiscountAmount,
		&s.TaxAmount,
		&s.Total,
		&s.AmountPaid,
		&s.AmountDue,
		&s.IssuedAt,
		&s.CreatedAt,
		&s.CreatedBy,
		&s.LastUpdatedAt,
		&s.LastUpdatedBy,
	)
	return s, err
}

func scanSaleLine(row pgx.Row) (models.SaleLine, error) {
	var l models.SaleLine
	err := row.Scan(
		&l.LineID,
		&l.SaleID,
		&l.ProductID,
		&l.Description,
		&l.Quantity,
		&l.UnitPrice,
		&l.DiscountPercentage,
		&l.TaxPercentage,
		&l.Subtotal,
		&l.DiscountAmount,
		&l.TaxAmount,
		&l.Total,
	)
	return l, err
}

func insertSaleLine(ctx context.Context, tx pgx.Tx, line models.SaleLine) error {
	query := `
		INSERT INTO sale_lines (` + saleLineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := tx.Exec(ctx, query,
		line.LineID,
		line.SaleID,
		line.ProductID,
		line.Description,
		line.Quantity,
		line.UnitPrice,
		line.DiscountPercentage,
		line.TaxPercentage,
		line.Subtotal,
		line.DiscountAmount,
		line.TaxAmount,
		line.Total,
	)
	if err != nil {
		return fmt.Errorf("failed to insert sale line %s: %w", line.LineID, err)
	}
	return nil
}

func insertSale(ctx context.Context, tx pgx.Tx, sale domain.Sale) error {
	modelSale := mapping.ToModelSale(sale)

	query := `
		INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
	`
	_, err := tx.Exec(ctx, query,
		modelSale.SaleID,
		modelSale.SaleNumber,
		modelSale.CustomerName,
		modelSale.CurrencyCode,
		modelSale.ExchangeRate,
		modelSale.Status,
		modelSale.IncludeTax,
		modelSale.ShippingAmount,
		modelSale.Subtotal,
		modelSale.DiscountAmount,
		modelSale.TaxAmount,
		modelSale.Total,
		modelSale.AmountPaid,
		modelSale.AmountDue,
		modelSale.IssuedAt,
		modelSale.CreatedAt,
		modelSale.CreatedBy,
		modelSale.LastUpdatedAt,
		modelSale.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert sale %s: %w", modelSale.SaleID, err)
	}

	for _, line := range sale.Lines {
		if err := insertSaleLine(ctx, tx, mapping.ToModelSaleLine(line)); err != nil {
			return err
		}
	}
	return nil
}

// SaveSale persists the sale and its lines atomically.
func (r *PgxSaleRepository) SaveSale(ctx context.Context, sale domain.Sale) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := insertSale(ctx, tx, sale); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// UpdateSaleStatus transitions a sale to a new status.
func (r *PgxSaleRepository) UpdateSaleStatus(ctx context.Context, saleID string, status domain.SaleStatus, updatedBy string) error {
	query := `
		UPDATE sales SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE sale_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, saleID, string(status), time.Now(), updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update status of sale %s: %w", saleID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SavePayment inserts the payment and applies the re-derived amount_paid,
// amount_due and status to the sale in the same transaction.
func (r *PgxSaleRepository) SavePayment(ctx context.Context, payment domain.Payment, sale domain.Sale) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	modelPayment := mapping.ToModelPayment(payment)
	paymentQuery := `
		INSERT INTO payments (payment_id, sale_id, amount, method, reference, paid_at, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	if _, err := tx.Exec(ctx, paymentQuery,
		modelPayment.PaymentID,
		modelPayment.SaleID,
		modelPayment.Amount,
		modelPayment.Method,
		modelPayment.Reference,
		modelPayment.PaidAt,
		modelPayment.CreatedAt,
		modelPayment.CreatedBy,
		modelPayment.LastUpdatedAt,
		modelPayment.LastUpdatedBy,
	); err != nil {
		return fmt.Errorf("failed to insert payment %s: %w", modelPayment.PaymentID, err)
	}

	modelSale := mapping.ToModelSale(sale)
	saleQuery := `
		UPDATE sales SET amount_paid = $2, amount_due = $3, status = $4, last_updated_at = $5, last_updated_by = $6
		WHERE sale_id = $1;
	`
	tag, err := tx.Exec(ctx, saleQuery,
		modelSale.SaleID,
		modelSale.AmountPaid,
		modelSale.AmountDue,
		modelSale.Status,
		modelSale.LastUpdatedAt,
		modelSale.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to apply payment to sale %s: %w", modelSale.SaleID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

// FindSaleByID retrieves a sale with its lines.
func (r *PgxSaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	saleQuery := `
		SELECT ` + saleColumns + `
		FROM sales
		WHERE sale_id = $1;
	`
	modelSale, err := scanSale(r.Pool.QueryRow(ctx, saleQuery, saleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find sale by ID %s: %w", saleID, err)
	}

	lineQuery := `
		SELECT ` + saleLineColumns + `
		FROM sale_lines
		WHERE sale_id = $1
		ORDER BY line_id;
	`
	rows, err := r.Pool.Query(ctx, lineQuery, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lines of sale %s: %w", saleID, err)
	}
	defer rows.Close()

	modelLines, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.SaleLine, error) {
		return scanSaleLine(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan lines of sale %s: %w", saleID, err)
	}

	domainSale := mapping.ToDomainSale(modelSale)
	domainSale.Lines = mapping.ToDomainSaleLineSlice(modelLines)
	return &domainSale, nil
}

// ListSales retrieves sales before the cursor pair, newest first. The cursor
// pairs issue date with creation time so sales issued at the same moment
// still page deterministically.
func (r *PgxSaleRepository) ListSales(ctx context.Context, limit int, issuedBefore *time.Time, createdBefore *time.Time) ([]domain.Sale, error) {
	query := `
		SELECT ` + saleColumns + `
		FROM sales
		WHERE ($2::timestamptz IS NULL OR (issued_at, created_at) < ($2, $3))
		ORDER BY issued_at DESC, created_at DESC
		LIMIT $1;
	`
	rows, err := r.Pool.Query(ctx, query, limit, issuedBefore, createdBefore)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales: %w", err)
	}
	defer rows.Close()

	modelSales, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Sale, error) {
		return scanSale(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan sales: %w", err)
	}

	return mapping.ToDomainSaleSlice(modelSales), nil
}

// ListPayments retrieves the payments recorded against a sale.
func (r *PgxSaleRepository) ListPayments(ctx context.Context, saleID string) ([]domain.Payment, error) {
	query := `
		SELECT payment_id, sale_id, amount, method, reference, paid_at, created_at, created_by, last_updated_at, last_updated_by
		FROM payments
		WHERE sale_id = $1
		ORDER BY paid_at;
	`
	rows, err := r.Pool.Query(ctx, query, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments of sale %s: %w", saleID, err)
	}
	defer rows.Close()

	modelPayments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Payment, error) {
		var p models.Payment
		err := row.Scan(
			&p.PaymentID,
			&p.SaleID,
			&p.Amount,
			&p.Method,
			&p.Reference,
			&p.PaidAt,
			&p.CreatedAt,
			&p.CreatedBy,
			&p.LastUpdatedAt,
			&p.LastUpdatedBy,
		)
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan payments of sale %s: %w", saleID, err)
	}

	return mapping.ToDomainPaymentSlice(modelPayments), nil
}
