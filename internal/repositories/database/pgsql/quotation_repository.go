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

type PgxQuotationRepository struct {
	BaseRepository
}

// newPgxQuotationRepository creates a new repository for quotation documents.
func newPgxQuotationRepository(pool *pgxpool.Pool) portsrepo.QuotationRepositoryWithTx {
	return &PgxQuotationRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.QuotationRepositoryWithTx = (*PgxQuotationRepository)(nil)

const quotationColumns = `quotation_id, quotation_number, customer_name, currency_code, exchange_rate, status, include_tax, shipping_amount, subtotal, discount_amount, tax_amount, total, valid_until, converted_sale_id, created_at, created_by, last_updated_at, last_updated_by`

const quotationLineColumns = `line_id, quotation_id, product_id, description, quantity, unit_price, discount_percentage, tax_percentage, subtotal, discount_amount, tax_amount, total`

func scanQuotation(row pgx.Row) (models.Quotation, error) {
	var q models.Quotation
	err := row.Scan(
		&q.QuotationID,
		&q.QuotationNumber,
		&q.CustomerName,
		&q.CurrencyCode,
		&q.ExchangeRate,
		&q.Status,
		&q.IncludeTax,
		&q.ShippingAmount,
		&q.Subtotal,
		&q.DiscountAmount,
		&q.TaxAmount,
		&q.Total,
		&q.ValidUntil,
		&q.ConvertedSaleID,
		&q.CreatedAt,
		&q.CreatedBy,
		&q.LastUpdatedAt,
		&q.LastUpdatedBy,
	)
	return q, err
}

func scanQuotationLine(row pgx.Row) (models.QuotationLine, error) {
	var l models.QuotationLine
	err := row.Scan(
		&l.LineID,
		&l.QuotationID,
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

// SaveQuotation persists the quotation and its lines atomically.
func (r *PgxQuotationRepository) SaveQuotation(ctx context.Context, quotation domain.Quotation) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	modelQuot := mapping.ToModelQuotation(quotation)
	query := `
		INSERT INTO quotations (` + quotationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	if _, err := tx.Exec(ctx, query,
		modelQuot.QuotationID,
		modelQuot.QuotationNumber,
		modelQuot.CustomerName,
		modelQuot.CurrencyCode,
		modelQuot.ExchangeRate,
		modelQuot.Status,
		modelQuot.IncludeTax,
		modelQuot.ShippingAmount,
		modelQuot.Subtotal,
		modelQuot.DiscountAmount,
		modelQuot.TaxAmount,
		modelQuot.Total,
		modelQuot.ValidUntil,
		modelQuot.ConvertedSaleID,
		modelQuot.CreatedAt,
		modelQuot.CreatedBy,
		modelQuot.LastUpdatedAt,
		modelQuot.LastUpdatedBy,
	); err != nil {
		return fmt.Errorf("failed to insert quotation %s: %w", modelQuot.QuotationID, err)
	}

	lineQuery := `
		INSERT INTO quotation_lines (` + quotationLineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	for _, line := range quotation.Lines {
		modelLine := mapping.ToModelQuotationLine(line)
		if _, err := tx.Exec(ctx, lineQuery,
			modelLine.LineID,
			modelLine.QuotationID,
			modelLine.ProductID,
			modelLine.Description,
			modelLine.Quantity,
			modelLine.UnitPrice,
			modelLine.DiscountPercentage,
			modelLine.TaxPercentage,
			modelLine.Subtotal,
			modelLine.DiscountAmount,
			modelLine.TaxAmount,
			modelLine.Total,
		); err != nil {
			return fmt.Errorf("failed to insert quotation line %s: %w", modelLine.LineID, err)
		}
	}

	return r.Commit(ctx, tx)
}

// UpdateQuotationStatus transitions a quotation to a new status.
func (r *PgxQuotationRepository) UpdateQuotationStatus(ctx context.Context, quotationID string, status domain.QuotationStatus, updatedBy string) error {
	query := `
		UPDATE quotations SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE quotation_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, quotationID, string(status), time.Now(), updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update status of quotation %s: %w", quotationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// MarkConverted inserts the sale built from the quotation and flips the
// quotation to CONVERTED in one transaction. The status guard in the WHERE
// clause makes double conversion impossible even under concurrent requests.
func (r *PgxQuotationRepository) MarkConverted(ctx context.Context, quotationID string, sale domain.Sale, updatedBy string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := insertSale(ctx, tx, sale); err != nil {
		return err
	}

	query := `
		UPDATE quotations
		SET status = $2, converted_sale_id = $3, last_updated_at = $4, last_updated_by = $5
		WHERE quotation_id = $1 AND status != $2;
	`
	tag, err := tx.Exec(ctx, query, quotationID, string(domain.QuotationConverted), sale.SaleID, time.Now(), updatedBy)
	if err != nil {
		return fmt.Errorf("failed to mark quotation %s converted: %w", quotationID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: quotation %s is already converted", apperrors.ErrDuplicate, quotationID)
	}

	return r.Commit(ctx, tx)
}

// FindQuotationByID retrieves a quotation with its lines.
func (r *PgxQuotationRepository) FindQuotationByID(ctx context.Context, quotationID string) (*domain.Quotation, error) {
	query := `
		SELECT ` + quotationColumns + `
		FROM quotations
		WHERE quotation_id = $1;
	`
	modelQuot, err := scanQuotation(r.Pool.QueryRow(ctx, query, quotationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find quotation by ID %s: %w", quotationID, err)
	}

	lineQuery := `
		SELECT ` + quotationLineColumns + `
		FROM quotation_lines
		WHERE quotation_id = $1
		ORDER BY line_id;
	`
	rows, err := r.Pool.Query(ctx, lineQuery, quotationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lines of quotation %s: %w", quotationID, err)
	}
	defer rows.Close()

	modelLines, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.QuotationLine, error) {
		return scanQuotationLine(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan lines of quotation %s: %w", quotationID, err)
	}

	domainQuot := mapping.ToDomainQuotation(modelQuot)
	domainQuot.Lines = mapping.ToDomainQuotationLineSlice(modelLines)
	return &domainQuot, nil
}

// ListQuotations retrieves quotations created before the cursor, newest first.
func (r *PgxQuotationRepository) ListQuotations(ctx context.Context, limit int, createdBefore *time.Time) ([]domain.Quotation, error) {
	query := `
		SELECT ` + quotationColumns + `
		FROM quotations
		WHERE ($2::timestamptz IS NULL OR created_at < $2)
		ORDER BY created_at DESC
		LIMIT $1;
	`
	rows, err := r.Pool.Query(ctx, query, limit, createdBefore)
	if err != nil {
		return nil, fmt.Errorf("failed to query quotations: %w", err)
	}
	defer rows.Close()

	modelQuotations, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Quotation, error) {
		return scanQuotation(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan quotations: %w", err)
	}

	return mapping.ToDomainQuotationSlice(modelQuotations), nil
}
