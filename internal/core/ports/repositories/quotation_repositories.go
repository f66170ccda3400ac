package repositories

import (
	"context"
	"time"

	"github.com/jefremassingue/sales-plat-backend/internal/core/domain"
)

// QuotationReader defines read operations for quotation documents
type QuotationReader interface {
	// FindQuotationByID retrieves a quotation with its lines.
	FindQuotationByID(ctx context.Context, quotationID string) (*domain.Quotation, error)

	// ListQuotations retrieves quotations created before the cursor, newest first.
	ListQuotations(ctx context.Context, limit int, createdBefore *time.Time) ([]domain.Quotation, error)
}

// QuotationWriter defines write operations for quotation documents
type QuotationWriter interface {
	// SaveQuotation persists a quotation and its lines in one transaction.
	SaveQuotation(ctx context.Context, quotation domain.Quotation) error

	// UpdateQuotationStatus transitions a quotation to a new status.
	UpdateQuotationStatus(ctx context.Context, quotationID string, status domain.QuotationStatus, updatedBy string) error

	// MarkConverted persists the new sale and flips the quotation to CONVERTED
	// in a single transaction so a quotation can never convert twice.
	MarkConverted(ctx context.Context, quotationID string, sale domain.Sale, updatedBy string) error
}

// QuotationRepositoryFacade combines all quotation-related repository interfaces
type QuotationRepositoryFacade interface {
	QuotationReader
	QuotationWriter
}

// QuotationRepositoryWithTx extends QuotationRepositoryFacade with transaction capabilities
type QuotationRepositoryWithTx interface {
	QuotationRepositoryFacade
	TransactionManager
}
