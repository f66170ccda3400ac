package repositories

import (
	"context"
	"time"

	"github.com/jefremassingue/sales-plat-backend/internal/core/domain"
)

// SaleReader defines read operations for sales documents
type SaleReader interface {
	// FindSaleByID retrieves a sale with its lines.
	FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error)

	// ListSales retrieves sales issued before the cursor pair, newest first.
	ListSales(ctx context.Context, limit int, issuedBefore *time.Time, createdBefore *time.Time) ([]domain.Sale, error)

	// ListPayments retrieves all payments recorded against a sale.
	ListPayments(ctx context.Context, saleID string) ([]domain.Payment, error)
}

// SaleWriter defines write operations for sales documents
type SaleWriter interface {
	// SaveSale persists a sale and its lines in one transaction.
	SaveSale(ctx context.Context, sale domain.Sale) error

	// UpdateSaleStatus transitions a sale to a new status.
	UpdateSaleStatus(ctx context.Context, saleID string, status domain.SaleStatus, updatedBy string) error

	// SavePayment persists a payment and updates the sale's amount_paid and
	// amount_due in the same transaction.
	SavePayment(ctx context.Context, payment domain.Payment, sale domain.Sale) error
}

// SaleRepositoryFacade combines all sale-related repository interfaces
type SaleRepositoryFacade interface {
	SaleReader
	SaleWriter
}

// SaleRepositoryWithTx extends SaleRepositoryFacade with transaction capabilities
type SaleRepositoryWithTx interface {
	SaleRepositoryFacade
	TransactionManager
}
