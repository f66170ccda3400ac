package services

import (
	"context"

	"github.com/jefremassingue/sales-plat-backend/internal/core/domain"
	"github.com/jefremassingue/sales-plat-backend/internal/dto"
)

// SaleReaderSvc defines read operations for sales
type SaleReaderSvc interface {
	// GetSaleByID retrieves a sale with its lines.
	GetSaleByID(ctx context.Context, saleID string) (*domain.Sale, error)

	// ListSales retrieves a page of sales plus the next-page cursor.
	ListSales(ctx context.Context, limit int, nextToken string) ([]domain.Sale, string, error)

	// ListPayments retrieves the payments recorded against a sale.
	ListPayments(ctx context.Context, saleID string) ([]domain.Payment, error)

	// GetSaleDocument builds the display payload for a sale with every
	// monetary value formatted per the sale currency's rules. The editor
	// summary and the printable invoice both consume this payload.
	GetSaleDocument(ctx context.Context, saleID string) (*dto.DocumentResponse, error)
}

// SaleWriterSvc defines write operations for sales
type SaleWriterSvc interface {
	// CreateSale computes all line and document figures and persists the sale.
	CreateSale(ctx context.Context, req dto.CreateSaleRequest, creatorUserID string) (*domain.Sale, error)

	// UpdateSaleStatus transitions a sale's lifecycle status.
	UpdateSaleStatus(ctx context.Context, saleID string, status domain.SaleStatus, updaterUserID string) (*domain.Sale, error)

	// RegisterPayment records a payment and re-derives the sale's amount paid
	// and amount due.
	RegisterPayment(ctx context.Context, saleID string, req dto.RegisterPaymentRequest, creatorUserID string) (*domain.Sale, error)
}

// SaleSvcFacade combines all sale-related service interfaces
type SaleSvcFacade interface {
	SaleReaderSvc
	SaleWriterSvc
}
