package services

import (
	"context"

	"github.com/jefremassingue/sales-plat-backend/internal/core/domain"
	"github.com/jefremassingue/sales-plat-backend/internal/dto"
)

// QuotationReaderSvc defines read operations for quotations
type QuotationReaderSvc interface {
	// GetQuotationByID retrieves a quotation with its lines.
	GetQuotationByID(ctx context.Context, quotationID string) (*domain.Quotation, error)

	// ListQuotations retrieves a page of quotations plus the next-page cursor.
	ListQuotations(ctx context.Context, limit int, nextToken string) ([]domain.Quotation, string, error)

	// GetQuotationDocument builds the formatted display payload for a
	// quotation, sharing the sale document shape.
	GetQuotationDocument(ctx context.Context, quotationID string) (*dto.DocumentResponse, error)
}

// QuotationWriterSvc defines write operations for quotations
type QuotationWriterSvc interface {
	// CreateQuotation computes all figures and persists the quotation.
	CreateQuotation(ctx context.Context, req dto.CreateQuotationRequest, creatorUserID string) (*domain.Quotation, error)

	// UpdateQuotationStatus transitions a quotation's lifecycle status.
	UpdateQuotationStatus(ctx context.Context, quotationID string, status domain.QuotationStatus, updaterUserID string) (*domain.Quotation, error)

	// ConvertToSale re-computes the quotation's figures into a new draft sale
	// and marks the quotation converted, atomically.
	ConvertToSale(ctx context.Context, quotationID string, creatorUserID string) (*domain.Sale, error)
}

// QuotationSvcFacade combines all quotation-related service interfaces
type QuotationSvcFacade interface {
	QuotationReaderSvc
	QuotationWriterSvc
}
