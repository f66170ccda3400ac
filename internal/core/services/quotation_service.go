package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jefremassingue/sales-plat-backend/internal/apperrors"
	"github.com/jefremassingue/sales-plat-backend/internal/core/domain"
	"github.com/jefremassingue/sales-plat-backend/internal/core/money"
	portsrepo "github.com/jefremassingue/sales-plat-backend/internal/core/ports/repositories"
	portssvc "github.com/jefremassingue/sales-plat-backend/internal/core/ports/services"
	"github.com/jefremassingue/sales-plat-backend/internal/dto"
	"github.com/jefremassingue/sales-plat-backend/internal/utils/pagination"
)

// quotationService provides business logic for quotations. Quotations share
// the sale computation pipeline but carry no payment state; converting one
// re-runs the pipeline into a fresh draft sale.
type quotationService struct {
	quotationRepo   portsrepo.QuotationRepositoryFacade
	currencyService portssvc.CurrencyReaderSvc
}

// NewQuotationService creates a new quotation service.
func NewQuotationService(quotationRepo portsrepo.QuotationRepositoryFacade, currencyService portssvc.CurrencyReaderSvc) portssvc.QuotationSvcFacade {
	return &quotationService{
		quotationRepo:   quotationRepo,
		currencyService: currencyService,
	}
}

var _ portssvc.QuotationSvcFacade = (*quotationService)(nil)

// CreateQuotation validates the request, computes every line and the document
// totals, snapshots the currency's exchange rate, and persists the result.
func (s *quotationService) CreateQuotation(ctx context.Context, req dto.CreateQuotationRequest, creatorUserID string) (*domain.Quotation, error) {
	currency, err := s.currencyService.GetCurrencyByCode(ctx, req.CurrencyCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: currency code '%s' not found", apperrors.ErrValidation, req.CurrencyCode)
		}
		return nil, fmt.Errorf("failed to validate currency '%s': %w", req.CurrencyCode, err)
	}

	results, err := computeDocumentLines(req.Lines, req.ShippingAmount)
	if err != nil {
		return nil, err
	}
	totals := money.AggregateLines(results, req.ShippingAmount, req.IncludeTax, money.Zero)

	now := time.Now()
	if !req.ValidUntil.After(now) {
		return nil, fmt.Errorf("%w: validUntil must be in the future", apperrors.ErrValidation)
	}

	quotation := domain.Quotation{
		QuotationID:     uuid.NewString(),
		QuotationNumber: newDocumentNumber("CT", now),
		CustomerName:    req.CustomerName,
		CurrencyCode:    currency.CurrencyCode,
		ExchangeRate:    currency.ExchangeRate,
		Status:          domain.QuotationDraft,
		IncludeTax:      req.IncludeTax,
		ShippingAmount:  req.ShippingAmount,
		Subtotal:        totals.Subtotal,
		DiscountAmount:  totals.DiscountAmount,
		TaxAmount:       totals.TaxAmount,
		Total:           totals.Total,
		ValidUntil:      req.ValidUntil,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	quotation.Lines = make([]domain.QuotationLine, len(req.Lines))
	for i, line := range req.Lines {
		quotation.Lines[i] = domain.QuotationLine{
			LineID:             uuid.NewString(),
			QuotationID:        quotation.QuotationID,
			ProductID:          line.ProductID,
			Description:        line.Description,
			Quantity:           line.Quantity,
			UnitPrice:          line.UnitPrice,
			DiscountPercentage: line.DiscountPercentage,
			TaxPercentage:      line.TaxPercentage,
			Subtotal:           results[i].Subtotal,
			DiscountAmount:     results[i].DiscountAmount,
			TaxAmount:          results[i].TaxAmount,
			Total:              results[i].Total,
		}
	}

	if err := s.quotationRepo.SaveQuotation(ctx, quotation); err != nil {
		return nil, fmt.Errorf("failed to create quotation in service: %w", err)
	}
	return &quotation, nil
}

// GetQuotationByID retrieves a quotation with its lines.
func (s *quotationService) GetQuotationByID(ctx context.Context, quotationID string) (*domain.Quotation, error) {
	quotation, err := s.quotationRepo.FindQuotationByID(ctx, quotationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get quotation in service: %w", err)
	}
	return quotation, nil
}

// ListQuotations retrieves a page of quotations ordered by creation time.
func (s *quotationService) ListQuotations(ctx context.Context, limit int, nextToken string) ([]domain.Quotation, string, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var createdBefore *time.Time
	if nextToken != "" {
		created, err := pagination.DecodeDateBasedToken(nextToken)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		createdBefore = &created
	}

	quotations, err := s.quotationRepo.ListQuotations(ctx, limit+1, createdBefore)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list quotations in service: %w", err)
	}

	token := ""
	if len(quotations) > limit {
		quotations = quotations[:limit]
		token = pagination.EncodeDateBasedToken(quotations[limit-1].CreatedAt)
	}
	return quotations, token, nil
}

// UpdateQuotationStatus transitions a quotation's lifecycle status. CONVERTED
// is reserved for ConvertToSale.
func (s *quotationService) UpdateQuotationStatus(ctx context.Context, quotationID string, status domain.QuotationStatus, updaterUserID string) (*domain.Quotation, error) {
	if status == domain.QuotationConverted {
		return nil, fmt.Errorf("%w: conversion happens through the convert operation", apperrors.ErrValidation)
	}

	quotation, err := s.quotationRepo.FindQuotationByID(ctx, quotationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load quotation %s: %w", quotationID, err)
	}
	if quotation.Status == domain.QuotationConverted {
		return nil, fmt.Errorf("%w: converted quotations cannot change status", apperrors.ErrValidation)
	}

	if err := s.quotationRepo.UpdateQuotationStatus(ctx, quotationID, status, updaterUserID); err != nil {
		return nil, fmt.Errorf("failed to update quotation %s status: %w", quotationID, err)
	}
	quotation.Status = status
	return quotation, nil
}

// ConvertToSale turns an accepted quotation into a new draft sale. The lines
// are re-run through the computation pipeline rather than copied, so the sale
// holds figures the engine itself produced; the stored quotation totals act
// as the cross-check that nothing drifted.
func (s *quotationService) ConvertToSale(ctx context.Context, quotationID string, creatorUserID string) (*domain.Sale, error) {
	quotation, err := s.quotationRepo.FindQuotationByID(ctx, quotationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load quotation %s: %w", quotationID, err)
	}
	if quotation.Status == domain.QuotationConverted {
		return nil, fmt.Errorf("%w: quotation %s is already converted", apperrors.ErrDuplicate, quotationID)
	}
	if quotation.Status == domain.QuotationRejected || quotation.Status == domain.QuotationExpired {
		return nil, fmt.Errorf("%w: a %s quotation cannot convert to a sale", apperrors.ErrValidation, quotation.Status)
	}

	results := make([]money.LineResult, len(quotation.Lines))
	for i, line := range quotation.Lines {
		results[i] = money.ComputeLine(money.LineInput{
			Quantity:           line.Quantity,
			UnitPrice:          line.UnitPrice,
			DiscountPercentage: line.DiscountPercentage,
			TaxPercentage:      line.TaxPercentage,
		})
	}
	totals := money.AggregateLines(results, quotation.ShippingAmount, quotation.IncludeTax, money.Zero)

	now := time.Now()
	sale := domain.Sale{
		SaleID:         uuid.NewString(),
		SaleNumber:     newDocumentNumber("VD", now),
		CustomerName:   quotation.CustomerName,
		CurrencyCode:   quotation.CurrencyCode,
		ExchangeRate:   quotation.ExchangeRate,
		Status:         domain.SaleDraft,
		IncludeTax:     quotation.IncludeTax,
		ShippingAmount: quotation.ShippingAmount,
		Subtotal:       totals.Subtotal,
		DiscountAmount: totals.DiscountAmount,
		TaxAmount:      totals.TaxAmount,
		Total:          totals.Total,
		AmountPaid:     money.Zero,
		AmountDue:      totals.AmountDue,
		IssuedAt:       now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	sale.Lines = make([]domain.SaleLine, len(quotation.Lines))
	for i, line := range quotation.Lines {
		sale.Lines[i] = domain.SaleLine{
			LineID:             uuid.NewString(),
			SaleID:             sale.SaleID,
			ProductID:          line.ProductID,
			Description:        line.Description,
			Quantity:           line.Quantity,
			UnitPrice:          line.UnitPrice,
			DiscountPercentage: line.DiscountPercentage,
			TaxPercentage:      line.TaxPercentage,
			Subtotal:           results[i].Subtotal,
			DiscountAmount:     results[i].DiscountAmount,
			TaxAmount:          results[i].TaxAmount,
			Total:              results[i].Total,
		}
	}

	if err := s.quotationRepo.MarkConverted(ctx, quotationID, sale, creatorUserID); err != nil {
		return nil, fmt.Errorf("failed to convert quotation %s: %w", quotationID, err)
	}
	return &sale, nil
}

// GetQuotationDocument builds the formatted display payload for a quotation.
func (s *quotationService) GetQuotationDocument(ctx context.Context, quotationID string) (*dto.DocumentResponse, error) {
	quotation, err := s.quotationRepo.FindQuotationByID(ctx, quotationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load quotation %s: %w", quotationID, err)
	}

	currency, err := s.currencyService.GetCurrencyByCode(ctx, quotation.CurrencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to load currency '%s' for quotation document: %w", quotation.CurrencyCode, err)
	}

	doc, err := formatDocument(documentFigures{
		Number:         quotation.QuotationNumber,
		CustomerName:   quotation.CustomerName,
		CurrencyCode:   quotation.CurrencyCode,
		Subtotal:       quotation.Subtotal,
		DiscountAmount: quotation.DiscountAmount,
		TaxAmount:      quotation.TaxAmount,
		ShippingAmount: quotation.ShippingAmount,
		Total:          quotation.Total,
	}, currency)
	if err != nil {
		return nil, err
	}
	doc.IssuedAt = quotation.CreatedAt
	validUntil := quotation.ValidUntil
	doc.ValidUntil = &validUntil

	spec := currency.FormatSpec()
	doc.Lines = make([]dto.DocumentLine, len(quotation.Lines))
	for i, line := range quotation.Lines {
		doc.Lines[i], err = formatDocumentLine(line.Description, line.Quantity, line.UnitPrice,
			line.DiscountPercentage, line.Subtotal, line.TaxAmount, line.Total, spec)
		if err != nil {
			return nil, err
		}
	}
	return doc, nil
}
