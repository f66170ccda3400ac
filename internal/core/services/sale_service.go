package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
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

// saleService provides business logic for sales documents. Every monetary
// figure on a sale is computed once, here, through the money engine and then
// persisted; readers (editor summary, printable invoice) only format.
type saleService struct {
	saleRepo        portsrepo.SaleRepositoryFacade
	currencyService portssvc.CurrencyReaderSvc
}

// NewSaleService creates a new sale service.
func NewSaleService(saleRepo portsrepo.SaleRepositoryFacade, currencyService portssvc.CurrencyReaderSvc) portssvc.SaleSvcFacade {
	return &saleService{
		saleRepo:        saleRepo,
		currencyService: currencyService,
	}
}

var _ portssvc.SaleSvcFacade = (*saleService)(nil)

// newDocumentNumber builds a human-readable document reference like
// VD-20250830-1A2B3C.
func newDocumentNumber(prefix string, at time.Time) string {
	return fmt.Sprintf("%s-%s-%s", prefix, at.Format("20060102"), strings.ToUpper(uuid.NewString()[:6]))
}

// CreateSale validates the request, computes every line and the document
// totals, snapshots the currency's exchange rate, and persists the result.
func (s *saleService) CreateSale(ctx context.Context, req dto.CreateSaleRequest, creatorUserID string) (*domain.Sale, error) {
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
	issuedAt := now
	if req.IssuedAt != nil {
		issuedAt = *req.IssuedAt
	}

	sale := domain.Sale{
		SaleID:         uuid.NewString(),
		SaleNumber:     newDocumentNumber("VD", issuedAt),
		CustomerName:   req.CustomerName,
		CurrencyCode:   currency.CurrencyCode,
		ExchangeRate:   currency.ExchangeRate,
		Status:         domain.SaleDraft,
		IncludeTax:     req.IncludeTax,
		ShippingAmount: req.ShippingAmount,
		Subtotal:       totals.Subtotal,
		DiscountAmount: totals.DiscountAmount,
		TaxAmount:      totals.TaxAmount,
		Total:          totals.Total,
		AmountPaid:     money.Zero,
		AmountDue:      totals.AmountDue,
		IssuedAt:       issuedAt,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	sale.Lines = make([]domain.SaleLine, len(req.Lines))
	for i, line := range req.Lines {
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

	if err := s.saleRepo.SaveSale(ctx, sale); err != nil {
		return nil, fmt.Errorf("failed to create sale in service: %w", err)
	}
	return &sale, nil
}

// GetSaleByID retrieves a sale with its lines.
func (s *saleService) GetSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	sale, err := s.saleRepo.FindSaleByID(ctx, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get sale in service: %w", err)
	}
	return sale, nil
}

// ListSales retrieves a page of sales ordered by issue date then creation time.
func (s *saleService) ListSales(ctx context.Context, limit int, nextToken string) ([]domain.Sale, string, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var issuedBefore, createdBefore *time.Time
	if nextToken != "" {
		issued, created, err := pagination.DecodeToken(nextToken)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		issuedBefore, createdBefore = &issued, &created
	}

	sales, err := s.saleRepo.ListSales(ctx, limit+1, issuedBefore, createdBefore)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list sales in service: %w", err)
	}

	token := ""
	if len(sales) > limit {
		sales = sales[:limit]
		last := sales[limit-1]
		token = pagination.EncodeToken(last.IssuedAt, last.CreatedAt)
	}
	return sales, token, nil
}

// ListPayments retrieves the payments recorded against a sale.
func (s *saleService) ListPayments(ctx context.Context, saleID string) ([]domain.Payment, error) {
	if _, err := s.saleRepo.FindSaleByID(ctx, saleID); err != nil {
		return nil, fmt.Errorf("failed to load sale %s: %w", saleID, err)
	}

	payments, err := s.saleRepo.ListPayments(ctx, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments in service: %w", err)
	}
	if payments == nil {
		return []domain.Payment{}, nil
	}
	return payments, nil
}

// UpdateSaleStatus transitions a sale's lifecycle status.
func (s *saleService) UpdateSaleStatus(ctx context.Context, saleID string, status domain.SaleStatus, updaterUserID string) (*domain.Sale, error) {
	sale, err := s.saleRepo.FindSaleByID(ctx, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to load sale %s: %w", saleID, err)
	}
	if sale.Status == domain.SaleCancelled {
		return nil, fmt.Errorf("%w: cancelled sales cannot change status", apperrors.ErrValidation)
	}

	if err := s.saleRepo.UpdateSaleStatus(ctx, saleID, status, updaterUserID); err != nil {
		return nil, fmt.Errorf("failed to update sale %s status: %w", saleID, err)
	}
	sale.Status = status
	return sale, nil
}

// RegisterPayment records a payment against a sale and re-derives the amount
// paid and amount due. AmountDue stays the raw difference: overpayment is
// recorded as a negative balance rather than silently clamped.
func (s *saleService) RegisterPayment(ctx context.Context, saleID string, req dto.RegisterPaymentRequest, creatorUserID string) (*domain.Sale, error) {
	if req.Amount.Cmp(money.Zero) <= 0 {
		return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}

	sale, err := s.saleRepo.FindSaleByID(ctx, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to load sale %s: %w", saleID, err)
	}
	if sale.Status == domain.SaleCancelled {
		return nil, fmt.Errorf("%w: cannot register payments on a cancelled sale", apperrors.ErrValidation)
	}

	now := time.Now()
	paidAt := now
	if req.PaidAt != nil {
		paidAt = *req.PaidAt
	}

	payment := domain.Payment{
		PaymentID: uuid.NewString(),
		SaleID:    sale.SaleID,
		Amount:    req.Amount,
		Method:    req.Method,
		Reference: req.Reference,
		PaidAt:    paidAt,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	sale.AmountPaid = sale.AmountPaid.Add(req.Amount)
	sale.AmountDue = sale.Total.Sub(sale.AmountPaid)
	if sale.AmountDue.Cmp(money.Zero) <= 0 {
		sale.Status = domain.SalePaid
	}
	sale.LastUpdatedAt = now
	sale.LastUpdatedBy = creatorUserID

	if err := s.saleRepo.SavePayment(ctx, payment, *sale); err != nil {
		return nil, fmt.Errorf("failed to register payment on sale %s: %w", saleID, err)
	}
	return sale, nil
}

// GetSaleDocument builds the formatted display payload for a sale. This is
// the single source the editor summary and the printable invoice both read,
// so the printed totals always match what the editor showed.
func (s *saleService) GetSaleDocument(ctx context.Context, saleID string) (*dto.DocumentResponse, error) {
	sale, err := s.saleRepo.FindSaleByID(ctx, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to load sale %s: %w", saleID, err)
	}

	currency, err := s.currencyService.GetCurrencyByCode(ctx, sale.CurrencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to load currency '%s' for sale document: %w", sale.CurrencyCode, err)
	}

	doc, err := formatDocument(documentFigures{
		Number:         sale.SaleNumber,
		CustomerName:   sale.CustomerName,
		CurrencyCode:   sale.CurrencyCode,
		Subtotal:       sale.Subtotal,
		DiscountAmount: sale.DiscountAmount,
		TaxAmount:      sale.TaxAmount,
		ShippingAmount: sale.ShippingAmount,
		Total:          sale.Total,
	}, currency)
	if err != nil {
		return nil, err
	}
	doc.IssuedAt = sale.IssuedAt

	spec := currency.FormatSpec()
	if doc.AmountPaid, err = money.Format(sale.AmountPaid, spec, true); err != nil {
		return nil, err
	}
	if doc.AmountDue, err = money.Format(sale.AmountDue, spec, true); err != nil {
		return nil, err
	}

	doc.Lines = make([]dto.DocumentLine, len(sale.Lines))
	for i, line := range sale.Lines {
		doc.Lines[i], err = formatDocumentLine(line.Description, line.Quantity, line.UnitPrice,
			line.DiscountPercentage, line.Subtotal, line.TaxAmount, line.Total, spec)
		if err != nil {
			return nil, err
		}
	}
	return doc, nil
}
