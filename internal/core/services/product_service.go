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

// productService provides business logic for the EPI catalog.
type productService struct {
	productRepo     portsrepo.ProductRepositoryFacade
	currencyService portssvc.CurrencyReaderSvc
}

// NewProductService creates a new product service. The currency reader is
// used to validate that product prices reference a known currency.
func NewProductService(productRepo portsrepo.ProductRepositoryFacade, currencyService portssvc.CurrencyReaderSvc) portssvc.ProductSvcFacade {
	return &productService{
		productRepo:     productRepo,
		currencyService: currencyService,
	}
}

var _ portssvc.ProductSvcFacade = (*productService)(nil)

// CreateProduct handles the creation of a new catalog item.
func (s *productService) CreateProduct(ctx context.Context, req dto.CreateProductRequest, creatorUserID string) (*domain.Product, error) {
	if req.UnitPrice.IsNegative() {
		return nil, fmt.Errorf("%w: unit price cannot be negative", apperrors.ErrValidation)
	}
	if req.TaxPercentage.IsNegative() {
		return nil, fmt.Errorf("%w: tax percentage cannot be negative", apperrors.ErrValidation)
	}
	if req.StockQuantity.IsNegative() {
		return nil, fmt.Errorf("%w: stock quantity cannot be negative", apperrors.ErrValidation)
	}

	if _, err := s.currencyService.GetCurrencyByCode(ctx, req.CurrencyCode); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: currency code '%s' not found", apperrors.ErrValidation, req.CurrencyCode)
		}
		return nil, fmt.Errorf("failed to validate currency '%s': %w", req.CurrencyCode, err)
	}

	now := time.Now()
	product := domain.Product{
		ProductID:     uuid.NewString(),
		SKU:           req.SKU,
		Name:          req.Name,
		Description:   req.Description,
		UnitPrice:     req.UnitPrice,
		CurrencyCode:  req.CurrencyCode,
		TaxPercentage: req.TaxPercentage,
		StockQuantity: req.StockQuantity,
		IsActive:      true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product in service: %w", err)
	}
	return &product, nil
}

// GetProductByID retrieves a specific product.
func (s *productService) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to get product in service: %w", err)
	}
	return product, nil
}

// ListProducts retrieves a page of products ordered by creation time.
func (s *productService) ListProducts(ctx context.Context, limit int, nextToken string) ([]domain.Product, string, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var createdBefore *time.Time
	if nextToken != "" {
		cursor, err := pagination.DecodeDateBasedToken(nextToken)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		createdBefore = &cursor
	}

	products, err := s.productRepo.ListProducts(ctx, limit+1, createdBefore)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list products in service: %w", err)
	}

	token := ""
	if len(products) > limit {
		products = products[:limit]
		token = pagination.EncodeDateBasedToken(products[limit-1].CreatedAt)
	}
	return products, token, nil
}

// UpdateProduct edits an existing product.
func (s *productService) UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest, updaterUserID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to load product %s for update: %w", productID, err)
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.UnitPrice != nil {
		if req.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("%w: unit price cannot be negative", apperrors.ErrValidation)
		}
		product.UnitPrice = *req.UnitPrice
	}
	if req.TaxPercentage != nil {
		if req.TaxPercentage.IsNegative() {
			return nil, fmt.Errorf("%w: tax percentage cannot be negative", apperrors.ErrValidation)
		}
		product.TaxPercentage = *req.TaxPercentage
	}

	product.LastUpdatedAt = time.Now()
	product.LastUpdatedBy = updaterUserID

	if err := s.productRepo.UpdateProduct(ctx, *product); err != nil {
		return nil, fmt.Errorf("failed to update product %s: %w", productID, err)
	}
	return product, nil
}

// DeactivateProduct removes a product from active listings.
func (s *productService) DeactivateProduct(ctx context.Context, productID string, updaterUserID string) error {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return fmt.Errorf("failed to load product %s for deactivation: %w", productID, err)
	}

	product.IsActive = false
	product.LastUpdatedAt = time.Now()
	product.LastUpdatedBy = updaterUserID

	if err := s.productRepo.UpdateProduct(ctx, *product); err != nil {
		return fmt.Errorf("failed to deactivate product %s: %w", productID, err)
	}
	return nil
}

// AdjustStock applies a signed stock delta.
func (s *productService) AdjustStock(ctx context.Context, productID string, delta money.Amount, updaterUserID string) (money.Amount, error) {
	if delta.IsZero() {
		return money.Zero, fmt.Errorf("%w: stock delta cannot be zero", apperrors.ErrValidation)
	}

	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return money.Zero, fmt.Errorf("failed to load product %s for stock adjustment: %w", productID, err)
	}
	if product.StockQuantity.Add(delta).IsNegative() {
		return money.Zero, fmt.Errorf("%w: adjustment would take stock below zero", apperrors.ErrValidation)
	}

	newQuantity, err := s.productRepo.AdjustStock(ctx, productID, delta, updaterUserID)
	if err != nil {
		return money.Zero, fmt.Errorf("failed to adjust stock for product %s: %w", productID, err)
	}
	return newQuantity, nil
}
