package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jefremassingue/sales-plat-backend/internal/apperrors"
	"github.com/jefremassingue/sales-plat-backend/internal/core/domain"
	"github.com/jefremassingue/sales-plat-backend/internal/core/money"
	portsrepo "github.com/jefremassingue/sales-plat-backend/internal/core/ports/repositories"
	portssvc "github.com/jefremassingue/sales-plat-backend/internal/core/ports/services"
	"github.com/jefremassingue/sales-plat-backend/internal/dto"
)

// currencyService provides business logic for currency profiles: the
// registry every conversion and formatting call reads from.
type currencyService struct {
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewCurrencyService creates a new currency service.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade) portssvc.CurrencySvcFacade {
	return &currencyService{currencyRepo: currencyRepo}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

// validateProfile enforces the display and conversion constraints every
// stored currency must satisfy.
func validateProfile(c domain.Currency) error {
	if c.ExchangeRate.Cmp(money.Zero) <= 0 {
		return fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrInvalidExchangeRate)
	}
	if c.DecimalPlaces < 0 || c.DecimalPlaces > 4 {
		return fmt.Errorf("%w: decimal places must be within [0,4]", apperrors.ErrInvalidDecimalPlaces)
	}
	if len(c.DecimalSeparator) != 1 || len(c.ThousandSeparator) != 1 {
		return fmt.Errorf("%w: separators must be single characters", apperrors.ErrValidation)
	}
	if c.DecimalSeparator == c.ThousandSeparator {
		return fmt.Errorf("%w: decimal and thousand separators must differ", apperrors.ErrValidation)
	}
	return nil
}

// CreateCurrency handles the creation of a new currency profile.
func (s *currencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*domain.Currency, error) {
	existing, err := s.currencyRepo.FindCurrencyByCode(ctx, req.CurrencyCode)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing currency %s: %w", req.CurrencyCode, err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: currency code '%s'", apperrors.ErrDuplicate, req.CurrencyCode)
	}

	now := time.Now()
	currency := domain.Currency{
		CurrencyCode:      req.CurrencyCode,
		Symbol:            req.Symbol,
		Name:              req.Name,
		ExchangeRate:      req.ExchangeRate,
		DecimalPlaces:     req.DecimalPlaces,
		DecimalSeparator:  req.DecimalSeparator,
		ThousandSeparator: req.ThousandSeparator,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if err := validateProfile(currency); err != nil {
		return nil, err
	}

	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		return nil, fmt.Errorf("failed to create currency in service: %w", err)
	}

	// Flipping the default is a separate atomic operation so the
	// exactly-one-default invariant holds even when creation races.
	if req.IsDefault {
		if err := s.currencyRepo.SetDefaultCurrency(ctx, currency.CurrencyCode, creatorUserID); err != nil {
			return nil, fmt.Errorf("failed to mark currency %s as default: %w", currency.CurrencyCode, err)
		}
		currency.IsDefault = true
	}

	return &currency, nil
}

// UpdateCurrency edits an existing currency's profile.
func (s *currencyService) UpdateCurrency(ctx context.Context, currencyCode string, req dto.UpdateCurrencyRequest, updaterUserID string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, strings.ToUpper(currencyCode))
	if err != nil {
		return nil, fmt.Errorf("failed to load currency %s for update: %w", currencyCode, err)
	}

	if req.Symbol != nil {
		currency.Symbol = *req.Symbol
	}
	if req.Name != nil {
		currency.Name = *req.Name
	}
	if req.ExchangeRate != nil {
		currency.ExchangeRate = *req.ExchangeRate
	}
	if req.DecimalPlaces != nil {
		currency.DecimalPlaces = *req.DecimalPlaces
	}
	if req.DecimalSeparator != nil {
		currency.DecimalSeparator = *req.DecimalSeparator
	}
	if req.ThousandSeparator != nil {
		currency.ThousandSeparator = *req.ThousandSeparator
	}
	if err := validateProfile(*currency); err != nil {
		return nil, err
	}

	currency.LastUpdatedAt = time.Now()
	currency.LastUpdatedBy = updaterUserID

	if err := s.currencyRepo.UpdateCurrency(ctx, *currency); err != nil {
		return nil, fmt.Errorf("failed to update currency %s: %w", currencyCode, err)
	}
	return currency, nil
}

// SetDefaultCurrency marks a currency as the system default.
func (s *currencyService) SetDefaultCurrency(ctx context.Context, currencyCode string, updaterUserID string) (*domain.Currency, error) {
	code := strings.ToUpper(currencyCode)
	if _, err := s.currencyRepo.FindCurrencyByCode(ctx, code); err != nil {
		return nil, fmt.Errorf("failed to load currency %s: %w", code, err)
	}

	if err := s.currencyRepo.SetDefaultCurrency(ctx, code, updaterUserID); err != nil {
		return nil, fmt.Errorf("failed to set default currency %s: %w", code, err)
	}

	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to reload currency %s: %w", code, err)
	}
	return currency, nil
}

// GetCurrencyByCode retrieves a currency by its 3-letter code.
func (s *currencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	code := strings.ToUpper(currencyCode)
	if len(code) != 3 {
		return nil, fmt.Errorf("%w: currency codes must be 3 letters", apperrors.ErrValidation)
	}

	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency by code in service: %w", err)
	}
	return currency, nil
}

// GetDefaultCurrency retrieves the system's base currency.
func (s *currencyService) GetDefaultCurrency(ctx context.Context) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindDefaultCurrency(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get default currency in service: %w", err)
	}
	return currency, nil
}

// ListCurrencies retrieves all currencies.
func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies in service: %w", err)
	}
	// Return empty slice if no currencies found, not nil
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}

// ConvertAmount converts an amount between two currencies via the base
// currency, using the rates recorded on each profile.
func (s *currencyService) ConvertAmount(ctx context.Context, amount money.Amount, fromCode, toCode string) (money.Amount, error) {
	from, err := s.GetCurrencyByCode(ctx, fromCode)
	if err != nil {
		return money.Zero, fmt.Errorf("failed to load source currency '%s': %w", fromCode, err)
	}
	to, err := s.GetCurrencyByCode(ctx, toCode)
	if err != nil {
		return money.Zero, fmt.Errorf("failed to load target currency '%s': %w", toCode, err)
	}

	converted, err := money.Convert(amount, from.ExchangeRate, to.ExchangeRate)
	if err != nil {
		return money.Zero, err
	}
	return converted, nil
}
