package services

import (
	"context"

	"github.com/jefremassingue/sales-plat-backend/internal/core/domain"
	"github.com/jefremassingue/sales-plat-backend/internal/core/money"
	"github.com/jefremassingue/sales-plat-backend/internal/dto"
)

// CurrencyReaderSvc defines read operations for currency data
type CurrencyReaderSvc interface {
	// GetCurrencyByCode retrieves a specific currency by its code.
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// GetDefaultCurrency retrieves the system's base currency.
	GetDefaultCurrency(ctx context.Context) (*domain.Currency, error)

	// ListCurrencies retrieves all available currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriterSvc defines write operations for currency data
type CurrencyWriterSvc interface {
	// CreateCurrency persists a new currency.
	CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*domain.Currency, error)

	// UpdateCurrency edits an existing currency's profile.
	UpdateCurrency(ctx context.Context, currencyCode string, req dto.UpdateCurrencyRequest, updaterUserID string) (*domain.Currency, error)

	// SetDefaultCurrency marks the given currency as the system default,
	// clearing the previous default atomically.
	SetDefaultCurrency(ctx context.Context, currencyCode string, updaterUserID string) (*domain.Currency, error)
}

// CurrencyConverterSvc converts amounts between currency contexts.
type CurrencyConverterSvc interface {
	// ConvertAmount converts an amount from one currency to another via the
	// base currency, using each profile's recorded exchange rate.
	ConvertAmount(ctx context.Context, amount money.Amount, fromCode, toCode string) (money.Amount, error)
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
	CurrencyConverterSvc
}
