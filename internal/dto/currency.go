package dto

import (
	"time"

	"github.com/jefremassingue/sales-plat-backend/internal/core/domain"
	"github.com/jefremassingue/sales-plat-backend/internal/core/money"
)

// CreateCurrencyRequest defines the data needed to create a new currency.
type CreateCurrencyRequest struct {
	CurrencyCode      string       `json:"currencyCode" binding:"required,uppercase,len=3"`
	Symbol            string       `json:"symbol" binding:"required"`
	Name              string       `json:"name" binding:"required"`
	ExchangeRate      money.Amount `json:"exchangeRate" binding:"required"`
	DecimalPlaces     int          `json:"decimalPlaces" binding:"min=0,max=4"`
	DecimalSeparator  string       `json:"decimalSeparator" binding:"required,len=1"`
	ThousandSeparator string       `json:"thousandSeparator" binding:"required,len=1"`
	IsDefault         bool         `json:"isDefault"`
}

// UpdateCurrencyRequest defines the editable fields of a currency profile.
// Nil pointers leave the stored value untouched.
type UpdateCurrencyRequest struct {
	Symbol            *string       `json:"symbol,omitempty"`
	Name              *string       `json:"name,omitempty"`
	ExchangeRate      *money.Amount `json:"exchangeRate,omitempty"`
	DecimalPlaces     *int          `json:"decimalPlaces,omitempty"`
	DecimalSeparator  *string       `json:"decimalSeparator,omitempty"`
	ThousandSeparator *string       `json:"thousandSeparator,omitempty"`
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyCode      string       `json:"currencyCode"`
	Symbol            string       `json:"symbol"`
	Name              string       `json:"name"`
	ExchangeRate      money.Amount `json:"exchangeRate"`
	DecimalPlaces     int          `json:"decimalPlaces"`
	DecimalSeparator  string       `json:"decimalSeparator"`
	ThousandSeparator string       `json:"thousandSeparator"`
	IsDefault         bool         `json:"isDefault"`
	CreatedAt         time.Time    `json:"createdAt"`
	CreatedBy         string       `json:"createdBy"`
	LastUpdatedAt     time.Time    `json:"lastUpdatedAt"`
	LastUpdatedBy     string       `json:"lastUpdatedBy"`
}

// ConvertAmountResponse carries the result of a cross-currency conversion,
// formatted with the target currency's display rules.
type ConvertAmountResponse struct {
	Amount           money.Amount `json:"amount"`
	FromCurrencyCode string       `json:"fromCurrencyCode"`
	ToCurrencyCode   string       `json:"toCurrencyCode"`
	Converted        money.Amount `json:"converted"`
	Formatted        string       `json:"formatted"`
}

// ToCurrencyResponse converts a domain.Currency to a CurrencyResponse DTO.
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode:      curr.CurrencyCode,
		Symbol:            curr.Symbol,
		Name:              curr.Name,
		ExchangeRate:      curr.ExchangeRate,
		DecimalPlaces:     curr.DecimalPlaces,
		DecimalSeparator:  curr.DecimalSeparator,
		ThousandSeparator: curr.ThousandSeparator,
		IsDefault:         curr.IsDefault,
		CreatedAt:         curr.CreatedAt,
		CreatedBy:         curr.CreatedBy,
		LastUpdatedAt:     curr.LastUpdatedAt,
		LastUpdatedBy:     curr.LastUpdatedBy,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to response DTOs.
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, curr := range currencies {
		res[i] = ToCurrencyResponse(&curr)
	}
	return res
}
