package domain

import (
	"github.com/jefremassingue/sales-plat-backend/internal/core/money"
)

// Currency represents a supported currency and its display profile.
// ExchangeRate expresses the value of this currency against one unit of the
// system's default (base) currency; the default conventionally carries rate 1
// but conversions always use whatever rate is recorded. Exactly one currency
// in the system is marked default at any time.
type Currency struct {
	CurrencyCode      string       `json:"currencyCode"` // Primary Key (e.g., "MZN")
	Symbol            string       `json:"symbol"`       // e.g., "MT"
	Name              string       `json:"name"`         // e.g., "Metical"
	ExchangeRate      money.Amount `json:"exchangeRate"`
	DecimalPlaces     int          `json:"decimalPlaces"`     // Display precision, 0..4
	DecimalSeparator  string       `json:"decimalSeparator"`  // Single character, differs from ThousandSeparator
	ThousandSeparator string       `json:"thousandSeparator"` // Single character
	IsDefault         bool         `json:"isDefault"`
	AuditFields
}

// FormatSpec derives the display rules consumed by the money formatter.
func (c Currency) FormatSpec() money.FormatSpec {
	return money.FormatSpec{
		Symbol:            c.Symbol,
		DecimalPlaces:     c.DecimalPlaces,
		DecimalSeparator:  c.DecimalSeparator,
		ThousandSeparator: c.ThousandSeparator,
	}
}
