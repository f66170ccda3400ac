package models

import (
	"github.com/jefremassingue/sales-plat-backend/internal/core/money"
)

// Currency is the persistence representation of a currency profile.
type Currency struct {
	CurrencyCode      string       `json:"currencyCode"` // Primary Key
	Symbol            string       `json:"symbol"`
	Name              string       `json:"name"`
	ExchangeRate      money.Amount `json:"exchangeRate"`
	DecimalPlaces     int          `json:"decimalPlaces"`
	DecimalSeparator  string       `json:"decimalSeparator"`
	ThousandSeparator string       `json:"thousandSeparator"`
	IsDefault         bool         `json:"isDefault"`
	AuditFields
}
