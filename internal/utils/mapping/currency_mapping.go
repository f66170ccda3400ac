package mapping

import (
	"github.com/jefremassingue/sales-plat-backend/internal/core/domain"
	"github.com/jefremassingue/sales-plat-backend/internal/models"
)

// ToModelCurrency converts a domain Currency to a model Currency.
func ToModelCurrency(d domain.Currency) models.Currency {
	return models.Currency{
		CurrencyCode:      d.CurrencyCode,
		Symbol:            d.Symbol,
		Name:              d.Name,
		ExchangeRate:      d.ExchangeRate,
		DecimalPlaces:     d.DecimalPlaces,
		DecimalSeparator:  d.DecimalSeparator,
		ThousandSeparator: d.ThousandSeparator,
		IsDefault:         d.IsDefault,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCurrency converts a model Currency to a domain Currency.
func ToDomainCurrency(m models.Currency) domain.Currency {
	return domain.Currency{
		CurrencyCode:      m.CurrencyCode,
		Symbol:            m.Symbol,
		Name:              m.Name,
		ExchangeRate:      m.ExchangeRate,
		DecimalPlaces:     m.DecimalPlaces,
		DecimalSeparator:  m.DecimalSeparator,
		ThousandSeparator: m.ThousandSeparator,
		IsDefault:         m.IsDefault,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCurrencySlice converts a slice of model Currencies to domain Currencies.
func ToDomainCurrencySlice(ms []models.Currency) []domain.Currency {
	ds := make([]domain.Currency, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCurrency(m)
	}
	return ds
}
