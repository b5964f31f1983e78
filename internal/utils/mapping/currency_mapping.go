package mapping

import (
	"github.com/moneta-app/moneta_backend/internal/core/domain"
	"github.com/moneta-app/moneta_backend/internal/models"
)

func ToModelCurrency(c domain.Currency) models.Currency {
	return models.Currency{
		CurrencyCode: c.CurrencyCode,
		Name:         c.Name,
		Symbol:       c.Symbol,
		IsoDigits:    c.IsoDigits,
		AuditFields:  ToModelAuditFields(c.AuditFields),
	}
}

func ToDomainCurrency(c models.Currency) domain.Currency {
	return domain.Currency{
		CurrencyCode: c.CurrencyCode,
		Name:         c.Name,
		Symbol:       c.Symbol,
		IsoDigits:    c.IsoDigits,
		AuditFields:  ToDomainAuditFields(c.AuditFields),
	}
}

func ToDomainCurrencySlice(currencies []models.Currency) []domain.Currency {
	result := make([]domain.Currency, len(currencies))
	for i, c := range currencies {
		result[i] = ToDomainCurrency(c)
	}
	return result
}

func ToDomainCountry(c models.Country) domain.Country {
	return domain.Country{
		CountryCode:         c.CountryCode,
		Name:                c.Name,
		DefaultCurrencyCode: c.DefaultCurrencyCode,
		AuditFields:         ToDomainAuditFields(c.AuditFields),
	}
}

func ToDomainCountrySlice(countries []models.Country) []domain.Country {
	result := make([]domain.Country, len(countries))
	for i, c := range countries {
		result[i] = ToDomainCountry(c)
	}
	return result
}
