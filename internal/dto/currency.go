package dto

import (
	"github.com/moneta-app/moneta_backend/internal/core/domain"
)

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyCode string `json:"currencyCode"`
	Name         string `json:"name"`
	Symbol       string `json:"symbol"`
	IsoDigits    int32  `json:"isoDigits"`
}

// CountryResponse defines the data returned for a country.
type CountryResponse struct {
	CountryCode         string `json:"countryCode"`
	Name                string `json:"name"`
	DefaultCurrencyCode string `json:"defaultCurrencyCode"`
}

// ToCurrencyResponse converts a domain.Currency to its DTO.
func ToCurrencyResponse(c *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode: c.CurrencyCode,
		Name:         c.Name,
		Symbol:       c.Symbol,
		IsoDigits:    c.IsoDigits,
	}
}

// ToCurrencyResponses converts a slice of domain currencies to DTOs.
func ToCurrencyResponses(currencies []domain.Currency) []CurrencyResponse {
	responses := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		responses[i] = ToCurrencyResponse(&currencies[i])
	}
	return responses
}

// ToCountryResponse converts a domain.Country to its DTO.
func ToCountryResponse(c *domain.Country) CountryResponse {
	return CountryResponse{
		CountryCode:         c.CountryCode,
		Name:                c.Name,
		DefaultCurrencyCode: c.DefaultCurrencyCode,
	}
}

// ToCountryResponses converts a slice of domain countries to DTOs.
func ToCountryResponses(countries []domain.Country) []CountryResponse {
	responses := make([]CountryResponse, len(countries))
	for i := range countries {
		responses[i] = ToCountryResponse(&countries[i])
	}
	return responses
}
