package dto

import (
	"github.com/moneta-app/moneta_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SummaryResponse is the income/expense total for a period, normalized to the
// requested base currency.
type SummaryResponse struct {
	BaseCurrencyCode      string          `json:"baseCurrencyCode"`
	Income                decimal.Decimal `json:"income"`
	Expense               decimal.Decimal `json:"expense"`
	Partial               bool            `json:"partial"`
	UnconvertedCurrencies []string        `json:"unconvertedCurrencies,omitempty"`
}

// ToSummaryResponse converts a domain.PeriodSummary to its DTO.
func ToSummaryResponse(s *domain.PeriodSummary) SummaryResponse {
	return SummaryResponse{
		BaseCurrencyCode:      s.BaseCurrencyCode,
		Income:                s.Income,
		Expense:               s.Expense,
		Partial:               s.Partial,
		UnconvertedCurrencies: s.UnconvertedCurrencies,
	}
}
