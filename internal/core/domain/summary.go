package domain

import "github.com/shopspring/decimal"

// PeriodSummary is the income/expense total for a date range, normalized to a
// single base currency and rounded to its IsoDigits.
//
// Entries whose currency had no usable rate in the lookup window are excluded
// from the totals rather than silently counted at a 1:1 rate; Partial is set
// and the affected currency codes are listed so callers can surface the gap.
type PeriodSummary struct {
	BaseCurrencyCode      string          `json:"baseCurrencyCode"`
	Income                decimal.Decimal `json:"income"`
	Expense               decimal.Decimal `json:"expense"`
	Partial               bool            `json:"partial"`
	UnconvertedCurrencies []string        `json:"unconvertedCurrencies,omitempty"`
}
