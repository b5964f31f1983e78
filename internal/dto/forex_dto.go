package dto

import (
	"time"

	"github.com/moneta-app/moneta_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateObservationInsert is one (base, target, rate) record to append to the
// FX history.
type RateObservationInsert struct {
	BaseCurrencyCode   string `json:"baseCurrencyCode" binding:"required,len=3,uppercase"`
	TargetCurrencyCode string `json:"targetCurrencyCode" binding:"required,len=3,uppercase"`
	Rate               string `json:"rate" binding:"required,decimalstr"`
}

// RecordRatesRequest defines the expected JSON body for recording FX rate
// observations.
type RecordRatesRequest struct {
	Observations []RateObservationInsert `json:"observations" binding:"required,min=1,dive"`
}

// LatestRatesResponse maps a target currency code to the newest observed rate
// against the base currency.
type LatestRatesResponse struct {
	BaseCurrencyCode string                     `json:"baseCurrencyCode"`
	Rates            map[string]decimal.Decimal `json:"rates"`
	AsOf             time.Time                  `json:"asOf"`
}

// ToLatestRatesResponse converts the latest-rate lookup result to its DTO.
func ToLatestRatesResponse(baseCurrencyCode string, rates map[string]domain.RateObservation, asOf time.Time) LatestRatesResponse {
	resp := LatestRatesResponse{
		BaseCurrencyCode: baseCurrencyCode,
		Rates:            make(map[string]decimal.Decimal, len(rates)),
		AsOf:             asOf,
	}
	for code, obs := range rates {
		resp.Rates[code] = obs.Rate
	}
	return resp
}
