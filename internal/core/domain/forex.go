package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FxRatePrecision is the number of decimal places kept for FX rates.
const FxRatePrecision int32 = 10

// EntryFxRate is a rate frozen at posting time for a specific journal entry.
// It is recorded only for cross-currency postings and is distinct from the
// live rate time series.
type EntryFxRate struct {
	EntryID            string          `json:"entryID"`            // FK -> journal_entries.entry_id
	BaseCurrencyCode   string          `json:"baseCurrencyCode"`   // Currency the entry amount is stored in
	TargetCurrencyCode string          `json:"targetCurrencyCode"` // Currency the user typed the amount in
	Rate               decimal.Decimal `json:"rate"`               // Rounded to FxRatePrecision
	AuditFields
}

// RateObservation is one timestamped (base, target, rate) record in the
// append-only FX history. Multiple observations per pair are expected;
// "latest" is the one with the greatest CreatedAt inside a queried window.
type RateObservation struct {
	ObservationID      string          `json:"observationID"` // Primary Key (UUID)
	BaseCurrencyCode   string          `json:"baseCurrencyCode"`
	TargetCurrencyCode string          `json:"targetCurrencyCode"`
	Rate               decimal.Decimal `json:"rate"`
	CreatedAt          time.Time       `json:"createdAt"`
}

// RateWindow bounds a latest-rate lookup: only observations with
// Start <= CreatedAt <= End are considered.
type RateWindow struct {
	Start time.Time
	End   time.Time
}
