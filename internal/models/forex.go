package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryFxRate mirrors the journal_entry_fx_rates table.
type EntryFxRate struct {
	EntryID            string          `db:"entry_id"`
	BaseCurrencyCode   string          `db:"base_currency_code"`
	TargetCurrencyCode string          `db:"target_currency_code"`
	Rate               decimal.Decimal `db:"rate"`
	AuditFields
}

// RateObservation mirrors the forex_rates table (append-only).
type RateObservation struct {
	ObservationID      string          `db:"observation_id"`
	BaseCurrencyCode   string          `db:"base_currency_code"`
	TargetCurrencyCode string          `db:"target_currency_code"`
	Rate               decimal.Decimal `db:"rate"`
	CreatedAt          time.Time       `db:"created_at"`
}
