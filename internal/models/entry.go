package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry mirrors the journal_entries table.
type JournalEntry struct {
	EntryID      string          `db:"entry_id"`
	Type         string          `db:"type"`
	Date         time.Time       `db:"date"`
	Title        string          `db:"title"`
	Description  string          `db:"description"`
	CurrencyCode string          `db:"currency_code"`
	Amount       decimal.Decimal `db:"amount"`
	AuditFields
}

// Transaction mirrors the transactions table.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	EntryID       string          `db:"entry_id"`
	AccountID     string          `db:"account_id"`
	Amount        decimal.Decimal `db:"amount"`
	AuditFields
}
