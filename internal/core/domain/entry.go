package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType indicates the economic direction of a journal entry.
type EntryType string

const (
	EntryTypeIncome   EntryType = "income"
	EntryTypeExpense  EntryType = "expense"
	EntryTypeTransfer EntryType = "transfer"
)

// JournalEntry represents one recorded economic event with a single native
// currency and amount. Its two transaction legs are created with it as one
// atomic unit and always balance to zero.
type JournalEntry struct {
	EntryID      string          `json:"entryID"` // Primary Key (UUID)
	Type         EntryType       `json:"type"`
	Date         time.Time       `json:"date"` // Date+time the event occurred
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	CurrencyCode string          `json:"currencyCode"` // Base currency of the entry (debit account's currency)
	Amount       decimal.Decimal `json:"amount"`       // Rounded to the currency's IsoDigits
	AuditFields

	// Attached on joined reads; nil otherwise.
	Currency     *Currency     `json:"currency,omitempty"`
	FxRate       *EntryFxRate  `json:"fxRate,omitempty"`
	Transactions []Transaction `json:"transactions,omitempty"`
}
