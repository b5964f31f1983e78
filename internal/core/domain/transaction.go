package domain

import "github.com/shopspring/decimal"

// Transaction is one account-side leg of a journal entry. Every entry has
// exactly two legs whose amounts are additive inverses in the entry's
// currency: the debit account carries the negative amount, the credit account
// the positive one.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	EntryID       string          `json:"entryID"`       // FK -> journal_entries.entry_id (NOT NULL)
	AccountID     string          `json:"accountID"`     // FK -> accounts.account_id (NOT NULL)
	Amount        decimal.Decimal `json:"amount"`        // Signed; rounded to the entry currency's IsoDigits
	AuditFields
}
