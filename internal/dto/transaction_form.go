package dto

import (
	"time"
)

// PostTransactionRequest is the validated form for posting a journal entry
// with its two balancing legs. Amount is expressed in the currency the user
// typed (CurrencyCode); for cross-currency postings FxRate and FxAmount carry
// the applied rate and the amount already converted into the debit account's
// currency.
type PostTransactionRequest struct {
	Type            string `json:"type" binding:"required,oneof=income expense transfer"`
	Date            string `json:"date" binding:"required,datetime=2006-01-02"`
	Time            string `json:"time" binding:"required,datetime=15:04"`
	Title           string `json:"title" binding:"required,max=255"`
	Description     string `json:"description" binding:"max=1000"`
	DebitAccountID  string `json:"debitAccountID" binding:"required,uuid"`
	CreditAccountID string `json:"creditAccountID" binding:"required,uuid"`
	CurrencyCode    string `json:"currencyCode" binding:"required,len=3,uppercase"`
	Amount          string `json:"amount" binding:"required,decimalstr"`
	FxRate          string `json:"fxRate" binding:"omitempty,decimalstr"`
	FxAmount        string `json:"fxAmount" binding:"required_with=FxRate,omitempty,decimalstr"`
}

// EntryDate combines the form's date and time fields, interpreted in the
// system's local timezone.
func (r PostTransactionRequest) EntryDate() (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", r.Date+" "+r.Time, time.Local)
}
