package dto

import (
	"time"

	"github.com/moneta-app/moneta_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionResponse defines the data returned for one transaction leg.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	AccountID     string          `json:"accountID"`
	Amount        decimal.Decimal `json:"amount"`
}

// EntryFxRateResponse defines the data returned for a frozen FX snapshot.
type EntryFxRateResponse struct {
	BaseCurrencyCode   string          `json:"baseCurrencyCode"`
	TargetCurrencyCode string          `json:"targetCurrencyCode"`
	Rate               decimal.Decimal `json:"rate"`
}

// EntryResponse defines the data returned for a journal entry.
type EntryResponse struct {
	EntryID      string                `json:"entryID"`
	Type         string                `json:"type"`
	Date         time.Time             `json:"date"`
	Title        string                `json:"title"`
	Description  string                `json:"description"`
	CurrencyCode string                `json:"currencyCode"`
	Amount       decimal.Decimal       `json:"amount"`
	FxRate       *EntryFxRateResponse  `json:"fxRate,omitempty"`
	Transactions []TransactionResponse `json:"transactions,omitempty"`
	CreatedAt    time.Time             `json:"createdAt"`
}

// ListEntriesParams holds parameters for listing journal entries.
type ListEntriesParams struct {
	Limit     int
	NextToken *string
}

// ListEntriesResponse is a page of journal entries plus the cursor for the
// next page (nil when exhausted).
type ListEntriesResponse struct {
	Entries   []EntryResponse `json:"entries"`
	NextToken *string         `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to its DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		AccountID:     t.AccountID,
		Amount:        t.Amount,
	}
}

// ToEntryResponse converts a domain.JournalEntry (with whatever relations are
// attached) to its DTO.
func ToEntryResponse(e *domain.JournalEntry) EntryResponse {
	resp := EntryResponse{
		EntryID:      e.EntryID,
		Type:         string(e.Type),
		Date:         e.Date,
		Title:        e.Title,
		Description:  e.Description,
		CurrencyCode: e.CurrencyCode,
		Amount:       e.Amount,
		CreatedAt:    e.CreatedAt,
	}
	if e.FxRate != nil {
		resp.FxRate = &EntryFxRateResponse{
			BaseCurrencyCode:   e.FxRate.BaseCurrencyCode,
			TargetCurrencyCode: e.FxRate.TargetCurrencyCode,
			Rate:               e.FxRate.Rate,
		}
	}
	if len(e.Transactions) > 0 {
		resp.Transactions = make([]TransactionResponse, len(e.Transactions))
		for i := range e.Transactions {
			resp.Transactions[i] = ToTransactionResponse(&e.Transactions[i])
		}
	}
	return resp
}

// ToEntryResponses converts a slice of domain entries to DTOs.
func ToEntryResponses(entries []domain.JournalEntry) []EntryResponse {
	responses := make([]EntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToEntryResponse(&entries[i])
	}
	return responses
}
