package mapping

import (
	"github.com/moneta-app/moneta_backend/internal/core/domain"
	"github.com/moneta-app/moneta_backend/internal/models"
)

func ToModelJournalEntry(e domain.JournalEntry) models.JournalEntry {
	return models.JournalEntry{
		EntryID:      e.EntryID,
		Type:         string(e.Type),
		Date:         e.Date,
		Title:        e.Title,
		Description:  e.Description,
		CurrencyCode: e.CurrencyCode,
		Amount:       e.Amount,
		AuditFields:  ToModelAuditFields(e.AuditFields),
	}
}

func ToDomainJournalEntry(e models.JournalEntry) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:      e.EntryID,
		Type:         domain.EntryType(e.Type),
		Date:         e.Date,
		Title:        e.Title,
		Description:  e.Description,
		CurrencyCode: e.CurrencyCode,
		Amount:       e.Amount,
		AuditFields:  ToDomainAuditFields(e.AuditFields),
	}
}

func ToModelTransaction(t domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: t.TransactionID,
		EntryID:       t.EntryID,
		AccountID:     t.AccountID,
		Amount:        t.Amount,
		AuditFields:   ToModelAuditFields(t.AuditFields),
	}
}

func ToDomainTransaction(t models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: t.TransactionID,
		EntryID:       t.EntryID,
		AccountID:     t.AccountID,
		Amount:        t.Amount,
		AuditFields:   ToDomainAuditFields(t.AuditFields),
	}
}

func ToDomainTransactionSlice(transactions []models.Transaction) []domain.Transaction {
	result := make([]domain.Transaction, len(transactions))
	for i, t := range transactions {
		result[i] = ToDomainTransaction(t)
	}
	return result
}
