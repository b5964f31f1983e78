package mapping

import (
	"github.com/moneta-app/moneta_backend/internal/core/domain"
	"github.com/moneta-app/moneta_backend/internal/models"
)

func ToModelAccount(a domain.Account) models.Account {
	return models.Account{
		AccountID:    a.AccountID,
		Name:         a.Name,
		AccountType:  string(a.AccountType),
		CurrencyCode: a.CurrencyCode,
		CountryCode:  a.CountryCode,
		GroupID:      a.GroupID,
		Description:  a.Description,
		IsActive:     a.IsActive,
		AuditFields:  ToModelAuditFields(a.AuditFields),
	}
}

func ToDomainAccount(a models.Account) domain.Account {
	return domain.Account{
		AccountID:    a.AccountID,
		Name:         a.Name,
		AccountType:  domain.AccountType(a.AccountType),
		CurrencyCode: a.CurrencyCode,
		CountryCode:  a.CountryCode,
		GroupID:      a.GroupID,
		Description:  a.Description,
		IsActive:     a.IsActive,
		AuditFields:  ToDomainAuditFields(a.AuditFields),
	}
}

func ToDomainAccountSlice(accounts []models.Account) []domain.Account {
	result := make([]domain.Account, len(accounts))
	for i, a := range accounts {
		result[i] = ToDomainAccount(a)
	}
	return result
}

func ToModelAccountGroup(g domain.AccountGroup) models.AccountGroup {
	return models.AccountGroup{
		GroupID:       g.GroupID,
		Name:          g.Name,
		Type:          string(g.Type),
		IsHidden:      g.IsHidden,
		ParentGroupID: g.ParentGroupID,
		AuditFields:   ToModelAuditFields(g.AuditFields),
	}
}

func ToDomainAccountGroup(g models.AccountGroup) domain.AccountGroup {
	return domain.AccountGroup{
		GroupID:       g.GroupID,
		Name:          g.Name,
		Type:          domain.AccountGroupType(g.Type),
		IsHidden:      g.IsHidden,
		ParentGroupID: g.ParentGroupID,
		AuditFields:   ToDomainAuditFields(g.AuditFields),
	}
}
