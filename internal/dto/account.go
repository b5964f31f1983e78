package dto

import (
	"github.com/moneta-app/moneta_backend/internal/core/domain"
)

// CreateAccountRequest defines the expected JSON body for creating an account.
type CreateAccountRequest struct {
	Name         string  `json:"name" binding:"required,max=100"`
	AccountType  string  `json:"accountType" binding:"required,oneof=ASSET LIABILITY EQUITY INCOME EXPENSE"`
	CurrencyCode string  `json:"currencyCode" binding:"required,len=3,uppercase"`
	CountryCode  string  `json:"countryCode" binding:"required,len=2,uppercase"`
	GroupID      *string `json:"groupID" binding:"omitempty,uuid"`
	Description  string  `json:"description" binding:"max=1000"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID    string            `json:"accountID"`
	Name         string            `json:"name"`
	AccountType  string            `json:"accountType"`
	CurrencyCode string            `json:"currencyCode"`
	CountryCode  string            `json:"countryCode"`
	GroupID      *string           `json:"groupID,omitempty"`
	Description  string            `json:"description,omitempty"`
	IsActive     bool              `json:"isActive"`
	Currency     *CurrencyResponse `json:"currency,omitempty"`
}

// AccountGroupResponse defines the data returned for an account group with
// its (possibly country-filtered) accounts.
type AccountGroupResponse struct {
	GroupID       string            `json:"groupID"`
	Name          string            `json:"name"`
	Type          string            `json:"type"`
	IsHidden      bool              `json:"isHidden"`
	ParentGroupID *string           `json:"parentGroupID,omitempty"`
	Accounts      []AccountResponse `json:"accounts"`
}

// AccountsByCountryResponse maps a country code to the account groups holding
// that country's accounts.
type AccountsByCountryResponse map[string][]AccountGroupResponse

// ToAccountResponse converts a domain.Account to its DTO.
func ToAccountResponse(a *domain.Account) AccountResponse {
	resp := AccountResponse{
		AccountID:    a.AccountID,
		Name:         a.Name,
		AccountType:  string(a.AccountType),
		CurrencyCode: a.CurrencyCode,
		CountryCode:  a.CountryCode,
		GroupID:      a.GroupID,
		Description:  a.Description,
		IsActive:     a.IsActive,
	}
	if a.Currency != nil {
		c := ToCurrencyResponse(a.Currency)
		resp.Currency = &c
	}
	return resp
}

// ToAccountResponses converts a slice of domain accounts to DTOs.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	responses := make([]AccountResponse, len(accounts))
	for i := range accounts {
		responses[i] = ToAccountResponse(&accounts[i])
	}
	return responses
}

// ToAccountGroupResponse converts a domain.AccountGroup to its DTO.
func ToAccountGroupResponse(g *domain.AccountGroup) AccountGroupResponse {
	return AccountGroupResponse{
		GroupID:       g.GroupID,
		Name:          g.Name,
		Type:          string(g.Type),
		IsHidden:      g.IsHidden,
		ParentGroupID: g.ParentGroupID,
		Accounts:      ToAccountResponses(g.Accounts),
	}
}

// ToAccountsByCountryResponse converts the grouped domain result to its DTO.
func ToAccountsByCountryResponse(grouped map[string][]domain.AccountGroup) AccountsByCountryResponse {
	resp := make(AccountsByCountryResponse, len(grouped))
	for countryCode, groups := range grouped {
		groupResponses := make([]AccountGroupResponse, len(groups))
		for i := range groups {
			groupResponses[i] = ToAccountGroupResponse(&groups[i])
		}
		resp[countryCode] = groupResponses
	}
	return resp
}
