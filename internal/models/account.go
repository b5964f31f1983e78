package models

// Account mirrors the accounts table.
type Account struct {
	AccountID    string  `db:"account_id"`
	Name         string  `db:"name"`
	AccountType  string  `db:"account_type"`
	CurrencyCode string  `db:"currency_code"`
	CountryCode  string  `db:"country_code"`
	GroupID      *string `db:"group_id"` // Nullable
	Description  string  `db:"description"`
	IsActive     bool    `db:"is_active"`
	AuditFields
}

// AccountGroup mirrors the account_groups table. The group tree is stored
// flat; ParentGroupID is nil for root groups.
type AccountGroup struct {
	GroupID       string  `db:"group_id"`
	Name          string  `db:"name"`
	Type          string  `db:"type"`
	IsHidden      bool    `db:"is_hidden"`
	ParentGroupID *string `db:"parent_group_id"`
	AuditFields
}
