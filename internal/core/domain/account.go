package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Income    AccountType = "INCOME"
	Expense   AccountType = "EXPENSE"
)

// Account represents a financial account within the ledger. Its currency is
// fixed at creation time; journal entries posted against the account are
// stored in that currency.
type Account struct {
	AccountID    string      `json:"accountID"`    // Primary Key (UUID)
	Name         string      `json:"name"`         // User-defined name
	AccountType  AccountType `json:"accountType"`  // ASSET, LIABILITY, etc.
	CurrencyCode string      `json:"currencyCode"` // FK -> currencies.currency_code (NOT NULL)
	CountryCode  string      `json:"countryCode"`  // FK -> countries.country_code (NOT NULL)
	GroupID      *string     `json:"groupID"`      // Nullable FK -> account_groups.group_id
	Description  string      `json:"description"`
	IsActive     bool        `json:"isActive"`
	AuditFields

	// Currency and Country are attached on joined reads; nil otherwise.
	Currency *Currency `json:"currency,omitempty"`
	Country  *Country  `json:"country,omitempty"`
}

// AccountGroupType distinguishes the purpose of an account group.
type AccountGroupType string

const (
	GroupTypeAsset     AccountGroupType = "ASSET"
	GroupTypeLiability AccountGroupType = "LIABILITY"
	GroupTypeIncome    AccountGroupType = "INCOME"
	GroupTypeExpense   AccountGroupType = "EXPENSE"
)

// AccountGroup is a named grouping of accounts used only for read-side
// grouping and filtering. Groups form a tree through ParentGroupID; root
// groups have a nil parent. The tree is stored flat and children are looked
// up by query, never embedded.
type AccountGroup struct {
	GroupID       string           `json:"groupID"` // Primary Key (UUID)
	Name          string           `json:"name"`
	Type          AccountGroupType `json:"type"`
	IsHidden      bool             `json:"isHidden"`
	ParentGroupID *string          `json:"parentGroupID"` // Nullable self-reference
	AuditFields

	// Accounts attached on grouped reads; nil otherwise.
	Accounts []Account `json:"accounts,omitempty"`
}
