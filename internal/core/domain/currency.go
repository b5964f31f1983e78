package domain

// Currency represents a supported currency. Reference data, effectively
// immutable after seeding.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // Primary Key (e.g., "USD")
	Name         string `json:"name"`         // e.g., "US Dollar"
	Symbol       string `json:"symbol"`       // e.g., "$"
	IsoDigits    int32  `json:"isoDigits"`    // Decimal places used for rounding/display
	AuditFields
}

// Country represents a supported country. Reference data.
type Country struct {
	CountryCode         string `json:"countryCode"` // Primary Key (ISO 3166-1 alpha-2)
	Name                string `json:"name"`
	DefaultCurrencyCode string `json:"defaultCurrencyCode"` // FK -> currencies.currency_code
	AuditFields
}
