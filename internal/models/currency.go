package models

// Currency mirrors the currencies table.
type Currency struct {
	CurrencyCode string `db:"currency_code"`
	Name         string `db:"name"`
	Symbol       string `db:"symbol"`
	IsoDigits    int32  `db:"iso_digits"`
	AuditFields
}

// Country mirrors the countries table.
type Country struct {
	CountryCode         string `db:"country_code"`
	Name                string `db:"name"`
	DefaultCurrencyCode string `db:"default_currency_code"`
	AuditFields
}
