package services

import (
	"context"
	"time"

	"github.com/moneta-app/moneta_backend/internal/core/domain"
	"github.com/moneta-app/moneta_backend/internal/dto"
)

// LedgerSvcFacade defines the interface for journal entry posting and
// retrieval operations.
type LedgerSvcFacade interface {
	// PostTransaction validates the form, resolves accounts and currencies,
	// and atomically persists the entry with its two balancing legs (and FX
	// snapshot when the posting crosses currencies). Returns the persisted
	// entry as read back from storage.
	PostTransaction(ctx context.Context, req dto.PostTransactionRequest) (*domain.JournalEntry, error)
	// GetEntryByID retrieves a single journal entry with its legs attached.
	GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)
	// ListEntries returns a page of entries ordered newest first, plus the
	// token for the next page (nil when exhausted).
	ListEntries(ctx context.Context, params dto.ListEntriesParams) ([]domain.JournalEntry, *string, error)
}

// SummarySvcFacade defines the interface for period summary computation.
type SummarySvcFacade interface {
	// GetSummary computes income and expense totals for [from, to], converted
	// into baseCurrencyCode using the newest observed rate per currency pair.
	// Entries whose currency has no observed rate are excluded and reported
	// via the Partial flag.
	GetSummary(ctx context.Context, from, to time.Time, baseCurrencyCode string) (*domain.PeriodSummary, error)
}

// AccountSvcFacade defines the interface for account and account group
// operations.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	// GetAccountsByCountry returns the visible root groups of the given type,
	// keyed by country code, with each group's accounts filtered to that
	// country.
	GetAccountsByCountry(ctx context.Context, groupType domain.AccountGroupType) (map[string][]domain.AccountGroup, error)
}

// CurrencySvcFacade defines the interface for currency and country reference
// data operations.
type CurrencySvcFacade interface {
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
	GetCountryByCode(ctx context.Context, countryCode string) (*domain.Country, error)
	ListCountries(ctx context.Context) ([]domain.Country, error)
}

// ForexSvcFacade defines the interface for FX rate history operations.
type ForexSvcFacade interface {
	// LatestRates returns the newest observed rate per target currency within
	// the configured lookback window ending now. Targets with no observation
	// are absent from the map.
	LatestRates(ctx context.Context, baseCurrencyCode string, targetCurrencyCodes []string) (map[string]domain.RateObservation, error)
	// RecordRates appends rate observations to the FX history.
	RecordRates(ctx context.Context, req dto.RecordRatesRequest) error
}

// ServiceContainer holds all service facades for handler wiring.
type ServiceContainer struct {
	LedgerSvc   LedgerSvcFacade
	SummarySvc  SummarySvcFacade
	AccountSvc  AccountSvcFacade
	CurrencySvc CurrencySvcFacade
	ForexSvc    ForexSvcFacade
}
