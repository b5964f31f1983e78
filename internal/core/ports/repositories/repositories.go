package repositories

import (
	"context"
	"time"

	"github.com/moneta-app/moneta_backend/internal/core/domain"
)

// Note: Context is included on every method for cancellation/timeouts; read
// paths are side-effect-free and safe to call concurrently across requests.

// AccountRepositoryFacade defines the persistence operations for accounts and
// account groups.
type AccountRepositoryFacade interface {
	SaveAccount(ctx context.Context, account domain.Account) error
	// FindAccountByID returns the account with its currency attached, or
	// apperrors.ErrNotFound.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	// FindGroupsWithAccountsByType returns account groups of the given type
	// with their accounts (currency and country attached). rootOnly restricts
	// the result to groups without a parent.
	FindGroupsWithAccountsByType(ctx context.Context, groupType domain.AccountGroupType, includeHidden bool, rootOnly bool) ([]domain.AccountGroup, error)
	SaveAccountGroup(ctx context.Context, group domain.AccountGroup) error
}

// CurrencyRepositoryFacade defines read operations over currency and country
// reference data.
type CurrencyRepositoryFacade interface {
	FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
	FindCountryByCode(ctx context.Context, countryCode string) (*domain.Country, error)
	ListCountries(ctx context.Context) ([]domain.Country, error)
}

// EntryRepositoryFacade defines the persistence operations for journal
// entries and their transaction legs.
type EntryRepositoryFacade interface {
	// SaveEntry persists the entry, its optional FX snapshot and its two legs
	// as one database transaction: either every row is written or none is.
	// The transaction commits only when SaveEntry is about to return nil.
	SaveEntry(ctx context.Context, entry domain.JournalEntry, fxRate *domain.EntryFxRate, legs []domain.Transaction) error
	// FindEntryByID returns the entry with its legs, currency and FX snapshot
	// attached, or apperrors.ErrNotFound.
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)
	// FindEntriesByTypeAndDateRange returns entries of the given type whose
	// date falls in [from, to], with currency and FX snapshot attached.
	FindEntriesByTypeAndDateRange(ctx context.Context, entryType domain.EntryType, from, to time.Time) ([]domain.JournalEntry, error)
	// ListEntries returns a newest-first page of entries plus a cursor for
	// the next page, nil when exhausted.
	ListEntries(ctx context.Context, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)
}

// ForexRepositoryFacade defines the operations over the append-only FX rate
// time series.
type ForexRepositoryFacade interface {
	// FindLatestRates returns, per requested target currency, the newest
	// observation for (base, target) whose CreatedAt lies inside the window.
	// Pairs with no observation in the window are absent from the map.
	FindLatestRates(ctx context.Context, baseCurrencyCode string, targetCurrencyCodes []string, window domain.RateWindow) (map[string]domain.RateObservation, error)
	SaveRateObservations(ctx context.Context, observations []domain.RateObservation) error
}

// RepositoryProvider bundles all repositories for service wiring.
type RepositoryProvider struct {
	AccountRepo  AccountRepositoryFacade
	CurrencyRepo CurrencyRepositoryFacade
	EntryRepo    EntryRepositoryFacade
	ForexRepo    ForexRepositoryFacade
}
