package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/moneta-app/moneta_backend/internal/apperrors"
	"github.com/moneta-app/moneta_backend/internal/core/domain"
	portsrepo "github.com/moneta-app/moneta_backend/internal/core/ports/repositories"
	portssvc "github.com/moneta-app/moneta_backend/internal/core/ports/services"
	"github.com/moneta-app/moneta_backend/internal/utils/money"
)

// summaryService computes currency-normalized income/expense totals.
type summaryService struct {
	BaseService
	entryRepo    portsrepo.EntryRepositoryFacade
	currencyRepo portsrepo.CurrencyRepositoryFacade
	forexRepo    portsrepo.ForexRepositoryFacade
	rateLookback time.Duration
	queryTimeout time.Duration
}

// NewSummaryService creates a new SummaryService. rateLookback bounds how far
// back a rate observation may lie to still count as current.
func NewSummaryService(entryRepo portsrepo.EntryRepositoryFacade, currencyRepo portsrepo.CurrencyRepositoryFacade, forexRepo portsrepo.ForexRepositoryFacade, rateLookback, queryTimeout time.Duration) portssvc.SummarySvcFacade {
	return &summaryService{
		entryRepo:    entryRepo,
		currencyRepo: currencyRepo,
		forexRepo:    forexRepo,
		rateLookback: rateLookback,
		queryTimeout: queryTimeout,
	}
}

var _ portssvc.SummarySvcFacade = (*summaryService)(nil)

// GetSummary totals income and expense entries in [from, to], converted into
// baseCurrencyCode using the newest observed rate per currency. Entries whose
// currency has no current rate are excluded and reported via Partial and
// UnconvertedCurrencies rather than silently counted at face value.
func (s *summaryService) GetSummary(ctx context.Context, from, to time.Time, baseCurrencyCode string) (*domain.PeriodSummary, error) {
	if s.queryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.queryTimeout)
		defer cancel()
	}

	baseCurrency, err := s.currencyRepo.FindCurrencyByCode(ctx, baseCurrencyCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrCurrencyNotFound, baseCurrencyCode)
		}
		return nil, fmt.Errorf("failed to resolve base currency: %w", err)
	}

	incomeEntries, err := s.entryRepo.FindEntriesByTypeAndDateRange(ctx, domain.EntryTypeIncome, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch income entries: %w", err)
	}
	expenseEntries, err := s.entryRepo.FindEntriesByTypeAndDateRange(ctx, domain.EntryTypeExpense, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch expense entries: %w", err)
	}

	summary := &domain.PeriodSummary{
		BaseCurrencyCode: baseCurrency.CurrencyCode,
		Income:           decimal.Zero,
		Expense:          decimal.Zero,
	}
	if len(incomeEntries) == 0 && len(expenseEntries) == 0 {
		return summary, nil
	}

	// Only look up rates when some entry is denominated off the base currency.
	targets := distinctForeignCurrencies(baseCurrency.CurrencyCode, incomeEntries, expenseEntries)

	rates := map[string]domain.RateObservation{}
	if len(targets) > 0 {
		now := time.Now().UTC()
		window := domain.RateWindow{Start: now.Add(-s.rateLookback), End: now}
		rates, err = s.forexRepo.FindLatestRates(ctx, baseCurrency.CurrencyCode, targets, window)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch latest fx rates: %w", err)
		}
	}

	unconverted := map[string]struct{}{}
	summary.Income = s.sumConverted(ctx, incomeEntries, baseCurrency.CurrencyCode, rates, unconverted)
	summary.Expense = s.sumConverted(ctx, expenseEntries, baseCurrency.CurrencyCode, rates, unconverted)

	summary.Income = money.Round(summary.Income, baseCurrency.IsoDigits)
	summary.Expense = money.Round(summary.Expense, baseCurrency.IsoDigits)

	if len(unconverted) > 0 {
		summary.Partial = true
		summary.UnconvertedCurrencies = make([]string, 0, len(unconverted))
		for code := range unconverted {
			summary.UnconvertedCurrencies = append(summary.UnconvertedCurrencies, code)
		}
		sort.Strings(summary.UnconvertedCurrencies)
		s.LogInfo(ctx, "summary is partial, rates missing for some currencies",
			slog.String("base_currency_code", baseCurrency.CurrencyCode),
			slog.Any("unconverted_currencies", summary.UnconvertedCurrencies))
	}
	return summary, nil
}

// sumConverted totals the entries in the base currency. Entries already in
// the base currency pass through; others divide by the looked-up rate (rate
// is quoted as entry-currency units per base unit). Entries with no rate are
// skipped and their currency recorded in unconverted.
func (s *summaryService) sumConverted(ctx context.Context, entries []domain.JournalEntry, baseCurrencyCode string, rates map[string]domain.RateObservation, unconverted map[string]struct{}) decimal.Decimal {
	total := decimal.Zero
	for i := range entries {
		e := &entries[i]
		if e.CurrencyCode == baseCurrencyCode {
			total = total.Add(e.Amount)
			continue
		}
		obs, ok := rates[e.CurrencyCode]
		if !ok || obs.Rate.LessThanOrEqual(decimal.Zero) {
			unconverted[e.CurrencyCode] = struct{}{}
			s.LogDebug(ctx, "excluding entry from summary, no current rate",
				slog.String("entry_id", e.EntryID),
				slog.String("currency_code", e.CurrencyCode))
			continue
		}
		total = total.Add(e.Amount.Div(obs.Rate))
	}
	return total
}

func distinctForeignCurrencies(baseCurrencyCode string, entrySets ...[]domain.JournalEntry) []string {
	seen := map[string]struct{}{}
	var targets []string
	for _, entries := range entrySets {
		for i := range entries {
			code := entries[i].CurrencyCode
			if code == baseCurrencyCode {
				continue
			}
			if _, ok := seen[code]; ok {
				continue
			}
			seen[code] = struct{}{}
			targets = append(targets, code)
		}
	}
	sort.Strings(targets)
	return targets
}
