package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moneta-app/moneta_backend/internal/apperrors"
	"github.com/moneta-app/moneta_backend/internal/core/domain"
	portsrepo "github.com/moneta-app/moneta_backend/internal/core/ports/repositories"
	portssvc "github.com/moneta-app/moneta_backend/internal/core/ports/services"
	"github.com/moneta-app/moneta_backend/internal/dto"
	"github.com/moneta-app/moneta_backend/internal/utils/money"
)

var (
	ErrAccountNotFound  = errors.New("account not found")
	ErrCurrencyNotFound = errors.New("currency not found")
	ErrInvalidAmount    = errors.New("amount must be a positive number")
	ErrInvalidFxRate    = errors.New("fx rate must be a positive number")
	ErrFxRateRequired   = errors.New("fx rate and fx amount are required for cross-currency postings")
	ErrInvalidEntryDate = errors.New("entry date is not a valid date/time")
	ErrPostingFailed    = errors.New("posting could not be completed")
)

// ledgerService provides journal entry posting and retrieval.
type ledgerService struct {
	BaseService
	entryRepo    portsrepo.EntryRepositoryFacade
	accountRepo  portsrepo.AccountRepositoryFacade
	currencyRepo portsrepo.CurrencyRepositoryFacade
	postTimeout  time.Duration
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(entryRepo portsrepo.EntryRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade, currencyRepo portsrepo.CurrencyRepositoryFacade, postTimeout time.Duration) portssvc.LedgerSvcFacade {
	return &ledgerService{
		entryRepo:    entryRepo,
		accountRepo:  accountRepo,
		currencyRepo: currencyRepo,
		postTimeout:  postTimeout,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// PostTransaction posts a two-legged journal entry. The debit account's
// currency is the entry's base currency; the persisted amount is the form's
// fxAmount when a rate is supplied, else the form's amount, parsed fixed-point
// at the base currency's precision. The entry, its optional FX snapshot and
// both legs are written in one database transaction.
func (s *ledgerService) PostTransaction(ctx context.Context, req dto.PostTransactionRequest) (*domain.JournalEntry, error) {
	if s.postTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.postTimeout)
		defer cancel()
	}

	debitAccount, err := s.accountRepo.FindAccountByID(ctx, req.DebitAccountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: debit account %s", ErrAccountNotFound, req.DebitAccountID)
		}
		return nil, fmt.Errorf("failed to resolve debit account: %w", err)
	}

	// Fail fast on the credit side before anything is written.
	if _, err := s.accountRepo.FindAccountByID(ctx, req.CreditAccountID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: credit account %s", ErrAccountNotFound, req.CreditAccountID)
		}
		return nil, fmt.Errorf("failed to resolve credit account: %w", err)
	}

	baseCurrency := debitAccount.Currency
	if baseCurrency == nil {
		baseCurrency, err = s.currencyRepo.FindCurrencyByCode(ctx, debitAccount.CurrencyCode)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrCurrencyNotFound, debitAccount.CurrencyCode)
			}
			return nil, fmt.Errorf("failed to resolve base currency: %w", err)
		}
	}

	if _, err := s.currencyRepo.FindCurrencyByCode(ctx, req.CurrencyCode); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrCurrencyNotFound, req.CurrencyCode)
		}
		return nil, fmt.Errorf("failed to resolve form currency: %w", err)
	}

	crossCurrency := req.CurrencyCode != baseCurrency.CurrencyCode
	if crossCurrency && req.FxRate == "" {
		return nil, ErrFxRateRequired
	}

	// The amount that hits the ledger is always in the base currency: the
	// converted fxAmount for cross-currency postings, the typed amount
	// otherwise.
	amountStr := req.Amount
	if req.FxRate != "" {
		amountStr = req.FxAmount
	}
	amount, err := money.ParseAmount(amountStr, baseCurrency.IsoDigits)
	if err != nil || amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}

	entryDate, err := req.EntryDate()
	if err != nil {
		return nil, ErrInvalidEntryDate
	}

	now := time.Now().UTC()
	entryID := uuid.NewString()

	entry := domain.JournalEntry{
		EntryID:      entryID,
		Type:         domain.EntryType(req.Type),
		Date:         entryDate,
		Title:        req.Title,
		Description:  req.Description,
		CurrencyCode: baseCurrency.CurrencyCode,
		Amount:       amount,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	var fxRate *domain.EntryFxRate
	if req.FxRate != "" {
		rate, err := money.ParseAmount(req.FxRate, domain.FxRatePrecision)
		if err != nil || rate.LessThanOrEqual(decimal.Zero) {
			return nil, ErrInvalidFxRate
		}
		fxRate = &domain.EntryFxRate{
			EntryID:            entryID,
			BaseCurrencyCode:   baseCurrency.CurrencyCode,
			TargetCurrencyCode: req.CurrencyCode,
			Rate:               rate,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				LastUpdatedAt: now,
			},
		}
	}

	legs := []domain.Transaction{
		{
			TransactionID: uuid.NewString(),
			EntryID:       entryID,
			AccountID:     req.DebitAccountID,
			Amount:        amount.Neg(),
			AuditFields:   domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
		},
		{
			TransactionID: uuid.NewString(),
			EntryID:       entryID,
			AccountID:     req.CreditAccountID,
			Amount:        amount,
			AuditFields:   domain.AuditFields{CreatedAt: now, LastUpdatedAt: now},
		},
	}

	if err := s.entryRepo.SaveEntry(ctx, entry, fxRate, legs); err != nil {
		s.LogError(ctx, err, "failed to persist journal entry",
			slog.String("entry_id", entryID),
			slog.String("debit_account_id", req.DebitAccountID),
			slog.String("credit_account_id", req.CreditAccountID))
		return nil, fmt.Errorf("%w: %w", ErrPostingFailed, err)
	}

	saved, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to read back posted entry: %w", err)
	}

	s.LogInfo(ctx, "journal entry posted",
		slog.String("entry_id", entryID),
		slog.String("type", req.Type),
		slog.String("currency_code", entry.CurrencyCode))
	return saved, nil
}

// GetEntryByID retrieves a single journal entry with its legs attached.
func (s *ledgerService) GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get journal entry: %w", err)
	}
	return entry, nil
}

// ListEntries returns a newest-first page of journal entries.
func (s *ledgerService) ListEntries(ctx context.Context, params dto.ListEntriesParams) ([]domain.JournalEntry, *string, error) {
	limit := params.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	entries, nextToken, err := s.entryRepo.ListEntries(ctx, limit, params.NextToken)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	if entries == nil {
		entries = []domain.JournalEntry{}
	}
	return entries, nextToken, nil
}
