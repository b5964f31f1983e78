package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/moneta-app/moneta_backend/internal/apperrors"
	"github.com/moneta-app/moneta_backend/internal/core/domain"
	portsrepo "github.com/moneta-app/moneta_backend/internal/core/ports/repositories"
	portssvc "github.com/moneta-app/moneta_backend/internal/core/ports/services"
	"github.com/moneta-app/moneta_backend/internal/dto"
)

var ErrCountryNotFound = errors.New("country not found")

// accountService provides account and account group operations.
type accountService struct {
	BaseService
	accountRepo  portsrepo.AccountRepositoryFacade
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, currencyRepo portsrepo.CurrencyRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{
		accountRepo:  accountRepo,
		currencyRepo: currencyRepo,
	}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount creates a new account after resolving its currency and
// country.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, req.CurrencyCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrCurrencyNotFound, req.CurrencyCode)
		}
		return nil, fmt.Errorf("failed to resolve currency: %w", err)
	}
	country, err := s.currencyRepo.FindCountryByCode(ctx, req.CountryCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrCountryNotFound, req.CountryCode)
		}
		return nil, fmt.Errorf("failed to resolve country: %w", err)
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:    uuid.NewString(),
		Name:         req.Name,
		AccountType:  domain.AccountType(req.AccountType),
		CurrencyCode: currency.CurrencyCode,
		CountryCode:  country.CountryCode,
		GroupID:      req.GroupID,
		Description:  req.Description,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "failed to save account", slog.String("account_name", req.Name))
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	account.Currency = currency
	account.Country = country
	return &account, nil
}

// GetAccountByID retrieves an account with its currency attached.
func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, accountID)
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

// ListAccounts returns all accounts.
func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

// GetAccountsByCountry returns the visible root groups of the given type,
// keyed by country code. Each country's view of a group holds only that
// country's accounts; groups left empty for a country are omitted from it.
func (s *accountService) GetAccountsByCountry(ctx context.Context, groupType domain.AccountGroupType) (map[string][]domain.AccountGroup, error) {
	groups, err := s.accountRepo.FindGroupsWithAccountsByType(ctx, groupType, false, true)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch account groups: %w", err)
	}

	byCountry := make(map[string][]domain.AccountGroup)
	for i := range groups {
		perCountry := make(map[string][]domain.Account)
		for _, acc := range groups[i].Accounts {
			perCountry[acc.CountryCode] = append(perCountry[acc.CountryCode], acc)
		}
		for countryCode, accounts := range perCountry {
			g := groups[i]
			g.Accounts = accounts
			byCountry[countryCode] = append(byCountry[countryCode], g)
		}
	}
	return byCountry, nil
}
