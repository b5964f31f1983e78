package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/moneta-app/moneta_backend/internal/apperrors"
	"github.com/moneta-app/moneta_backend/internal/core/domain"
	portsrepo "github.com/moneta-app/moneta_backend/internal/core/ports/repositories"
	portssvc "github.com/moneta-app/moneta_backend/internal/core/ports/services"
)

// currencyService serves currency and country reference data.
type currencyService struct {
	BaseService
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewCurrencyService creates a new CurrencyService.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade) portssvc.CurrencySvcFacade {
	return &currencyService{currencyRepo: currencyRepo}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

func (s *currencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrCurrencyNotFound, currencyCode)
		}
		return nil, fmt.Errorf("failed to get currency by code: %w", err)
	}
	return currency, nil
}

func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}

func (s *currencyService) GetCountryByCode(ctx context.Context, countryCode string) (*domain.Country, error) {
	country, err := s.currencyRepo.FindCountryByCode(ctx, countryCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrCountryNotFound, countryCode)
		}
		return nil, fmt.Errorf("failed to get country by code: %w", err)
	}
	return country, nil
}

func (s *currencyService) ListCountries(ctx context.Context) ([]domain.Country, error) {
	countries, err := s.currencyRepo.ListCountries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list countries: %w", err)
	}
	if countries == nil {
		return []domain.Country{}, nil
	}
	return countries, nil
}
