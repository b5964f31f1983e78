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

// forexService manages the append-only FX rate history.
type forexService struct {
	BaseService
	forexRepo    portsrepo.ForexRepositoryFacade
	currencyRepo portsrepo.CurrencyRepositoryFacade
	rateLookback time.Duration
}

// NewForexService creates a new ForexService.
func NewForexService(forexRepo portsrepo.ForexRepositoryFacade, currencyRepo portsrepo.CurrencyRepositoryFacade, rateLookback time.Duration) portssvc.ForexSvcFacade {
	return &forexService{
		forexRepo:    forexRepo,
		currencyRepo: currencyRepo,
		rateLookback: rateLookback,
	}
}

var _ portssvc.ForexSvcFacade = (*forexService)(nil)

// LatestRates returns the newest observation per requested target within the
// lookback window ending now. Targets with no observation are absent.
func (s *forexService) LatestRates(ctx context.Context, baseCurrencyCode string, targetCurrencyCodes []string) (map[string]domain.RateObservation, error) {
	if _, err := s.currencyRepo.FindCurrencyByCode(ctx, baseCurrencyCode); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrCurrencyNotFound, baseCurrencyCode)
		}
		return nil, fmt.Errorf("failed to resolve base currency: %w", err)
	}
	if len(targetCurrencyCodes) == 0 {
		return map[string]domain.RateObservation{}, nil
	}

	now := time.Now().UTC()
	window := domain.RateWindow{Start: now.Add(-s.rateLookback), End: now}
	rates, err := s.forexRepo.FindLatestRates(ctx, baseCurrencyCode, targetCurrencyCodes, window)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest fx rates: %w", err)
	}
	return rates, nil
}

// RecordRates validates and appends rate observations to the FX history.
func (s *forexService) RecordRates(ctx context.Context, req dto.RecordRatesRequest) error {
	now := time.Now().UTC()
	seen := map[string]struct{}{}
	observations := make([]domain.RateObservation, 0, len(req.Observations))
	for _, obs := range req.Observations {
		if obs.BaseCurrencyCode == obs.TargetCurrencyCode {
			return apperrors.NewValidationError(fmt.Sprintf("base and target currency are identical: %s", obs.BaseCurrencyCode))
		}
		for _, code := range []string{obs.BaseCurrencyCode, obs.TargetCurrencyCode} {
			if _, ok := seen[code]; ok {
				continue
			}
			if _, err := s.currencyRepo.FindCurrencyByCode(ctx, code); err != nil {
				if errors.Is(err, apperrors.ErrNotFound) {
					return fmt.Errorf("%w: %s", ErrCurrencyNotFound, code)
				}
				return fmt.Errorf("failed to resolve currency: %w", err)
			}
			seen[code] = struct{}{}
		}
		rate, err := money.ParseAmount(obs.Rate, domain.FxRatePrecision)
		if err != nil || rate.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("%w: %s/%s", ErrInvalidFxRate, obs.BaseCurrencyCode, obs.TargetCurrencyCode)
		}
		observations = append(observations, domain.RateObservation{
			ObservationID:      uuid.NewString(),
			BaseCurrencyCode:   obs.BaseCurrencyCode,
			TargetCurrencyCode: obs.TargetCurrencyCode,
			Rate:               rate,
			CreatedAt:          now,
		})
	}

	if err := s.forexRepo.SaveRateObservations(ctx, observations); err != nil {
		s.LogError(ctx, err, "failed to save rate observations", slog.Int("count", len(observations)))
		return fmt.Errorf("failed to record fx rates: %w", err)
	}
	return nil
}
