package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/moneta-app/moneta_backend/internal/apperrors"
	"github.com/moneta-app/moneta_backend/internal/core/domain"
	portsrepo "github.com/moneta-app/moneta_backend/internal/core/ports/repositories"
	"github.com/moneta-app/moneta_backend/internal/models"
	"github.com/moneta-app/moneta_backend/internal/utils/mapping"
)

type PgxCurrencyRepository struct {
	BaseRepository
}

// newPgxCurrencyRepository creates a new repository for currency and country
// reference data.
func newPgxCurrencyRepository(pool *pgxpool.Pool) portsrepo.CurrencyRepositoryFacade {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CurrencyRepositoryFacade = (*PgxCurrencyRepository)(nil)

// FindCurrencyByCode retrieves a currency by its 3-letter code.
func (r *PgxCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	query := `
		SELECT currency_code, name, symbol, iso_digits, created_at, last_updated_at
		FROM currencies
		WHERE currency_code = $1;
	`
	var modelCurr models.Currency
	err := r.Pool.QueryRow(ctx, query, currencyCode).Scan(
		&modelCurr.CurrencyCode,
		&modelCurr.Name,
		&modelCurr.Symbol,
		&modelCurr.IsoDigits,
		&modelCurr.CreatedAt,
		&modelCurr.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find currency by code %s: %w", currencyCode, err)
	}

	domainCurr := mapping.ToDomainCurrency(modelCurr)
	return &domainCurr, nil
}

// ListCurrencies retrieves all currencies.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	query := `
		SELECT currency_code, name, symbol, iso_digits, created_at, last_updated_at
		FROM currencies
		ORDER BY currency_code;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}
	defer rows.Close()

	modelCurrencies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Currency, error) {
		var currency models.Currency
		err := row.Scan(
			&currency.CurrencyCode,
			&currency.Name,
			&currency.Symbol,
			&currency.IsoDigits,
			&currency.CreatedAt,
			&currency.LastUpdatedAt,
		)
		return currency, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect currency rows: %w", err)
	}

	return mapping.ToDomainCurrencySlice(modelCurrencies), nil
}

// FindCountryByCode retrieves a country by its 2-letter code.
func (r *PgxCurrencyRepository) FindCountryByCode(ctx context.Context, countryCode string) (*domain.Country, error) {
	query := `
		SELECT country_code, name, default_currency_code, created_at, last_updated_at
		FROM countries
		WHERE country_code = $1;
	`
	var modelCountry models.Country
	err := r.Pool.QueryRow(ctx, query, countryCode).Scan(
		&modelCountry.CountryCode,
		&modelCountry.Name,
		&modelCountry.DefaultCurrencyCode,
		&modelCountry.CreatedAt,
		&modelCountry.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find country by code %s: %w", countryCode, err)
	}

	domainCountry := mapping.ToDomainCountry(modelCountry)
	return &domainCountry, nil
}

// ListCountries retrieves all countries.
func (r *PgxCurrencyRepository) ListCountries(ctx context.Context) ([]domain.Country, error) {
	query := `
		SELECT country_code, name, default_currency_code, created_at, last_updated_at
		FROM countries
		ORDER BY country_code;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query countries: %w", err)
	}
	defer rows.Close()

	modelCountries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Country, error) {
		var country models.Country
		err := row.Scan(
			&country.CountryCode,
			&country.Name,
			&country.DefaultCurrencyCode,
			&country.CreatedAt,
			&country.LastUpdatedAt,
		)
		return country, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect country rows: %w", err)
	}

	return mapping.ToDomainCountrySlice(modelCountries), nil
}
