package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/moneta-app/moneta_backend/internal/apperrors"
	"github.com/moneta-app/moneta_backend/internal/core/domain"
	portsrepo "github.com/moneta-app/moneta_backend/internal/core/ports/repositories"
	"github.com/moneta-app/moneta_backend/internal/models"
	"github.com/moneta-app/moneta_backend/internal/utils/mapping"
)

type PgxForexRepository struct {
	BaseRepository
}

// newPgxForexRepository creates a new repository for the FX rate time series.
func newPgxForexRepository(pool *pgxpool.Pool) portsrepo.ForexRepositoryFacade {
	return &PgxForexRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ForexRepositoryFacade = (*PgxForexRepository)(nil)

// FindLatestRates returns, per requested target currency, the newest
// observation for (base, target) whose created_at lies inside the window.
// Pairs with no observation in the window are absent from the result.
func (r *PgxForexRepository) FindLatestRates(ctx context.Context, baseCurrencyCode string, targetCurrencyCodes []string, window domain.RateWindow) (map[string]domain.RateObservation, error) {
	query := `
		SELECT DISTINCT ON (base_currency_code, target_currency_code)
		       observation_id, base_currency_code, target_currency_code, rate, created_at
		FROM forex_rates
		WHERE base_currency_code = $1
		  AND target_currency_code = ANY($2)
		  AND created_at BETWEEN $3 AND $4
		ORDER BY base_currency_code, target_currency_code, created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, baseCurrencyCode, targetCurrencyCodes, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("failed to query latest fx rates for %s: %w", baseCurrencyCode, err)
	}
	defer rows.Close()

	latest := map[string]domain.RateObservation{}
	for rows.Next() {
		var obs models.RateObservation
		err := rows.Scan(
			&obs.ObservationID,
			&obs.BaseCurrencyCode,
			&obs.TargetCurrencyCode,
			&obs.Rate,
			&obs.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fx rate row: %w", err)
		}
		latest[obs.TargetCurrencyCode] = mapping.ToDomainRateObservation(obs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fx rate rows: %w", err)
	}
	return latest, nil
}

// SaveRateObservations appends rate observations as one batch inside a DB
// transaction.
func (r *PgxForexRepository) SaveRateObservations(ctx context.Context, observations []domain.RateObservation) error {
	if len(observations) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	batch := &pgx.Batch{}
	query := `
		INSERT INTO forex_rates (observation_id, base_currency_code, target_currency_code, rate, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	for _, obs := range observations {
		modelObs := mapping.ToModelRateObservation(obs)
		batch.Queue(query,
			modelObs.ObservationID,
			modelObs.BaseCurrencyCode,
			modelObs.TargetCurrencyCode,
			modelObs.Rate,
			modelObs.CreatedAt,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to execute fx observation batch", err)
	}

	return r.Commit(ctx, tx)
}
