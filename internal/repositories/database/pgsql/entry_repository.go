package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/moneta-app/moneta_backend/internal/apperrors"
	"github.com/moneta-app/moneta_backend/internal/core/domain"
	portsrepo "github.com/moneta-app/moneta_backend/internal/core/ports/repositories"
	"github.com/moneta-app/moneta_backend/internal/models"
	"github.com/moneta-app/moneta_backend/internal/utils/mapping"
	"github.com/moneta-app/moneta_backend/internal/utils/pagination"
)

type PgxEntryRepository struct {
	BaseRepository
}

// newPgxEntryRepository creates a new repository for journal entry data.
func newPgxEntryRepository(pool *pgxpool.Pool) portsrepo.EntryRepositoryFacade {
	return &PgxEntryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.EntryRepositoryFacade = (*PgxEntryRepository)(nil)

// SaveEntry persists the entry, its optional FX snapshot and its legs within
// one DB transaction. The transaction commits only on the nil-error path; any
// failure rolls the whole posting back.
func (r *PgxEntryRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry, fxRate *domain.EntryFxRate, legs []domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	// Ignored once the transaction is committed.
	defer r.Rollback(ctx, tx)

	modelEntry := mapping.ToModelJournalEntry(entry)
	entryQuery := `
		INSERT INTO journal_entries (entry_id, type, date, title, description, currency_code, amount, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err = tx.Exec(ctx, entryQuery,
		modelEntry.EntryID,
		modelEntry.Type,
		modelEntry.Date,
		modelEntry.Title,
		modelEntry.Description,
		modelEntry.CurrencyCode,
		modelEntry.Amount,
		modelEntry.CreatedAt,
		modelEntry.LastUpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert journal entry "+modelEntry.EntryID, err)
	}

	if fxRate != nil {
		modelFx := mapping.ToModelEntryFxRate(*fxRate)
		fxQuery := `
			INSERT INTO journal_entry_fx_rates (entry_id, base_currency_code, target_currency_code, rate, created_at, last_updated_at)
			VALUES ($1, $2, $3, $4, $5, $6);
		`
		_, err = tx.Exec(ctx, fxQuery,
			modelFx.EntryID,
			modelFx.BaseCurrencyCode,
			modelFx.TargetCurrencyCode,
			modelFx.Rate,
			modelFx.CreatedAt,
			modelFx.LastUpdatedAt,
		)
		if err != nil {
			return apperrors.NewAppError(500, "failed to insert fx snapshot for entry "+modelEntry.EntryID, err)
		}
	}

	batch := &pgx.Batch{}
	legQuery := `
		INSERT INTO transactions (transaction_id, entry_id, account_id, amount, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	for _, leg := range legs {
		modelLeg := mapping.ToModelTransaction(leg)
		batch.Queue(legQuery,
			modelLeg.TransactionID,
			modelLeg.EntryID,
			modelLeg.AccountID,
			modelLeg.Amount,
			modelLeg.CreatedAt,
			modelLeg.LastUpdatedAt,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to execute leg batch for entry "+modelEntry.EntryID, err)
	}

	return r.Commit(ctx, tx)
}

// scanEntryWithRelations scans one joined row of journal_entries, currencies
// and the optional fx snapshot.
func scanEntryWithRelations(row pgx.Row) (*domain.JournalEntry, error) {
	var modelEntry models.JournalEntry
	var modelCurr models.Currency
	var fxBase, fxTarget sql.NullString
	var fxRate decimal.NullDecimal
	var fxCreatedAt, fxUpdatedAt sql.NullTime

	err := row.Scan(
		&modelEntry.EntryID,
		&modelEntry.Type,
		&modelEntry.Date,
		&modelEntry.Title,
		&modelEntry.Description,
		&modelEntry.CurrencyCode,
		&modelEntry.Amount,
		&modelEntry.CreatedAt,
		&modelEntry.LastUpdatedAt,
		&modelCurr.CurrencyCode,
		&modelCurr.Name,
		&modelCurr.Symbol,
		&modelCurr.IsoDigits,
		&modelCurr.CreatedAt,
		&modelCurr.LastUpdatedAt,
		&fxBase,
		&fxTarget,
		&fxRate,
		&fxCreatedAt,
		&fxUpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	domainEntry := mapping.ToDomainJournalEntry(modelEntry)
	domainCurr := mapping.ToDomainCurrency(modelCurr)
	domainEntry.Currency = &domainCurr
	if fxBase.Valid && fxTarget.Valid && fxRate.Valid {
		domainEntry.FxRate = &domain.EntryFxRate{
			EntryID:            domainEntry.EntryID,
			BaseCurrencyCode:   fxBase.String,
			TargetCurrencyCode: fxTarget.String,
			Rate:               fxRate.Decimal,
			AuditFields: domain.AuditFields{
				CreatedAt:     fxCreatedAt.Time,
				LastUpdatedAt: fxUpdatedAt.Time,
			},
		}
	}
	return &domainEntry, nil
}

const entryWithRelationsColumns = `
	e.entry_id, e.type, e.date, e.title, e.description, e.currency_code, e.amount, e.created_at, e.last_updated_at,
	c.currency_code, c.name, c.symbol, c.iso_digits, c.created_at, c.last_updated_at,
	fx.base_currency_code, fx.target_currency_code, fx.rate, fx.created_at, fx.last_updated_at
`

const entryWithRelationsFrom = `
	FROM journal_entries e
	JOIN currencies c ON e.currency_code = c.currency_code
	LEFT JOIN journal_entry_fx_rates fx ON e.entry_id = fx.entry_id
`

// FindEntryByID retrieves a journal entry with its currency, FX snapshot and
// legs attached.
func (r *PgxEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + entryWithRelationsColumns + entryWithRelationsFrom + ` WHERE e.entry_id = $1;`

	entry, err := scanEntryWithRelations(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find journal entry by ID %s: %w", entryID, err)
	}

	legQuery := `
		SELECT transaction_id, entry_id, account_id, amount, created_at, last_updated_at
		FROM transactions
		WHERE entry_id = $1
		ORDER BY amount, transaction_id;
	`
	rows, err := r.Pool.Query(ctx, legQuery, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query legs for entry %s: %w", entryID, err)
	}
	defer rows.Close()

	modelLegs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Transaction, error) {
		var t models.Transaction
		err := row.Scan(
			&t.TransactionID,
			&t.EntryID,
			&t.AccountID,
			&t.Amount,
			&t.CreatedAt,
			&t.LastUpdatedAt,
		)
		return t, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect leg rows for entry %s: %w", entryID, err)
	}

	entry.Transactions = mapping.ToDomainTransactionSlice(modelLegs)
	return entry, nil
}

// FindEntriesByTypeAndDateRange retrieves entries of the given type whose
// date falls in [from, to], with currency and FX snapshot attached.
func (r *PgxEntryRepository) FindEntriesByTypeAndDateRange(ctx context.Context, entryType domain.EntryType, from, to time.Time) ([]domain.JournalEntry, error) {
	query := `SELECT ` + entryWithRelationsColumns + entryWithRelationsFrom + `
		WHERE e.type = $1 AND e.date BETWEEN $2 AND $3
		ORDER BY e.date, e.created_at;`

	rows, err := r.Pool.Query(ctx, query, string(entryType), from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s entries: %w", entryType, err)
	}
	defer rows.Close()

	entries := []domain.JournalEntry{}
	for rows.Next() {
		entry, err := scanEntryWithRelations(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s entry row: %w", entryType, err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s entry rows: %w", entryType, err)
	}
	return entries, nil
}

// ListEntries retrieves a newest-first page of journal entries using
// token-based keyset pagination over (date, created_at).
func (r *PgxEntryRepository) ListEntries(ctx context.Context, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra row to determine if there's a next page.
	fetchLimit := limit + 1

	baseQuery := `SELECT ` + entryWithRelationsColumns + entryWithRelationsFrom
	orderByClause := `ORDER BY e.date DESC, e.created_at DESC`

	var rows pgx.Rows
	var err error
	args := []interface{}{}

	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		cursorClause := `WHERE (e.date, e.created_at) < ($1, $2)`
		args = append(args, lastDate, lastCreatedAt)
		query := baseQuery + " " + cursorClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)+1) + ";"
		args = append(args, fetchLimit)
		rows, err = r.Pool.Query(ctx, query, args...)
	} else {
		query := baseQuery + " " + orderByClause + " LIMIT $1;"
		rows, err = r.Pool.Query(ctx, query, fetchLimit)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query journal entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.JournalEntry{}
	for rows.Next() {
		entry, err := scanEntryWithRelations(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan journal entry row: %w", err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating journal entry rows: %w", err)
	}

	var newNextToken *string
	if len(entries) > limit {
		entries = entries[:limit]
		last := entries[len(entries)-1]
		token := pagination.EncodeToken(last.Date, last.CreatedAt)
		newNextToken = &token
	}
	return entries, newNextToken, nil
}
