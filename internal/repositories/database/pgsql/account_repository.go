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

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account and account
// group data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	modelAcc := mapping.ToModelAccount(account)
	query := `
		INSERT INTO accounts (account_id, name, account_type, currency_code, country_code, group_id, description, is_active, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelAcc.AccountID,
		modelAcc.Name,
		modelAcc.AccountType,
		modelAcc.CurrencyCode,
		modelAcc.CountryCode,
		modelAcc.GroupID,
		modelAcc.Description,
		modelAcc.IsActive,
		modelAcc.CreatedAt,
		modelAcc.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save account %s: %w", modelAcc.AccountID, err)
	}
	return nil
}

// FindAccountByID retrieves an account by its ID with its currency attached.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `
		SELECT a.account_id, a.name, a.account_type, a.currency_code, a.country_code, a.group_id, a.description, a.is_active, a.created_at, a.last_updated_at,
		       c.currency_code, c.name, c.symbol, c.iso_digits, c.created_at, c.last_updated_at
		FROM accounts a
		JOIN currencies c ON a.currency_code = c.currency_code
		WHERE a.account_id = $1;
	`
	var modelAcc models.Account
	var modelCurr models.Currency
	err := r.Pool.QueryRow(ctx, query, accountID).Scan(
		&modelAcc.AccountID,
		&modelAcc.Name,
		&modelAcc.AccountType,
		&modelAcc.CurrencyCode,
		&modelAcc.CountryCode,
		&modelAcc.GroupID,
		&modelAcc.Description,
		&modelAcc.IsActive,
		&modelAcc.CreatedAt,
		&modelAcc.LastUpdatedAt,
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
		return nil, fmt.Errorf("failed to find account by ID %s: %w", accountID, err)
	}

	domainAcc := mapping.ToDomainAccount(modelAcc)
	domainCurr := mapping.ToDomainCurrency(modelCurr)
	domainAcc.Currency = &domainCurr
	return &domainAcc, nil
}

// ListAccounts retrieves all accounts with their currency attached.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	query := `
		SELECT a.account_id, a.name, a.account_type, a.currency_code, a.country_code, a.group_id, a.description, a.is_active, a.created_at, a.last_updated_at,
		       c.currency_code, c.name, c.symbol, c.iso_digits, c.created_at, c.last_updated_at
		FROM accounts a
		JOIN currencies c ON a.currency_code = c.currency_code
		ORDER BY a.name;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		var modelAcc models.Account
		var modelCurr models.Currency
		err := rows.Scan(
			&modelAcc.AccountID,
			&modelAcc.Name,
			&modelAcc.AccountType,
			&modelAcc.CurrencyCode,
			&modelAcc.CountryCode,
			&modelAcc.GroupID,
			&modelAcc.Description,
			&modelAcc.IsActive,
			&modelAcc.CreatedAt,
			&modelAcc.LastUpdatedAt,
			&modelCurr.CurrencyCode,
			&modelCurr.Name,
			&modelCurr.Symbol,
			&modelCurr.IsoDigits,
			&modelCurr.CreatedAt,
			&modelCurr.LastUpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		domainAcc := mapping.ToDomainAccount(modelAcc)
		domainCurr := mapping.ToDomainCurrency(modelCurr)
		domainAcc.Currency = &domainCurr
		accounts = append(accounts, domainAcc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return accounts, nil
}

// FindGroupsWithAccountsByType retrieves account groups of the given type
// with their active accounts attached. rootOnly restricts the result to
// groups without a parent.
func (r *PgxAccountRepository) FindGroupsWithAccountsByType(ctx context.Context, groupType domain.AccountGroupType, includeHidden bool, rootOnly bool) ([]domain.AccountGroup, error) {
	groupQuery := `
		SELECT group_id, name, type, is_hidden, parent_group_id, created_at, last_updated_at
		FROM account_groups
		WHERE type = $1
	`
	if !includeHidden {
		groupQuery += " AND NOT is_hidden"
	}
	if rootOnly {
		groupQuery += " AND parent_group_id IS NULL"
	}
	groupQuery += " ORDER BY name;"

	rows, err := r.Pool.Query(ctx, groupQuery, string(groupType))
	if err != nil {
		return nil, fmt.Errorf("failed to query account groups: %w", err)
	}
	defer rows.Close()

	groups := []domain.AccountGroup{}
	groupIndex := map[string]int{}
	groupIDs := []string{}
	for rows.Next() {
		var modelGroup models.AccountGroup
		err := rows.Scan(
			&modelGroup.GroupID,
			&modelGroup.Name,
			&modelGroup.Type,
			&modelGroup.IsHidden,
			&modelGroup.ParentGroupID,
			&modelGroup.CreatedAt,
			&modelGroup.LastUpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account group row: %w", err)
		}
		groups = append(groups, mapping.ToDomainAccountGroup(modelGroup))
		groupIndex[modelGroup.GroupID] = len(groups) - 1
		groupIDs = append(groupIDs, modelGroup.GroupID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account group rows: %w", err)
	}
	if len(groups) == 0 {
		return groups, nil
	}

	accountQuery := `
		SELECT a.account_id, a.name, a.account_type, a.currency_code, a.country_code, a.group_id, a.description, a.is_active, a.created_at, a.last_updated_at,
		       c.currency_code, c.name, c.symbol, c.iso_digits, c.created_at, c.last_updated_at
		FROM accounts a
		JOIN currencies c ON a.currency_code = c.currency_code
		WHERE a.group_id = ANY($1) AND a.is_active
		ORDER BY a.name;
	`
	accRows, err := r.Pool.Query(ctx, accountQuery, groupIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts for groups: %w", err)
	}
	defer accRows.Close()

	for accRows.Next() {
		var modelAcc models.Account
		var modelCurr models.Currency
		err := accRows.Scan(
			&modelAcc.AccountID,
			&modelAcc.Name,
			&modelAcc.AccountType,
			&modelAcc.CurrencyCode,
			&modelAcc.CountryCode,
			&modelAcc.GroupID,
			&modelAcc.Description,
			&modelAcc.IsActive,
			&modelAcc.CreatedAt,
			&modelAcc.LastUpdatedAt,
			&modelCurr.CurrencyCode,
			&modelCurr.Name,
			&modelCurr.Symbol,
			&modelCurr.IsoDigits,
			&modelCurr.CreatedAt,
			&modelCurr.LastUpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan grouped account row: %w", err)
		}
		domainAcc := mapping.ToDomainAccount(modelAcc)
		domainCurr := mapping.ToDomainCurrency(modelCurr)
		domainAcc.Currency = &domainCurr
		if modelAcc.GroupID != nil {
			if idx, ok := groupIndex[*modelAcc.GroupID]; ok {
				groups[idx].Accounts = append(groups[idx].Accounts, domainAcc)
			}
		}
	}
	if err := accRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating grouped account rows: %w", err)
	}

	return groups, nil
}

// SaveAccountGroup inserts a new account group.
func (r *PgxAccountRepository) SaveAccountGroup(ctx context.Context, group domain.AccountGroup) error {
	modelGroup := mapping.ToModelAccountGroup(group)
	query := `
		INSERT INTO account_groups (group_id, name, type, is_hidden, parent_group_id, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelGroup.GroupID,
		modelGroup.Name,
		modelGroup.Type,
		modelGroup.IsHidden,
		modelGroup.ParentGroupID,
		modelGroup.CreatedAt,
		modelGroup.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save account group %s: %w", modelGroup.GroupID, err)
	}
	return nil
}
