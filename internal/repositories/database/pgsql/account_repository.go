package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tillworks/tilldesk/internal/apperrors"
	"github.com/tillworks/tilldesk/internal/core/domain"
	portsrepo "github.com/tillworks/tilldesk/internal/core/ports/repositories"
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for chart-of-accounts data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

const accountColumns = `account_id, account_name, account_type, initial_balance, created_at, created_by, last_updated_at, last_updated_by`

func scanAccount(row pgx.Row) (domain.Account, error) {
	var a domain.Account
	err := row.Scan(
		&a.AccountID,
		&a.Name,
		&a.AccountType,
		&a.OpeningBalance,
		&a.CreatedAt,
		&a.CreatedBy,
		&a.LastUpdatedAt,
		&a.LastUpdatedBy,
	)
	return a, err
}

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	query := `
		INSERT INTO chart_of_accounts (account_id, account_name, account_type, initial_balance, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		account.AccountID,
		account.Name,
		account.AccountType,
		account.OpeningBalance,
		account.CreatedAt,
		account.CreatedBy,
		account.LastUpdatedAt,
		account.LastUpdatedBy,
	)
	if err != nil {
		if isPgErrCode(err, pgUniqueViolation) {
			return fmt.Errorf("%w: account named %q already exists", apperrors.ErrDuplicate, account.Name)
		}
		return fmt.Errorf("failed to save account %s: %w", account.AccountID, err)
	}
	return nil
}

// UpdateAccount overwrites an existing account's mutable fields.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	query := `
		UPDATE chart_of_accounts
		SET account_name = $2, account_type = $3, initial_balance = $4, last_updated_at = $5, last_updated_by = $6
		WHERE account_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		account.AccountID,
		account.Name,
		account.AccountType,
		account.OpeningBalance,
		account.LastUpdatedAt,
		account.LastUpdatedBy,
	)
	if err != nil {
		if isPgErrCode(err, pgUniqueViolation) {
			return fmt.Errorf("%w: account named %q already exists", apperrors.ErrDuplicate, account.Name)
		}
		return fmt.Errorf("failed to update account %s: %w", account.AccountID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM chart_of_accounts WHERE account_id = $1;`
	a, err := scanAccount(r.Pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}
	return &a, nil
}

// FindAccountByName retrieves an account by its unique name.
func (r *PgxAccountRepository) FindAccountByName(ctx context.Context, name string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM chart_of_accounts WHERE account_name = $1;`
	a, err := scanAccount(r.Pool.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account named %q: %w", name, err)
	}
	return &a, nil
}

// FindAccountsByNames retrieves accounts for the given names, keyed by name.
func (r *PgxAccountRepository) FindAccountsByNames(ctx context.Context, names []string) (map[string]domain.Account, error) {
	if len(names) == 0 {
		return map[string]domain.Account{}, nil
	}
	query := `SELECT ` + accountColumns + ` FROM chart_of_accounts WHERE account_name = ANY($1);`
	rows, err := r.Pool.Query(ctx, query, names)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts by names: %w", err)
	}
	defer rows.Close()

	found := make(map[string]domain.Account, len(names))
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		found[a.Name] = a
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return found, nil
}

// FindAccountsByIDs retrieves accounts for the given IDs, keyed by ID.
func (r *PgxAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	if len(accountIDs) == 0 {
		return map[string]domain.Account{}, nil
	}
	query := `SELECT ` + accountColumns + ` FROM chart_of_accounts WHERE account_id = ANY($1);`
	rows, err := r.Pool.Query(ctx, query, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts by IDs: %w", err)
	}
	defer rows.Close()

	found := make(map[string]domain.Account, len(accountIDs))
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		found[a.AccountID] = a
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return found, nil
}

// ListAccounts retrieves all accounts ordered by name, optionally filtered
// by account type.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, filterType *domain.AccountType) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM chart_of_accounts`
	args := []any{}
	if filterType != nil {
		query += ` WHERE account_type = $1`
		args = append(args, *filterType)
	}
	query += ` ORDER BY account_name;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return accounts, nil
}
