package repositories

import (
	"context"

	"github.com/tillworks/tilldesk/internal/core/domain"
)

// AccountReader defines read operations for chart-of-accounts data.
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountByName retrieves an account by its unique name.
	FindAccountByName(ctx context.Context, name string) (*domain.Account, error)

	// FindAccountsByNames retrieves accounts for the given names, keyed by name.
	// Missing names are simply absent from the result map.
	FindAccountsByNames(ctx context.Context, names []string) (map[string]domain.Account, error)

	// FindAccountsByIDs retrieves accounts for the given IDs, keyed by ID.
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)

	// ListAccounts retrieves all accounts, optionally filtered by type.
	ListAccounts(ctx context.Context, filterType *domain.AccountType) ([]domain.Account, error)
}

// AccountWriter defines write operations for chart-of-accounts data.
type AccountWriter interface {
	// SaveAccount persists a new account. Returns apperrors.ErrDuplicate on
	// a name collision.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount overwrites an existing account's name, type and opening
	// balance.
	UpdateAccount(ctx context.Context, account domain.Account) error
}

// AccountRepositoryFacade combines all account repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
