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

type PgxStoreRepository struct {
	BaseRepository
}

func newPgxStoreRepository(pool *pgxpool.Pool) portsrepo.StoreRepositoryFacade {
	return &PgxStoreRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.StoreRepositoryFacade = (*PgxStoreRepository)(nil)

const storeColumns = `store_id, name, address, phone, created_at, created_by, last_updated_at, last_updated_by`

func scanStore(row pgx.Row) (domain.Store, error) {
	var s domain.Store
	err := row.Scan(
		&s.StoreID,
		&s.Name,
		&s.Address,
		&s.Phone,
		&s.CreatedAt,
		&s.CreatedBy,
		&s.LastUpdatedAt,
		&s.LastUpdatedBy,
	)
	return s, err
}

// SaveStore inserts a new store.
func (r *PgxStoreRepository) SaveStore(ctx context.Context, store domain.Store) error {
	query := `
		INSERT INTO stores (store_id, name, address, phone, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		store.StoreID,
		store.Name,
		store.Address,
		store.Phone,
		store.CreatedAt,
		store.CreatedBy,
		store.LastUpdatedAt,
		store.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save store %s: %w", store.StoreID, err)
	}
	return nil
}

// FindStoreByID retrieves a store by its ID.
func (r *PgxStoreRepository) FindStoreByID(ctx context.Context, storeID string) (*domain.Store, error) {
	query := `SELECT ` + storeColumns + ` FROM stores WHERE store_id = $1;`
	s, err := scanStore(r.Pool.QueryRow(ctx, query, storeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find store %s: %w", storeID, err)
	}
	return &s, nil
}

// ListStores retrieves all stores ordered by name.
func (r *PgxStoreRepository) ListStores(ctx context.Context) ([]domain.Store, error) {
	query := `SELECT ` + storeColumns + ` FROM stores ORDER BY name;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}
	defer rows.Close()

	var stores []domain.Store
	for rows.Next() {
		s, err := scanStore(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan store row: %w", err)
		}
		stores = append(stores, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating store rows: %w", err)
	}
	return stores, nil
}
