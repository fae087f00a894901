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

type PgxSupplierRepository struct {
	BaseRepository
}

func newPgxSupplierRepository(pool *pgxpool.Pool) portsrepo.SupplierRepositoryFacade {
	return &PgxSupplierRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.SupplierRepositoryFacade = (*PgxSupplierRepository)(nil)

const supplierColumns = `supplier_id, name, contact_info, created_at, created_by, last_updated_at, last_updated_by`

func scanSupplier(row pgx.Row) (domain.Supplier, error) {
	var s domain.Supplier
	err := row.Scan(
		&s.SupplierID,
		&s.Name,
		&s.ContactInfo,
		&s.CreatedAt,
		&s.CreatedBy,
		&s.LastUpdatedAt,
		&s.LastUpdatedBy,
	)
	return s, err
}

// SaveSupplier inserts a new supplier.
func (r *PgxSupplierRepository) SaveSupplier(ctx context.Context, supplier domain.Supplier) error {
	query := `
		INSERT INTO suppliers (supplier_id, name, contact_info, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		supplier.SupplierID,
		supplier.Name,
		supplier.ContactInfo,
		supplier.CreatedAt,
		supplier.CreatedBy,
		supplier.LastUpdatedAt,
		supplier.LastUpdatedBy,
	)
	if err != nil {
		if isPgErrCode(err, pgUniqueViolation) {
			return fmt.Errorf("%w: supplier named %q already exists", apperrors.ErrDuplicate, supplier.Name)
		}
		return fmt.Errorf("failed to save supplier %s: %w", supplier.SupplierID, err)
	}
	return nil
}

// UpdateSupplier overwrites an existing supplier's fields.
func (r *PgxSupplierRepository) UpdateSupplier(ctx context.Context, supplier domain.Supplier) error {
	query := `
		UPDATE suppliers
		SET name = $2, contact_info = $3, last_updated_at = $4, last_updated_by = $5
		WHERE supplier_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		supplier.SupplierID,
		supplier.Name,
		supplier.ContactInfo,
		supplier.LastUpdatedAt,
		supplier.LastUpdatedBy,
	)
	if err != nil {
		if isPgErrCode(err, pgUniqueViolation) {
			return fmt.Errorf("%w: supplier named %q already exists", apperrors.ErrDuplicate, supplier.Name)
		}
		return fmt.Errorf("failed to update supplier %s: %w", supplier.SupplierID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindSupplierByID retrieves a supplier by its ID.
func (r *PgxSupplierRepository) FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE supplier_id = $1;`
	s, err := scanSupplier(r.Pool.QueryRow(ctx, query, supplierID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find supplier %s: %w", supplierID, err)
	}
	return &s, nil
}

// ListSuppliers retrieves all suppliers ordered by name.
func (r *PgxSupplierRepository) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers ORDER BY name;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	defer rows.Close()

	var suppliers []domain.Supplier
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan supplier row: %w", err)
		}
		suppliers = append(suppliers, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating supplier rows: %w", err)
	}
	return suppliers, nil
}
