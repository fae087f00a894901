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

type PgxCustomerRepository struct {
	BaseRepository
}

func newPgxCustomerRepository(pool *pgxpool.Pool) portsrepo.CustomerRepositoryFacade {
	return &PgxCustomerRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.CustomerRepositoryFacade = (*PgxCustomerRepository)(nil)

const customerColumns = `customer_id, name, phone, email, created_at, created_by, last_updated_at, last_updated_by`

func scanCustomer(row pgx.Row) (domain.Customer, error) {
	var c domain.Customer
	err := row.Scan(
		&c.CustomerID,
		&c.Name,
		&c.Phone,
		&c.Email,
		&c.CreatedAt,
		&c.CreatedBy,
		&c.LastUpdatedAt,
		&c.LastUpdatedBy,
	)
	return c, err
}

// SaveCustomer inserts a new customer.
func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	query := `
		INSERT INTO customers (customer_id, name, phone, email, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		customer.CustomerID,
		customer.Name,
		customer.Phone,
		customer.Email,
		customer.CreatedAt,
		customer.CreatedBy,
		customer.LastUpdatedAt,
		customer.LastUpdatedBy,
	)
	if err != nil {
		if isPgErrCode(err, pgUniqueViolation) {
			return fmt.Errorf("%w: customer email %q already in use", apperrors.ErrDuplicate, customer.Email)
		}
		return fmt.Errorf("failed to save customer %s: %w", customer.CustomerID, err)
	}
	return nil
}

// UpdateCustomer overwrites an existing customer's fields.
func (r *PgxCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	query := `
		UPDATE customers
		SET name = $2, phone = $3, email = $4, last_updated_at = $5, last_updated_by = $6
		WHERE customer_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		customer.CustomerID,
		customer.Name,
		customer.Phone,
		customer.Email,
		customer.LastUpdatedAt,
		customer.LastUpdatedBy,
	)
	if err != nil {
		if isPgErrCode(err, pgUniqueViolation) {
			return fmt.Errorf("%w: customer email %q already in use", apperrors.ErrDuplicate, customer.Email)
		}
		return fmt.Errorf("failed to update customer %s: %w", customer.CustomerID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteCustomer removes a customer. Sales keep a NULL customer reference
// afterwards, so history survives the delete.
func (r *PgxCustomerRepository) DeleteCustomer(ctx context.Context, customerID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM customers WHERE customer_id = $1;`, customerID)
	if err != nil {
		return fmt.Errorf("failed to delete customer %s: %w", customerID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindCustomerByID retrieves a customer by its ID.
func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE customer_id = $1;`
	c, err := scanCustomer(r.Pool.QueryRow(ctx, query, customerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find customer %s: %w", customerID, err)
	}
	return &c, nil
}

// ListCustomers retrieves all customers ordered by name.
func (r *PgxCustomerRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY name;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer row: %w", err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating customer rows: %w", err)
	}
	return customers, nil
}
