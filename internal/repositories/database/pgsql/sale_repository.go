package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tillworks/tilldesk/internal/apperrors"
	"github.com/tillworks/tilldesk/internal/core/domain"
	portsrepo "github.com/tillworks/tilldesk/internal/core/ports/repositories"
)

type PgxSaleRepository struct {
	BaseRepository
}

// newPgxSaleRepository creates a new repository for sales data.
func newPgxSaleRepository(pool *pgxpool.Pool) portsrepo.SaleRepositoryFacade {
	return &PgxSaleRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.SaleRepositoryFacade = (*PgxSaleRepository)(nil)

const saleColumns = `sale_id, sale_number, sale_date, total_amount, customer_id, store_id, created_at, created_by, last_updated_at, last_updated_by`

func scanSale(row pgx.Row) (domain.Sale, error) {
	var s domain.Sale
	var customerID, storeID *string
	err := row.Scan(
		&s.SaleID,
		&s.SaleNumber,
		&s.SaleDate,
		&s.TotalAmount,
		&customerID,
		&storeID,
		&s.CreatedAt,
		&s.CreatedBy,
		&s.LastUpdatedAt,
		&s.LastUpdatedBy,
	)
	if customerID != nil {
		s.CustomerID = *customerID
	}
	if storeID != nil {
		s.StoreID = *storeID
	}
	return s, err
}

// SaveSale persists the sale header and items and decrements stock in one
// transaction. Each product row is locked before the decrement so two
// concurrent sales cannot both consume the last unit.
func (r *PgxSaleRepository) SaveSale(ctx context.Context, sale domain.Sale, items []domain.SaleItem) (int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx)

	var saleNumber int64
	saleQuery := `
		INSERT INTO sales (sale_id, sale_date, total_amount, customer_id, store_id, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING sale_number;
	`
	err = tx.QueryRow(ctx, saleQuery,
		sale.SaleID,
		sale.SaleDate,
		sale.TotalAmount,
		nullableString(sale.CustomerID),
		nullableString(sale.StoreID),
		sale.CreatedAt,
		sale.CreatedBy,
		sale.LastUpdatedAt,
		sale.LastUpdatedBy,
	).Scan(&saleNumber)
	if err != nil {
		return 0, fmt.Errorf("failed to save sale %s: %w", sale.SaleID, err)
	}

	itemQuery := `
		INSERT INTO sale_items (sale_item_id, sale_id, product_id, quantity, price_per_unit)
		VALUES ($1, $2, $3, $4, $5);
	`
	for _, item := range items {
		var stock int
		err = tx.QueryRow(ctx, `SELECT stock_quantity FROM products WHERE product_id = $1 FOR UPDATE;`, item.ProductID).Scan(&stock)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return 0, fmt.Errorf("%w: product %s", apperrors.ErrNotFound, item.ProductID)
			}
			return 0, fmt.Errorf("failed to lock product %s: %w", item.ProductID, err)
		}
		if stock < item.Quantity {
			return 0, fmt.Errorf("%w: product %s has %d units, %d requested", apperrors.ErrInsufficientStock, item.ProductID, stock, item.Quantity)
		}

		_, err = tx.Exec(ctx, `UPDATE products SET stock_quantity = stock_quantity - $2, last_updated_at = $3, last_updated_by = $4 WHERE product_id = $1;`,
			item.ProductID, item.Quantity, sale.LastUpdatedAt, sale.LastUpdatedBy)
		if err != nil {
			return 0, fmt.Errorf("failed to decrement stock for product %s: %w", item.ProductID, err)
		}

		if _, err = tx.Exec(ctx, itemQuery, item.SaleItemID, sale.SaleID, item.ProductID, item.Quantity, item.PricePerUnit); err != nil {
			return 0, fmt.Errorf("failed to save sale item %s: %w", item.SaleItemID, err)
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return saleNumber, nil
}

// FindSaleByID retrieves a sale header.
func (r *PgxSaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE sale_id = $1;`
	s, err := scanSale(r.Pool.QueryRow(ctx, query, saleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find sale %s: %w", saleID, err)
	}
	return &s, nil
}

// ListSales retrieves sale headers newest first, optionally bounded by an
// inclusive date range.
func (r *PgxSaleRepository) ListSales(ctx context.Context, from, to *time.Time) ([]domain.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales`
	args := []any{}
	where := ""
	if from != nil {
		args = append(args, *from)
		where = fmt.Sprintf(" WHERE sale_date >= $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		if where == "" {
			where = fmt.Sprintf(" WHERE sale_date <= $%d", len(args))
		} else {
			where += fmt.Sprintf(" AND sale_date <= $%d", len(args))
		}
	}
	query += where + ` ORDER BY sale_date DESC, sale_number DESC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	defer rows.Close()

	var sales []domain.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sale row: %w", err)
		}
		sales = append(sales, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sale rows: %w", err)
	}
	return sales, nil
}

// FindItemsBySaleID retrieves the items of one sale.
func (r *PgxSaleRepository) FindItemsBySaleID(ctx context.Context, saleID string) ([]domain.SaleItem, error) {
	query := `
		SELECT sale_item_id, sale_id, product_id, quantity, price_per_unit
		FROM sale_items
		WHERE sale_id = $1;
	`
	rows, err := r.Pool.Query(ctx, query, saleID)
	if err != nil {
		return nil, fmt.Errorf("failed to query items for sale %s: %w", saleID, err)
	}
	defer rows.Close()

	var items []domain.SaleItem
	for rows.Next() {
		var i domain.SaleItem
		if err := rows.Scan(&i.SaleItemID, &i.SaleID, &i.ProductID, &i.Quantity, &i.PricePerUnit); err != nil {
			return nil, fmt.Errorf("failed to scan sale item row: %w", err)
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sale item rows: %w", err)
	}
	return items, nil
}

// SummarizeSales aggregates sale count and revenue over an inclusive range.
func (r *PgxSaleRepository) SummarizeSales(ctx context.Context, from, to time.Time) (*domain.SalesSummary, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(total_amount), 0)
		FROM sales
		WHERE sale_date >= $1 AND sale_date <= $2;
	`
	var summary domain.SalesSummary
	if err := r.Pool.QueryRow(ctx, query, from, to).Scan(&summary.SaleCount, &summary.TotalRevenue); err != nil {
		return nil, fmt.Errorf("failed to summarize sales: %w", err)
	}
	return &summary, nil
}
