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

type PgxPurchaseRepository struct {
	BaseRepository
}

// newPgxPurchaseRepository creates a new repository for purchase-order data.
func newPgxPurchaseRepository(pool *pgxpool.Pool) portsrepo.PurchaseRepositoryFacade {
	return &PgxPurchaseRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.PurchaseRepositoryFacade = (*PgxPurchaseRepository)(nil)

const poColumns = `po_id, po_number, supplier_id, order_date, total_amount, created_at, created_by, last_updated_at, last_updated_by`

func scanPurchaseOrder(row pgx.Row) (domain.PurchaseOrder, error) {
	var po domain.PurchaseOrder
	err := row.Scan(
		&po.POID,
		&po.PONumber,
		&po.SupplierID,
		&po.OrderDate,
		&po.TotalAmount,
		&po.CreatedAt,
		&po.CreatedBy,
		&po.LastUpdatedAt,
		&po.LastUpdatedBy,
	)
	return po, err
}

// SavePurchaseOrder persists the order header and items and increments stock
// in one transaction.
func (r *PgxPurchaseRepository) SavePurchaseOrder(ctx context.Context, po domain.PurchaseOrder, items []domain.PurchaseOrderItem) (int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx)

	var poNumber int64
	poQuery := `
		INSERT INTO purchase_orders (po_id, supplier_id, order_date, total_amount, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING po_number;
	`
	err = tx.QueryRow(ctx, poQuery,
		po.POID,
		po.SupplierID,
		po.OrderDate,
		po.TotalAmount,
		po.CreatedAt,
		po.CreatedBy,
		po.LastUpdatedAt,
		po.LastUpdatedBy,
	).Scan(&poNumber)
	if err != nil {
		if isPgErrCode(err, pgForeignKeyViolation) {
			return 0, fmt.Errorf("%w: supplier %s", apperrors.ErrNotFound, po.SupplierID)
		}
		return 0, fmt.Errorf("failed to save purchase order %s: %w", po.POID, err)
	}

	itemQuery := `
		INSERT INTO purchase_order_items (po_item_id, purchase_order_id, product_id, quantity, cost_per_unit)
		VALUES ($1, $2, $3, $4, $5);
	`
	for _, item := range items {
		tag, err := tx.Exec(ctx, `UPDATE products SET stock_quantity = stock_quantity + $2, last_updated_at = $3, last_updated_by = $4 WHERE product_id = $1;`,
			item.ProductID, item.Quantity, po.LastUpdatedAt, po.LastUpdatedBy)
		if err != nil {
			return 0, fmt.Errorf("failed to increment stock for product %s: %w", item.ProductID, err)
		}
		if tag.RowsAffected() == 0 {
			return 0, fmt.Errorf("%w: product %s", apperrors.ErrNotFound, item.ProductID)
		}

		if _, err = tx.Exec(ctx, itemQuery, item.POItemID, po.POID, item.ProductID, item.Quantity, item.CostPerUnit); err != nil {
			return 0, fmt.Errorf("failed to save purchase order item %s: %w", item.POItemID, err)
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return poNumber, nil
}

// FindPurchaseOrderByID retrieves a purchase order header.
func (r *PgxPurchaseRepository) FindPurchaseOrderByID(ctx context.Context, poID string) (*domain.PurchaseOrder, error) {
	query := `SELECT ` + poColumns + ` FROM purchase_orders WHERE po_id = $1;`
	po, err := scanPurchaseOrder(r.Pool.QueryRow(ctx, query, poID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find purchase order %s: %w", poID, err)
	}
	return &po, nil
}

// ListPurchaseOrders retrieves order headers newest first, optionally bounded
// by an inclusive date range.
func (r *PgxPurchaseRepository) ListPurchaseOrders(ctx context.Context, from, to *time.Time) ([]domain.PurchaseOrder, error) {
	query := `SELECT ` + poColumns + ` FROM purchase_orders`
	args := []any{}
	where := ""
	if from != nil {
		args = append(args, *from)
		where = fmt.Sprintf(" WHERE order_date >= $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		if where == "" {
			where = fmt.Sprintf(" WHERE order_date <= $%d", len(args))
		} else {
			where += fmt.Sprintf(" AND order_date <= $%d", len(args))
		}
	}
	query += where + ` ORDER BY order_date DESC, po_number DESC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchase orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.PurchaseOrder
	for rows.Next() {
		po, err := scanPurchaseOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan purchase order row: %w", err)
		}
		orders = append(orders, po)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating purchase order rows: %w", err)
	}
	return orders, nil
}

// FindItemsByPOID retrieves the items of one purchase order.
func (r *PgxPurchaseRepository) FindItemsByPOID(ctx context.Context, poID string) ([]domain.PurchaseOrderItem, error) {
	query := `
		SELECT po_item_id, purchase_order_id, product_id, quantity, cost_per_unit
		FROM purchase_order_items
		WHERE purchase_order_id = $1;
	`
	rows, err := r.Pool.Query(ctx, query, poID)
	if err != nil {
		return nil, fmt.Errorf("failed to query items for purchase order %s: %w", poID, err)
	}
	defer rows.Close()

	var items []domain.PurchaseOrderItem
	for rows.Next() {
		var i domain.PurchaseOrderItem
		if err := rows.Scan(&i.POItemID, &i.POID, &i.ProductID, &i.Quantity, &i.CostPerUnit); err != nil {
			return nil, fmt.Errorf("failed to scan purchase order item row: %w", err)
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating purchase order item rows: %w", err)
	}
	return items, nil
}

// SummarizePurchases aggregates order count and cost over an inclusive range.
func (r *PgxPurchaseRepository) SummarizePurchases(ctx context.Context, from, to time.Time) (*domain.PurchaseSummary, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(total_amount), 0)
		FROM purchase_orders
		WHERE order_date >= $1 AND order_date <= $2;
	`
	var summary domain.PurchaseSummary
	if err := r.Pool.QueryRow(ctx, query, from, to).Scan(&summary.OrderCount, &summary.TotalCost); err != nil {
		return nil, fmt.Errorf("failed to summarize purchases: %w", err)
	}
	return &summary, nil
}
