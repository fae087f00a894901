package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tillworks/tilldesk/internal/apperrors"
	"github.com/tillworks/tilldesk/internal/core/domain"
	portsrepo "github.com/tillworks/tilldesk/internal/core/ports/repositories"
)

type PgxProductRepository struct {
	BaseRepository
}

// newPgxProductRepository creates a new repository for product and category data.
func newPgxProductRepository(pool *pgxpool.Pool) portsrepo.ProductRepositoryFacade {
	return &PgxProductRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.ProductRepositoryFacade = (*PgxProductRepository)(nil)

const productColumns = `product_id, name, barcode, price, stock_quantity, category_id, store_id, created_at, created_by, last_updated_at, last_updated_by`

func scanProduct(row pgx.Row) (domain.Product, error) {
	var p domain.Product
	var categoryID, storeID sql.NullString
	err := row.Scan(
		&p.ProductID,
		&p.Name,
		&p.Barcode,
		&p.Price,
		&p.StockQuantity,
		&categoryID,
		&storeID,
		&p.CreatedAt,
		&p.CreatedBy,
		&p.LastUpdatedAt,
		&p.LastUpdatedBy,
	)
	p.CategoryID = fromNullableString(categoryID)
	p.StoreID = fromNullableString(storeID)
	return p, err
}

// SaveProduct inserts a new product.
func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	query := `
		INSERT INTO products (product_id, name, barcode, price, stock_quantity, category_id, store_id, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		product.ProductID,
		product.Name,
		product.Barcode,
		product.Price,
		product.StockQuantity,
		nullableString(product.CategoryID),
		nullableString(product.StoreID),
		product.CreatedAt,
		product.CreatedBy,
		product.LastUpdatedAt,
		product.LastUpdatedBy,
	)
	if err != nil {
		if isPgErrCode(err, pgUniqueViolation) {
			return fmt.Errorf("%w: barcode %q already in use", apperrors.ErrDuplicate, product.Barcode)
		}
		return fmt.Errorf("failed to save product %s: %w", product.ProductID, err)
	}
	return nil
}

// UpdateProduct overwrites an existing product's fields.
func (r *PgxProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	query := `
		UPDATE products
		SET name = $2, barcode = $3, price = $4, stock_quantity = $5, category_id = $6, store_id = $7, last_updated_at = $8, last_updated_by = $9
		WHERE product_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		product.ProductID,
		product.Name,
		product.Barcode,
		product.Price,
		product.StockQuantity,
		nullableString(product.CategoryID),
		nullableString(product.StoreID),
		product.LastUpdatedAt,
		product.LastUpdatedBy,
	)
	if err != nil {
		if isPgErrCode(err, pgUniqueViolation) {
			return fmt.Errorf("%w: barcode %q already in use", apperrors.ErrDuplicate, product.Barcode)
		}
		return fmt.Errorf("failed to update product %s: %w", product.ProductID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteProduct removes a product. Products referenced by sales or purchase
// orders fail with ErrConflict instead of cascading.
func (r *PgxProductRepository) DeleteProduct(ctx context.Context, productID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM products WHERE product_id = $1;`, productID)
	if err != nil {
		if isPgErrCode(err, pgForeignKeyViolation) {
			return fmt.Errorf("%w: product %s is referenced by sales or orders", apperrors.ErrConflict, productID)
		}
		return fmt.Errorf("failed to delete product %s: %w", productID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindProductByID retrieves a product by its ID.
func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = $1;`
	p, err := scanProduct(r.Pool.QueryRow(ctx, query, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product %s: %w", productID, err)
	}
	return &p, nil
}

// FindProductByBarcode retrieves a product by its unique barcode.
func (r *PgxProductRepository) FindProductByBarcode(ctx context.Context, barcode string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE barcode = $1;`
	p, err := scanProduct(r.Pool.QueryRow(ctx, query, barcode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product with barcode %q: %w", barcode, err)
	}
	return &p, nil
}

// FindProductsByIDs retrieves products for the given IDs, keyed by ID.
func (r *PgxProductRepository) FindProductsByIDs(ctx context.Context, productIDs []string) (map[string]domain.Product, error) {
	if len(productIDs) == 0 {
		return map[string]domain.Product{}, nil
	}
	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = ANY($1);`
	rows, err := r.Pool.Query(ctx, query, productIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query products by IDs: %w", err)
	}
	defer rows.Close()

	found := make(map[string]domain.Product, len(productIDs))
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		found[p.ProductID] = p
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", err)
	}
	return found, nil
}

// ListProducts retrieves products ordered by name. A non-empty nameSearch
// narrows the result to case-insensitive substring matches.
func (r *PgxProductRepository) ListProducts(ctx context.Context, nameSearch string) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`
	args := []any{}
	if nameSearch != "" {
		query += ` WHERE name ILIKE $1`
		args = append(args, "%"+nameSearch+"%")
	}
	query += ` ORDER BY name;`
	return r.queryProducts(ctx, query, args...)
}

// ListLowStock retrieves products at or below the threshold, lowest first.
func (r *PgxProductRepository) ListLowStock(ctx context.Context, threshold int) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE stock_quantity <= $1 ORDER BY stock_quantity, name;`
	return r.queryProducts(ctx, query, threshold)
}

func (r *PgxProductRepository) queryProducts(ctx context.Context, query string, args ...any) ([]domain.Product, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", err)
	}
	return products, nil
}

// SaveCategory inserts a new category.
func (r *PgxProductRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	query := `INSERT INTO categories (category_id, name) VALUES ($1, $2);`
	_, err := r.Pool.Exec(ctx, query, category.CategoryID, category.Name)
	if err != nil {
		if isPgErrCode(err, pgUniqueViolation) {
			return fmt.Errorf("%w: category named %q already exists", apperrors.ErrDuplicate, category.Name)
		}
		return fmt.Errorf("failed to save category %s: %w", category.CategoryID, err)
	}
	return nil
}

// ListCategories retrieves all categories ordered by name.
func (r *PgxProductRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.Pool.Query(ctx, `SELECT category_id, name FROM categories ORDER BY name;`)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.CategoryID, &c.Name); err != nil {
			return nil, fmt.Errorf("failed to scan category row: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category rows: %w", err)
	}
	return categories, nil
}
