package repositories

import (
	"context"

	"github.com/tillworks/tilldesk/internal/core/domain"
)

// ProductReader defines read operations for product and category data.
type ProductReader interface {
	// FindProductByID retrieves a product by its unique identifier.
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// FindProductByBarcode retrieves a product by its unique barcode.
	FindProductByBarcode(ctx context.Context, barcode string) (*domain.Product, error)

	// FindProductsByIDs retrieves products for the given IDs, keyed by ID.
	FindProductsByIDs(ctx context.Context, productIDs []string) (map[string]domain.Product, error)

	// ListProducts retrieves products, optionally filtered by a name search
	// term (case-insensitive substring match).
	ListProducts(ctx context.Context, nameSearch string) ([]domain.Product, error)

	// ListLowStock retrieves products whose stock quantity is at or below
	// the threshold, lowest stock first.
	ListLowStock(ctx context.Context, threshold int) ([]domain.Product, error)

	// ListCategories retrieves all categories ordered by name.
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

// ProductWriter defines write operations for product and category data.
type ProductWriter interface {
	// SaveProduct persists a new product. Returns apperrors.ErrDuplicate on
	// a barcode collision.
	SaveProduct(ctx context.Context, product domain.Product) error

	// UpdateProduct overwrites an existing product's fields, including its
	// stock quantity.
	UpdateProduct(ctx context.Context, product domain.Product) error

	// DeleteProduct removes a product. Referenced products fail with
	// apperrors.ErrConflict.
	DeleteProduct(ctx context.Context, productID string) error

	// SaveCategory persists a new category. Returns apperrors.ErrDuplicate
	// on a name collision.
	SaveCategory(ctx context.Context, category domain.Category) error
}

// ProductRepositoryFacade combines all product repository interfaces.
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
}
