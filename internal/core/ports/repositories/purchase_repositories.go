package repositories

import (
	"context"
	"time"

	"github.com/tillworks/tilldesk/internal/core/domain"
)

// PurchaseReader defines read operations for purchase-order data.
type PurchaseReader interface {
	// FindPurchaseOrderByID retrieves a purchase order header.
	FindPurchaseOrderByID(ctx context.Context, poID string) (*domain.PurchaseOrder, error)

	// ListPurchaseOrders retrieves orders ordered by order date descending,
	// optionally bounded by an inclusive date range.
	ListPurchaseOrders(ctx context.Context, from, to *time.Time) ([]domain.PurchaseOrder, error)

	// FindItemsByPOID retrieves the items of a purchase order.
	FindItemsByPOID(ctx context.Context, poID string) ([]domain.PurchaseOrderItem, error)

	// SummarizePurchases aggregates order count and cost over a date range.
	SummarizePurchases(ctx context.Context, from, to time.Time) (*domain.PurchaseSummary, error)
}

// PurchaseWriter defines write operations for purchase-order data.
type PurchaseWriter interface {
	// SavePurchaseOrder persists an order with its items and increments
	// product stock, all in a single database transaction. The assigned PO
	// number is returned.
	SavePurchaseOrder(ctx context.Context, po domain.PurchaseOrder, items []domain.PurchaseOrderItem) (int64, error)
}

// PurchaseRepositoryFacade combines all purchase repository interfaces.
type PurchaseRepositoryFacade interface {
	PurchaseReader
	PurchaseWriter
}

// SupplierRepositoryFacade defines operations for supplier directory data.
type SupplierRepositoryFacade interface {
	// FindSupplierByID retrieves a supplier by its identifier.
	FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)

	// ListSuppliers retrieves all suppliers ordered by name.
	ListSuppliers(ctx context.Context) ([]domain.Supplier, error)

	// SaveSupplier persists a new supplier. Returns apperrors.ErrDuplicate
	// on a name collision.
	SaveSupplier(ctx context.Context, supplier domain.Supplier) error

	// UpdateSupplier overwrites an existing supplier's fields.
	UpdateSupplier(ctx context.Context, supplier domain.Supplier) error
}
