package repositories

import (
	"context"
	"time"

	"github.com/tillworks/tilldesk/internal/core/domain"
)

// SaleReader defines read operations for sales data.
type SaleReader interface {
	// FindSaleByID retrieves a sale header by its identifier.
	FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error)

	// ListSales retrieves sales ordered by sale date descending, optionally
	// bounded by an inclusive date range.
	ListSales(ctx context.Context, from, to *time.Time) ([]domain.Sale, error)

	// FindItemsBySaleID retrieves the items of a sale.
	FindItemsBySaleID(ctx context.Context, saleID string) ([]domain.SaleItem, error)

	// SummarizeSales aggregates sale count and revenue over a date range.
	SummarizeSales(ctx context.Context, from, to time.Time) (*domain.SalesSummary, error)
}

// SaleWriter defines write operations for sales data.
type SaleWriter interface {
	// SaveSale persists a sale with its items and decrements product stock,
	// all in a single database transaction. Product rows are locked for the
	// duration; a decrement below zero fails the whole transaction with
	// apperrors.ErrInsufficientStock. The assigned sale number is returned.
	SaveSale(ctx context.Context, sale domain.Sale, items []domain.SaleItem) (int64, error)
}

// SaleRepositoryFacade combines all sale repository interfaces.
type SaleRepositoryFacade interface {
	SaleReader
	SaleWriter
}
