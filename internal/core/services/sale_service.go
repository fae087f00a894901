package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tillworks/tilldesk/internal/apperrors"
	"github.com/tillworks/tilldesk/internal/core/domain"
	portsrepo "github.com/tillworks/tilldesk/internal/core/ports/repositories"
	portssvc "github.com/tillworks/tilldesk/internal/core/ports/services"
	"github.com/tillworks/tilldesk/internal/dto"
	"github.com/tillworks/tilldesk/internal/middleware"
)

// saleService completes and queries point-of-sale transactions.
type saleService struct {
	saleRepo    portsrepo.SaleRepositoryFacade
	productRepo portsrepo.ProductReader
	postingSvc  portssvc.PostingSvcFacade
}

// NewSaleService creates a new SaleService.
func NewSaleService(saleRepo portsrepo.SaleRepositoryFacade, productRepo portsrepo.ProductReader, postingSvc portssvc.PostingSvcFacade) portssvc.SaleSvcFacade {
	return &saleService{
		saleRepo:    saleRepo,
		productRepo: productRepo,
		postingSvc:  postingSvc,
	}
}

var _ portssvc.SaleSvcFacade = (*saleService)(nil)

// CompleteSale prices the requested lines at current list prices, persists
// the sale and the stock decrement in one transaction, then attempts the
// automated ledger posting. The posting runs after the sale has committed:
// a posting failure never undoes the sale and is surfaced as a warning.
func (s *saleService) CompleteSale(ctx context.Context, req dto.CompleteSaleRequest, userID string) (*domain.Sale, string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now()

	ids := make([]string, len(req.Lines))
	for i, line := range req.Lines {
		ids[i] = line.ProductID
	}
	products, err := s.productRepo.FindProductsByIDs(ctx, ids)
	if err != nil {
		return nil, "", fmt.Errorf("failed to resolve sale products: %w", err)
	}

	saleID := uuid.NewString()
	items := make([]domain.SaleItem, len(req.Lines))
	total := decimal.Zero
	for i, line := range req.Lines {
		product, ok := products[line.ProductID]
		if !ok {
			return nil, "", fmt.Errorf("%w: product %s", apperrors.ErrNotFound, line.ProductID)
		}
		items[i] = domain.SaleItem{
			SaleItemID:   uuid.NewString(),
			SaleID:       saleID,
			ProductID:    line.ProductID,
			Quantity:     line.Quantity,
			PricePerUnit: product.Price,
		}
		total = total.Add(items[i].LineTotal())
	}

	sale := domain.Sale{
		SaleID:      saleID,
		SaleDate:    now,
		TotalAmount: total,
		CustomerID:  req.CustomerID,
		StoreID:     req.StoreID,
		Items:       items,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	saleNumber, err := s.saleRepo.SaveSale(ctx, sale, items)
	if err != nil {
		logger.Error("failed to complete sale", "saleID", saleID, "error", err)
		return nil, "", err
	}
	sale.SaleNumber = saleNumber
	logger.Info("sale completed", "saleID", saleID, "saleNumber", saleNumber, "total", total.String())

	var warning string
	if err := s.postingSvc.PostSale(ctx, &sale, userID); err != nil {
		warning = fmt.Sprintf("sale completed but ledger posting failed: %v", err)
		logger.Warn("ledger posting skipped for sale", "saleID", saleID, "error", err)
	}
	return &sale, warning, nil
}

// ListSales retrieves sale headers newest first.
func (s *saleService) ListSales(ctx context.Context, params dto.ListSalesParams) ([]domain.Sale, error) {
	return s.saleRepo.ListSales(ctx, params.From, params.To)
}

// SaleItems retrieves the items of one sale.
func (s *saleService) SaleItems(ctx context.Context, saleID string) ([]domain.SaleItem, error) {
	if _, err := s.saleRepo.FindSaleByID(ctx, saleID); err != nil {
		return nil, err
	}
	return s.saleRepo.FindItemsBySaleID(ctx, saleID)
}

// SalesReport aggregates sale count and revenue over a date range. An open
// range defaults to all recorded history up to now.
func (s *saleService) SalesReport(ctx context.Context, params dto.ListSalesParams) (*domain.SalesSummary, error) {
	from, to := rangeOrDefault(params.From, params.To)
	return s.saleRepo.SummarizeSales(ctx, from, to)
}

// rangeOrDefault widens an open-ended range to all history up to now.
func rangeOrDefault(from, to *time.Time) (time.Time, time.Time) {
	f := time.Time{}
	t := time.Now()
	if from != nil {
		f = *from
	}
	if to != nil {
		t = *to
	}
	return f, t
}
