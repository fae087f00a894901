package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tillworks/tilldesk/internal/core/domain"
	portsrepo "github.com/tillworks/tilldesk/internal/core/ports/repositories"
	portssvc "github.com/tillworks/tilldesk/internal/core/ports/services"
	"github.com/tillworks/tilldesk/internal/dto"
	"github.com/tillworks/tilldesk/internal/middleware"
)

// purchaseService completes and queries purchase orders.
type purchaseService struct {
	purchaseRepo portsrepo.PurchaseRepositoryFacade
	supplierRepo portsrepo.SupplierRepositoryFacade
	postingSvc   portssvc.PostingSvcFacade
}

// NewPurchaseService creates a new PurchaseService.
func NewPurchaseService(purchaseRepo portsrepo.PurchaseRepositoryFacade, supplierRepo portsrepo.SupplierRepositoryFacade, postingSvc portssvc.PostingSvcFacade) portssvc.PurchaseSvcFacade {
	return &purchaseService{
		purchaseRepo: purchaseRepo,
		supplierRepo: supplierRepo,
		postingSvc:   postingSvc,
	}
}

var _ portssvc.PurchaseSvcFacade = (*purchaseService)(nil)

// CompletePurchaseOrder persists the order and the stock increment in one
// transaction, then attempts the automated ledger posting. As with sales,
// a posting failure leaves the committed order intact and is returned as a
// warning.
func (s *purchaseService) CompletePurchaseOrder(ctx context.Context, req dto.CompletePORequest, userID string) (*domain.PurchaseOrder, string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now()

	if _, err := s.supplierRepo.FindSupplierByID(ctx, req.SupplierID); err != nil {
		return nil, "", err
	}

	poID := uuid.NewString()
	items := make([]domain.PurchaseOrderItem, len(req.Lines))
	total := decimal.Zero
	for i, line := range req.Lines {
		items[i] = domain.PurchaseOrderItem{
			POItemID:    uuid.NewString(),
			POID:        poID,
			ProductID:   line.ProductID,
			Quantity:    line.Quantity,
			CostPerUnit: line.CostPerUnit,
		}
		total = total.Add(items[i].LineTotal())
	}

	po := domain.PurchaseOrder{
		POID:        poID,
		SupplierID:  req.SupplierID,
		OrderDate:   now,
		TotalAmount: total,
		Items:       items,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	poNumber, err := s.purchaseRepo.SavePurchaseOrder(ctx, po, items)
	if err != nil {
		logger.Error("failed to complete purchase order", "poID", poID, "error", err)
		return nil, "", err
	}
	po.PONumber = poNumber
	logger.Info("purchase order completed", "poID", poID, "poNumber", poNumber, "total", total.String())

	var warning string
	if err := s.postingSvc.PostPurchaseOrder(ctx, &po, userID); err != nil {
		warning = fmt.Sprintf("purchase order completed but ledger posting failed: %v", err)
		logger.Warn("ledger posting skipped for purchase order", "poID", poID, "error", err)
	}
	return &po, warning, nil
}

// ListPurchaseOrders retrieves order headers newest first.
func (s *purchaseService) ListPurchaseOrders(ctx context.Context, params dto.ListPOParams) ([]domain.PurchaseOrder, error) {
	return s.purchaseRepo.ListPurchaseOrders(ctx, params.From, params.To)
}

// PurchaseOrderItems retrieves the items of one purchase order.
func (s *purchaseService) PurchaseOrderItems(ctx context.Context, poID string) ([]domain.PurchaseOrderItem, error) {
	if _, err := s.purchaseRepo.FindPurchaseOrderByID(ctx, poID); err != nil {
		return nil, err
	}
	return s.purchaseRepo.FindItemsByPOID(ctx, poID)
}

// PurchaseReport aggregates order count and cost over a date range.
func (s *purchaseService) PurchaseReport(ctx context.Context, params dto.ListPOParams) (*domain.PurchaseSummary, error) {
	from, to := rangeOrDefault(params.From, params.To)
	return s.purchaseRepo.SummarizePurchases(ctx, from, to)
}
