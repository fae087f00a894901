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
	"github.com/tillworks/tilldesk/internal/middleware"
)

// postingService derives journal entries from completed sales and purchase
// orders using the fixed default-account mapping.
type postingService struct {
	journalRepo portsrepo.JournalWriter
	accountRepo portsrepo.AccountReader
	productRepo portsrepo.ProductReader
}

// NewPostingService creates a new PostingService.
func NewPostingService(journalRepo portsrepo.JournalWriter, accountRepo portsrepo.AccountReader, productRepo portsrepo.ProductReader) portssvc.PostingSvcFacade {
	return &postingService{
		journalRepo: journalRepo,
		accountRepo: accountRepo,
		productRepo: productRepo,
	}
}

var _ portssvc.PostingSvcFacade = (*postingService)(nil)

// requireAccounts resolves the named default accounts, failing with
// ErrMissingAccount if any is absent so no partial posting happens.
func (s *postingService) requireAccounts(ctx context.Context, names ...string) (map[string]domain.Account, error) {
	accounts, err := s.accountRepo.FindAccountsByNames(ctx, names)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve posting accounts: %w", err)
	}
	for _, name := range names {
		if _, ok := accounts[name]; !ok {
			return nil, fmt.Errorf("%w: %q", apperrors.ErrMissingAccount, name)
		}
	}
	return accounts, nil
}

func (s *postingService) saveEntry(ctx context.Context, description string, source domain.EntrySource, sourceID string, total decimal.Decimal, lines []domain.JournalLine, userID string, now time.Time) error {
	entryID := uuid.NewString()
	for i := range lines {
		lines[i].LineID = uuid.NewString()
		lines[i].EntryID = entryID
		lines[i].LineNo = i + 1
	}
	entry := domain.JournalEntry{
		EntryID:     entryID,
		EntryDate:   now,
		Description: description,
		TotalAmount: total,
		SourceType:  source,
		SourceID:    sourceID,
		Lines:       lines,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	return s.journalRepo.SaveEntry(ctx, entry, lines)
}

// PostSale writes the revenue entry (Cash against Sales Revenue for the
// sale total) and the cost entry (Cost of Goods Sold against Inventory for
// the cost basis). The cost basis values each item at the product's current
// list price; the cost entry is skipped when that basis is zero.
func (s *postingService) PostSale(ctx context.Context, sale *domain.Sale, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	accounts, err := s.requireAccounts(ctx,
		domain.AccountCash,
		domain.AccountSalesRevenue,
		domain.AccountCostOfGoodsSold,
		domain.AccountInventory,
	)
	if err != nil {
		return err
	}

	costBasis, err := s.saleCostBasis(ctx, sale.Items)
	if err != nil {
		return err
	}

	now := time.Now()
	description := fmt.Sprintf("Sale #%d", sale.SaleNumber)

	revenueLines := []domain.JournalLine{
		{AccountID: accounts[domain.AccountCash].AccountID, Debit: sale.TotalAmount, Credit: decimal.Zero},
		{AccountID: accounts[domain.AccountSalesRevenue].AccountID, Debit: decimal.Zero, Credit: sale.TotalAmount},
	}
	if err := s.saveEntry(ctx, description, domain.SourceSale, sale.SaleID, sale.TotalAmount, revenueLines, userID, now); err != nil {
		return fmt.Errorf("failed to post revenue entry for sale %s: %w", sale.SaleID, err)
	}

	if costBasis.IsPositive() {
		costLines := []domain.JournalLine{
			{AccountID: accounts[domain.AccountCostOfGoodsSold].AccountID, Debit: costBasis, Credit: decimal.Zero},
			{AccountID: accounts[domain.AccountInventory].AccountID, Debit: decimal.Zero, Credit: costBasis},
		}
		if err := s.saveEntry(ctx, "COGS for "+description, domain.SourceSale, sale.SaleID, costBasis, costLines, userID, now); err != nil {
			return fmt.Errorf("failed to post cost entry for sale %s: %w", sale.SaleID, err)
		}
	}

	logger.Info("sale posted to ledger", "saleID", sale.SaleID, "total", sale.TotalAmount.String(), "costBasis", costBasis.String())
	return nil
}

// saleCostBasis values the sold items at their products' current list
// prices. No separate unit cost is tracked; the list price stands in as
// the cost basis.
func (s *postingService) saleCostBasis(ctx context.Context, items []domain.SaleItem) (decimal.Decimal, error) {
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ProductID
	}
	products, err := s.productRepo.FindProductsByIDs(ctx, ids)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to resolve sale products: %w", err)
	}

	cost := decimal.Zero
	for _, item := range items {
		product, ok := products[item.ProductID]
		if !ok {
			return decimal.Zero, fmt.Errorf("%w: product %s", apperrors.ErrNotFound, item.ProductID)
		}
		cost = cost.Add(product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return cost, nil
}

// PostPurchaseOrder writes the single stock acquisition entry: Inventory
// debited against Accounts Payable for the order total.
func (s *postingService) PostPurchaseOrder(ctx context.Context, po *domain.PurchaseOrder, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	accounts, err := s.requireAccounts(ctx, domain.AccountInventory, domain.AccountAccountsPayable)
	if err != nil {
		return err
	}

	description := fmt.Sprintf("Purchase Order #%d", po.PONumber)
	lines := []domain.JournalLine{
		{AccountID: accounts[domain.AccountInventory].AccountID, Debit: po.TotalAmount, Credit: decimal.Zero},
		{AccountID: accounts[domain.AccountAccountsPayable].AccountID, Debit: decimal.Zero, Credit: po.TotalAmount},
	}
	if err := s.saveEntry(ctx, description, domain.SourcePurchase, po.POID, po.TotalAmount, lines, userID, time.Now()); err != nil {
		return fmt.Errorf("failed to post entry for purchase order %s: %w", po.POID, err)
	}

	logger.Info("purchase order posted to ledger", "poID", po.POID, "total", po.TotalAmount.String())
	return nil
}
