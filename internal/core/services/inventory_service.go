package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tillworks/tilldesk/internal/core/domain"
	portsrepo "github.com/tillworks/tilldesk/internal/core/ports/repositories"
	portssvc "github.com/tillworks/tilldesk/internal/core/ports/services"
	"github.com/tillworks/tilldesk/internal/dto"
	"github.com/tillworks/tilldesk/internal/middleware"
)

// inventoryService manages products, categories and stock views.
type inventoryService struct {
	productRepo       portsrepo.ProductRepositoryFacade
	lowStockThreshold int
}

// NewInventoryService creates a new InventoryService.
func NewInventoryService(productRepo portsrepo.ProductRepositoryFacade, lowStockThreshold int) portssvc.InventorySvcFacade {
	return &inventoryService{productRepo: productRepo, lowStockThreshold: lowStockThreshold}
}

var _ portssvc.InventorySvcFacade = (*inventoryService)(nil)

// CreateProduct persists a new product.
func (s *inventoryService) CreateProduct(ctx context.Context, req dto.CreateProductRequest, userID string) (*domain.Product, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now()

	product := domain.Product{
		ProductID:     uuid.NewString(),
		Name:          req.Name,
		Barcode:       req.Barcode,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		CategoryID:    req.CategoryID,
		StoreID:       req.StoreID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		logger.Error("failed to create product", "name", req.Name, "error", err)
		return nil, err
	}
	logger.Info("product created", "productID", product.ProductID, "barcode", product.Barcode)
	return &product, nil
}

// UpdateProduct overwrites an existing product's fields.
func (s *inventoryService) UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest, userID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	product.Name = req.Name
	product.Barcode = req.Barcode
	product.Price = req.Price
	product.StockQuantity = req.StockQuantity
	product.CategoryID = req.CategoryID
	product.StoreID = req.StoreID
	product.LastUpdatedAt = time.Now()
	product.LastUpdatedBy = userID

	if err := s.productRepo.UpdateProduct(ctx, *product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes a product that is not referenced by any sale or
// purchase order.
func (s *inventoryService) DeleteProduct(ctx context.Context, productID string) error {
	return s.productRepo.DeleteProduct(ctx, productID)
}

// GetProductByID retrieves a single product.
func (s *inventoryService) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	return s.productRepo.FindProductByID(ctx, productID)
}

// GetProductByBarcode looks a product up by its unique barcode, the hot
// path behind the till's scanner.
func (s *inventoryService) GetProductByBarcode(ctx context.Context, barcode string) (*domain.Product, error) {
	if barcode == "" {
		return nil, fmt.Errorf("barcode must not be empty")
	}
	return s.productRepo.FindProductByBarcode(ctx, barcode)
}

// ListProducts retrieves products, optionally matching a name search.
func (s *inventoryService) ListProducts(ctx context.Context, params dto.ListProductsParams) ([]domain.Product, error) {
	return s.productRepo.ListProducts(ctx, params.Search)
}

// LowStockReport lists products at or below the configured threshold.
func (s *inventoryService) LowStockReport(ctx context.Context) ([]domain.Product, error) {
	return s.productRepo.ListLowStock(ctx, s.lowStockThreshold)
}

// CreateCategory persists a new category.
func (s *inventoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error) {
	category := domain.Category{
		CategoryID: uuid.NewString(),
		Name:       req.Name,
	}
	if err := s.productRepo.SaveCategory(ctx, category); err != nil {
		return nil, err
	}
	return &category, nil
}

// ListCategories retrieves all categories.
func (s *inventoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.productRepo.ListCategories(ctx)
}
