package services

import (
	"context"

	"github.com/tillworks/tilldesk/internal/core/domain"
	"github.com/tillworks/tilldesk/internal/dto"
)

// InventorySvcFacade manages products, categories and stock views.
type InventorySvcFacade interface {
	CreateProduct(ctx context.Context, req dto.CreateProductRequest, userID string) (*domain.Product, error)
	UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest, userID string) (*domain.Product, error)
	DeleteProduct(ctx context.Context, productID string) error
	GetProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// GetProductByBarcode looks a product up by its unique barcode.
	GetProductByBarcode(ctx context.Context, barcode string) (*domain.Product, error)

	// ListProducts retrieves products, optionally matching a name search.
	ListProducts(ctx context.Context, params dto.ListProductsParams) ([]domain.Product, error)

	// LowStockReport lists products at or below the configured threshold.
	LowStockReport(ctx context.Context) ([]domain.Product, error)

	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

// SaleSvcFacade completes and queries point-of-sale transactions.
type SaleSvcFacade interface {
	// CompleteSale prices the lines from current list prices, persists the
	// sale and decrements stock in one transaction, then runs the automated
	// ledger posting. A posting failure does not undo the sale; the warning
	// is returned alongside it.
	CompleteSale(ctx context.Context, req dto.CompleteSaleRequest, userID string) (*domain.Sale, string, error)

	ListSales(ctx context.Context, params dto.ListSalesParams) ([]domain.Sale, error)
	SaleItems(ctx context.Context, saleID string) ([]domain.SaleItem, error)
	SalesReport(ctx context.Context, params dto.ListSalesParams) (*domain.SalesSummary, error)
}

// PurchaseSvcFacade completes and queries purchase orders.
type PurchaseSvcFacade interface {
	// CompletePurchaseOrder persists the order and increments stock in one
	// transaction, then runs the automated ledger posting. A posting
	// failure does not undo the order; the warning is returned alongside it.
	CompletePurchaseOrder(ctx context.Context, req dto.CompletePORequest, userID string) (*domain.PurchaseOrder, string, error)

	ListPurchaseOrders(ctx context.Context, params dto.ListPOParams) ([]domain.PurchaseOrder, error)
	PurchaseOrderItems(ctx context.Context, poID string) ([]domain.PurchaseOrderItem, error)
	PurchaseReport(ctx context.Context, params dto.ListPOParams) (*domain.PurchaseSummary, error)
}

// SupplierSvcFacade manages the supplier directory.
type SupplierSvcFacade interface {
	CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest, userID string) (*domain.Supplier, error)
	UpdateSupplier(ctx context.Context, supplierID string, req dto.UpdateSupplierRequest, userID string) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context) ([]domain.Supplier, error)
}

// CustomerSvcFacade manages the customer directory.
type CustomerSvcFacade interface {
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, userID string) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest, userID string) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, customerID string) error
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
}

// StoreSvcFacade manages store locations.
type StoreSvcFacade interface {
	CreateStore(ctx context.Context, req dto.CreateStoreRequest, userID string) (*domain.Store, error)
	GetStoreByID(ctx context.Context, storeID string) (*domain.Store, error)
	ListStores(ctx context.Context) ([]domain.Store, error)
}
