package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tillworks/tilldesk/internal/core/domain"
	portsrepo "github.com/tillworks/tilldesk/internal/core/ports/repositories"
	portssvc "github.com/tillworks/tilldesk/internal/core/ports/services"
	"github.com/tillworks/tilldesk/internal/dto"
)

// supplierService manages the supplier directory.
type supplierService struct {
	supplierRepo portsrepo.SupplierRepositoryFacade
}

// NewSupplierService creates a new SupplierService.
func NewSupplierService(supplierRepo portsrepo.SupplierRepositoryFacade) portssvc.SupplierSvcFacade {
	return &supplierService{supplierRepo: supplierRepo}
}

var _ portssvc.SupplierSvcFacade = (*supplierService)(nil)

func (s *supplierService) CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest, userID string) (*domain.Supplier, error) {
	now := time.Now()
	supplier := domain.Supplier{
		SupplierID:  uuid.NewString(),
		Name:        req.Name,
		ContactInfo: req.ContactInfo,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.supplierRepo.SaveSupplier(ctx, supplier); err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (s *supplierService) UpdateSupplier(ctx context.Context, supplierID string, req dto.UpdateSupplierRequest, userID string) (*domain.Supplier, error) {
	supplier, err := s.supplierRepo.FindSupplierByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	supplier.Name = req.Name
	supplier.ContactInfo = req.ContactInfo
	supplier.LastUpdatedAt = time.Now()
	supplier.LastUpdatedBy = userID
	if err := s.supplierRepo.UpdateSupplier(ctx, *supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *supplierService) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	return s.supplierRepo.ListSuppliers(ctx)
}

// customerService manages the customer directory.
type customerService struct {
	customerRepo portsrepo.CustomerRepositoryFacade
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(customerRepo portsrepo.CustomerRepositoryFacade) portssvc.CustomerSvcFacade {
	return &customerService{customerRepo: customerRepo}
}

var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

func (s *customerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, userID string) (*domain.Customer, error) {
	now := time.Now()
	customer := domain.Customer{
		CustomerID: uuid.NewString(),
		Name:       req.Name,
		Phone:      req.Phone,
		Email:      req.Email,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, customerID string, req dto.UpdateCustomerRequest, userID string) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	customer.Name = req.Name
	customer.Phone = req.Phone
	customer.Email = req.Email
	customer.LastUpdatedAt = time.Now()
	customer.LastUpdatedBy = userID
	if err := s.customerRepo.UpdateCustomer(ctx, *customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, customerID string) error {
	return s.customerRepo.DeleteCustomer(ctx, customerID)
}

func (s *customerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.customerRepo.ListCustomers(ctx)
}

// storeService manages store locations.
type storeService struct {
	storeRepo portsrepo.StoreRepositoryFacade
}

// NewStoreService creates a new StoreService.
func NewStoreService(storeRepo portsrepo.StoreRepositoryFacade) portssvc.StoreSvcFacade {
	return &storeService{storeRepo: storeRepo}
}

var _ portssvc.StoreSvcFacade = (*storeService)(nil)

func (s *storeService) CreateStore(ctx context.Context, req dto.CreateStoreRequest, userID string) (*domain.Store, error) {
	now := time.Now()
	store := domain.Store{
		StoreID: uuid.NewString(),
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.storeRepo.SaveStore(ctx, store); err != nil {
		return nil, err
	}
	return &store, nil
}

func (s *storeService) GetStoreByID(ctx context.Context, storeID string) (*domain.Store, error) {
	return s.storeRepo.FindStoreByID(ctx, storeID)
}

func (s *storeService) ListStores(ctx context.Context) ([]domain.Store, error) {
	return s.storeRepo.ListStores(ctx)
}
