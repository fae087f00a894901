package repositories

import (
	"context"

	"github.com/tillworks/tilldesk/internal/core/domain"
)

// CustomerRepositoryFacade defines operations for customer directory data.
type CustomerRepositoryFacade interface {
	// FindCustomerByID retrieves a customer by its identifier.
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)

	// ListCustomers retrieves all customers ordered by name.
	ListCustomers(ctx context.Context) ([]domain.Customer, error)

	// SaveCustomer persists a new customer. Returns apperrors.ErrDuplicate
	// on an email collision.
	SaveCustomer(ctx context.Context, customer domain.Customer) error

	// UpdateCustomer overwrites an existing customer's fields.
	UpdateCustomer(ctx context.Context, customer domain.Customer) error

	// DeleteCustomer removes a customer.
	DeleteCustomer(ctx context.Context, customerID string) error
}

// StoreRepositoryFacade defines operations for store location data.
type StoreRepositoryFacade interface {
	// FindStoreByID retrieves a store by its identifier.
	FindStoreByID(ctx context.Context, storeID string) (*domain.Store, error)

	// ListStores retrieves all stores ordered by name.
	ListStores(ctx context.Context) ([]domain.Store, error)

	// SaveStore persists a new store.
	SaveStore(ctx context.Context, store domain.Store) error
}
