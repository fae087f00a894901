// Package repositories defines the persistence interfaces the core
// services depend on. Implementations live under
// internal/repositories/database.
package repositories

// RepositoryProvider bundles every repository implementation for wiring in
// main and in the service container.
type RepositoryProvider struct {
	AccountRepo   AccountRepositoryFacade
	JournalRepo   JournalRepositoryFacade
	ProductRepo   ProductRepositoryFacade
	SaleRepo      SaleRepositoryFacade
	PurchaseRepo  PurchaseRepositoryFacade
	SupplierRepo  SupplierRepositoryFacade
	CustomerRepo  CustomerRepositoryFacade
	StoreRepo     StoreRepositoryFacade
	UserRepo      UserRepositoryFacade
	DayLogRepo    DayLogRepositoryFacade
	ReportingRepo ReportingRepository
}
