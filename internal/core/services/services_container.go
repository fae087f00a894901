package services

import (
	portsrepo "github.com/tillworks/tilldesk/internal/core/ports/repositories"
	portssvc "github.com/tillworks/tilldesk/internal/core/ports/services"
	"github.com/tillworks/tilldesk/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Account = NewAccountService(repos.AccountRepo)
	container.Journal = NewJournalService(repos.JournalRepo, repos.AccountRepo)

	// The posting service feeds on completed sales and orders, so it is
	// built before the services that trigger it.
	container.Posting = NewPostingService(repos.JournalRepo, repos.AccountRepo, repos.ProductRepo)

	container.Reporting = NewReportingService(repos.ReportingRepo)
	container.Inventory = NewInventoryService(repos.ProductRepo, cfg.LowStockThreshold)
	container.Sale = NewSaleService(repos.SaleRepo, repos.ProductRepo, container.Posting)
	container.Purchase = NewPurchaseService(repos.PurchaseRepo, repos.SupplierRepo, container.Posting)
	container.Supplier = NewSupplierService(repos.SupplierRepo)
	container.Customer = NewCustomerService(repos.CustomerRepo)
	container.Store = NewStoreService(repos.StoreRepo)
	container.User = NewUserService(repos.UserRepo)
	container.Auth = NewAuthService(repos.UserRepo, cfg)
	container.DayLog = NewDayLogService(repos.DayLogRepo)

	return container
}
