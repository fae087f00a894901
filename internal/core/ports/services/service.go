// Package services defines the service facade interfaces consumed by the
// HTTP handlers.
package services

// ServiceContainer holds instances of all the application services. It is
// the main entry point for accessing service functionality from handlers.
type ServiceContainer struct {
	Account   AccountSvcFacade
	Journal   JournalSvcFacade
	Posting   PostingSvcFacade
	Reporting ReportingSvcFacade
	Inventory InventorySvcFacade
	Sale      SaleSvcFacade
	Purchase  PurchaseSvcFacade
	Supplier  SupplierSvcFacade
	Customer  CustomerSvcFacade
	Store     StoreSvcFacade
	User      UserSvcFacade
	Auth      AuthSvcFacade
	DayLog    DayLogSvcFacade
}
