package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/tillworks/tilldesk/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every PostgreSQL repository onto one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:   newPgxAccountRepository(dbPool),
		JournalRepo:   newPgxJournalRepository(dbPool),
		ProductRepo:   newPgxProductRepository(dbPool),
		SaleRepo:      newPgxSaleRepository(dbPool),
		PurchaseRepo:  newPgxPurchaseRepository(dbPool),
		SupplierRepo:  newPgxSupplierRepository(dbPool),
		CustomerRepo:  newPgxCustomerRepository(dbPool),
		StoreRepo:     newPgxStoreRepository(dbPool),
		UserRepo:      newPgxUserRepository(dbPool),
		DayLogRepo:    newPgxDayLogRepository(dbPool),
		ReportingRepo: newPgxReportingRepository(dbPool),
	}
}
