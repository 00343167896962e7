package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/razalrahmanp/palaka-sub003/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgx-backed record provider to one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		SupplierRepo:       newPgxSupplierLedgerRepository(dbPool),
		CustomerRepo:       newPgxCustomerLedgerRepository(dbPool),
		EmployeeRepo:       newPgxEmployeeLedgerRepository(dbPool),
		OpeningBalanceRepo: newPgxOpeningBalanceRepository(dbPool),
		EMIPlanRepo:        newPgxEMIPlanRepository(dbPool),
	}
}
