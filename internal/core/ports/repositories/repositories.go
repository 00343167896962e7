package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	SupplierRepo       SupplierLedgerRepositoryFacade
	CustomerRepo       CustomerLedgerRepositoryFacade
	EmployeeRepo       EmployeeLedgerRepositoryFacade
	OpeningBalanceRepo OpeningBalanceReader
	EMIPlanRepo        EMIPlanReader
}
