package repositories

import (
	"context"

	"github.com/razalrahmanp/palaka-sub003/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BillReader reads vendor bills raised against a supplier.
type BillReader interface {
	// FetchBills retrieves every bill of the supplier, in any order.
	FetchBills(ctx context.Context, supplierID string) ([]domain.BillRecord, error)
}

// BillPaymentReader reads payment events recorded against a supplier's bills.
type BillPaymentReader interface {
	// FetchBillPayments retrieves every payment made to the supplier, in any order.
	FetchBillPayments(ctx context.Context, supplierID string) ([]domain.BillPaymentRecord, error)
}

// SupplierLedgerRepositoryFacade combines the supplier-side record providers.
type SupplierLedgerRepositoryFacade interface {
	BillReader
	BillPaymentReader
}

// SalesOrderReader reads a customer's sales orders.
type SalesOrderReader interface {
	FetchSalesOrders(ctx context.Context, customerID string) ([]domain.SalesOrderRecord, error)
}

// CustomerPaymentReader reads money received from a customer.
type CustomerPaymentReader interface {
	FetchCustomerPayments(ctx context.Context, customerID string) ([]domain.CustomerPaymentRecord, error)
}

// ReturnReader reads a customer's sales returns and manual adjustments.
type ReturnReader interface {
	FetchReturns(ctx context.Context, customerID string) ([]domain.ReturnRecord, error)
}

// RefundReader reads refunds paid back to a customer.
type RefundReader interface {
	FetchRefunds(ctx context.Context, customerID string) ([]domain.RefundRecord, error)
}

// FinancedOrderReader reads accepted EMI plans carried forward into billing.
type FinancedOrderReader interface {
	FetchFinancedOrders(ctx context.Context, customerID string) ([]domain.FinancedOrderRecord, error)
}

// CustomerLedgerRepositoryFacade combines the customer-side record providers.
type CustomerLedgerRepositoryFacade interface {
	SalesOrderReader
	CustomerPaymentReader
	ReturnReader
	RefundReader
	FinancedOrderReader
}

// PayrollReader reads the payroll lines paid to an employee.
type PayrollReader interface {
	FetchPayrollLines(ctx context.Context, employeeID string) ([]domain.PayrollLine, error)
}

// EmployeeReader reads employee master data.
type EmployeeReader interface {
	// FetchEmployeeSalary returns the contracted monthly salary.
	// Returns apperrors.ErrNotFound when the employee does not exist.
	FetchEmployeeSalary(ctx context.Context, employeeID string) (decimal.Decimal, error)
}

// EmployeeLedgerRepositoryFacade combines the employee-side record providers.
type EmployeeLedgerRepositoryFacade interface {
	PayrollReader
	EmployeeReader
}

// OpeningBalanceReader reads carried-forward balances.
type OpeningBalanceReader interface {
	// FetchOpeningBalance returns nil, nil when the counter-party has no opening balance.
	FetchOpeningBalance(ctx context.Context, counterpartyType domain.CounterpartyType, counterpartyID string) (*domain.OpeningBalance, error)
}
