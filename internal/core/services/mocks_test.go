package services_test

import (
	"context"

	"github.com/razalrahmanp/palaka-sub003/internal/core/domain"
	portsrepo "github.com/razalrahmanp/palaka-sub003/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock SupplierLedgerRepository ---
type MockSupplierRepository struct {
	mock.Mock
}

var _ portsrepo.SupplierLedgerRepositoryFacade = (*MockSupplierRepository)(nil)

func (m *MockSupplierRepository) FetchBills(ctx context.Context, supplierID string) ([]domain.BillRecord, error) {
	args := m.Called(ctx, supplierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BillRecord), args.Error(1)
}

func (m *MockSupplierRepository) FetchBillPayments(ctx context.Context, supplierID string) ([]domain.BillPaymentRecord, error) {
	args := m.Called(ctx, supplierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BillPaymentRecord), args.Error(1)
}

// --- Mock CustomerLedgerRepository ---
type MockCustomerRepository struct {
	mock.Mock
}

var _ portsrepo.CustomerLedgerRepositoryFacade = (*MockCustomerRepository)(nil)

func (m *MockCustomerRepository) FetchSalesOrders(ctx context.Context, customerID string) ([]domain.SalesOrderRecord, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SalesOrderRecord), args.Error(1)
}

func (m *MockCustomerRepository) FetchCustomerPayments(ctx context.Context, customerID string) ([]domain.CustomerPaymentRecord, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CustomerPaymentRecord), args.Error(1)
}

func (m *MockCustomerRepository) FetchReturns(ctx context.Context, customerID string) ([]domain.ReturnRecord, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReturnRecord), args.Error(1)
}

func (m *MockCustomerRepository) FetchRefunds(ctx context.Context, customerID string) ([]domain.RefundRecord, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RefundRecord), args.Error(1)
}

func (m *MockCustomerRepository) FetchFinancedOrders(ctx context.Context, customerID string) ([]domain.FinancedOrderRecord, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FinancedOrderRecord), args.Error(1)
}

// --- Mock EmployeeLedgerRepository ---
type MockEmployeeRepository struct {
	mock.Mock
}

var _ portsrepo.EmployeeLedgerRepositoryFacade = (*MockEmployeeRepository)(nil)

func (m *MockEmployeeRepository) FetchPayrollLines(ctx context.Context, employeeID string) ([]domain.PayrollLine, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PayrollLine), args.Error(1)
}

func (m *MockEmployeeRepository) FetchEmployeeSalary(ctx context.Context, employeeID string) (decimal.Decimal, error) {
	args := m.Called(ctx, employeeID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Mock OpeningBalanceRepository ---
type MockOpeningBalanceRepository struct {
	mock.Mock
}

var _ portsrepo.OpeningBalanceReader = (*MockOpeningBalanceRepository)(nil)

func (m *MockOpeningBalanceRepository) FetchOpeningBalance(ctx context.Context, counterpartyType domain.CounterpartyType, counterpartyID string) (*domain.OpeningBalance, error) {
	args := m.Called(ctx, counterpartyType, counterpartyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OpeningBalance), args.Error(1)
}

// --- Mock EMIPlanRepository ---
type MockEMIPlanRepository struct {
	mock.Mock
}

var _ portsrepo.EMIPlanReader = (*MockEMIPlanRepository)(nil)

func (m *MockEMIPlanRepository) FetchEMIPlanCatalog(ctx context.Context) ([]domain.EMIPlan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EMIPlan), args.Error(1)
}

func amount(v string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(v))
}
