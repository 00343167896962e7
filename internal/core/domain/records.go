package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Raw records as returned by the externally-owned providers. Amount fields are
// nullable so a missing value can be told apart from a genuine zero.

// BillRecord is a vendor bill owed to a supplier.
type BillRecord struct {
	BillID      string
	SupplierID  string
	BillNumber  string
	BillDate    time.Time
	Description string
	TotalAmount decimal.NullDecimal
	PaidAmount  decimal.NullDecimal
	Status      string
}

// BillPaymentRecord is one payment event recorded against a supplier bill.
type BillPaymentRecord struct {
	PaymentID   string
	BillID      string
	SupplierID  string
	PaymentDate time.Time
	Reference   string
	Method      string
	Amount      decimal.NullDecimal
	Status      string
}

// SalesOrderRecord is a customer order; its grand total is owed by the customer.
type SalesOrderRecord struct {
	OrderID     string
	CustomerID  string
	OrderNumber string
	OrderDate   time.Time
	GrandTotal  decimal.NullDecimal
	Status      string
}

// CustomerPaymentRecord is money received from a customer.
type CustomerPaymentRecord struct {
	PaymentID   string
	CustomerID  string
	OrderID     string
	PaymentDate time.Time
	Reference   string
	Method      string
	Amount      decimal.NullDecimal
	Status      string
}

// ReturnRecord is goods returned by a customer, or a manual adjustment when IsAdjustment is set.
type ReturnRecord struct {
	ReturnID     string
	CustomerID   string
	OrderID      string
	ReturnDate   time.Time
	Reason       string
	Amount       decimal.NullDecimal
	IsAdjustment bool
	Status       string
}

// RefundRecord is money refunded against a customer order or return.
type RefundRecord struct {
	RefundID   string
	CustomerID string
	ReturnID   string
	RefundDate time.Time
	Reference  string
	Amount     decimal.NullDecimal
	Status     string
}

// PayrollLineType is the payroll sub-kind of a payroll line.
type PayrollLineType string

const (
	PayrollSalary    PayrollLineType = "salary"
	PayrollOvertime  PayrollLineType = "overtime"
	PayrollIncentive PayrollLineType = "incentive"
)

// PayrollLine is a single disbursement to an employee.
type PayrollLine struct {
	LineID      string
	EmployeeID  string
	PayDate     time.Time
	LineType    PayrollLineType
	Description string
	Reference   string
	Amount      decimal.NullDecimal
	Status      string
}

// FinancedOrderRecord is an accepted EMI plan carried forward into billing.
type FinancedOrderRecord struct {
	FinanceID          string
	CustomerID         string
	OrderID            string
	PlanID             string
	AcceptedAt         time.Time
	FinanceAmount      decimal.NullDecimal
	MonthlyInstallment decimal.Decimal
	TermMonths         int
	Status             string
}

// OpeningBalance is a counter-party's carried-forward balance.
type OpeningBalance struct {
	CounterpartyID   string
	CounterpartyType CounterpartyType
	AsOf             time.Time
	Amount           decimal.Decimal
}
