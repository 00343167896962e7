package mapping_test

import (
	"errors"
	"testing"
	"time"

	"github.com/razalrahmanp/palaka-sub003/internal/apperrors"
	"github.com/razalrahmanp/palaka-sub003/internal/core/domain"
	"github.com/razalrahmanp/palaka-sub003/internal/utils/mapping"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amount(v string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(v))
}

var someDay = time.Date(2024, 8, 14, 11, 30, 0, 0, time.UTC)

func TestBillToTransaction(t *testing.T) {
	txn, err := mapping.BillToTransaction(domain.BillRecord{
		BillID:      "42",
		SupplierID:  "sup-1",
		BillNumber:  "INV-778",
		BillDate:    someDay,
		TotalAmount: amount("15000.50"),
		PaidAmount:  amount("5000"),
	})
	require.NoError(t, err)

	assert.Equal(t, "bill-42", txn.ID)
	assert.Equal(t, domain.KindBill, txn.Kind)
	assert.True(t, decimal.RequireFromString("15000.50").Equal(txn.DebitAmount))
	assert.True(t, txn.CreditAmount.IsZero())
	assert.Equal(t, domain.StatusPartial, txn.Status)
	assert.Equal(t, "INV-778", txn.Reference)
	assert.Equal(t, someDay, txn.Date)
	assert.False(t, txn.Deletable)
}

func TestBillPaymentToTransaction(t *testing.T) {
	txn, err := mapping.BillPaymentToTransaction(domain.BillPaymentRecord{
		PaymentID:   "7",
		BillID:      "42",
		PaymentDate: someDay,
		Method:      "bank_transfer",
		Amount:      amount("5000"),
	})
	require.NoError(t, err)

	assert.Equal(t, "bill_payment-7", txn.ID)
	assert.Equal(t, domain.KindBillPayment, txn.Kind)
	assert.True(t, decimal.NewFromInt(5000).Equal(txn.CreditAmount))
	assert.True(t, txn.DebitAmount.IsZero())
	assert.Equal(t, domain.StatusCompleted, txn.Status)
	assert.Contains(t, txn.SourceDocument, "vendor_bills/42")
}

func TestCustomerMappings(t *testing.T) {
	order, err := mapping.SalesOrderToTransaction(domain.SalesOrderRecord{OrderID: "so-1", OrderNumber: "SO-0001", OrderDate: someDay, GrandTotal: amount("2500"), Status: "delivered"})
	require.NoError(t, err)
	assert.Equal(t, "sales_order-so-1", order.ID)
	assert.True(t, decimal.NewFromInt(2500).Equal(order.DebitAmount))
	assert.Equal(t, domain.StatusCompleted, order.Status)

	payment, err := mapping.CustomerPaymentToTransaction(domain.CustomerPaymentRecord{PaymentID: "p-1", OrderID: "so-1", PaymentDate: someDay, Amount: amount("1000")})
	require.NoError(t, err)
	assert.Equal(t, domain.KindPayment, payment.Kind)
	assert.True(t, decimal.NewFromInt(1000).Equal(payment.CreditAmount))

	ret, err := mapping.ReturnToTransaction(domain.ReturnRecord{ReturnID: "r-1", ReturnDate: someDay, Amount: amount("300"), Reason: "damaged"})
	require.NoError(t, err)
	assert.Equal(t, domain.KindReturn, ret.Kind)
	assert.Equal(t, "Sales return: damaged", ret.Description)

	adj, err := mapping.ReturnToTransaction(domain.ReturnRecord{ReturnID: "r-2", ReturnDate: someDay, Amount: amount("20"), IsAdjustment: true})
	require.NoError(t, err)
	assert.Equal(t, domain.KindAdjustment, adj.Kind)

	refund, err := mapping.RefundToTransaction(domain.RefundRecord{RefundID: "rf-1", ReturnID: "r-1", RefundDate: someDay, Amount: amount("300")})
	require.NoError(t, err)
	assert.Equal(t, "refund-rf-1", refund.ID)
	assert.True(t, decimal.NewFromInt(300).Equal(refund.CreditAmount))

	financed, err := mapping.FinancedOrderToTransaction(domain.FinancedOrderRecord{
		FinanceID: "f-1", OrderID: "so-1", PlanID: "emi-12m-15", AcceptedAt: someDay,
		FinanceAmount: amount("100000"), MonthlyInstallment: decimal.RequireFromString("9025.83"), TermMonths: 12,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.KindEMIFinance, financed.Kind)
	assert.True(t, decimal.NewFromInt(100000).Equal(financed.CreditAmount))
	assert.Equal(t, domain.StatusPending, financed.Status)
}

func TestPayrollLineToTransaction(t *testing.T) {
	tests := []struct {
		lineType domain.PayrollLineType
		wantKind domain.TransactionKind
	}{
		{domain.PayrollSalary, domain.KindSalary},
		{domain.PayrollOvertime, domain.KindOvertime},
		{domain.PayrollIncentive, domain.KindIncentive},
	}

	for _, tt := range tests {
		t.Run(string(tt.lineType), func(t *testing.T) {
			txn, err := mapping.PayrollLineToTransaction(domain.PayrollLine{LineID: "9", EmployeeID: "e-1", PayDate: someDay, LineType: tt.lineType, Amount: amount("1200")})
			require.NoError(t, err)

			assert.Equal(t, "payroll-9", txn.ID)
			assert.Equal(t, tt.wantKind, txn.Kind)
			assert.True(t, decimal.NewFromInt(1200).Equal(txn.CreditAmount))
			assert.True(t, txn.Deletable, "payroll entries are operator-retractable")
		})
	}
}

func TestMalformedRecordsAreRejected(t *testing.T) {
	tests := []struct {
		name      string
		mapFn     func() (domain.Transaction, error)
		wantField string
	}{
		{
			name:      "bill without total",
			mapFn:     func() (domain.Transaction, error) { return mapping.BillToTransaction(domain.BillRecord{BillID: "1", BillDate: someDay}) },
			wantField: "total_amount",
		},
		{
			name: "payment with negative amount",
			mapFn: func() (domain.Transaction, error) {
				return mapping.CustomerPaymentToTransaction(domain.CustomerPaymentRecord{PaymentID: "1", PaymentDate: someDay, Amount: amount("-10")})
			},
			wantField: "amount",
		},
		{
			name: "sales order without date",
			mapFn: func() (domain.Transaction, error) {
				return mapping.SalesOrderToTransaction(domain.SalesOrderRecord{OrderID: "1", GrandTotal: amount("10")})
			},
			wantField: "date",
		},
		{
			name: "refund without id",
			mapFn: func() (domain.Transaction, error) {
				return mapping.RefundToTransaction(domain.RefundRecord{RefundDate: someDay, Amount: amount("10")})
			},
			wantField: "id",
		},
		{
			name: "payroll line with unknown type",
			mapFn: func() (domain.Transaction, error) {
				return mapping.PayrollLineToTransaction(domain.PayrollLine{LineID: "1", PayDate: someDay, LineType: "bonus", Amount: amount("10")})
			},
			wantField: "line_type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn, err := tt.mapFn()
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrMalformedRecord)
			assert.Empty(t, txn.ID, "no transaction may be produced from a malformed record")

			var malformed *apperrors.MalformedRecordError
			require.True(t, errors.As(err, &malformed))
			assert.Equal(t, tt.wantField, malformed.Field)
		})
	}
}

func TestOpeningBalanceToTransaction(t *testing.T) {
	txn, err := mapping.OpeningBalanceToTransaction(domain.OpeningBalance{CounterpartyID: "c-1", CounterpartyType: domain.Customer, AsOf: someDay, Amount: decimal.NewFromInt(500)})
	require.NoError(t, err)

	assert.Equal(t, "opening_balance-c-1", txn.ID)
	assert.True(t, txn.IsOpeningMarker())
	assert.True(t, txn.DebitAmount.IsZero())
	assert.True(t, txn.CreditAmount.IsZero())
}

func TestEmployeeSalary(t *testing.T) {
	salary, err := mapping.EmployeeSalary("emp-1", amount("30000"))
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(30000).Equal(salary))

	_, err = mapping.EmployeeSalary("emp-2", decimal.NullDecimal{})
	require.ErrorIs(t, err, apperrors.ErrMalformedRecord)
	var malformed *apperrors.MalformedRecordError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "emp-2", malformed.RecordID)
	assert.Equal(t, "monthly_salary", malformed.Field)

	_, err = mapping.EmployeeSalary("emp-3", amount("-1"))
	assert.ErrorIs(t, err, apperrors.ErrMalformedRecord)
}

func TestNormalizeStatus(t *testing.T) {
	assert.Equal(t, domain.StatusCompleted, mapping.NormalizeStatus("PAID"))
	assert.Equal(t, domain.StatusPartial, mapping.NormalizeStatus("partially_paid"))
	assert.Equal(t, domain.StatusCancelled, mapping.NormalizeStatus("Canceled"))
	assert.Equal(t, domain.StatusPending, mapping.NormalizeStatus(""))
	assert.Equal(t, domain.StatusPending, mapping.NormalizeStatus("draft"))
}
