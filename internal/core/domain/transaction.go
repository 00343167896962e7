package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind is the closed set of canonical ledger entry kinds.
// The kind drives both the debit/credit side and category bucketing.
type TransactionKind string

const (
	KindOpeningBalance TransactionKind = "opening_balance"
	KindSalesOrder     TransactionKind = "sales_order"
	KindBill           TransactionKind = "bill"
	KindReturn         TransactionKind = "return"
	KindAdjustment     TransactionKind = "adjustment"
	KindPayment        TransactionKind = "payment"
	KindBillPayment    TransactionKind = "bill_payment"
	KindRefund         TransactionKind = "refund"
	KindEMIFinance     TransactionKind = "emi_finance"
	KindSalary         TransactionKind = "salary"
	KindOvertime       TransactionKind = "overtime"
	KindIncentive      TransactionKind = "incentive"
)

// TransactionStatus is an informational lifecycle tag. It never affects balance math.
type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusPartial   TransactionStatus = "partial"
	StatusCompleted TransactionStatus = "completed"
	StatusCancelled TransactionStatus = "cancelled"
)

// Transaction is the canonical ledger entry every source record is normalized into.
// Values are treated as immutable once built; the accumulator annotates copies.
type Transaction struct {
	ID             string            `json:"id"` // {source-kind}-{source-id}
	Date           time.Time         `json:"date"`
	Description    string            `json:"description"`
	Reference      string            `json:"reference,omitempty"`
	Kind           TransactionKind   `json:"kind"`
	DebitAmount    decimal.Decimal   `json:"debitAmount"`
	CreditAmount   decimal.Decimal   `json:"creditAmount"`
	RunningBalance decimal.Decimal   `json:"runningBalance"`
	Status         TransactionStatus `json:"status"`
	SourceDocument string            `json:"sourceDocument"`
	Deletable      bool              `json:"deletable"`
}

// IsOpeningMarker reports whether t is the zero-amount opening-balance marker.
func (t Transaction) IsOpeningMarker() bool {
	return t.Kind == KindOpeningBalance
}

// IsPayrollKind reports whether the kind is one of the employee payroll sub-kinds.
func (k TransactionKind) IsPayrollKind() bool {
	switch k {
	case KindSalary, KindOvertime, KindIncentive:
		return true
	}
	return false
}
