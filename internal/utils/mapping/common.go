package mapping

import (
	"fmt"
	"strings"
	"time"

	"github.com/razalrahmanp/palaka-sub003/internal/apperrors"
	"github.com/razalrahmanp/palaka-sub003/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Source kinds used as the prefix of canonical transaction IDs.
const (
	SourceBill           = "bill"
	SourceBillPayment    = "bill_payment"
	SourceSalesOrder     = "sales_order"
	SourcePayment        = "payment"
	SourceReturn         = "return"
	SourceRefund         = "refund"
	SourcePayroll        = "payroll"
	SourceFinancedOrder  = "emi_finance"
	SourceOpeningBalance = "opening_balance"
	SourceEmployee       = "employee"
)

// TransactionID derives a ledger-unique ID from the source kind and source record ID.
func TransactionID(sourceKind, sourceID string) string {
	return fmt.Sprintf("%s-%s", sourceKind, sourceID)
}

// requireRecord rejects records without an identity or a date.
func requireRecord(source, id string, date time.Time) error {
	if strings.TrimSpace(id) == "" {
		return &apperrors.MalformedRecordError{Source: source, RecordID: "<unknown>", Field: "id"}
	}
	if date.IsZero() {
		return &apperrors.MalformedRecordError{Source: source, RecordID: id, Field: "date"}
	}
	return nil
}

// requireAmount unwraps a nullable amount. A missing or negative amount is a
// malformed record; it is never defaulted to zero.
func requireAmount(source, id, field string, amount decimal.NullDecimal) (decimal.Decimal, error) {
	if !amount.Valid {
		return decimal.Zero, &apperrors.MalformedRecordError{Source: source, RecordID: id, Field: field}
	}
	if amount.Decimal.IsNegative() {
		return decimal.Zero, &apperrors.MalformedRecordError{Source: source, RecordID: id, Field: field, Reason: "must not be negative"}
	}
	return amount.Decimal, nil
}

// NormalizeStatus maps the free-form status strings of the source systems onto
// the canonical lifecycle tags.
func NormalizeStatus(raw string) domain.TransactionStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "paid", "completed", "complete", "closed", "delivered", "received", "settled", "processed":
		return domain.StatusCompleted
	case "partial", "partially_paid", "partially paid", "partially_delivered":
		return domain.StatusPartial
	case "cancelled", "canceled", "void", "voided", "rejected":
		return domain.StatusCancelled
	default:
		return domain.StatusPending
	}
}

func debitTxn(id string, kind domain.TransactionKind, date time.Time, amount decimal.Decimal) domain.Transaction {
	return domain.Transaction{
		ID:           id,
		Date:         date,
		Kind:         kind,
		DebitAmount:  amount,
		CreditAmount: decimal.Zero,
		Status:       domain.StatusPending,
	}
}

func creditTxn(id string, kind domain.TransactionKind, date time.Time, amount decimal.Decimal) domain.Transaction {
	return domain.Transaction{
		ID:           id,
		Date:         date,
		Kind:         kind,
		DebitAmount:  decimal.Zero,
		CreditAmount: amount,
		Status:       domain.StatusPending,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
