package mapping

import (
	"fmt"

	"github.com/razalrahmanp/palaka-sub003/internal/core/domain"
)

// BillToTransaction maps a vendor bill to a debit equal to its total amount.
func BillToTransaction(r domain.BillRecord) (domain.Transaction, error) {
	if err := requireRecord(SourceBill, r.BillID, r.BillDate); err != nil {
		return domain.Transaction{}, err
	}
	total, err := requireAmount(SourceBill, r.BillID, "total_amount", r.TotalAmount)
	if err != nil {
		return domain.Transaction{}, err
	}

	txn := debitTxn(TransactionID(SourceBill, r.BillID), domain.KindBill, r.BillDate, total)
	txn.Description = firstNonEmpty(r.Description, fmt.Sprintf("Vendor bill %s", firstNonEmpty(r.BillNumber, r.BillID)))
	txn.Reference = r.BillNumber
	txn.Status = billStatus(r)
	txn.SourceDocument = fmt.Sprintf("vendor_bills/%s", r.BillID)
	return txn, nil
}

// BillPaymentToTransaction maps a payment event against a bill to a credit equal to its paid amount.
func BillPaymentToTransaction(r domain.BillPaymentRecord) (domain.Transaction, error) {
	if err := requireRecord(SourceBillPayment, r.PaymentID, r.PaymentDate); err != nil {
		return domain.Transaction{}, err
	}
	amount, err := requireAmount(SourceBillPayment, r.PaymentID, "amount", r.Amount)
	if err != nil {
		return domain.Transaction{}, err
	}

	txn := creditTxn(TransactionID(SourceBillPayment, r.PaymentID), domain.KindBillPayment, r.PaymentDate, amount)
	txn.Description = paymentDescription("Payment against bill "+r.BillID, r.Method)
	txn.Reference = r.Reference
	txn.Status = NormalizeStatus(firstNonEmpty(r.Status, "completed"))
	txn.SourceDocument = fmt.Sprintf("vendor_bill_payments/%s -> vendor_bills/%s", r.PaymentID, r.BillID)
	return txn, nil
}

// billStatus prefers the recorded status and otherwise derives it from the paid amount.
func billStatus(r domain.BillRecord) domain.TransactionStatus {
	if r.Status != "" {
		return NormalizeStatus(r.Status)
	}
	if !r.PaidAmount.Valid || r.PaidAmount.Decimal.IsZero() {
		return domain.StatusPending
	}
	if r.TotalAmount.Valid && r.PaidAmount.Decimal.GreaterThanOrEqual(r.TotalAmount.Decimal) {
		return domain.StatusCompleted
	}
	return domain.StatusPartial
}

func paymentDescription(base, method string) string {
	if method == "" {
		return base
	}
	return fmt.Sprintf("%s (%s)", base, method)
}
