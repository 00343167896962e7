package mapping

import (
	"fmt"

	"github.com/razalrahmanp/palaka-sub003/internal/core/domain"
)

// SalesOrderToTransaction maps a sales order to a debit equal to its grand total.
func SalesOrderToTransaction(r domain.SalesOrderRecord) (domain.Transaction, error) {
	if err := requireRecord(SourceSalesOrder, r.OrderID, r.OrderDate); err != nil {
		return domain.Transaction{}, err
	}
	total, err := requireAmount(SourceSalesOrder, r.OrderID, "grand_total", r.GrandTotal)
	if err != nil {
		return domain.Transaction{}, err
	}

	txn := debitTxn(TransactionID(SourceSalesOrder, r.OrderID), domain.KindSalesOrder, r.OrderDate, total)
	txn.Description = fmt.Sprintf("Sales order %s", firstNonEmpty(r.OrderNumber, r.OrderID))
	txn.Reference = r.OrderNumber
	txn.Status = NormalizeStatus(r.Status)
	txn.SourceDocument = fmt.Sprintf("sales_orders/%s", r.OrderID)
	return txn, nil
}

// CustomerPaymentToTransaction maps money received from a customer to a credit.
func CustomerPaymentToTransaction(r domain.CustomerPaymentRecord) (domain.Transaction, error) {
	if err := requireRecord(SourcePayment, r.PaymentID, r.PaymentDate); err != nil {
		return domain.Transaction{}, err
	}
	amount, err := requireAmount(SourcePayment, r.PaymentID, "amount", r.Amount)
	if err != nil {
		return domain.Transaction{}, err
	}

	txn := creditTxn(TransactionID(SourcePayment, r.PaymentID), domain.KindPayment, r.PaymentDate, amount)
	base := "Payment received"
	if r.OrderID != "" {
		base = "Payment received for order " + r.OrderID
	}
	txn.Description = paymentDescription(base, r.Method)
	txn.Reference = r.Reference
	txn.Status = NormalizeStatus(firstNonEmpty(r.Status, "completed"))
	txn.SourceDocument = fmt.Sprintf("customer_payments/%s", r.PaymentID)
	if r.OrderID != "" {
		txn.SourceDocument += " -> sales_orders/" + r.OrderID
	}
	return txn, nil
}

// ReturnToTransaction maps a sales return, or a manual adjustment, to a credit.
func ReturnToTransaction(r domain.ReturnRecord) (domain.Transaction, error) {
	if err := requireRecord(SourceReturn, r.ReturnID, r.ReturnDate); err != nil {
		return domain.Transaction{}, err
	}
	amount, err := requireAmount(SourceReturn, r.ReturnID, "amount", r.Amount)
	if err != nil {
		return domain.Transaction{}, err
	}

	kind := domain.KindReturn
	label := "Sales return"
	if r.IsAdjustment {
		kind = domain.KindAdjustment
		label = "Adjustment"
	}

	txn := creditTxn(TransactionID(SourceReturn, r.ReturnID), kind, r.ReturnDate, amount)
	txn.Description = label
	if r.Reason != "" {
		txn.Description = fmt.Sprintf("%s: %s", label, r.Reason)
	}
	txn.Reference = r.OrderID
	txn.Status = NormalizeStatus(r.Status)
	txn.SourceDocument = fmt.Sprintf("sales_returns/%s", r.ReturnID)
	return txn, nil
}

// RefundToTransaction maps a refund to a credit.
func RefundToTransaction(r domain.RefundRecord) (domain.Transaction, error) {
	if err := requireRecord(SourceRefund, r.RefundID, r.RefundDate); err != nil {
		return domain.Transaction{}, err
	}
	amount, err := requireAmount(SourceRefund, r.RefundID, "amount", r.Amount)
	if err != nil {
		return domain.Transaction{}, err
	}

	txn := creditTxn(TransactionID(SourceRefund, r.RefundID), domain.KindRefund, r.RefundDate, amount)
	txn.Description = "Refund"
	if r.ReturnID != "" {
		txn.Description = "Refund for return " + r.ReturnID
	}
	txn.Reference = r.Reference
	txn.Status = NormalizeStatus(r.Status)
	txn.SourceDocument = fmt.Sprintf("refunds/%s", r.RefundID)
	return txn, nil
}

// FinancedOrderToTransaction maps an accepted EMI plan to a credit of the finance
// amount, the part of the order settled by the finance partner.
func FinancedOrderToTransaction(r domain.FinancedOrderRecord) (domain.Transaction, error) {
	if err := requireRecord(SourceFinancedOrder, r.FinanceID, r.AcceptedAt); err != nil {
		return domain.Transaction{}, err
	}
	amount, err := requireAmount(SourceFinancedOrder, r.FinanceID, "finance_amount", r.FinanceAmount)
	if err != nil {
		return domain.Transaction{}, err
	}

	txn := creditTxn(TransactionID(SourceFinancedOrder, r.FinanceID), domain.KindEMIFinance, r.AcceptedAt, amount)
	txn.Description = fmt.Sprintf("EMI financing %d x %s (plan %s)", r.TermMonths, r.MonthlyInstallment.StringFixed(2), r.PlanID)
	txn.Reference = r.OrderID
	txn.Status = NormalizeStatus(r.Status)
	txn.SourceDocument = fmt.Sprintf("financed_orders/%s -> sales_orders/%s", r.FinanceID, r.OrderID)
	return txn, nil
}
