package accounting

import (
	"fmt"

	"github.com/razalrahmanp/palaka-sub003/internal/apperrors"
	"github.com/razalrahmanp/palaka-sub003/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SignedDelta applies the ledger's sign convention to a transaction.
//
// Debtor ledgers (customer/supplier): debit - credit.
// Payee ledgers (employee): credit - debit.
func SignedDelta(txn domain.Transaction, policy domain.BalancePolicy) (decimal.Decimal, error) {
	switch policy {
	case domain.Debtor:
		return txn.DebitAmount.Sub(txn.CreditAmount), nil
	case domain.Payee:
		return txn.CreditAmount.Sub(txn.DebitAmount), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown balance policy '%s' for transaction %s", policy, txn.ID)
	}
}

// ValidateAmounts checks the amount invariant of a canonical transaction: both
// sides non-negative, and never both positive outside an opening-balance marker.
func ValidateAmounts(txn domain.Transaction) error {
	if txn.DebitAmount.IsNegative() {
		return &apperrors.InvariantError{TransactionID: txn.ID, Reason: "negative debit amount " + txn.DebitAmount.String()}
	}
	if txn.CreditAmount.IsNegative() {
		return &apperrors.InvariantError{TransactionID: txn.ID, Reason: "negative credit amount " + txn.CreditAmount.String()}
	}
	if !txn.IsOpeningMarker() && txn.DebitAmount.IsPositive() && txn.CreditAmount.IsPositive() {
		return &apperrors.InvariantError{TransactionID: txn.ID, Reason: "debit and credit both positive"}
	}
	return nil
}
