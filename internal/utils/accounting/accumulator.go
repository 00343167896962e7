package accounting

import (
	"github.com/razalrahmanp/palaka-sub003/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Accumulate walks the sequenced transactions once, left to right, and returns
// copies annotated with the post-transaction running balance. The input slice
// is not modified.
//
// A transaction violating the amount invariant aborts the pass with an
// *apperrors.InvariantError; it is never clamped.
func Accumulate(txns []domain.Transaction, opening decimal.Decimal, policy domain.BalancePolicy) ([]domain.Transaction, error) {
	out := make([]domain.Transaction, len(txns))
	balance := opening

	for i, txn := range txns {
		if err := ValidateAmounts(txn); err != nil {
			return nil, err
		}
		delta, err := SignedDelta(txn, policy)
		if err != nil {
			return nil, err
		}
		balance = balance.Add(delta)
		txn.RunningBalance = balance
		out[i] = txn
	}

	return out, nil
}

// Summarize builds the LedgerSummary of an accumulated sequence.
// The net balance is the final running balance, or the opening balance when empty.
func Summarize(txns []domain.Transaction, opening decimal.Decimal) domain.LedgerSummary {
	summary := domain.LedgerSummary{
		TotalDebit:       decimal.Zero,
		TotalCredit:      decimal.Zero,
		NetBalance:       opening,
		TransactionCount: len(txns),
	}
	for _, txn := range txns {
		summary.TotalDebit = summary.TotalDebit.Add(txn.DebitAmount)
		summary.TotalCredit = summary.TotalCredit.Add(txn.CreditAmount)
	}
	if len(txns) > 0 {
		summary.NetBalance = txns[len(txns)-1].RunningBalance
	}
	return summary
}
