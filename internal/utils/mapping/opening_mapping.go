package mapping

import (
	"fmt"

	"github.com/razalrahmanp/palaka-sub003/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OpeningBalanceToTransaction builds the zero-amount opening-balance marker. The
// balance itself seeds the accumulator rather than flowing through debit/credit.
func OpeningBalanceToTransaction(ob domain.OpeningBalance) (domain.Transaction, error) {
	if err := requireRecord(SourceOpeningBalance, ob.CounterpartyID, ob.AsOf); err != nil {
		return domain.Transaction{}, err
	}
	return domain.Transaction{
		ID:             TransactionID(SourceOpeningBalance, ob.CounterpartyID),
		Date:           ob.AsOf,
		Description:    fmt.Sprintf("Opening balance %s", ob.Amount.StringFixed(2)),
		Kind:           domain.KindOpeningBalance,
		DebitAmount:    decimal.Zero,
		CreditAmount:   decimal.Zero,
		Status:         domain.StatusCompleted,
		SourceDocument: fmt.Sprintf("opening_balances/%s/%s", ob.CounterpartyType, ob.CounterpartyID),
	}, nil
}
