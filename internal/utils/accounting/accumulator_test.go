package accounting

import (
	"errors"
	"testing"
	"time"

	"github.com/razalrahmanp/palaka-sub003/internal/apperrors"
	"github.com/razalrahmanp/palaka-sub003/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccumulate_DebtorRunningBalance(t *testing.T) {
	txns := Sequence([]domain.Transaction{
		debit("bill-1", domain.KindBill, day(2024, 1, 3), 1000),
		credit("bill_payment-1", domain.KindBillPayment, day(2024, 1, 10), 400),
		debit("bill-2", domain.KindBill, day(2024, 1, 12), 250),
	}, time.UTC)
	opening := decimal.NewFromInt(100)

	got, err := Accumulate(txns, opening, domain.Debtor)
	require.NoError(t, err)

	expected := []int64{1100, 700, 950}
	for i, want := range expected {
		assert.True(t, decimal.NewFromInt(want).Equal(got[i].RunningBalance), "balance after %s: want %d, got %s", got[i].ID, want, got[i].RunningBalance)
	}
	assert.True(t, txns[0].RunningBalance.IsZero(), "input transactions must not be annotated in place")
}

func TestAccumulate_PayeeSignConvention(t *testing.T) {
	txns := []domain.Transaction{
		credit("salary-1", domain.KindSalary, day(2024, 2, 1), 30000),
		credit("incentive-1", domain.KindIncentive, day(2024, 2, 5), 2000),
	}

	got, err := Accumulate(txns, decimal.Zero, domain.Payee)
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(30000).Equal(got[0].RunningBalance))
	assert.True(t, decimal.NewFromInt(32000).Equal(got[1].RunningBalance))
}

func TestAccumulate_BalanceInvariant(t *testing.T) {
	txns := Sequence([]domain.Transaction{
		debit("sales_order-1", domain.KindSalesOrder, day(2024, 4, 1), 5000),
		credit("payment-1", domain.KindPayment, day(2024, 4, 1), 1500),
		credit("return-1", domain.KindReturn, day(2024, 4, 2), 300),
		credit("refund-1", domain.KindRefund, day(2024, 4, 3), 300),
		debit("sales_order-2", domain.KindSalesOrder, day(2024, 4, 4), 1234),
	}, time.UTC)
	opening := decimal.RequireFromString("250.55")

	for _, policy := range []domain.BalancePolicy{domain.Debtor, domain.Payee} {
		t.Run(policy.String(), func(t *testing.T) {
			got, err := Accumulate(txns, opening, policy)
			require.NoError(t, err)

			previous := opening
			total := opening
			for _, txn := range got {
				delta, err := SignedDelta(txn, policy)
				require.NoError(t, err)
				assert.True(t, previous.Add(delta).Equal(txn.RunningBalance), "running balance broken at %s", txn.ID)
				previous = txn.RunningBalance
				total = total.Add(delta)
			}
			assert.True(t, total.Equal(got[len(got)-1].RunningBalance))
		})
	}
}

func TestAccumulate_DeterministicAcrossInputOrder(t *testing.T) {
	a := debit("sales_order-1", domain.KindSalesOrder, day(2024, 6, 1), 900)
	b := credit("payment-1", domain.KindPayment, day(2024, 6, 1), 300)
	c := credit("refund-1", domain.KindRefund, day(2024, 6, 1), 50)
	d := debit("sales_order-2", domain.KindSalesOrder, day(2024, 6, 2), 120)

	first, err := Accumulate(Sequence([]domain.Transaction{a, b, c, d}, time.UTC), decimal.Zero, domain.Debtor)
	require.NoError(t, err)
	second, err := Accumulate(Sequence([]domain.Transaction{d, c, b, a}, time.UTC), decimal.Zero, domain.Debtor)
	require.NoError(t, err)

	assert.Equal(t, ids(first), ids(second))
	for i := range first {
		assert.True(t, first[i].RunningBalance.Equal(second[i].RunningBalance))
	}
}

func TestAccumulate_InvariantViolations(t *testing.T) {
	tests := []struct {
		name string
		txn  domain.Transaction
	}{
		{
			name: "negative debit",
			txn:  domain.Transaction{ID: "bill-x", Kind: domain.KindBill, DebitAmount: decimal.NewFromInt(-5), CreditAmount: decimal.Zero},
		},
		{
			name: "negative credit",
			txn:  domain.Transaction{ID: "payment-x", Kind: domain.KindPayment, DebitAmount: decimal.Zero, CreditAmount: decimal.NewFromInt(-1)},
		},
		{
			name: "both sides positive",
			txn:  domain.Transaction{ID: "bill-y", Kind: domain.KindBill, DebitAmount: decimal.NewFromInt(5), CreditAmount: decimal.NewFromInt(5)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Accumulate([]domain.Transaction{tt.txn}, decimal.Zero, domain.Debtor)
			assert.Nil(t, got)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrComputationInvariant)

			var invErr *apperrors.InvariantError
			require.True(t, errors.As(err, &invErr))
			assert.Equal(t, tt.txn.ID, invErr.TransactionID)
		})
	}
}

func TestAccumulate_OpeningMarkerMayCarryZeroes(t *testing.T) {
	marker := domain.Transaction{ID: "opening_balance-s1", Kind: domain.KindOpeningBalance, Date: day(2024, 1, 1), DebitAmount: decimal.Zero, CreditAmount: decimal.Zero}

	got, err := Accumulate([]domain.Transaction{marker}, decimal.NewFromInt(75), domain.Debtor)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(75).Equal(got[0].RunningBalance))
}

func TestSummarize(t *testing.T) {
	t.Run("empty ledger", func(t *testing.T) {
		summary := Summarize(nil, decimal.Zero)
		assert.True(t, summary.TotalDebit.IsZero())
		assert.True(t, summary.TotalCredit.IsZero())
		assert.True(t, summary.NetBalance.IsZero())
		assert.Equal(t, 0, summary.TransactionCount)
	})

	t.Run("totals and net balance", func(t *testing.T) {
		txns, err := Accumulate([]domain.Transaction{
			debit("bill-1", domain.KindBill, day(2024, 1, 1), 800),
			credit("bill_payment-1", domain.KindBillPayment, day(2024, 1, 2), 300),
		}, decimal.NewFromInt(20), domain.Debtor)
		require.NoError(t, err)

		summary := Summarize(txns, decimal.NewFromInt(20))
		assert.True(t, decimal.NewFromInt(800).Equal(summary.TotalDebit))
		assert.True(t, decimal.NewFromInt(300).Equal(summary.TotalCredit))
		assert.True(t, decimal.NewFromInt(520).Equal(summary.NetBalance))
		assert.Equal(t, 2, summary.TransactionCount)
	})
}

func TestSignedDelta_UnknownPolicy(t *testing.T) {
	_, err := SignedDelta(domain.Transaction{ID: "bill-1"}, domain.BalancePolicy(42))
	assert.Error(t, err)
}
