package accounting

import (
	"testing"
	"time"

	"github.com/razalrahmanp/palaka-sub003/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate_CalendarMonthBuckets(t *testing.T) {
	now := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)
	txns := []domain.Transaction{
		debit("bill-jan", domain.KindBill, day(2024, 1, 31), 400),
		debit("bill-feb", domain.KindBill, day(2024, 2, 29), 700),
		credit("bill_payment-feb", domain.KindBillPayment, day(2024, 2, 10), 200),
		debit("bill-mar", domain.KindBill, day(2024, 3, 1), 900),
		credit("bill_payment-mar", domain.KindBillPayment, day(2024, 3, 2), 100),
	}

	got := Aggregate(txns, now)

	// 2024-02-29 is within 30 days of now but belongs to the previous calendar month.
	assert.Equal(t, 2, got.CurrentMonth.TransactionCount)
	assert.True(t, decimal.NewFromInt(900).Equal(got.CurrentMonth.DebitFor(domain.KindBill)))
	assert.True(t, decimal.NewFromInt(100).Equal(got.CurrentMonth.CreditFor(domain.KindBillPayment)))

	assert.Equal(t, 2, got.PreviousMonth.TransactionCount)
	assert.True(t, decimal.NewFromInt(700).Equal(got.PreviousMonth.TotalDebit))
	assert.True(t, decimal.NewFromInt(200).Equal(got.PreviousMonth.TotalCredit))

	assert.Equal(t, 5, got.AllTime.TransactionCount)
	assert.True(t, decimal.NewFromInt(2000).Equal(got.AllTime.TotalDebit))
	assert.True(t, decimal.NewFromInt(300).Equal(got.AllTime.TotalCredit))

	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), got.PreviousMonth.Start)
	assert.Equal(t, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), got.CurrentMonth.End)
}

func TestAggregate_YearBoundary(t *testing.T) {
	now := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	txns := []domain.Transaction{
		credit("salary-dec", domain.KindSalary, day(2024, 12, 31), 100),
		credit("salary-dec-prev-year", domain.KindSalary, day(2023, 12, 31), 100),
	}

	got := Aggregate(txns, now)

	assert.Equal(t, 0, got.CurrentMonth.TransactionCount)
	assert.Equal(t, 1, got.PreviousMonth.TransactionCount)
	assert.Equal(t, 2, got.AllTime.TransactionCount)
}

func TestAggregate_EmptyLedger(t *testing.T) {
	got := Aggregate(nil, time.Now())

	for _, p := range []domain.PeriodSummary{got.CurrentMonth, got.PreviousMonth, got.AllTime} {
		assert.Equal(t, 0, p.TransactionCount, p.Label)
		assert.True(t, p.TotalDebit.IsZero(), p.Label)
		assert.True(t, p.TotalCredit.IsZero(), p.Label)
	}
}

func TestAggregate_SkipsOpeningMarker(t *testing.T) {
	now := day(2024, 7, 20)
	marker := domain.Transaction{ID: "opening_balance-e1", Kind: domain.KindOpeningBalance, Date: day(2024, 7, 1)}

	got := Aggregate([]domain.Transaction{marker}, now)

	assert.Equal(t, 0, got.CurrentMonth.TransactionCount)
	assert.Equal(t, 0, got.AllTime.TransactionCount)
}

func TestSalaryBreakdown(t *testing.T) {
	now := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)
	monthly := decimal.NewFromInt(30000)

	tests := []struct {
		name            string
		txns            []domain.Transaction
		wantPaid        int64
		wantPending     int64
		wantIncentive   int64
		wantOvertime    int64
		wantPrevPaid    int64
		wantPrevPending int64
	}{
		{
			name: "partially paid month",
			txns: []domain.Transaction{
				credit("salary-1", domain.KindSalary, day(2024, 5, 5), 10000),
				credit("incentive-1", domain.KindIncentive, day(2024, 5, 6), 1500),
				credit("overtime-1", domain.KindOvertime, day(2024, 5, 7), 800),
				credit("salary-0", domain.KindSalary, day(2024, 4, 30), 30000),
			},
			wantPaid: 10000, wantPending: 20000, wantIncentive: 1500, wantOvertime: 800,
			wantPrevPaid: 30000, wantPrevPending: 0,
		},
		{
			name: "overpaid month clamps pending at zero",
			txns: []domain.Transaction{
				credit("salary-1", domain.KindSalary, day(2024, 5, 1), 25000),
				credit("salary-2", domain.KindSalary, day(2024, 5, 15), 10000),
			},
			wantPaid: 35000, wantPending: 0,
			wantPrevPaid: 0, wantPrevPending: 30000,
		},
		{
			name:        "nothing paid",
			txns:        nil,
			wantPaid:    0,
			wantPending: 30000, wantPrevPending: 30000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SalaryBreakdown(Aggregate(tt.txns, now), monthly)
			require.NotNil(t, got)

			assert.True(t, monthly.Equal(got.MonthlySalary))
			assert.True(t, decimal.NewFromInt(tt.wantPaid).Equal(got.CurrentMonth.Paid), "paid: %s", got.CurrentMonth.Paid)
			assert.True(t, decimal.NewFromInt(tt.wantPending).Equal(got.CurrentMonth.Pending), "pending: %s", got.CurrentMonth.Pending)
			assert.False(t, got.CurrentMonth.Pending.IsNegative())
			assert.True(t, decimal.NewFromInt(tt.wantIncentive).Equal(got.CurrentMonth.Incentive))
			assert.True(t, decimal.NewFromInt(tt.wantOvertime).Equal(got.CurrentMonth.Overtime))
			assert.True(t, decimal.NewFromInt(tt.wantPrevPaid).Equal(got.PreviousMonth.Paid))
			assert.True(t, decimal.NewFromInt(tt.wantPrevPending).Equal(got.PreviousMonth.Pending))
		})
	}
}
