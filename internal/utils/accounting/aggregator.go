package accounting

import (
	"time"

	"github.com/razalrahmanp/palaka-sub003/internal/core/domain"
	"github.com/shopspring/decimal"
)

const (
	PeriodCurrentMonth  = "current_month"
	PeriodPreviousMonth = "previous_month"
	PeriodAllTime       = "all_time"
)

// Aggregate buckets transactions into the calendar month containing now, the
// calendar month before it, and all time. Buckets are chosen by the month and
// year of each transaction date in now's location, not by elapsed days.
// Opening-balance markers carry no activity and are left out of every bucket.
func Aggregate(txns []domain.Transaction, now time.Time) domain.PeriodBreakdown {
	loc := now.Location()
	currentStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	previousStart := currentStart.AddDate(0, -1, 0)
	nextStart := currentStart.AddDate(0, 1, 0)

	breakdown := domain.PeriodBreakdown{
		CurrentMonth:  newPeriod(PeriodCurrentMonth, currentStart, nextStart),
		PreviousMonth: newPeriod(PeriodPreviousMonth, previousStart, currentStart),
		AllTime:       newPeriod(PeriodAllTime, time.Time{}, time.Time{}),
	}

	for _, txn := range txns {
		if txn.IsOpeningMarker() {
			continue
		}
		addToPeriod(&breakdown.AllTime, txn)

		y, m, _ := txn.Date.In(loc).Date()
		switch {
		case y == currentStart.Year() && m == currentStart.Month():
			addToPeriod(&breakdown.CurrentMonth, txn)
		case y == previousStart.Year() && m == previousStart.Month():
			addToPeriod(&breakdown.PreviousMonth, txn)
		}
	}

	return breakdown
}

// SalaryBreakdown derives the employee salary position from period totals.
// Pending is clamped at zero when an employee is overpaid in a month.
func SalaryBreakdown(periods domain.PeriodBreakdown, monthlySalary decimal.Decimal) *domain.SalaryPeriodBreakdown {
	return &domain.SalaryPeriodBreakdown{
		MonthlySalary: monthlySalary,
		CurrentMonth:  salaryMonth(periods.CurrentMonth, monthlySalary),
		PreviousMonth: salaryMonth(periods.PreviousMonth, monthlySalary),
	}
}

func salaryMonth(p domain.PeriodSummary, monthlySalary decimal.Decimal) domain.SalaryMonth {
	paid := p.CreditFor(domain.KindSalary)
	pending := monthlySalary.Sub(paid)
	if pending.IsNegative() {
		pending = decimal.Zero
	}
	return domain.SalaryMonth{
		Paid:      paid,
		Pending:   pending,
		Incentive: p.CreditFor(domain.KindIncentive),
		Overtime:  p.CreditFor(domain.KindOvertime),
	}
}

func newPeriod(label string, start, end time.Time) domain.PeriodSummary {
	return domain.PeriodSummary{
		Label:        label,
		Start:        start,
		End:          end,
		TotalDebit:   decimal.Zero,
		TotalCredit:  decimal.Zero,
		DebitByKind:  map[domain.TransactionKind]decimal.Decimal{},
		CreditByKind: map[domain.TransactionKind]decimal.Decimal{},
	}
}

func addToPeriod(p *domain.PeriodSummary, txn domain.Transaction) {
	p.TransactionCount++
	p.TotalDebit = p.TotalDebit.Add(txn.DebitAmount)
	p.TotalCredit = p.TotalCredit.Add(txn.CreditAmount)
	if txn.DebitAmount.IsPositive() {
		p.DebitByKind[txn.Kind] = p.DebitFor(txn.Kind).Add(txn.DebitAmount)
	}
	if txn.CreditAmount.IsPositive() {
		p.CreditByKind[txn.Kind] = p.CreditFor(txn.Kind).Add(txn.CreditAmount)
	}
}
