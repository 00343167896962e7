package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerSummary aggregates a transaction sequence. It is recomputed on every fetch
// and never persisted.
type LedgerSummary struct {
	TotalDebit       decimal.Decimal `json:"totalDebit"`
	TotalCredit      decimal.Decimal `json:"totalCredit"`
	NetBalance       decimal.Decimal `json:"netBalance"`
	TransactionCount int             `json:"transactionCount"`
}

// PeriodSummary holds totals for one calendar bucket.
type PeriodSummary struct {
	Label            string                              `json:"label"`
	Start            time.Time                           `json:"start"`
	End              time.Time                           `json:"end"` // exclusive; zero for all-time
	TotalDebit       decimal.Decimal                     `json:"totalDebit"`
	TotalCredit      decimal.Decimal                     `json:"totalCredit"`
	TransactionCount int                                 `json:"transactionCount"`
	DebitByKind      map[TransactionKind]decimal.Decimal `json:"debitByKind"`
	CreditByKind     map[TransactionKind]decimal.Decimal `json:"creditByKind"`
}

// CreditFor returns the credit total for kind, zero when absent.
func (p PeriodSummary) CreditFor(kind TransactionKind) decimal.Decimal {
	if v, ok := p.CreditByKind[kind]; ok {
		return v
	}
	return decimal.Zero
}

// DebitFor returns the debit total for kind, zero when absent.
func (p PeriodSummary) DebitFor(kind TransactionKind) decimal.Decimal {
	if v, ok := p.DebitByKind[kind]; ok {
		return v
	}
	return decimal.Zero
}

// PeriodBreakdown is the current month, previous month and all-time view of a ledger.
type PeriodBreakdown struct {
	CurrentMonth  PeriodSummary `json:"currentMonth"`
	PreviousMonth PeriodSummary `json:"previousMonth"`
	AllTime       PeriodSummary `json:"allTime"`
}

// SalaryMonth is the payroll position of one calendar month.
type SalaryMonth struct {
	Paid      decimal.Decimal `json:"paid"`
	Pending   decimal.Decimal `json:"pending"` // max(0, monthlySalary - paid)
	Incentive decimal.Decimal `json:"incentive"`
	Overtime  decimal.Decimal `json:"overtime"`
}

// SalaryPeriodBreakdown is only produced for employee ledgers.
type SalaryPeriodBreakdown struct {
	MonthlySalary decimal.Decimal `json:"monthlySalary"`
	CurrentMonth  SalaryMonth     `json:"currentMonth"`
	PreviousMonth SalaryMonth     `json:"previousMonth"`
}

// Ledger is the derived, read-only view returned for one counter-party.
type Ledger struct {
	CounterpartyID   string                 `json:"counterpartyID"`
	CounterpartyType CounterpartyType       `json:"counterpartyType"`
	Policy           BalancePolicy          `json:"-"`
	AsOf             time.Time              `json:"asOf"`
	OpeningBalance   decimal.Decimal        `json:"openingBalance"`
	Summary          LedgerSummary          `json:"summary"`
	Transactions     []Transaction          `json:"transactions"`
	Periods          PeriodBreakdown        `json:"periods"`
	Salary           *SalaryPeriodBreakdown `json:"salary,omitempty"`
	Incomplete       bool                   `json:"incomplete"`
	FailedSources    []string               `json:"failedSources,omitempty"`
}
