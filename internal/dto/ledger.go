package dto

import (
	"github.com/razalrahmanp/palaka-sub003/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerResponse is the API representation of a reconciled counter-party ledger.
type LedgerResponse struct {
	CounterpartyID   string                        `json:"counterpartyID"`
	CounterpartyType domain.CounterpartyType       `json:"counterpartyType"`
	AsOf             string                        `json:"asOf"`
	OpeningBalance   decimal.Decimal               `json:"openingBalance"`
	Summary          domain.LedgerSummary          `json:"summary"`
	Transactions     []domain.Transaction          `json:"transactions"`
	Periods          domain.PeriodBreakdown        `json:"periods"`
	Salary           *domain.SalaryPeriodBreakdown `json:"salary,omitempty"`
	Incomplete       bool                          `json:"incomplete"`
	FailedSources    []string                      `json:"failedSources"`
}

// ToLedgerResponse converts a domain ledger to its response form.
func ToLedgerResponse(l *domain.Ledger) LedgerResponse {
	txns := l.Transactions
	if txns == nil {
		txns = []domain.Transaction{}
	}
	failed := l.FailedSources
	if failed == nil {
		failed = []string{}
	}
	return LedgerResponse{
		CounterpartyID:   l.CounterpartyID,
		CounterpartyType: l.CounterpartyType,
		AsOf:             l.AsOf.Format("2006-01-02"),
		OpeningBalance:   l.OpeningBalance,
		Summary:          l.Summary,
		Transactions:     txns,
		Periods:          l.Periods,
		Salary:           l.Salary,
		Incomplete:       l.Incomplete,
		FailedSources:    failed,
	}
}
