package domain

import "github.com/shopspring/decimal"

// EMIPlan is one entry of the static finance-plan catalog.
type EMIPlan struct {
	PlanID                    string          `json:"planID"`
	Name                      string          `json:"name"`
	TermMonths                int             `json:"termMonths"`
	AnnualInterestRatePercent decimal.Decimal `json:"annualInterestRatePercent"`
	ProcessingFee             decimal.Decimal `json:"processingFee"`
	MinFinanceAmount          decimal.Decimal `json:"minFinanceAmount"`
	MaxFinanceAmount          decimal.Decimal `json:"maxFinanceAmount"`
}

// EMIQuote is computed on demand from a plan and an order amount. It is never persisted.
type EMIQuote struct {
	PlanID             string          `json:"planID"`
	TermMonths         int             `json:"termMonths"`
	OrderAmount        decimal.Decimal `json:"orderAmount"`
	FinanceAmount      decimal.Decimal `json:"financeAmount"`
	DownPayment        decimal.Decimal `json:"downPayment"`
	MonthlyInstallment decimal.Decimal `json:"monthlyInstallment"`
	TotalPayable       decimal.Decimal `json:"totalPayable"`
	TotalInterest      decimal.Decimal `json:"totalInterest"`
	ProcessingFee      decimal.Decimal `json:"processingFee"`
}

// PlanQuote pairs a plan with its quote, or with the reason it is ineligible.
type PlanQuote struct {
	Plan     EMIPlan   `json:"plan"`
	Quote    *EMIQuote `json:"quote,omitempty"`
	Eligible bool      `json:"eligible"`
	Reason   string    `json:"reason,omitempty"`
}

// AcceptancePreview is the ledger entry an accepted plan would produce, computed
// from a fresh quote. Nothing is persisted.
type AcceptancePreview struct {
	CustomerID     string      `json:"customerID"`
	OrderReference string      `json:"orderReference"`
	Quote          EMIQuote    `json:"quote"`
	Transaction    Transaction `json:"transaction"`
}

// DefaultEMIPlans is the built-in catalog used when no catalog provider is configured.
func DefaultEMIPlans() []EMIPlan {
	return []EMIPlan{
		{
			PlanID:                    "emi-3m-0",
			Name:                      "3 months no-cost",
			TermMonths:                3,
			AnnualInterestRatePercent: decimal.Zero,
			ProcessingFee:             decimal.NewFromInt(199),
			MinFinanceAmount:          decimal.NewFromInt(5000),
			MaxFinanceAmount:          decimal.NewFromInt(100000),
		},
		{
			PlanID:                    "emi-6m-12",
			Name:                      "6 months @ 12%",
			TermMonths:                6,
			AnnualInterestRatePercent: decimal.NewFromInt(12),
			ProcessingFee:             decimal.NewFromInt(299),
			MinFinanceAmount:          decimal.NewFromInt(10000),
			MaxFinanceAmount:          decimal.NewFromInt(300000),
		},
		{
			PlanID:                    "emi-12m-15",
			Name:                      "12 months @ 15%",
			TermMonths:                12,
			AnnualInterestRatePercent: decimal.NewFromInt(15),
			ProcessingFee:             decimal.NewFromInt(499),
			MinFinanceAmount:          decimal.NewFromInt(25000),
			MaxFinanceAmount:          decimal.NewFromInt(500000),
		},
		{
			PlanID:                    "emi-24m-16",
			Name:                      "24 months @ 16%",
			TermMonths:                24,
			AnnualInterestRatePercent: decimal.NewFromInt(16),
			ProcessingFee:             decimal.NewFromInt(799),
			MinFinanceAmount:          decimal.NewFromInt(50000),
			MaxFinanceAmount:          decimal.NewFromInt(1000000),
		},
	}
}
