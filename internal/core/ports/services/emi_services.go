package services

import (
	"context"
	"time"

	"github.com/razalrahmanp/palaka-sub003/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EMIReaderSvc exposes the finance-plan catalog.
type EMIReaderSvc interface {
	ListPlans(ctx context.Context) ([]domain.EMIPlan, error)
}

// EMIQuoterSvc computes installment quotes. Quotes are never persisted.
type EMIQuoterSvc interface {
	// QuoteEMI quotes an explicit plan. An amount outside the plan's bounds
	// returns *apperrors.IneligibleFinanceError and no quote.
	QuoteEMI(ctx context.Context, plan domain.EMIPlan, orderAmount, downPayment decimal.Decimal) (*domain.EMIQuote, error)

	// QuotePlan quotes a catalog plan by ID.
	QuotePlan(ctx context.Context, planID string, orderAmount, downPayment decimal.Decimal) (*domain.EMIQuote, error)

	// QuoteAll quotes every catalog plan and reports per-plan eligibility.
	QuoteAll(ctx context.Context, orderAmount, downPayment decimal.Decimal) ([]domain.PlanQuote, error)

	// PreviewAcceptance builds the emi_finance ledger entry accepting the plan would produce.
	PreviewAcceptance(ctx context.Context, planID, customerID, orderReference string, orderAmount, downPayment decimal.Decimal, at time.Time) (*domain.AcceptancePreview, error)
}

// EMIService combines the EMI catalog and quoting operations.
type EMIService interface {
	EMIReaderSvc
	EMIQuoterSvc
}
