package dto

import (
	"time"

	"github.com/razalrahmanp/palaka-sub003/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EMIQuoteRequest asks for a quote against a single catalog plan.
type EMIQuoteRequest struct {
	PlanID      string          `json:"planID" binding:"required"`
	OrderAmount decimal.Decimal `json:"orderAmount" binding:"required,gt=0"`
	DownPayment decimal.Decimal `json:"downPayment" binding:"gte=0"`
}

// EMIQuotesRequest asks for a quote against every catalog plan.
type EMIQuotesRequest struct {
	OrderAmount decimal.Decimal `json:"orderAmount" binding:"required,gt=0"`
	DownPayment decimal.Decimal `json:"downPayment" binding:"gte=0"`
}

// AcceptPreviewRequest asks for the ledger entry accepting a plan would produce.
type AcceptPreviewRequest struct {
	PlanID         string          `json:"planID" binding:"required"`
	CustomerID     string          `json:"customerID" binding:"required"`
	OrderReference string          `json:"orderReference" binding:"required"`
	OrderAmount    decimal.Decimal `json:"orderAmount" binding:"required,gt=0"`
	DownPayment    decimal.Decimal `json:"downPayment" binding:"gte=0"`
	AcceptedAt     *time.Time      `json:"acceptedAt,omitempty"`
}

// ListEMIPlansResponse wraps the plan catalog.
type ListEMIPlansResponse struct {
	Plans []domain.EMIPlan `json:"plans"`
}

// EMIQuotesResponse wraps the per-plan quotes for one order.
type EMIQuotesResponse struct {
	OrderAmount decimal.Decimal    `json:"orderAmount"`
	DownPayment decimal.Decimal    `json:"downPayment"`
	Quotes      []domain.PlanQuote `json:"quotes"`
}

// IneligibleFinanceResponse is returned with 422 when the finance amount is outside plan bounds.
type IneligibleFinanceResponse struct {
	Error         string          `json:"error"`
	PlanID        string          `json:"planID"`
	Bound         string          `json:"bound"`
	FinanceAmount decimal.Decimal `json:"financeAmount"`
	Limit         decimal.Decimal `json:"limit"`
}
