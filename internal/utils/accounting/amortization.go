package accounting

import (
	"fmt"

	"github.com/razalrahmanp/palaka-sub003/internal/apperrors"
	"github.com/razalrahmanp/palaka-sub003/internal/core/domain"
	"github.com/shopspring/decimal"
)

// workingPrecision is the scale kept by intermediate EMI arithmetic. Monetary
// rounding to the currency minor unit happens once, on the installment.
const workingPrecision int32 = 32

var (
	hundred       = decimal.NewFromInt(100)
	monthsPerYear = decimal.NewFromInt(12)
)

// ValidatePlan checks that a catalog plan can be quoted at all. Failures wrap
// apperrors.ErrInvalidPlan.
func ValidatePlan(plan domain.EMIPlan) error {
	if plan.TermMonths <= 0 {
		return fmt.Errorf("%w: plan %s term must be positive, got %d", apperrors.ErrInvalidPlan, plan.PlanID, plan.TermMonths)
	}
	if plan.AnnualInterestRatePercent.IsNegative() {
		return fmt.Errorf("%w: plan %s interest rate must not be negative", apperrors.ErrInvalidPlan, plan.PlanID)
	}
	if plan.MinFinanceAmount.GreaterThan(plan.MaxFinanceAmount) {
		return fmt.Errorf("%w: plan %s minimum finance amount exceeds maximum", apperrors.ErrInvalidPlan, plan.PlanID)
	}
	return nil
}

// MonthlyRate converts an annual percentage rate into a monthly fraction.
func MonthlyRate(annualRatePercent decimal.Decimal) decimal.Decimal {
	return annualRatePercent.DivRound(hundred.Mul(monthsPerYear), workingPrecision)
}

// Installment computes the unrounded reducing-balance installment
//
//	P × r × (1+r)^n / ((1+r)^n − 1)
//
// falling back to P / n when the rate is zero.
func Installment(principal, annualRatePercent decimal.Decimal, termMonths int) decimal.Decimal {
	n := decimal.NewFromInt(int64(termMonths))
	if annualRatePercent.IsZero() {
		return principal.DivRound(n, workingPrecision)
	}

	r := MonthlyRate(annualRatePercent)
	factor := compound(decimal.NewFromInt(1).Add(r), termMonths)
	numerator := principal.Mul(r).Mul(factor)
	denominator := factor.Sub(decimal.NewFromInt(1))
	return numerator.DivRound(denominator, workingPrecision)
}

// Quote prices a plan for an order. The finance amount (order amount minus down
// payment) must fall within the plan's bounds; otherwise an
// *apperrors.IneligibleFinanceError naming the violated bound is returned and no
// quote is produced. places is the currency's minor-unit scale.
func Quote(plan domain.EMIPlan, orderAmount, downPayment decimal.Decimal, places int32) (*domain.EMIQuote, error) {
	if err := ValidatePlan(plan); err != nil {
		return nil, err
	}
	if !orderAmount.IsPositive() {
		return nil, fmt.Errorf("%w: order amount must be positive", apperrors.ErrValidation)
	}
	if downPayment.IsNegative() {
		return nil, fmt.Errorf("%w: down payment must not be negative", apperrors.ErrValidation)
	}
	if downPayment.GreaterThan(orderAmount) {
		return nil, fmt.Errorf("%w: down payment exceeds order amount", apperrors.ErrValidation)
	}

	financeAmount := orderAmount.Sub(downPayment)
	if financeAmount.LessThan(plan.MinFinanceAmount) {
		return nil, &apperrors.IneligibleFinanceError{
			PlanID:        plan.PlanID,
			Bound:         apperrors.BoundMin,
			FinanceAmount: financeAmount,
			Limit:         plan.MinFinanceAmount,
		}
	}
	if financeAmount.GreaterThan(plan.MaxFinanceAmount) {
		return nil, &apperrors.IneligibleFinanceError{
			PlanID:        plan.PlanID,
			Bound:         apperrors.BoundMax,
			FinanceAmount: financeAmount,
			Limit:         plan.MaxFinanceAmount,
		}
	}

	installment := roundHalfUp(Installment(financeAmount, plan.AnnualInterestRatePercent, plan.TermMonths), places)
	// The customer pays the rounded installment n times, so the totals follow from it exactly.
	totalPayable := installment.Mul(decimal.NewFromInt(int64(plan.TermMonths)))

	return &domain.EMIQuote{
		PlanID:             plan.PlanID,
		TermMonths:         plan.TermMonths,
		OrderAmount:        orderAmount,
		FinanceAmount:      financeAmount,
		DownPayment:        downPayment,
		MonthlyInstallment: installment,
		TotalPayable:       totalPayable,
		TotalInterest:      totalPayable.Sub(financeAmount),
		ProcessingFee:      plan.ProcessingFee,
	}, nil
}

// compound raises base to the n-th power by repeated multiplication at working precision.
func compound(base decimal.Decimal, n int) decimal.Decimal {
	result := decimal.NewFromInt(1)
	for i := 0; i < n; i++ {
		result = result.Mul(base).Round(workingPrecision)
	}
	return result
}

// roundHalfUp rounds a non-negative amount to places decimals, halves upward.
func roundHalfUp(d decimal.Decimal, places int32) decimal.Decimal {
	return d.Round(places)
}
