package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/razalrahmanp/palaka-sub003/internal/apperrors"
	"github.com/razalrahmanp/palaka-sub003/internal/core/domain"
	portsrepo "github.com/razalrahmanp/palaka-sub003/internal/core/ports/repositories"
	portssvc "github.com/razalrahmanp/palaka-sub003/internal/core/ports/services"
	"github.com/razalrahmanp/palaka-sub003/internal/utils/accounting"
	"github.com/razalrahmanp/palaka-sub003/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

// DefaultMinorUnits is the currency scale quotes are rounded to by default.
const DefaultMinorUnits int32 = 2

type emiService struct {
	BaseService
	planRepo   portsrepo.EMIPlanReader
	minorUnits int32
	now        func() time.Time
}

// EMIServiceOption is a functional option for configuring the EMI service
type EMIServiceOption func(*emiService)

// WithMinorUnits sets the number of decimals installments are rounded to.
func WithMinorUnits(places int32) EMIServiceOption {
	return func(s *emiService) {
		if places >= 0 {
			s.minorUnits = places
		}
	}
}

// WithEMIClock overrides the clock used for acceptance previews without an explicit instant.
func WithEMIClock(now func() time.Time) EMIServiceOption {
	return func(s *emiService) {
		s.now = now
	}
}

// NewEMIService creates the EMI service. A nil plan reader serves the built-in catalog.
func NewEMIService(planRepo portsrepo.EMIPlanReader, options ...EMIServiceOption) portssvc.EMIService {
	svc := &emiService{
		planRepo:   planRepo,
		minorUnits: DefaultMinorUnits,
		now:        time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.EMIService = (*emiService)(nil)

// ListPlans returns the plan catalog.
func (s *emiService) ListPlans(ctx context.Context) ([]domain.EMIPlan, error) {
	if s.planRepo == nil {
		return domain.DefaultEMIPlans(), nil
	}
	plans, err := s.planRepo.FetchEMIPlanCatalog(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch EMI plan catalog")
		return nil, fmt.Errorf("failed to fetch EMI plan catalog: %w", &apperrors.SourceError{Source: "emi_plans", Err: err})
	}
	return plans, nil
}

// QuoteEMI quotes an explicit plan.
func (s *emiService) QuoteEMI(ctx context.Context, plan domain.EMIPlan, orderAmount, downPayment decimal.Decimal) (*domain.EMIQuote, error) {
	quote, err := accounting.Quote(plan, orderAmount, downPayment, s.minorUnits)
	if err != nil {
		var ineligible *apperrors.IneligibleFinanceError
		if errors.As(err, &ineligible) {
			s.LogInfo(ctx, "Finance amount outside plan bounds",
				slog.String("plan_id", plan.PlanID),
				slog.String("bound", string(ineligible.Bound)),
				slog.String("finance_amount", ineligible.FinanceAmount.String()))
			return nil, err
		}
		s.LogDebug(ctx, "Rejected EMI quote request", slog.String("plan_id", plan.PlanID), slog.String("error", err.Error()))
		return nil, err
	}

	s.LogDebug(ctx, "EMI quote computed",
		slog.String("plan_id", plan.PlanID),
		slog.String("monthly_installment", quote.MonthlyInstallment.String()))
	return quote, nil
}

// QuotePlan quotes a catalog plan by ID.
func (s *emiService) QuotePlan(ctx context.Context, planID string, orderAmount, downPayment decimal.Decimal) (*domain.EMIQuote, error) {
	plan, err := s.findPlan(ctx, planID)
	if err != nil {
		return nil, err
	}
	return s.QuoteEMI(ctx, *plan, orderAmount, downPayment)
}

// QuoteAll quotes every catalog plan. Ineligible and misconfigured plans are
// reported, not failed.
func (s *emiService) QuoteAll(ctx context.Context, orderAmount, downPayment decimal.Decimal) ([]domain.PlanQuote, error) {
	plans, err := s.ListPlans(ctx)
	if err != nil {
		return nil, err
	}

	quotes := make([]domain.PlanQuote, 0, len(plans))
	for _, plan := range plans {
		if err := accounting.ValidatePlan(plan); err != nil {
			s.LogError(ctx, err, "Skipping misconfigured EMI plan", slog.String("plan_id", plan.PlanID))
			quotes = append(quotes, domain.PlanQuote{Plan: plan, Eligible: false, Reason: err.Error()})
			continue
		}
		quote, err := s.QuoteEMI(ctx, plan, orderAmount, downPayment)
		var ineligible *apperrors.IneligibleFinanceError
		switch {
		case err == nil:
			quotes = append(quotes, domain.PlanQuote{Plan: plan, Quote: quote, Eligible: true})
		case errors.As(err, &ineligible):
			quotes = append(quotes, domain.PlanQuote{Plan: plan, Eligible: false, Reason: ineligible.Error()})
		default:
			// Order-level validation fails identically for every plan.
			return nil, err
		}
	}
	return quotes, nil
}

// PreviewAcceptance builds the emi_finance ledger entry accepting the plan would produce.
func (s *emiService) PreviewAcceptance(ctx context.Context, planID, customerID, orderReference string, orderAmount, downPayment decimal.Decimal, at time.Time) (*domain.AcceptancePreview, error) {
	if strings.TrimSpace(customerID) == "" {
		return nil, fmt.Errorf("%w: customer id is required", apperrors.ErrValidation)
	}
	if at.IsZero() {
		at = s.now()
	}

	quote, err := s.QuotePlan(ctx, planID, orderAmount, downPayment)
	if err != nil {
		return nil, err
	}

	txn, err := mapping.FinancedOrderToTransaction(domain.FinancedOrderRecord{
		FinanceID:          "preview-" + uuid.NewString(),
		CustomerID:         customerID,
		OrderID:            orderReference,
		PlanID:             quote.PlanID,
		AcceptedAt:         at,
		FinanceAmount:      decimal.NewNullDecimal(quote.FinanceAmount),
		MonthlyInstallment: quote.MonthlyInstallment,
		TermMonths:         quote.TermMonths,
		Status:             string(domain.StatusPending),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build acceptance preview: %w", err)
	}

	s.LogInfo(ctx, "EMI acceptance previewed",
		slog.String("plan_id", quote.PlanID),
		slog.String("customer_id", customerID),
		slog.String("finance_amount", quote.FinanceAmount.String()))
	return &domain.AcceptancePreview{
		CustomerID:     customerID,
		OrderReference: orderReference,
		Quote:          *quote,
		Transaction:    txn,
	}, nil
}

func (s *emiService) findPlan(ctx context.Context, planID string) (*domain.EMIPlan, error) {
	plans, err := s.ListPlans(ctx)
	if err != nil {
		return nil, err
	}
	for i := range plans {
		if plans[i].PlanID == planID {
			return &plans[i], nil
		}
	}
	return nil, fmt.Errorf("EMI plan '%s': %w", planID, apperrors.ErrNotFound)
}
