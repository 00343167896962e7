package handlers_test

import (
	"context"
	"time"

	"github.com/razalrahmanp/palaka-sub003/internal/core/domain"
	portssvc "github.com/razalrahmanp/palaka-sub003/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) GetLedger(ctx context.Context, counterpartyID string, counterpartyType domain.CounterpartyType, asOf time.Time) (*domain.Ledger, error) {
	args := m.Called(ctx, counterpartyID, counterpartyType, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ledger), args.Error(1)
}

var _ portssvc.LedgerService = (*MockLedgerService)(nil)

// --- Mock EMIService ---
type MockEMIService struct {
	mock.Mock
}

func (m *MockEMIService) ListPlans(ctx context.Context) ([]domain.EMIPlan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EMIPlan), args.Error(1)
}

func (m *MockEMIService) QuoteEMI(ctx context.Context, plan domain.EMIPlan, orderAmount, downPayment decimal.Decimal) (*domain.EMIQuote, error) {
	args := m.Called(ctx, plan, orderAmount, downPayment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EMIQuote), args.Error(1)
}

func (m *MockEMIService) QuotePlan(ctx context.Context, planID string, orderAmount, downPayment decimal.Decimal) (*domain.EMIQuote, error) {
	args := m.Called(ctx, planID, orderAmount, downPayment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EMIQuote), args.Error(1)
}

func (m *MockEMIService) QuoteAll(ctx context.Context, orderAmount, downPayment decimal.Decimal) ([]domain.PlanQuote, error) {
	args := m.Called(ctx, orderAmount, downPayment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PlanQuote), args.Error(1)
}

func (m *MockEMIService) PreviewAcceptance(ctx context.Context, planID, customerID, orderReference string, orderAmount, downPayment decimal.Decimal, at time.Time) (*domain.AcceptancePreview, error) {
	args := m.Called(ctx, planID, customerID, orderReference, orderAmount, downPayment, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AcceptancePreview), args.Error(1)
}

var _ portssvc.EMIService = (*MockEMIService)(nil)

// decimalEq matches a decimal argument by value rather than representation.
func decimalEq(v int64) interface{} {
	want := decimal.NewFromInt(v)
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(want) })
}
