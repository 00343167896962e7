package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/razalrahmanp/palaka-sub003/internal/apperrors"
	"github.com/razalrahmanp/palaka-sub003/internal/core/domain"
	portsrepo "github.com/razalrahmanp/palaka-sub003/internal/core/ports/repositories"
	portssvc "github.com/razalrahmanp/palaka-sub003/internal/core/ports/services"
	"github.com/razalrahmanp/palaka-sub003/internal/utils/accounting"
	"github.com/razalrahmanp/palaka-sub003/internal/utils/mapping"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// DefaultSourceTimeout bounds each provider read when no timeout is configured.
const DefaultSourceTimeout = 5 * time.Second

// sourceEmployeeSalary names the employee master-data read in FailedSources.
const sourceEmployeeSalary = "employee_salary"

// ledgerService implements the LedgerService interface
type ledgerService struct {
	BaseService
	sources          map[domain.CounterpartyType][]TransactionSource
	employeeRepo     portsrepo.EmployeeReader
	openingRepo      portsrepo.OpeningBalanceReader
	sourceTimeout    time.Duration
	strictInvariants bool
	now              func() time.Time
}

// LedgerServiceOption is a functional option for configuring the ledger service
type LedgerServiceOption func(*ledgerService)

// WithSourceTimeout bounds every individual provider read.
func WithSourceTimeout(timeout time.Duration) LedgerServiceOption {
	return func(s *ledgerService) {
		if timeout > 0 {
			s.sourceTimeout = timeout
		}
	}
}

// WithStrictInvariants makes a computation invariant violation panic instead of
// returning an error. Intended for development builds.
func WithStrictInvariants(strict bool) LedgerServiceOption {
	return func(s *ledgerService) {
		s.strictInvariants = strict
	}
}

// WithTransactionSources registers additional sources for a counter-party type.
// They are read after the built-in ones.
func WithTransactionSources(counterpartyType domain.CounterpartyType, sources ...TransactionSource) LedgerServiceOption {
	return func(s *ledgerService) {
		s.sources[counterpartyType] = append(s.sources[counterpartyType], sources...)
	}
}

// WithClock overrides the clock used when GetLedger is called without a reference instant.
func WithClock(now func() time.Time) LedgerServiceOption {
	return func(s *ledgerService) {
		s.now = now
	}
}

// NewLedgerService creates a new ledger service with the provided options
func NewLedgerService(repos portsrepo.RepositoryProvider, options ...LedgerServiceOption) portssvc.LedgerService {
	svc := &ledgerService{
		sources:       make(map[domain.CounterpartyType][]TransactionSource),
		employeeRepo:  repos.EmployeeRepo,
		openingRepo:   repos.OpeningBalanceRepo,
		sourceTimeout: DefaultSourceTimeout,
		now:           time.Now,
	}
	if repos.SupplierRepo != nil {
		svc.sources[domain.Supplier] = SupplierSources(repos.SupplierRepo)
	}
	if repos.CustomerRepo != nil {
		svc.sources[domain.Customer] = CustomerSources(repos.CustomerRepo)
	}
	if repos.EmployeeRepo != nil {
		svc.sources[domain.Employee] = EmployeeSources(repos.EmployeeRepo)
	}

	// Apply all options
	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure ledgerService implements the LedgerService interface
var _ portssvc.LedgerService = (*ledgerService)(nil)

type fetchedSource struct {
	txns      []domain.Transaction
	malformed []error
}

type sourceResult struct {
	fetchedSource
	err error
}

// GetLedger builds the reconciled ledger of one counter-party.
func (s *ledgerService) GetLedger(ctx context.Context, counterpartyID string, counterpartyType domain.CounterpartyType, asOf time.Time) (*domain.Ledger, error) {
	counterpartyID = strings.TrimSpace(counterpartyID)
	if counterpartyID == "" {
		return nil, fmt.Errorf("%w: counterparty id is required", apperrors.ErrValidation)
	}
	if _, err := domain.ParseCounterpartyType(string(counterpartyType)); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	sources, ok := s.sources[counterpartyType]
	if !ok {
		return nil, fmt.Errorf("%w: no record sources configured for %s ledgers", apperrors.ErrValidation, counterpartyType)
	}
	if asOf.IsZero() {
		asOf = s.now()
	}

	logAttrs := []any{
		slog.String("counterparty_id", counterpartyID),
		slog.String("counterparty_type", string(counterpartyType)),
	}
	s.LogDebug(ctx, "Fetching ledger sources", append(logAttrs, slog.Int("source_count", len(sources)))...)

	var (
		results    = make([]sourceResult, len(sources))
		opening    *domain.OpeningBalance
		openingErr error
		salary     decimal.Decimal
		salaryErr  error
	)

	// Every read is independent and never fails the group; failures are
	// collected per source below.
	var g errgroup.Group
	for i, src := range sources {
		g.Go(func() error {
			results[i] = s.fetchSource(ctx, src, counterpartyID)
			return nil
		})
	}
	if s.openingRepo != nil {
		g.Go(func() error {
			opening, openingErr = callWithTimeout(ctx, s.sourceTimeout, func(ctx context.Context) (*domain.OpeningBalance, error) {
				return s.openingRepo.FetchOpeningBalance(ctx, counterpartyType, counterpartyID)
			})
			return nil
		})
	}
	if counterpartyType == domain.Employee {
		g.Go(func() error {
			if s.employeeRepo == nil {
				salaryErr = errors.New("no employee reader configured")
				return nil
			}
			salary, salaryErr = callWithTimeout(ctx, s.sourceTimeout, func(ctx context.Context) (decimal.Decimal, error) {
				return s.employeeRepo.FetchEmployeeSalary(ctx, counterpartyID)
			})
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		s.LogError(ctx, err, "Ledger fetch aborted", logAttrs...)
		return nil, fmt.Errorf("ledger fetch aborted: %w", err)
	}

	ledger := &domain.Ledger{
		CounterpartyID:   counterpartyID,
		CounterpartyType: counterpartyType,
		Policy:           counterpartyType.Policy(),
		AsOf:             asOf,
		OpeningBalance:   decimal.Zero,
	}

	var txns []domain.Transaction
	for i, src := range sources {
		res := results[i]
		if res.err != nil {
			s.markFailed(ctx, ledger, src.Name(), res.err)
			continue
		}
		for _, m := range res.malformed {
			s.LogWarn(ctx, m, "Dropped malformed record", slog.String("source", src.Name()))
		}
		txns = append(txns, res.txns...)
	}

	ordered := accounting.Sequence(txns, asOf.Location())

	switch {
	case openingErr != nil:
		s.markFailed(ctx, ledger, mapping.SourceOpeningBalance, openingErr)
	case opening != nil:
		// The amount still seeds the balance when the record cannot be rendered as a marker.
		ledger.OpeningBalance = opening.Amount
		marker, err := mapping.OpeningBalanceToTransaction(*opening)
		if err != nil {
			s.markFailed(ctx, ledger, mapping.SourceOpeningBalance, err)
			break
		}
		// The marker heads the ledger whatever its date.
		ordered = append([]domain.Transaction{marker}, ordered...)
	}

	accumulated, err := accounting.Accumulate(ordered, ledger.OpeningBalance, ledger.Policy)
	if err != nil {
		s.LogError(ctx, err, "Running balance invariant violated", logAttrs...)
		if s.strictInvariants {
			panic(err)
		}
		return nil, fmt.Errorf("failed to compute running balance for %s %s: %w", counterpartyType, counterpartyID, err)
	}

	ledger.Transactions = accumulated
	ledger.Summary = accounting.Summarize(accumulated, ledger.OpeningBalance)
	ledger.Periods = accounting.Aggregate(accumulated, asOf)

	if counterpartyType == domain.Employee {
		monthly := decimal.Zero
		if salaryErr != nil {
			s.markFailed(ctx, ledger, sourceEmployeeSalary, salaryErr)
		} else {
			monthly = salary
		}
		ledger.Salary = accounting.SalaryBreakdown(ledger.Periods, monthly)
	}

	ledger.Incomplete = len(ledger.FailedSources) > 0

	s.LogInfo(ctx, "Ledger built",
		append(logAttrs,
			slog.Int("transaction_count", ledger.Summary.TransactionCount),
			slog.String("net_balance", ledger.Summary.NetBalance.String()),
			slog.Bool("incomplete", ledger.Incomplete))...)
	return ledger, nil
}

// fetchSource reads one source under the per-source timeout.
func (s *ledgerService) fetchSource(ctx context.Context, src TransactionSource, counterpartyID string) sourceResult {
	fetched, err := callWithTimeout(ctx, s.sourceTimeout, func(ctx context.Context) (fetchedSource, error) {
		txns, malformed, err := src.Fetch(ctx, counterpartyID)
		return fetchedSource{txns: txns, malformed: malformed}, err
	})
	if err != nil {
		return sourceResult{err: err}
	}
	return sourceResult{fetchedSource: fetched}
}

func (s *ledgerService) markFailed(ctx context.Context, ledger *domain.Ledger, source string, err error) {
	srcErr := &apperrors.SourceError{Source: source, Err: err}
	s.LogWarn(ctx, srcErr, "Ledger source unavailable",
		slog.String("source", source),
		slog.String("counterparty_id", ledger.CounterpartyID))
	ledger.FailedSources = append(ledger.FailedSources, source)
}

// callWithTimeout runs fn under a deadline. It returns as soon as the deadline
// passes, even when fn ignores its context; the abandoned call finishes in the
// background and its result is discarded.
func callWithTimeout[T any](ctx context.Context, timeout time.Duration, fn func(context.Context) (T, error)) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type result struct {
		val T
		err error
	}
	done := make(chan result, 1)
	go func() {
		val, err := fn(ctx)
		done <- result{val: val, err: err}
	}()

	select {
	case r := <-done:
		return r.val, r.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
