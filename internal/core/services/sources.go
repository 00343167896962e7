package services

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/razalrahmanp/palaka-sub003/internal/core/domain"
	portsrepo "github.com/razalrahmanp/palaka-sub003/internal/core/ports/repositories"
	"github.com/razalrahmanp/palaka-sub003/internal/utils/mapping"
)

// TransactionSource reads one kind of raw record for a counter-party and
// normalizes it into canonical transactions.
type TransactionSource interface {
	// Name identifies the source in logs and in Ledger.FailedSources.
	Name() string

	// Fetch returns the mapped transactions ordered by ID, plus one error per
	// record that could not be mapped. A non-nil error means the source itself
	// could not be read.
	Fetch(ctx context.Context, counterpartyID string) (txns []domain.Transaction, malformed []error, err error)
}

// recordSource adapts a reader function and a mapping rule into a TransactionSource.
type recordSource[R any] struct {
	name  string
	fetch func(ctx context.Context, counterpartyID string) ([]R, error)
	toTxn func(R) (domain.Transaction, error)
}

// NewRecordSource builds a TransactionSource from a record reader and its mapping rule.
func NewRecordSource[R any](name string, fetch func(context.Context, string) ([]R, error), toTxn func(R) (domain.Transaction, error)) TransactionSource {
	return &recordSource[R]{name: name, fetch: fetch, toTxn: toTxn}
}

func (s *recordSource[R]) Name() string {
	return s.name
}

func (s *recordSource[R]) Fetch(ctx context.Context, counterpartyID string) ([]domain.Transaction, []error, error) {
	records, err := s.fetch(ctx, counterpartyID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch %s records: %w", s.name, err)
	}

	txns := make([]domain.Transaction, 0, len(records))
	var malformed []error
	for _, record := range records {
		txn, err := s.toTxn(record)
		if err != nil {
			malformed = append(malformed, err)
			continue
		}
		txns = append(txns, txn)
	}

	// Providers return records in no guaranteed order; the sequencer is stable,
	// so emission order is canonicalized here.
	slices.SortFunc(txns, func(a, b domain.Transaction) int {
		return strings.Compare(a.ID, b.ID)
	})
	return txns, malformed, nil
}

// SupplierSources are the record sources of a supplier ledger.
func SupplierSources(repo portsrepo.SupplierLedgerRepositoryFacade) []TransactionSource {
	return []TransactionSource{
		NewRecordSource(mapping.SourceBill, repo.FetchBills, mapping.BillToTransaction),
		NewRecordSource(mapping.SourceBillPayment, repo.FetchBillPayments, mapping.BillPaymentToTransaction),
	}
}

// CustomerSources are the record sources of a customer ledger.
func CustomerSources(repo portsrepo.CustomerLedgerRepositoryFacade) []TransactionSource {
	return []TransactionSource{
		NewRecordSource(mapping.SourceSalesOrder, repo.FetchSalesOrders, mapping.SalesOrderToTransaction),
		NewRecordSource(mapping.SourcePayment, repo.FetchCustomerPayments, mapping.CustomerPaymentToTransaction),
		NewRecordSource(mapping.SourceReturn, repo.FetchReturns, mapping.ReturnToTransaction),
		NewRecordSource(mapping.SourceRefund, repo.FetchRefunds, mapping.RefundToTransaction),
		NewRecordSource(mapping.SourceFinancedOrder, repo.FetchFinancedOrders, mapping.FinancedOrderToTransaction),
	}
}

// EmployeeSources are the record sources of an employee ledger.
func EmployeeSources(repo portsrepo.EmployeeLedgerRepositoryFacade) []TransactionSource {
	return []TransactionSource{
		NewRecordSource(mapping.SourcePayroll, repo.FetchPayrollLines, mapping.PayrollLineToTransaction),
	}
}
