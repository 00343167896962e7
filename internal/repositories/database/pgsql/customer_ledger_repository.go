package pgsql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/razalrahmanp/palaka-sub003/internal/core/domain"
	portsrepo "github.com/razalrahmanp/palaka-sub003/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

type PgxCustomerLedgerRepository struct {
	BaseRepository
}

// newPgxCustomerLedgerRepository creates a new repository for the customer-side ledger records.
func newPgxCustomerLedgerRepository(pool *pgxpool.Pool) portsrepo.CustomerLedgerRepositoryFacade {
	return &PgxCustomerLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CustomerLedgerRepositoryFacade = (*PgxCustomerLedgerRepository)(nil)

// FetchSalesOrders retrieves every sales order of the customer.
func (r *PgxCustomerLedgerRepository) FetchSalesOrders(ctx context.Context, customerID string) ([]domain.SalesOrderRecord, error) {
	query := `
		SELECT id, customer_id, COALESCE(order_number, ''), order_date, grand_total, COALESCE(status, '')
		FROM sales_orders
		WHERE customer_id = $1;
	`
	return queryRecords(ctx, &r.BaseRepository, "sales orders", query, func(row pgx.CollectableRow) (domain.SalesOrderRecord, error) {
		var rec domain.SalesOrderRecord
		var orderDate *time.Time
		err := row.Scan(&rec.OrderID, &rec.CustomerID, &rec.OrderNumber, &orderDate, &rec.GrandTotal, &rec.Status)
		rec.OrderDate = timeOrZero(orderDate)
		return rec, err
	}, customerID)
}

// FetchCustomerPayments retrieves every payment received from the customer.
func (r *PgxCustomerLedgerRepository) FetchCustomerPayments(ctx context.Context, customerID string) ([]domain.CustomerPaymentRecord, error) {
	query := `
		SELECT id, customer_id, COALESCE(order_id, ''), payment_date, COALESCE(reference, ''),
		       COALESCE(payment_method, ''), amount, COALESCE(status, '')
		FROM customer_payments
		WHERE customer_id = $1;
	`
	return queryRecords(ctx, &r.BaseRepository, "customer payments", query, func(row pgx.CollectableRow) (domain.CustomerPaymentRecord, error) {
		var rec domain.CustomerPaymentRecord
		var paymentDate *time.Time
		err := row.Scan(&rec.PaymentID, &rec.CustomerID, &rec.OrderID, &paymentDate, &rec.Reference, &rec.Method, &rec.Amount, &rec.Status)
		rec.PaymentDate = timeOrZero(paymentDate)
		return rec, err
	}, customerID)
}

// FetchReturns retrieves the customer's sales returns and manual adjustments.
func (r *PgxCustomerLedgerRepository) FetchReturns(ctx context.Context, customerID string) ([]domain.ReturnRecord, error) {
	query := `
		SELECT id, customer_id, COALESCE(order_id, ''), return_date, COALESCE(reason, ''),
		       amount, is_adjustment, COALESCE(status, '')
		FROM sales_returns
		WHERE customer_id = $1;
	`
	return queryRecords(ctx, &r.BaseRepository, "sales returns", query, func(row pgx.CollectableRow) (domain.ReturnRecord, error) {
		var rec domain.ReturnRecord
		var returnDate *time.Time
		err := row.Scan(&rec.ReturnID, &rec.CustomerID, &rec.OrderID, &returnDate, &rec.Reason, &rec.Amount, &rec.IsAdjustment, &rec.Status)
		rec.ReturnDate = timeOrZero(returnDate)
		return rec, err
	}, customerID)
}

// FetchRefunds retrieves refunds paid back to the customer.
func (r *PgxCustomerLedgerRepository) FetchRefunds(ctx context.Context, customerID string) ([]domain.RefundRecord, error) {
	query := `
		SELECT id, customer_id, COALESCE(return_id, ''), refund_date, COALESCE(reference, ''),
		       amount, COALESCE(status, '')
		FROM refunds
		WHERE customer_id = $1;
	`
	return queryRecords(ctx, &r.BaseRepository, "refunds", query, func(row pgx.CollectableRow) (domain.RefundRecord, error) {
		var rec domain.RefundRecord
		var refundDate *time.Time
		err := row.Scan(&rec.RefundID, &rec.CustomerID, &rec.ReturnID, &refundDate, &rec.Reference, &rec.Amount, &rec.Status)
		rec.RefundDate = timeOrZero(refundDate)
		return rec, err
	}, customerID)
}

// FetchFinancedOrders retrieves accepted EMI plans of the customer.
func (r *PgxCustomerLedgerRepository) FetchFinancedOrders(ctx context.Context, customerID string) ([]domain.FinancedOrderRecord, error) {
	query := `
		SELECT id, customer_id, order_id, plan_id, accepted_at, finance_amount,
		       monthly_installment, term_months, COALESCE(status, '')
		FROM financed_orders
		WHERE customer_id = $1;
	`
	return queryRecords(ctx, &r.BaseRepository, "financed orders", query, func(row pgx.CollectableRow) (domain.FinancedOrderRecord, error) {
		var rec domain.FinancedOrderRecord
		var acceptedAt *time.Time
		var installment decimal.NullDecimal
		err := row.Scan(
			&rec.FinanceID,
			&rec.CustomerID,
			&rec.OrderID,
			&rec.PlanID,
			&acceptedAt,
			&rec.FinanceAmount,
			&installment,
			&rec.TermMonths,
			&rec.Status,
		)
		rec.AcceptedAt = timeOrZero(acceptedAt)
		rec.MonthlyInstallment = installment.Decimal
		return rec, err
	}, customerID)
}
