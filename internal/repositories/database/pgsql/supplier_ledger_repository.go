package pgsql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/razalrahmanp/palaka-sub003/internal/core/domain"
	portsrepo "github.com/razalrahmanp/palaka-sub003/internal/core/ports/repositories"
)

type PgxSupplierLedgerRepository struct {
	BaseRepository
}

// newPgxSupplierLedgerRepository creates a new repository for vendor bills and bill payments.
func newPgxSupplierLedgerRepository(pool *pgxpool.Pool) portsrepo.SupplierLedgerRepositoryFacade {
	return &PgxSupplierLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.SupplierLedgerRepositoryFacade = (*PgxSupplierLedgerRepository)(nil)

// FetchBills retrieves every bill raised by the supplier.
func (r *PgxSupplierLedgerRepository) FetchBills(ctx context.Context, supplierID string) ([]domain.BillRecord, error) {
	query := `
		SELECT id, supplier_id, COALESCE(bill_number, ''), bill_date, COALESCE(description, ''),
		       total_amount, paid_amount, COALESCE(status, '')
		FROM vendor_bills
		WHERE supplier_id = $1;
	`
	return queryRecords(ctx, &r.BaseRepository, "vendor bills", query, func(row pgx.CollectableRow) (domain.BillRecord, error) {
		var rec domain.BillRecord
		var billDate *time.Time
		err := row.Scan(
			&rec.BillID,
			&rec.SupplierID,
			&rec.BillNumber,
			&billDate,
			&rec.Description,
			&rec.TotalAmount,
			&rec.PaidAmount,
			&rec.Status,
		)
		rec.BillDate = timeOrZero(billDate)
		return rec, err
	}, supplierID)
}

// FetchBillPayments retrieves every payment event recorded against the supplier's bills.
func (r *PgxSupplierLedgerRepository) FetchBillPayments(ctx context.Context, supplierID string) ([]domain.BillPaymentRecord, error) {
	query := `
		SELECT p.id, p.bill_id, b.supplier_id, p.payment_date, COALESCE(p.reference, ''),
		       COALESCE(p.payment_method, ''), p.amount, COALESCE(p.status, '')
		FROM vendor_bill_payments p
		JOIN vendor_bills b ON b.id = p.bill_id
		WHERE b.supplier_id = $1;
	`
	return queryRecords(ctx, &r.BaseRepository, "vendor bill payments", query, func(row pgx.CollectableRow) (domain.BillPaymentRecord, error) {
		var rec domain.BillPaymentRecord
		var paymentDate *time.Time
		err := row.Scan(
			&rec.PaymentID,
			&rec.BillID,
			&rec.SupplierID,
			&paymentDate,
			&rec.Reference,
			&rec.Method,
			&rec.Amount,
			&rec.Status,
		)
		rec.PaymentDate = timeOrZero(paymentDate)
		return rec, err
	}, supplierID)
}
