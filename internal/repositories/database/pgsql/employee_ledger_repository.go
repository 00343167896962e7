package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/razalrahmanp/palaka-sub003/internal/apperrors"
	"github.com/razalrahmanp/palaka-sub003/internal/core/domain"
	portsrepo "github.com/razalrahmanp/palaka-sub003/internal/core/ports/repositories"
	"github.com/razalrahmanp/palaka-sub003/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

type PgxEmployeeLedgerRepository struct {
	BaseRepository
}

// newPgxEmployeeLedgerRepository creates a new repository for payroll records and employee master data.
func newPgxEmployeeLedgerRepository(pool *pgxpool.Pool) portsrepo.EmployeeLedgerRepositoryFacade {
	return &PgxEmployeeLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.EmployeeLedgerRepositoryFacade = (*PgxEmployeeLedgerRepository)(nil)

// FetchPayrollLines retrieves every payroll line paid to the employee.
func (r *PgxEmployeeLedgerRepository) FetchPayrollLines(ctx context.Context, employeeID string) ([]domain.PayrollLine, error) {
	query := `
		SELECT id, employee_id, pay_date, line_type, COALESCE(description, ''),
		       COALESCE(reference, ''), amount, COALESCE(status, '')
		FROM payroll_records
		WHERE employee_id = $1;
	`
	return queryRecords(ctx, &r.BaseRepository, "payroll records", query, func(row pgx.CollectableRow) (domain.PayrollLine, error) {
		var rec domain.PayrollLine
		var payDate *time.Time
		var lineType string
		err := row.Scan(&rec.LineID, &rec.EmployeeID, &payDate, &lineType, &rec.Description, &rec.Reference, &rec.Amount, &rec.Status)
		rec.PayDate = timeOrZero(payDate)
		rec.LineType = domain.PayrollLineType(lineType)
		return rec, err
	}, employeeID)
}

// FetchEmployeeSalary returns the contracted monthly salary of the employee.
func (r *PgxEmployeeLedgerRepository) FetchEmployeeSalary(ctx context.Context, employeeID string) (decimal.Decimal, error) {
	query := `
		SELECT monthly_salary
		FROM employees
		WHERE id = $1;
	`
	var salary decimal.NullDecimal
	err := r.Pool.QueryRow(ctx, query, employeeID).Scan(&salary)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, fmt.Errorf("employee %s: %w", employeeID, apperrors.ErrNotFound)
		}
		return decimal.Zero, fmt.Errorf("failed to fetch salary of employee %s: %w", employeeID, err)
	}
	return mapping.EmployeeSalary(employeeID, salary)
}
