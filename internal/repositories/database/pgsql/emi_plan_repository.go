package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/razalrahmanp/palaka-sub003/internal/core/domain"
	portsrepo "github.com/razalrahmanp/palaka-sub003/internal/core/ports/repositories"
)

type PgxEMIPlanRepository struct {
	BaseRepository
}

// newPgxEMIPlanRepository creates a new repository for the finance-plan catalog.
func newPgxEMIPlanRepository(pool *pgxpool.Pool) portsrepo.EMIPlanReader {
	return &PgxEMIPlanRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.EMIPlanReader = (*PgxEMIPlanRepository)(nil)

// FetchEMIPlanCatalog retrieves every active plan ordered by term.
func (r *PgxEMIPlanRepository) FetchEMIPlanCatalog(ctx context.Context) ([]domain.EMIPlan, error) {
	query := `
		SELECT id, name, term_months, annual_interest_rate, processing_fee,
		       min_finance_amount, max_finance_amount
		FROM emi_plans
		WHERE is_active
		ORDER BY term_months, id;
	`
	return queryRecords(ctx, &r.BaseRepository, "EMI plans", query, func(row pgx.CollectableRow) (domain.EMIPlan, error) {
		var plan domain.EMIPlan
		err := row.Scan(
			&plan.PlanID,
			&plan.Name,
			&plan.TermMonths,
			&plan.AnnualInterestRatePercent,
			&plan.ProcessingFee,
			&plan.MinFinanceAmount,
			&plan.MaxFinanceAmount,
		)
		return plan, err
	})
}
