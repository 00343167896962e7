package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/razalrahmanp/palaka-sub003/internal/core/domain"
	portsrepo "github.com/razalrahmanp/palaka-sub003/internal/core/ports/repositories"
)

type PgxOpeningBalanceRepository struct {
	BaseRepository
}

// newPgxOpeningBalanceRepository creates a new repository for carried-forward balances.
func newPgxOpeningBalanceRepository(pool *pgxpool.Pool) portsrepo.OpeningBalanceReader {
	return &PgxOpeningBalanceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.OpeningBalanceReader = (*PgxOpeningBalanceRepository)(nil)

// FetchOpeningBalance returns the counter-party's opening balance, or nil when none is recorded.
func (r *PgxOpeningBalanceRepository) FetchOpeningBalance(ctx context.Context, counterpartyType domain.CounterpartyType, counterpartyID string) (*domain.OpeningBalance, error) {
	query := `
		SELECT counterparty_id, counterparty_type, as_of, amount
		FROM opening_balances
		WHERE counterparty_type = $1 AND counterparty_id = $2;
	`
	var ob domain.OpeningBalance
	var cpType string
	err := r.Pool.QueryRow(ctx, query, string(counterpartyType), counterpartyID).Scan(
		&ob.CounterpartyID,
		&cpType,
		&ob.AsOf,
		&ob.Amount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch opening balance of %s %s: %w", counterpartyType, counterpartyID, err)
	}
	ob.CounterpartyType = domain.CounterpartyType(cpType)
	return &ob, nil
}
