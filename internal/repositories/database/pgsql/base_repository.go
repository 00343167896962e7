package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// queryRecords runs a read query and collects every row with scan.
func queryRecords[T any](ctx context.Context, r *BaseRepository, what, query string, scan func(row pgx.CollectableRow) (T, error), args ...any) ([]T, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", what, err)
	}
	defer rows.Close()

	records, err := pgx.CollectRows(rows, scan)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", what, err)
	}
	return records, nil
}

// timeOrZero unwraps a nullable timestamp. A missing date stays zero so the
// normalizer can reject the record.
func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
