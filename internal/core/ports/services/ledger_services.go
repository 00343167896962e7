package services

import (
	"context"
	"time"

	"github.com/razalrahmanp/palaka-sub003/internal/core/domain"
)

// LedgerService builds the reconciled ledger view of one counter-party.
type LedgerService interface {
	// GetLedger reads every record source of the counter-party type, normalizes,
	// sequences and accumulates them. asOf is the reference instant for the
	// period buckets. A failed source is never fatal: the ledger is returned
	// with Incomplete set and the source named in FailedSources.
	GetLedger(ctx context.Context, counterpartyID string, counterpartyType domain.CounterpartyType, asOf time.Time) (*domain.Ledger, error)
}
