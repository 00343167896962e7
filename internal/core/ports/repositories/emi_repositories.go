package repositories

import (
	"context"

	"github.com/razalrahmanp/palaka-sub003/internal/core/domain"
)

// EMIPlanReader reads the finance-plan catalog.
type EMIPlanReader interface {
	// FetchEMIPlanCatalog retrieves every active plan ordered by term.
	FetchEMIPlanCatalog(ctx context.Context) ([]domain.EMIPlan, error)
}
