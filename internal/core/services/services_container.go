package services

import (
	portsrepo "github.com/razalrahmanp/palaka-sub003/internal/core/ports/repositories"
	portssvc "github.com/razalrahmanp/palaka-sub003/internal/core/ports/services"
	"github.com/razalrahmanp/palaka-sub003/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Ledger = NewLedgerService(
		repos,
		WithSourceTimeout(cfg.SourceTimeout),
		WithStrictInvariants(cfg.StrictInvariants),
	)

	container.EMI = NewEMIService(
		repos.EMIPlanRepo,
		WithMinorUnits(cfg.CurrencyMinorUnits),
	)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.LedgerService = (*ledgerService)(nil)
	_ portssvc.EMIService    = (*emiService)(nil)
)
