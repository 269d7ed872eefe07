package services

import (
	portsrepo "github.com/SscSPs/meow_bank/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/meow_bank/internal/core/ports/services"
	"github.com/SscSPs/meow_bank/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Account: NewAccountService(repos.AccountRepo, repos.CustomerRepo),
		Customer: NewCustomerService(repos.CustomerRepo,
			WithCustomerPageSize(cfg.DefaultPageSize),
		),
		Transfer: NewTransferService(repos.Ledger, repos.TransactionRepo, repos.AccountRepo,
			WithLockTimeout(cfg.LockTimeout),
			WithTransactionPageSize(cfg.DefaultPageSize),
		),
		Reconcile: NewReconcileService(repos.Auditor),
	}
}
