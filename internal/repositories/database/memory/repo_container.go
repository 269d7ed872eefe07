package memory

import (
	portsrepo "github.com/SscSPs/meow_bank/internal/core/ports/repositories"
)

// NewRepositoryProvider exposes one Store through every repository port.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:     newAccountRepository(store),
		CustomerRepo:    newCustomerRepository(store),
		TransactionRepo: newTransactionRepository(store),
		Ledger:          store,
		Auditor:         store,
	}
}
