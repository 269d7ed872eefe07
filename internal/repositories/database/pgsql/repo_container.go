package pgsql

import (
	portsrepo "github.com/SscSPs/meow_bank/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	transactionRepo := newPgxTransactionRepository(dbPool)

	return portsrepo.RepositoryProvider{
		AccountRepo:     newPgxAccountRepository(dbPool),
		CustomerRepo:    newPgxCustomerRepository(dbPool),
		TransactionRepo: transactionRepo,
		Ledger:          newPgxLedgerStore(dbPool),
		Auditor:         transactionRepo,
	}
}
