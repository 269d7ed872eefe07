package repositories

import (
	"context"

	"github.com/SscSPs/meow_bank/internal/core/domain"
)

// TransactionReader defines read operations over the append-only ledger.
// There is deliberately no writer outside LedgerTx.
type TransactionReader interface {
	// FindTransactionByID retrieves a ledger entry.
	FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error)

	// ListTransactionsByAccount retrieves entries where the account is source or destination,
	// newest first.
	ListTransactionsByAccount(ctx context.Context, accountID int64, limit int, offset int) ([]domain.Transaction, error)

	// CountTransactionsByAccount counts entries where the account is source or destination.
	CountTransactionsByAccount(ctx context.Context, accountID int64) (int, error)
}

// LedgerAuditor reads balances and ledger flows as one consistent view.
type LedgerAuditor interface {
	// SnapshotBalances returns every account (ordered by id) together with the total
	// credits and debits recorded against each account id.
	SnapshotBalances(ctx context.Context) ([]domain.Account, map[int64]domain.AccountFlows, error)
}
