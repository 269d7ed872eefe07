package repositories

import (
	"context"

	"github.com/SscSPs/meow_bank/internal/core/domain"
)

// LedgerStore opens units of work that mutate balances and append ledger entries.
type LedgerStore interface {
	// Begin starts a new ledger transaction.
	Begin(ctx context.Context) (LedgerTx, error)
}

// LedgerTx is a single all-or-nothing unit of work. Accounts must be locked
// before they are adjusted; locks are held until Commit or Rollback.
type LedgerTx interface {
	// LockAccount acquires exclusive access to an account and returns its current state.
	// It blocks until the lock is granted or ctx is done.
	LockAccount(ctx context.Context, accountID int64) (*domain.Account, error)

	// AdjustBalance applies delta to a locked account and returns the resulting balance.
	AdjustBalance(ctx context.Context, accountID int64, delta domain.Money) (domain.Money, error)

	// InsertTransaction appends a ledger entry and returns it with ID and CreatedAt assigned.
	InsertTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error)

	// Commit makes all changes visible atomically and releases the locks.
	Commit(ctx context.Context) error

	// Rollback discards all changes and releases the locks. It is a no-op after Commit.
	Rollback(ctx context.Context) error
}
