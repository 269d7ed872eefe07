package memory

import (
	"context"

	"github.com/SscSPs/meow_bank/internal/apperrors"
	"github.com/SscSPs/meow_bank/internal/core/domain"
	portsrepo "github.com/SscSPs/meow_bank/internal/core/ports/repositories"
)

type transactionRepository struct {
	store *Store
}

func newTransactionRepository(store *Store) *transactionRepository {
	return &transactionRepository{store: store}
}

var _ portsrepo.TransactionReader = (*transactionRepository)(nil)

func (r *transactionRepository) FindTransactionByID(_ context.Context, transactionID int64) (*domain.Transaction, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	idx, ok := r.store.txnIndex[transactionID]
	if !ok {
		return nil, apperrors.ErrTransactionNotFound
	}
	txn := r.store.transactions[idx]
	return &txn, nil
}

// ListTransactionsByAccount walks the ledger backwards so the newest commit comes first.
func (r *transactionRepository) ListTransactionsByAccount(_ context.Context, accountID int64, limit int, offset int) ([]domain.Transaction, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var matched []domain.Transaction
	for i := len(r.store.transactions) - 1; i >= 0; i-- {
		txn := r.store.transactions[i]
		if txn.AccountFrom == accountID || txn.AccountTo == accountID {
			matched = append(matched, txn)
		}
	}
	return window(matched, limit, offset), nil
}

func (r *transactionRepository) CountTransactionsByAccount(_ context.Context, accountID int64) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	count := 0
	for _, txn := range r.store.transactions {
		if txn.AccountFrom == accountID || txn.AccountTo == accountID {
			count++
		}
	}
	return count, nil
}
