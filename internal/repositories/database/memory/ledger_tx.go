package memory

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/meow_bank/internal/apperrors"
	"github.com/SscSPs/meow_bank/internal/core/domain"
	portsrepo "github.com/SscSPs/meow_bank/internal/core/ports/repositories"
	"github.com/SscSPs/meow_bank/internal/utils/accounting"
)

var errTxDone = errors.New("ledger transaction already finished")

var (
	_ portsrepo.LedgerStore   = (*Store)(nil)
	_ portsrepo.LedgerAuditor = (*Store)(nil)
	_ portsrepo.LedgerTx      = (*ledgerTx)(nil)
)

// ledgerTx stages balance changes and ledger entries and applies them at Commit.
// Locked accounts stay locked until Commit or Rollback.
type ledgerTx struct {
	store   *Store
	locked  map[int64]*accountSlot
	held    []*accountSlot
	pending map[int64]domain.Money
	staged  []domain.Transaction
	done    bool
}

// Begin starts a ledger transaction.
func (s *Store) Begin(ctx context.Context) (portsrepo.LedgerTx, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.Unavailable("failed to begin ledger transaction", err)
	}
	return &ledgerTx{
		store:   s,
		locked:  make(map[int64]*accountSlot, 2),
		pending: make(map[int64]domain.Money, 2),
	}, nil
}

func (tx *ledgerTx) LockAccount(ctx context.Context, accountID int64) (*domain.Account, error) {
	if tx.done {
		return nil, errTxDone
	}
	if slot, ok := tx.locked[accountID]; ok {
		account := slot.account
		account.Balance = tx.pending[accountID]
		return &account, nil
	}

	slot, err := tx.store.slot(accountID)
	if err != nil {
		return nil, err
	}
	if err := slot.acquire(ctx); err != nil {
		return nil, err
	}

	tx.locked[accountID] = slot
	tx.held = append(tx.held, slot)
	tx.pending[accountID] = slot.account.Balance

	account := slot.account
	return &account, nil
}

func (tx *ledgerTx) AdjustBalance(_ context.Context, accountID int64, delta domain.Money) (domain.Money, error) {
	if tx.done {
		return 0, errTxDone
	}
	balance, ok := tx.pending[accountID]
	if !ok {
		return 0, fmt.Errorf("account %d is not locked by this transaction", accountID)
	}
	next, err := accounting.ApplyDelta(balance, delta)
	if err != nil {
		return 0, err
	}
	tx.pending[accountID] = next
	return next, nil
}

func (tx *ledgerTx) InsertTransaction(_ context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	if tx.done {
		return nil, errTxDone
	}
	for _, id := range []int64{txn.AccountFrom, txn.AccountTo} {
		if _, ok := tx.locked[id]; !ok {
			return nil, fmt.Errorf("account %d is not locked by this transaction", id)
		}
	}
	txn.FromCustomerID = tx.locked[txn.AccountFrom].customerID
	txn.ToCustomerID = tx.locked[txn.AccountTo].customerID

	s := tx.store
	s.mu.Lock()
	s.nextTxnID++
	txn.ID = s.nextTxnID
	s.mu.Unlock()

	txn.CreatedAt = s.now()
	tx.staged = append(tx.staged, txn)
	return &txn, nil
}

// Commit publishes staged balances and ledger entries, then releases the locks.
// Nothing here can fail once the accounts are held, so ctx is not consulted.
func (tx *ledgerTx) Commit(_ context.Context) error {
	if tx.done {
		return errTxDone
	}

	s := tx.store
	now := s.now()
	for id, balance := range tx.pending {
		slot := tx.locked[id]
		if slot.account.Balance != balance {
			slot.account.Balance = balance
			slot.account.LastUpdatedAt = now
		}
	}

	s.mu.Lock()
	for _, txn := range tx.staged {
		s.txnIndex[txn.ID] = len(s.transactions)
		s.transactions = append(s.transactions, txn)
	}
	s.mu.Unlock()

	tx.finish()
	return nil
}

func (tx *ledgerTx) Rollback(_ context.Context) error {
	if tx.done {
		return nil
	}
	tx.finish()
	return nil
}

func (tx *ledgerTx) finish() {
	for i := len(tx.held) - 1; i >= 0; i-- {
		tx.held[i].release()
	}
	tx.held = nil
	tx.done = true
}

// SnapshotBalances holds every account lock (ascending id) while reading the ledger,
// so no transfer is half visible in the result.
func (s *Store) SnapshotBalances(ctx context.Context) ([]domain.Account, map[int64]domain.AccountFlows, error) {
	slots := s.slotsByID(nil)

	held := make([]*accountSlot, 0, len(slots))
	defer func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].release()
		}
	}()
	for _, slot := range slots {
		if err := slot.acquire(ctx); err != nil {
			return nil, nil, err
		}
		held = append(held, slot)
	}

	accounts := make([]domain.Account, 0, len(held))
	for _, slot := range held {
		accounts = append(accounts, slot.account)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	flows := make(map[int64]domain.AccountFlows)
	for _, txn := range s.transactions {
		accounting.AddFlows(flows, txn)
	}
	return accounts, flows, nil
}
