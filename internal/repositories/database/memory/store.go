// Package memory is an in-process implementation of the repository ports.
// Every account carries its own binary semaphore; all reads and writes of an
// account's balance happen while holding it.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/meow_bank/internal/apperrors"
	"github.com/SscSPs/meow_bank/internal/core/domain"
	"golang.org/x/sync/semaphore"
)

type accountSlot struct {
	id         int64
	customerID int64

	lock    *semaphore.Weighted
	account domain.Account // guarded by lock
}

func newAccountSlot(account domain.Account) *accountSlot {
	return &accountSlot{
		id:         account.ID,
		customerID: account.CustomerID,
		lock:       semaphore.NewWeighted(1),
		account:    account,
	}
}

// acquire blocks until the slot is free or ctx is done.
func (s *accountSlot) acquire(ctx context.Context) error {
	if err := s.lock.Acquire(ctx, 1); err != nil {
		return apperrors.Unavailable("timed out waiting for account lock", err)
	}
	return nil
}

func (s *accountSlot) release() {
	s.lock.Release(1)
}

// Store holds accounts, customers and the ledger in memory.
//
// Lock order: account slots are acquired before mu, never while holding it.
type Store struct {
	mu sync.RWMutex

	accounts       map[int64]*accountSlot
	accountNumbers map[string]int64
	nextAccountID  int64

	customers      map[int64]domain.Customer
	customerEmails map[string]int64
	nextCustomerID int64

	transactions []domain.Transaction
	txnIndex     map[int64]int
	nextTxnID    int64

	now func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for audit timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore creates an empty Store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		accounts:       make(map[int64]*accountSlot),
		accountNumbers: make(map[string]int64),
		customers:      make(map[int64]domain.Customer),
		customerEmails: make(map[string]int64),
		txnIndex:       make(map[int64]int),
		now:            func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) slot(accountID int64) (*accountSlot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	slot, ok := s.accounts[accountID]
	if !ok {
		return nil, apperrors.ErrAccountNotFound
	}
	return slot, nil
}

// slotsByID returns the slots matching keep ordered by ascending account id.
// A nil keep selects every account.
func (s *Store) slotsByID(keep func(*accountSlot) bool) []*accountSlot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	slots := make([]*accountSlot, 0, len(s.accounts))
	for _, slot := range s.accounts {
		if keep == nil || keep(slot) {
			slots = append(slots, slot)
		}
	}
	sort.Slice(slots, func(i, j int) bool {
		return slots[i].id < slots[j].id
	})
	return slots
}

// snapshot copies the account under its lock.
func (s *accountSlot) snapshot(ctx context.Context) (domain.Account, error) {
	if err := s.acquire(ctx); err != nil {
		return domain.Account{}, err
	}
	defer s.release()
	return s.account, nil
}
