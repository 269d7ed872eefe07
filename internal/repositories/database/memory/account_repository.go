package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/meow_bank/internal/apperrors"
	"github.com/SscSPs/meow_bank/internal/core/domain"
	portsrepo "github.com/SscSPs/meow_bank/internal/core/ports/repositories"
	"github.com/SscSPs/meow_bank/internal/utils/accounting"
)

type accountRepository struct {
	store *Store
}

func newAccountRepository(store *Store) *accountRepository {
	return &accountRepository{store: store}
}

var _ portsrepo.AccountRepositoryFacade = (*accountRepository)(nil)

// FindAccountByID returns a copy of the account taken under its lock.
func (r *accountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	slot, err := r.store.slot(accountID)
	if err != nil {
		return nil, err
	}
	account, err := slot.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) ListAccountsByCustomer(ctx context.Context, customerID int64) ([]domain.Account, error) {
	slots := r.store.slotsByID(func(s *accountSlot) bool {
		return s.customerID == customerID
	})

	accounts := make([]domain.Account, 0, len(slots))
	for _, slot := range slots {
		account, err := slot.snapshot(ctx)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}

	// slots are already in id order
	sort.SliceStable(accounts, func(i, j int) bool {
		return accounts[i].Type > accounts[j].Type
	})
	return accounts, nil
}

// SaveAccount registers a new account. The opening balance is recorded from Balance.
func (r *accountRepository) SaveAccount(_ context.Context, account domain.Account) (*domain.Account, error) {
	if account.Balance < 0 {
		return nil, fmt.Errorf("%w: balance cannot be negative", apperrors.ErrValidation)
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.customers[account.CustomerID]; !ok {
		return nil, apperrors.ErrCustomerNotFound
	}
	if _, taken := s.accountNumbers[account.AccountNumber]; taken {
		return nil, apperrors.ErrAccountNumberCollision
	}

	s.nextAccountID++
	now := s.now()
	account.ID = s.nextAccountID
	account.OpeningBalance = account.Balance
	account.CreatedAt = now
	account.LastUpdatedAt = now

	s.accounts[account.ID] = newAccountSlot(account)
	s.accountNumbers[account.AccountNumber] = account.ID
	return &account, nil
}

// AdjustBalance applies delta while holding the account's lock.
func (r *accountRepository) AdjustBalance(ctx context.Context, accountID int64, delta domain.Money) (domain.Money, error) {
	slot, err := r.store.slot(accountID)
	if err != nil {
		return 0, err
	}
	if err := slot.acquire(ctx); err != nil {
		return 0, err
	}
	defer slot.release()

	next, err := accounting.ApplyDelta(slot.account.Balance, delta)
	if err != nil {
		return 0, err
	}
	slot.account.Balance = next
	slot.account.LastUpdatedAt = r.store.now()
	return next, nil
}
