package repositories

import (
	"context"

	"github.com/SscSPs/meow_bank/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its identifier.
	// It never observes a half-applied transfer.
	FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)

	// ListAccountsByCustomer retrieves a customer's accounts ordered by type (descending) then id.
	ListAccountsByCustomer(ctx context.Context, customerID int64) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account and returns it with its assigned ID.
	// A duplicate account number yields apperrors.ErrAccountNumberCollision.
	SaveAccount(ctx context.Context, account domain.Account) (*domain.Account, error)

	// AdjustBalance atomically applies delta to a single account and returns the new balance.
	// The read-modify-write never interleaves with another mutation of the same account.
	AdjustBalance(ctx context.Context, accountID int64, delta domain.Money) (domain.Money, error)
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
