package services

import (
	"context"

	"github.com/SscSPs/meow_bank/internal/core/domain"
	"github.com/SscSPs/meow_bank/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account by its identifier.
	GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)

	// ListAccountsByCustomer retrieves all accounts owned by an existing customer.
	ListAccountsByCustomer(ctx context.Context, customerID int64) ([]domain.Account, error)

	// GetCustomerAccount retrieves an account only if customerID owns it.
	GetCustomerAccount(ctx context.Context, customerID, accountID int64) (*domain.Account, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount opens an account with a freshly generated account number.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
