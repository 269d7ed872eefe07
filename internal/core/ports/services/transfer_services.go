package services

import (
	"context"

	"github.com/SscSPs/meow_bank/internal/core/domain"
	"github.com/SscSPs/meow_bank/internal/dto"
	"github.com/SscSPs/meow_bank/internal/utils/pagination"
)

// TransferSvc moves money between two accounts.
type TransferSvc interface {
	// Transfer debits the source, credits the destination and appends one ledger
	// entry, all or nothing. Every successful call creates a new entry.
	Transfer(ctx context.Context, req dto.TransferRequest) (*domain.Transaction, error)
}

// TransactionReaderSvc defines read operations over the ledger.
type TransactionReaderSvc interface {
	GetTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error)

	// ListTransactionsByAccount returns the requested page of entries where the
	// account is source or destination, newest first.
	ListTransactionsByAccount(ctx context.Context, accountID int64, page int) ([]domain.Transaction, pagination.Page, error)
}

// TransferSvcFacade combines the transfer engine with ledger reads.
type TransferSvcFacade interface {
	TransferSvc
	TransactionReaderSvc
}
