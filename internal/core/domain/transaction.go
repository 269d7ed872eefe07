package domain

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/SscSPs/meow_bank/internal/apperrors"
)

// TransactionType classifies a ledger entry.
type TransactionType string

const (
	TransferTransaction TransactionType = "TRANSFER"
)

// Transaction is an append-only ledger entry created by a committed transfer.
//
// FromCustomerID and ToCustomerID are the owners of the two accounts. They are
// filled in by the store and are not part of a transfer request.
type Transaction struct {
	ID             int64           `json:"id"`
	AccountFrom    int64           `json:"accountFrom"`
	AccountTo      int64           `json:"accountTo"`
	FromCustomerID int64           `json:"fromCustomerId"`
	ToCustomerID   int64           `json:"toCustomerId"`
	Amount         Money           `json:"amount"`
	Message        *string         `json:"message,omitempty"`
	Type           TransactionType `json:"type"`
	CreatedAt      time.Time       `json:"createdAt"` // Commit time
}

// TransferState tracks a transfer through the engine.
type TransferState string

const (
	TransferValidated TransferState = "VALIDATED"
	TransferLocked    TransferState = "LOCKED"
	TransferApplied   TransferState = "APPLIED"
	TransferCommitted TransferState = "COMMITTED"
	TransferRejected  TransferState = "REJECTED"
)

// MaxMessageLength bounds the optional transfer message.
const MaxMessageLength = 255

// Validate checks the invariants every ledger entry must satisfy before it is applied.
func (t Transaction) Validate() error {
	if t.AccountFrom <= 0 || t.AccountTo <= 0 {
		return fmt.Errorf("%w: account ids must be positive", apperrors.ErrValidation)
	}
	if t.AccountFrom == t.AccountTo {
		return apperrors.ErrSameAccount
	}
	if t.Amount <= 0 {
		return apperrors.ErrNonPositiveAmount
	}
	if t.Message != nil && utf8.RuneCountInString(*t.Message) > MaxMessageLength {
		return fmt.Errorf("%w: message must be at most %d characters", apperrors.ErrValidation, MaxMessageLength)
	}
	return nil
}
