package dto

import (
	"time"

	"github.com/SscSPs/meow_bank/internal/core/domain"
	"github.com/SscSPs/meow_bank/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

// TransferRequest moves Amount from one account to another.
// Amount sign and precision are checked by the transfer engine.
type TransferRequest struct {
	FromAccountID int64           `json:"fromAccountId" binding:"required,gt=0"`
	ToAccountID   int64           `json:"toAccountId" binding:"required,gt=0"`
	Amount        decimal.Decimal `json:"amount" swaggertype:"number" example:"30.00"`
	Message       *string         `json:"message,omitempty" binding:"omitempty,max=255"`
}

// TransactionResponse defines the data returned for a ledger entry.
type TransactionResponse struct {
	TransactionID  int64        `json:"transactionId"`
	FromAccountID  int64        `json:"fromAccountId"`
	ToAccountID    int64        `json:"toAccountId"`
	FromCustomerID int64        `json:"fromCustomerId"`
	ToCustomerID   int64        `json:"toCustomerId"`
	Amount         domain.Money `json:"amount" swaggertype:"number" example:"30.00"`
	Message        *string      `json:"message,omitempty"`
	Type           string       `json:"type" example:"TRANSFER"`
	CreatedAt      time.Time    `json:"createdAt"`
}

// ListTransactionsResponse is one page of an account's ledger entries, newest first.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   pagination.Page       `json:"pagination"`
}

func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:  t.ID,
		FromAccountID:  t.AccountFrom,
		ToAccountID:    t.AccountTo,
		FromCustomerID: t.FromCustomerID,
		ToCustomerID:   t.ToCustomerID,
		Amount:         t.Amount,
		Message:        t.Message,
		Type:           string(t.Type),
		CreatedAt:      t.CreatedAt,
	}
}

func ToListTransactionsResponse(txns []domain.Transaction, page pagination.Page) ListTransactionsResponse {
	list := make([]TransactionResponse, len(txns))
	for i := range txns {
		list[i] = ToTransactionResponse(&txns[i])
	}
	return ListTransactionsResponse{Transactions: list, Pagination: page}
}
