package dto

import (
	"time"

	"github.com/SscSPs/meow_bank/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to open a new account.
type CreateAccountRequest struct {
	CustomerID     int64           `json:"customerId" binding:"required,gt=0"`
	InitialBalance decimal.Decimal `json:"initialBalance" swaggertype:"number" example:"100.00"`
	Type           string          `json:"type" binding:"required,max=32" example:"savings"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	ID            int64        `json:"id"`
	AccountNumber string       `json:"accountNumber" example:"1234 5678 9012 3456"`
	Type          string       `json:"type"`
	Balance       domain.Money `json:"balance" swaggertype:"number" example:"100.00"`
	CustomerID    int64        `json:"customerId"`
	CreatedAt     time.Time    `json:"createdAt"`
}

// ListAccountsResponse wraps a customer's accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		ID:            acc.ID,
		AccountNumber: acc.AccountNumber,
		Type:          acc.Type,
		Balance:       acc.Balance,
		CustomerID:    acc.CustomerID,
		CreatedAt:     acc.CreatedAt,
	}
}

// ToListAccountsResponse converts a slice of domain.Account to ListAccountsResponse DTO
func ToListAccountsResponse(accounts []domain.Account) ListAccountsResponse {
	list := make([]AccountResponse, len(accounts))
	for i := range accounts {
		list[i] = ToAccountResponse(&accounts[i])
	}
	return ListAccountsResponse{Accounts: list}
}
