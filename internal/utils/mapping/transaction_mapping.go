package mapping

import (
	"github.com/SscSPs/meow_bank/internal/core/domain"
	"github.com/SscSPs/meow_bank/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		ID:             d.ID,
		AccountFrom:    d.AccountFrom,
		AccountTo:      d.AccountTo,
		Amount:         d.Amount.Decimal(),
		Message:        d.Message,
		Type:           string(d.Type),
		CreatedAt:      d.CreatedAt,
		FromCustomerID: d.FromCustomerID,
		ToCustomerID:   d.ToCustomerID,
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		ID:             m.ID,
		AccountFrom:    m.AccountFrom,
		AccountTo:      m.AccountTo,
		FromCustomerID: m.FromCustomerID,
		ToCustomerID:   m.ToCustomerID,
		Amount:         ToDomainMoney(m.Amount),
		Message:        m.Message,
		Type:           domain.TransactionType(m.Type),
		CreatedAt:      m.CreatedAt,
	}
}
