package mapping

import (
	"github.com/SscSPs/meow_bank/internal/core/domain"
	"github.com/SscSPs/meow_bank/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		ID:             d.ID,
		AccountNumber:  d.AccountNumber,
		Type:           d.Type,
		Balance:        d.Balance.Decimal(),
		OpeningBalance: d.OpeningBalance.Decimal(),
		CustomerID:     d.CustomerID,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		ID:             m.ID,
		AccountNumber:  m.AccountNumber,
		Type:           m.Type,
		Balance:        ToDomainMoney(m.Balance),
		OpeningBalance: ToDomainMoney(m.OpeningBalance),
		CustomerID:     m.CustomerID,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainMoney converts a NUMERIC(19,2) column value. The column scale
// guarantees at most two decimals.
func ToDomainMoney(d decimal.Decimal) domain.Money {
	return domain.Money(d.Shift(2).IntPart())
}
