package models

import (
	"github.com/shopspring/decimal"
)

// Account is a row of the accounts table. Balances are stored as NUMERIC(19,2).
type Account struct {
	ID             int64           `db:"id"`
	AccountNumber  string          `db:"account_number"`
	Type           string          `db:"type"`
	Balance        decimal.Decimal `db:"balance"`
	OpeningBalance decimal.Decimal `db:"opening_balance"`
	CustomerID     int64           `db:"customer_id"`
	AuditFields
}
