package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a row of the append-only transactions table.
type Transaction struct {
	ID          int64           `db:"id"`
	AccountFrom int64           `db:"account_from"`
	AccountTo   int64           `db:"account_to"`
	Amount      decimal.Decimal `db:"amount"`
	Message     *string         `db:"message"` // Nullable
	Type        string          `db:"type"`
	CreatedAt   time.Time       `db:"created_at"`

	// Joined from accounts on reads
	FromCustomerID int64 `db:"from_customer_id"`
	ToCustomerID   int64 `db:"to_customer_id"`
}
