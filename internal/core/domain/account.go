package domain

// Account is a customer-owned balance. Balance is never negative and is only
// mutated by the transfer engine.
type Account struct {
	ID             int64  `json:"id"`            // Assigned by the store, immutable
	AccountNumber  string `json:"accountNumber"` // "dddd dddd dddd dddd", unique
	Type           string `json:"type"`          // Free form, e.g. "savings", "checking"
	Balance        Money  `json:"balance"`
	OpeningBalance Money  `json:"openingBalance"` // Balance at creation, used by reconciliation
	CustomerID     int64  `json:"customerId"`     // Owner for the account's lifetime
	AuditFields
}
