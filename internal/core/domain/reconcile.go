package domain

import "time"

// BalanceMismatch describes an account whose stored balance disagrees with its ledger.
type BalanceMismatch struct {
	AccountID int64 `json:"accountId"`
	Stored    Money `json:"stored"`
	Expected  Money `json:"expected"`
}

// ReconcileReport is the outcome of one reconciliation pass.
type ReconcileReport struct {
	CheckedAt        time.Time         `json:"checkedAt"`
	AccountsChecked  int               `json:"accountsChecked"`
	TotalBalance     Money             `json:"totalBalance"`
	Mismatches       []BalanceMismatch `json:"mismatches"`
	NegativeAccounts []int64           `json:"negativeAccounts"`
}

// Healthy reports whether the pass found no inconsistencies.
func (r ReconcileReport) Healthy() bool {
	return len(r.Mismatches) == 0 && len(r.NegativeAccounts) == 0
}

// AccountFlows is the ledger total moved into and out of one account.
type AccountFlows struct {
	Credits Money
	Debits  Money
}
