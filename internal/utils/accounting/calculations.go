// Package accounting holds the ledger arithmetic shared by the in-memory store and the
// reconciliation service.
package accounting

import (
	"math"

	"github.com/SscSPs/meow_bank/internal/apperrors"
	"github.com/SscSPs/meow_bank/internal/core/domain"
)

// ApplyDelta returns balance+delta. Credits that would overflow Money fail with
// ErrBalanceOverflow and debits below zero fail with ErrInsufficientFunds.
func ApplyDelta(balance, delta domain.Money) (domain.Money, error) {
	if delta > 0 && balance > math.MaxInt64-delta {
		return 0, apperrors.ErrBalanceOverflow
	}
	next := balance + delta
	if next < 0 {
		return 0, apperrors.ErrInsufficientFunds
	}
	return next, nil
}

// AddFlows records txn as a debit of its source and a credit of its destination.
func AddFlows(flows map[int64]domain.AccountFlows, txn domain.Transaction) {
	from := flows[txn.AccountFrom]
	from.Debits += txn.Amount
	flows[txn.AccountFrom] = from

	to := flows[txn.AccountTo]
	to.Credits += txn.Amount
	flows[txn.AccountTo] = to
}

// ExpectedBalance is the balance an account must hold given its opening
// balance and everything the ledger moved in and out of it.
func ExpectedBalance(opening domain.Money, f domain.AccountFlows) domain.Money {
	return opening + f.Credits - f.Debits
}
