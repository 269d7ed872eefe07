package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/meow_bank/internal/core/domain"
	portsrepo "github.com/SscSPs/meow_bank/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/meow_bank/internal/core/ports/services"
	"github.com/SscSPs/meow_bank/internal/utils/accounting"
)

// reconcileService recomputes balances from the ledger:
// expected = opening balance + credits - debits.
type reconcileService struct {
	BaseService
	auditor portsrepo.LedgerAuditor
	now     func() time.Time
}

func NewReconcileService(auditor portsrepo.LedgerAuditor) portssvc.ReconcileSvc {
	return &reconcileService{
		auditor: auditor,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

var _ portssvc.ReconcileSvc = (*reconcileService)(nil)

func (s *reconcileService) Reconcile(ctx context.Context) (*domain.ReconcileReport, error) {
	accounts, flows, err := s.auditor.SnapshotBalances(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to snapshot balances")
		return nil, err
	}

	report := &domain.ReconcileReport{
		CheckedAt:        s.now(),
		AccountsChecked:  len(accounts),
		Mismatches:       []domain.BalanceMismatch{},
		NegativeAccounts: []int64{},
	}

	for _, account := range accounts {
		report.TotalBalance += account.Balance
		if account.Balance < 0 {
			report.NegativeAccounts = append(report.NegativeAccounts, account.ID)
		}

		expected := accounting.ExpectedBalance(account.OpeningBalance, flows[account.ID])
		if expected != account.Balance {
			report.Mismatches = append(report.Mismatches, domain.BalanceMismatch{
				AccountID: account.ID,
				Stored:    account.Balance,
				Expected:  expected,
			})
		}
	}

	if !report.Healthy() {
		s.LogWarn(ctx, "Ledger reconciliation found inconsistencies",
			slog.Int("mismatches", len(report.Mismatches)),
			slog.Int("negative_accounts", len(report.NegativeAccounts)))
	}
	s.LogInfo(ctx, "Ledger reconciled",
		slog.Int("accounts_checked", report.AccountsChecked),
		slog.String("total_balance", report.TotalBalance.String()))
	return report, nil
}
