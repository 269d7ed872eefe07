package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/meow_bank/internal/apperrors"
	"github.com/SscSPs/meow_bank/internal/core/domain"
	"github.com/SscSPs/meow_bank/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReconcile_ReportsMismatchesAndNegativeBalances(t *testing.T) {
	auditor := new(MockLedgerAuditor)
	auditor.On("SnapshotBalances", mock.Anything).Return(
		[]domain.Account{
			{ID: 1, OpeningBalance: 5000, Balance: 2000},
			{ID: 2, OpeningBalance: 2000, Balance: 5000},
			{ID: 3, OpeningBalance: 1000, Balance: 900},
			{ID: 4, OpeningBalance: 0, Balance: -100},
		},
		map[int64]domain.AccountFlows{
			1: {Debits: 3000},
			2: {Credits: 3000},
			4: {Debits: 100},
		},
		nil,
	).Once()

	report, err := services.NewReconcileService(auditor).Reconcile(context.Background())

	require.NoError(t, err)
	assert.False(t, report.Healthy())
	assert.Equal(t, 4, report.AccountsChecked)
	assert.Equal(t, domain.Money(7800), report.TotalBalance)
	assert.Equal(t, []domain.BalanceMismatch{{AccountID: 3, Stored: 900, Expected: 1000}}, report.Mismatches)
	assert.Equal(t, []int64{4}, report.NegativeAccounts)
}

func TestReconcile_HealthyLedger(t *testing.T) {
	auditor := new(MockLedgerAuditor)
	auditor.On("SnapshotBalances", mock.Anything).Return(
		[]domain.Account{{ID: 1, OpeningBalance: 100, Balance: 100}},
		map[int64]domain.AccountFlows{},
		nil,
	).Once()

	report, err := services.NewReconcileService(auditor).Reconcile(context.Background())

	require.NoError(t, err)
	assert.True(t, report.Healthy())
	assert.NotNil(t, report.Mismatches)
	assert.False(t, report.CheckedAt.IsZero())
}

func TestReconcile_PropagatesStorageFailure(t *testing.T) {
	auditor := new(MockLedgerAuditor)
	auditor.On("SnapshotBalances", mock.Anything).Return(nil, nil, apperrors.Unavailable("snapshot accounts failed", errors.New("timeout"))).Once()

	_, err := services.NewReconcileService(auditor).Reconcile(context.Background())

	assert.ErrorIs(t, err, apperrors.ErrUnavailable)
}
