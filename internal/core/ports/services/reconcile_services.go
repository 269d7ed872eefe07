package services

import (
	"context"

	"github.com/SscSPs/meow_bank/internal/core/domain"
)

// ReconcileSvc checks stored balances against the ledger.
type ReconcileSvc interface {
	Reconcile(ctx context.Context) (*domain.ReconcileReport, error)
}
