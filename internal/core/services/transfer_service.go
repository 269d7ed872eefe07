package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/meow_bank/internal/apperrors"
	"github.com/SscSPs/meow_bank/internal/core/domain"
	portsrepo "github.com/SscSPs/meow_bank/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/meow_bank/internal/core/ports/services"
	"github.com/SscSPs/meow_bank/internal/dto"
	"github.com/SscSPs/meow_bank/internal/utils/pagination"
)

// DefaultLockTimeout bounds how long a transfer waits for its account locks.
const DefaultLockTimeout = 5 * time.Second

// transferService is the transfer engine. It owns lock ordering and the
// all-or-nothing application of a transfer.
type transferService struct {
	BaseService
	ledger      portsrepo.LedgerStore
	txnRepo     portsrepo.TransactionReader
	accountRepo portsrepo.AccountReader
	lockTimeout time.Duration
	pageSize    int
}

// TransferOption is a functional option for configuring the transfer service
type TransferOption func(*transferService)

// WithLockTimeout caps the wait for account locks. Zero or less disables the cap,
// leaving only the caller's context.
func WithLockTimeout(d time.Duration) TransferOption {
	return func(s *transferService) {
		s.lockTimeout = d
	}
}

// WithTransactionPageSize sets the page size used when listing ledger entries.
func WithTransactionPageSize(size int) TransferOption {
	return func(s *transferService) {
		s.pageSize = size
	}
}

// NewTransferService creates the transfer engine.
func NewTransferService(ledger portsrepo.LedgerStore, txnRepo portsrepo.TransactionReader, accountRepo portsrepo.AccountReader, options ...TransferOption) portssvc.TransferSvcFacade {
	svc := &transferService{
		ledger:      ledger,
		txnRepo:     txnRepo,
		accountRepo: accountRepo,
		lockTimeout: DefaultLockTimeout,
		pageSize:    pagination.DefaultPageSize,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.TransferSvcFacade = (*transferService)(nil)

// newTransfer validates a request and converts it into the ledger entry to append.
func newTransfer(req dto.TransferRequest) (domain.Transaction, error) {
	if err := dto.Validate(req); err != nil {
		return domain.Transaction{}, err
	}
	if req.FromAccountID == req.ToAccountID {
		return domain.Transaction{}, apperrors.ErrSameAccount
	}
	if !req.Amount.IsPositive() {
		return domain.Transaction{}, apperrors.ErrNonPositiveAmount
	}
	amount, err := domain.MoneyFromDecimal(req.Amount)
	if err != nil {
		return domain.Transaction{}, err
	}

	txn := domain.Transaction{
		AccountFrom: req.FromAccountID,
		AccountTo:   req.ToAccountID,
		Amount:      amount,
		Message:     req.Message,
		Type:        domain.TransferTransaction,
	}
	return txn, txn.Validate()
}

// lockOrder returns the two account ids in ascending order. Every transfer locks
// in this order, so two transfers can never wait on each other in a cycle.
func lockOrder(a, b int64) [2]int64 {
	if a < b {
		return [2]int64{a, b}
	}
	return [2]int64{b, a}
}

func (s *transferService) Transfer(ctx context.Context, req dto.TransferRequest) (*domain.Transaction, error) {
	attrs := []any{
		slog.Int64("from_account_id", req.FromAccountID),
		slog.Int64("to_account_id", req.ToAccountID),
		slog.String("amount", req.Amount.String()),
	}

	txn, err := newTransfer(req)
	if err != nil {
		s.LogDebug(ctx, "Transfer rejected", append(attrs, slog.String("state", string(domain.TransferRejected)), slog.String("reason", err.Error()))...)
		return nil, err
	}
	s.LogDebug(ctx, "Transfer validated", append(attrs, slog.String("state", string(domain.TransferValidated)))...)

	lockCtx := ctx
	if s.lockTimeout > 0 {
		var cancel context.CancelFunc
		lockCtx, cancel = context.WithTimeout(ctx, s.lockTimeout)
		defer cancel()
	}

	tx, err := s.ledger.Begin(lockCtx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin ledger transaction", attrs...)
		return nil, err
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := tx.Rollback(context.WithoutCancel(ctx)); rbErr != nil {
			s.LogError(ctx, rbErr, "Failed to roll back transfer", attrs...)
		}
	}()

	var source *domain.Account
	for _, id := range lockOrder(txn.AccountFrom, txn.AccountTo) {
		account, err := tx.LockAccount(lockCtx, id)
		if err != nil {
			s.logRejection(ctx, err, "Failed to lock account", append(attrs, slog.Int64("account_id", id))...)
			return nil, err
		}
		if id == txn.AccountFrom {
			source = account
		}
	}
	s.LogDebug(ctx, "Transfer locked", append(attrs, slog.String("state", string(domain.TransferLocked)))...)

	if source.Balance < txn.Amount {
		s.LogDebug(ctx, "Transfer rejected", append(attrs, slog.String("state", string(domain.TransferRejected)), slog.String("reason", "insufficient funds"))...)
		return nil, apperrors.ErrInsufficientFunds
	}

	if _, err := tx.AdjustBalance(ctx, txn.AccountFrom, -txn.Amount); err != nil {
		s.logRejection(ctx, err, "Failed to debit source account", attrs...)
		return nil, err
	}
	if _, err := tx.AdjustBalance(ctx, txn.AccountTo, txn.Amount); err != nil {
		s.logRejection(ctx, err, "Failed to credit destination account", attrs...)
		return nil, err
	}
	saved, err := tx.InsertTransaction(ctx, txn)
	if err != nil {
		s.logRejection(ctx, err, "Failed to record transaction", attrs...)
		return nil, err
	}
	s.LogDebug(ctx, "Transfer applied", append(attrs, slog.String("state", string(domain.TransferApplied)))...)

	// Once applied the transfer must commit, even if the caller has gone away.
	if err := tx.Commit(context.WithoutCancel(ctx)); err != nil {
		s.LogError(ctx, err, "Failed to commit transfer", attrs...)
		return nil, err
	}
	committed = true

	s.LogInfo(ctx, "Transfer committed", append(attrs,
		slog.String("state", string(domain.TransferCommitted)),
		slog.Int64("transaction_id", saved.ID))...)
	return saved, nil
}

// logRejection logs storage failures as errors and expected outcomes at debug.
func (s *transferService) logRejection(ctx context.Context, err error, msg string, attrs ...any) {
	if errors.Is(err, apperrors.ErrUnavailable) || !isDomainError(err) {
		s.LogError(ctx, err, msg, attrs...)
		return
	}
	s.LogDebug(ctx, msg, append(attrs, slog.String("state", string(domain.TransferRejected)), slog.String("reason", err.Error()))...)
}

func isDomainError(err error) bool {
	return errors.Is(err, apperrors.ErrNotFound) ||
		errors.Is(err, apperrors.ErrValidation) ||
		errors.Is(err, apperrors.ErrBusinessRule)
}

func (s *transferService) GetTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction", slog.Int64("transaction_id", transactionID))
		}
		return nil, err
	}
	return txn, nil
}

func (s *transferService) ListTransactionsByAccount(ctx context.Context, accountID int64, page int) ([]domain.Transaction, pagination.Page, error) {
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return nil, pagination.Page{}, err
	}

	total, err := s.txnRepo.CountTransactionsByAccount(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count transactions", slog.Int64("account_id", accountID))
		return nil, pagination.Page{}, err
	}

	p, err := pagination.NewPage(page, s.pageSize, total)
	if err != nil {
		return nil, pagination.Page{}, err
	}

	txns, err := s.txnRepo.ListTransactionsByAccount(ctx, accountID, p.Limit(), p.Offset())
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.Int64("account_id", accountID))
		return nil, pagination.Page{}, err
	}

	s.LogDebug(ctx, "Transactions listed", slog.Int64("account_id", accountID), slog.Int("count", len(txns)))
	return txns, p, nil
}
