package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/meow_bank/internal/apperrors"
	"github.com/SscSPs/meow_bank/internal/core/domain"
	portsrepo "github.com/SscSPs/meow_bank/internal/core/ports/repositories"
	"github.com/SscSPs/meow_bank/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxLedgerStore opens ledger transactions backed by row locks.
type PgxLedgerStore struct {
	BaseRepository
}

func newPgxLedgerStore(pool *pgxpool.Pool) *PgxLedgerStore {
	return &PgxLedgerStore{BaseRepository: BaseRepository{Pool: pool}}
}

var (
	_ portsrepo.LedgerStore = (*PgxLedgerStore)(nil)
	_ portsrepo.LedgerTx    = (*pgxLedgerTx)(nil)
)

type pgxLedgerTx struct {
	base   *BaseRepository
	tx     pgx.Tx
	locked map[int64]int64 // account id to owning customer id
}

// Begin opens a READ COMMITTED transaction. If ctx carries a deadline, lock waits
// inside the transaction are capped by it through lock_timeout.
func (s *PgxLedgerStore) Begin(ctx context.Context) (portsrepo.LedgerTx, error) {
	tx, err := s.BaseRepository.Begin(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, err
	}

	if deadline, ok := ctx.Deadline(); ok {
		ms := time.Until(deadline).Milliseconds()
		if ms < 1 {
			ms = 1
		}
		// SET does not accept bind parameters.
		if _, err := tx.Exec(ctx, fmt.Sprintf("SET LOCAL lock_timeout = %d", ms)); err != nil {
			_ = s.Rollback(context.WithoutCancel(ctx), tx)
			return nil, storageError("set lock timeout", err)
		}
	}

	return &pgxLedgerTx{base: &s.BaseRepository, tx: tx, locked: make(map[int64]int64, 2)}, nil
}

// LockAccount takes a row lock with SELECT ... FOR UPDATE.
func (t *pgxLedgerTx) LockAccount(ctx context.Context, accountID int64) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1 FOR UPDATE;`

	m, err := scanAccount(t.tx.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAccountNotFound
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, apperrors.Unavailable("timed out waiting for account lock", ctxErr)
		}
		return nil, storageError(fmt.Sprintf("lock account %d", accountID), err)
	}

	t.locked[accountID] = m.CustomerID
	account := mapping.ToDomainAccount(m)
	return &account, nil
}

func (t *pgxLedgerTx) AdjustBalance(ctx context.Context, accountID int64, delta domain.Money) (domain.Money, error) {
	if _, ok := t.locked[accountID]; !ok {
		return 0, fmt.Errorf("account %d is not locked by this transaction", accountID)
	}
	return adjustBalance(ctx, t.tx, accountID, delta)
}

// InsertTransaction appends a ledger row. created_at uses clock_timestamp() so it
// reflects the moment of application rather than the start of the transaction.
func (t *pgxLedgerTx) InsertTransaction(ctx context.Context, txn domain.Transaction) (*domain.Transaction, error) {
	query := `
		INSERT INTO transactions (account_from, account_to, amount, message, type, created_at)
		VALUES ($1, $2, $3, $4, $5, clock_timestamp())
		RETURNING ` + transactionColumns + `;
	`

	row := mapping.ToModelTransaction(txn)
	m, err := scanTransaction(t.tx.QueryRow(ctx, query,
		row.AccountFrom,
		row.AccountTo,
		row.Amount,
		row.Message,
		row.Type,
	))
	if err != nil {
		return nil, storageError("insert transaction", err)
	}

	m.FromCustomerID = t.locked[txn.AccountFrom]
	m.ToCustomerID = t.locked[txn.AccountTo]
	inserted := mapping.ToDomainTransaction(m)
	return &inserted, nil
}

func (t *pgxLedgerTx) Commit(ctx context.Context) error {
	return t.base.Commit(ctx, t.tx)
}

func (t *pgxLedgerTx) Rollback(ctx context.Context) error {
	return t.base.Rollback(ctx, t.tx)
}
