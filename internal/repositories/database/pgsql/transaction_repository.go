package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/meow_bank/internal/apperrors"
	"github.com/SscSPs/meow_bank/internal/core/domain"
	portsrepo "github.com/SscSPs/meow_bank/internal/core/ports/repositories"
	"github.com/SscSPs/meow_bank/internal/models"
	"github.com/SscSPs/meow_bank/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const transactionColumns = `id, account_from, account_to, amount, message, type, created_at`

// transactionDetails selects a ledger row with the owners of both accounts.
const transactionDetails = `
	SELECT t.id, t.account_from, t.account_to, t.amount, t.message, t.type, t.created_at,
		src.customer_id, dst.customer_id
	FROM transactions t
	JOIN accounts src ON src.id = t.account_from
	JOIN accounts dst ON dst.id = t.account_to`

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) *PgxTransactionRepository {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var (
	_ portsrepo.TransactionReader = (*PgxTransactionRepository)(nil)
	_ portsrepo.LedgerAuditor     = (*PgxTransactionRepository)(nil)
)

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(&m.ID, &m.AccountFrom, &m.AccountTo, &m.Amount, &m.Message, &m.Type, &m.CreatedAt)
	return m, err
}

func scanTransactionDetails(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(&m.ID, &m.AccountFrom, &m.AccountTo, &m.Amount, &m.Message, &m.Type, &m.CreatedAt,
		&m.FromCustomerID, &m.ToCustomerID)
	return m, err
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	query := transactionDetails + ` WHERE t.id = $1;`

	m, err := scanTransactionDetails(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, storageError(fmt.Sprintf("find transaction %d", transactionID), err)
	}

	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

// ListTransactionsByAccount returns entries touching the account, newest first.
func (r *PgxTransactionRepository) ListTransactionsByAccount(ctx context.Context, accountID int64, limit int, offset int) ([]domain.Transaction, error) {
	query := transactionDetails + `
		WHERE t.account_from = $1 OR t.account_to = $1
		ORDER BY t.created_at DESC, t.id DESC
		LIMIT $2 OFFSET $3;
	`

	rows, err := r.Pool.Query(ctx, query, accountID, limit, offset)
	if err != nil {
		return nil, storageError("list transactions", err)
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		m, err := scanTransactionDetails(rows)
		if err != nil {
			return nil, storageError("scan transaction", err)
		}
		txns = append(txns, mapping.ToDomainTransaction(m))
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("list transactions", err)
	}
	return txns, nil
}

func (r *PgxTransactionRepository) CountTransactionsByAccount(ctx context.Context, accountID int64) (int, error) {
	query := `SELECT COUNT(*) FROM transactions WHERE account_from = $1 OR account_to = $1;`

	var count int
	if err := r.Pool.QueryRow(ctx, query, accountID).Scan(&count); err != nil {
		return 0, storageError("count transactions", err)
	}
	return count, nil
}

// SnapshotBalances reads accounts and ledger totals inside one REPEATABLE READ,
// read-only transaction so both queries see the same committed state.
func (r *PgxTransactionRepository) SnapshotBalances(ctx context.Context) ([]domain.Account, map[int64]domain.AccountFlows, error) {
	tx, err := r.Begin(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, nil, err
	}
	defer r.Rollback(ctx, tx)

	rows, err := tx.Query(ctx, `SELECT `+accountColumns+` FROM accounts ORDER BY id;`)
	if err != nil {
		return nil, nil, storageError("snapshot accounts", err)
	}
	accounts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Account, error) {
		m, err := scanAccount(row)
		return mapping.ToDomainAccount(m), err
	})
	if err != nil {
		return nil, nil, storageError("snapshot accounts", err)
	}

	query := `
		SELECT account_id, SUM(credit), SUM(debit)
		FROM (
			SELECT account_to AS account_id, amount AS credit, 0 AS debit FROM transactions
			UNION ALL
			SELECT account_from AS account_id, 0 AS credit, amount AS debit FROM transactions
		) flows
		GROUP BY account_id;
	`
	rows, err = tx.Query(ctx, query)
	if err != nil {
		return nil, nil, storageError("snapshot ledger", err)
	}
	defer rows.Close()

	flows := make(map[int64]domain.AccountFlows)
	for rows.Next() {
		var (
			accountID       int64
			credits, debits decimal.Decimal
		)
		if err := rows.Scan(&accountID, &credits, &debits); err != nil {
			return nil, nil, storageError("scan ledger totals", err)
		}
		flows[accountID] = domain.AccountFlows{Credits: mapping.ToDomainMoney(credits), Debits: mapping.ToDomainMoney(debits)}
	}
	if err := rows.Err(); err != nil {
		return nil, nil, storageError("snapshot ledger", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, nil, err
	}
	return accounts, flows, nil
}
