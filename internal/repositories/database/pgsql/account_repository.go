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
)

const accountColumns = `id, account_number, type, balance, opening_balance, customer_id, created_at, last_updated_at`

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

func scanAccount(row pgx.Row) (models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.ID,
		&m.AccountNumber,
		&m.Type,
		&m.Balance,
		&m.OpeningBalance,
		&m.CustomerID,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

// FindAccountByID retrieves an account by its ID. Read committed isolation means
// a concurrent transfer is seen either entirely or not at all.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1;`

	m, err := scanAccount(r.Pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, storageError(fmt.Sprintf("find account %d", accountID), err)
	}

	account := mapping.ToDomainAccount(m)
	return &account, nil
}

// ListAccountsByCustomer retrieves a customer's accounts ordered by type descending, then id.
func (r *PgxAccountRepository) ListAccountsByCustomer(ctx context.Context, customerID int64) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE customer_id = $1 ORDER BY type DESC, id;`

	rows, err := r.Pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, storageError("list accounts", err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, storageError("scan account", err)
		}
		accounts = append(accounts, mapping.ToDomainAccount(m))
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("list accounts", err)
	}
	return accounts, nil
}

// SaveAccount inserts a new account, recording its balance as the opening balance.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	query := `
		INSERT INTO accounts (account_number, type, balance, opening_balance, customer_id)
		VALUES ($1, $2, $3, $3, $4)
		RETURNING ` + accountColumns + `;
	`

	row := mapping.ToModelAccount(account)
	m, err := scanAccount(r.Pool.QueryRow(ctx, query,
		row.AccountNumber,
		row.Type,
		row.Balance,
		row.CustomerID,
	))
	if err != nil {
		code, constraint, _ := pgCode(err)
		switch {
		case code == codeUniqueViolation && constraint == accountNumberConstraint:
			return nil, apperrors.ErrAccountNumberCollision
		case code == codeForeignKeyViolation:
			return nil, apperrors.ErrCustomerNotFound
		}
		return nil, storageError("save account", err)
	}

	saved := mapping.ToDomainAccount(m)
	return &saved, nil
}

// AdjustBalance applies delta in a single guarded UPDATE; the row lock taken by the
// statement serializes it against any other writer of the same account.
func (r *PgxAccountRepository) AdjustBalance(ctx context.Context, accountID int64, delta domain.Money) (domain.Money, error) {
	return adjustBalance(ctx, r.Pool, accountID, delta)
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func adjustBalance(ctx context.Context, q querier, accountID int64, delta domain.Money) (domain.Money, error) {
	query := `
		UPDATE accounts
		SET balance = balance + $2, last_updated_at = now()
		WHERE id = $1 AND balance + $2 >= 0
		RETURNING balance;
	`

	var m models.Account
	err := q.QueryRow(ctx, query, accountID, delta.Decimal()).Scan(&m.Balance)
	if err == nil {
		return mapping.ToDomainMoney(m.Balance), nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, storageError(fmt.Sprintf("adjust balance of account %d", accountID), err)
	}

	var exists bool
	err = q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM accounts WHERE id = $1);`, accountID).Scan(&exists)
	if err != nil {
		return 0, storageError(fmt.Sprintf("find account %d", accountID), err)
	}
	if !exists {
		return 0, apperrors.ErrAccountNotFound
	}
	return 0, apperrors.ErrInsufficientFunds
}
