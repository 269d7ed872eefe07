package pgsql

import (
	"errors"
	"fmt"

	"github.com/SscSPs/meow_bank/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres error codes the repositories react to.
const (
	codeUniqueViolation      = "23505"
	codeForeignKeyViolation  = "23503"
	codeCheckViolation       = "23514"
	codeNumericOutOfRange    = "22003"
	codeLockNotAvailable     = "55P03"
	codeDeadlockDetected     = "40P01"
	codeSerializationFailure = "40001"
	codeQueryCanceled        = "57014"
)

const accountNumberConstraint = "accounts_account_number_key"

func pgCode(err error) (string, string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName, true
	}
	return "", "", false
}

// storageError classifies a driver error. Constraint violations that carry domain
// meaning become domain errors; everything else is a retryable storage failure.
func storageError(op string, err error) error {
	code, _, ok := pgCode(err)
	if ok {
		switch code {
		case codeNumericOutOfRange:
			return fmt.Errorf("%w: amount out of range", apperrors.ErrValidation)
		case codeCheckViolation:
			return fmt.Errorf("%w: %s rejected by ledger constraints", apperrors.ErrBusinessRule, op)
		case codeLockNotAvailable, codeDeadlockDetected, codeSerializationFailure, codeQueryCanceled:
			return apperrors.Unavailable(op+": lock wait aborted", err)
		}
	}
	return apperrors.Unavailable(op+" failed", err)
}
