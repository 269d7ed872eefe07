package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrBusinessRule indicates a well-formed request that the ledger rules reject.
var ErrBusinessRule = errors.New("business rule violation")

// ErrConflictRetryable indicates a conflict that may disappear on a fresh attempt.
var ErrConflictRetryable = errors.New("retryable conflict")

// ErrUnavailable indicates a storage or infrastructure failure. No partial effect
// has been applied, so callers may retry.
var ErrUnavailable = errors.New("service unavailable")

// Specific errors wrap one of the categories above so handlers can match either.
var (
	ErrNonPositiveAmount      = fmt.Errorf("%w: amount must be a positive number", ErrValidation)
	ErrInvalidAmount          = fmt.Errorf("%w: amount must have at most 2 decimal places", ErrBusinessRule)
	ErrSameAccount            = fmt.Errorf("%w: source and destination accounts must differ", ErrBusinessRule)
	ErrInsufficientFunds      = fmt.Errorf("%w: insufficient funds", ErrBusinessRule)
	ErrAccountNotFound        = fmt.Errorf("%w: account not found", ErrNotFound)
	ErrCustomerNotFound       = fmt.Errorf("%w: customer not found", ErrNotFound)
	ErrTransactionNotFound    = fmt.Errorf("%w: transaction not found", ErrNotFound)
	ErrAccountNumberCollision = fmt.Errorf("%w: account number already in use", ErrConflictRetryable)
	ErrAccountNumberExhausted = fmt.Errorf("%w: failed to create account number after 10 attempts", ErrValidation)
	ErrBalanceOverflow        = fmt.Errorf("%w: resulting balance exceeds the supported maximum", ErrValidation)
)

// AppError carries an HTTP-ish status code alongside the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// Unavailable tags an infrastructure error so that errors.Is(err, ErrUnavailable) holds.
func Unavailable(message string, err error) *AppError {
	return NewAppError(http.StatusServiceUnavailable, message, err)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports 503 AppErrors as ErrUnavailable.
func (e *AppError) Is(target error) bool {
	return target == ErrUnavailable && e.Code == http.StatusServiceUnavailable
}
