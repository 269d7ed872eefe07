package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/meow_bank/internal/apperrors"
	"github.com/SscSPs/meow_bank/internal/core/domain"
	portsrepo "github.com/SscSPs/meow_bank/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/meow_bank/internal/core/ports/services"
	"github.com/SscSPs/meow_bank/internal/dto"
	"github.com/SscSPs/meow_bank/internal/utils"
	"github.com/SscSPs/meow_bank/internal/utils/retry"
)

// AccountNumberAttempts is how many account numbers are tried before giving up.
const AccountNumberAttempts = 10

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo  portsrepo.AccountRepositoryFacade
	customerRepo portsrepo.CustomerReader
	generate     utils.AccountNumberGenerator
}

// AccountOption is a functional option for configuring the account service
type AccountOption func(*accountService)

// WithAccountNumberGenerator replaces the random account number source.
func WithAccountNumberGenerator(gen utils.AccountNumberGenerator) AccountOption {
	return func(s *accountService) {
		s.generate = gen
	}
}

// NewAccountService creates a new account service with the provided options
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, customerRepo portsrepo.CustomerReader, options ...AccountOption) portssvc.AccountSvcFacade {
	svc := &accountService{
		accountRepo:  accountRepo,
		customerRepo: customerRepo,
		generate:     utils.GenerateAccountNumber,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure accountService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	req.Type = strings.TrimSpace(req.Type)
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	if req.InitialBalance.IsNegative() {
		return nil, fmt.Errorf("%w: initial balance cannot be negative", apperrors.ErrValidation)
	}
	balance, err := domain.MoneyFromDecimal(req.InitialBalance)
	if err != nil {
		return nil, fmt.Errorf("%w: initial balance must have at most 2 decimal places", apperrors.ErrValidation)
	}

	if _, err := s.customerRepo.FindCustomerByID(ctx, req.CustomerID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find customer", slog.Int64("customer_id", req.CustomerID))
		}
		return nil, err
	}

	var created *domain.Account
	attempt := 0
	err = retry.Bounded(ctx, AccountNumberAttempts, func() error {
		attempt++
		number, err := s.generate()
		if err != nil {
			return fmt.Errorf("failed to generate account number: %w", err)
		}

		account, err := s.accountRepo.SaveAccount(ctx, domain.Account{
			AccountNumber: number,
			Type:          req.Type,
			Balance:       balance,
			CustomerID:    req.CustomerID,
		})
		if err != nil {
			if errors.Is(err, apperrors.ErrAccountNumberCollision) {
				s.LogDebug(ctx, "Account number collision, retrying", slog.Int("attempt", attempt))
			}
			return err
		}
		created = account
		return nil
	}, isAccountNumberCollision)

	switch {
	case err == nil:
	case errors.Is(err, retry.ErrRetryExhausted):
		s.LogError(ctx, err, "Account number space exhausted", slog.Int64("customer_id", req.CustomerID))
		return nil, apperrors.ErrAccountNumberExhausted
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return nil, apperrors.Unavailable("account creation aborted", err)
	default:
		s.LogError(ctx, err, "Failed to save account", slog.Int64("customer_id", req.CustomerID))
		return nil, err
	}

	s.LogInfo(ctx, "Account created",
		slog.Int64("account_id", created.ID),
		slog.Int64("customer_id", created.CustomerID),
		slog.Int("attempts", attempt))
	return created, nil
}

func isAccountNumberCollision(err error) bool {
	return errors.Is(err, apperrors.ErrAccountNumberCollision)
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		// Note: Don't log if error is ErrNotFound, as it's an expected outcome
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by ID", slog.Int64("account_id", accountID))
		}
		return nil, err
	}
	s.LogDebug(ctx, "Account retrieved", slog.Int64("account_id", account.ID))
	return account, nil
}

func (s *accountService) ListAccountsByCustomer(ctx context.Context, customerID int64) ([]domain.Account, error) {
	if _, err := s.customerRepo.FindCustomerByID(ctx, customerID); err != nil {
		return nil, err
	}

	accounts, err := s.accountRepo.ListAccountsByCustomer(ctx, customerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.Int64("customer_id", customerID))
		return nil, err
	}

	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

// GetCustomerAccount reports an account owned by someone else as not found.
func (s *accountService) GetCustomerAccount(ctx context.Context, customerID, accountID int64) (*domain.Account, error) {
	account, err := s.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.CustomerID != customerID {
		s.LogDebug(ctx, "Account belongs to another customer",
			slog.Int64("customer_id", customerID),
			slog.Int64("account_id", accountID))
		return nil, apperrors.ErrAccountNotFound
	}
	return account, nil
}
