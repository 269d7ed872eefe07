package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/meow_bank/internal/apperrors"
	"github.com/SscSPs/meow_bank/internal/core/domain"
	portssvc "github.com/SscSPs/meow_bank/internal/core/ports/services"
	"github.com/SscSPs/meow_bank/internal/core/services"
	"github.com/SscSPs/meow_bank/internal/dto"
	"github.com/SscSPs/meow_bank/internal/repositories/database/memory"
	"github.com/SscSPs/meow_bank/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// sequenceGenerator returns the given numbers in order, then keeps repeating the last.
func sequenceGenerator(numbers ...string) utils.AccountNumberGenerator {
	i := 0
	return func() (string, error) {
		n := numbers[min(i, len(numbers)-1)]
		i++
		return n, nil
	}
}

type AccountServiceTestSuite struct {
	suite.Suite
	ctx          context.Context
	accountRepo  *MockAccountRepository
	customerRepo *MockCustomerRepository
	service      portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.accountRepo = new(MockAccountRepository)
	suite.customerRepo = new(MockCustomerRepository)
	suite.service = services.NewAccountService(suite.accountRepo, suite.customerRepo)
}

func (suite *AccountServiceTestSuite) validRequest() dto.CreateAccountRequest {
	return dto.CreateAccountRequest{CustomerID: 1, InitialBalance: decimal.RequireFromString("100.50"), Type: "savings"}
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	suite.customerRepo.On("FindCustomerByID", suite.ctx, int64(1)).Return(&domain.Customer{ID: 1}, nil).Once()
	suite.accountRepo.On("SaveAccount", suite.ctx, mock.MatchedBy(func(a domain.Account) bool {
		return utils.AccountNumberPattern.MatchString(a.AccountNumber) &&
			a.Balance == 10050 && a.Type == "savings" && a.CustomerID == 1
	})).Return(&domain.Account{ID: 12, Balance: 10050, Type: "savings", CustomerID: 1}, nil).Once()

	account, err := suite.service.CreateAccount(suite.ctx, suite.validRequest())

	suite.Require().NoError(err)
	suite.Equal(int64(12), account.ID)
	suite.accountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_RetriesOnCollision() {
	svc := services.NewAccountService(suite.accountRepo, suite.customerRepo,
		services.WithAccountNumberGenerator(sequenceGenerator("1111 1111 1111 1111", "2222 2222 2222 2222", "3333 3333 3333 3333")),
	)
	suite.customerRepo.On("FindCustomerByID", suite.ctx, int64(1)).Return(&domain.Customer{ID: 1}, nil)
	suite.accountRepo.On("SaveAccount", suite.ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.AccountNumber != "3333 3333 3333 3333"
	})).Return(nil, apperrors.ErrAccountNumberCollision).Twice()
	suite.accountRepo.On("SaveAccount", suite.ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.AccountNumber == "3333 3333 3333 3333"
	})).Return(&domain.Account{ID: 1, AccountNumber: "3333 3333 3333 3333"}, nil).Once()

	account, err := svc.CreateAccount(suite.ctx, suite.validRequest())

	suite.Require().NoError(err)
	suite.Equal("3333 3333 3333 3333", account.AccountNumber)
	suite.accountRepo.AssertNumberOfCalls(suite.T(), "SaveAccount", 3)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_GivesUpAfterTenCollisions() {
	suite.customerRepo.On("FindCustomerByID", suite.ctx, int64(1)).Return(&domain.Customer{ID: 1}, nil)
	suite.accountRepo.On("SaveAccount", suite.ctx, mock.Anything).Return(nil, apperrors.ErrAccountNumberCollision)

	account, err := suite.service.CreateAccount(suite.ctx, suite.validRequest())

	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrAccountNumberExhausted)
	suite.Contains(err.Error(), "failed to create account number after 10 attempts")
	suite.accountRepo.AssertNumberOfCalls(suite.T(), "SaveAccount", services.AccountNumberAttempts)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_OtherErrorsAbortImmediately() {
	suite.customerRepo.On("FindCustomerByID", suite.ctx, int64(1)).Return(&domain.Customer{ID: 1}, nil)
	suite.accountRepo.On("SaveAccount", suite.ctx, mock.Anything).
		Return(nil, apperrors.Unavailable("save account failed", errors.New("connection reset"))).Once()

	_, err := suite.service.CreateAccount(suite.ctx, suite.validRequest())

	suite.ErrorIs(err, apperrors.ErrUnavailable)
	suite.accountRepo.AssertNumberOfCalls(suite.T(), "SaveAccount", 1)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_GeneratorFailureAborts() {
	svc := services.NewAccountService(suite.accountRepo, suite.customerRepo,
		services.WithAccountNumberGenerator(func() (string, error) { return "", errors.New("entropy unavailable") }),
	)
	suite.customerRepo.On("FindCustomerByID", suite.ctx, int64(1)).Return(&domain.Customer{ID: 1}, nil)

	_, err := svc.CreateAccount(suite.ctx, suite.validRequest())

	suite.ErrorContains(err, "entropy unavailable")
	suite.accountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_RejectsInvalidInput() {
	tests := []struct {
		name    string
		req     dto.CreateAccountRequest
		wantErr error
	}{
		{"negative balance", dto.CreateAccountRequest{CustomerID: 1, InitialBalance: decimal.NewFromInt(-1), Type: "savings"}, apperrors.ErrValidation},
		{"three decimals", dto.CreateAccountRequest{CustomerID: 1, InitialBalance: decimal.RequireFromString("1.001"), Type: "savings"}, apperrors.ErrValidation},
		{"blank type", dto.CreateAccountRequest{CustomerID: 1, Type: "   "}, apperrors.ErrValidation},
		{"missing customer id", dto.CreateAccountRequest{Type: "savings"}, apperrors.ErrValidation},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.service.CreateAccount(suite.ctx, tt.req)
			suite.ErrorIs(err, tt.wantErr)
		})
	}
	suite.customerRepo.AssertNotCalled(suite.T(), "FindCustomerByID", mock.Anything, mock.Anything)
	suite.accountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_UnknownCustomer() {
	suite.customerRepo.On("FindCustomerByID", suite.ctx, int64(1)).Return(nil, apperrors.ErrCustomerNotFound).Once()

	_, err := suite.service.CreateAccount(suite.ctx, suite.validRequest())

	suite.ErrorIs(err, apperrors.ErrCustomerNotFound)
	suite.accountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestGetAccountByID() {
	suite.accountRepo.On("FindAccountByID", suite.ctx, int64(5)).Return(&domain.Account{ID: 5, Balance: 700}, nil).Once()
	suite.accountRepo.On("FindAccountByID", suite.ctx, int64(6)).Return(nil, apperrors.ErrAccountNotFound).Once()

	account, err := suite.service.GetAccountByID(suite.ctx, 5)
	suite.Require().NoError(err)
	suite.Equal(domain.Money(700), account.Balance)

	_, err = suite.service.GetAccountByID(suite.ctx, 6)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AccountServiceTestSuite) TestListAccountsByCustomer() {
	suite.customerRepo.On("FindCustomerByID", suite.ctx, int64(1)).Return(&domain.Customer{ID: 1}, nil).Once()
	suite.accountRepo.On("ListAccountsByCustomer", suite.ctx, int64(1)).Return(nil, nil).Once()
	suite.customerRepo.On("FindCustomerByID", suite.ctx, int64(2)).Return(nil, apperrors.ErrCustomerNotFound).Once()

	accounts, err := suite.service.ListAccountsByCustomer(suite.ctx, 1)
	suite.Require().NoError(err)
	suite.NotNil(accounts)
	suite.Empty(accounts)

	_, err = suite.service.ListAccountsByCustomer(suite.ctx, 2)
	suite.ErrorIs(err, apperrors.ErrCustomerNotFound)
}

func (suite *AccountServiceTestSuite) TestGetCustomerAccount() {
	suite.accountRepo.On("FindAccountByID", suite.ctx, int64(5)).Return(&domain.Account{ID: 5, CustomerID: 1, Balance: 700}, nil).Twice()
	suite.accountRepo.On("FindAccountByID", suite.ctx, int64(6)).Return(nil, apperrors.ErrAccountNotFound).Once()

	account, err := suite.service.GetCustomerAccount(suite.ctx, 1, 5)
	suite.Require().NoError(err)
	suite.Equal(domain.Money(700), account.Balance)

	account, err = suite.service.GetCustomerAccount(suite.ctx, 2, 5)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrAccountNotFound)

	_, err = suite.service.GetCustomerAccount(suite.ctx, 1, 6)
	suite.ErrorIs(err, apperrors.ErrAccountNotFound)
	suite.accountRepo.AssertExpectations(suite.T())
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}

func TestCreateAccount_CollisionAgainstRealStore(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositoryProvider(memory.NewStore())
	customer, err := repos.CustomerRepo.SaveCustomer(ctx, domain.Customer{Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)

	taken := "4444 4444 4444 4444"
	svc := services.NewAccountService(repos.AccountRepo, repos.CustomerRepo,
		services.WithAccountNumberGenerator(sequenceGenerator(taken, taken, "5555 5555 5555 5555")),
	)

	first, err := svc.CreateAccount(ctx, dto.CreateAccountRequest{CustomerID: customer.ID, Type: "checking"})
	require.NoError(t, err)
	second, err := svc.CreateAccount(ctx, dto.CreateAccountRequest{CustomerID: customer.ID, Type: "checking"})
	require.NoError(t, err)

	assert.Equal(t, taken, first.AccountNumber)
	assert.Equal(t, "5555 5555 5555 5555", second.AccountNumber)
	assert.Equal(t, int64(2), second.ID)
}
