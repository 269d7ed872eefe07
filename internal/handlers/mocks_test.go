package handlers_test

import (
	"context"

	"github.com/SscSPs/meow_bank/internal/core/domain"
	portssvc "github.com/SscSPs/meow_bank/internal/core/ports/services"
	"github.com/SscSPs/meow_bank/internal/dto"
	"github.com/SscSPs/meow_bank/internal/utils/pagination"
	"github.com/stretchr/testify/mock"
)

type MockAccountService struct {
	mock.Mock
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

func (m *MockAccountService) GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetCustomerAccount(ctx context.Context, customerID, accountID int64) (*domain.Account, error) {
	args := m.Called(ctx, customerID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccountsByCustomer(ctx context.Context, customerID int64) ([]domain.Account, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

type MockCustomerService struct {
	mock.Mock
}

var _ portssvc.CustomerSvcFacade = (*MockCustomerService)(nil)

func (m *MockCustomerService) GetCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerService) ListCustomers(ctx context.Context, page int) ([]domain.Customer, pagination.Page, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, pagination.Page{}, args.Error(2)
	}
	return args.Get(0).([]domain.Customer), args.Get(1).(pagination.Page), args.Error(2)
}

func (m *MockCustomerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

type MockTransferService struct {
	mock.Mock
}

var _ portssvc.TransferSvcFacade = (*MockTransferService)(nil)

func (m *MockTransferService) Transfer(ctx context.Context, req dto.TransferRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransferService) GetTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransferService) ListTransactionsByAccount(ctx context.Context, accountID int64, page int) ([]domain.Transaction, pagination.Page, error) {
	args := m.Called(ctx, accountID, page)
	if args.Get(0) == nil {
		return nil, pagination.Page{}, args.Error(2)
	}
	return args.Get(0).([]domain.Transaction), args.Get(1).(pagination.Page), args.Error(2)
}

type MockReconcileService struct {
	mock.Mock
}

var _ portssvc.ReconcileSvc = (*MockReconcileService)(nil)

func (m *MockReconcileService) Reconcile(ctx context.Context) (*domain.ReconcileReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReconcileReport), args.Error(1)
}
