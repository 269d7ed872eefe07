package services

import (
	"context"

	"github.com/SscSPs/meow_bank/internal/core/domain"
	"github.com/SscSPs/meow_bank/internal/dto"
	"github.com/SscSPs/meow_bank/internal/utils/pagination"
)

// CustomerReaderSvc defines read operations for customer data
type CustomerReaderSvc interface {
	GetCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error)

	// ListCustomers returns the requested page of customers ordered by name.
	ListCustomers(ctx context.Context, page int) ([]domain.Customer, pagination.Page, error)
}

// CustomerWriterSvc defines write operations for customer data
type CustomerWriterSvc interface {
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error)
}

// CustomerSvcFacade combines all customer-related service interfaces
type CustomerSvcFacade interface {
	CustomerReaderSvc
	CustomerWriterSvc
}
