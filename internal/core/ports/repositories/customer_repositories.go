package repositories

import (
	"context"

	"github.com/SscSPs/meow_bank/internal/core/domain"
)

// CustomerReader defines read operations for customer data
type CustomerReader interface {
	// FindCustomerByID retrieves a customer by its identifier.
	FindCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error)

	// ListCustomers retrieves a page of customers ordered by name.
	ListCustomers(ctx context.Context, limit int, offset int) ([]domain.Customer, error)

	// CountCustomers returns the total number of customers.
	CountCustomers(ctx context.Context) (int, error)
}

// CustomerWriter defines write operations for customer data
type CustomerWriter interface {
	// SaveCustomer persists a new customer. A duplicate email yields apperrors.ErrDuplicate.
	SaveCustomer(ctx context.Context, customer domain.Customer) (*domain.Customer, error)
}

// CustomerRepositoryFacade combines all customer-related repository interfaces
type CustomerRepositoryFacade interface {
	CustomerReader
	CustomerWriter
}
