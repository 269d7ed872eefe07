package dto

import (
	"time"

	"github.com/SscSPs/meow_bank/internal/core/domain"
	"github.com/SscSPs/meow_bank/internal/utils/pagination"
)

// CreateCustomerRequest defines the data needed to register a customer.
type CreateCustomerRequest struct {
	Name  string `json:"name" binding:"required,max=255" example:"Ada Lovelace"`
	Email string `json:"email" binding:"required,email,max=255" example:"ada@example.com"`
}

// CustomerResponse defines the data returned for a customer.
type CustomerResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListCustomersResponse is one page of customers.
type ListCustomersResponse struct {
	Customers  []CustomerResponse `json:"customers"`
	Pagination pagination.Page    `json:"pagination"`
}

func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
	}
}

func ToListCustomersResponse(customers []domain.Customer, page pagination.Page) ListCustomersResponse {
	list := make([]CustomerResponse, len(customers))
	for i := range customers {
		list[i] = ToCustomerResponse(&customers[i])
	}
	return ListCustomersResponse{Customers: list, Pagination: page}
}
