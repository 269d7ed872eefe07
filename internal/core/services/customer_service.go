package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/SscSPs/meow_bank/internal/apperrors"
	"github.com/SscSPs/meow_bank/internal/core/domain"
	portsrepo "github.com/SscSPs/meow_bank/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/meow_bank/internal/core/ports/services"
	"github.com/SscSPs/meow_bank/internal/dto"
	"github.com/SscSPs/meow_bank/internal/utils/pagination"
)

type customerService struct {
	BaseService
	customerRepo portsrepo.CustomerRepositoryFacade
	pageSize     int
}

// CustomerOption is a functional option for configuring the customer service
type CustomerOption func(*customerService)

// WithCustomerPageSize sets the page size used when listing customers.
func WithCustomerPageSize(size int) CustomerOption {
	return func(s *customerService) {
		s.pageSize = size
	}
}

func NewCustomerService(repo portsrepo.CustomerRepositoryFacade, options ...CustomerOption) portssvc.CustomerSvcFacade {
	svc := &customerService{
		customerRepo: repo,
		pageSize:     pagination.DefaultPageSize,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.CustomerSvcFacade = (*customerService)(nil)

// CreateCustomer stores the email lower-cased so uniqueness ignores case.
func (s *customerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest) (*domain.Customer, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.SaveCustomer(ctx, domain.Customer{Name: req.Name, Email: req.Email})
	if err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save customer")
		}
		return nil, err
	}

	s.LogInfo(ctx, "Customer created", slog.Int64("customer_id", customer.ID))
	return customer, nil
}

func (s *customerService) GetCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find customer", slog.Int64("customer_id", customerID))
		}
		return nil, err
	}
	return customer, nil
}

func (s *customerService) ListCustomers(ctx context.Context, page int) ([]domain.Customer, pagination.Page, error) {
	total, err := s.customerRepo.CountCustomers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to count customers")
		return nil, pagination.Page{}, err
	}

	p, err := pagination.NewPage(page, s.pageSize, total)
	if err != nil {
		return nil, pagination.Page{}, err
	}

	customers, err := s.customerRepo.ListCustomers(ctx, p.Limit(), p.Offset())
	if err != nil {
		s.LogError(ctx, err, "Failed to list customers", slog.Int("page", p.CurrentPage))
		return nil, pagination.Page{}, err
	}
	return customers, p, nil
}
