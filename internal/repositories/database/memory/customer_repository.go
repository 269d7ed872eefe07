package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/SscSPs/meow_bank/internal/apperrors"
	"github.com/SscSPs/meow_bank/internal/core/domain"
	portsrepo "github.com/SscSPs/meow_bank/internal/core/ports/repositories"
)

type customerRepository struct {
	store *Store
}

func newCustomerRepository(store *Store) *customerRepository {
	return &customerRepository{store: store}
}

var _ portsrepo.CustomerRepositoryFacade = (*customerRepository)(nil)

func (r *customerRepository) FindCustomerByID(_ context.Context, customerID int64) (*domain.Customer, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	customer, ok := r.store.customers[customerID]
	if !ok {
		return nil, apperrors.ErrCustomerNotFound
	}
	return &customer, nil
}

// ListCustomers returns customers ordered by name, then id.
func (r *customerRepository) ListCustomers(_ context.Context, limit int, offset int) ([]domain.Customer, error) {
	r.store.mu.RLock()
	all := make([]domain.Customer, 0, len(r.store.customers))
	for _, c := range r.store.customers {
		all = append(all, c)
	}
	r.store.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		if all[i].Name != all[j].Name {
			return all[i].Name < all[j].Name
		}
		return all[i].ID < all[j].ID
	})
	return window(all, limit, offset), nil
}

func (r *customerRepository) CountCustomers(_ context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return len(r.store.customers), nil
}

// SaveCustomer enforces email uniqueness case-insensitively.
func (r *customerRepository) SaveCustomer(_ context.Context, customer domain.Customer) (*domain.Customer, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(customer.Email)
	if _, exists := s.customerEmails[key]; exists {
		return nil, fmt.Errorf("%w: customer with email %s already exists", apperrors.ErrDuplicate, customer.Email)
	}

	s.nextCustomerID++
	customer.ID = s.nextCustomerID
	customer.CreatedAt = s.now()

	s.customers[customer.ID] = customer
	s.customerEmails[key] = customer.ID
	return &customer, nil
}

// window applies limit/offset to an already ordered slice.
func window[T any](items []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(items) {
		return []T{}
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return items[offset:end]
}
