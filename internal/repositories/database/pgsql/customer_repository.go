package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/meow_bank/internal/apperrors"
	"github.com/SscSPs/meow_bank/internal/core/domain"
	portsrepo "github.com/SscSPs/meow_bank/internal/core/ports/repositories"
	"github.com/SscSPs/meow_bank/internal/models"
	"github.com/SscSPs/meow_bank/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCustomerRepository struct {
	BaseRepository
}

func newPgxCustomerRepository(pool *pgxpool.Pool) *PgxCustomerRepository {
	return &PgxCustomerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CustomerRepositoryFacade = (*PgxCustomerRepository)(nil)

func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error) {
	query := `SELECT id, name, email, created_at FROM customers WHERE id = $1;`

	var m models.Customer
	err := r.Pool.QueryRow(ctx, query, customerID).Scan(&m.ID, &m.Name, &m.Email, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCustomerNotFound
		}
		return nil, storageError(fmt.Sprintf("find customer %d", customerID), err)
	}

	customer := mapping.ToDomainCustomer(m)
	return &customer, nil
}

func (r *PgxCustomerRepository) ListCustomers(ctx context.Context, limit int, offset int) ([]domain.Customer, error) {
	query := `
		SELECT id, name, email, created_at
		FROM customers
		ORDER BY name, id
		LIMIT $1 OFFSET $2;
	`

	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, storageError("list customers", err)
	}
	defer rows.Close()

	customers := []domain.Customer{}
	for rows.Next() {
		var m models.Customer
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.CreatedAt); err != nil {
			return nil, storageError("scan customer", err)
		}
		customers = append(customers, mapping.ToDomainCustomer(m))
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("list customers", err)
	}
	return customers, nil
}

func (r *PgxCustomerRepository) CountCustomers(ctx context.Context) (int, error) {
	var count int
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM customers;`).Scan(&count); err != nil {
		return 0, storageError("count customers", err)
	}
	return count, nil
}

// SaveCustomer inserts a customer. The unique index on lower(email) rejects duplicates.
func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) (*domain.Customer, error) {
	query := `
		INSERT INTO customers (name, email)
		VALUES ($1, $2)
		RETURNING id, name, email, created_at;
	`

	var m models.Customer
	err := r.Pool.QueryRow(ctx, query, customer.Name, customer.Email).Scan(&m.ID, &m.Name, &m.Email, &m.CreatedAt)
	if err != nil {
		if code, _, _ := pgCode(err); code == codeUniqueViolation {
			return nil, fmt.Errorf("%w: customer with email %s already exists", apperrors.ErrDuplicate, customer.Email)
		}
		return nil, storageError("save customer", err)
	}

	saved := mapping.ToDomainCustomer(m)
	return &saved, nil
}
