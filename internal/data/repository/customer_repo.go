package repository

import (
	"context"
	"fmt"

	"hotel-manager/internal/data/entity"
	"hotel-manager/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	FindByEmail(ctx context.Context, email string) (*entity.Customer, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Customer, error)
	SearchByName(ctx context.Context, name string) ([]*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountAll(ctx context.Context) (int64, error)
}

type customerRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCustomerRepository(db database.PgxIface, log *zap.Logger) CustomerRepository {
	return &customerRepository{
		db:  db,
		log: log.With(zap.String("repository", "customer")),
	}
}

const customerColumns = `id, first_name, last_name, email, phone, id_number, address, created_at, updated_at`

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var customer entity.Customer
	err := row.Scan(
		&customer.ID,
		&customer.FirstName,
		&customer.LastName,
		&customer.Email,
		&customer.Phone,
		&customer.IDNumber,
		&customer.Address,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, first_name, last_name, email, phone, id_number, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		customer.ID,
		customer.FirstName,
		customer.LastName,
		customer.Email,
		customer.Phone,
		customer.IDNumber,
		customer.Address,
		customer.CreatedAt,
		customer.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create customer",
			zap.Error(err),
			zap.String("customer_id", customer.ID.String()),
		)
		return fmt.Errorf("create customer %s: %w", customer.ID.String(), err)
	}

	return nil
}

func (r *customerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`

	customer, err := scanCustomer(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find customer by ID",
			zap.Error(err),
			zap.String("customer_id", id.String()),
		)
		return nil, fmt.Errorf("find customer by ID %s: %w", id.String(), err)
	}

	return customer, nil
}

func (r *customerRepository) FindByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE email = $1`

	customer, err := scanCustomer(r.db.QueryRow(ctx, query, email))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find customer by email", zap.Error(err))
		return nil, fmt.Errorf("find customer by email: %w", err)
	}

	return customer, nil
}

func (r *customerRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Customer, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM customers
		ORDER BY last_name, first_name
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to list customers", zap.Error(err))
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	return collectCustomers(rows)
}

func (r *customerRepository) SearchByName(ctx context.Context, name string) ([]*entity.Customer, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE first_name ILIKE '%' || $1 || '%'
		   OR last_name ILIKE '%' || $1 || '%'
		ORDER BY last_name, first_name
	`

	rows, err := r.db.Query(ctx, query, name)
	if err != nil {
		r.log.Error("Failed to search customers", zap.Error(err), zap.String("name", name))
		return nil, fmt.Errorf("search customers by name: %w", err)
	}
	defer rows.Close()

	return collectCustomers(rows)
}

func (r *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	query := `
		UPDATE customers
		SET first_name = $2, last_name = $3, email = $4, phone = $5,
		    id_number = $6, address = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		customer.ID,
		customer.FirstName,
		customer.LastName,
		customer.Email,
		customer.Phone,
		customer.IDNumber,
		customer.Address,
		customer.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update customer",
			zap.Error(err),
			zap.String("customer_id", customer.ID.String()),
		)
		return fmt.Errorf("update customer %s: %w", customer.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("customer %s not found", customer.ID.String())
	}

	return nil
}

func (r *customerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete customer",
			zap.Error(err),
			zap.String("customer_id", id.String()),
		)
		return fmt.Errorf("delete customer %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("customer %s not found", id.String())
	}

	r.log.Info("Customer deleted", zap.String("customer_id", id.String()))
	return nil
}

func (r *customerRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count customers", zap.Error(err))
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return count, nil
}

func collectCustomers(rows pgx.Rows) ([]*entity.Customer, error) {
	var customers []*entity.Customer
	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer row: %w", err)
		}
		customers = append(customers, customer)
	}
	return customers, nil
}
