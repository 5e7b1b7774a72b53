package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"medstore/internal/domain"
	"medstore/internal/port"
)

type customerRepo struct {
	db *sqlx.DB
}

// NewCustomerRepo creates a new PostgreSQL-backed CustomerRepository.
func NewCustomerRepo(db *sqlx.DB) port.CustomerRepository {
	return &customerRepo{db: db}
}

func (r *customerRepo) Create(ctx context.Context, customer *domain.Customer) error {
	customer.ID = uuid.New()
	now := time.Now().UTC()
	customer.CreatedAt = now
	customer.UpdatedAt = now

	query := `INSERT INTO customers
		(id, name, phone, email, address, gstin, type, state, state_code, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.ExecContext(ctx, query,
		customer.ID, customer.Name, customer.Phone, customer.Email, customer.Address,
		customer.GSTIN, customer.Type, customer.State, customer.StateCode,
		customer.CreatedAt, customer.UpdatedAt)
	if err != nil {
		return fmt.Errorf("customerRepo.Create: %w", err)
	}
	return nil
}

func (r *customerRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	var customer domain.Customer
	err := r.db.GetContext(ctx, &customer, "SELECT * FROM customers WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("customerRepo.GetByID: %w", err)
	}
	return &customer, nil
}

func (r *customerRepo) List(ctx context.Context, search string, offset, limit int) ([]domain.Customer, int, error) {
	where := ""
	args := []interface{}{}
	if search != "" {
		where = "WHERE name ILIKE $1 OR phone ILIKE $1 OR gstin ILIKE $1"
		args = append(args, "%"+search+"%")
	}

	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM customers "+where, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("customerRepo.List count: %w", err)
	}

	query := fmt.Sprintf("SELECT * FROM customers %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	var customers []domain.Customer
	err = r.db.SelectContext(ctx, &customers, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("customerRepo.List: %w", err)
	}
	return customers, total, nil
}

func (r *customerRepo) Update(ctx context.Context, customer *domain.Customer) error {
	customer.UpdatedAt = time.Now().UTC()
	query := `UPDATE customers SET
		name = $1, phone = $2, email = $3, address = $4, gstin = $5, type = $6,
		state = $7, state_code = $8, updated_at = $9
		WHERE id = $10`
	result, err := r.db.ExecContext(ctx, query,
		customer.Name, customer.Phone, customer.Email, customer.Address, customer.GSTIN,
		customer.Type, customer.State, customer.StateCode, customer.UpdatedAt, customer.ID)
	if err != nil {
		return fmt.Errorf("customerRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *customerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM customers WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("customerRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
