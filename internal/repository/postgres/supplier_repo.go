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

type supplierRepo struct {
	db *sqlx.DB
}

// NewSupplierRepo creates a new PostgreSQL-backed SupplierRepository.
func NewSupplierRepo(db *sqlx.DB) port.SupplierRepository {
	return &supplierRepo{db: db}
}

func (r *supplierRepo) Create(ctx context.Context, supplier *domain.Supplier) error {
	supplier.ID = uuid.New()
	now := time.Now().UTC()
	supplier.CreatedAt = now
	supplier.UpdatedAt = now

	query := `INSERT INTO suppliers
		(id, name, phone, email, address, gstin, state, state_code, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.ExecContext(ctx, query,
		supplier.ID, supplier.Name, supplier.Phone, supplier.Email, supplier.Address,
		supplier.GSTIN, supplier.State, supplier.StateCode,
		supplier.CreatedAt, supplier.UpdatedAt)
	if err != nil {
		return fmt.Errorf("supplierRepo.Create: %w", err)
	}
	return nil
}

func (r *supplierRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Supplier, error) {
	var supplier domain.Supplier
	err := r.db.GetContext(ctx, &supplier, "SELECT * FROM suppliers WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("supplierRepo.GetByID: %w", err)
	}
	return &supplier, nil
}

func (r *supplierRepo) List(ctx context.Context, search string, offset, limit int) ([]domain.Supplier, int, error) {
	where := ""
	args := []interface{}{}
	if search != "" {
		where = "WHERE name ILIKE $1 OR phone ILIKE $1 OR gstin ILIKE $1"
		args = append(args, "%"+search+"%")
	}

	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM suppliers "+where, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("supplierRepo.List count: %w", err)
	}

	query := fmt.Sprintf("SELECT * FROM suppliers %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	var suppliers []domain.Supplier
	err = r.db.SelectContext(ctx, &suppliers, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("supplierRepo.List: %w", err)
	}
	return suppliers, total, nil
}

func (r *supplierRepo) Update(ctx context.Context, supplier *domain.Supplier) error {
	supplier.UpdatedAt = time.Now().UTC()
	query := `UPDATE suppliers SET
		name = $1, phone = $2, email = $3, address = $4, gstin = $5,
		state = $6, state_code = $7, updated_at = $8
		WHERE id = $9`
	result, err := r.db.ExecContext(ctx, query,
		supplier.Name, supplier.Phone, supplier.Email, supplier.Address, supplier.GSTIN,
		supplier.State, supplier.StateCode, supplier.UpdatedAt, supplier.ID)
	if err != nil {
		return fmt.Errorf("supplierRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *supplierRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM suppliers WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("supplierRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
