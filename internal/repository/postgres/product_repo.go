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

type productRepo struct {
	db *sqlx.DB
}

// NewProductRepo creates a new PostgreSQL-backed ProductRepository.
func NewProductRepo(db *sqlx.DB) port.ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) Create(ctx context.Context, product *domain.Product) error {
	product.ID = uuid.New()
	now := time.Now().UTC()
	product.CreatedAt = now
	product.UpdatedAt = now

	query := `INSERT INTO products
		(id, name, hsn_code, batch_number, manufacturer, expiry_date, purchase_price,
		 selling_price, gst_rate, stock, unit, category, reorder_level, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err := r.db.ExecContext(ctx, query,
		product.ID, product.Name, product.HSNCode, product.BatchNumber, product.Manufacturer,
		product.ExpiryDate, product.PurchasePrice, product.SellingPrice, product.GSTRate,
		product.Stock, product.Unit, product.Category, product.ReorderLevel,
		product.CreatedAt, product.UpdatedAt)
	if err != nil {
		return fmt.Errorf("productRepo.Create: %w", err)
	}
	return nil
}

func (r *productRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	var product domain.Product
	err := r.db.GetContext(ctx, &product, "SELECT * FROM products WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("productRepo.GetByID: %w", err)
	}
	return &product, nil
}

func (r *productRepo) List(ctx context.Context, search string, offset, limit int) ([]domain.Product, int, error) {
	where := ""
	args := []interface{}{}
	if search != "" {
		where = "WHERE name ILIKE $1 OR hsn_code ILIKE $1 OR category ILIKE $1"
		args = append(args, "%"+search+"%")
	}

	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM products "+where, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("productRepo.List count: %w", err)
	}

	query := fmt.Sprintf("SELECT * FROM products %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d",
		where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	var products []domain.Product
	err = r.db.SelectContext(ctx, &products, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("productRepo.List: %w", err)
	}
	return products, total, nil
}

func (r *productRepo) Update(ctx context.Context, product *domain.Product) error {
	product.UpdatedAt = time.Now().UTC()
	query := `UPDATE products SET
		name = $1, hsn_code = $2, batch_number = $3, manufacturer = $4, expiry_date = $5,
		purchase_price = $6, selling_price = $7, gst_rate = $8, stock = $9, unit = $10,
		category = $11, reorder_level = $12, updated_at = $13
		WHERE id = $14`
	result, err := r.db.ExecContext(ctx, query,
		product.Name, product.HSNCode, product.BatchNumber, product.Manufacturer,
		product.ExpiryDate, product.PurchasePrice, product.SellingPrice, product.GSTRate,
		product.Stock, product.Unit, product.Category, product.ReorderLevel,
		product.UpdatedAt, product.ID)
	if err != nil {
		return fmt.Errorf("productRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *productRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("productRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *productRepo) LowStock(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.SelectContext(ctx, &products,
		"SELECT * FROM products WHERE stock <= reorder_level ORDER BY stock ASC")
	if err != nil {
		return nil, fmt.Errorf("productRepo.LowStock: %w", err)
	}
	return products, nil
}

func (r *productRepo) ExpiringBefore(ctx context.Context, cutoff time.Time) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.SelectContext(ctx, &products,
		`SELECT * FROM products
		 WHERE expiry_date IS NOT NULL AND expiry_date <= $1
		 ORDER BY expiry_date ASC`, cutoff)
	if err != nil {
		return nil, fmt.Errorf("productRepo.ExpiringBefore: %w", err)
	}
	return products, nil
}
