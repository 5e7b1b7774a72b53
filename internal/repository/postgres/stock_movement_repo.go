package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"medstore/internal/domain"
	"medstore/internal/port"
)

type stockMovementRepo struct {
	db *sqlx.DB
}

// NewStockMovementRepo creates a new PostgreSQL-backed StockMovementRepository.
func NewStockMovementRepo(db *sqlx.DB) port.StockMovementRepository {
	return &stockMovementRepo{db: db}
}

const movementColumns = `m.id, m.product_id, p.name AS product_name, m.movement_type,
	m.quantity, m.reference_type, m.reference_id, m.notes, m.created_at`

func (r *stockMovementRepo) List(ctx context.Context, productID *uuid.UUID, limit int) ([]domain.StockMovement, error) {
	where := ""
	args := []interface{}{}
	if productID != nil {
		where = "WHERE m.product_id = $1"
		args = append(args, *productID)
	}

	query := fmt.Sprintf(`SELECT %s FROM stock_movements m
		JOIN products p ON p.id = m.product_id
		%s ORDER BY m.created_at DESC LIMIT $%d`, movementColumns, where, len(args)+1)
	args = append(args, limit)

	var movements []domain.StockMovement
	err := r.db.SelectContext(ctx, &movements, query, args...)
	if err != nil {
		return nil, fmt.Errorf("stockMovementRepo.List: %w", err)
	}
	return movements, nil
}

func (r *stockMovementRepo) Adjust(ctx context.Context, productID uuid.UUID, delta int, notes string) (*domain.StockMovement, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("stockMovementRepo.Adjust begin: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()

	// Negative adjustments are guarded the same way sales are.
	result, err := tx.ExecContext(ctx,
		"UPDATE products SET stock = stock + $1, updated_at = $2 WHERE id = $3 AND stock + $1 >= 0",
		delta, now, productID)
	if err != nil {
		return nil, fmt.Errorf("stockMovementRepo.Adjust stock: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		var exists bool
		if err := tx.GetContext(ctx, &exists,
			"SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)", productID); err != nil {
			return nil, fmt.Errorf("stockMovementRepo.Adjust check: %w", err)
		}
		if !exists {
			return nil, domain.ErrNotFound
		}
		return nil, domain.ErrInsufficientStock
	}

	movement := &domain.StockMovement{
		ID:            uuid.New(),
		ProductID:     productID,
		MovementType:  domain.MovementAdjustment,
		Quantity:      delta,
		ReferenceType: "adjustment",
		Notes:         notes,
		CreatedAt:     now,
	}
	_, err = tx.ExecContext(ctx, `INSERT INTO stock_movements
		(id, product_id, movement_type, quantity, reference_type, reference_id, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		movement.ID, movement.ProductID, movement.MovementType, movement.Quantity,
		movement.ReferenceType, movement.ReferenceID, movement.Notes, movement.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("stockMovementRepo.Adjust insert: %w", err)
	}

	if err := tx.GetContext(ctx, &movement.ProductName,
		"SELECT name FROM products WHERE id = $1", productID); err != nil {
		return nil, fmt.Errorf("stockMovementRepo.Adjust name: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("stockMovementRepo.Adjust commit: %w", err)
	}
	return movement, nil
}
