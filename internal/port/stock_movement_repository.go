package port

import (
	"context"

	"github.com/google/uuid"

	"medstore/internal/domain"
)

// StockMovementRepository reads the stock audit trail and records manual
// adjustments. Adjust applies the delta to the product's stock and writes
// the movement row in one transaction.
type StockMovementRepository interface {
	List(ctx context.Context, productID *uuid.UUID, limit int) ([]domain.StockMovement, error)
	Adjust(ctx context.Context, productID uuid.UUID, delta int, notes string) (*domain.StockMovement, error)
}
