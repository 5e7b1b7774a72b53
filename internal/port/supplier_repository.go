package port

import (
	"context"

	"github.com/google/uuid"

	"medstore/internal/domain"
)

// SupplierRepository persists purchase-side counterparties.
type SupplierRepository interface {
	Create(ctx context.Context, supplier *domain.Supplier) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Supplier, error)
	List(ctx context.Context, search string, offset, limit int) ([]domain.Supplier, int, error)
	Update(ctx context.Context, supplier *domain.Supplier) error
	Delete(ctx context.Context, id uuid.UUID) error
}
