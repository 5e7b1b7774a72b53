package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"medstore/internal/domain"
)

// ProductRepository persists the pharmacy catalog.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	List(ctx context.Context, search string, offset, limit int) ([]domain.Product, int, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	LowStock(ctx context.Context) ([]domain.Product, error)
	ExpiringBefore(ctx context.Context, cutoff time.Time) ([]domain.Product, error)
}
