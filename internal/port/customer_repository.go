package port

import (
	"context"

	"github.com/google/uuid"

	"medstore/internal/domain"
)

// CustomerRepository persists sales-side counterparties.
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	List(ctx context.Context, search string, offset, limit int) ([]domain.Customer, int, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
}
