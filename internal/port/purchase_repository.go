package port

import (
	"context"

	"github.com/google/uuid"

	"medstore/internal/domain"
)

// PurchaseRepository persists stock-inward documents. Create mirrors
// InvoiceRepository.Create: number assignment, item insertion, stock
// increment and the purchase stock movements all happen in one transaction.
type PurchaseRepository interface {
	Create(ctx context.Context, purchase *domain.Purchase, numberPrefix string) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Purchase, error)
	List(ctx context.Context, filters *domain.ReportFilters, offset, limit int) ([]domain.Purchase, int, error)
}
