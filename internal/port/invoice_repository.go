package port

import (
	"context"

	"github.com/google/uuid"

	"medstore/internal/domain"
)

// InvoiceRepository persists sales documents. Create assigns the invoice
// number inside the insert transaction: the latest number row is locked
// before the next number is derived, so concurrent creates cannot observe
// the same predecessor. The same transaction inserts the line items,
// decrements product stock and writes the sale stock movements.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *domain.Invoice, numberPrefix string) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	List(ctx context.Context, filters *domain.ReportFilters, offset, limit int) ([]domain.Invoice, int, error)
	ListWithItems(ctx context.Context, filters *domain.ReportFilters) ([]domain.Invoice, error)
	SalesStats(ctx context.Context, filters *domain.ReportFilters) (*domain.SalesStats, error)
}
