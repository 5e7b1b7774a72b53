package port

import (
	"context"
	"time"

	"medstore/internal/domain"
)

// DashboardRepository runs the aggregate queries behind the dashboard.
type DashboardRepository interface {
	SalesTotal(ctx context.Context, from, to time.Time) (float64, error)
	PurchaseTotal(ctx context.Context, from, to time.Time) (float64, error)
	InvoiceCount(ctx context.Context, from, to time.Time) (int, error)
	SalesTrend(ctx context.Context, days int) ([]domain.TrendPoint, error)
	CategoryBreakdown(ctx context.Context, from, to time.Time) ([]domain.CategorySales, error)
}
