package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"medstore/internal/domain"
	"medstore/internal/port"
)

type dashboardRepo struct {
	db *sqlx.DB
}

// NewDashboardRepo creates a new PostgreSQL-backed DashboardRepository.
func NewDashboardRepo(db *sqlx.DB) port.DashboardRepository {
	return &dashboardRepo{db: db}
}

func (r *dashboardRepo) SalesTotal(ctx context.Context, from, to time.Time) (float64, error) {
	var total float64
	err := r.db.GetContext(ctx, &total,
		"SELECT COALESCE(SUM(grand_total), 0) FROM invoices WHERE date >= $1 AND date < $2", from, to)
	if err != nil {
		return 0, fmt.Errorf("dashboardRepo.SalesTotal: %w", err)
	}
	return total, nil
}

func (r *dashboardRepo) PurchaseTotal(ctx context.Context, from, to time.Time) (float64, error) {
	var total float64
	err := r.db.GetContext(ctx, &total,
		"SELECT COALESCE(SUM(grand_total), 0) FROM purchases WHERE date >= $1 AND date < $2", from, to)
	if err != nil {
		return 0, fmt.Errorf("dashboardRepo.PurchaseTotal: %w", err)
	}
	return total, nil
}

func (r *dashboardRepo) InvoiceCount(ctx context.Context, from, to time.Time) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM invoices WHERE date >= $1 AND date < $2", from, to)
	if err != nil {
		return 0, fmt.Errorf("dashboardRepo.InvoiceCount: %w", err)
	}
	return count, nil
}

func (r *dashboardRepo) SalesTrend(ctx context.Context, days int) ([]domain.TrendPoint, error) {
	// generate_series keeps zero-activity days on the chart.
	query := `SELECT d.day,
		COALESCE((SELECT SUM(grand_total) FROM invoices i
			WHERE i.date >= d.day AND i.date < d.day + interval '1 day'), 0) AS sales,
		COALESCE((SELECT SUM(grand_total) FROM purchases p
			WHERE p.date >= d.day AND p.date < d.day + interval '1 day'), 0) AS purchases
		FROM generate_series(
			date_trunc('day', now() AT TIME ZONE 'utc') - ($1 - 1) * interval '1 day',
			date_trunc('day', now() AT TIME ZONE 'utc'),
			interval '1 day') AS d(day)
		ORDER BY d.day ASC`

	var points []domain.TrendPoint
	err := r.db.SelectContext(ctx, &points, query, days)
	if err != nil {
		return nil, fmt.Errorf("dashboardRepo.SalesTrend: %w", err)
	}
	return points, nil
}

func (r *dashboardRepo) CategoryBreakdown(ctx context.Context, from, to time.Time) ([]domain.CategorySales, error) {
	query := `SELECT COALESCE(NULLIF(p.category, ''), 'Uncategorized') AS category,
		SUM(ii.total) AS value
		FROM invoice_items ii
		JOIN invoices i ON i.id = ii.invoice_id
		JOIN products p ON p.id = ii.product_id
		WHERE i.date >= $1 AND i.date < $2
		GROUP BY 1
		ORDER BY value DESC`

	var categories []domain.CategorySales
	err := r.db.SelectContext(ctx, &categories, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("dashboardRepo.CategoryBreakdown: %w", err)
	}
	return categories, nil
}
