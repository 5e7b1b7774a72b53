package service

import (
	"context"
	"time"

	"medstore/internal/domain"
	"medstore/internal/port"
)

const (
	trendDays    = 30
	expiryWindow = 90 // days
)

// DashboardService assembles the store overview: this month against last
// month, the recent trend, category revenue and inventory alerts.
type DashboardService interface {
	Overview(ctx context.Context) (*domain.DashboardData, error)
}

type dashboardService struct {
	dashRepo    port.DashboardRepository
	productRepo port.ProductRepository
}

// NewDashboardService creates a new DashboardService implementation.
func NewDashboardService(dashRepo port.DashboardRepository, productRepo port.ProductRepository) DashboardService {
	return &dashboardService{dashRepo: dashRepo, productRepo: productRepo}
}

func (s *dashboardService) Overview(ctx context.Context) (*domain.DashboardData, error) {
	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	prevStart := monthStart.AddDate(0, -1, 0)
	nextStart := monthStart.AddDate(0, 1, 0)

	data := &domain.DashboardData{}

	var err error
	if data.Sales.Current, err = s.dashRepo.SalesTotal(ctx, monthStart, nextStart); err != nil {
		return nil, err
	}
	if data.Sales.Previous, err = s.dashRepo.SalesTotal(ctx, prevStart, monthStart); err != nil {
		return nil, err
	}
	if data.Purchases.Current, err = s.dashRepo.PurchaseTotal(ctx, monthStart, nextStart); err != nil {
		return nil, err
	}
	if data.Purchases.Previous, err = s.dashRepo.PurchaseTotal(ctx, prevStart, monthStart); err != nil {
		return nil, err
	}
	data.Profit = domain.PeriodComparison{
		Current:  data.Sales.Current - data.Purchases.Current,
		Previous: data.Sales.Previous - data.Purchases.Previous,
	}

	current, err := s.dashRepo.InvoiceCount(ctx, monthStart, nextStart)
	if err != nil {
		return nil, err
	}
	previous, err := s.dashRepo.InvoiceCount(ctx, prevStart, monthStart)
	if err != nil {
		return nil, err
	}
	data.Invoices = domain.PeriodComparison{Current: float64(current), Previous: float64(previous)}

	if data.Trend, err = s.dashRepo.SalesTrend(ctx, trendDays); err != nil {
		return nil, err
	}
	if data.Categories, err = s.dashRepo.CategoryBreakdown(ctx, monthStart, nextStart); err != nil {
		return nil, err
	}
	if data.LowStock, err = s.productRepo.LowStock(ctx); err != nil {
		return nil, err
	}
	if data.Expiring, err = s.productRepo.ExpiringBefore(ctx, now.AddDate(0, 0, expiryWindow)); err != nil {
		return nil, err
	}
	return data, nil
}
