package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"medstore/internal/domain"
)

// MockDashboardRepo is a mock implementation of port.DashboardRepository.
type MockDashboardRepo struct {
	mock.Mock
}

func (m *MockDashboardRepo) SalesTotal(ctx context.Context, from, to time.Time) (float64, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockDashboardRepo) PurchaseTotal(ctx context.Context, from, to time.Time) (float64, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockDashboardRepo) InvoiceCount(ctx context.Context, from, to time.Time) (int, error) {
	args := m.Called(ctx, from, to)
	return args.Int(0), args.Error(1)
}

func (m *MockDashboardRepo) SalesTrend(ctx context.Context, days int) ([]domain.TrendPoint, error) {
	args := m.Called(ctx, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TrendPoint), args.Error(1)
}

func (m *MockDashboardRepo) CategoryBreakdown(ctx context.Context, from, to time.Time) ([]domain.CategorySales, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategorySales), args.Error(1)
}
