package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"medstore/internal/domain"
)

// MockPurchaseRepo is a mock implementation of port.PurchaseRepository.
type MockPurchaseRepo struct {
	mock.Mock
}

func (m *MockPurchaseRepo) Create(ctx context.Context, purchase *domain.Purchase, numberPrefix string) error {
	args := m.Called(ctx, purchase, numberPrefix)
	return args.Error(0)
}

func (m *MockPurchaseRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Purchase, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Purchase), args.Error(1)
}

func (m *MockPurchaseRepo) List(ctx context.Context, filters *domain.ReportFilters, offset, limit int) ([]domain.Purchase, int, error) {
	args := m.Called(ctx, filters, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Purchase), args.Int(1), args.Error(2)
}
