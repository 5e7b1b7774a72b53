package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"medstore/internal/domain"
)

// MockStockMovementRepo is a mock implementation of port.StockMovementRepository.
type MockStockMovementRepo struct {
	mock.Mock
}

func (m *MockStockMovementRepo) List(ctx context.Context, productID *uuid.UUID, limit int) ([]domain.StockMovement, error) {
	args := m.Called(ctx, productID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockMovement), args.Error(1)
}

func (m *MockStockMovementRepo) Adjust(ctx context.Context, productID uuid.UUID, delta int, notes string) (*domain.StockMovement, error) {
	args := m.Called(ctx, productID, delta, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StockMovement), args.Error(1)
}
