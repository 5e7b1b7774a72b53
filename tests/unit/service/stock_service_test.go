package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"medstore/internal/domain"
	"medstore/internal/service"
	"medstore/mocks"
)

func TestStockService_Adjust_Success(t *testing.T) {
	repo := new(mocks.MockStockMovementRepo)
	svc := service.NewStockService(repo)

	productID := uuid.New()
	expected := &domain.StockMovement{
		ID:           uuid.New(),
		ProductID:    productID,
		MovementType: domain.MovementAdjustment,
		Quantity:     -5,
	}
	repo.On("Adjust", mock.Anything, productID, -5, "damaged stock").Return(expected, nil)

	movement, err := svc.Adjust(context.Background(), service.AdjustStockInput{
		ProductID: productID,
		Delta:     -5,
		Notes:     "damaged stock",
	})

	assert.NoError(t, err)
	assert.Equal(t, expected, movement)
	repo.AssertExpectations(t)
}

func TestStockService_Adjust_ZeroDelta(t *testing.T) {
	repo := new(mocks.MockStockMovementRepo)
	svc := service.NewStockService(repo)

	movement, err := svc.Adjust(context.Background(), service.AdjustStockInput{
		ProductID: uuid.New(),
		Delta:     0,
	})

	assert.Nil(t, movement)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	repo.AssertNotCalled(t, "Adjust", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestStockService_Movements_ClampsLimit(t *testing.T) {
	repo := new(mocks.MockStockMovementRepo)
	svc := service.NewStockService(repo)

	repo.On("List", mock.Anything, (*uuid.UUID)(nil), 100).Return([]domain.StockMovement{}, nil)

	_, err := svc.Movements(context.Background(), nil, -1)

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}
