package service

import (
	"context"

	"github.com/google/uuid"

	"medstore/internal/domain"
	"medstore/internal/port"
)

// AdjustStockInput is the DTO for a manual stock correction. Delta is
// signed: positive adds stock, negative removes it.
type AdjustStockInput struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Delta     int       `json:"delta" binding:"required"`
	Notes     string    `json:"notes"`
}

// StockService exposes the stock audit trail and manual adjustments.
// Purchase and sale movements are written by their own document flows.
type StockService interface {
	Movements(ctx context.Context, productID *uuid.UUID, limit int) ([]domain.StockMovement, error)
	Adjust(ctx context.Context, input AdjustStockInput) (*domain.StockMovement, error)
}

type stockService struct {
	repo port.StockMovementRepository
}

// NewStockService creates a new StockService implementation.
func NewStockService(repo port.StockMovementRepository) StockService {
	return &stockService{repo: repo}
}

func (s *stockService) Movements(ctx context.Context, productID *uuid.UUID, limit int) ([]domain.StockMovement, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return s.repo.List(ctx, productID, limit)
}

func (s *stockService) Adjust(ctx context.Context, input AdjustStockInput) (*domain.StockMovement, error) {
	if input.Delta == 0 {
		return nil, domain.ErrInvalidQuantity
	}
	return s.repo.Adjust(ctx, input.ProductID, input.Delta, input.Notes)
}
