package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"medstore/internal/domain"
	"medstore/internal/port"
)

// CreateProductInput is the DTO for adding a catalog item.
type CreateProductInput struct {
	Name          string     `json:"name" binding:"required"`
	HSNCode       string     `json:"hsn_code"`
	BatchNumber   string     `json:"batch_number"`
	Manufacturer  string     `json:"manufacturer"`
	ExpiryDate    *time.Time `json:"expiry_date"`
	PurchasePrice float64    `json:"purchase_price" binding:"min=0"`
	SellingPrice  float64    `json:"selling_price" binding:"min=0"`
	GSTRate       float64    `json:"gst_rate" binding:"min=0,max=100"`
	Stock         int        `json:"stock" binding:"min=0"`
	Unit          string     `json:"unit"`
	Category      string     `json:"category"`
	ReorderLevel  int        `json:"reorder_level" binding:"min=0"`
}

// UpdateProductInput is the DTO for editing a catalog item. Stock is absent
// on purpose: stock changes go through purchases, sales and adjustments.
type UpdateProductInput struct {
	Name          *string    `json:"name"`
	HSNCode       *string    `json:"hsn_code"`
	BatchNumber   *string    `json:"batch_number"`
	Manufacturer  *string    `json:"manufacturer"`
	ExpiryDate    *time.Time `json:"expiry_date"`
	PurchasePrice *float64   `json:"purchase_price"`
	SellingPrice  *float64   `json:"selling_price"`
	GSTRate       *float64   `json:"gst_rate"`
	Unit          *string    `json:"unit"`
	Category      *string    `json:"category"`
	ReorderLevel  *int       `json:"reorder_level"`
}

// ProductService defines the catalog management contract.
type ProductService interface {
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	List(ctx context.Context, search string, offset, limit int) ([]domain.Product, int, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
	LowStock(ctx context.Context) ([]domain.Product, error)
	Expiring(ctx context.Context, withinDays int) ([]domain.Product, error)
}

type productService struct {
	repo port.ProductRepository
}

// NewProductService creates a new ProductService implementation.
func NewProductService(repo port.ProductRepository) ProductService {
	return &productService{repo: repo}
}

func (s *productService) Create(ctx context.Context, input CreateProductInput) (*domain.Product, error) {
	product := &domain.Product{
		Name:          input.Name,
		HSNCode:       input.HSNCode,
		BatchNumber:   input.BatchNumber,
		Manufacturer:  input.Manufacturer,
		ExpiryDate:    input.ExpiryDate,
		PurchasePrice: input.PurchasePrice,
		SellingPrice:  input.SellingPrice,
		GSTRate:       input.GSTRate,
		Stock:         input.Stock,
		Unit:          input.Unit,
		Category:      input.Category,
		ReorderLevel:  input.ReorderLevel,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *productService) List(ctx context.Context, search string, offset, limit int) ([]domain.Product, int, error) {
	return s.repo.List(ctx, search, offset, limit)
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*domain.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.HSNCode != nil {
		product.HSNCode = *input.HSNCode
	}
	if input.BatchNumber != nil {
		product.BatchNumber = *input.BatchNumber
	}
	if input.Manufacturer != nil {
		product.Manufacturer = *input.Manufacturer
	}
	if input.ExpiryDate != nil {
		product.ExpiryDate = input.ExpiryDate
	}
	if input.PurchasePrice != nil {
		product.PurchasePrice = *input.PurchasePrice
	}
	if input.SellingPrice != nil {
		product.SellingPrice = *input.SellingPrice
	}
	if input.GSTRate != nil {
		product.GSTRate = *input.GSTRate
	}
	if input.Unit != nil {
		product.Unit = *input.Unit
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.ReorderLevel != nil {
		product.ReorderLevel = *input.ReorderLevel
	}

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *productService) LowStock(ctx context.Context) ([]domain.Product, error) {
	return s.repo.LowStock(ctx)
}

func (s *productService) Expiring(ctx context.Context, withinDays int) ([]domain.Product, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, withinDays)
	return s.repo.ExpiringBefore(ctx, cutoff)
}
