package service

import (
	"context"

	"github.com/google/uuid"

	"medstore/internal/domain"
	"medstore/internal/port"
)

// CreateSupplierInput is the DTO for adding a supplier.
type CreateSupplierInput struct {
	Name      string `json:"name" binding:"required"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	GSTIN     string `json:"gstin"`
	State     string `json:"state"`
	StateCode string `json:"state_code" binding:"required"`
}

// UpdateSupplierInput is the DTO for editing a supplier.
type UpdateSupplierInput struct {
	Name      *string `json:"name"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
	Address   *string `json:"address"`
	GSTIN     *string `json:"gstin"`
	State     *string `json:"state"`
	StateCode *string `json:"state_code"`
}

// SupplierService defines the supplier management contract.
type SupplierService interface {
	Create(ctx context.Context, input CreateSupplierInput) (*domain.Supplier, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Supplier, error)
	List(ctx context.Context, search string, offset, limit int) ([]domain.Supplier, int, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateSupplierInput) (*domain.Supplier, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type supplierService struct {
	repo port.SupplierRepository
}

// NewSupplierService creates a new SupplierService implementation.
func NewSupplierService(repo port.SupplierRepository) SupplierService {
	return &supplierService{repo: repo}
}

func (s *supplierService) Create(ctx context.Context, input CreateSupplierInput) (*domain.Supplier, error) {
	if !validStateCode(input.StateCode) {
		return nil, domain.ErrInvalidStateCode
	}
	supplier := &domain.Supplier{
		Name:      input.Name,
		Phone:     input.Phone,
		Email:     input.Email,
		Address:   input.Address,
		GSTIN:     input.GSTIN,
		State:     input.State,
		StateCode: input.StateCode,
	}
	if err := s.repo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *supplierService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Supplier, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *supplierService) List(ctx context.Context, search string, offset, limit int) ([]domain.Supplier, int, error) {
	return s.repo.List(ctx, search, offset, limit)
}

func (s *supplierService) Update(ctx context.Context, id uuid.UUID, input UpdateSupplierInput) (*domain.Supplier, error) {
	supplier, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		supplier.Name = *input.Name
	}
	if input.Phone != nil {
		supplier.Phone = *input.Phone
	}
	if input.Email != nil {
		supplier.Email = *input.Email
	}
	if input.Address != nil {
		supplier.Address = *input.Address
	}
	if input.GSTIN != nil {
		supplier.GSTIN = *input.GSTIN
	}
	if input.State != nil {
		supplier.State = *input.State
	}
	if input.StateCode != nil {
		if !validStateCode(*input.StateCode) {
			return nil, domain.ErrInvalidStateCode
		}
		supplier.StateCode = *input.StateCode
	}

	if err := s.repo.Update(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *supplierService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
