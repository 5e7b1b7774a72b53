package service

import (
	"context"

	"github.com/google/uuid"

	"medstore/internal/domain"
	"medstore/internal/port"
)

// CreateCustomerInput is the DTO for adding a customer.
type CreateCustomerInput struct {
	Name      string              `json:"name" binding:"required"`
	Phone     string              `json:"phone"`
	Email     string              `json:"email"`
	Address   string              `json:"address"`
	GSTIN     string              `json:"gstin"`
	Type      domain.CustomerType `json:"type"`
	State     string              `json:"state"`
	StateCode string              `json:"state_code" binding:"required"`
}

// UpdateCustomerInput is the DTO for editing a customer.
type UpdateCustomerInput struct {
	Name      *string              `json:"name"`
	Phone     *string              `json:"phone"`
	Email     *string              `json:"email"`
	Address   *string              `json:"address"`
	GSTIN     *string              `json:"gstin"`
	Type      *domain.CustomerType `json:"type"`
	State     *string              `json:"state"`
	StateCode *string              `json:"state_code"`
}

// CustomerService defines the customer management contract.
type CustomerService interface {
	Create(ctx context.Context, input CreateCustomerInput) (*domain.Customer, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
	List(ctx context.Context, search string, offset, limit int) ([]domain.Customer, int, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateCustomerInput) (*domain.Customer, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type customerService struct {
	repo port.CustomerRepository
}

// NewCustomerService creates a new CustomerService implementation.
func NewCustomerService(repo port.CustomerRepository) CustomerService {
	return &customerService{repo: repo}
}

func (s *customerService) Create(ctx context.Context, input CreateCustomerInput) (*domain.Customer, error) {
	if input.Type == "" {
		input.Type = domain.CustomerB2C
	}
	customer := &domain.Customer{
		Name:      input.Name,
		Phone:     input.Phone,
		Email:     input.Email,
		Address:   input.Address,
		GSTIN:     input.GSTIN,
		Type:      input.Type,
		State:     input.State,
		StateCode: input.StateCode,
	}
	if err := validateCustomer(customer); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *customerService) List(ctx context.Context, search string, offset, limit int) ([]domain.Customer, int, error) {
	return s.repo.List(ctx, search, offset, limit)
}

func (s *customerService) Update(ctx context.Context, id uuid.UUID, input UpdateCustomerInput) (*domain.Customer, error) {
	customer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Phone != nil {
		customer.Phone = *input.Phone
	}
	if input.Email != nil {
		customer.Email = *input.Email
	}
	if input.Address != nil {
		customer.Address = *input.Address
	}
	if input.GSTIN != nil {
		customer.GSTIN = *input.GSTIN
	}
	if input.Type != nil {
		customer.Type = *input.Type
	}
	if input.State != nil {
		customer.State = *input.State
	}
	if input.StateCode != nil {
		customer.StateCode = *input.StateCode
	}

	if err := validateCustomer(customer); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func validateCustomer(c *domain.Customer) error {
	if !domain.ValidCustomerTypes[c.Type] {
		return domain.ErrInvalidCustomerType
	}
	if c.Type == domain.CustomerB2B && c.GSTIN == "" {
		return domain.ErrGSTINRequired
	}
	if !validStateCode(c.StateCode) {
		return domain.ErrInvalidStateCode
	}
	return nil
}

// validStateCode accepts the 2-digit numeric GST state codes ("01"-"38").
func validStateCode(code string) bool {
	if len(code) != 2 {
		return false
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
