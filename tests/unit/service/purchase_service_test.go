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

func newPurchaseFixture() (*mocks.MockPurchaseRepo, *mocks.MockSupplierRepo, *mocks.MockProductRepo, service.PurchaseService) {
	purchaseRepo := new(mocks.MockPurchaseRepo)
	supplierRepo := new(mocks.MockSupplierRepo)
	productRepo := new(mocks.MockProductRepo)
	svc := service.NewPurchaseService(purchaseRepo, supplierRepo, productRepo, testGSTConfig)
	return purchaseRepo, supplierRepo, productRepo, svc
}

func testSupplier(stateCode string) *domain.Supplier {
	return &domain.Supplier{
		ID:        uuid.New(),
		Name:      "MediSupply Co",
		GSTIN:     "29AACCM9910C1ZP",
		StateCode: stateCode,
	}
}

func TestPurchaseService_Create_UsesPurchasePriceAndPrefix(t *testing.T) {
	purchaseRepo, supplierRepo, productRepo, svc := newPurchaseFixture()

	supplier := testSupplier("27")
	product := testProduct(100, 18)
	product.PurchasePrice = 60

	supplierRepo.On("GetByID", mock.Anything, supplier.ID).Return(supplier, nil)
	productRepo.On("GetByID", mock.Anything, product.ID).Return(product, nil)
	purchaseRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Purchase"), "PUR-").Return(nil)

	purchase, err := svc.Create(context.Background(), service.CreatePurchaseInput{
		SupplierID: supplier.ID,
		Items: []service.PurchaseLineInput{
			{ProductID: product.ID, Quantity: 10},
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, 60.0, purchase.Items[0].Price)
	assert.InDelta(t, 600.0, purchase.TotalTaxableValue, 1e-9)
	assert.InDelta(t, 54.0, purchase.TotalCGST, 1e-9)
	assert.InDelta(t, 54.0, purchase.TotalSGST, 1e-9)
	purchaseRepo.AssertExpectations(t)
}

func TestPurchaseService_Create_InterStateSupplier(t *testing.T) {
	purchaseRepo, supplierRepo, productRepo, svc := newPurchaseFixture()

	supplier := testSupplier("29")
	product := testProduct(100, 12)
	product.PurchasePrice = 50

	supplierRepo.On("GetByID", mock.Anything, supplier.ID).Return(supplier, nil)
	productRepo.On("GetByID", mock.Anything, product.ID).Return(product, nil)
	purchaseRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Purchase"), "PUR-").Return(nil)

	purchase, err := svc.Create(context.Background(), service.CreatePurchaseInput{
		SupplierID: supplier.ID,
		Items: []service.PurchaseLineInput{
			{ProductID: product.ID, Quantity: 4},
		},
	})

	assert.NoError(t, err)
	assert.Zero(t, purchase.TotalCGST)
	assert.Zero(t, purchase.TotalSGST)
	assert.InDelta(t, 24.0, purchase.TotalIGST, 1e-9)
}

func TestPurchaseService_Create_MissingSupplier(t *testing.T) {
	_, _, _, svc := newPurchaseFixture()

	purchase, err := svc.Create(context.Background(), service.CreatePurchaseInput{
		Items: []service.PurchaseLineInput{
			{ProductID: uuid.New(), Quantity: 1},
		},
	})

	assert.Nil(t, purchase)
	assert.ErrorIs(t, err, domain.ErrMissingSupplier)
}

func TestPurchaseService_Create_NoLineItems(t *testing.T) {
	_, _, _, svc := newPurchaseFixture()

	purchase, err := svc.Create(context.Background(), service.CreatePurchaseInput{
		SupplierID: uuid.New(),
	})

	assert.Nil(t, purchase)
	assert.ErrorIs(t, err, domain.ErrNoLineItems)
}

func TestPurchaseService_Create_NegativeQuantity(t *testing.T) {
	_, _, _, svc := newPurchaseFixture()

	purchase, err := svc.Create(context.Background(), service.CreatePurchaseInput{
		SupplierID: uuid.New(),
		Items: []service.PurchaseLineInput{
			{ProductID: uuid.New(), Quantity: -2},
		},
	})

	assert.Nil(t, purchase)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestPurchaseService_Create_AllowsZeroQuantityLine(t *testing.T) {
	purchaseRepo, supplierRepo, productRepo, svc := newPurchaseFixture()

	supplier := testSupplier("27")
	product := testProduct(100, 18)
	product.PurchasePrice = 60

	supplierRepo.On("GetByID", mock.Anything, supplier.ID).Return(supplier, nil)
	productRepo.On("GetByID", mock.Anything, product.ID).Return(product, nil)
	purchaseRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Purchase"), "PUR-").Return(nil)

	purchase, err := svc.Create(context.Background(), service.CreatePurchaseInput{
		SupplierID: supplier.ID,
		Items: []service.PurchaseLineInput{
			{ProductID: product.ID, Quantity: 0},
		},
	})

	assert.NoError(t, err)
	assert.Zero(t, purchase.TotalTaxableValue)
	assert.Zero(t, purchase.GrandTotal)
	assert.Len(t, purchase.Items, 1)
}

func TestPurchaseService_Create_RetriesOnceOnDuplicateNumber(t *testing.T) {
	purchaseRepo, supplierRepo, productRepo, svc := newPurchaseFixture()

	supplier := testSupplier("27")
	product := testProduct(100, 18)
	product.PurchasePrice = 60

	supplierRepo.On("GetByID", mock.Anything, supplier.ID).Return(supplier, nil)
	productRepo.On("GetByID", mock.Anything, product.ID).Return(product, nil)
	purchaseRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Purchase"), "PUR-").
		Return(domain.ErrDuplicateDocumentNumber).Once()
	purchaseRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Purchase"), "PUR-").
		Return(nil).Once()

	purchase, err := svc.Create(context.Background(), service.CreatePurchaseInput{
		SupplierID: supplier.ID,
		Items: []service.PurchaseLineInput{
			{ProductID: product.ID, Quantity: 5},
		},
	})

	assert.NoError(t, err)
	assert.NotNil(t, purchase)
	purchaseRepo.AssertNumberOfCalls(t, "Create", 2)
}
