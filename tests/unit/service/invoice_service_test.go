package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"medstore/internal/config"
	"medstore/internal/domain"
	"medstore/internal/service"
	"medstore/mocks"
)

var testGSTConfig = config.GSTConfig{
	HomeStateCode:  "27",
	InvoicePrefix:  "INV-",
	PurchasePrefix: "PUR-",
}

func newInvoiceFixture() (*mocks.MockInvoiceRepo, *mocks.MockCustomerRepo, *mocks.MockProductRepo, service.InvoiceService) {
	invoiceRepo := new(mocks.MockInvoiceRepo)
	customerRepo := new(mocks.MockCustomerRepo)
	productRepo := new(mocks.MockProductRepo)
	svc := service.NewInvoiceService(invoiceRepo, customerRepo, productRepo, testGSTConfig)
	return invoiceRepo, customerRepo, productRepo, svc
}

func testCustomer(stateCode string) *domain.Customer {
	return &domain.Customer{
		ID:        uuid.New(),
		Name:      "Apollo Medical",
		GSTIN:     "27AAPFU0939F1ZV",
		Type:      domain.CustomerB2B,
		StateCode: stateCode,
	}
}

func testProduct(sellingPrice, gstRate float64) *domain.Product {
	return &domain.Product{
		ID:           uuid.New(),
		Name:         "Paracetamol 500mg",
		HSNCode:      "3004",
		BatchNumber:  "B-1042",
		SellingPrice: sellingPrice,
		GSTRate:      gstRate,
		Stock:        100,
		Unit:         "strip",
	}
}

func TestInvoiceService_Create_IntraStateSplitsTax(t *testing.T) {
	invoiceRepo, customerRepo, productRepo, svc := newInvoiceFixture()

	customer := testCustomer("27")
	product := testProduct(100, 18)

	customerRepo.On("GetByID", mock.Anything, customer.ID).Return(customer, nil)
	productRepo.On("GetByID", mock.Anything, product.ID).Return(product, nil)
	invoiceRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Invoice"), "INV-").Return(nil)

	invoice, err := svc.Create(context.Background(), service.CreateInvoiceInput{
		CustomerID: customer.ID,
		Items: []service.InvoiceLineInput{
			{ProductID: product.ID, Quantity: 10},
		},
	})

	assert.NoError(t, err)
	assert.InDelta(t, 1000.0, invoice.TotalTaxableValue, 1e-9)
	assert.InDelta(t, 90.0, invoice.TotalCGST, 1e-9)
	assert.InDelta(t, 90.0, invoice.TotalSGST, 1e-9)
	assert.Zero(t, invoice.TotalIGST)
	assert.InDelta(t, 1180.0, invoice.GrandTotal, 1e-9)
	invoiceRepo.AssertExpectations(t)
}

func TestInvoiceService_Create_InterStateUsesIGST(t *testing.T) {
	invoiceRepo, customerRepo, productRepo, svc := newInvoiceFixture()

	customer := testCustomer("29")
	product := testProduct(100, 18)

	customerRepo.On("GetByID", mock.Anything, customer.ID).Return(customer, nil)
	productRepo.On("GetByID", mock.Anything, product.ID).Return(product, nil)
	invoiceRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Invoice"), "INV-").Return(nil)

	invoice, err := svc.Create(context.Background(), service.CreateInvoiceInput{
		CustomerID: customer.ID,
		Items: []service.InvoiceLineInput{
			{ProductID: product.ID, Quantity: 10},
		},
	})

	assert.NoError(t, err)
	assert.Zero(t, invoice.TotalCGST)
	assert.Zero(t, invoice.TotalSGST)
	assert.InDelta(t, 180.0, invoice.TotalIGST, 1e-9)
	assert.InDelta(t, 1180.0, invoice.GrandTotal, 1e-9)
}

func TestInvoiceService_Create_GrandTotalMatchesLineSum(t *testing.T) {
	invoiceRepo, customerRepo, productRepo, svc := newInvoiceFixture()

	customer := testCustomer("27")
	p1 := testProduct(200, 12)
	p2 := testProduct(300, 5)

	customerRepo.On("GetByID", mock.Anything, customer.ID).Return(customer, nil)
	productRepo.On("GetByID", mock.Anything, p1.ID).Return(p1, nil)
	productRepo.On("GetByID", mock.Anything, p2.ID).Return(p2, nil)
	invoiceRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Invoice"), "INV-").Return(nil)

	invoice, err := svc.Create(context.Background(), service.CreateInvoiceInput{
		CustomerID: customer.ID,
		Items: []service.InvoiceLineInput{
			{ProductID: p1.ID, Quantity: 2, Discount: 10},
			{ProductID: p2.ID, Quantity: 1},
		},
	})

	assert.NoError(t, err)
	var lineSum float64
	for _, item := range invoice.Items {
		lineSum += item.Total
	}
	assert.Equal(t, lineSum, invoice.GrandTotal)
	assert.InDelta(t, 403.2, invoice.Items[0].Total, 1e-9)
	assert.InDelta(t, 315.0, invoice.Items[1].Total, 1e-9)
}

func TestInvoiceService_Create_SnapshotsProductFields(t *testing.T) {
	invoiceRepo, customerRepo, productRepo, svc := newInvoiceFixture()

	customer := testCustomer("27")
	product := testProduct(50, 12)

	customerRepo.On("GetByID", mock.Anything, customer.ID).Return(customer, nil)
	productRepo.On("GetByID", mock.Anything, product.ID).Return(product, nil)
	invoiceRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Invoice"), "INV-").Return(nil)

	invoice, err := svc.Create(context.Background(), service.CreateInvoiceInput{
		CustomerID: customer.ID,
		Items: []service.InvoiceLineInput{
			{ProductID: product.ID, Quantity: 3},
		},
	})

	assert.NoError(t, err)
	item := invoice.Items[0]
	assert.Equal(t, product.Name, item.ProductName)
	assert.Equal(t, product.HSNCode, item.HSNCode)
	assert.Equal(t, product.BatchNumber, item.BatchNumber)
	assert.Equal(t, product.Unit, item.Unit)
	assert.Equal(t, product.SellingPrice, item.Price)
}

func TestInvoiceService_Create_DerivesPaymentStatus(t *testing.T) {
	invoiceRepo, customerRepo, productRepo, svc := newInvoiceFixture()

	customer := testCustomer("27")
	product := testProduct(100, 18)

	customerRepo.On("GetByID", mock.Anything, customer.ID).Return(customer, nil)
	productRepo.On("GetByID", mock.Anything, product.ID).Return(product, nil)
	invoiceRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Invoice"), "INV-").Return(nil)

	invoice, err := svc.Create(context.Background(), service.CreateInvoiceInput{
		CustomerID: customer.ID,
		AmountPaid: 500,
		Items: []service.InvoiceLineInput{
			{ProductID: product.ID, Quantity: 10},
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPartial, invoice.PaymentStatus)
}

func TestInvoiceService_Create_MissingCustomer(t *testing.T) {
	_, _, _, svc := newInvoiceFixture()

	invoice, err := svc.Create(context.Background(), service.CreateInvoiceInput{
		Items: []service.InvoiceLineInput{
			{ProductID: uuid.New(), Quantity: 1},
		},
	})

	assert.Nil(t, invoice)
	assert.ErrorIs(t, err, domain.ErrMissingCustomer)
}

func TestInvoiceService_Create_NoLineItems(t *testing.T) {
	_, _, _, svc := newInvoiceFixture()

	invoice, err := svc.Create(context.Background(), service.CreateInvoiceInput{
		CustomerID: uuid.New(),
	})

	assert.Nil(t, invoice)
	assert.ErrorIs(t, err, domain.ErrNoLineItems)
}

func TestInvoiceService_Create_AllowsZeroQuantityLine(t *testing.T) {
	invoiceRepo, customerRepo, productRepo, svc := newInvoiceFixture()

	customer := testCustomer("27")
	product := testProduct(100, 18)

	customerRepo.On("GetByID", mock.Anything, customer.ID).Return(customer, nil)
	productRepo.On("GetByID", mock.Anything, product.ID).Return(product, nil)
	invoiceRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Invoice"), "INV-").Return(nil)

	invoice, err := svc.Create(context.Background(), service.CreateInvoiceInput{
		CustomerID: customer.ID,
		Items: []service.InvoiceLineInput{
			{ProductID: product.ID, Quantity: 0},
		},
	})

	assert.NoError(t, err)
	assert.Zero(t, invoice.TotalTaxableValue)
	assert.Zero(t, invoice.GrandTotal)
	assert.Len(t, invoice.Items, 1)
}

func TestInvoiceService_Create_NegativeQuantity(t *testing.T) {
	_, _, _, svc := newInvoiceFixture()

	invoice, err := svc.Create(context.Background(), service.CreateInvoiceInput{
		CustomerID: uuid.New(),
		Items: []service.InvoiceLineInput{
			{ProductID: uuid.New(), Quantity: -1},
		},
	})

	assert.Nil(t, invoice)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestInvoiceService_Create_RetriesOnceOnDuplicateNumber(t *testing.T) {
	invoiceRepo, customerRepo, productRepo, svc := newInvoiceFixture()

	customer := testCustomer("27")
	product := testProduct(100, 18)

	customerRepo.On("GetByID", mock.Anything, customer.ID).Return(customer, nil)
	productRepo.On("GetByID", mock.Anything, product.ID).Return(product, nil)
	invoiceRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Invoice"), "INV-").
		Return(domain.ErrDuplicateDocumentNumber).Once()
	invoiceRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Invoice"), "INV-").
		Return(nil).Once()

	invoice, err := svc.Create(context.Background(), service.CreateInvoiceInput{
		CustomerID: customer.ID,
		Items: []service.InvoiceLineInput{
			{ProductID: product.ID, Quantity: 10},
		},
	})

	assert.NoError(t, err)
	assert.NotNil(t, invoice)
	invoiceRepo.AssertNumberOfCalls(t, "Create", 2)
}

func TestInvoiceService_Create_DuplicateNumberTwiceFails(t *testing.T) {
	invoiceRepo, customerRepo, productRepo, svc := newInvoiceFixture()

	customer := testCustomer("27")
	product := testProduct(100, 18)

	customerRepo.On("GetByID", mock.Anything, customer.ID).Return(customer, nil)
	productRepo.On("GetByID", mock.Anything, product.ID).Return(product, nil)
	invoiceRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Invoice"), "INV-").
		Return(domain.ErrDuplicateDocumentNumber)

	invoice, err := svc.Create(context.Background(), service.CreateInvoiceInput{
		CustomerID: customer.ID,
		Items: []service.InvoiceLineInput{
			{ProductID: product.ID, Quantity: 10},
		},
	})

	assert.Nil(t, invoice)
	assert.ErrorIs(t, err, domain.ErrDuplicateDocumentNumber)
	invoiceRepo.AssertNumberOfCalls(t, "Create", 2)
}

func TestInvoiceService_Create_UnknownProduct(t *testing.T) {
	_, customerRepo, productRepo, svc := newInvoiceFixture()

	customer := testCustomer("27")
	productID := uuid.New()

	customerRepo.On("GetByID", mock.Anything, customer.ID).Return(customer, nil)
	productRepo.On("GetByID", mock.Anything, productID).Return(nil, domain.ErrNotFound)

	invoice, err := svc.Create(context.Background(), service.CreateInvoiceInput{
		CustomerID: customer.ID,
		Items: []service.InvoiceLineInput{
			{ProductID: productID, Quantity: 1},
		},
	})

	assert.Nil(t, invoice)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInvoiceService_Create_InsufficientStock(t *testing.T) {
	invoiceRepo, customerRepo, productRepo, svc := newInvoiceFixture()

	customer := testCustomer("27")
	product := testProduct(100, 18)

	customerRepo.On("GetByID", mock.Anything, customer.ID).Return(customer, nil)
	productRepo.On("GetByID", mock.Anything, product.ID).Return(product, nil)
	invoiceRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Invoice"), "INV-").
		Return(domain.ErrInsufficientStock)

	invoice, err := svc.Create(context.Background(), service.CreateInvoiceInput{
		CustomerID: customer.ID,
		Items: []service.InvoiceLineInput{
			{ProductID: product.ID, Quantity: 500},
		},
	})

	assert.Nil(t, invoice)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}
