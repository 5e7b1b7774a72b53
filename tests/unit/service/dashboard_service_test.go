package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"medstore/internal/domain"
	"medstore/internal/service"
	"medstore/mocks"
)

func TestDashboardService_Overview(t *testing.T) {
	dashRepo := new(mocks.MockDashboardRepo)
	productRepo := new(mocks.MockProductRepo)
	svc := service.NewDashboardService(dashRepo, productRepo)

	// Current month first, previous month second, for both totals.
	dashRepo.On("SalesTotal", mock.Anything, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(12000.0, nil).Once()
	dashRepo.On("SalesTotal", mock.Anything, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(10000.0, nil).Once()
	dashRepo.On("PurchaseTotal", mock.Anything, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(7000.0, nil).Once()
	dashRepo.On("PurchaseTotal", mock.Anything, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(6000.0, nil).Once()
	dashRepo.On("InvoiceCount", mock.Anything, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(42, nil).Once()
	dashRepo.On("InvoiceCount", mock.Anything, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return(37, nil).Once()
	dashRepo.On("SalesTrend", mock.Anything, 30).Return([]domain.TrendPoint{
		{Date: time.Now(), Sales: 500, Purchases: 200},
	}, nil)
	dashRepo.On("CategoryBreakdown", mock.Anything, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return([]domain.CategorySales{{Category: "Tablets", Value: 8000}}, nil)
	productRepo.On("LowStock", mock.Anything).Return([]domain.Product{}, nil)
	productRepo.On("ExpiringBefore", mock.Anything, mock.AnythingOfType("time.Time")).
		Return([]domain.Product{}, nil)

	data, err := svc.Overview(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 12000.0, data.Sales.Current)
	assert.Equal(t, 10000.0, data.Sales.Previous)
	assert.Equal(t, 5000.0, data.Profit.Current)
	assert.Equal(t, 4000.0, data.Profit.Previous)
	assert.Equal(t, 42.0, data.Invoices.Current)
	assert.Len(t, data.Trend, 1)
	assert.Len(t, data.Categories, 1)
	dashRepo.AssertExpectations(t)
}
