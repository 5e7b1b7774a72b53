package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"medstore/internal/domain"
)

// MockGSTReportService is a mock implementation of service.GSTReportService.
type MockGSTReportService struct {
	mock.Mock
}

func (m *MockGSTReportService) Generate(ctx context.Context, filters *domain.ReportFilters) (*domain.GSTReport, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GSTReport), args.Error(1)
}

func (m *MockGSTReportService) ExportXLSX(ctx context.Context, filters *domain.ReportFilters, w io.Writer) error {
	args := m.Called(ctx, filters, w)
	return args.Error(0)
}
