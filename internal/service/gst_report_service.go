package service

import (
	"context"
	"io"

	"medstore/internal/domain"
	"medstore/internal/gst"
	"medstore/internal/port"
	"medstore/internal/xlsxexport"
)

// GSTReportService builds GSTR-1 projections over the invoice ledger. The
// report is derived on demand from settled invoices, never stored.
type GSTReportService interface {
	Generate(ctx context.Context, filters *domain.ReportFilters) (*domain.GSTReport, error)
	ExportXLSX(ctx context.Context, filters *domain.ReportFilters, w io.Writer) error
}

type gstReportService struct {
	invoiceRepo port.InvoiceRepository
}

// NewGSTReportService creates a new GSTReportService implementation.
func NewGSTReportService(invoiceRepo port.InvoiceRepository) GSTReportService {
	return &gstReportService{invoiceRepo: invoiceRepo}
}

func (s *gstReportService) Generate(ctx context.Context, filters *domain.ReportFilters) (*domain.GSTReport, error) {
	invoices, err := s.invoiceRepo.ListWithItems(ctx, filters)
	if err != nil {
		return nil, err
	}
	return gst.Classify(invoices), nil
}

func (s *gstReportService) ExportXLSX(ctx context.Context, filters *domain.ReportFilters, w io.Writer) error {
	report, err := s.Generate(ctx, filters)
	if err != nil {
		return err
	}
	return xlsxexport.WriteTo(w, report)
}
