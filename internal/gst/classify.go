package gst

import (
	"fmt"
	"sort"

	"medstore/internal/domain"
)

// Classify projects a set of settled invoices into the four GSTR-1 report
// buckets. The projection is pure and idempotent: a fixed input set always
// yields the same output, independent of input order within the aggregate
// buckets (B2CS rows are sorted by state code then rate, HSN rows by code;
// B2B and B2CL preserve input order).
//
// Invoices whose customer classification is missing or unknown are excluded
// from every bucket and reported as a warning rather than failing the run.
func Classify(invoices []domain.Invoice) *domain.GSTReport {
	report := &domain.GSTReport{
		B2B:  []domain.B2BRow{},
		B2CL: []domain.B2CLRow{},
		B2CS: []domain.B2CSRow{},
		HSN:  []domain.HSNRow{},
	}

	type b2csKey struct {
		stateCode string
		rate      float64
	}
	b2csAgg := make(map[b2csKey]*domain.B2CSRow)
	hsnAgg := make(map[string]*domain.HSNRow)
	hsnOrder := []string{}

	for i := range invoices {
		inv := &invoices[i]

		switch inv.CustomerType {
		case domain.CustomerB2B:
			report.B2B = append(report.B2B, domain.B2BRow{
				InvoiceNumber: inv.InvoiceNumber,
				Date:          inv.Date,
				CustomerName:  inv.CustomerName,
				GSTIN:         inv.CustomerGSTIN,
				StateCode:     inv.CustomerStateCode,
				TaxableValue:  inv.TotalTaxableValue,
				CGST:          inv.TotalCGST,
				SGST:          inv.TotalSGST,
				IGST:          inv.TotalIGST,
				Total:         inv.GrandTotal,
			})
		case domain.CustomerB2CL:
			report.B2CL = append(report.B2CL, domain.B2CLRow{
				InvoiceNumber: inv.InvoiceNumber,
				Date:          inv.Date,
				StateCode:     inv.CustomerStateCode,
				TaxableValue:  inv.TotalTaxableValue,
				IGST:          inv.TotalIGST,
				Total:         inv.GrandTotal,
			})
		case domain.CustomerB2C:
			// B2CS aggregates per line item so a multi-rate invoice lands in
			// the correct (state, rate) buckets.
			for j := range inv.Items {
				item := &inv.Items[j]
				key := b2csKey{stateCode: inv.CustomerStateCode, rate: item.GSTRate}
				row, ok := b2csAgg[key]
				if !ok {
					row = &domain.B2CSRow{StateCode: key.stateCode, GSTRate: key.rate}
					b2csAgg[key] = row
				}
				row.TaxableValue += item.TaxableValue
				row.CGST += item.CGST
				row.SGST += item.SGST
				row.IGST += item.IGST
				row.Total += item.Total
			}
		default:
			report.Warnings = append(report.Warnings, domain.ReportWarning{
				Code: domain.WarnUnclassifiedInvoice,
				Message: fmt.Sprintf("invoice %s has unknown customer classification %q and was excluded from the report",
					inv.InvoiceNumber, inv.CustomerType),
			})
			continue
		}

		// HSN summary spans every line of every classified invoice.
		for j := range inv.Items {
			item := &inv.Items[j]
			row, ok := hsnAgg[item.HSNCode]
			if !ok {
				row = &domain.HSNRow{
					HSNCode:     item.HSNCode,
					Description: item.ProductName,
					Unit:        item.Unit,
					GSTRate:     item.GSTRate,
				}
				hsnAgg[item.HSNCode] = row
				hsnOrder = append(hsnOrder, item.HSNCode)
			} else if row.GSTRate != item.GSTRate {
				report.Warnings = append(report.Warnings, domain.ReportWarning{
					Code: domain.WarnHSNRateMismatch,
					Message: fmt.Sprintf("HSN code %s carries GST rate %.2f%% on invoice %s but was first seen at %.2f%%; first-seen rate kept",
						item.HSNCode, item.GSTRate, inv.InvoiceNumber, row.GSTRate),
				})
			}
			row.Quantity += item.Quantity
			row.TaxableValue += item.TaxableValue
			row.CGST += item.CGST
			row.SGST += item.SGST
			row.IGST += item.IGST
			row.Total += item.Total
		}
	}

	b2csRows := make([]domain.B2CSRow, 0, len(b2csAgg))
	for _, row := range b2csAgg {
		b2csRows = append(b2csRows, *row)
	}
	sort.Slice(b2csRows, func(i, j int) bool {
		if b2csRows[i].StateCode != b2csRows[j].StateCode {
			return b2csRows[i].StateCode < b2csRows[j].StateCode
		}
		return b2csRows[i].GSTRate < b2csRows[j].GSTRate
	})
	report.B2CS = b2csRows

	sort.Strings(hsnOrder)
	for _, code := range hsnOrder {
		report.HSN = append(report.HSN, *hsnAgg[code])
	}

	report.Summary = summarize(report)
	return report
}

// summarize computes per-bucket totals, counts and the overall tax breakup.
func summarize(r *domain.GSTReport) domain.ReportSummary {
	var s domain.ReportSummary
	for i := range r.B2B {
		s.TotalB2B += r.B2B[i].Total
		s.GST.CGST += r.B2B[i].CGST
		s.GST.SGST += r.B2B[i].SGST
		s.GST.IGST += r.B2B[i].IGST
	}
	for i := range r.B2CL {
		s.TotalB2CL += r.B2CL[i].Total
		s.GST.IGST += r.B2CL[i].IGST
	}
	for i := range r.B2CS {
		s.TotalB2CS += r.B2CS[i].Total
		s.GST.CGST += r.B2CS[i].CGST
		s.GST.SGST += r.B2CS[i].SGST
		s.GST.IGST += r.B2CS[i].IGST
	}
	s.CountB2B = len(r.B2B)
	s.CountB2CL = len(r.B2CL)
	s.CountB2CS = len(r.B2CS)
	return s
}
