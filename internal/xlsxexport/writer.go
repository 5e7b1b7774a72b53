// Package xlsxexport renders a GST report as the 4-sheet GSTR-1 workbook
// accountants expect: B2B, B2CL, B2CS and HSN.
package xlsxexport

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"medstore/internal/domain"
)

const dateLayout = "02-01-2006"

var b2bHeader = []interface{}{
	"Invoice Number", "Invoice Date", "Customer Name", "GSTIN", "State Code",
	"Taxable Value", "CGST", "SGST", "IGST", "Total",
}

var b2clHeader = []interface{}{
	"Invoice Number", "Invoice Date", "State Code", "Taxable Value", "IGST", "Total",
}

var b2csHeader = []interface{}{
	"State Code", "Rate", "Taxable Value", "CGST", "SGST", "IGST", "Total",
}

var hsnHeader = []interface{}{
	"HSN", "Description", "Quantity", "UQC", "Taxable Value", "Rate",
	"CGST", "SGST", "IGST", "Total",
}

// Write renders the report to a new workbook. The caller owns the returned
// file and should Close it when done.
func Write(report *domain.GSTReport) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := writeSheet(f, "B2B", b2bHeader, len(report.B2B), func(i int) []interface{} {
		r := report.B2B[i]
		return []interface{}{
			r.InvoiceNumber, r.Date.Format(dateLayout), r.CustomerName, r.GSTIN,
			r.StateCode, r.TaxableValue, r.CGST, r.SGST, r.IGST, r.Total,
		}
	}); err != nil {
		return nil, err
	}

	if err := writeSheet(f, "B2CL", b2clHeader, len(report.B2CL), func(i int) []interface{} {
		r := report.B2CL[i]
		return []interface{}{
			r.InvoiceNumber, r.Date.Format(dateLayout), r.StateCode,
			r.TaxableValue, r.IGST, r.Total,
		}
	}); err != nil {
		return nil, err
	}

	if err := writeSheet(f, "B2CS", b2csHeader, len(report.B2CS), func(i int) []interface{} {
		r := report.B2CS[i]
		return []interface{}{
			r.StateCode, r.GSTRate, r.TaxableValue, r.CGST, r.SGST, r.IGST, r.Total,
		}
	}); err != nil {
		return nil, err
	}

	if err := writeSheet(f, "HSN", hsnHeader, len(report.HSN), func(i int) []interface{} {
		r := report.HSN[i]
		return []interface{}{
			r.HSNCode, r.Description, r.Quantity, r.Unit, r.TaxableValue,
			r.GSTRate, r.CGST, r.SGST, r.IGST, r.Total,
		}
	}); err != nil {
		return nil, err
	}

	// excelize seeds every workbook with "Sheet1"; B2B takes its place.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("xlsxexport: delete default sheet: %w", err)
	}
	idx, err := f.GetSheetIndex("B2B")
	if err != nil {
		return nil, fmt.Errorf("xlsxexport: sheet index: %w", err)
	}
	f.SetActiveSheet(idx)
	return f, nil
}

// WriteTo renders the report and streams the workbook to w.
func WriteTo(w io.Writer, report *domain.GSTReport) error {
	f, err := Write(report)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.Write(w); err != nil {
		return fmt.Errorf("xlsxexport: write workbook: %w", err)
	}
	return nil
}

// Filename builds the download name for a report generated now.
func Filename(now time.Time) string {
	return fmt.Sprintf("gstr1-%s.xlsx", now.Format("2006-01"))
}

func writeSheet(f *excelize.File, name string, header []interface{}, rows int, row func(int) []interface{}) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("xlsxexport: new sheet %s: %w", name, err)
	}
	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		return fmt.Errorf("xlsxexport: header %s: %w", name, err)
	}
	for i := 0; i < rows; i++ {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("xlsxexport: cell name: %w", err)
		}
		values := row(i)
		if err := f.SetSheetRow(name, cell, &values); err != nil {
			return fmt.Errorf("xlsxexport: row %s: %w", name, err)
		}
	}
	return nil
}
