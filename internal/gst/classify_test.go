package gst

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medstore/internal/domain"
)

func b2cInvoice(number, stateCode string, taxable, rate float64) domain.Invoice {
	split := Compute(taxable, rate, false)
	total := taxable + split.CGST + split.SGST
	return domain.Invoice{
		InvoiceNumber:     number,
		Date:              time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC),
		CustomerType:      domain.CustomerB2C,
		CustomerStateCode: stateCode,
		TotalTaxableValue: taxable,
		TotalCGST:         split.CGST,
		TotalSGST:         split.SGST,
		GrandTotal:        total,
		Items: []domain.InvoiceItem{{
			ProductName:  "Paracetamol 500mg",
			HSNCode:      "3004",
			Quantity:     1,
			Unit:         "strip",
			TaxableValue: taxable,
			GSTRate:      rate,
			CGST:         split.CGST,
			SGST:         split.SGST,
			Total:        total,
		}},
	}
}

func TestClassify_B2BRowPerInvoice(t *testing.T) {
	inv := domain.Invoice{
		InvoiceNumber:     "INV-000007",
		Date:              time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC),
		CustomerType:      domain.CustomerB2B,
		CustomerName:      "Shree Pharma Distributors",
		CustomerGSTIN:     "27AAACS1234F1Z5",
		CustomerStateCode: "27",
		TotalTaxableValue: 5000,
		TotalCGST:         450,
		TotalSGST:         450,
		GrandTotal:        5900,
		Items: []domain.InvoiceItem{{
			ProductName: "Amoxicillin 250mg", HSNCode: "3004", Quantity: 10,
			Unit: "strip", TaxableValue: 5000, GSTRate: 18, CGST: 450, SGST: 450, Total: 5900,
		}},
	}

	report := Classify([]domain.Invoice{inv})

	require.Len(t, report.B2B, 1)
	row := report.B2B[0]
	assert.Equal(t, "INV-000007", row.InvoiceNumber)
	assert.Equal(t, "Shree Pharma Distributors", row.CustomerName)
	assert.Equal(t, "27AAACS1234F1Z5", row.GSTIN)
	assert.Equal(t, "27", row.StateCode)
	assert.InDelta(t, 5900, row.Total, 1e-9)
	assert.Empty(t, report.B2CL)
	assert.Empty(t, report.B2CS)
}

func TestClassify_B2CLAnonymized(t *testing.T) {
	inv := domain.Invoice{
		InvoiceNumber:     "INV-000008",
		CustomerType:      domain.CustomerB2CL,
		CustomerName:      "Walk-in High Value",
		CustomerStateCode: "29",
		TotalTaxableValue: 300000,
		TotalIGST:         54000,
		GrandTotal:        354000,
	}

	report := Classify([]domain.Invoice{inv})

	require.Len(t, report.B2CL, 1)
	assert.Equal(t, "29", report.B2CL[0].StateCode)
	assert.InDelta(t, 54000, report.B2CL[0].IGST, 1e-9)
	assert.InDelta(t, 354000, report.B2CL[0].Total, 1e-9)
}

func TestClassify_B2CSFoldsByStateAndRate(t *testing.T) {
	x := b2cInvoice("INV-000010", "27", 1000, 18)
	y := b2cInvoice("INV-000011", "27", 500, 18)
	z := b2cInvoice("INV-000012", "27", 200, 5)

	report := Classify([]domain.Invoice{x, y, z})

	require.Len(t, report.B2CS, 2)
	// Sorted by state code then rate.
	assert.Equal(t, 5.0, report.B2CS[0].GSTRate)
	assert.Equal(t, 18.0, report.B2CS[1].GSTRate)

	folded := report.B2CS[1]
	assert.Equal(t, "27", folded.StateCode)
	assert.InDelta(t, 1500, folded.TaxableValue, 1e-9)
	assert.InDelta(t, folded.CGST, folded.SGST, 1e-9)
	assert.InDelta(t, 1500*0.18, folded.CGST+folded.SGST, 1e-9)
}

func TestClassify_HSNSummaryAggregates(t *testing.T) {
	a := b2cInvoice("INV-000020", "27", 1000, 12)
	b := b2cInvoice("INV-000021", "29", 400, 12)
	b.Items[0].HSNCode = "3004"
	b.Items[0].Quantity = 3

	report := Classify([]domain.Invoice{a, b})

	require.Len(t, report.HSN, 1)
	row := report.HSN[0]
	assert.Equal(t, "3004", row.HSNCode)
	assert.Equal(t, 4, row.Quantity)
	assert.InDelta(t, 1400, row.TaxableValue, 1e-9)
	assert.Equal(t, "Paracetamol 500mg", row.Description)
}

func TestClassify_HSNRateMismatchWarns(t *testing.T) {
	a := b2cInvoice("INV-000030", "27", 1000, 12)
	b := b2cInvoice("INV-000031", "27", 500, 5)
	b.Items[0].HSNCode = a.Items[0].HSNCode

	report := Classify([]domain.Invoice{a, b})

	require.Len(t, report.HSN, 1)
	// First-seen rate kept, values still accumulated.
	assert.Equal(t, 12.0, report.HSN[0].GSTRate)
	assert.InDelta(t, 1500, report.HSN[0].TaxableValue, 1e-9)

	require.Len(t, report.Warnings, 1)
	assert.Equal(t, domain.WarnHSNRateMismatch, report.Warnings[0].Code)
}

func TestClassify_UnclassifiedInvoiceSkipped(t *testing.T) {
	inv := b2cInvoice("INV-000040", "27", 1000, 18)
	inv.CustomerType = ""

	report := Classify([]domain.Invoice{inv})

	assert.Empty(t, report.B2B)
	assert.Empty(t, report.B2CL)
	assert.Empty(t, report.B2CS)
	assert.Empty(t, report.HSN)
	require.Len(t, report.Warnings, 1)
	assert.Equal(t, domain.WarnUnclassifiedInvoice, report.Warnings[0].Code)
}

func TestClassify_Idempotent(t *testing.T) {
	invoices := []domain.Invoice{
		b2cInvoice("INV-000050", "27", 1000, 18),
		b2cInvoice("INV-000051", "29", 250, 5),
	}
	invoices[0].CustomerType = domain.CustomerB2C
	b2b := b2cInvoice("INV-000052", "27", 9000, 12)
	b2b.CustomerType = domain.CustomerB2B
	b2b.CustomerGSTIN = "27AAACS1234F1Z5"
	invoices = append(invoices, b2b)

	first := Classify(invoices)
	second := Classify(invoices)

	assert.Equal(t, first, second)
}

func TestClassify_Empty(t *testing.T) {
	report := Classify(nil)

	assert.Empty(t, report.B2B)
	assert.Empty(t, report.B2CL)
	assert.Empty(t, report.B2CS)
	assert.Empty(t, report.HSN)
	assert.Zero(t, report.Summary.TotalB2B)
	assert.Empty(t, report.Warnings)
}

func TestClassify_SummaryTotals(t *testing.T) {
	invoices := []domain.Invoice{
		b2cInvoice("INV-000060", "27", 1000, 18),
		b2cInvoice("INV-000061", "27", 500, 18),
	}

	report := Classify(invoices)

	assert.Equal(t, 1, report.Summary.CountB2CS)
	assert.InDelta(t, 1770, report.Summary.TotalB2CS, 1e-9)
	assert.InDelta(t, 135, report.Summary.GST.CGST, 1e-9)
	assert.InDelta(t, 135, report.Summary.GST.SGST, 1e-9)
}
