package xlsxexport

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"medstore/internal/domain"
)

func sampleReport() *domain.GSTReport {
	date := time.Date(2025, 4, 12, 0, 0, 0, 0, time.UTC)
	return &domain.GSTReport{
		B2B: []domain.B2BRow{
			{
				InvoiceNumber: "INV-000042",
				Date:          date,
				CustomerName:  "City Hospital Pharmacy",
				GSTIN:         "27ABCDE1234F1Z5",
				StateCode:     "27",
				TaxableValue:  1000,
				CGST:          90,
				SGST:          90,
				Total:         1180,
			},
		},
		B2CL: []domain.B2CLRow{
			{
				InvoiceNumber: "INV-000043",
				Date:          date,
				StateCode:     "29",
				TaxableValue:  300000,
				IGST:          54000,
				Total:         354000,
			},
		},
		B2CS: []domain.B2CSRow{
			{StateCode: "27", GSTRate: 12, TaxableValue: 500, CGST: 30, SGST: 30, Total: 560},
		},
		HSN: []domain.HSNRow{
			{
				HSNCode:      "3004",
				Description:  "Paracetamol 500mg",
				Quantity:     10,
				Unit:         "strip",
				TaxableValue: 1000,
				GSTRate:      18,
				CGST:         90,
				SGST:         90,
				Total:        1180,
			},
		},
	}
}

func TestWrite_ProducesFourSheets(t *testing.T) {
	f, err := Write(sampleReport())
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"B2B", "B2CL", "B2CS", "HSN"}, f.GetSheetList())
}

func TestWrite_B2BSheetContents(t *testing.T) {
	f, err := Write(sampleReport())
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("B2B")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Invoice Number", rows[0][0])
	assert.Equal(t, "Total", rows[0][9])

	assert.Equal(t, "INV-000042", rows[1][0])
	assert.Equal(t, "12-04-2025", rows[1][1])
	assert.Equal(t, "City Hospital Pharmacy", rows[1][2])
	assert.Equal(t, "27ABCDE1234F1Z5", rows[1][3])
	assert.Equal(t, "1180", rows[1][9])
}

func TestWrite_B2CLOmitsCustomerIdentity(t *testing.T) {
	f, err := Write(sampleReport())
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("B2CL")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, []string{"Invoice Number", "Invoice Date", "State Code", "Taxable Value", "IGST", "Total"}, rows[0])
	assert.Equal(t, "29", rows[1][2])
}

func TestWrite_EmptyReportStillHasHeaders(t *testing.T) {
	f, err := Write(&domain.GSTReport{})
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("HSN")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "HSN", rows[0][0])
}

func TestWriteTo_RoundTrips(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTo(&buf, sampleReport()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("B2CS")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "27", rows[1][0])
}

func TestFilename(t *testing.T) {
	now := time.Date(2025, 4, 30, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "gstr1-2025-04.xlsx", Filename(now))
}
