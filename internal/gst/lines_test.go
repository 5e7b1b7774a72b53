package gst

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func computeLines(drafts []LineDraft, interState bool) []ComputedLine {
	lines := make([]ComputedLine, len(drafts))
	for i, d := range drafts {
		lines[i] = ComputedLine{LineDraft: d, LineAmounts: ComputeLine(d, interState)}
	}
	return lines
}

func TestComputeLine_DiscountedIntraState(t *testing.T) {
	got := ComputeLine(LineDraft{Quantity: 2, Price: 100, Discount: 10, Rate: 12}, false)

	assert.InDelta(t, 180, got.TaxableValue, 1e-9)
	assert.InDelta(t, 10.8, got.CGST, 1e-9)
	assert.InDelta(t, 10.8, got.SGST, 1e-9)
	assert.Zero(t, got.IGST)
	assert.InDelta(t, 201.6, got.Total, 1e-9)
}

func TestComputeLine_InterState(t *testing.T) {
	got := ComputeLine(LineDraft{Quantity: 1, Price: 1000, Rate: 18}, true)

	assert.InDelta(t, 1000, got.TaxableValue, 1e-9)
	assert.InDelta(t, 180, got.IGST, 1e-9)
	assert.InDelta(t, 1180, got.Total, 1e-9)
}

func TestComputeLine_ZeroQuantity(t *testing.T) {
	got := ComputeLine(LineDraft{Quantity: 0, Price: 500, Rate: 18}, false)

	assert.Zero(t, got.TaxableValue)
	assert.Zero(t, got.Total)
}

func TestComputeTotals_MultiLineInvoice(t *testing.T) {
	lines := computeLines([]LineDraft{
		{Quantity: 2, Price: 100, Discount: 10, Rate: 12},
		{Quantity: 1, Price: 500, Discount: 0, Rate: 5},
	}, false)

	totals := ComputeTotals(lines)

	assert.InDelta(t, 700, totals.Subtotal, 1e-9)
	assert.InDelta(t, 20, totals.TotalDiscount, 1e-9)
	assert.InDelta(t, 680, totals.TotalTaxableValue, 1e-9)
	assert.InDelta(t, 23.3, totals.TotalCGST, 1e-9)
	assert.InDelta(t, 23.3, totals.TotalSGST, 1e-9)
	assert.Zero(t, totals.TotalIGST)
	assert.InDelta(t, 726.6, totals.GrandTotal, 1e-9)
}

func TestComputeTotals_GrandTotalEqualsLineSum(t *testing.T) {
	lines := computeLines([]LineDraft{
		{Quantity: 3, Price: 33.33, Discount: 7.5, Rate: 18},
		{Quantity: 10, Price: 9.99, Discount: 0, Rate: 5},
		{Quantity: 1, Price: 12999, Discount: 2, Rate: 28},
	}, true)

	totals := ComputeTotals(lines)

	var lineSum float64
	for _, l := range lines {
		lineSum += l.Total
	}
	// Exact equality: the grand total is the same fold, with no independent
	// rounding at the aggregate level.
	assert.Equal(t, lineSum, totals.GrandTotal)
}

func TestComputeTotals_Empty(t *testing.T) {
	assert.Equal(t, Totals{}, ComputeTotals(nil))
	assert.Equal(t, Totals{}, ComputeTotals([]ComputedLine{}))
}
