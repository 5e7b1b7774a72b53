package gst

// LineDraft is the caller-editable portion of a document line: what the UI
// collects before any derived field exists.
type LineDraft struct {
	Quantity int
	Price    float64
	Discount float64 // percent, 0-100
	Rate     float64 // GST rate percent
}

// LineAmounts are the derived figures for one line.
type LineAmounts struct {
	TaxableValue float64
	TaxSplit
	Total float64
}

// ComputeLine derives the taxable value, tax split and line total for a
// draft line. A zero quantity yields a zero-value line, not an error.
func ComputeLine(d LineDraft, interState bool) LineAmounts {
	gross := float64(d.Quantity) * d.Price
	taxable := gross * (1 - d.Discount/100)
	split := Compute(taxable, d.Rate, interState)
	return LineAmounts{
		TaxableValue: taxable,
		TaxSplit:     split,
		Total:        taxable + split.CGST + split.SGST + split.IGST,
	}
}

// Totals are the document-level sums over a set of computed lines.
type Totals struct {
	Subtotal          float64
	TotalDiscount     float64
	TotalTaxableValue float64
	TotalCGST         float64
	TotalSGST         float64
	TotalIGST         float64
	GrandTotal        float64
}

// ComputedLine pairs a draft with its derived amounts for totalling.
type ComputedLine struct {
	LineDraft
	LineAmounts
}

// ComputeTotals folds computed lines into document totals. The grand total
// is the sum of line totals, never independently re-rounded, so it always
// equals the sum of what the individual lines show. An empty slice yields
// all-zero totals.
func ComputeTotals(lines []ComputedLine) Totals {
	var t Totals
	for _, l := range lines {
		gross := float64(l.Quantity) * l.Price
		t.Subtotal += gross
		t.TotalDiscount += gross * l.Discount / 100
		t.TotalTaxableValue += l.TaxableValue
		t.TotalCGST += l.CGST
		t.TotalSGST += l.SGST
		t.TotalIGST += l.IGST
		t.GrandTotal += l.Total
	}
	return t
}
