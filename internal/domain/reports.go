package domain

import "time"

// B2BRow is one GSTR-1 B2B report line: one row per qualifying invoice.
type B2BRow struct {
	InvoiceNumber string    `json:"invoice_number"`
	Date          time.Time `json:"date"`
	CustomerName  string    `json:"customer_name"`
	GSTIN         string    `json:"gstin"`
	StateCode     string    `json:"state_code"`
	TaxableValue  float64   `json:"taxable_value"`
	CGST          float64   `json:"cgst"`
	SGST          float64   `json:"sgst"`
	IGST          float64   `json:"igst"`
	Total         float64   `json:"total"`
}

// B2CLRow is one GSTR-1 B2C-Large report line. Statutory convention
// anonymizes the buyer: only the state code is carried.
type B2CLRow struct {
	InvoiceNumber string    `json:"invoice_number"`
	Date          time.Time `json:"date"`
	StateCode     string    `json:"state_code"`
	TaxableValue  float64   `json:"taxable_value"`
	IGST          float64   `json:"igst"`
	Total         float64   `json:"total"`
}

// B2CSRow is a GSTR-1 B2C-Small aggregate keyed by (state code, GST rate).
type B2CSRow struct {
	StateCode    string  `json:"state_code"`
	GSTRate      float64 `json:"gst_rate"`
	TaxableValue float64 `json:"taxable_value"`
	CGST         float64 `json:"cgst"`
	SGST         float64 `json:"sgst"`
	IGST         float64 `json:"igst"`
	Total        float64 `json:"total"`
}

// HSNRow is a GSTR-1 HSN summary aggregate keyed by HSN code.
type HSNRow struct {
	HSNCode      string  `json:"hsn_code"`
	Description  string  `json:"description"`
	Quantity     int     `json:"quantity"`
	Unit         string  `json:"unit"`
	TaxableValue float64 `json:"taxable_value"`
	GSTRate      float64 `json:"gst_rate"`
	CGST         float64 `json:"cgst"`
	SGST         float64 `json:"sgst"`
	IGST         float64 `json:"igst"`
	Total        float64 `json:"total"`
}

// GSTBreakup sums the three tax components across the report.
type GSTBreakup struct {
	CGST float64 `json:"cgst"`
	SGST float64 `json:"sgst"`
	IGST float64 `json:"igst"`
}

// ReportSummary carries per-bucket grand totals and invoice counts.
type ReportSummary struct {
	TotalB2B  float64    `json:"total_b2b"`
	TotalB2CL float64    `json:"total_b2cl"`
	TotalB2CS float64    `json:"total_b2cs"`
	CountB2B  int        `json:"count_b2b"`
	CountB2CL int        `json:"count_b2cl"`
	CountB2CS int        `json:"count_b2cs"`
	GST       GSTBreakup `json:"gst"`
}

// ReportWarning is a non-fatal data-quality finding surfaced alongside
// report data instead of being swallowed.
type ReportWarning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Report warning codes.
const (
	WarnHSNRateMismatch     = "HSN_RATE_MISMATCH"
	WarnUnclassifiedInvoice = "UNCLASSIFIED_INVOICE"
)

// GSTReport is the full GSTR-1 projection over a set of settled invoices.
// It is derived, never persisted.
type GSTReport struct {
	B2B      []B2BRow        `json:"b2b"`
	B2CL     []B2CLRow       `json:"b2cl"`
	B2CS     []B2CSRow       `json:"b2cs"`
	HSN      []HSNRow        `json:"hsn"`
	Summary  ReportSummary   `json:"summary"`
	Warnings []ReportWarning `json:"warnings,omitempty"`
}

// ReportFilters bounds a report or listing query by date.
type ReportFilters struct {
	From *time.Time
	To   *time.Time
}

// SalesStats summarizes the sales ledger for the sales overview screen.
type SalesStats struct {
	TotalSales    float64    `db:"total_sales" json:"total_sales"`
	TotalReceived float64    `db:"total_received" json:"total_received"`
	TotalPending  float64    `json:"total_pending"`
	GST           GSTBreakup `json:"gst"`
}

// TrendPoint is one day on the sales/purchases trend chart.
type TrendPoint struct {
	Date      time.Time `db:"day" json:"date"`
	Sales     float64   `db:"sales" json:"sales"`
	Purchases float64   `db:"purchases" json:"purchases"`
}

// CategorySales is revenue attributed to one product category.
type CategorySales struct {
	Category string  `db:"category" json:"name"`
	Value    float64 `db:"value" json:"value"`
}

// PeriodComparison pairs a metric's current-period value with the prior
// period's for the dashboard cards.
type PeriodComparison struct {
	Current  float64 `json:"current"`
	Previous float64 `json:"previous"`
}

// DashboardData is everything the dashboard screen renders.
type DashboardData struct {
	Sales      PeriodComparison `json:"sales"`
	Purchases  PeriodComparison `json:"purchases"`
	Profit     PeriodComparison `json:"profit"`
	Invoices   PeriodComparison `json:"invoices"`
	Trend      []TrendPoint     `json:"trend"`
	Categories []CategorySales  `json:"categories"`
	LowStock   []Product        `json:"low_stock"`
	Expiring   []Product        `json:"expiring"`
}
