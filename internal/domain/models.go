package domain

import (
	"time"

	"github.com/google/uuid"
)

// Product represents a pharmacy catalog item with stock on hand.
type Product struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	Name          string     `db:"name" json:"name"`
	HSNCode       string     `db:"hsn_code" json:"hsn_code"`
	BatchNumber   string     `db:"batch_number" json:"batch_number"`
	Manufacturer  string     `db:"manufacturer" json:"manufacturer"`
	ExpiryDate    *time.Time `db:"expiry_date" json:"expiry_date"`
	PurchasePrice float64    `db:"purchase_price" json:"purchase_price"`
	SellingPrice  float64    `db:"selling_price" json:"selling_price"`
	GSTRate       float64    `db:"gst_rate" json:"gst_rate"`
	Stock         int        `db:"stock" json:"stock"`
	Unit          string     `db:"unit" json:"unit"`
	Category      string     `db:"category" json:"category"`
	ReorderLevel  int        `db:"reorder_level" json:"reorder_level"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`
}

// Customer represents a billing counterparty on the sales side.
// StateCode is the 2-digit GST state code used for jurisdiction checks;
// B2B customers must carry a GSTIN.
type Customer struct {
	ID        uuid.UUID    `db:"id" json:"id"`
	Name      string       `db:"name" json:"name"`
	Phone     string       `db:"phone" json:"phone"`
	Email     string       `db:"email" json:"email"`
	Address   string       `db:"address" json:"address"`
	GSTIN     string       `db:"gstin" json:"gstin"`
	Type      CustomerType `db:"type" json:"type"`
	State     string       `db:"state" json:"state"`
	StateCode string       `db:"state_code" json:"state_code"`
	CreatedAt time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt time.Time    `db:"updated_at" json:"updated_at"`
}

// Supplier represents a purchase-side counterparty.
type Supplier struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Phone     string    `db:"phone" json:"phone"`
	Email     string    `db:"email" json:"email"`
	Address   string    `db:"address" json:"address"`
	GSTIN     string    `db:"gstin" json:"gstin"`
	State     string    `db:"state" json:"state"`
	StateCode string    `db:"state_code" json:"state_code"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Invoice is a persisted sales document. Totals are stored redundantly with
// the line items at creation time; invoices are immutable once persisted.
// Customer* fields are denormalized from the customers join on read.
type Invoice struct {
	ID                uuid.UUID     `db:"id" json:"id"`
	InvoiceNumber     string        `db:"invoice_number" json:"invoice_number"`
	Date              time.Time     `db:"date" json:"date"`
	CustomerID        uuid.UUID     `db:"customer_id" json:"customer_id"`
	CustomerName      string        `db:"customer_name" json:"customer_name"`
	CustomerGSTIN     string        `db:"customer_gstin" json:"customer_gstin"`
	CustomerType      CustomerType  `db:"customer_type" json:"customer_type"`
	CustomerStateCode string        `db:"customer_state_code" json:"customer_state_code"`
	Items             []InvoiceItem `db:"-" json:"items,omitempty"`
	Subtotal          float64       `db:"subtotal" json:"subtotal"`
	TotalDiscount     float64       `db:"total_discount" json:"total_discount"`
	TotalTaxableValue float64       `db:"total_taxable_value" json:"total_taxable_value"`
	TotalCGST         float64       `db:"total_cgst" json:"total_cgst"`
	TotalSGST         float64       `db:"total_sgst" json:"total_sgst"`
	TotalIGST         float64       `db:"total_igst" json:"total_igst"`
	GrandTotal        float64       `db:"grand_total" json:"grand_total"`
	PaymentMode       PaymentMode   `db:"payment_mode" json:"payment_mode"`
	PaymentStatus     PaymentStatus `db:"payment_status" json:"payment_status"`
	AmountPaid        float64       `db:"amount_paid" json:"amount_paid"`
	Notes             string        `db:"notes" json:"notes"`
	CreatedAt         time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time     `db:"updated_at" json:"updated_at"`
}

// InvoiceItem is one product line on an invoice. Product name, HSN code,
// batch and unit are snapshotted at creation so the line survives later
// catalog edits.
type InvoiceItem struct {
	ID           uuid.UUID `db:"id" json:"id"`
	InvoiceID    uuid.UUID `db:"invoice_id" json:"invoice_id"`
	ProductID    uuid.UUID `db:"product_id" json:"product_id"`
	ProductName  string    `db:"product_name" json:"product_name"`
	HSNCode      string    `db:"hsn_code" json:"hsn_code"`
	BatchNumber  string    `db:"batch_number" json:"batch_number"`
	Quantity     int       `db:"quantity" json:"quantity"`
	Unit         string    `db:"unit" json:"unit"`
	Price        float64   `db:"price" json:"price"`
	Discount     float64   `db:"discount" json:"discount"`
	TaxableValue float64   `db:"taxable_value" json:"taxable_value"`
	GSTRate      float64   `db:"gst_rate" json:"gst_rate"`
	CGST         float64   `db:"cgst" json:"cgst"`
	SGST         float64   `db:"sgst" json:"sgst"`
	IGST         float64   `db:"igst" json:"igst"`
	Total        float64   `db:"total" json:"total"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// Purchase is a persisted stock-inward document from a supplier.
type Purchase struct {
	ID                uuid.UUID      `db:"id" json:"id"`
	PurchaseNumber    string         `db:"purchase_number" json:"purchase_number"`
	Date              time.Time      `db:"date" json:"date"`
	SupplierID        uuid.UUID      `db:"supplier_id" json:"supplier_id"`
	SupplierName      string         `db:"supplier_name" json:"supplier_name"`
	SupplierGSTIN     string         `db:"supplier_gstin" json:"supplier_gstin"`
	SupplierStateCode string         `db:"supplier_state_code" json:"supplier_state_code"`
	Items             []PurchaseItem `db:"-" json:"items,omitempty"`
	Subtotal          float64        `db:"subtotal" json:"subtotal"`
	TotalTaxableValue float64        `db:"total_taxable_value" json:"total_taxable_value"`
	TotalCGST         float64        `db:"total_cgst" json:"total_cgst"`
	TotalSGST         float64        `db:"total_sgst" json:"total_sgst"`
	TotalIGST         float64        `db:"total_igst" json:"total_igst"`
	GrandTotal        float64        `db:"grand_total" json:"grand_total"`
	PaymentStatus     PaymentStatus  `db:"payment_status" json:"payment_status"`
	AmountPaid        float64        `db:"amount_paid" json:"amount_paid"`
	Notes             string         `db:"notes" json:"notes"`
	CreatedAt         time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at" json:"updated_at"`
}

// PurchaseItem is one product line on a purchase. Purchases carry no
// line-level discount; the supplier price is taken as the taxable base.
type PurchaseItem struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	PurchaseID   uuid.UUID  `db:"purchase_id" json:"purchase_id"`
	ProductID    uuid.UUID  `db:"product_id" json:"product_id"`
	ProductName  string     `db:"product_name" json:"product_name"`
	HSNCode      string     `db:"hsn_code" json:"hsn_code"`
	BatchNumber  string     `db:"batch_number" json:"batch_number"`
	ExpiryDate   *time.Time `db:"expiry_date" json:"expiry_date"`
	Quantity     int        `db:"quantity" json:"quantity"`
	Unit         string     `db:"unit" json:"unit"`
	Price        float64    `db:"price" json:"price"`
	TaxableValue float64    `db:"taxable_value" json:"taxable_value"`
	GSTRate      float64    `db:"gst_rate" json:"gst_rate"`
	CGST         float64    `db:"cgst" json:"cgst"`
	SGST         float64    `db:"sgst" json:"sgst"`
	IGST         float64    `db:"igst" json:"igst"`
	Total        float64    `db:"total" json:"total"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
}

// StockMovement is an audit record of a stock level change. Quantity is
// signed: positive for inward movements, negative for outward.
type StockMovement struct {
	ID            uuid.UUID    `db:"id" json:"id"`
	ProductID     uuid.UUID    `db:"product_id" json:"product_id"`
	ProductName   string       `db:"product_name" json:"product_name"`
	MovementType  MovementType `db:"movement_type" json:"movement_type"`
	Quantity      int          `db:"quantity" json:"quantity"`
	ReferenceType string       `db:"reference_type" json:"reference_type"`
	ReferenceID   *uuid.UUID   `db:"reference_id" json:"reference_id"`
	Notes         string       `db:"notes" json:"notes"`
	CreatedAt     time.Time    `db:"created_at" json:"created_at"`
}

// User represents a staff member who can sign in to the store backend.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	Name         string    `db:"name" json:"name"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         UserRole  `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}
