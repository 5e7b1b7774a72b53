package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"medstore/internal/docnum"
	"medstore/internal/domain"
	"medstore/internal/port"
)

type invoiceRepo struct {
	db *sqlx.DB
}

// NewInvoiceRepo creates a new PostgreSQL-backed InvoiceRepository.
func NewInvoiceRepo(db *sqlx.DB) port.InvoiceRepository {
	return &invoiceRepo{db: db}
}

// invoiceColumns pulls the customer snapshot out of the join on every read.
const invoiceColumns = `i.id, i.invoice_number, i.date, i.customer_id,
	c.name AS customer_name, c.gstin AS customer_gstin, c.type AS customer_type,
	c.state_code AS customer_state_code,
	i.subtotal, i.total_discount, i.total_taxable_value,
	i.total_cgst, i.total_sgst, i.total_igst, i.grand_total,
	i.payment_mode, i.payment_status, i.amount_paid, i.notes,
	i.created_at, i.updated_at`

func (r *invoiceRepo) Create(ctx context.Context, invoice *domain.Invoice, numberPrefix string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Create begin: %w", err)
	}
	defer tx.Rollback()

	// Lock the latest number row so concurrent creates serialize on the
	// sequence instead of both observing the same predecessor. An empty
	// table has no row to lock; there the unique index on invoice_number
	// catches the first-insert race and the service retries once.
	var last string
	err = tx.GetContext(ctx, &last,
		"SELECT invoice_number FROM invoices ORDER BY created_at DESC, invoice_number DESC LIMIT 1 FOR UPDATE")
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("invoiceRepo.Create last number: %w", err)
	}

	now := time.Now().UTC()
	number, fellBack := docnum.Next(numberPrefix, last, now)
	if fellBack {
		log.Printf("invoice numbering: could not parse %q, falling back to %s", last, number)
	}

	invoice.ID = uuid.New()
	invoice.InvoiceNumber = number
	invoice.CreatedAt = now
	invoice.UpdatedAt = now
	if invoice.Date.IsZero() {
		invoice.Date = now
	}

	_, err = tx.ExecContext(ctx, `INSERT INTO invoices
		(id, invoice_number, date, customer_id, subtotal, total_discount,
		 total_taxable_value, total_cgst, total_sgst, total_igst, grand_total,
		 payment_mode, payment_status, amount_paid, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		invoice.ID, invoice.InvoiceNumber, invoice.Date, invoice.CustomerID,
		invoice.Subtotal, invoice.TotalDiscount, invoice.TotalTaxableValue,
		invoice.TotalCGST, invoice.TotalSGST, invoice.TotalIGST, invoice.GrandTotal,
		invoice.PaymentMode, invoice.PaymentStatus, invoice.AmountPaid, invoice.Notes,
		invoice.CreatedAt, invoice.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicateDocumentNumber
		}
		return fmt.Errorf("invoiceRepo.Create insert: %w", err)
	}

	for idx := range invoice.Items {
		item := &invoice.Items[idx]
		item.ID = uuid.New()
		item.InvoiceID = invoice.ID
		item.CreatedAt = now

		_, err = tx.ExecContext(ctx, `INSERT INTO invoice_items
			(id, invoice_id, product_id, product_name, hsn_code, batch_number,
			 quantity, unit, price, discount, taxable_value, gst_rate,
			 cgst, sgst, igst, total, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
			item.ID, item.InvoiceID, item.ProductID, item.ProductName, item.HSNCode,
			item.BatchNumber, item.Quantity, item.Unit, item.Price, item.Discount,
			item.TaxableValue, item.GSTRate, item.CGST, item.SGST, item.IGST,
			item.Total, item.CreatedAt)
		if err != nil {
			return fmt.Errorf("invoiceRepo.Create item: %w", err)
		}

		// Guarded decrement: the WHERE clause refuses to push stock negative.
		result, err := tx.ExecContext(ctx,
			"UPDATE products SET stock = stock - $1, updated_at = $2 WHERE id = $3 AND stock >= $1",
			item.Quantity, now, item.ProductID)
		if err != nil {
			return fmt.Errorf("invoiceRepo.Create stock: %w", err)
		}
		rows, _ := result.RowsAffected()
		if rows == 0 {
			var exists bool
			if err := tx.GetContext(ctx, &exists,
				"SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)", item.ProductID); err != nil {
				return fmt.Errorf("invoiceRepo.Create stock check: %w", err)
			}
			if !exists {
				return domain.ErrNotFound
			}
			return domain.ErrInsufficientStock
		}

		_, err = tx.ExecContext(ctx, `INSERT INTO stock_movements
			(id, product_id, movement_type, quantity, reference_type, reference_id, notes, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			uuid.New(), item.ProductID, domain.MovementSale, -item.Quantity,
			"invoice", invoice.ID, "Sale "+invoice.InvoiceNumber, now)
		if err != nil {
			return fmt.Errorf("invoiceRepo.Create movement: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("invoiceRepo.Create commit: %w", err)
	}
	return nil
}

func (r *invoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	var invoice domain.Invoice
	query := fmt.Sprintf(`SELECT %s FROM invoices i
		JOIN customers c ON c.id = i.customer_id
		WHERE i.id = $1`, invoiceColumns)
	err := r.db.GetContext(ctx, &invoice, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("invoiceRepo.GetByID: %w", err)
	}

	err = r.db.SelectContext(ctx, &invoice.Items,
		"SELECT * FROM invoice_items WHERE invoice_id = $1 ORDER BY created_at ASC", id)
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo.GetByID items: %w", err)
	}
	return &invoice, nil
}

func (r *invoiceRepo) List(ctx context.Context, filters *domain.ReportFilters, offset, limit int) ([]domain.Invoice, int, error) {
	where, args := buildDateWhere("i.date", filters)

	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM invoices i "+where, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.List count: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM invoices i
		JOIN customers c ON c.id = i.customer_id
		%s ORDER BY i.date DESC, i.created_at DESC LIMIT $%d OFFSET $%d`,
		invoiceColumns, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	var invoices []domain.Invoice
	err = r.db.SelectContext(ctx, &invoices, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.List: %w", err)
	}
	return invoices, total, nil
}

func (r *invoiceRepo) ListWithItems(ctx context.Context, filters *domain.ReportFilters) ([]domain.Invoice, error) {
	where, args := buildDateWhere("i.date", filters)

	query := fmt.Sprintf(`SELECT %s FROM invoices i
		JOIN customers c ON c.id = i.customer_id
		%s ORDER BY i.date ASC, i.created_at ASC`, invoiceColumns, where)

	var invoices []domain.Invoice
	err := r.db.SelectContext(ctx, &invoices, query, args...)
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo.ListWithItems: %w", err)
	}
	if len(invoices) == 0 {
		return invoices, nil
	}

	ids := make([]uuid.UUID, len(invoices))
	for i, inv := range invoices {
		ids[i] = inv.ID
	}

	itemQuery, itemArgs, err := sqlx.In(
		"SELECT * FROM invoice_items WHERE invoice_id IN (?) ORDER BY created_at ASC", ids)
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo.ListWithItems in: %w", err)
	}
	itemQuery = r.db.Rebind(itemQuery)

	var items []domain.InvoiceItem
	err = r.db.SelectContext(ctx, &items, itemQuery, itemArgs...)
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo.ListWithItems items: %w", err)
	}

	byInvoice := make(map[uuid.UUID][]domain.InvoiceItem, len(invoices))
	for _, item := range items {
		byInvoice[item.InvoiceID] = append(byInvoice[item.InvoiceID], item)
	}
	for i := range invoices {
		invoices[i].Items = byInvoice[invoices[i].ID]
	}
	return invoices, nil
}

func (r *invoiceRepo) SalesStats(ctx context.Context, filters *domain.ReportFilters) (*domain.SalesStats, error) {
	where, args := buildDateWhere("i.date", filters)

	var row struct {
		TotalSales    float64 `db:"total_sales"`
		TotalReceived float64 `db:"total_received"`
		CGST          float64 `db:"cgst"`
		SGST          float64 `db:"sgst"`
		IGST          float64 `db:"igst"`
	}
	query := fmt.Sprintf(`SELECT
		COALESCE(SUM(i.grand_total), 0) AS total_sales,
		COALESCE(SUM(i.amount_paid), 0) AS total_received,
		COALESCE(SUM(i.total_cgst), 0) AS cgst,
		COALESCE(SUM(i.total_sgst), 0) AS sgst,
		COALESCE(SUM(i.total_igst), 0) AS igst
		FROM invoices i %s`, where)
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return nil, fmt.Errorf("invoiceRepo.SalesStats: %w", err)
	}

	return &domain.SalesStats{
		TotalSales:    row.TotalSales,
		TotalReceived: row.TotalReceived,
		TotalPending:  row.TotalSales - row.TotalReceived,
		GST: domain.GSTBreakup{
			CGST: row.CGST,
			SGST: row.SGST,
			IGST: row.IGST,
		},
	}, nil
}

// buildDateWhere renders an optional date-bounded WHERE clause for the
// given column. Positional placeholders start at $1.
func buildDateWhere(column string, filters *domain.ReportFilters) (string, []interface{}) {
	args := []interface{}{}
	conds := []string{}
	if filters != nil {
		if filters.From != nil {
			args = append(args, *filters.From)
			conds = append(conds, fmt.Sprintf("%s >= $%d", column, len(args)))
		}
		if filters.To != nil {
			args = append(args, *filters.To)
			conds = append(conds, fmt.Sprintf("%s <= $%d", column, len(args)))
		}
	}
	if len(conds) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}
