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

type purchaseRepo struct {
	db *sqlx.DB
}

// NewPurchaseRepo creates a new PostgreSQL-backed PurchaseRepository.
func NewPurchaseRepo(db *sqlx.DB) port.PurchaseRepository {
	return &purchaseRepo{db: db}
}

const purchaseColumns = `p.id, p.purchase_number, p.date, p.supplier_id,
	s.name AS supplier_name, s.gstin AS supplier_gstin, s.state_code AS supplier_state_code,
	p.subtotal, p.total_taxable_value, p.total_cgst, p.total_sgst, p.total_igst,
	p.grand_total, p.payment_status, p.amount_paid, p.notes, p.created_at, p.updated_at`

func (r *purchaseRepo) Create(ctx context.Context, purchase *domain.Purchase, numberPrefix string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("purchaseRepo.Create begin: %w", err)
	}
	defer tx.Rollback()

	// Same numbering discipline as invoices: lock the latest row, or rely
	// on the unique number index plus a service-level retry when the table
	// is empty.
	var last string
	err = tx.GetContext(ctx, &last,
		"SELECT purchase_number FROM purchases ORDER BY created_at DESC, purchase_number DESC LIMIT 1 FOR UPDATE")
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("purchaseRepo.Create last number: %w", err)
	}

	now := time.Now().UTC()
	number, fellBack := docnum.Next(numberPrefix, last, now)
	if fellBack {
		log.Printf("purchase numbering: could not parse %q, falling back to %s", last, number)
	}

	purchase.ID = uuid.New()
	purchase.PurchaseNumber = number
	purchase.CreatedAt = now
	purchase.UpdatedAt = now
	if purchase.Date.IsZero() {
		purchase.Date = now
	}

	_, err = tx.ExecContext(ctx, `INSERT INTO purchases
		(id, purchase_number, date, supplier_id, subtotal, total_taxable_value,
		 total_cgst, total_sgst, total_igst, grand_total,
		 payment_status, amount_paid, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		purchase.ID, purchase.PurchaseNumber, purchase.Date, purchase.SupplierID,
		purchase.Subtotal, purchase.TotalTaxableValue,
		purchase.TotalCGST, purchase.TotalSGST, purchase.TotalIGST, purchase.GrandTotal,
		purchase.PaymentStatus, purchase.AmountPaid, purchase.Notes,
		purchase.CreatedAt, purchase.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return domain.ErrDuplicateDocumentNumber
		}
		return fmt.Errorf("purchaseRepo.Create insert: %w", err)
	}

	for idx := range purchase.Items {
		item := &purchase.Items[idx]
		item.ID = uuid.New()
		item.PurchaseID = purchase.ID
		item.CreatedAt = now

		_, err = tx.ExecContext(ctx, `INSERT INTO purchase_items
			(id, purchase_id, product_id, product_name, hsn_code, batch_number,
			 expiry_date, quantity, unit, price, taxable_value, gst_rate,
			 cgst, sgst, igst, total, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
			item.ID, item.PurchaseID, item.ProductID, item.ProductName, item.HSNCode,
			item.BatchNumber, item.ExpiryDate, item.Quantity, item.Unit, item.Price,
			item.TaxableValue, item.GSTRate, item.CGST, item.SGST, item.IGST,
			item.Total, item.CreatedAt)
		if err != nil {
			return fmt.Errorf("purchaseRepo.Create item: %w", err)
		}

		result, err := tx.ExecContext(ctx,
			"UPDATE products SET stock = stock + $1, updated_at = $2 WHERE id = $3",
			item.Quantity, now, item.ProductID)
		if err != nil {
			return fmt.Errorf("purchaseRepo.Create stock: %w", err)
		}
		rows, _ := result.RowsAffected()
		if rows == 0 {
			return domain.ErrNotFound
		}

		_, err = tx.ExecContext(ctx, `INSERT INTO stock_movements
			(id, product_id, movement_type, quantity, reference_type, reference_id, notes, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			uuid.New(), item.ProductID, domain.MovementPurchase, item.Quantity,
			"purchase", purchase.ID, "Purchase "+purchase.PurchaseNumber, now)
		if err != nil {
			return fmt.Errorf("purchaseRepo.Create movement: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("purchaseRepo.Create commit: %w", err)
	}
	return nil
}

func (r *purchaseRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Purchase, error) {
	var purchase domain.Purchase
	query := fmt.Sprintf(`SELECT %s FROM purchases p
		JOIN suppliers s ON s.id = p.supplier_id
		WHERE p.id = $1`, purchaseColumns)
	err := r.db.GetContext(ctx, &purchase, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("purchaseRepo.GetByID: %w", err)
	}

	err = r.db.SelectContext(ctx, &purchase.Items,
		"SELECT * FROM purchase_items WHERE purchase_id = $1 ORDER BY created_at ASC", id)
	if err != nil {
		return nil, fmt.Errorf("purchaseRepo.GetByID items: %w", err)
	}
	return &purchase, nil
}

func (r *purchaseRepo) List(ctx context.Context, filters *domain.ReportFilters, offset, limit int) ([]domain.Purchase, int, error) {
	where, args := buildDateWhere("p.date", filters)

	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM purchases p "+where, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("purchaseRepo.List count: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM purchases p
		JOIN suppliers s ON s.id = p.supplier_id
		%s ORDER BY p.date DESC, p.created_at DESC LIMIT $%d OFFSET $%d`,
		purchaseColumns, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	var purchases []domain.Purchase
	err = r.db.SelectContext(ctx, &purchases, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("purchaseRepo.List: %w", err)
	}
	return purchases, total, nil
}
