package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"medstore/internal/config"
	"medstore/internal/domain"
	"medstore/internal/gst"
	"medstore/internal/port"
)

// PurchaseLineInput is one editable line of a draft purchase. Price zero
// means "book at the catalog purchase price". Purchases carry no discount.
type PurchaseLineInput struct {
	ProductID  uuid.UUID  `json:"product_id" binding:"required"`
	Quantity   int        `json:"quantity" binding:"min=0"`
	Price      float64    `json:"price" binding:"min=0"`
	ExpiryDate *time.Time `json:"expiry_date"`
}

// CreatePurchaseInput is the DTO for recording a stock-inward purchase.
type CreatePurchaseInput struct {
	SupplierID uuid.UUID           `json:"supplier_id" binding:"required"`
	Date       *time.Time          `json:"date"`
	Items      []PurchaseLineInput `json:"items"`
	AmountPaid float64             `json:"amount_paid" binding:"min=0"`
	Notes      string              `json:"notes"`
}

// PurchaseService defines the stock-inward document contract.
type PurchaseService interface {
	Create(ctx context.Context, input CreatePurchaseInput) (*domain.Purchase, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Purchase, error)
	List(ctx context.Context, filters *domain.ReportFilters, offset, limit int) ([]domain.Purchase, int, error)
}

type purchaseService struct {
	purchaseRepo port.PurchaseRepository
	supplierRepo port.SupplierRepository
	productRepo  port.ProductRepository
	cfg          config.GSTConfig
}

// NewPurchaseService creates a new PurchaseService implementation.
func NewPurchaseService(
	purchaseRepo port.PurchaseRepository,
	supplierRepo port.SupplierRepository,
	productRepo port.ProductRepository,
	cfg config.GSTConfig,
) PurchaseService {
	return &purchaseService{
		purchaseRepo: purchaseRepo,
		supplierRepo: supplierRepo,
		productRepo:  productRepo,
		cfg:          cfg,
	}
}

func (s *purchaseService) Create(ctx context.Context, input CreatePurchaseInput) (*domain.Purchase, error) {
	if input.SupplierID == uuid.Nil {
		return nil, domain.ErrMissingSupplier
	}
	if len(input.Items) == 0 {
		return nil, domain.ErrNoLineItems
	}
	// Zero-quantity lines are allowed and contribute nothing to the totals.
	for _, line := range input.Items {
		if line.Quantity < 0 {
			return nil, domain.ErrInvalidQuantity
		}
	}

	supplier, err := s.supplierRepo.GetByID(ctx, input.SupplierID)
	if err != nil {
		return nil, err
	}
	interState := gst.InterState(supplier.StateCode, s.cfg.HomeStateCode)

	items := make([]domain.PurchaseItem, 0, len(input.Items))
	computed := make([]gst.ComputedLine, 0, len(input.Items))
	for _, line := range input.Items {
		product, err := s.productRepo.GetByID(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}

		price := line.Price
		if price == 0 {
			price = product.PurchasePrice
		}
		draft := gst.LineDraft{
			Quantity: line.Quantity,
			Price:    price,
			Rate:     product.GSTRate,
		}
		amounts := gst.ComputeLine(draft, interState)
		computed = append(computed, gst.ComputedLine{LineDraft: draft, LineAmounts: amounts})

		items = append(items, domain.PurchaseItem{
			ProductID:    product.ID,
			ProductName:  product.Name,
			HSNCode:      product.HSNCode,
			BatchNumber:  product.BatchNumber,
			ExpiryDate:   line.ExpiryDate,
			Quantity:     line.Quantity,
			Unit:         product.Unit,
			Price:        price,
			TaxableValue: amounts.TaxableValue,
			GSTRate:      product.GSTRate,
			CGST:         amounts.CGST,
			SGST:         amounts.SGST,
			IGST:         amounts.IGST,
			Total:        amounts.Total,
		})
	}
	totals := gst.ComputeTotals(computed)

	purchase := &domain.Purchase{
		SupplierID:        supplier.ID,
		SupplierName:      supplier.Name,
		SupplierGSTIN:     supplier.GSTIN,
		SupplierStateCode: supplier.StateCode,
		Items:             items,
		Subtotal:          totals.Subtotal,
		TotalTaxableValue: totals.TotalTaxableValue,
		TotalCGST:         totals.TotalCGST,
		TotalSGST:         totals.TotalSGST,
		TotalIGST:         totals.TotalIGST,
		GrandTotal:        totals.GrandTotal,
		PaymentStatus:     domain.DerivePaymentStatus(input.AmountPaid, totals.GrandTotal),
		AmountPaid:        input.AmountPaid,
		Notes:             input.Notes,
	}
	if input.Date != nil {
		purchase.Date = *input.Date
	}

	// Two concurrent creates against an empty ledger can both derive the
	// first number; the loser retries once and picks up the winner's row.
	err = s.purchaseRepo.Create(ctx, purchase, s.cfg.PurchasePrefix)
	if errors.Is(err, domain.ErrDuplicateDocumentNumber) {
		err = s.purchaseRepo.Create(ctx, purchase, s.cfg.PurchasePrefix)
	}
	if err != nil {
		return nil, err
	}
	return purchase, nil
}

func (s *purchaseService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Purchase, error) {
	return s.purchaseRepo.GetByID(ctx, id)
}

func (s *purchaseService) List(ctx context.Context, filters *domain.ReportFilters, offset, limit int) ([]domain.Purchase, int, error) {
	return s.purchaseRepo.List(ctx, filters, offset, limit)
}
