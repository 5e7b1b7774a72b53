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

// InvoiceLineInput is one editable line of a draft invoice. Price zero means
// "bill at the catalog selling price"; discount is a percentage of the gross.
type InvoiceLineInput struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"min=0"`
	Price     float64   `json:"price" binding:"min=0"`
	Discount  float64   `json:"discount" binding:"min=0,max=100"`
}

// CreateInvoiceInput is the DTO for creating an invoice. All money fields on
// the stored invoice are derived server-side; the client never supplies
// totals or tax amounts.
type CreateInvoiceInput struct {
	CustomerID  uuid.UUID          `json:"customer_id" binding:"required"`
	Date        *time.Time         `json:"date"`
	Items       []InvoiceLineInput `json:"items"`
	PaymentMode domain.PaymentMode `json:"payment_mode"`
	AmountPaid  float64            `json:"amount_paid" binding:"min=0"`
	Notes       string             `json:"notes"`
}

// InvoiceService defines the sales document contract. Invoices are immutable
// once created; there is no update operation.
type InvoiceService interface {
	Create(ctx context.Context, input CreateInvoiceInput) (*domain.Invoice, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	List(ctx context.Context, filters *domain.ReportFilters, offset, limit int) ([]domain.Invoice, int, error)
	Stats(ctx context.Context, filters *domain.ReportFilters) (*domain.SalesStats, error)
}

type invoiceService struct {
	invoiceRepo  port.InvoiceRepository
	customerRepo port.CustomerRepository
	productRepo  port.ProductRepository
	cfg          config.GSTConfig
}

// NewInvoiceService creates a new InvoiceService implementation.
func NewInvoiceService(
	invoiceRepo port.InvoiceRepository,
	customerRepo port.CustomerRepository,
	productRepo port.ProductRepository,
	cfg config.GSTConfig,
) InvoiceService {
	return &invoiceService{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		cfg:          cfg,
	}
}

func (s *invoiceService) Create(ctx context.Context, input CreateInvoiceInput) (*domain.Invoice, error) {
	if input.CustomerID == uuid.Nil {
		return nil, domain.ErrMissingCustomer
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

	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	interState := gst.InterState(customer.StateCode, s.cfg.HomeStateCode)

	items := make([]domain.InvoiceItem, 0, len(input.Items))
	computed := make([]gst.ComputedLine, 0, len(input.Items))
	for _, line := range input.Items {
		product, err := s.productRepo.GetByID(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}

		price := line.Price
		if price == 0 {
			price = product.SellingPrice
		}
		draft := gst.LineDraft{
			Quantity: line.Quantity,
			Price:    price,
			Discount: line.Discount,
			Rate:     product.GSTRate,
		}
		amounts := gst.ComputeLine(draft, interState)
		computed = append(computed, gst.ComputedLine{LineDraft: draft, LineAmounts: amounts})

		items = append(items, domain.InvoiceItem{
			ProductID:    product.ID,
			ProductName:  product.Name,
			HSNCode:      product.HSNCode,
			BatchNumber:  product.BatchNumber,
			Quantity:     line.Quantity,
			Unit:         product.Unit,
			Price:        price,
			Discount:     line.Discount,
			TaxableValue: amounts.TaxableValue,
			GSTRate:      product.GSTRate,
			CGST:         amounts.CGST,
			SGST:         amounts.SGST,
			IGST:         amounts.IGST,
			Total:        amounts.Total,
		})
	}
	totals := gst.ComputeTotals(computed)

	paymentMode := input.PaymentMode
	if paymentMode == "" {
		paymentMode = domain.PaymentModeCash
	}

	invoice := &domain.Invoice{
		CustomerID:        customer.ID,
		CustomerName:      customer.Name,
		CustomerGSTIN:     customer.GSTIN,
		CustomerType:      customer.Type,
		CustomerStateCode: customer.StateCode,
		Items:             items,
		Subtotal:          totals.Subtotal,
		TotalDiscount:     totals.TotalDiscount,
		TotalTaxableValue: totals.TotalTaxableValue,
		TotalCGST:         totals.TotalCGST,
		TotalSGST:         totals.TotalSGST,
		TotalIGST:         totals.TotalIGST,
		GrandTotal:        totals.GrandTotal,
		PaymentMode:       paymentMode,
		PaymentStatus:     domain.DerivePaymentStatus(input.AmountPaid, totals.GrandTotal),
		AmountPaid:        input.AmountPaid,
		Notes:             input.Notes,
	}
	if input.Date != nil {
		invoice.Date = *input.Date
	}

	// Two concurrent creates against an empty ledger can both derive the
	// first number; the loser retries once and picks up the winner's row.
	err = s.invoiceRepo.Create(ctx, invoice, s.cfg.InvoicePrefix)
	if errors.Is(err, domain.ErrDuplicateDocumentNumber) {
		err = s.invoiceRepo.Create(ctx, invoice, s.cfg.InvoicePrefix)
	}
	if err != nil {
		return nil, err
	}
	return invoice, nil
}

func (s *invoiceService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	return s.invoiceRepo.GetByID(ctx, id)
}

func (s *invoiceService) List(ctx context.Context, filters *domain.ReportFilters, offset, limit int) ([]domain.Invoice, int, error) {
	return s.invoiceRepo.List(ctx, filters, offset, limit)
}

func (s *invoiceService) Stats(ctx context.Context, filters *domain.ReportFilters) (*domain.SalesStats, error) {
	return s.invoiceRepo.SalesStats(ctx, filters)
}
