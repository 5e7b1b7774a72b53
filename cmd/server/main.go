package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"medstore/internal/config"
	"medstore/internal/handler"
	"medstore/internal/repository/postgres"
	"medstore/internal/router"
	"medstore/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// .env is optional; in production everything comes from the environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	productRepo := postgres.NewProductRepo(db)
	customerRepo := postgres.NewCustomerRepo(db)
	supplierRepo := postgres.NewSupplierRepo(db)
	invoiceRepo := postgres.NewInvoiceRepo(db)
	purchaseRepo := postgres.NewPurchaseRepo(db)
	stockRepo := postgres.NewStockMovementRepo(db)
	userRepo := postgres.NewUserRepo(db)
	dashRepo := postgres.NewDashboardRepo(db)

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	userSvc := service.NewUserService(userRepo)
	productSvc := service.NewProductService(productRepo)
	customerSvc := service.NewCustomerService(customerRepo)
	supplierSvc := service.NewSupplierService(supplierRepo)
	invoiceSvc := service.NewInvoiceService(invoiceRepo, customerRepo, productRepo, cfg.GST)
	purchaseSvc := service.NewPurchaseService(purchaseRepo, supplierRepo, productRepo, cfg.GST)
	reportSvc := service.NewGSTReportService(invoiceRepo)
	stockSvc := service.NewStockService(stockRepo)
	dashboardSvc := service.NewDashboardService(dashRepo, productRepo)

	// Initialize handlers
	h := router.Handlers{
		Auth:      handler.NewAuthHandler(authSvc, userSvc),
		Product:   handler.NewProductHandler(productSvc),
		Customer:  handler.NewCustomerHandler(customerSvc),
		Supplier:  handler.NewSupplierHandler(supplierSvc),
		Invoice:   handler.NewInvoiceHandler(invoiceSvc),
		Purchase:  handler.NewPurchaseHandler(purchaseSvc),
		GSTReport: handler.NewGSTReportHandler(reportSvc),
		Stock:     handler.NewStockHandler(stockSvc),
		Dashboard: handler.NewDashboardHandler(dashboardSvc),
		User:      handler.NewUserHandler(userSvc),
		Health:    handler.NewHealthHandler(db),
	}

	r := router.Setup(cfg, authSvc, h)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
