package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"medstore/internal/config"
	"medstore/internal/domain"
	"medstore/internal/handler"
	"medstore/internal/middleware"
	"medstore/internal/service"
)

// Handlers bundles every HTTP handler the router wires up.
type Handlers struct {
	Auth      *handler.AuthHandler
	Product   *handler.ProductHandler
	Customer  *handler.CustomerHandler
	Supplier  *handler.SupplierHandler
	Invoice   *handler.InvoiceHandler
	Purchase  *handler.PurchaseHandler
	GSTReport *handler.GSTReportHandler
	Stock     *handler.StockHandler
	Dashboard *handler.DashboardHandler
	User      *handler.UserHandler
	Health    *handler.HealthHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(cfg *config.Config, authSvc service.AuthService, h Handlers) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks and metrics
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/login", h.Auth.Login)
	auth.POST("/refresh", h.Auth.Refresh)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	protected.GET("/auth/me", h.Auth.Me)

	products := protected.Group("/products")
	products.POST("", h.Product.Create)
	products.GET("", h.Product.List)
	products.GET("/low-stock", h.Product.LowStock)
	products.GET("/expiring", h.Product.Expiring)
	products.GET("/:id", h.Product.GetByID)
	products.PUT("/:id", h.Product.Update)
	products.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin, domain.RoleManager), h.Product.Delete)

	customers := protected.Group("/customers")
	customers.POST("", h.Customer.Create)
	customers.GET("", h.Customer.List)
	customers.GET("/:id", h.Customer.GetByID)
	customers.PUT("/:id", h.Customer.Update)
	customers.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin, domain.RoleManager), h.Customer.Delete)

	suppliers := protected.Group("/suppliers")
	suppliers.POST("", h.Supplier.Create)
	suppliers.GET("", h.Supplier.List)
	suppliers.GET("/:id", h.Supplier.GetByID)
	suppliers.PUT("/:id", h.Supplier.Update)
	suppliers.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin, domain.RoleManager), h.Supplier.Delete)

	invoices := protected.Group("/invoices")
	invoices.POST("", h.Invoice.Create)
	invoices.GET("", h.Invoice.List)
	invoices.GET("/stats", h.Invoice.Stats)
	invoices.GET("/:id", h.Invoice.GetByID)

	purchases := protected.Group("/purchases")
	purchases.POST("", h.Purchase.Create)
	purchases.GET("", h.Purchase.List)
	purchases.GET("/:id", h.Purchase.GetByID)

	reports := protected.Group("/reports")
	reports.GET("/gstr1", h.GSTReport.Generate)
	reports.GET("/gstr1/export", h.GSTReport.Export)

	stock := protected.Group("/stock")
	stock.GET("/movements", h.Stock.Movements)
	stock.POST("/adjustments", middleware.RequireRole(domain.RoleAdmin, domain.RoleManager), h.Stock.Adjust)

	protected.GET("/dashboard", h.Dashboard.Overview)

	// Admin routes - staff account management
	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleware(authSvc))
	admin.Use(middleware.RequireRole(domain.RoleAdmin))
	admin.POST("/users", h.User.Create)
	admin.GET("/users", h.User.List)
	admin.GET("/users/:id", h.User.GetByID)
	admin.PUT("/users/:id", h.User.Update)
	admin.DELETE("/users/:id", h.User.Delete)

	return r
}
