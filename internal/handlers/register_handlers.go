package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	portssvc "github.com/shopledger/shop_ledger_app/internal/core/ports/services"
	"github.com/shopledger/shop_ledger_app/internal/middleware"
	"github.com/shopledger/shop_ledger_app/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container interfaces.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	RegisterCustomValidators()

	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/", getHome)

	registerAuthRoutes(r, services.Token)

	setupAPIV1Routes(r, cfg, services)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to the
// per-entity route registrations.
func setupAPIV1Routes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerProductRoutes(v1, services.Product)
	registerStockRoutes(v1, services.Stock)
	registerLedgerRoutes(v1, services.Ledger)
	registerPurchaseRoutes(v1, services.Purchase)
	registerSaleRoutes(v1, services.Sale)
	registerOrderRoutes(v1, services.Order)
	registerSupplierRoutes(v1, services.Supplier)
	registerWorkerRoutes(v1, services.Worker)
	registerPersonalRoutes(v1, services.Personal)
	registerReportingRoutes(v1, services.Reporting)
}

// setupSwaggerRoutes mounts the swagger UI outside production.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		return
	}
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
