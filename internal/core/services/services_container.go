package services

import (
	portsrepo "github.com/shopledger/shop_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/shopledger/shop_ledger_app/internal/core/ports/services"
	"github.com/shopledger/shop_ledger_app/internal/platform/clock"
	"github.com/shopledger/shop_ledger_app/internal/platform/config"
)

// NewServiceContainer wires every service with its repositories.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, clk clock.Clock) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Product:   NewProductService(repos.ProductRepo, clk),
		Stock:     NewStockService(repos.StockRepo, repos.ProductRepo, cfg.LowStockThreshold, clk),
		Ledger:    NewLedgerService(repos, clk),
		Purchase:  NewPurchaseService(repos.PurchaseRepo, repos.SupplierRepo, repos.ProductRepo, clk),
		Sale:      NewSaleService(repos.SaleRepo, repos.ProductRepo, clk),
		Order:     NewOrderService(repos.OrderRepo, repos.SaleRepo, repos.ProductRepo, clk),
		Supplier:  NewSupplierService(repos.SupplierRepo, repos.PurchaseRepo, repos.ReportingRepo, clk),
		Worker:    NewWorkerService(repos.WorkerRepo, clk),
		Personal:  NewPersonalService(repos.PersonalRepo, clk),
		Reporting: NewReportingService(repos.ReportingRepo, cfg.LowStockThreshold, clk),
		Token:     NewTokenService(cfg, clk),
	}
}
