package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/shopledger/shop_ledger_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	productRepo := newPgxProductRepository(dbPool)
	txnRepo := newPgxTransactionRepository(dbPool)
	stockRepo := newPgxStockRepository(dbPool, txnRepo)
	supplierRepo := newPgxSupplierRepository(dbPool, txnRepo)
	purchaseRepo := newPgxPurchaseRepository(dbPool, stockRepo, txnRepo, supplierRepo)
	saleRepo := newPgxSaleRepository(dbPool, stockRepo, txnRepo)
	orderRepo := newPgxOrderRepository(dbPool, saleRepo.(*PgxSaleRepository), txnRepo)
	workerRepo := newPgxWorkerRepository(dbPool, txnRepo)
	personalRepo := newPgxPersonalRepository(dbPool, txnRepo)
	reportingRepo := newReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		ProductRepo:     productRepo,
		StockRepo:       stockRepo,
		TransactionRepo: txnRepo,
		PurchaseRepo:    purchaseRepo,
		SaleRepo:        saleRepo,
		OrderRepo:       orderRepo,
		SupplierRepo:    supplierRepo,
		WorkerRepo:      workerRepo,
		PersonalRepo:    personalRepo,
		ReportingRepo:   reportingRepo,
	}
}
