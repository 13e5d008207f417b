package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	ProductRepo     ProductRepositoryFacade
	StockRepo       StockRepositoryFacade
	TransactionRepo TransactionRepositoryFacade
	PurchaseRepo    PurchaseRepositoryFacade
	SaleRepo        SaleRepositoryFacade
	OrderRepo       OrderRepositoryFacade
	SupplierRepo    SupplierRepositoryFacade
	WorkerRepo      WorkerRepositoryFacade
	PersonalRepo    PersonalRepositoryFacade
	ReportingRepo   ReportingRepository
}
