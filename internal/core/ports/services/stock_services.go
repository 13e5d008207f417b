package services

import (
	"context"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	"github.com/shopledger/shop_ledger_app/internal/dto"
)

// StockReaderSvc defines read operations for inventory data.
type StockReaderSvc interface {
	// GetStockByProduct retrieves the stock row for a product.
	GetStockByProduct(ctx context.Context, productID int64) (*domain.Stock, error)

	// ListStocks retrieves all stock rows.
	ListStocks(ctx context.Context) ([]domain.Stock, error)

	// ListLowStocks retrieves stock rows at or below the configured threshold.
	ListLowStocks(ctx context.Context) ([]domain.Stock, error)

	// ListAdjustments retrieves a product's audit trail, newest first.
	ListAdjustments(ctx context.Context, productID int64, limit, offset int) ([]domain.StockAdjustment, error)
}

// StockWriterSvc defines the manual stock adjustment orchestration: the
// signed delta plus audit row always; an ADJUSTMENT ledger entry only when
// the adjustment has financial impact and an amount was supplied.
type StockWriterSvc interface {
	AdjustStock(ctx context.Context, req dto.AdjustStockRequest) (*domain.StockAdjustment, error)
}

// StockSvcFacade combines all stock service interfaces.
type StockSvcFacade interface {
	StockReaderSvc
	StockWriterSvc
}
