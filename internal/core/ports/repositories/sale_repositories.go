package repositories

import (
	"context"
	"time"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
)

// SaleReader defines read operations for sale data.
type SaleReader interface {
	// FindSaleByID retrieves a sale by its identifier.
	FindSaleByID(ctx context.Context, saleID int64) (*domain.Sale, error)

	// FindSaleItems retrieves the item lines of a sale.
	FindSaleItems(ctx context.Context, saleID int64) ([]domain.SaleItem, error)

	// FindTradeInBySaleID retrieves the old-battery trade-in recorded with a
	// sale, or apperrors.ErrNotFound when none was recorded.
	FindTradeInBySaleID(ctx context.Context, saleID int64) (*domain.OldBatteryTradeIn, error)

	// ListSales retrieves sales newest first within an optional [from, to) window.
	ListSales(ctx context.Context, from, to *time.Time, limit, offset int) ([]domain.Sale, error)
}

// SaleWriter defines the atomic sale orchestration write. The sale, its
// items, the stock OUT deltas with audit rows, the optional trade-in, and
// the SALE/IN ledger entry commit in one database transaction or not at all.
type SaleWriter interface {
	SaveSale(ctx context.Context, sale domain.Sale, items []domain.SaleItem, tradeIn *domain.OldBatteryTradeIn, entry *domain.Transaction) (int64, error)
}

// SaleRepositoryFacade combines all sale repository interfaces.
type SaleRepositoryFacade interface {
	SaleReader
	SaleWriter
}
