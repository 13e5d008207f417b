package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// StockReader defines read operations for inventory data.
type StockReader interface {
	// FindStockByProductID retrieves the stock row for a product.
	// Returns apperrors.ErrNotFound if the product has never moved.
	FindStockByProductID(ctx context.Context, productID int64) (*domain.Stock, error)

	// ListStocks retrieves all stock rows ordered by product.
	ListStocks(ctx context.Context) ([]domain.Stock, error)

	// ListLowStocks retrieves stock rows with quantity on hand at or below
	// the threshold.
	ListLowStocks(ctx context.Context, threshold decimal.Decimal) ([]domain.Stock, error)

	// ListAdjustmentsByProduct retrieves the audit trail for a product,
	// newest first.
	ListAdjustmentsByProduct(ctx context.Context, productID int64, limit, offset int) ([]domain.StockAdjustment, error)
}

// StockWriter defines the stock mutation primitive. Every call applies the
// signed delta as a single atomic increment (lazily creating the stock row
// at zero) and appends one StockAdjustment audit row. The quantity is never
// checked against zero; oversell protection is deliberately absent.
type StockWriter interface {
	// ApplyStockDelta applies signedQty to the product's stock row and
	// records the audit entry, atomically, in its own transaction.
	ApplyStockDelta(ctx context.Context, productID int64, signedQty decimal.Decimal, reason string, occurredAt time.Time) error

	// ApplyStockDeltaInTx is the same primitive for use inside a caller-owned
	// transaction (purchase/sale/order orchestration).
	ApplyStockDeltaInTx(ctx context.Context, tx pgx.Tx, productID int64, signedQty decimal.Decimal, reason string, occurredAt time.Time) error

	// ApplyAdjustmentWithEntry applies signedQty, records the audit row, and,
	// when entry is non-nil, inserts the ledger entry referencing the new
	// audit row. All of it commits in one database transaction or not at
	// all. Returns the identifier of the new StockAdjustment row.
	ApplyAdjustmentWithEntry(ctx context.Context, productID int64, signedQty decimal.Decimal, reason string, occurredAt time.Time, entry *domain.Transaction) (int64, error)
}

// StockRepositoryFacade combines all stock repository interfaces.
type StockRepositoryFacade interface {
	StockReader
	StockWriter
}

// StockRepositoryWithTx extends StockRepositoryFacade with transaction management.
type StockRepositoryWithTx interface {
	StockRepositoryFacade
	TransactionManager
}
