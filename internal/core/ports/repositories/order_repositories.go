package repositories

import (
	"context"
	"time"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
)

// OrderReader defines read operations for order data.
type OrderReader interface {
	// FindOrderByID retrieves an order by its identifier.
	FindOrderByID(ctx context.Context, orderID int64) (*domain.Order, error)

	// FindOrderItems retrieves the reserved lines of an order.
	FindOrderItems(ctx context.Context, orderID int64) ([]domain.OrderItem, error)

	// ListOrders retrieves orders newest first, optionally filtered by status.
	ListOrders(ctx context.Context, status *domain.OrderStatus, limit, offset int) ([]domain.Order, error)
}

// OrderWriter defines order write operations. SaveOrder commits the order,
// its items and the optional ADVANCE/IN ledger entry atomically; no stock
// moves at creation. ConvertToSale commits the derived sale, its items, the
// deferred stock OUT deltas, the optional balance ledger entry and the
// order's COMPLETED flip in one transaction.
type OrderWriter interface {
	SaveOrder(ctx context.Context, order domain.Order, items []domain.OrderItem, entry *domain.Transaction) (int64, error)

	ConvertToSale(ctx context.Context, orderID int64, sale domain.Sale, items []domain.SaleItem, entry *domain.Transaction, completedAt time.Time) (int64, error)

	// UpdateOrderStatus flips an order's status outside a conversion
	// (e.g. cancellation).
	UpdateOrderStatus(ctx context.Context, orderID int64, status domain.OrderStatus, updatedAt time.Time) error
}

// OrderRepositoryFacade combines all order repository interfaces.
type OrderRepositoryFacade interface {
	OrderReader
	OrderWriter
}
