package services

import (
	"context"
	"time"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	"github.com/shopledger/shop_ledger_app/internal/dto"
)

// PurchaseSvcFacade orchestrates incoming trade. RecordPurchase is atomic:
// purchase, items, stock IN deltas, audit rows and the optional supplier
// payment plus PURCHASE/OUT ledger entry commit together or not at all.
type PurchaseSvcFacade interface {
	RecordPurchase(ctx context.Context, req dto.RecordPurchaseRequest) (*domain.Purchase, error)

	// GetPurchaseWithItems retrieves a purchase and its lines.
	GetPurchaseWithItems(ctx context.Context, purchaseID int64) (*domain.Purchase, []domain.PurchaseItem, error)

	// ListPurchases retrieves purchases, optionally for one supplier.
	ListPurchases(ctx context.Context, supplierID *int64, limit, offset int) ([]domain.Purchase, error)
}

// SaleSvcFacade orchestrates outgoing trade. CreateSale is atomic: sale,
// items, stock OUT deltas, audit rows, optional trade-in and the SALE/IN
// ledger entry commit together or not at all.
type SaleSvcFacade interface {
	CreateSale(ctx context.Context, req dto.CreateSaleRequest) (*domain.Sale, error)

	// GetSaleWithItems retrieves a sale, its lines and trade-in if recorded.
	GetSaleWithItems(ctx context.Context, saleID int64) (*domain.Sale, []domain.SaleItem, *domain.OldBatteryTradeIn, error)

	// ListSales retrieves sales within an optional [from, to) window.
	ListSales(ctx context.Context, from, to *time.Time, limit, offset int) ([]domain.Sale, error)
}

// OrderSvcFacade orchestrates reservation-style pre-sales. No stock moves at
// creation; ConvertOrderToSale performs the deferred deduction and posts the
// balance (final minus advance) only when positive.
type OrderSvcFacade interface {
	CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (*domain.Order, error)

	ConvertOrderToSale(ctx context.Context, orderID int64, req dto.ConvertOrderRequest) (*domain.Sale, error)

	// CancelOrder flips a PENDING order to CANCELLED.
	CancelOrder(ctx context.Context, orderID int64) error

	// GetOrderWithItems retrieves an order and its reserved lines.
	GetOrderWithItems(ctx context.Context, orderID int64) (*domain.Order, []domain.OrderItem, error)

	// ListOrders retrieves orders, optionally filtered by status.
	ListOrders(ctx context.Context, status *domain.OrderStatus, limit, offset int) ([]domain.Order, error)
}
