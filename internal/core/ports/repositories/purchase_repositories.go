package repositories

import (
	"context"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
)

// PurchaseReader defines read operations for purchase data.
type PurchaseReader interface {
	// FindPurchaseByID retrieves a purchase by its identifier.
	FindPurchaseByID(ctx context.Context, purchaseID int64) (*domain.Purchase, error)

	// FindPurchaseItems retrieves the item lines of a purchase.
	FindPurchaseItems(ctx context.Context, purchaseID int64) ([]domain.PurchaseItem, error)

	// ListPurchases retrieves purchases newest first, optionally restricted
	// to one supplier.
	ListPurchases(ctx context.Context, supplierID *int64, limit, offset int) ([]domain.Purchase, error)
}

// PurchaseWriter defines the atomic purchase orchestration write. The
// purchase, its items, and the stock IN deltas with their audit rows commit
// in a single database transaction or not at all. When payment and entry are
// non-nil, the supplier payment and its ledger entry (referencing the new
// payment row) join the same transaction.
type PurchaseWriter interface {
	SavePurchase(ctx context.Context, purchase domain.Purchase, items []domain.PurchaseItem, payment *domain.SupplierPayment, entry *domain.Transaction) (int64, error)
}

// PurchaseRepositoryFacade combines all purchase repository interfaces.
type PurchaseRepositoryFacade interface {
	PurchaseReader
	PurchaseWriter
}
