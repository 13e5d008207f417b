package repositories

import (
	"context"
	"time"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
)

// ProductReader defines read operations for catalog data.
type ProductReader interface {
	// FindProductByID retrieves a specific product by its identifier.
	FindProductByID(ctx context.Context, productID int64) (*domain.Product, error)

	// ListProducts retrieves products ordered by name. When activeOnly is set,
	// INACTIVE products are excluded (picker queries); they are always
	// retained for historical ledger integrity.
	ListProducts(ctx context.Context, activeOnly bool, limit, offset int) ([]domain.Product, error)
}

// ProductWriter defines write operations for catalog data.
type ProductWriter interface {
	// SaveProduct persists a new product and returns its assigned identifier.
	SaveProduct(ctx context.Context, product domain.Product) (int64, error)

	// UpdateProduct updates the mutable fields of a product.
	UpdateProduct(ctx context.Context, product domain.Product) error

	// SetProductStatus flips the lifecycle status (never deletes).
	SetProductStatus(ctx context.Context, productID int64, status domain.MasterStatus, updatedAt time.Time) error
}

// ProductRepositoryFacade combines all product repository interfaces.
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
}
