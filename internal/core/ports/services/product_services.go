package services

import (
	"context"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	"github.com/shopledger/shop_ledger_app/internal/dto"
)

// ProductReaderSvc defines read operations for catalog data.
type ProductReaderSvc interface {
	// GetProductByID retrieves a specific product.
	GetProductByID(ctx context.Context, productID int64) (*domain.Product, error)

	// ListProducts retrieves products; activeOnly excludes deactivated ones.
	ListProducts(ctx context.Context, activeOnly bool, limit, offset int) ([]domain.Product, error)
}

// ProductWriterSvc defines write operations for catalog data.
type ProductWriterSvc interface {
	// CreateProduct persists a new product.
	CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error)

	// UpdateProduct applies a partial update to a product.
	UpdateProduct(ctx context.Context, productID int64, req dto.UpdateProductRequest) (*domain.Product, error)

	// DeactivateProduct flips the product to INACTIVE.
	DeactivateProduct(ctx context.Context, productID int64) error

	// ReactivateProduct flips the product back to ACTIVE.
	ReactivateProduct(ctx context.Context, productID int64) error
}

// ProductSvcFacade combines all product service interfaces.
type ProductSvcFacade interface {
	ProductReaderSvc
	ProductWriterSvc
}
