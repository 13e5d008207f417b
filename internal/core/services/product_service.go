package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	portsrepo "github.com/shopledger/shop_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/shopledger/shop_ledger_app/internal/core/ports/services"
	"github.com/shopledger/shop_ledger_app/internal/dto"
	"github.com/shopledger/shop_ledger_app/internal/platform/clock"
)

type productService struct {
	BaseService
	productRepo portsrepo.ProductRepositoryFacade
	clk         clock.Clock
}

// NewProductService creates the catalog service.
func NewProductService(productRepo portsrepo.ProductRepositoryFacade, clk clock.Clock) portssvc.ProductSvcFacade {
	return &productService{
		productRepo: productRepo,
		clk:         clk,
	}
}

var _ portssvc.ProductSvcFacade = (*productService)(nil)

func (s *productService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error) {
	now := s.clk.Now()

	product := domain.Product{
		Name:           req.Name,
		Brand:          req.Brand,
		Unit:           req.Unit,
		Category:       req.Category,
		PurchasePrice:  req.PurchasePrice,
		SellingPrice:   req.SellingPrice,
		WarrantyMonths: req.WarrantyMonths,
		Status:         domain.StatusActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	productID, err := s.productRepo.SaveProduct(ctx, product)
	if err != nil {
		s.LogError(ctx, err, "failed to create product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	product.ProductID = productID

	s.LogInfo(ctx, "product created", slog.Int64("product_id", productID))
	return &product, nil
}

func (s *productService) GetProductByID(ctx context.Context, productID int64) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) ListProducts(ctx context.Context, activeOnly bool, limit, offset int) ([]domain.Product, error) {
	products, err := s.productRepo.ListProducts(ctx, activeOnly, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (s *productService) UpdateProduct(ctx context.Context, productID int64, req dto.UpdateProductRequest) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Brand != nil {
		product.Brand = *req.Brand
	}
	if req.Unit != nil {
		product.Unit = *req.Unit
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.PurchasePrice != nil {
		product.PurchasePrice = *req.PurchasePrice
	}
	if req.SellingPrice != nil {
		product.SellingPrice = *req.SellingPrice
	}
	if req.WarrantyMonths != nil {
		product.WarrantyMonths = *req.WarrantyMonths
	}
	product.LastUpdatedAt = s.clk.Now()

	if err := s.productRepo.UpdateProduct(ctx, *product); err != nil {
		s.LogError(ctx, err, "failed to update product", slog.Int64("product_id", productID))
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}

func (s *productService) DeactivateProduct(ctx context.Context, productID int64) error {
	return s.productRepo.SetProductStatus(ctx, productID, domain.StatusInactive, s.clk.Now())
}

func (s *productService) ReactivateProduct(ctx context.Context, productID int64) error {
	return s.productRepo.SetProductStatus(ctx, productID, domain.StatusActive, s.clk.Now())
}
