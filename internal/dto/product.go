package dto

import (
	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProductRequest defines the payload for adding a catalog product.
type CreateProductRequest struct {
	Name           string          `json:"name" binding:"required"`
	Brand          string          `json:"brand"`
	Unit           string          `json:"unit"`
	Category       string          `json:"category"`
	PurchasePrice  decimal.Decimal `json:"purchasePrice"`
	SellingPrice   decimal.Decimal `json:"sellingPrice"`
	WarrantyMonths int             `json:"warrantyMonths"`
}

// UpdateProductRequest defines the partial-update payload for a product.
// Nil fields are left unchanged.
type UpdateProductRequest struct {
	Name           *string          `json:"name,omitempty"`
	Brand          *string          `json:"brand,omitempty"`
	Unit           *string          `json:"unit,omitempty"`
	Category       *string          `json:"category,omitempty"`
	PurchasePrice  *decimal.Decimal `json:"purchasePrice,omitempty"`
	SellingPrice   *decimal.Decimal `json:"sellingPrice,omitempty"`
	WarrantyMonths *int             `json:"warrantyMonths,omitempty"`
}

// ProductResponse defines the data returned for a product.
type ProductResponse struct {
	ProductID      int64           `json:"productID"`
	Name           string          `json:"name"`
	Brand          string          `json:"brand"`
	Unit           string          `json:"unit"`
	Category       string          `json:"category"`
	PurchasePrice  decimal.Decimal `json:"purchasePrice"`
	SellingPrice   decimal.Decimal `json:"sellingPrice"`
	WarrantyMonths int             `json:"warrantyMonths"`
	Status         string          `json:"status"`
}

// ToProductResponse converts a domain.Product to ProductResponse.
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID:      p.ProductID,
		Name:           p.Name,
		Brand:          p.Brand,
		Unit:           p.Unit,
		Category:       p.Category,
		PurchasePrice:  p.PurchasePrice,
		SellingPrice:   p.SellingPrice,
		WarrantyMonths: p.WarrantyMonths,
		Status:         string(p.Status),
	}
}

// ToProductResponses converts a slice of domain.Product.
func ToProductResponses(products []domain.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = ToProductResponse(&products[i])
	}
	return responses
}
