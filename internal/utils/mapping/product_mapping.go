package mapping

import (
	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	"github.com/shopledger/shop_ledger_app/internal/models"
)

// ToModelProduct converts a domain Product to a model Product.
func ToModelProduct(d domain.Product) models.Product {
	return models.Product{
		ProductID:      d.ProductID,
		Name:           d.Name,
		Brand:          d.Brand,
		Unit:           d.Unit,
		Category:       d.Category,
		PurchasePrice:  d.PurchasePrice,
		SellingPrice:   d.SellingPrice,
		WarrantyMonths: d.WarrantyMonths,
		Status:         string(d.Status),
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProduct converts a model Product to a domain Product.
func ToDomainProduct(m models.Product) domain.Product {
	return domain.Product{
		ProductID:      m.ProductID,
		Name:           m.Name,
		Brand:          m.Brand,
		Unit:           m.Unit,
		Category:       m.Category,
		PurchasePrice:  m.PurchasePrice,
		SellingPrice:   m.SellingPrice,
		WarrantyMonths: m.WarrantyMonths,
		Status:         domain.MasterStatus(m.Status),
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainProductSlice converts a slice of model Products.
func ToDomainProductSlice(ms []models.Product) []domain.Product {
	ds := make([]domain.Product, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProduct(m)
	}
	return ds
}
