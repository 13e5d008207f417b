package models

import "github.com/shopspring/decimal"

// Product is the storage representation of a catalog product.
type Product struct {
	ProductID      int64           `json:"productID"`
	Name           string          `json:"name"`
	Brand          string          `json:"brand"`
	Unit           string          `json:"unit"`
	Category       string          `json:"category"`
	PurchasePrice  decimal.Decimal `json:"purchasePrice"`
	SellingPrice   decimal.Decimal `json:"sellingPrice"`
	WarrantyMonths int             `json:"warrantyMonths"`
	Status         string          `json:"status"` // ACTIVE / INACTIVE
	AuditFields
}
