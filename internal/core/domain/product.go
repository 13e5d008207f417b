package domain

import "github.com/shopspring/decimal"

// Product is a sellable item in the catalog. Products are deactivated,
// never deleted, so historical ledger rows keep resolving.
type Product struct {
	ProductID      int64           `json:"productID"`
	Name           string          `json:"name"`
	Brand          string          `json:"brand"`
	Unit           string          `json:"unit"` // e.g. "pcs", "kg"
	Category       string          `json:"category"`
	PurchasePrice  decimal.Decimal `json:"purchasePrice"`
	SellingPrice   decimal.Decimal `json:"sellingPrice"`
	WarrantyMonths int             `json:"warrantyMonths"`
	Status         MasterStatus    `json:"status"`
	AuditFields
}
