package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase is the storage representation of an incoming trade. The amount
// fields and status are the snapshot frozen at creation.
type Purchase struct {
	PurchaseID   int64           `json:"purchaseID"`
	SupplierID   int64           `json:"supplierID"`
	PurchaseDate time.Time       `json:"purchaseDate"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	PaidAmount   decimal.Decimal `json:"paidAmount"`
	DueAmount    decimal.Decimal `json:"dueAmount"`
	Status       string          `json:"status"` // CREATED / PARTIALLY_PAID / PAID
	Notes        string          `json:"notes"`
	AuditFields
}

// PurchaseItem is the storage representation of one purchase line.
type PurchaseItem struct {
	PurchaseItemID int64           `json:"purchaseItemID"`
	PurchaseID     int64           `json:"purchaseID"`
	ProductID      int64           `json:"productID"`
	Quantity       decimal.Decimal `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unitPrice"`
	LineTotal      decimal.Decimal `json:"lineTotal"`
}
