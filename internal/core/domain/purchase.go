package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseStatus is derived once at creation from the paid/total ratio and
// never re-derived: later supplier payments are separate rows and do not
// touch the purchase snapshot.
type PurchaseStatus string

const (
	PurchaseCreated       PurchaseStatus = "CREATED"
	PurchasePartiallyPaid PurchaseStatus = "PARTIALLY_PAID"
	PurchasePaid          PurchaseStatus = "PAID"
)

// DerivePurchaseStatus maps paid/total to the frozen purchase status.
func DerivePurchaseStatus(total, paid decimal.Decimal) PurchaseStatus {
	switch {
	case paid.LessThanOrEqual(decimal.Zero):
		return PurchaseCreated
	case paid.GreaterThanOrEqual(total):
		return PurchasePaid
	default:
		return PurchasePartiallyPaid
	}
}

// Purchase is an incoming trade from a supplier. TotalAmount, PaidAmount,
// DueAmount and Status are a point-in-time snapshot frozen at creation.
type Purchase struct {
	PurchaseID   int64           `json:"purchaseID"`
	SupplierID   int64           `json:"supplierID"`
	PurchaseDate time.Time       `json:"purchaseDate"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	PaidAmount   decimal.Decimal `json:"paidAmount"`
	DueAmount    decimal.Decimal `json:"dueAmount"`
	Status       PurchaseStatus  `json:"status"`
	Notes        string          `json:"notes"`
	AuditFields
}

// PurchaseItem is one line of a purchase; each line drives a stock IN delta.
type PurchaseItem struct {
	PurchaseItemID int64           `json:"purchaseItemID"`
	PurchaseID     int64           `json:"purchaseID"`
	ProductID      int64           `json:"productID"`
	Quantity       decimal.Decimal `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unitPrice"`
	LineTotal      decimal.Decimal `json:"lineTotal"`
}
