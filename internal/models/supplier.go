package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supplier is the storage representation of a supplier. No balance column
// exists; due is always recomputed from purchases and payments.
type Supplier struct {
	SupplierID int64  `json:"supplierID"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	Status     string `json:"status"` // ACTIVE / INACTIVE
	AuditFields
}

// SupplierPayment is the storage representation of one disbursement.
type SupplierPayment struct {
	PaymentID   int64           `json:"paymentID"`
	SupplierID  int64           `json:"supplierID"`
	PurchaseID  *int64          `json:"purchaseID,omitempty"` // nullable
	Amount      decimal.Decimal `json:"amount"`
	PaymentMode string          `json:"paymentMode"`
	PaidAt      time.Time       `json:"paidAt"`
	Notes       string          `json:"notes"`
}
