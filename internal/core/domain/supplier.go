package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supplier carries no stored balance. Due is always recomputed as
// sum(purchase totals) - sum(payments).
type Supplier struct {
	SupplierID int64        `json:"supplierID"`
	Name       string       `json:"name"`
	Phone      string       `json:"phone"`
	Address    string       `json:"address"`
	Status     MasterStatus `json:"status"`
	AuditFields
}

// SupplierPayment is an immutable disbursement to a supplier. PurchaseID is
// set when the payment was made together with a purchase, nil for later
// standalone payments.
type SupplierPayment struct {
	PaymentID   int64           `json:"paymentID"`
	SupplierID  int64           `json:"supplierID"`
	PurchaseID  *int64          `json:"purchaseID,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentMode PaymentMode     `json:"paymentMode"`
	PaidAt      time.Time       `json:"paidAt"`
	Notes       string          `json:"notes"`
}

// SupplierDue is the always-recomputed outstanding balance for a supplier.
// It is never stored on the Supplier entity.
type SupplierDue struct {
	SupplierID     int64           `json:"supplierID"`
	TotalPurchased decimal.Decimal `json:"totalPurchased"`
	TotalPaid      decimal.Decimal `json:"totalPaid"`
	Due            decimal.Decimal `json:"due"`
}

// SupplierLedgerEntryKind distinguishes the two source rows merged into a
// supplier ledger.
type SupplierLedgerEntryKind string

const (
	SupplierEntryPurchase SupplierLedgerEntryKind = "PURCHASE"
	SupplierEntryPayment  SupplierLedgerEntryKind = "PAYMENT"
)

// SupplierLedgerEntry is one row of the merged, time-ordered supplier ledger.
// Purchases debit (increase due), payments credit (decrease due); RunningDue
// is computed walking the merge chronologically.
type SupplierLedgerEntry struct {
	Kind       SupplierLedgerEntryKind `json:"kind"`
	SourceID   int64                   `json:"sourceID"`
	OccurredAt time.Time               `json:"occurredAt"`
	Amount     decimal.Decimal         `json:"amount"`
	RunningDue decimal.Decimal         `json:"runningDue"`
}
