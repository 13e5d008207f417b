package dto

import (
	"time"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateSupplierRequest defines the payload for adding a supplier.
type CreateSupplierRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// UpdateSupplierRequest defines the partial-update payload for a supplier.
type UpdateSupplierRequest struct {
	Name    *string `json:"name,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}

// PaySupplierRequest defines the payload for the supplier payment
// orchestration. PurchaseID optionally links the payment to one purchase;
// the purchase's frozen snapshot is never touched.
type PaySupplierRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	PurchaseID  *int64          `json:"purchaseID,omitempty"`
	PaymentMode string          `json:"paymentMode" binding:"omitempty,paymentmode"`
	Notes       string          `json:"notes"`
}

// SupplierResponse defines the data returned for a supplier.
type SupplierResponse struct {
	SupplierID int64  `json:"supplierID"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	Status     string `json:"status"`
}

// SupplierDueResponse defines the recomputed due for a supplier.
type SupplierDueResponse struct {
	SupplierID     int64           `json:"supplierID"`
	TotalPurchased decimal.Decimal `json:"totalPurchased"`
	TotalPaid      decimal.Decimal `json:"totalPaid"`
	Due            decimal.Decimal `json:"due"`
}

// SupplierLedgerEntryResponse is one merged row of the supplier ledger.
type SupplierLedgerEntryResponse struct {
	Kind       string          `json:"kind"`
	SourceID   int64           `json:"sourceID"`
	OccurredAt time.Time       `json:"occurredAt"`
	Amount     decimal.Decimal `json:"amount"`
	RunningDue decimal.Decimal `json:"runningDue"`
}

// SupplierPaymentResponse defines the data returned for a payment.
type SupplierPaymentResponse struct {
	PaymentID   int64           `json:"paymentID"`
	SupplierID  int64           `json:"supplierID"`
	PurchaseID  *int64          `json:"purchaseID,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentMode string          `json:"paymentMode"`
	PaidAt      time.Time       `json:"paidAt"`
	Notes       string          `json:"notes"`
}

// ToSupplierResponse converts a domain.Supplier.
func ToSupplierResponse(s *domain.Supplier) SupplierResponse {
	return SupplierResponse{
		SupplierID: s.SupplierID,
		Name:       s.Name,
		Phone:      s.Phone,
		Address:    s.Address,
		Status:     string(s.Status),
	}
}

// ToSupplierResponses converts a slice of domain.Supplier.
func ToSupplierResponses(suppliers []domain.Supplier) []SupplierResponse {
	responses := make([]SupplierResponse, len(suppliers))
	for i := range suppliers {
		responses[i] = ToSupplierResponse(&suppliers[i])
	}
	return responses
}

// ToSupplierDueResponse converts a domain.SupplierDue.
func ToSupplierDueResponse(d *domain.SupplierDue) SupplierDueResponse {
	return SupplierDueResponse{
		SupplierID:     d.SupplierID,
		TotalPurchased: d.TotalPurchased,
		TotalPaid:      d.TotalPaid,
		Due:            d.Due,
	}
}

// ToSupplierLedgerEntryResponses converts the merged ledger rows.
func ToSupplierLedgerEntryResponses(entries []domain.SupplierLedgerEntry) []SupplierLedgerEntryResponse {
	responses := make([]SupplierLedgerEntryResponse, len(entries))
	for i, e := range entries {
		responses[i] = SupplierLedgerEntryResponse{
			Kind:       string(e.Kind),
			SourceID:   e.SourceID,
			OccurredAt: e.OccurredAt,
			Amount:     e.Amount,
			RunningDue: e.RunningDue,
		}
	}
	return responses
}

// ToSupplierPaymentResponse converts a domain.SupplierPayment.
func ToSupplierPaymentResponse(p *domain.SupplierPayment) SupplierPaymentResponse {
	return SupplierPaymentResponse{
		PaymentID:   p.PaymentID,
		SupplierID:  p.SupplierID,
		PurchaseID:  p.PurchaseID,
		Amount:      p.Amount,
		PaymentMode: string(p.PaymentMode),
		PaidAt:      p.PaidAt,
		Notes:       p.Notes,
	}
}

// ToSupplierPaymentResponses converts a slice of domain.SupplierPayment.
func ToSupplierPaymentResponses(payments []domain.SupplierPayment) []SupplierPaymentResponse {
	responses := make([]SupplierPaymentResponse, len(payments))
	for i := range payments {
		responses[i] = ToSupplierPaymentResponse(&payments[i])
	}
	return responses
}
