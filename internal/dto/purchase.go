package dto

import (
	"time"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PurchaseItemRequest is one incoming line of a purchase.
type PurchaseItemRequest struct {
	ProductID int64           `json:"productID" binding:"required"`
	Quantity  decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice decimal.Decimal `json:"unitPrice" binding:"required"`
}

// RecordPurchaseRequest defines the payload for the purchase orchestration.
type RecordPurchaseRequest struct {
	SupplierID   int64                 `json:"supplierID" binding:"required"`
	Items        []PurchaseItemRequest `json:"items" binding:"required,dive"`
	PaidAmount   decimal.Decimal       `json:"paidAmount"`
	PaymentMode  string                `json:"paymentMode" binding:"omitempty,paymentmode"`
	PurchaseDate *time.Time            `json:"purchaseDate,omitempty"`
	Notes        string                `json:"notes"`
}

// PurchaseItemResponse defines the data returned for a purchase line.
type PurchaseItemResponse struct {
	PurchaseItemID int64           `json:"purchaseItemID"`
	ProductID      int64           `json:"productID"`
	Quantity       decimal.Decimal `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unitPrice"`
	LineTotal      decimal.Decimal `json:"lineTotal"`
}

// PurchaseResponse defines the data returned for a purchase with its
// creation-time snapshot.
type PurchaseResponse struct {
	PurchaseID   int64                  `json:"purchaseID"`
	SupplierID   int64                  `json:"supplierID"`
	PurchaseDate time.Time              `json:"purchaseDate"`
	TotalAmount  decimal.Decimal        `json:"totalAmount"`
	PaidAmount   decimal.Decimal        `json:"paidAmount"`
	DueAmount    decimal.Decimal        `json:"dueAmount"`
	Status       string                 `json:"status"`
	Notes        string                 `json:"notes"`
	Items        []PurchaseItemResponse `json:"items,omitempty"`
}

// ToPurchaseResponse converts a domain.Purchase plus items.
func ToPurchaseResponse(p *domain.Purchase, items []domain.PurchaseItem) PurchaseResponse {
	resp := PurchaseResponse{
		PurchaseID:   p.PurchaseID,
		SupplierID:   p.SupplierID,
		PurchaseDate: p.PurchaseDate,
		TotalAmount:  p.TotalAmount,
		PaidAmount:   p.PaidAmount,
		DueAmount:    p.DueAmount,
		Status:       string(p.Status),
		Notes:        p.Notes,
	}
	for _, item := range items {
		resp.Items = append(resp.Items, PurchaseItemResponse{
			PurchaseItemID: item.PurchaseItemID,
			ProductID:      item.ProductID,
			Quantity:       item.Quantity,
			UnitPrice:      item.UnitPrice,
			LineTotal:      item.LineTotal,
		})
	}
	return resp
}

// ToPurchaseResponses converts a slice of domain.Purchase without items.
func ToPurchaseResponses(purchases []domain.Purchase) []PurchaseResponse {
	responses := make([]PurchaseResponse, len(purchases))
	for i := range purchases {
		responses[i] = ToPurchaseResponse(&purchases[i], nil)
	}
	return responses
}
