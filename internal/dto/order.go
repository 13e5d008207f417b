package dto

import (
	"time"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OrderItemRequest is one reserved line of an order.
type OrderItemRequest struct {
	ProductID int64           `json:"productID" binding:"required"`
	Quantity  decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice decimal.Decimal `json:"unitPrice" binding:"required"`
}

// CreateOrderRequest defines the payload for order creation. No inventory is
// committed until the order converts into a sale.
type CreateOrderRequest struct {
	CustomerName  string             `json:"customerName" binding:"required"`
	CustomerPhone string             `json:"customerPhone"`
	Items         []OrderItemRequest `json:"items" binding:"required,dive"`
	AdvanceAmount decimal.Decimal    `json:"advanceAmount"`
	PaymentMode   string             `json:"paymentMode" binding:"omitempty,paymentmode"`
	OrderDate     *time.Time         `json:"orderDate,omitempty"`
	Notes         string             `json:"notes"`
}

// ConvertOrderRequest defines the payload for converting a pending order
// into a sale.
type ConvertOrderRequest struct {
	Discount    decimal.Decimal `json:"discount"`
	PaymentMode string          `json:"paymentMode" binding:"omitempty,paymentmode"`
	Notes       string          `json:"notes"`
}

// OrderItemResponse defines the data returned for an order line.
type OrderItemResponse struct {
	OrderItemID int64           `json:"orderItemID"`
	ProductID   int64           `json:"productID"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}

// OrderResponse defines the data returned for an order.
type OrderResponse struct {
	OrderID       int64               `json:"orderID"`
	CustomerName  string              `json:"customerName"`
	CustomerPhone string              `json:"customerPhone"`
	OrderDate     time.Time           `json:"orderDate"`
	TotalAmount   decimal.Decimal     `json:"totalAmount"`
	AdvanceAmount decimal.Decimal     `json:"advanceAmount"`
	Status        string              `json:"status"`
	Notes         string              `json:"notes"`
	Items         []OrderItemResponse `json:"items,omitempty"`
}

// ToOrderResponse converts a domain.Order plus items.
func ToOrderResponse(o *domain.Order, items []domain.OrderItem) OrderResponse {
	resp := OrderResponse{
		OrderID:       o.OrderID,
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		OrderDate:     o.OrderDate,
		TotalAmount:   o.TotalAmount,
		AdvanceAmount: o.AdvanceAmount,
		Status:        string(o.Status),
		Notes:         o.Notes,
	}
	for _, item := range items {
		resp.Items = append(resp.Items, OrderItemResponse{
			OrderItemID: item.OrderItemID,
			ProductID:   item.ProductID,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			LineTotal:   item.LineTotal,
		})
	}
	return resp
}

// ToOrderResponses converts a slice of domain.Order without items.
func ToOrderResponses(orders []domain.Order) []OrderResponse {
	responses := make([]OrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToOrderResponse(&orders[i], nil)
	}
	return responses
}
