package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus tracks a reservation-style pre-sale through its lifecycle.
type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderCompleted OrderStatus = "COMPLETED"
	OrderCancelled OrderStatus = "CANCELLED"
)

// Order reserves items for a customer against an advance. Inventory is not
// committed at order creation; the stock deduction happens only when the
// order converts into a sale.
type Order struct {
	OrderID       int64           `json:"orderID"`
	CustomerName  string          `json:"customerName"`
	CustomerPhone string          `json:"customerPhone"`
	OrderDate     time.Time       `json:"orderDate"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	AdvanceAmount decimal.Decimal `json:"advanceAmount"`
	Status        OrderStatus     `json:"status"`
	Notes         string          `json:"notes"`
	AuditFields
}

// OrderItem is one reserved line; it maps 1:1 onto a SaleItem at conversion.
type OrderItem struct {
	OrderItemID int64           `json:"orderItemID"`
	OrderID     int64           `json:"orderID"`
	ProductID   int64           `json:"productID"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}
