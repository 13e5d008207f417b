package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is the storage representation of a reservation-style pre-sale.
type Order struct {
	OrderID       int64           `json:"orderID"`
	CustomerName  string          `json:"customerName"`
	CustomerPhone string          `json:"customerPhone"`
	OrderDate     time.Time       `json:"orderDate"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	AdvanceAmount decimal.Decimal `json:"advanceAmount"`
	Status        string          `json:"status"` // PENDING / COMPLETED / CANCELLED
	Notes         string          `json:"notes"`
	AuditFields
}

// OrderItem is the storage representation of one reserved line.
type OrderItem struct {
	OrderItemID int64           `json:"orderItemID"`
	OrderID     int64           `json:"orderID"`
	ProductID   int64           `json:"productID"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}
