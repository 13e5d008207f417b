package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is the storage representation of a completed sale.
type Sale struct {
	SaleID        int64           `json:"saleID"`
	CustomerName  string          `json:"customerName"`
	CustomerPhone string          `json:"customerPhone"`
	SaleDate      time.Time       `json:"saleDate"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	Discount      decimal.Decimal `json:"discount"`
	FinalAmount   decimal.Decimal `json:"finalAmount"`
	PaymentMode   string          `json:"paymentMode"`
	Notes         string          `json:"notes"`
	AuditFields
}

// SaleItem is the storage representation of one sale line.
type SaleItem struct {
	SaleItemID int64           `json:"saleItemID"`
	SaleID     int64           `json:"saleID"`
	ProductID  int64           `json:"productID"`
	Quantity   decimal.Decimal `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	LineTotal  decimal.Decimal `json:"lineTotal"`
}

// OldBatteryTradeIn is the storage representation of a trade-in row.
type OldBatteryTradeIn struct {
	TradeInID int64           `json:"tradeInID"`
	SaleID    int64           `json:"saleID"`
	Brand     string          `json:"brand"`
	Weight    decimal.Decimal `json:"weight"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"createdAt"`
}
