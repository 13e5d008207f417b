package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is a completed outgoing trade. FinalAmount = TotalAmount - Discount,
// frozen at creation.
type Sale struct {
	SaleID        int64           `json:"saleID"`
	CustomerName  string          `json:"customerName"`
	CustomerPhone string          `json:"customerPhone"`
	SaleDate      time.Time       `json:"saleDate"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	Discount      decimal.Decimal `json:"discount"`
	FinalAmount   decimal.Decimal `json:"finalAmount"`
	PaymentMode   PaymentMode     `json:"paymentMode"`
	Notes         string          `json:"notes"`
	AuditFields
}

// SaleItem is one line of a sale; each line drives a stock OUT delta.
type SaleItem struct {
	SaleItemID int64           `json:"saleItemID"`
	SaleID     int64           `json:"saleID"`
	ProductID  int64           `json:"productID"`
	Quantity   decimal.Decimal `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	LineTotal  decimal.Decimal `json:"lineTotal"`
}

// OldBatteryTradeIn records an old battery taken from the customer alongside
// a sale. Purely informational; it does not post to the ledger.
type OldBatteryTradeIn struct {
	TradeInID int64           `json:"tradeInID"`
	SaleID    int64           `json:"saleID"`
	Brand     string          `json:"brand"`
	Weight    decimal.Decimal `json:"weight"` // kg
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"createdAt"`
}
