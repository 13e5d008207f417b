package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock is the storage representation of the per-product quantity row.
type Stock struct {
	StockID        int64           `json:"stockID"`
	ProductID      int64           `json:"productID"` // unique
	QuantityOnHand decimal.Decimal `json:"quantityOnHand"`
	LastUpdated    time.Time       `json:"lastUpdated"`
}

// StockAdjustment is the storage representation of one audit row.
type StockAdjustment struct {
	AdjustmentID int64           `json:"adjustmentID"`
	ProductID    int64           `json:"productID"`
	Direction    string          `json:"direction"` // IN / OUT
	Quantity     decimal.Decimal `json:"quantity"`
	Reason       string          `json:"reason"`
	AdjustedAt   time.Time       `json:"adjustedAt"`
}
