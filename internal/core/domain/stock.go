package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock is the single quantity row per product. It is created lazily the
// first time a product receives any inventory movement. QuantityOnHand is a
// signed decimal: business intent is non-negative but nothing enforces it.
type Stock struct {
	StockID        int64           `json:"stockID"`
	ProductID      int64           `json:"productID"`
	QuantityOnHand decimal.Decimal `json:"quantityOnHand"`
	LastUpdated    time.Time       `json:"lastUpdated"`
}

// StockAdjustment is the immutable audit record of one inventory quantity
// change, written for every stock-affecting event regardless of source.
type StockAdjustment struct {
	AdjustmentID int64           `json:"adjustmentID"`
	ProductID    int64           `json:"productID"`
	Direction    Direction       `json:"direction"`
	Quantity     decimal.Decimal `json:"quantity"` // always positive; Direction carries the sign
	Reason       string          `json:"reason"`
	AdjustedAt   time.Time       `json:"adjustedAt"`
}

// SignedQuantity returns the delta this adjustment applied to the stock row.
func (a StockAdjustment) SignedQuantity() decimal.Decimal {
	if a.Direction == DirectionOut {
		return a.Quantity.Neg()
	}
	return a.Quantity
}
