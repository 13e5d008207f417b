package dto

import (
	"time"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AdjustStockRequest defines the payload for a manual stock adjustment.
// Amount and PaymentMode only matter when HasFinancialImpact is set.
type AdjustStockRequest struct {
	ProductID          int64            `json:"productID" binding:"required"`
	Direction          string           `json:"direction" binding:"required,direction"`
	Quantity           decimal.Decimal  `json:"quantity" binding:"required"`
	Reason             string           `json:"reason" binding:"required"`
	HasFinancialImpact bool             `json:"hasFinancialImpact"`
	Amount             *decimal.Decimal `json:"amount,omitempty"`
	PaymentMode        *string          `json:"paymentMode,omitempty" binding:"omitempty,paymentmode"`
}

// StockResponse defines the data returned for a stock row.
type StockResponse struct {
	StockID        int64           `json:"stockID"`
	ProductID      int64           `json:"productID"`
	QuantityOnHand decimal.Decimal `json:"quantityOnHand"`
	LastUpdated    time.Time       `json:"lastUpdated"`
}

// StockAdjustmentResponse defines the data returned for one audit row.
type StockAdjustmentResponse struct {
	AdjustmentID int64           `json:"adjustmentID"`
	ProductID    int64           `json:"productID"`
	Direction    string          `json:"direction"`
	Quantity     decimal.Decimal `json:"quantity"`
	Reason       string          `json:"reason"`
	AdjustedAt   time.Time       `json:"adjustedAt"`
}

// ToStockResponse converts a domain.Stock to StockResponse.
func ToStockResponse(s *domain.Stock) StockResponse {
	return StockResponse{
		StockID:        s.StockID,
		ProductID:      s.ProductID,
		QuantityOnHand: s.QuantityOnHand,
		LastUpdated:    s.LastUpdated,
	}
}

// ToStockResponses converts a slice of domain.Stock.
func ToStockResponses(stocks []domain.Stock) []StockResponse {
	responses := make([]StockResponse, len(stocks))
	for i := range stocks {
		responses[i] = ToStockResponse(&stocks[i])
	}
	return responses
}

// ToStockAdjustmentResponse converts a domain.StockAdjustment.
func ToStockAdjustmentResponse(a *domain.StockAdjustment) StockAdjustmentResponse {
	return StockAdjustmentResponse{
		AdjustmentID: a.AdjustmentID,
		ProductID:    a.ProductID,
		Direction:    string(a.Direction),
		Quantity:     a.Quantity,
		Reason:       a.Reason,
		AdjustedAt:   a.AdjustedAt,
	}
}

// ToStockAdjustmentResponses converts a slice of domain.StockAdjustment.
func ToStockAdjustmentResponses(adjustments []domain.StockAdjustment) []StockAdjustmentResponse {
	responses := make([]StockAdjustmentResponse, len(adjustments))
	for i := range adjustments {
		responses[i] = ToStockAdjustmentResponse(&adjustments[i])
	}
	return responses
}
