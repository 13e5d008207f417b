package mapping

import (
	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	"github.com/shopledger/shop_ledger_app/internal/models"
)

// ToDomainStock converts a model Stock to a domain Stock.
func ToDomainStock(m models.Stock) domain.Stock {
	return domain.Stock{
		StockID:        m.StockID,
		ProductID:      m.ProductID,
		QuantityOnHand: m.QuantityOnHand,
		LastUpdated:    m.LastUpdated,
	}
}

// ToDomainStockSlice converts a slice of model Stocks.
func ToDomainStockSlice(ms []models.Stock) []domain.Stock {
	ds := make([]domain.Stock, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainStock(m)
	}
	return ds
}

// ToModelStockAdjustment converts a domain StockAdjustment to its model.
func ToModelStockAdjustment(d domain.StockAdjustment) models.StockAdjustment {
	return models.StockAdjustment{
		AdjustmentID: d.AdjustmentID,
		ProductID:    d.ProductID,
		Direction:    string(d.Direction),
		Quantity:     d.Quantity,
		Reason:       d.Reason,
		AdjustedAt:   d.AdjustedAt,
	}
}

// ToDomainStockAdjustment converts a model StockAdjustment to its domain form.
func ToDomainStockAdjustment(m models.StockAdjustment) domain.StockAdjustment {
	return domain.StockAdjustment{
		AdjustmentID: m.AdjustmentID,
		ProductID:    m.ProductID,
		Direction:    domain.Direction(m.Direction),
		Quantity:     m.Quantity,
		Reason:       m.Reason,
		AdjustedAt:   m.AdjustedAt,
	}
}

// ToDomainStockAdjustmentSlice converts a slice of model StockAdjustments.
func ToDomainStockAdjustmentSlice(ms []models.StockAdjustment) []domain.StockAdjustment {
	ds := make([]domain.StockAdjustment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainStockAdjustment(m)
	}
	return ds
}
