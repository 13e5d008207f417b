package dto

import (
	"time"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaleItemRequest is one outgoing line of a sale.
type SaleItemRequest struct {
	ProductID int64           `json:"productID" binding:"required"`
	Quantity  decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice decimal.Decimal `json:"unitPrice" binding:"required"`
}

// TradeInRequest records an old battery taken in alongside a sale.
type TradeInRequest struct {
	Brand  string          `json:"brand"`
	Weight decimal.Decimal `json:"weight"`
	Amount decimal.Decimal `json:"amount"`
}

// CreateSaleRequest defines the payload for the sale orchestration.
type CreateSaleRequest struct {
	CustomerName  string            `json:"customerName"`
	CustomerPhone string            `json:"customerPhone"`
	Items         []SaleItemRequest `json:"items" binding:"required,dive"`
	Discount      decimal.Decimal   `json:"discount"`
	PaymentMode   string            `json:"paymentMode" binding:"omitempty,paymentmode"`
	SaleDate      *time.Time        `json:"saleDate,omitempty"`
	Notes         string            `json:"notes"`
	TradeIn       *TradeInRequest   `json:"tradeIn,omitempty"`
}

// SaleItemResponse defines the data returned for a sale line.
type SaleItemResponse struct {
	SaleItemID int64           `json:"saleItemID"`
	ProductID  int64           `json:"productID"`
	Quantity   decimal.Decimal `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	LineTotal  decimal.Decimal `json:"lineTotal"`
}

// TradeInResponse defines the data returned for a recorded trade-in.
type TradeInResponse struct {
	TradeInID int64           `json:"tradeInID"`
	Brand     string          `json:"brand"`
	Weight    decimal.Decimal `json:"weight"`
	Amount    decimal.Decimal `json:"amount"`
}

// SaleResponse defines the data returned for a sale.
type SaleResponse struct {
	SaleID        int64              `json:"saleID"`
	CustomerName  string             `json:"customerName"`
	CustomerPhone string             `json:"customerPhone"`
	SaleDate      time.Time          `json:"saleDate"`
	TotalAmount   decimal.Decimal    `json:"totalAmount"`
	Discount      decimal.Decimal    `json:"discount"`
	FinalAmount   decimal.Decimal    `json:"finalAmount"`
	PaymentMode   string             `json:"paymentMode"`
	Notes         string             `json:"notes"`
	Items         []SaleItemResponse `json:"items,omitempty"`
	TradeIn       *TradeInResponse   `json:"tradeIn,omitempty"`
}

// ToSaleResponse converts a domain.Sale plus items and optional trade-in.
func ToSaleResponse(s *domain.Sale, items []domain.SaleItem, tradeIn *domain.OldBatteryTradeIn) SaleResponse {
	resp := SaleResponse{
		SaleID:        s.SaleID,
		CustomerName:  s.CustomerName,
		CustomerPhone: s.CustomerPhone,
		SaleDate:      s.SaleDate,
		TotalAmount:   s.TotalAmount,
		Discount:      s.Discount,
		FinalAmount:   s.FinalAmount,
		PaymentMode:   string(s.PaymentMode),
		Notes:         s.Notes,
	}
	for _, item := range items {
		resp.Items = append(resp.Items, SaleItemResponse{
			SaleItemID: item.SaleItemID,
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			LineTotal:  item.LineTotal,
		})
	}
	if tradeIn != nil {
		resp.TradeIn = &TradeInResponse{
			TradeInID: tradeIn.TradeInID,
			Brand:     tradeIn.Brand,
			Weight:    tradeIn.Weight,
			Amount:    tradeIn.Amount,
		}
	}
	return resp
}

// ToSaleResponses converts a slice of domain.Sale without items.
func ToSaleResponses(sales []domain.Sale) []SaleResponse {
	responses := make([]SaleResponse, len(sales))
	for i := range sales {
		responses[i] = ToSaleResponse(&sales[i], nil, nil)
	}
	return responses
}
