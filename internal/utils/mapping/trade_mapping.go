package mapping

import (
	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	"github.com/shopledger/shop_ledger_app/internal/models"
)

// ToModelSale converts a domain Sale to a model Sale.
func ToModelSale(d domain.Sale) models.Sale {
	return models.Sale{
		SaleID:        d.SaleID,
		CustomerName:  d.CustomerName,
		CustomerPhone: d.CustomerPhone,
		SaleDate:      d.SaleDate,
		TotalAmount:   d.TotalAmount,
		Discount:      d.Discount,
		FinalAmount:   d.FinalAmount,
		PaymentMode:   string(d.PaymentMode),
		Notes:         d.Notes,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSale converts a model Sale to a domain Sale.
func ToDomainSale(m models.Sale) domain.Sale {
	return domain.Sale{
		SaleID:        m.SaleID,
		CustomerName:  m.CustomerName,
		CustomerPhone: m.CustomerPhone,
		SaleDate:      m.SaleDate,
		TotalAmount:   m.TotalAmount,
		Discount:      m.Discount,
		FinalAmount:   m.FinalAmount,
		PaymentMode:   domain.PaymentMode(m.PaymentMode),
		Notes:         m.Notes,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainSaleSlice converts a slice of model Sales.
func ToDomainSaleSlice(ms []models.Sale) []domain.Sale {
	ds := make([]domain.Sale, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSale(m)
	}
	return ds
}

// ToDomainSaleItem converts a model SaleItem to a domain SaleItem.
func ToDomainSaleItem(m models.SaleItem) domain.SaleItem {
	return domain.SaleItem{
		SaleItemID: m.SaleItemID,
		SaleID:     m.SaleID,
		ProductID:  m.ProductID,
		Quantity:   m.Quantity,
		UnitPrice:  m.UnitPrice,
		LineTotal:  m.LineTotal,
	}
}

// ToDomainSaleItemSlice converts a slice of model SaleItems.
func ToDomainSaleItemSlice(ms []models.SaleItem) []domain.SaleItem {
	ds := make([]domain.SaleItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSaleItem(m)
	}
	return ds
}

// ToDomainTradeIn converts a model OldBatteryTradeIn to its domain form.
func ToDomainTradeIn(m models.OldBatteryTradeIn) domain.OldBatteryTradeIn {
	return domain.OldBatteryTradeIn{
		TradeInID: m.TradeInID,
		SaleID:    m.SaleID,
		Brand:     m.Brand,
		Weight:    m.Weight,
		Amount:    m.Amount,
		CreatedAt: m.CreatedAt,
	}
}

// ToModelPurchase converts a domain Purchase to a model Purchase.
func ToModelPurchase(d domain.Purchase) models.Purchase {
	return models.Purchase{
		PurchaseID:   d.PurchaseID,
		SupplierID:   d.SupplierID,
		PurchaseDate: d.PurchaseDate,
		TotalAmount:  d.TotalAmount,
		PaidAmount:   d.PaidAmount,
		DueAmount:    d.DueAmount,
		Status:       string(d.Status),
		Notes:        d.Notes,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPurchase converts a model Purchase to a domain Purchase.
func ToDomainPurchase(m models.Purchase) domain.Purchase {
	return domain.Purchase{
		PurchaseID:   m.PurchaseID,
		SupplierID:   m.SupplierID,
		PurchaseDate: m.PurchaseDate,
		TotalAmount:  m.TotalAmount,
		PaidAmount:   m.PaidAmount,
		DueAmount:    m.DueAmount,
		Status:       domain.PurchaseStatus(m.Status),
		Notes:        m.Notes,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPurchaseSlice converts a slice of model Purchases.
func ToDomainPurchaseSlice(ms []models.Purchase) []domain.Purchase {
	ds := make([]domain.Purchase, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPurchase(m)
	}
	return ds
}

// ToDomainPurchaseItem converts a model PurchaseItem to its domain form.
func ToDomainPurchaseItem(m models.PurchaseItem) domain.PurchaseItem {
	return domain.PurchaseItem{
		PurchaseItemID: m.PurchaseItemID,
		PurchaseID:     m.PurchaseID,
		ProductID:      m.ProductID,
		Quantity:       m.Quantity,
		UnitPrice:      m.UnitPrice,
		LineTotal:      m.LineTotal,
	}
}

// ToDomainPurchaseItemSlice converts a slice of model PurchaseItems.
func ToDomainPurchaseItemSlice(ms []models.PurchaseItem) []domain.PurchaseItem {
	ds := make([]domain.PurchaseItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPurchaseItem(m)
	}
	return ds
}

// ToModelOrder converts a domain Order to a model Order.
func ToModelOrder(d domain.Order) models.Order {
	return models.Order{
		OrderID:       d.OrderID,
		CustomerName:  d.CustomerName,
		CustomerPhone: d.CustomerPhone,
		OrderDate:     d.OrderDate,
		TotalAmount:   d.TotalAmount,
		AdvanceAmount: d.AdvanceAmount,
		Status:        string(d.Status),
		Notes:         d.Notes,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainOrder converts a model Order to a domain Order.
func ToDomainOrder(m models.Order) domain.Order {
	return domain.Order{
		OrderID:       m.OrderID,
		CustomerName:  m.CustomerName,
		CustomerPhone: m.CustomerPhone,
		OrderDate:     m.OrderDate,
		TotalAmount:   m.TotalAmount,
		AdvanceAmount: m.AdvanceAmount,
		Status:        domain.OrderStatus(m.Status),
		Notes:         m.Notes,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainOrderSlice converts a slice of model Orders.
func ToDomainOrderSlice(ms []models.Order) []domain.Order {
	ds := make([]domain.Order, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainOrder(m)
	}
	return ds
}

// ToDomainOrderItem converts a model OrderItem to its domain form.
func ToDomainOrderItem(m models.OrderItem) domain.OrderItem {
	return domain.OrderItem{
		OrderItemID: m.OrderItemID,
		OrderID:     m.OrderID,
		ProductID:   m.ProductID,
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
		LineTotal:   m.LineTotal,
	}
}

// ToDomainOrderItemSlice converts a slice of model OrderItems.
func ToDomainOrderItemSlice(ms []models.OrderItem) []domain.OrderItem {
	ds := make([]domain.OrderItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainOrderItem(m)
	}
	return ds
}
