package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/shopledger/shop_ledger_app/internal/apperrors"
	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	portsrepo "github.com/shopledger/shop_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/shopledger/shop_ledger_app/internal/core/ports/services"
	"github.com/shopledger/shop_ledger_app/internal/dto"
	"github.com/shopledger/shop_ledger_app/internal/platform/clock"
)

type orderService struct {
	BaseService
	orderRepo   portsrepo.OrderRepositoryFacade
	saleRepo    portsrepo.SaleReader
	productRepo portsrepo.ProductReader
	clk         clock.Clock
}

// NewOrderService creates the reservation-style pre-sale service.
func NewOrderService(orderRepo portsrepo.OrderRepositoryFacade, saleRepo portsrepo.SaleReader, productRepo portsrepo.ProductReader, clk clock.Clock) portssvc.OrderSvcFacade {
	return &orderService{
		orderRepo:   orderRepo,
		saleRepo:    saleRepo,
		productRepo: productRepo,
		clk:         clk,
	}
}

var _ portssvc.OrderSvcFacade = (*orderService)(nil)

// CreateOrder records the reservation and the optional advance. No stock
// moves until the order converts.
func (s *orderService) CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (*domain.Order, error) {
	if len(req.Items) == 0 {
		return nil, apperrors.NewValidationError("order must have at least one item")
	}
	if req.AdvanceAmount.IsNegative() {
		return nil, apperrors.NewValidationError("advance amount must be non-negative")
	}

	now := s.clk.Now()
	orderDate := now
	if req.OrderDate != nil {
		orderDate = *req.OrderDate
	}

	total := decimal.Zero
	items := make([]domain.OrderItem, 0, len(req.Items))
	for _, line := range req.Items {
		if line.Quantity.LessThanOrEqual(decimal.Zero) {
			return nil, apperrors.NewValidationError(fmt.Sprintf("quantity for product %d must be positive", line.ProductID))
		}
		if _, err := s.productRepo.FindProductByID(ctx, line.ProductID); err != nil {
			return nil, err
		}
		lineTotal := line.UnitPrice.Mul(line.Quantity)
		total = total.Add(lineTotal)
		items = append(items, domain.OrderItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			LineTotal: lineTotal,
		})
	}

	if req.AdvanceAmount.GreaterThan(total) {
		return nil, apperrors.NewValidationError("advance exceeds order total")
	}

	order := domain.Order{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		OrderDate:     orderDate,
		TotalAmount:   total,
		AdvanceAmount: req.AdvanceAmount,
		Status:        domain.OrderPending,
		Notes:         req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	var entry *domain.Transaction
	if req.AdvanceAmount.IsPositive() {
		mode := resolvePaymentMode(req.PaymentMode)
		entry = &domain.Transaction{
			TxnDate:     orderDate,
			Direction:   domain.DirectionIn,
			Category:    domain.CategoryAdvance,
			Amount:      req.AdvanceAmount,
			PaymentMode: mode,
			Reference:   domain.Reference{Type: domain.RefOrder},
			Notes:       req.Notes,
			CreatedAt:   now,
		}
	}

	orderID, err := s.orderRepo.SaveOrder(ctx, order, items, entry)
	if err != nil {
		s.LogError(ctx, err, "failed to create order")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	order.OrderID = orderID

	s.LogInfo(ctx, "order created",
		slog.Int64("order_id", orderID),
		slog.String("advance", req.AdvanceAmount.String()))

	return &order, nil
}

// ConvertOrderToSale performs the deferred stock deduction and posts only
// the unpaid balance (final minus advance) when it is positive. The advance
// was already posted at order creation.
func (s *orderService) ConvertOrderToSale(ctx context.Context, orderID int64, req dto.ConvertOrderRequest) (*domain.Sale, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != domain.OrderPending {
		return nil, apperrors.NewValidationError(fmt.Sprintf("order %d is %s, only pending orders convert", orderID, order.Status))
	}
	if req.Discount.IsNegative() {
		return nil, apperrors.NewValidationError("discount must be non-negative")
	}

	orderItems, err := s.orderRepo.FindOrderItems(ctx, orderID)
	if err != nil {
		return nil, err
	}

	total := order.TotalAmount
	if req.Discount.GreaterThan(total) {
		return nil, apperrors.NewValidationError("discount exceeds order total")
	}
	finalAmount := total.Sub(req.Discount)
	mode := resolvePaymentMode(req.PaymentMode)
	now := s.clk.Now()

	sale := domain.Sale{
		CustomerName:  order.CustomerName,
		CustomerPhone: order.CustomerPhone,
		SaleDate:      now,
		TotalAmount:   total,
		Discount:      req.Discount,
		FinalAmount:   finalAmount,
		PaymentMode:   mode,
		Notes:         req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	saleItems := make([]domain.SaleItem, len(orderItems))
	for i, item := range orderItems {
		saleItems[i] = domain.SaleItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: item.LineTotal,
		}
	}

	// Balance at or below zero means the advance already covered the sale;
	// the order still completes, just without a second posting.
	var entry *domain.Transaction
	balance := finalAmount.Sub(order.AdvanceAmount)
	if balance.IsPositive() {
		entry = &domain.Transaction{
			TxnDate:     now,
			Direction:   domain.DirectionIn,
			Category:    domain.CategorySale,
			Amount:      balance,
			PaymentMode: mode,
			Reference:   domain.Reference{Type: domain.RefSale},
			Notes:       req.Notes,
			CreatedAt:   now,
		}
	}

	saleID, err := s.orderRepo.ConvertToSale(ctx, orderID, sale, saleItems, entry, now)
	if err != nil {
		s.LogError(ctx, err, "failed to convert order", slog.Int64("order_id", orderID))
		return nil, err
	}
	sale.SaleID = saleID

	s.LogInfo(ctx, "order converted to sale",
		slog.Int64("order_id", orderID),
		slog.Int64("sale_id", saleID),
		slog.String("balance_posted", balance.String()))

	return &sale, nil
}

// CancelOrder flips a pending order to CANCELLED. Advances already posted
// stay in the ledger; refunds are recorded separately if they happen.
func (s *orderService) CancelOrder(ctx context.Context, orderID int64) error {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order.Status != domain.OrderPending {
		return apperrors.NewValidationError(fmt.Sprintf("order %d is %s, only pending orders cancel", orderID, order.Status))
	}
	if err := s.orderRepo.UpdateOrderStatus(ctx, orderID, domain.OrderCancelled, s.clk.Now()); err != nil {
		return err
	}
	s.LogInfo(ctx, "order cancelled", slog.Int64("order_id", orderID))
	return nil
}

func (s *orderService) GetOrderWithItems(ctx context.Context, orderID int64) (*domain.Order, []domain.OrderItem, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}
	items, err := s.orderRepo.FindOrderItems(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}
	return order, items, nil
}

func (s *orderService) ListOrders(ctx context.Context, status *domain.OrderStatus, limit, offset int) ([]domain.Order, error) {
	return s.orderRepo.ListOrders(ctx, status, limit, offset)
}
