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

type stockService struct {
	BaseService
	stockRepo         portsrepo.StockRepositoryFacade
	productRepo       portsrepo.ProductReader
	lowStockThreshold decimal.Decimal
	clk               clock.Clock
}

// NewStockService creates the inventory service.
func NewStockService(stockRepo portsrepo.StockRepositoryFacade, productRepo portsrepo.ProductReader, lowStockThreshold decimal.Decimal, clk clock.Clock) portssvc.StockSvcFacade {
	return &stockService{
		stockRepo:         stockRepo,
		productRepo:       productRepo,
		lowStockThreshold: lowStockThreshold,
		clk:               clk,
	}
}

var _ portssvc.StockSvcFacade = (*stockService)(nil)

// AdjustStock applies a manual signed correction to a product's quantity and
// records the audit row. Quantity may go negative; there is no oversell
// check anywhere in stock handling.
func (s *stockService) AdjustStock(ctx context.Context, req dto.AdjustStockRequest) (*domain.StockAdjustment, error) {
	if req.Quantity.LessThanOrEqual(decimal.Zero) {
		return nil, apperrors.NewValidationError("adjustment quantity must be positive")
	}

	product, err := s.productRepo.FindProductByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	direction := domain.Direction(req.Direction)
	signedQty := req.Quantity
	if direction == domain.DirectionOut {
		signedQty = signedQty.Neg()
	}

	now := s.clk.Now()

	// Shrinkage or found stock can carry a cash consequence; the entry
	// travels with the delta so both commit in the same transaction. The
	// repository fills in the reference identifier from the audit row.
	var entry *domain.Transaction
	if req.HasFinancialImpact && req.Amount != nil && req.Amount.IsPositive() {
		mode := domain.ModeCash
		if req.PaymentMode != nil {
			mode = domain.PaymentMode(*req.PaymentMode)
		}
		entry = &domain.Transaction{
			TxnDate:     now,
			Direction:   direction,
			Category:    domain.CategoryAdjustment,
			Amount:      *req.Amount,
			PaymentMode: mode,
			Reference:   domain.Reference{Type: domain.RefStockAdjustment},
			Notes:       req.Reason,
			CreatedAt:   now,
		}
	}

	adjustmentID, err := s.stockRepo.ApplyAdjustmentWithEntry(ctx, product.ProductID, signedQty, req.Reason, now, entry)
	if err != nil {
		s.LogError(ctx, err, "failed to apply stock adjustment", slog.Int64("product_id", req.ProductID))
		return nil, fmt.Errorf("failed to apply stock adjustment: %w", err)
	}

	s.LogInfo(ctx, "stock adjusted",
		slog.Int64("adjustment_id", adjustmentID),
		slog.Int64("product_id", product.ProductID),
		slog.String("direction", string(direction)),
		slog.String("quantity", req.Quantity.String()))

	return &domain.StockAdjustment{
		AdjustmentID: adjustmentID,
		ProductID:    product.ProductID,
		Direction:    direction,
		Quantity:     req.Quantity,
		Reason:       req.Reason,
		AdjustedAt:   now,
	}, nil
}

func (s *stockService) GetStockByProduct(ctx context.Context, productID int64) (*domain.Stock, error) {
	return s.stockRepo.FindStockByProductID(ctx, productID)
}

func (s *stockService) ListStocks(ctx context.Context) ([]domain.Stock, error) {
	return s.stockRepo.ListStocks(ctx)
}

func (s *stockService) ListLowStocks(ctx context.Context) ([]domain.Stock, error) {
	return s.stockRepo.ListLowStocks(ctx, s.lowStockThreshold)
}

func (s *stockService) ListAdjustments(ctx context.Context, productID int64, limit, offset int) ([]domain.StockAdjustment, error) {
	return s.stockRepo.ListAdjustmentsByProduct(ctx, productID, limit, offset)
}
