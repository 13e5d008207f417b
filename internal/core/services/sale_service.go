package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopledger/shop_ledger_app/internal/apperrors"
	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	portsrepo "github.com/shopledger/shop_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/shopledger/shop_ledger_app/internal/core/ports/services"
	"github.com/shopledger/shop_ledger_app/internal/dto"
	"github.com/shopledger/shop_ledger_app/internal/platform/clock"
)

type saleService struct {
	BaseService
	saleRepo    portsrepo.SaleRepositoryFacade
	productRepo portsrepo.ProductReader
	clk         clock.Clock
}

// NewSaleService creates the outgoing-trade orchestration service.
func NewSaleService(saleRepo portsrepo.SaleRepositoryFacade, productRepo portsrepo.ProductReader, clk clock.Clock) portssvc.SaleSvcFacade {
	return &saleService{
		saleRepo:    saleRepo,
		productRepo: productRepo,
		clk:         clk,
	}
}

var _ portssvc.SaleSvcFacade = (*saleService)(nil)

// CreateSale validates the payload, then hands one atomic write to the
// repository: sale, items, stock OUT deltas, optional trade-in and the
// SALE/IN ledger entry commit together or not at all. The ledger posting is
// always the full final amount; a trade-in never nets against it.
func (s *saleService) CreateSale(ctx context.Context, req dto.CreateSaleRequest) (*domain.Sale, error) {
	if len(req.Items) == 0 {
		return nil, apperrors.NewValidationError("sale must have at least one item")
	}
	if req.Discount.IsNegative() {
		return nil, apperrors.NewValidationError("discount must be non-negative")
	}

	now := s.clk.Now()
	saleDate := now
	if req.SaleDate != nil {
		saleDate = *req.SaleDate
	}

	total := decimal.Zero
	items := make([]domain.SaleItem, 0, len(req.Items))
	for _, line := range req.Items {
		if line.Quantity.LessThanOrEqual(decimal.Zero) {
			return nil, apperrors.NewValidationError(fmt.Sprintf("quantity for product %d must be positive", line.ProductID))
		}
		if _, err := s.productRepo.FindProductByID(ctx, line.ProductID); err != nil {
			return nil, err
		}
		lineTotal := line.UnitPrice.Mul(line.Quantity)
		total = total.Add(lineTotal)
		items = append(items, domain.SaleItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			LineTotal: lineTotal,
		})
	}

	if req.Discount.GreaterThan(total) {
		return nil, apperrors.NewValidationError("discount exceeds sale total")
	}
	finalAmount := total.Sub(req.Discount)
	mode := resolvePaymentMode(req.PaymentMode)

	sale := domain.Sale{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		SaleDate:      saleDate,
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

	var tradeIn *domain.OldBatteryTradeIn
	if req.TradeIn != nil {
		tradeIn = &domain.OldBatteryTradeIn{
			Brand:     req.TradeIn.Brand,
			Weight:    req.TradeIn.Weight,
			Amount:    req.TradeIn.Amount,
			CreatedAt: now,
		}
	}

	entry := &domain.Transaction{
		TxnDate:     saleDate,
		Direction:   domain.DirectionIn,
		Category:    domain.CategorySale,
		Amount:      finalAmount,
		PaymentMode: mode,
		Reference:   domain.Reference{Type: domain.RefSale},
		Notes:       req.Notes,
		CreatedAt:   now,
	}

	saleID, err := s.saleRepo.SaveSale(ctx, sale, items, tradeIn, entry)
	if err != nil {
		s.LogError(ctx, err, "failed to create sale")
		return nil, fmt.Errorf("failed to create sale: %w", err)
	}
	sale.SaleID = saleID

	s.LogInfo(ctx, "sale created",
		slog.Int64("sale_id", saleID),
		slog.String("final_amount", finalAmount.String()))

	return &sale, nil
}

func (s *saleService) GetSaleWithItems(ctx context.Context, saleID int64) (*domain.Sale, []domain.SaleItem, *domain.OldBatteryTradeIn, error) {
	sale, err := s.saleRepo.FindSaleByID(ctx, saleID)
	if err != nil {
		return nil, nil, nil, err
	}
	items, err := s.saleRepo.FindSaleItems(ctx, saleID)
	if err != nil {
		return nil, nil, nil, err
	}
	tradeIn, err := s.saleRepo.FindTradeInBySaleID(ctx, saleID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, nil, nil, err
	}
	return sale, items, tradeIn, nil
}

func (s *saleService) ListSales(ctx context.Context, from, to *time.Time, limit, offset int) ([]domain.Sale, error) {
	return s.saleRepo.ListSales(ctx, from, to, limit, offset)
}
