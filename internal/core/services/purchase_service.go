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

// resolvePaymentMode falls back to CASH, the dominant channel for a counter
// business, when the request leaves the mode empty.
func resolvePaymentMode(mode string) domain.PaymentMode {
	if mode == "" {
		return domain.ModeCash
	}
	return domain.PaymentMode(mode)
}

type purchaseService struct {
	BaseService
	purchaseRepo portsrepo.PurchaseRepositoryFacade
	supplierRepo portsrepo.SupplierReader
	productRepo  portsrepo.ProductReader
	clk          clock.Clock
}

// NewPurchaseService creates the incoming-trade orchestration service.
func NewPurchaseService(purchaseRepo portsrepo.PurchaseRepositoryFacade, supplierRepo portsrepo.SupplierReader, productRepo portsrepo.ProductReader, clk clock.Clock) portssvc.PurchaseSvcFacade {
	return &purchaseService{
		purchaseRepo: purchaseRepo,
		supplierRepo: supplierRepo,
		productRepo:  productRepo,
		clk:          clk,
	}
}

var _ portssvc.PurchaseSvcFacade = (*purchaseService)(nil)

// RecordPurchase validates everything up front, then hands one atomic write
// to the repository: purchase, items, stock IN deltas, and the optional
// payment with its ledger entry commit together or not at all.
func (s *purchaseService) RecordPurchase(ctx context.Context, req dto.RecordPurchaseRequest) (*domain.Purchase, error) {
	if len(req.Items) == 0 {
		return nil, apperrors.NewValidationError("purchase must have at least one item")
	}
	if req.PaidAmount.IsNegative() {
		return nil, apperrors.NewValidationError("paid amount must be non-negative")
	}

	supplier, err := s.supplierRepo.FindSupplierByID(ctx, req.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier.Status != domain.StatusActive {
		return nil, apperrors.NewAppError(422, fmt.Sprintf("supplier %d is inactive", supplier.SupplierID), apperrors.ErrInactive)
	}

	now := s.clk.Now()
	purchaseDate := now
	if req.PurchaseDate != nil {
		purchaseDate = *req.PurchaseDate
	}

	total := decimal.Zero
	items := make([]domain.PurchaseItem, 0, len(req.Items))
	for _, line := range req.Items {
		if line.Quantity.LessThanOrEqual(decimal.Zero) {
			return nil, apperrors.NewValidationError(fmt.Sprintf("quantity for product %d must be positive", line.ProductID))
		}
		if _, err := s.productRepo.FindProductByID(ctx, line.ProductID); err != nil {
			return nil, err
		}
		lineTotal := line.UnitPrice.Mul(line.Quantity)
		total = total.Add(lineTotal)
		items = append(items, domain.PurchaseItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			LineTotal: lineTotal,
		})
	}

	purchase := domain.Purchase{
		SupplierID:   req.SupplierID,
		PurchaseDate: purchaseDate,
		TotalAmount:  total,
		PaidAmount:   req.PaidAmount,
		DueAmount:    total.Sub(req.PaidAmount),
		Status:       domain.DerivePurchaseStatus(total, req.PaidAmount),
		Notes:        req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	var payment *domain.SupplierPayment
	var entry *domain.Transaction
	if req.PaidAmount.IsPositive() {
		mode := resolvePaymentMode(req.PaymentMode)
		payment = &domain.SupplierPayment{
			SupplierID:  req.SupplierID,
			Amount:      req.PaidAmount,
			PaymentMode: mode,
			PaidAt:      purchaseDate,
			Notes:       req.Notes,
		}
		entry = &domain.Transaction{
			TxnDate:     purchaseDate,
			Direction:   domain.DirectionOut,
			Category:    domain.CategoryPurchase,
			Amount:      req.PaidAmount,
			PaymentMode: mode,
			Reference:   domain.Reference{Type: domain.RefSupplierPayment},
			Notes:       req.Notes,
			CreatedAt:   now,
		}
	}

	purchaseID, err := s.purchaseRepo.SavePurchase(ctx, purchase, items, payment, entry)
	if err != nil {
		s.LogError(ctx, err, "failed to record purchase", slog.Int64("supplier_id", req.SupplierID))
		return nil, fmt.Errorf("failed to record purchase: %w", err)
	}
	purchase.PurchaseID = purchaseID

	s.LogInfo(ctx, "purchase recorded",
		slog.Int64("purchase_id", purchaseID),
		slog.Int64("supplier_id", req.SupplierID),
		slog.String("total", total.String()),
		slog.String("status", string(purchase.Status)))

	return &purchase, nil
}

func (s *purchaseService) GetPurchaseWithItems(ctx context.Context, purchaseID int64) (*domain.Purchase, []domain.PurchaseItem, error) {
	purchase, err := s.purchaseRepo.FindPurchaseByID(ctx, purchaseID)
	if err != nil {
		return nil, nil, err
	}
	items, err := s.purchaseRepo.FindPurchaseItems(ctx, purchaseID)
	if err != nil {
		return nil, nil, err
	}
	return purchase, items, nil
}

func (s *purchaseService) ListPurchases(ctx context.Context, supplierID *int64, limit, offset int) ([]domain.Purchase, error) {
	return s.purchaseRepo.ListPurchases(ctx, supplierID, limit, offset)
}
