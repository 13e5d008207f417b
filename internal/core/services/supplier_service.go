package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/shopledger/shop_ledger_app/internal/apperrors"
	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	portsrepo "github.com/shopledger/shop_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/shopledger/shop_ledger_app/internal/core/ports/services"
	"github.com/shopledger/shop_ledger_app/internal/dto"
	"github.com/shopledger/shop_ledger_app/internal/platform/clock"
)

// supplierLedgerFetchLimit bounds how many purchases/payments the merged
// ledger view pulls. A single-shop supplier history stays far below this.
const supplierLedgerFetchLimit = 10000

type supplierService struct {
	BaseService
	supplierRepo  portsrepo.SupplierRepositoryFacade
	purchaseRepo  portsrepo.PurchaseReader
	reportingRepo portsrepo.ReportingRepository
	clk           clock.Clock
}

// NewSupplierService creates the supplier master-data and payment service.
func NewSupplierService(supplierRepo portsrepo.SupplierRepositoryFacade, purchaseRepo portsrepo.PurchaseReader, reportingRepo portsrepo.ReportingRepository, clk clock.Clock) portssvc.SupplierSvcFacade {
	return &supplierService{
		supplierRepo:  supplierRepo,
		purchaseRepo:  purchaseRepo,
		reportingRepo: reportingRepo,
		clk:           clk,
	}
}

var _ portssvc.SupplierSvcFacade = (*supplierService)(nil)

func (s *supplierService) CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest) (*domain.Supplier, error) {
	now := s.clk.Now()
	supplier := domain.Supplier{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
		Status:  domain.StatusActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	supplierID, err := s.supplierRepo.SaveSupplier(ctx, supplier)
	if err != nil {
		s.LogError(ctx, err, "failed to create supplier")
		return nil, fmt.Errorf("failed to create supplier: %w", err)
	}
	supplier.SupplierID = supplierID

	s.LogInfo(ctx, "supplier created", slog.Int64("supplier_id", supplierID))
	return &supplier, nil
}

func (s *supplierService) GetSupplierByID(ctx context.Context, supplierID int64) (*domain.Supplier, error) {
	return s.supplierRepo.FindSupplierByID(ctx, supplierID)
}

func (s *supplierService) ListSuppliers(ctx context.Context, activeOnly bool, limit, offset int) ([]domain.Supplier, error) {
	return s.supplierRepo.ListSuppliers(ctx, activeOnly, limit, offset)
}

func (s *supplierService) UpdateSupplier(ctx context.Context, supplierID int64, req dto.UpdateSupplierRequest) (*domain.Supplier, error) {
	supplier, err := s.supplierRepo.FindSupplierByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		supplier.Name = *req.Name
	}
	if req.Phone != nil {
		supplier.Phone = *req.Phone
	}
	if req.Address != nil {
		supplier.Address = *req.Address
	}
	supplier.LastUpdatedAt = s.clk.Now()

	if err := s.supplierRepo.UpdateSupplier(ctx, *supplier); err != nil {
		s.LogError(ctx, err, "failed to update supplier", slog.Int64("supplier_id", supplierID))
		return nil, fmt.Errorf("failed to update supplier: %w", err)
	}

	return supplier, nil
}

func (s *supplierService) DeactivateSupplier(ctx context.Context, supplierID int64) error {
	return s.supplierRepo.SetSupplierStatus(ctx, supplierID, domain.StatusInactive, s.clk.Now())
}

func (s *supplierService) ReactivateSupplier(ctx context.Context, supplierID int64) error {
	return s.supplierRepo.SetSupplierStatus(ctx, supplierID, domain.StatusActive, s.clk.Now())
}

// PaySupplier persists the disbursement and its ledger entry atomically.
// The payment only reduces the recomputed due; it never rewrites any
// purchase's frozen snapshot.
func (s *supplierService) PaySupplier(ctx context.Context, supplierID int64, req dto.PaySupplierRequest) (*domain.SupplierPayment, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, apperrors.NewValidationError("payment amount must be positive")
	}

	supplier, err := s.supplierRepo.FindSupplierByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	if supplier.Status != domain.StatusActive {
		return nil, apperrors.NewAppError(422, fmt.Sprintf("supplier %d is inactive", supplierID), apperrors.ErrInactive)
	}

	if req.PurchaseID != nil {
		purchase, err := s.purchaseRepo.FindPurchaseByID(ctx, *req.PurchaseID)
		if err != nil {
			return nil, err
		}
		if purchase.SupplierID != supplierID {
			return nil, apperrors.NewValidationError(fmt.Sprintf("purchase %d does not belong to supplier %d", *req.PurchaseID, supplierID))
		}
	}

	now := s.clk.Now()
	mode := resolvePaymentMode(req.PaymentMode)

	payment := domain.SupplierPayment{
		SupplierID:  supplierID,
		PurchaseID:  req.PurchaseID,
		Amount:      req.Amount,
		PaymentMode: mode,
		PaidAt:      now,
		Notes:       req.Notes,
	}
	entry := domain.Transaction{
		TxnDate:     now,
		Direction:   domain.DirectionOut,
		Category:    domain.CategoryPurchase,
		Amount:      req.Amount,
		PaymentMode: mode,
		Reference:   domain.Reference{Type: domain.RefSupplierPayment},
		Notes:       req.Notes,
		CreatedAt:   now,
	}

	paymentID, err := s.supplierRepo.SavePaymentWithTransaction(ctx, payment, entry)
	if err != nil {
		s.LogError(ctx, err, "failed to pay supplier", slog.Int64("supplier_id", supplierID))
		return nil, fmt.Errorf("failed to pay supplier: %w", err)
	}
	payment.PaymentID = paymentID

	s.LogInfo(ctx, "supplier paid",
		slog.Int64("supplier_id", supplierID),
		slog.Int64("payment_id", paymentID),
		slog.String("amount", req.Amount.String()))

	return &payment, nil
}

// GetSupplierDue recomputes the outstanding balance on every call from the
// purchase and payment sums; nothing cached on the supplier row.
func (s *supplierService) GetSupplierDue(ctx context.Context, supplierID int64) (*domain.SupplierDue, error) {
	if _, err := s.supplierRepo.FindSupplierByID(ctx, supplierID); err != nil {
		return nil, err
	}

	totalPurchased, totalPaid, err := s.reportingRepo.GetSupplierTotals(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	return &domain.SupplierDue{
		SupplierID:     supplierID,
		TotalPurchased: totalPurchased,
		TotalPaid:      totalPaid,
		Due:            totalPurchased.Sub(totalPaid),
	}, nil
}

// GetSupplierLedger merges purchases (debit) and payments (credit) into one
// time-ordered sequence with a running due. On equal timestamps the
// purchase sorts first so the running figure never dips spuriously.
func (s *supplierService) GetSupplierLedger(ctx context.Context, supplierID int64) ([]domain.SupplierLedgerEntry, error) {
	if _, err := s.supplierRepo.FindSupplierByID(ctx, supplierID); err != nil {
		return nil, err
	}

	purchases, err := s.purchaseRepo.ListPurchases(ctx, &supplierID, supplierLedgerFetchLimit, 0)
	if err != nil {
		return nil, err
	}
	payments, err := s.supplierRepo.ListPaymentsBySupplier(ctx, supplierID, supplierLedgerFetchLimit, 0)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.SupplierLedgerEntry, 0, len(purchases)+len(payments))
	for _, p := range purchases {
		entries = append(entries, domain.SupplierLedgerEntry{
			Kind:       domain.SupplierEntryPurchase,
			SourceID:   p.PurchaseID,
			OccurredAt: p.PurchaseDate,
			Amount:     p.TotalAmount,
		})
	}
	for _, p := range payments {
		entries = append(entries, domain.SupplierLedgerEntry{
			Kind:       domain.SupplierEntryPayment,
			SourceID:   p.PaymentID,
			OccurredAt: p.PaidAt,
			Amount:     p.Amount,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].OccurredAt.Equal(entries[j].OccurredAt) {
			return entries[i].OccurredAt.Before(entries[j].OccurredAt)
		}
		return entries[i].Kind == domain.SupplierEntryPurchase && entries[j].Kind == domain.SupplierEntryPayment
	})

	running := decimal.Zero
	for i := range entries {
		if entries[i].Kind == domain.SupplierEntryPurchase {
			running = running.Add(entries[i].Amount)
		} else {
			running = running.Sub(entries[i].Amount)
		}
		entries[i].RunningDue = running
	}

	return entries, nil
}

func (s *supplierService) ListSupplierPayments(ctx context.Context, supplierID int64, limit, offset int) ([]domain.SupplierPayment, error) {
	return s.supplierRepo.ListPaymentsBySupplier(ctx, supplierID, limit, offset)
}
