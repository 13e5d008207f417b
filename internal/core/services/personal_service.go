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

type personalService struct {
	BaseService
	personalRepo portsrepo.PersonalRepositoryFacade
	clk          clock.Clock
}

// NewPersonalService creates the service for the owner's private cash
// movements. Each row mirrors into the ledger under category PERSONAL so
// the cash position stays complete while reports can exclude them.
func NewPersonalService(personalRepo portsrepo.PersonalRepositoryFacade, clk clock.Clock) portssvc.PersonalSvcFacade {
	return &personalService{
		personalRepo: personalRepo,
		clk:          clk,
	}
}

var _ portssvc.PersonalSvcFacade = (*personalService)(nil)

func (s *personalService) RecordPersonalTransaction(ctx context.Context, req dto.RecordPersonalTxnRequest) (*domain.PersonalTransaction, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, apperrors.NewValidationError("amount must be positive")
	}

	now := s.clk.Now()
	txnDate := now
	if req.TxnDate != nil {
		txnDate = *req.TxnDate
	}
	mode := resolvePaymentMode(req.PaymentMode)
	direction := domain.Direction(req.Direction)

	personal := domain.PersonalTransaction{
		TxnDate:     txnDate,
		Direction:   direction,
		Amount:      req.Amount,
		PaymentMode: mode,
		Notes:       req.Notes,
		CreatedAt:   now,
	}
	entry := domain.Transaction{
		TxnDate:     txnDate,
		Direction:   direction,
		Category:    domain.CategoryPersonal,
		Amount:      req.Amount,
		PaymentMode: mode,
		Reference:   domain.Reference{Type: domain.RefPersonal},
		Notes:       req.Notes,
		CreatedAt:   now,
	}

	personalTxnID, err := s.personalRepo.SaveWithTransaction(ctx, personal, entry)
	if err != nil {
		s.LogError(ctx, err, "failed to record personal transaction")
		return nil, fmt.Errorf("failed to record personal transaction: %w", err)
	}
	personal.PersonalTxnID = personalTxnID

	s.LogInfo(ctx, "personal transaction recorded",
		slog.Int64("personal_txn_id", personalTxnID),
		slog.String("direction", string(direction)),
		slog.String("amount", req.Amount.String()))

	return &personal, nil
}

func (s *personalService) ListPersonalTransactions(ctx context.Context, limit, offset int) ([]domain.PersonalTransaction, error) {
	return s.personalRepo.ListPersonalTransactions(ctx, limit, offset)
}
