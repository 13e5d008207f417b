package services

import (
	"context"
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

const defaultLedgerPageSize = 50

type ledgerService struct {
	BaseService
	txnRepo portsrepo.TransactionRepositoryFacade
	repos   portsrepo.RepositoryProvider
	clk     clock.Clock
}

// NewLedgerService creates the ledger service. The full repository provider
// is needed for reference resolution across every aggregate.
func NewLedgerService(repos portsrepo.RepositoryProvider, clk clock.Clock) portssvc.LedgerSvcFacade {
	return &ledgerService{
		txnRepo: repos.TransactionRepo,
		repos:   repos,
		clk:     clk,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// PostTransaction appends one immutable ledger entry. Amount must be
// non-negative; direction encodes the sign.
func (s *ledgerService) PostTransaction(ctx context.Context, direction domain.Direction, category domain.TxnCategory, amount decimal.Decimal, mode domain.PaymentMode, ref domain.Reference, notes string, occurredAt time.Time) (int64, error) {
	if amount.IsNegative() {
		return 0, apperrors.NewValidationError("ledger amount must be non-negative")
	}

	txn := domain.Transaction{
		TxnDate:     occurredAt,
		Direction:   direction,
		Category:    category,
		Amount:      amount,
		PaymentMode: mode,
		Reference:   ref,
		Notes:       notes,
		CreatedAt:   s.clk.Now(),
	}

	transactionID, err := s.txnRepo.InsertTransaction(ctx, txn)
	if err != nil {
		s.LogError(ctx, err, "failed to post ledger entry",
			slog.String("category", string(category)),
			slog.String("direction", string(direction)))
		return 0, fmt.Errorf("failed to post ledger entry: %w", err)
	}

	s.LogInfo(ctx, "ledger entry posted",
		slog.Int64("transaction_id", transactionID),
		slog.String("category", string(category)),
		slog.String("direction", string(direction)),
		slog.String("amount", amount.String()))

	return transactionID, nil
}

func (s *ledgerService) GetTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	return s.txnRepo.FindTransactionByID(ctx, transactionID)
}

func (s *ledgerService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	filter := portsrepo.TransactionFilter{
		From: params.From,
		To:   params.To,
	}
	if params.Direction != nil {
		d := domain.Direction(*params.Direction)
		filter.Direction = &d
	}
	if params.Category != nil {
		c := domain.TxnCategory(*params.Category)
		filter.Category = &c
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultLedgerPageSize
	}

	txns, nextToken, err := s.txnRepo.ListTransactions(ctx, filter, limit, params.NextToken)
	if err != nil {
		return nil, err
	}

	return &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(txns),
		NextToken:    nextToken,
	}, nil
}

// ResolveReference looks up the originating entity of a ledger entry. The
// switch is exhaustive over the closed reference type set.
func (s *ledgerService) ResolveReference(ctx context.Context, ref domain.Reference) (*dto.ReferenceOriginResponse, error) {
	resp := &dto.ReferenceOriginResponse{
		ReferenceType: string(ref.Type),
		ReferenceID:   ref.ID,
	}

	switch ref.Type {
	case domain.RefSale:
		sale, err := s.repos.SaleRepo.FindSaleByID(ctx, ref.ID)
		if err != nil {
			return nil, err
		}
		resp.Description = fmt.Sprintf("sale to %s on %s", sale.CustomerName, sale.SaleDate.Format("2006-01-02"))
	case domain.RefPurchase:
		purchase, err := s.repos.PurchaseRepo.FindPurchaseByID(ctx, ref.ID)
		if err != nil {
			return nil, err
		}
		resp.Description = fmt.Sprintf("purchase from supplier %d on %s", purchase.SupplierID, purchase.PurchaseDate.Format("2006-01-02"))
	case domain.RefOrder:
		order, err := s.repos.OrderRepo.FindOrderByID(ctx, ref.ID)
		if err != nil {
			return nil, err
		}
		resp.Description = fmt.Sprintf("order for %s (%s)", order.CustomerName, order.Status)
	case domain.RefSupplierPayment:
		resp.Description = fmt.Sprintf("supplier payment %d", ref.ID)
	case domain.RefWorkerPayment:
		resp.Description = fmt.Sprintf("worker payment %d", ref.ID)
	case domain.RefPersonal:
		resp.Description = fmt.Sprintf("personal transaction %d", ref.ID)
	case domain.RefStockAdjustment:
		resp.Description = fmt.Sprintf("stock adjustment %d", ref.ID)
	default:
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown reference type %q", ref.Type))
	}

	return resp, nil
}
