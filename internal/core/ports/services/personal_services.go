package services

import (
	"context"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	"github.com/shopledger/shop_ledger_app/internal/dto"
)

// PersonalSvcFacade records private cash movements that still mirror into
// the ledger under category PERSONAL.
type PersonalSvcFacade interface {
	RecordPersonalTransaction(ctx context.Context, req dto.RecordPersonalTxnRequest) (*domain.PersonalTransaction, error)

	ListPersonalTransactions(ctx context.Context, limit, offset int) ([]domain.PersonalTransaction, error)
}
