package repositories

import (
	"context"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
)

// PersonalReader defines read operations for personal transactions.
type PersonalReader interface {
	// ListPersonalTransactions retrieves personal rows newest first.
	ListPersonalTransactions(ctx context.Context, limit, offset int) ([]domain.PersonalTransaction, error)
}

// PersonalWriter defines the atomic personal-transaction write: the personal
// row and its mirrored PERSONAL ledger entry commit together or not at all.
type PersonalWriter interface {
	SaveWithTransaction(ctx context.Context, personal domain.PersonalTransaction, entry domain.Transaction) (int64, error)
}

// PersonalRepositoryFacade combines all personal transaction interfaces.
type PersonalRepositoryFacade interface {
	PersonalReader
	PersonalWriter
}
