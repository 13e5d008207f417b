package services

import (
	"context"
	"time"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	"github.com/shopledger/shop_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
)

// LedgerReaderSvc defines read operations for the ledger.
type LedgerReaderSvc interface {
	// GetTransactionByID retrieves one ledger entry.
	GetTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error)

	// ListTransactions retrieves a filtered, paginated ledger listing.
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)

	// ResolveReference looks up the originating entity of a ledger entry.
	// The switch over reference types is exhaustive.
	ResolveReference(ctx context.Context, ref domain.Reference) (*dto.ReferenceOriginResponse, error)
}

// LedgerWriterSvc defines the append-only posting primitive used by all
// orchestrations that post outside a composite repository write.
type LedgerWriterSvc interface {
	// PostTransaction appends one ledger entry and returns its identifier.
	// Amount must be non-negative; direction encodes the sign.
	PostTransaction(ctx context.Context, direction domain.Direction, category domain.TxnCategory, amount decimal.Decimal, mode domain.PaymentMode, ref domain.Reference, notes string, occurredAt time.Time) (int64, error)
}

// LedgerSvcFacade combines all ledger service interfaces.
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}
