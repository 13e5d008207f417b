package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopledger/shop_ledger_app/internal/core/domain"
)

// TransactionFilter narrows ledger listings. Nil fields are ignored.
// The window is half-open: [From, To).
type TransactionFilter struct {
	From      *time.Time
	To        *time.Time
	Direction *domain.Direction
	Category  *domain.TxnCategory
	Reference *domain.Reference
}

// TransactionReader defines read operations for the ledger.
type TransactionReader interface {
	// FindTransactionByID retrieves one ledger entry.
	FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error)

	// ListTransactions retrieves a filtered, token-paginated ledger listing,
	// newest first. It returns the entries, a token for the next page, and
	// an error.
	ListTransactions(ctx context.Context, filter TransactionFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error)
}

// TransactionWriter defines the append-only ledger write primitive.
// Ledger entries are immutable; there is no update or delete.
type TransactionWriter interface {
	// InsertTransaction appends one ledger entry in its own transaction.
	InsertTransaction(ctx context.Context, txn domain.Transaction) (int64, error)

	// InsertTransactionInTx appends one ledger entry inside a caller-owned
	// transaction (used by the workflow orchestrations).
	InsertTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) (int64, error)
}

// TransactionRepositoryFacade combines all ledger repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
