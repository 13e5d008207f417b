package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shopledger/shop_ledger_app/internal/apperrors"
	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	portsrepo "github.com/shopledger/shop_ledger_app/internal/core/ports/repositories"
	"github.com/shopledger/shop_ledger_app/internal/models"
	"github.com/shopledger/shop_ledger_app/internal/utils/mapping"
	"github.com/shopledger/shop_ledger_app/internal/utils/pagination"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for ledger entries.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const transactionInsertQuery = `
	INSERT INTO transactions (
		txn_date, direction, category, amount, payment_mode,
		reference_type, reference_id, notes, created_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING transaction_id;
`

// InsertTransaction appends one ledger entry in its own transaction.
func (r *PgxTransactionRepository) InsertTransaction(ctx context.Context, txn domain.Transaction) (int64, error) {
	m := mapping.ToModelTransaction(txn)
	var transactionID int64
	err := r.Pool.QueryRow(ctx, transactionInsertQuery,
		m.TxnDate,
		m.Direction,
		m.Category,
		m.Amount,
		m.PaymentMode,
		m.ReferenceType,
		m.ReferenceID,
		m.Notes,
		m.CreatedAt,
	).Scan(&transactionID)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to insert ledger entry", err)
	}
	return transactionID, nil
}

// InsertTransactionInTx appends one ledger entry inside a caller-owned
// transaction. Used by the workflow orchestrations so the business row and
// its cash movement commit together.
func (r *PgxTransactionRepository) InsertTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) (int64, error) {
	m := mapping.ToModelTransaction(txn)
	var transactionID int64
	err := tx.QueryRow(ctx, transactionInsertQuery,
		m.TxnDate,
		m.Direction,
		m.Category,
		m.Amount,
		m.PaymentMode,
		m.ReferenceType,
		m.ReferenceID,
		m.Notes,
		m.CreatedAt,
	).Scan(&transactionID)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to insert ledger entry", err)
	}
	return transactionID, nil
}

// FindTransactionByID retrieves one ledger entry.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	query := `
		SELECT transaction_id, txn_date, direction, category, amount, payment_mode,
		       reference_type, reference_id, notes, created_at
		FROM transactions
		WHERE transaction_id = $1;
	`
	var m models.Transaction
	err := r.Pool.QueryRow(ctx, query, transactionID).Scan(
		&m.TransactionID,
		&m.TxnDate,
		&m.Direction,
		&m.Category,
		&m.Amount,
		&m.PaymentMode,
		&m.ReferenceType,
		&m.ReferenceID,
		&m.Notes,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to find ledger entry %d", transactionID), err)
	}
	d := mapping.ToDomainTransaction(m)
	return &d, nil
}

// ListTransactions retrieves a filtered ledger listing newest first using
// keyset pagination on (txn_date, created_at).
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, filter portsrepo.TransactionFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	query := `
		SELECT transaction_id, txn_date, direction, category, amount, payment_mode,
		       reference_type, reference_id, notes, created_at
		FROM transactions
		WHERE 1=1
	`
	args := []any{}
	argN := 1

	addArg := func(v any) string {
		args = append(args, v)
		p := "$" + strconv.Itoa(argN)
		argN++
		return p
	}

	if filter.From != nil {
		query += " AND txn_date >= " + addArg(*filter.From)
	}
	if filter.To != nil {
		query += " AND txn_date < " + addArg(*filter.To)
	}
	if filter.Direction != nil {
		query += " AND direction = " + addArg(string(*filter.Direction))
	}
	if filter.Category != nil {
		query += " AND category = " + addArg(string(*filter.Category))
	}
	if filter.Reference != nil {
		query += " AND reference_type = " + addArg(string(filter.Reference.Type))
		query += " AND reference_id = " + addArg(filter.Reference.ID)
	}

	if nextToken != nil && *nextToken != "" {
		txnDate, createdAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewValidationError("invalid pagination token")
		}
		query += fmt.Sprintf(" AND (txn_date, created_at) < (%s, %s)", addArg(txnDate), addArg(createdAt))
	}

	// Fetch one extra row to decide whether another page exists.
	query += " ORDER BY txn_date DESC, created_at DESC LIMIT " + addArg(limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query ledger entries", err)
	}
	defer rows.Close()

	entries := []models.Transaction{}
	for rows.Next() {
		var m models.Transaction
		if err := rows.Scan(
			&m.TransactionID,
			&m.TxnDate,
			&m.Direction,
			&m.Category,
			&m.Amount,
			&m.PaymentMode,
			&m.ReferenceType,
			&m.ReferenceID,
			&m.Notes,
			&m.CreatedAt,
		); err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan ledger entry row", err)
		}
		entries = append(entries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating ledger entry rows", err)
	}

	var token *string
	if len(entries) > limit {
		entries = entries[:limit]
		last := entries[len(entries)-1]
		t := pagination.EncodeToken(last.TxnDate, last.CreatedAt)
		token = &t
	}

	return mapping.ToDomainTransactionSlice(entries), token, nil
}
