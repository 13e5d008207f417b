package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shopledger/shop_ledger_app/internal/apperrors"
	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	portsrepo "github.com/shopledger/shop_ledger_app/internal/core/ports/repositories"
	"github.com/shopledger/shop_ledger_app/internal/models"
	"github.com/shopledger/shop_ledger_app/internal/utils/mapping"
)

type PgxPersonalRepository struct {
	BaseRepository
	txnRepo portsrepo.TransactionWriter
}

// newPgxPersonalRepository creates a new repository for the owner's personal
// transactions kept apart from business figures.
func newPgxPersonalRepository(pool *pgxpool.Pool, txnRepo portsrepo.TransactionWriter) portsrepo.PersonalRepositoryFacade {
	return &PgxPersonalRepository{
		BaseRepository: BaseRepository{Pool: pool},
		txnRepo:        txnRepo,
	}
}

var _ portsrepo.PersonalRepositoryFacade = (*PgxPersonalRepository)(nil)

// SaveWithTransaction persists the personal row and its mirrored ledger
// entry in one DB transaction, returning the personal row's ID.
func (r *PgxPersonalRepository) SaveWithTransaction(ctx context.Context, personal domain.PersonalTransaction, entry domain.Transaction) (int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO personal_transactions (txn_date, direction, amount, payment_mode, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING personal_txn_id;
	`
	var personalTxnID int64
	err = tx.QueryRow(ctx, query,
		personal.TxnDate,
		string(personal.Direction),
		personal.Amount,
		string(personal.PaymentMode),
		personal.Notes,
		personal.CreatedAt,
	).Scan(&personalTxnID)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to insert personal transaction", err)
	}

	entry.Reference.ID = personalTxnID
	if _, err := r.txnRepo.InsertTransactionInTx(ctx, tx, entry); err != nil {
		return 0, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}

	return personalTxnID, nil
}

// ListPersonalTransactions retrieves personal rows newest first.
func (r *PgxPersonalRepository) ListPersonalTransactions(ctx context.Context, limit, offset int) ([]domain.PersonalTransaction, error) {
	query := `
		SELECT personal_txn_id, txn_date, direction, amount, payment_mode, notes, created_at
		FROM personal_transactions
		ORDER BY txn_date DESC, personal_txn_id DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query personal transactions", err)
	}
	defer rows.Close()

	personals := []models.PersonalTransaction{}
	for rows.Next() {
		var m models.PersonalTransaction
		if err := rows.Scan(&m.PersonalTxnID, &m.TxnDate, &m.Direction, &m.Amount, &m.PaymentMode, &m.Notes, &m.CreatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan personal transaction row", err)
		}
		personals = append(personals, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating personal transaction rows", err)
	}

	return mapping.ToDomainPersonalTransactionSlice(personals), nil
}
