package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/shopledger/shop_ledger_app/internal/apperrors"
	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	portsrepo "github.com/shopledger/shop_ledger_app/internal/core/ports/repositories"
	"github.com/shopledger/shop_ledger_app/internal/models"
	"github.com/shopledger/shop_ledger_app/internal/utils/mapping"
)

type PgxStockRepository struct {
	BaseRepository
	txnRepo portsrepo.TransactionWriter
}

// newPgxStockRepository creates a new repository for inventory data. The
// ledger writer is injected so a financially-relevant adjustment commits
// together with its ledger entry.
func newPgxStockRepository(pool *pgxpool.Pool, txnRepo portsrepo.TransactionWriter) portsrepo.StockRepositoryWithTx {
	return &PgxStockRepository{
		BaseRepository: BaseRepository{Pool: pool},
		txnRepo:        txnRepo,
	}
}

var _ portsrepo.StockRepositoryWithTx = (*PgxStockRepository)(nil)

// The upsert applies the signed delta and lazily creates the stock row in
// one statement. Quantity is allowed to go negative; the ledger is the
// source of truth and physical counts are reconciled via adjustments.
const stockUpsertQuery = `
	INSERT INTO stocks (product_id, quantity_on_hand, last_updated)
	VALUES ($1, $2, $3)
	ON CONFLICT (product_id)
	DO UPDATE SET quantity_on_hand = stocks.quantity_on_hand + EXCLUDED.quantity_on_hand,
	              last_updated = EXCLUDED.last_updated;
`

const adjustmentInsertQuery = `
	INSERT INTO stock_adjustments (product_id, direction, quantity, reason, adjusted_at)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING adjustment_id;
`

// ApplyStockDelta applies the signed quantity to the product's stock row and
// records the audit entry, atomically, in its own database transaction.
func (r *PgxStockRepository) ApplyStockDelta(ctx context.Context, productID int64, signedQty decimal.Decimal, reason string, occurredAt time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := r.applyDeltaInTx(ctx, tx, productID, signedQty, reason, occurredAt); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// ApplyStockDeltaInTx is the same primitive inside a caller-owned transaction.
func (r *PgxStockRepository) ApplyStockDeltaInTx(ctx context.Context, tx pgx.Tx, productID int64, signedQty decimal.Decimal, reason string, occurredAt time.Time) error {
	_, err := r.applyDeltaInTx(ctx, tx, productID, signedQty, reason, occurredAt)
	return err
}

// ApplyAdjustmentWithEntry runs the delta, its audit row, and the optional
// ledger entry in one transaction. The entry's reference identifier is filled
// in from the new audit row before it is inserted.
func (r *PgxStockRepository) ApplyAdjustmentWithEntry(ctx context.Context, productID int64, signedQty decimal.Decimal, reason string, occurredAt time.Time, entry *domain.Transaction) (int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx)

	adjustmentID, err := r.applyDeltaInTx(ctx, tx, productID, signedQty, reason, occurredAt)
	if err != nil {
		return 0, err
	}

	if entry != nil {
		entry.Reference.ID = adjustmentID
		if _, err := r.txnRepo.InsertTransactionInTx(ctx, tx, *entry); err != nil {
			return 0, err
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}

	return adjustmentID, nil
}

func (r *PgxStockRepository) applyDeltaInTx(ctx context.Context, tx pgx.Tx, productID int64, signedQty decimal.Decimal, reason string, occurredAt time.Time) (int64, error) {
	if _, err := tx.Exec(ctx, stockUpsertQuery, productID, signedQty, occurredAt); err != nil {
		return 0, apperrors.NewAppError(500, fmt.Sprintf("failed to apply stock delta for product %d", productID), err)
	}

	direction := domain.DirectionIn
	quantity := signedQty
	if signedQty.IsNegative() {
		direction = domain.DirectionOut
		quantity = signedQty.Neg()
	}

	var adjustmentID int64
	if err := tx.QueryRow(ctx, adjustmentInsertQuery, productID, string(direction), quantity, reason, occurredAt).Scan(&adjustmentID); err != nil {
		return 0, apperrors.NewAppError(500, fmt.Sprintf("failed to insert stock adjustment for product %d", productID), err)
	}

	return adjustmentID, nil
}

// FindStockByProductID retrieves the stock row for a product.
func (r *PgxStockRepository) FindStockByProductID(ctx context.Context, productID int64) (*domain.Stock, error) {
	query := `
		SELECT stock_id, product_id, quantity_on_hand, last_updated
		FROM stocks
		WHERE product_id = $1;
	`
	var m models.Stock
	err := r.Pool.QueryRow(ctx, query, productID).Scan(
		&m.StockID,
		&m.ProductID,
		&m.QuantityOnHand,
		&m.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to find stock for product %d", productID), err)
	}
	d := mapping.ToDomainStock(m)
	return &d, nil
}

// ListStocks retrieves all stock rows ordered by product.
func (r *PgxStockRepository) ListStocks(ctx context.Context) ([]domain.Stock, error) {
	query := `
		SELECT stock_id, product_id, quantity_on_hand, last_updated
		FROM stocks
		ORDER BY product_id;
	`
	return r.queryStocks(ctx, query)
}

// ListLowStocks retrieves stock rows with quantity at or below the threshold.
func (r *PgxStockRepository) ListLowStocks(ctx context.Context, threshold decimal.Decimal) ([]domain.Stock, error) {
	query := `
		SELECT stock_id, product_id, quantity_on_hand, last_updated
		FROM stocks
		WHERE quantity_on_hand <= $1
		ORDER BY quantity_on_hand, product_id;
	`
	return r.queryStocks(ctx, query, threshold)
}

func (r *PgxStockRepository) queryStocks(ctx context.Context, query string, args ...any) ([]domain.Stock, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query stocks", err)
	}
	defer rows.Close()

	stocks := []models.Stock{}
	for rows.Next() {
		var m models.Stock
		if err := rows.Scan(&m.StockID, &m.ProductID, &m.QuantityOnHand, &m.LastUpdated); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan stock row", err)
		}
		stocks = append(stocks, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating stock rows", err)
	}

	return mapping.ToDomainStockSlice(stocks), nil
}

// ListAdjustmentsByProduct retrieves the audit trail for a product, newest first.
func (r *PgxStockRepository) ListAdjustmentsByProduct(ctx context.Context, productID int64, limit, offset int) ([]domain.StockAdjustment, error) {
	query := `
		SELECT adjustment_id, product_id, direction, quantity, reason, adjusted_at
		FROM stock_adjustments
		WHERE product_id = $1
		ORDER BY adjusted_at DESC, adjustment_id DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, productID, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to query adjustments for product %d", productID), err)
	}
	defer rows.Close()

	adjustments := []models.StockAdjustment{}
	for rows.Next() {
		var m models.StockAdjustment
		if err := rows.Scan(&m.AdjustmentID, &m.ProductID, &m.Direction, &m.Quantity, &m.Reason, &m.AdjustedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan stock adjustment row", err)
		}
		adjustments = append(adjustments, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating stock adjustment rows", err)
	}

	return mapping.ToDomainStockAdjustmentSlice(adjustments), nil
}
