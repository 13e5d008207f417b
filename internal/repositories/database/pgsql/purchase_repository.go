package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shopledger/shop_ledger_app/internal/apperrors"
	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	portsrepo "github.com/shopledger/shop_ledger_app/internal/core/ports/repositories"
	"github.com/shopledger/shop_ledger_app/internal/models"
	"github.com/shopledger/shop_ledger_app/internal/utils/mapping"
)

type PgxPurchaseRepository struct {
	BaseRepository
	stockRepo portsrepo.StockWriter
	txnRepo   portsrepo.TransactionWriter
	payRepo   portsrepo.SupplierPaymentWriter
}

// newPgxPurchaseRepository creates a new repository for purchase data. The
// stock, ledger and payment writers are injected so the whole purchase
// workflow commits inside one database transaction.
func newPgxPurchaseRepository(pool *pgxpool.Pool, stockRepo portsrepo.StockWriter, txnRepo portsrepo.TransactionWriter, payRepo portsrepo.SupplierPaymentWriter) portsrepo.PurchaseRepositoryFacade {
	return &PgxPurchaseRepository{
		BaseRepository: BaseRepository{Pool: pool},
		stockRepo:      stockRepo,
		txnRepo:        txnRepo,
		payRepo:        payRepo,
	}
}

var _ portsrepo.PurchaseRepositoryFacade = (*PgxPurchaseRepository)(nil)

// SavePurchase saves the purchase, its items, the stock IN deltas, and the
// optional supplier payment with its ledger entry within one DB transaction.
func (r *PgxPurchaseRepository) SavePurchase(ctx context.Context, purchase domain.Purchase, items []domain.PurchaseItem, payment *domain.SupplierPayment, entry *domain.Transaction) (int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx)

	modelPurchase := mapping.ToModelPurchase(purchase)
	purchaseQuery := `
		INSERT INTO purchases (
			supplier_id, purchase_date, total_amount, paid_amount, due_amount,
			status, notes, created_at, last_updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING purchase_id;
	`
	var purchaseID int64
	err = tx.QueryRow(ctx, purchaseQuery,
		modelPurchase.SupplierID,
		modelPurchase.PurchaseDate,
		modelPurchase.TotalAmount,
		modelPurchase.PaidAmount,
		modelPurchase.DueAmount,
		modelPurchase.Status,
		modelPurchase.Notes,
		modelPurchase.CreatedAt,
		modelPurchase.LastUpdatedAt,
	).Scan(&purchaseID)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to insert purchase", err)
	}

	itemQuery := `
		INSERT INTO purchase_items (purchase_id, product_id, quantity, unit_price, line_total)
		VALUES ($1, $2, $3, $4, $5);
	`
	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(itemQuery, purchaseID, item.ProductID, item.Quantity, item.UnitPrice, item.LineTotal)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return 0, apperrors.NewAppError(500, fmt.Sprintf("failed to insert items for purchase %d", purchaseID), err)
	}

	// Stock IN per item, each with its audit row.
	reason := fmt.Sprintf("purchase %d", purchaseID)
	for _, item := range items {
		if err := r.stockRepo.ApplyStockDeltaInTx(ctx, tx, item.ProductID, item.Quantity, reason, purchase.PurchaseDate); err != nil {
			return 0, err
		}
	}

	if payment != nil {
		payment.PurchaseID = &purchaseID
		paymentID, err := r.payRepo.InsertPaymentInTx(ctx, tx, *payment)
		if err != nil {
			return 0, err
		}

		// The entry records the money leaving, so it points at the payment
		// row, not the purchase.
		if entry != nil {
			entry.Reference.ID = paymentID
			if _, err := r.txnRepo.InsertTransactionInTx(ctx, tx, *entry); err != nil {
				return 0, err
			}
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}

	return purchaseID, nil
}

// FindPurchaseByID retrieves a purchase by its identifier.
func (r *PgxPurchaseRepository) FindPurchaseByID(ctx context.Context, purchaseID int64) (*domain.Purchase, error) {
	query := `
		SELECT purchase_id, supplier_id, purchase_date, total_amount, paid_amount,
		       due_amount, status, notes, created_at, last_updated_at
		FROM purchases
		WHERE purchase_id = $1;
	`
	var m models.Purchase
	err := r.Pool.QueryRow(ctx, query, purchaseID).Scan(
		&m.PurchaseID,
		&m.SupplierID,
		&m.PurchaseDate,
		&m.TotalAmount,
		&m.PaidAmount,
		&m.DueAmount,
		&m.Status,
		&m.Notes,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to find purchase %d", purchaseID), err)
	}
	d := mapping.ToDomainPurchase(m)
	return &d, nil
}

// FindPurchaseItems retrieves the item lines of a purchase.
func (r *PgxPurchaseRepository) FindPurchaseItems(ctx context.Context, purchaseID int64) ([]domain.PurchaseItem, error) {
	query := `
		SELECT purchase_item_id, purchase_id, product_id, quantity, unit_price, line_total
		FROM purchase_items
		WHERE purchase_id = $1
		ORDER BY purchase_item_id;
	`
	rows, err := r.Pool.Query(ctx, query, purchaseID)
	if err != nil {
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to query items for purchase %d", purchaseID), err)
	}
	defer rows.Close()

	items := []models.PurchaseItem{}
	for rows.Next() {
		var m models.PurchaseItem
		if err := rows.Scan(&m.PurchaseItemID, &m.PurchaseID, &m.ProductID, &m.Quantity, &m.UnitPrice, &m.LineTotal); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan purchase item row", err)
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating purchase item rows", err)
	}

	return mapping.ToDomainPurchaseItemSlice(items), nil
}

// ListPurchases retrieves purchases newest first, optionally for one supplier.
func (r *PgxPurchaseRepository) ListPurchases(ctx context.Context, supplierID *int64, limit, offset int) ([]domain.Purchase, error) {
	query := `
		SELECT purchase_id, supplier_id, purchase_date, total_amount, paid_amount,
		       due_amount, status, notes, created_at, last_updated_at
		FROM purchases
	`
	args := []any{}
	if supplierID != nil {
		query += ` WHERE supplier_id = $1 ORDER BY purchase_date DESC, purchase_id DESC LIMIT $2 OFFSET $3;`
		args = append(args, *supplierID, limit, offset)
	} else {
		query += ` ORDER BY purchase_date DESC, purchase_id DESC LIMIT $1 OFFSET $2;`
		args = append(args, limit, offset)
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query purchases", err)
	}
	defer rows.Close()

	purchases := []models.Purchase{}
	for rows.Next() {
		var m models.Purchase
		if err := rows.Scan(
			&m.PurchaseID,
			&m.SupplierID,
			&m.PurchaseDate,
			&m.TotalAmount,
			&m.PaidAmount,
			&m.DueAmount,
			&m.Status,
			&m.Notes,
			&m.CreatedAt,
			&m.LastUpdatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan purchase row", err)
		}
		purchases = append(purchases, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating purchase rows", err)
	}

	return mapping.ToDomainPurchaseSlice(purchases), nil
}
