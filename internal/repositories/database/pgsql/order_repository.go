package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shopledger/shop_ledger_app/internal/apperrors"
	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	portsrepo "github.com/shopledger/shop_ledger_app/internal/core/ports/repositories"
	"github.com/shopledger/shop_ledger_app/internal/models"
	"github.com/shopledger/shop_ledger_app/internal/utils/mapping"
)

type PgxOrderRepository struct {
	BaseRepository
	saleRepo *PgxSaleRepository
	txnRepo  portsrepo.TransactionWriter
}

// newPgxOrderRepository creates a new repository for order data. The sale
// repository is injected so conversion reuses the same sale write path
// inside one database transaction.
func newPgxOrderRepository(pool *pgxpool.Pool, saleRepo *PgxSaleRepository, txnRepo portsrepo.TransactionWriter) portsrepo.OrderRepositoryFacade {
	return &PgxOrderRepository{
		BaseRepository: BaseRepository{Pool: pool},
		saleRepo:       saleRepo,
		txnRepo:        txnRepo,
	}
}

var _ portsrepo.OrderRepositoryFacade = (*PgxOrderRepository)(nil)

// SaveOrder saves the order, its items and the optional advance ledger entry
// within one DB transaction. No stock moves at order creation.
func (r *PgxOrderRepository) SaveOrder(ctx context.Context, order domain.Order, items []domain.OrderItem, entry *domain.Transaction) (int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx)

	modelOrder := mapping.ToModelOrder(order)
	orderQuery := `
		INSERT INTO orders (
			customer_name, customer_phone, order_date, total_amount, advance_amount,
			status, notes, created_at, last_updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING order_id;
	`
	var orderID int64
	err = tx.QueryRow(ctx, orderQuery,
		modelOrder.CustomerName,
		modelOrder.CustomerPhone,
		modelOrder.OrderDate,
		modelOrder.TotalAmount,
		modelOrder.AdvanceAmount,
		modelOrder.Status,
		modelOrder.Notes,
		modelOrder.CreatedAt,
		modelOrder.LastUpdatedAt,
	).Scan(&orderID)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to insert order", err)
	}

	itemQuery := `
		INSERT INTO order_items (order_id, product_id, quantity, unit_price, line_total)
		VALUES ($1, $2, $3, $4, $5);
	`
	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(itemQuery, orderID, item.ProductID, item.Quantity, item.UnitPrice, item.LineTotal)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return 0, apperrors.NewAppError(500, fmt.Sprintf("failed to insert items for order %d", orderID), err)
	}

	if entry != nil {
		entry.Reference.ID = orderID
		if _, err := r.txnRepo.InsertTransactionInTx(ctx, tx, *entry); err != nil {
			return 0, err
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}

	return orderID, nil
}

// ConvertToSale writes the derived sale, its items, the deferred stock OUT
// deltas, the optional balance ledger entry and the order's COMPLETED flip
// in one DB transaction. Returns the new sale's identifier.
func (r *PgxOrderRepository) ConvertToSale(ctx context.Context, orderID int64, sale domain.Sale, items []domain.SaleItem, entry *domain.Transaction, completedAt time.Time) (int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx)

	saleID, err := r.saleRepo.insertSaleInTx(ctx, tx, sale, items, nil)
	if err != nil {
		return 0, err
	}

	if entry != nil {
		if entry.Reference.ID == 0 {
			entry.Reference.ID = saleID
		}
		if _, err := r.txnRepo.InsertTransactionInTx(ctx, tx, *entry); err != nil {
			return 0, err
		}
	}

	// The PENDING guard makes concurrent conversions of the same order fail
	// instead of producing two sales.
	flipQuery := `UPDATE orders SET status = $2, last_updated_at = $3 WHERE order_id = $1 AND status = $4;`
	tag, err := tx.Exec(ctx, flipQuery, orderID, string(domain.OrderCompleted), completedAt, string(domain.OrderPending))
	if err != nil {
		return 0, apperrors.NewAppError(500, fmt.Sprintf("failed to complete order %d", orderID), err)
	}
	if tag.RowsAffected() == 0 {
		return 0, apperrors.NewValidationError(fmt.Sprintf("order %d is not pending", orderID))
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}

	return saleID, nil
}

// UpdateOrderStatus flips an order's status outside a conversion.
func (r *PgxOrderRepository) UpdateOrderStatus(ctx context.Context, orderID int64, status domain.OrderStatus, updatedAt time.Time) error {
	query := `UPDATE orders SET status = $2, last_updated_at = $3 WHERE order_id = $1;`
	tag, err := r.Pool.Exec(ctx, query, orderID, string(status), updatedAt)
	if err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to update status for order %d", orderID), err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindOrderByID retrieves an order by its identifier.
func (r *PgxOrderRepository) FindOrderByID(ctx context.Context, orderID int64) (*domain.Order, error) {
	query := `
		SELECT order_id, customer_name, customer_phone, order_date, total_amount,
		       advance_amount, status, notes, created_at, last_updated_at
		FROM orders
		WHERE order_id = $1;
	`
	var m models.Order
	err := r.Pool.QueryRow(ctx, query, orderID).Scan(
		&m.OrderID,
		&m.CustomerName,
		&m.CustomerPhone,
		&m.OrderDate,
		&m.TotalAmount,
		&m.AdvanceAmount,
		&m.Status,
		&m.Notes,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to find order %d", orderID), err)
	}
	d := mapping.ToDomainOrder(m)
	return &d, nil
}

// FindOrderItems retrieves the reserved lines of an order.
func (r *PgxOrderRepository) FindOrderItems(ctx context.Context, orderID int64) ([]domain.OrderItem, error) {
	query := `
		SELECT order_item_id, order_id, product_id, quantity, unit_price, line_total
		FROM order_items
		WHERE order_id = $1
		ORDER BY order_item_id;
	`
	rows, err := r.Pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to query items for order %d", orderID), err)
	}
	defer rows.Close()

	items := []models.OrderItem{}
	for rows.Next() {
		var m models.OrderItem
		if err := rows.Scan(&m.OrderItemID, &m.OrderID, &m.ProductID, &m.Quantity, &m.UnitPrice, &m.LineTotal); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan order item row", err)
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating order item rows", err)
	}

	return mapping.ToDomainOrderItemSlice(items), nil
}

// ListOrders retrieves orders newest first, optionally filtered by status.
func (r *PgxOrderRepository) ListOrders(ctx context.Context, status *domain.OrderStatus, limit, offset int) ([]domain.Order, error) {
	query := `
		SELECT order_id, customer_name, customer_phone, order_date, total_amount,
		       advance_amount, status, notes, created_at, last_updated_at
		FROM orders
	`
	args := []any{}
	if status != nil {
		query += ` WHERE status = $1 ORDER BY order_date DESC, order_id DESC LIMIT $2 OFFSET $3;`
		args = append(args, string(*status), limit, offset)
	} else {
		query += ` ORDER BY order_date DESC, order_id DESC LIMIT $1 OFFSET $2;`
		args = append(args, limit, offset)
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query orders", err)
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var m models.Order
		if err := rows.Scan(
			&m.OrderID,
			&m.CustomerName,
			&m.CustomerPhone,
			&m.OrderDate,
			&m.TotalAmount,
			&m.AdvanceAmount,
			&m.Status,
			&m.Notes,
			&m.CreatedAt,
			&m.LastUpdatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan order row", err)
		}
		orders = append(orders, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating order rows", err)
	}

	return mapping.ToDomainOrderSlice(orders), nil
}
