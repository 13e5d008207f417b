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

type PgxSaleRepository struct {
	BaseRepository
	stockRepo portsrepo.StockWriter
	txnRepo   portsrepo.TransactionWriter
}

// newPgxSaleRepository creates a new repository for sale data. Stock and
// ledger writers are injected so the whole sale workflow commits in one
// database transaction.
func newPgxSaleRepository(pool *pgxpool.Pool, stockRepo portsrepo.StockWriter, txnRepo portsrepo.TransactionWriter) portsrepo.SaleRepositoryFacade {
	return &PgxSaleRepository{
		BaseRepository: BaseRepository{Pool: pool},
		stockRepo:      stockRepo,
		txnRepo:        txnRepo,
	}
}

var _ portsrepo.SaleRepositoryFacade = (*PgxSaleRepository)(nil)

const saleInsertQuery = `
	INSERT INTO sales (
		customer_name, customer_phone, sale_date, total_amount, discount,
		final_amount, payment_mode, notes, created_at, last_updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	RETURNING sale_id;
`

const saleItemInsertQuery = `
	INSERT INTO sale_items (sale_id, product_id, quantity, unit_price, line_total)
	VALUES ($1, $2, $3, $4, $5);
`

// SaveSale saves the sale, its items, the stock OUT deltas, the optional
// trade-in, and the ledger entry within one DB transaction.
func (r *PgxSaleRepository) SaveSale(ctx context.Context, sale domain.Sale, items []domain.SaleItem, tradeIn *domain.OldBatteryTradeIn, entry *domain.Transaction) (int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx)

	saleID, err := r.insertSaleInTx(ctx, tx, sale, items, tradeIn)
	if err != nil {
		return 0, err
	}

	if entry != nil {
		entry.Reference.ID = saleID
		if _, err := r.txnRepo.InsertTransactionInTx(ctx, tx, *entry); err != nil {
			return 0, err
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}

	return saleID, nil
}

// insertSaleInTx writes the sale row, its items, the stock OUT deltas and
// the optional trade-in inside a caller-owned transaction. Shared with the
// order conversion workflow.
func (r *PgxSaleRepository) insertSaleInTx(ctx context.Context, tx pgx.Tx, sale domain.Sale, items []domain.SaleItem, tradeIn *domain.OldBatteryTradeIn) (int64, error) {
	modelSale := mapping.ToModelSale(sale)
	var saleID int64
	err := tx.QueryRow(ctx, saleInsertQuery,
		modelSale.CustomerName,
		modelSale.CustomerPhone,
		modelSale.SaleDate,
		modelSale.TotalAmount,
		modelSale.Discount,
		modelSale.FinalAmount,
		modelSale.PaymentMode,
		modelSale.Notes,
		modelSale.CreatedAt,
		modelSale.LastUpdatedAt,
	).Scan(&saleID)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to insert sale", err)
	}

	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(saleItemInsertQuery, saleID, item.ProductID, item.Quantity, item.UnitPrice, item.LineTotal)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return 0, apperrors.NewAppError(500, fmt.Sprintf("failed to insert items for sale %d", saleID), err)
	}

	reason := fmt.Sprintf("sale %d", saleID)
	for _, item := range items {
		if err := r.stockRepo.ApplyStockDeltaInTx(ctx, tx, item.ProductID, item.Quantity.Neg(), reason, sale.SaleDate); err != nil {
			return 0, err
		}
	}

	if tradeIn != nil {
		tradeInQuery := `
			INSERT INTO old_battery_trade_ins (sale_id, brand, weight, amount, created_at)
			VALUES ($1, $2, $3, $4, $5);
		`
		if _, err := tx.Exec(ctx, tradeInQuery, saleID, tradeIn.Brand, tradeIn.Weight, tradeIn.Amount, tradeIn.CreatedAt); err != nil {
			return 0, apperrors.NewAppError(500, fmt.Sprintf("failed to insert trade-in for sale %d", saleID), err)
		}
	}

	return saleID, nil
}

// FindSaleByID retrieves a sale by its identifier.
func (r *PgxSaleRepository) FindSaleByID(ctx context.Context, saleID int64) (*domain.Sale, error) {
	query := `
		SELECT sale_id, customer_name, customer_phone, sale_date, total_amount,
		       discount, final_amount, payment_mode, notes, created_at, last_updated_at
		FROM sales
		WHERE sale_id = $1;
	`
	var m models.Sale
	err := r.Pool.QueryRow(ctx, query, saleID).Scan(
		&m.SaleID,
		&m.CustomerName,
		&m.CustomerPhone,
		&m.SaleDate,
		&m.TotalAmount,
		&m.Discount,
		&m.FinalAmount,
		&m.PaymentMode,
		&m.Notes,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to find sale %d", saleID), err)
	}
	d := mapping.ToDomainSale(m)
	return &d, nil
}

// FindSaleItems retrieves the item lines of a sale.
func (r *PgxSaleRepository) FindSaleItems(ctx context.Context, saleID int64) ([]domain.SaleItem, error) {
	query := `
		SELECT sale_item_id, sale_id, product_id, quantity, unit_price, line_total
		FROM sale_items
		WHERE sale_id = $1
		ORDER BY sale_item_id;
	`
	rows, err := r.Pool.Query(ctx, query, saleID)
	if err != nil {
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to query items for sale %d", saleID), err)
	}
	defer rows.Close()

	items := []models.SaleItem{}
	for rows.Next() {
		var m models.SaleItem
		if err := rows.Scan(&m.SaleItemID, &m.SaleID, &m.ProductID, &m.Quantity, &m.UnitPrice, &m.LineTotal); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan sale item row", err)
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating sale item rows", err)
	}

	return mapping.ToDomainSaleItemSlice(items), nil
}

// FindTradeInBySaleID retrieves the old-battery trade-in recorded with a sale.
func (r *PgxSaleRepository) FindTradeInBySaleID(ctx context.Context, saleID int64) (*domain.OldBatteryTradeIn, error) {
	query := `
		SELECT trade_in_id, sale_id, brand, weight, amount, created_at
		FROM old_battery_trade_ins
		WHERE sale_id = $1;
	`
	var m models.OldBatteryTradeIn
	err := r.Pool.QueryRow(ctx, query, saleID).Scan(
		&m.TradeInID,
		&m.SaleID,
		&m.Brand,
		&m.Weight,
		&m.Amount,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to find trade-in for sale %d", saleID), err)
	}
	d := mapping.ToDomainTradeIn(m)
	return &d, nil
}

// ListSales retrieves sales newest first within an optional [from, to) window.
func (r *PgxSaleRepository) ListSales(ctx context.Context, from, to *time.Time, limit, offset int) ([]domain.Sale, error) {
	query := `
		SELECT sale_id, customer_name, customer_phone, sale_date, total_amount,
		       discount, final_amount, payment_mode, notes, created_at, last_updated_at
		FROM sales
		WHERE 1=1
	`
	args := []any{}
	argN := 1
	if from != nil {
		query += fmt.Sprintf(" AND sale_date >= $%d", argN)
		args = append(args, *from)
		argN++
	}
	if to != nil {
		query += fmt.Sprintf(" AND sale_date < $%d", argN)
		args = append(args, *to)
		argN++
	}
	query += fmt.Sprintf(" ORDER BY sale_date DESC, sale_id DESC LIMIT $%d OFFSET $%d;", argN, argN+1)
	args = append(args, limit, offset)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query sales", err)
	}
	defer rows.Close()

	sales := []models.Sale{}
	for rows.Next() {
		var m models.Sale
		if err := rows.Scan(
			&m.SaleID,
			&m.CustomerName,
			&m.CustomerPhone,
			&m.SaleDate,
			&m.TotalAmount,
			&m.Discount,
			&m.FinalAmount,
			&m.PaymentMode,
			&m.Notes,
			&m.CreatedAt,
			&m.LastUpdatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan sale row", err)
		}
		sales = append(sales, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating sale rows", err)
	}

	return mapping.ToDomainSaleSlice(sales), nil
}
