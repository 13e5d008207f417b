package pgsql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/shopledger/shop_ledger_app/internal/apperrors"
	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	portsrepo "github.com/shopledger/shop_ledger_app/internal/core/ports/repositories"
)

type ReportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a repository for aggregate reads. Derived
// figures are always recomputed from the underlying rows.
func newReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &ReportingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ReportingRepository = (*ReportingRepository)(nil)

// GetSupplierTotals returns the supplier's total purchased and total paid
// amounts. Both sums run inside one database transaction so they cannot
// drift against each other.
func (r *ReportingRepository) GetSupplierTotals(ctx context.Context, supplierID int64) (decimal.Decimal, decimal.Decimal, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	defer r.Rollback(ctx, tx)

	var totalPurchased decimal.Decimal
	purchasedQuery := `SELECT COALESCE(SUM(total_amount), 0) FROM purchases WHERE supplier_id = $1;`
	if err := tx.QueryRow(ctx, purchasedQuery, supplierID).Scan(&totalPurchased); err != nil {
		return decimal.Zero, decimal.Zero, apperrors.NewAppError(500, "failed to sum supplier purchases", err)
	}

	var totalPaid decimal.Decimal
	paidQuery := `SELECT COALESCE(SUM(amount), 0) FROM supplier_payments WHERE supplier_id = $1;`
	if err := tx.QueryRow(ctx, paidQuery, supplierID).Scan(&totalPaid); err != nil {
		return decimal.Zero, decimal.Zero, apperrors.NewAppError(500, "failed to sum supplier payments", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	return totalPurchased, totalPaid, nil
}

// GetDashboardSummary sums ledger amounts by direction over [from, to),
// counts sales in the window, and counts stock rows at or below the
// low-stock threshold.
func (r *ReportingRepository) GetDashboardSummary(ctx context.Context, from, to time.Time, lowStockThreshold decimal.Decimal) (*domain.DashboardSummary, error) {
	summary := &domain.DashboardSummary{
		From:    from,
		To:      to,
		CashIn:  decimal.Zero,
		CashOut: decimal.Zero,
	}

	cashQuery := `
		SELECT direction, COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE txn_date >= $1 AND txn_date < $2
		GROUP BY direction;
	`
	rows, err := r.Pool.Query(ctx, cashQuery, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to sum ledger by direction", err)
	}
	for rows.Next() {
		var direction string
		var total decimal.Decimal
		if err := rows.Scan(&direction, &total); err != nil {
			rows.Close()
			return nil, apperrors.NewAppError(500, "failed to scan direction sum row", err)
		}
		switch domain.Direction(direction) {
		case domain.DirectionIn:
			summary.CashIn = total
		case domain.DirectionOut:
			summary.CashOut = total
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating direction sum rows", err)
	}

	salesQuery := `SELECT COUNT(*) FROM sales WHERE sale_date >= $1 AND sale_date < $2;`
	if err := r.Pool.QueryRow(ctx, salesQuery, from, to).Scan(&summary.SalesCount); err != nil {
		return nil, apperrors.NewAppError(500, "failed to count sales", err)
	}

	lowStockQuery := `SELECT COUNT(*) FROM stocks WHERE quantity_on_hand <= $1;`
	if err := r.Pool.QueryRow(ctx, lowStockQuery, lowStockThreshold).Scan(&summary.LowStockCount); err != nil {
		return nil, apperrors.NewAppError(500, "failed to count low stock rows", err)
	}

	return summary, nil
}

// GetCategoryCashFlow sums ledger amounts grouped by category and direction
// over [from, to).
func (r *ReportingRepository) GetCategoryCashFlow(ctx context.Context, from, to time.Time) ([]domain.CategoryCashFlow, error) {
	query := `
		SELECT category, direction, COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE txn_date >= $1 AND txn_date < $2
		GROUP BY category, direction
		ORDER BY category, direction;
	`
	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to sum ledger by category", err)
	}
	defer rows.Close()

	byCategory := map[domain.TxnCategory]*domain.CategoryCashFlow{}
	order := []domain.TxnCategory{}
	for rows.Next() {
		var category, direction string
		var total decimal.Decimal
		if err := rows.Scan(&category, &direction, &total); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan category sum row", err)
		}

		cat := domain.TxnCategory(category)
		row, ok := byCategory[cat]
		if !ok {
			row = &domain.CategoryCashFlow{Category: cat, CashIn: decimal.Zero, CashOut: decimal.Zero}
			byCategory[cat] = row
			order = append(order, cat)
		}
		switch domain.Direction(direction) {
		case domain.DirectionIn:
			row.CashIn = total
		case domain.DirectionOut:
			row.CashOut = total
		}
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating category sum rows", err)
	}

	flows := make([]domain.CategoryCashFlow, 0, len(order))
	for _, cat := range order {
		flows = append(flows, *byCategory[cat])
	}
	return flows, nil
}
