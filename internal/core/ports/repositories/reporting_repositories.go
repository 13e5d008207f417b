package repositories

import (
	"context"
	"time"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingRepository defines aggregate read operations. Derived figures are
// recomputed on every query; nothing here is cached on the master entities.
type ReportingRepository interface {
	// GetSupplierTotals returns the supplier's total purchased amount and
	// total paid amount. Both sums execute within one database transaction so
	// they cannot drift against each other.
	GetSupplierTotals(ctx context.Context, supplierID int64) (totalPurchased, totalPaid decimal.Decimal, err error)

	// GetDashboardSummary sums ledger amounts by direction over [from, to),
	// counts sales in the window, and counts products at or below the
	// low-stock threshold.
	GetDashboardSummary(ctx context.Context, from, to time.Time, lowStockThreshold decimal.Decimal) (*domain.DashboardSummary, error)

	// GetCategoryCashFlow sums ledger amounts grouped by category and
	// direction over [from, to).
	GetCategoryCashFlow(ctx context.Context, from, to time.Time) ([]domain.CategoryCashFlow, error)
}
