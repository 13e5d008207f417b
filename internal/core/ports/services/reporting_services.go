package services

import (
	"context"
	"time"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
)

// ReportingSvcFacade exposes the recomputed aggregate views. Nothing here is
// read from cached balances.
type ReportingSvcFacade interface {
	// GetDashboardSummary aggregates cash in/out, sales count and low-stock
	// count over [from, to).
	GetDashboardSummary(ctx context.Context, from, to time.Time) (*domain.DashboardSummary, error)

	// GetCategoryCashFlow breaks cash flow down by ledger category.
	GetCategoryCashFlow(ctx context.Context, from, to time.Time) ([]domain.CategoryCashFlow, error)

	// GetProfitAndLoss derives P&L figures from the ledger over [from, to).
	GetProfitAndLoss(ctx context.Context, from, to time.Time) (*domain.ProfitAndLossReport, error)
}
