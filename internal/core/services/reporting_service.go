package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	portsrepo "github.com/shopledger/shop_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/shopledger/shop_ledger_app/internal/core/ports/services"
	"github.com/shopledger/shop_ledger_app/internal/platform/clock"
)

type reportingService struct {
	BaseService
	reportingRepo     portsrepo.ReportingRepository
	lowStockThreshold decimal.Decimal
	clk               clock.Clock
}

// NewReportingService creates the aggregate-view service. All figures are
// recomputed from the ledger and stock tables on every call.
func NewReportingService(reportingRepo portsrepo.ReportingRepository, lowStockThreshold decimal.Decimal, clk clock.Clock) portssvc.ReportingSvcFacade {
	return &reportingService{
		reportingRepo:     reportingRepo,
		lowStockThreshold: lowStockThreshold,
		clk:               clk,
	}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) GetDashboardSummary(ctx context.Context, from, to time.Time) (*domain.DashboardSummary, error) {
	return s.reportingRepo.GetDashboardSummary(ctx, from, to, s.lowStockThreshold)
}

func (s *reportingService) GetCategoryCashFlow(ctx context.Context, from, to time.Time) ([]domain.CategoryCashFlow, error) {
	return s.reportingRepo.GetCategoryCashFlow(ctx, from, to)
}

// GetProfitAndLoss folds the per-category cash flow into a P&L view. Sales
// income counts both SALE receipts and order ADVANCE receipts; PERSONAL rows
// are excluded entirely.
func (s *reportingService) GetProfitAndLoss(ctx context.Context, from, to time.Time) (*domain.ProfitAndLossReport, error) {
	flows, err := s.reportingRepo.GetCategoryCashFlow(ctx, from, to)
	if err != nil {
		return nil, err
	}

	report := domain.ProfitAndLossReport{
		From:          from,
		To:            to,
		SalesIncome:   decimal.Zero,
		PurchaseCost:  decimal.Zero,
		SalaryCost:    decimal.Zero,
		ExpenseCost:   decimal.Zero,
		AdjustmentNet: decimal.Zero,
	}

	for _, flow := range flows {
		switch flow.Category {
		case domain.CategorySale, domain.CategoryAdvance:
			report.SalesIncome = report.SalesIncome.Add(flow.CashIn)
		case domain.CategoryPurchase:
			report.PurchaseCost = report.PurchaseCost.Add(flow.CashOut)
		case domain.CategorySalary:
			report.SalaryCost = report.SalaryCost.Add(flow.CashOut)
		case domain.CategoryExpense:
			report.ExpenseCost = report.ExpenseCost.Add(flow.CashOut)
		case domain.CategoryAdjustment:
			report.AdjustmentNet = report.AdjustmentNet.Add(flow.CashIn).Sub(flow.CashOut)
		case domain.CategoryPersonal:
			// Owner's private movements never enter the business P&L.
		}
	}

	report.NetProfit = report.SalesIncome.
		Sub(report.PurchaseCost).
		Sub(report.SalaryCost).
		Sub(report.ExpenseCost).
		Add(report.AdjustmentNet)

	return &report, nil
}
