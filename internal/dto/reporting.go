package dto

import (
	"time"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportWindowParams is the [from, to) window shared by report queries.
type ReportWindowParams struct {
	From *time.Time `form:"from" time_format:"2006-01-02"`
	To   *time.Time `form:"to" time_format:"2006-01-02"`
}

// DashboardSummaryResponse defines the daily/period dashboard figures.
type DashboardSummaryResponse struct {
	From          time.Time       `json:"from"`
	To            time.Time       `json:"to"`
	CashIn        decimal.Decimal `json:"cashIn"`
	CashOut       decimal.Decimal `json:"cashOut"`
	SalesCount    int64           `json:"salesCount"`
	LowStockCount int64           `json:"lowStockCount"`
}

// CategoryCashFlowResponse is one row of the category breakdown.
type CategoryCashFlowResponse struct {
	Category string          `json:"category"`
	CashIn   decimal.Decimal `json:"cashIn"`
	CashOut  decimal.Decimal `json:"cashOut"`
}

// ProfitAndLossResponse defines the P&L report figures.
type ProfitAndLossResponse struct {
	From          time.Time       `json:"from"`
	To            time.Time       `json:"to"`
	SalesIncome   decimal.Decimal `json:"salesIncome"`
	PurchaseCost  decimal.Decimal `json:"purchaseCost"`
	SalaryCost    decimal.Decimal `json:"salaryCost"`
	ExpenseCost   decimal.Decimal `json:"expenseCost"`
	AdjustmentNet decimal.Decimal `json:"adjustmentNet"`
	NetProfit     decimal.Decimal `json:"netProfit"`
}

// ToDashboardSummaryResponse converts a domain.DashboardSummary.
func ToDashboardSummaryResponse(s *domain.DashboardSummary) DashboardSummaryResponse {
	return DashboardSummaryResponse{
		From:          s.From,
		To:            s.To,
		CashIn:        s.CashIn,
		CashOut:       s.CashOut,
		SalesCount:    s.SalesCount,
		LowStockCount: s.LowStockCount,
	}
}

// ToCategoryCashFlowResponses converts the category breakdown rows.
func ToCategoryCashFlowResponses(rows []domain.CategoryCashFlow) []CategoryCashFlowResponse {
	responses := make([]CategoryCashFlowResponse, len(rows))
	for i, r := range rows {
		responses[i] = CategoryCashFlowResponse{
			Category: string(r.Category),
			CashIn:   r.CashIn,
			CashOut:  r.CashOut,
		}
	}
	return responses
}

// ToProfitAndLossResponse converts a domain.ProfitAndLossReport.
func ToProfitAndLossResponse(r *domain.ProfitAndLossReport) ProfitAndLossResponse {
	return ProfitAndLossResponse{
		From:          r.From,
		To:            r.To,
		SalesIncome:   r.SalesIncome,
		PurchaseCost:  r.PurchaseCost,
		SalaryCost:    r.SalaryCost,
		ExpenseCost:   r.ExpenseCost,
		AdjustmentNet: r.AdjustmentNet,
		NetProfit:     r.NetProfit,
	}
}
