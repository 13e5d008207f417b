package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardSummary aggregates ledger and inventory figures over a
// [From, To) window.
type DashboardSummary struct {
	From          time.Time       `json:"from"`
	To            time.Time       `json:"to"`
	CashIn        decimal.Decimal `json:"cashIn"`
	CashOut       decimal.Decimal `json:"cashOut"`
	SalesCount    int64           `json:"salesCount"`
	LowStockCount int64           `json:"lowStockCount"`
}

// CategoryCashFlow is one row of the cash-flow-by-category breakdown.
type CategoryCashFlow struct {
	Category TxnCategory     `json:"category"`
	CashIn   decimal.Decimal `json:"cashIn"`
	CashOut  decimal.Decimal `json:"cashOut"`
}

// ProfitAndLossReport summarizes revenue against costs over a window.
// Figures come from ledger entries, not from sale/purchase snapshots.
type ProfitAndLossReport struct {
	From          time.Time       `json:"from"`
	To            time.Time       `json:"to"`
	SalesIncome   decimal.Decimal `json:"salesIncome"`
	PurchaseCost  decimal.Decimal `json:"purchaseCost"`
	SalaryCost    decimal.Decimal `json:"salaryCost"`
	ExpenseCost   decimal.Decimal `json:"expenseCost"`
	AdjustmentNet decimal.Decimal `json:"adjustmentNet"` // IN minus OUT
	NetProfit     decimal.Decimal `json:"netProfit"`
}

// WorkerLedger is the outcome of accruing salary against disbursements for
// one worker over a period.
type WorkerLedger struct {
	WorkerID      int64           `json:"workerID"`
	From          time.Time       `json:"from"`
	To            time.Time       `json:"to"`
	PresentDays   int             `json:"presentDays"`
	AccruedSalary decimal.Decimal `json:"accruedSalary"`
	TotalPaid     decimal.Decimal `json:"totalPaid"`
	Balance       decimal.Decimal `json:"balance"` // accrued minus paid
}
