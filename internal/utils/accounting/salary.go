package accounting

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
)

// AccrueSalary computes the salary owed to a worker for the given window.
// DAILY workers accrue presentDays times their per-day rate, MONTHLY workers
// accrue their flat monthly amount regardless of attendance, and PER_JOB
// workers accrue nothing here since their pay is recorded per engagement.
func AccrueSalary(worker domain.Worker, presentDays int, from, to time.Time) (domain.SalaryEstimate, error) {
	estimate := domain.SalaryEstimate{
		WorkerID:    worker.WorkerID,
		SalaryType:  worker.SalaryType,
		From:        from,
		To:          to,
		PresentDays: presentDays,
	}

	switch worker.SalaryType {
	case domain.SalaryDaily:
		estimate.Amount = worker.DefaultRate.Mul(decimal.NewFromInt(int64(presentDays)))
	case domain.SalaryMonthly:
		estimate.Amount = worker.SalaryAmount
	case domain.SalaryPerJob:
		estimate.Amount = decimal.Zero
	default:
		return domain.SalaryEstimate{}, fmt.Errorf("unknown salary type '%s' for worker %d", worker.SalaryType, worker.WorkerID)
	}

	return estimate, nil
}
