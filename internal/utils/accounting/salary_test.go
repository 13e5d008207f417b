package accounting

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
)

func TestAccrueSalary_Daily(t *testing.T) {
	worker := domain.Worker{
		WorkerID:    1,
		SalaryType:  domain.SalaryDaily,
		DefaultRate: decimal.NewFromInt(500),
	}
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	estimate, err := AccrueSalary(worker, 22, from, to)
	require.NoError(t, err)
	assert.Equal(t, 22, estimate.PresentDays)
	assert.True(t, decimal.NewFromInt(11000).Equal(estimate.Amount), "22 days at 500 should be 11000, got %s", estimate.Amount)
}

func TestAccrueSalary_DailyZeroDays(t *testing.T) {
	worker := domain.Worker{
		WorkerID:    2,
		SalaryType:  domain.SalaryDaily,
		DefaultRate: decimal.NewFromInt(450),
	}

	estimate, err := AccrueSalary(worker, 0, time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.True(t, estimate.Amount.IsZero(), "no present days should accrue zero")
}

func TestAccrueSalary_Monthly(t *testing.T) {
	worker := domain.Worker{
		WorkerID:     3,
		SalaryType:   domain.SalaryMonthly,
		SalaryAmount: decimal.NewFromInt(15000),
		DefaultRate:  decimal.NewFromInt(500),
	}

	// Attendance must not change a monthly worker's accrual.
	estimate, err := AccrueSalary(worker, 3, time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(15000).Equal(estimate.Amount))
}

func TestAccrueSalary_PerJob(t *testing.T) {
	worker := domain.Worker{
		WorkerID:   4,
		SalaryType: domain.SalaryPerJob,
	}

	estimate, err := AccrueSalary(worker, 10, time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.True(t, estimate.Amount.IsZero(), "per-job workers accrue nothing from attendance")
}

func TestAccrueSalary_UnknownType(t *testing.T) {
	worker := domain.Worker{
		WorkerID:   5,
		SalaryType: domain.SalaryType("WEEKLY"),
	}

	_, err := AccrueSalary(worker, 5, time.Time{}, time.Time{})
	assert.Error(t, err)
}
