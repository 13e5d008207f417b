package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	portsrepo "github.com/shopledger/shop_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/shopledger/shop_ledger_app/internal/core/ports/services"
	"github.com/shopledger/shop_ledger_app/internal/core/services"
	"github.com/shopledger/shop_ledger_app/internal/platform/clock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) GetSupplierTotals(ctx context.Context, supplierID int64) (decimal.Decimal, decimal.Decimal, error) {
	args := m.Called(ctx, supplierID)
	return args.Get(0).(decimal.Decimal), args.Get(1).(decimal.Decimal), args.Error(2)
}

func (m *MockReportingRepository) GetDashboardSummary(ctx context.Context, from, to time.Time, lowStockThreshold decimal.Decimal) (*domain.DashboardSummary, error) {
	args := m.Called(ctx, from, to, lowStockThreshold)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardSummary), args.Error(1)
}

func (m *MockReportingRepository) GetCategoryCashFlow(ctx context.Context, from, to time.Time) ([]domain.CategoryCashFlow, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryCashFlow), args.Error(1)
}

// --- Test Suite ---
type ReportingServiceTestSuite struct {
	suite.Suite
	mockRepo *MockReportingRepository
	from     time.Time
	to       time.Time
	service  portssvc.ReportingSvcFacade
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockReportingRepository)
	suite.from = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	suite.to = time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	suite.service = services.NewReportingService(suite.mockRepo, decimal.RequireFromString("5"), clock.Fixed{Instant: now})
}

func (suite *ReportingServiceTestSuite) TestGetDashboardSummary_PassesThreshold() {
	ctx := context.Background()
	expected := &domain.DashboardSummary{
		From:          suite.from,
		To:            suite.to,
		CashIn:        decimal.RequireFromString("900"),
		CashOut:       decimal.RequireFromString("400"),
		SalesCount:    7,
		LowStockCount: 2,
	}

	suite.mockRepo.On("GetDashboardSummary", ctx, suite.from, suite.to, decimal.RequireFromString("5")).Return(expected, nil).Once()

	summary, err := suite.service.GetDashboardSummary(ctx, suite.from, suite.to)

	suite.Require().NoError(err)
	suite.Equal(expected, summary)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestGetProfitAndLoss_FoldsCategories() {
	ctx := context.Background()
	flows := []domain.CategoryCashFlow{
		{Category: domain.CategorySale, CashIn: decimal.RequireFromString("1000"), CashOut: decimal.Zero},
		{Category: domain.CategoryAdvance, CashIn: decimal.RequireFromString("200"), CashOut: decimal.Zero},
		{Category: domain.CategoryPurchase, CashIn: decimal.Zero, CashOut: decimal.RequireFromString("600")},
		{Category: domain.CategorySalary, CashIn: decimal.Zero, CashOut: decimal.RequireFromString("150")},
		{Category: domain.CategoryExpense, CashIn: decimal.Zero, CashOut: decimal.RequireFromString("50")},
		{Category: domain.CategoryAdjustment, CashIn: decimal.RequireFromString("30"), CashOut: decimal.RequireFromString("10")},
		{Category: domain.CategoryPersonal, CashIn: decimal.RequireFromString("5000"), CashOut: decimal.RequireFromString("4000")},
	}

	suite.mockRepo.On("GetCategoryCashFlow", ctx, suite.from, suite.to).Return(flows, nil).Once()

	report, err := suite.service.GetProfitAndLoss(ctx, suite.from, suite.to)

	suite.Require().NoError(err)
	suite.True(report.SalesIncome.Equal(decimal.RequireFromString("1200")))
	suite.True(report.PurchaseCost.Equal(decimal.RequireFromString("600")))
	suite.True(report.SalaryCost.Equal(decimal.RequireFromString("150")))
	suite.True(report.ExpenseCost.Equal(decimal.RequireFromString("50")))
	suite.True(report.AdjustmentNet.Equal(decimal.RequireFromString("20")))
	// 1200 - 600 - 150 - 50 + 20; the personal rows never enter.
	suite.True(report.NetProfit.Equal(decimal.RequireFromString("420")))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestGetProfitAndLoss_EmptyWindow() {
	ctx := context.Background()

	suite.mockRepo.On("GetCategoryCashFlow", ctx, suite.from, suite.to).Return([]domain.CategoryCashFlow{}, nil).Once()

	report, err := suite.service.GetProfitAndLoss(ctx, suite.from, suite.to)

	suite.Require().NoError(err)
	suite.True(report.NetProfit.IsZero())
	suite.True(report.SalesIncome.IsZero())
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
