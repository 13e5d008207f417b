package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopledger/shop_ledger_app/internal/apperrors"
	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	portsrepo "github.com/shopledger/shop_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/shopledger/shop_ledger_app/internal/core/ports/services"
	"github.com/shopledger/shop_ledger_app/internal/core/services"
	"github.com/shopledger/shop_ledger_app/internal/dto"
	"github.com/shopledger/shop_ledger_app/internal/platform/clock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock StockRepository ---
type MockStockRepository struct {
	mock.Mock
}

var _ portsrepo.StockRepositoryFacade = (*MockStockRepository)(nil)

func (m *MockStockRepository) FindStockByProductID(ctx context.Context, productID int64) (*domain.Stock, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Stock), args.Error(1)
}

func (m *MockStockRepository) ListStocks(ctx context.Context) ([]domain.Stock, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Stock), args.Error(1)
}

func (m *MockStockRepository) ListLowStocks(ctx context.Context, threshold decimal.Decimal) ([]domain.Stock, error) {
	args := m.Called(ctx, threshold)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Stock), args.Error(1)
}

func (m *MockStockRepository) ListAdjustmentsByProduct(ctx context.Context, productID int64, limit, offset int) ([]domain.StockAdjustment, error) {
	args := m.Called(ctx, productID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StockAdjustment), args.Error(1)
}

func (m *MockStockRepository) ApplyStockDelta(ctx context.Context, productID int64, signedQty decimal.Decimal, reason string, occurredAt time.Time) error {
	args := m.Called(ctx, productID, signedQty, reason, occurredAt)
	return args.Error(0)
}

func (m *MockStockRepository) ApplyStockDeltaInTx(ctx context.Context, tx pgx.Tx, productID int64, signedQty decimal.Decimal, reason string, occurredAt time.Time) error {
	args := m.Called(ctx, tx, productID, signedQty, reason, occurredAt)
	return args.Error(0)
}

func (m *MockStockRepository) ApplyAdjustmentWithEntry(ctx context.Context, productID int64, signedQty decimal.Decimal, reason string, occurredAt time.Time, entry *domain.Transaction) (int64, error) {
	args := m.Called(ctx, productID, signedQty, reason, occurredAt, entry)
	return args.Get(0).(int64), args.Error(1)
}

// --- Test Suite ---
type StockServiceTestSuite struct {
	suite.Suite
	mockStockRepo   *MockStockRepository
	mockProductRepo *MockProductRepository
	now             time.Time
	service         portssvc.StockSvcFacade
}

func (suite *StockServiceTestSuite) SetupTest() {
	suite.mockStockRepo = new(MockStockRepository)
	suite.mockProductRepo = new(MockProductRepository)
	suite.now = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	threshold := decimal.RequireFromString("5")
	suite.service = services.NewStockService(suite.mockStockRepo, suite.mockProductRepo, threshold, clock.Fixed{Instant: suite.now})
}

func (suite *StockServiceTestSuite) TestAdjustStock_OutNegatesQuantity() {
	ctx := context.Background()
	req := dto.AdjustStockRequest{
		ProductID: 10,
		Direction: "OUT",
		Quantity:  decimal.RequireFromString("2"),
		Reason:    "damaged in storage",
	}

	suite.mockProductRepo.On("FindProductByID", ctx, int64(10)).Return(&domain.Product{ProductID: 10}, nil).Once()
	suite.mockStockRepo.On("ApplyAdjustmentWithEntry", ctx, int64(10), decimal.RequireFromString("-2"), "damaged in storage", suite.now, (*domain.Transaction)(nil)).Return(int64(61), nil).Once()

	adjustment, err := suite.service.AdjustStock(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(int64(61), adjustment.AdjustmentID)
	suite.Equal(domain.DirectionOut, adjustment.Direction)
	suite.True(adjustment.Quantity.Equal(decimal.RequireFromString("2")))
	suite.mockStockRepo.AssertExpectations(suite.T())
}

func (suite *StockServiceTestSuite) TestAdjustStock_FinancialImpactCarriesEntry() {
	ctx := context.Background()
	amount := decimal.RequireFromString("300")
	req := dto.AdjustStockRequest{
		ProductID:          10,
		Direction:          "IN",
		Quantity:           decimal.RequireFromString("1"),
		Reason:             "found during audit",
		HasFinancialImpact: true,
		Amount:             &amount,
	}

	suite.mockProductRepo.On("FindProductByID", ctx, int64(10)).Return(&domain.Product{ProductID: 10}, nil).Once()
	suite.mockStockRepo.On("ApplyAdjustmentWithEntry", ctx, int64(10), decimal.RequireFromString("1"), "found during audit", suite.now,
		mock.MatchedBy(func(entry *domain.Transaction) bool {
			return entry != nil &&
				entry.Direction == domain.DirectionIn &&
				entry.Category == domain.CategoryAdjustment &&
				entry.Amount.Equal(amount) &&
				entry.PaymentMode == domain.ModeCash &&
				entry.Reference.Type == domain.RefStockAdjustment
		}),
	).Return(int64(62), nil).Once()

	adjustment, err := suite.service.AdjustStock(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(int64(62), adjustment.AdjustmentID)
	suite.mockStockRepo.AssertExpectations(suite.T())
}

func (suite *StockServiceTestSuite) TestAdjustStock_FinancialImpactWithoutAmountSkipsEntry() {
	ctx := context.Background()
	req := dto.AdjustStockRequest{
		ProductID:          10,
		Direction:          "OUT",
		Quantity:           decimal.RequireFromString("1"),
		Reason:             "shrinkage",
		HasFinancialImpact: true,
	}

	suite.mockProductRepo.On("FindProductByID", ctx, int64(10)).Return(&domain.Product{ProductID: 10}, nil).Once()
	suite.mockStockRepo.On("ApplyAdjustmentWithEntry", ctx, int64(10), decimal.RequireFromString("-1"), "shrinkage", suite.now, (*domain.Transaction)(nil)).Return(int64(63), nil).Once()

	_, err := suite.service.AdjustStock(ctx, req)

	suite.Require().NoError(err)
	suite.mockStockRepo.AssertExpectations(suite.T())
}

func (suite *StockServiceTestSuite) TestAdjustStock_FailedWriteReturnsErrorWithoutFallback() {
	ctx := context.Background()
	amount := decimal.RequireFromString("300")
	req := dto.AdjustStockRequest{
		ProductID:          10,
		Direction:          "OUT",
		Quantity:           decimal.RequireFromString("2"),
		Reason:             "shrinkage",
		HasFinancialImpact: true,
		Amount:             &amount,
	}

	suite.mockProductRepo.On("FindProductByID", ctx, int64(10)).Return(&domain.Product{ProductID: 10}, nil).Once()
	suite.mockStockRepo.On("ApplyAdjustmentWithEntry", ctx, int64(10), decimal.RequireFromString("-2"), "shrinkage", suite.now, mock.Anything).
		Return(int64(0), apperrors.NewAppError(500, "commit failed", nil)).Once()

	adjustment, err := suite.service.AdjustStock(ctx, req)

	suite.Require().Error(err)
	suite.Nil(adjustment)
	// The delta and the entry travel in the one repository call above; the
	// service has no separate posting path it could half-complete.
	suite.mockStockRepo.AssertNotCalled(suite.T(), "ApplyStockDelta", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockStockRepo.AssertExpectations(suite.T())
}

func (suite *StockServiceTestSuite) TestAdjustStock_NonPositiveQuantity() {
	ctx := context.Background()
	req := dto.AdjustStockRequest{ProductID: 10, Direction: "IN", Quantity: decimal.Zero, Reason: "noop"}

	adjustment, err := suite.service.AdjustStock(ctx, req)

	suite.Require().Error(err)
	suite.Nil(adjustment)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockStockRepo.AssertNotCalled(suite.T(), "ApplyAdjustmentWithEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *StockServiceTestSuite) TestListLowStocks_UsesConfiguredThreshold() {
	ctx := context.Background()
	low := []domain.Stock{{StockID: 1, ProductID: 10, QuantityOnHand: decimal.RequireFromString("3")}}

	suite.mockStockRepo.On("ListLowStocks", ctx, decimal.RequireFromString("5")).Return(low, nil).Once()

	stocks, err := suite.service.ListLowStocks(ctx)

	suite.Require().NoError(err)
	suite.Len(stocks, 1)
	suite.mockStockRepo.AssertExpectations(suite.T())
}

func TestStockServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StockServiceTestSuite))
}
