package services_test

import (
	"context"
	"testing"
	"time"

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

// --- Mock SaleRepository ---
type MockSaleRepository struct {
	mock.Mock
}

var _ portsrepo.SaleRepositoryFacade = (*MockSaleRepository)(nil)

func (m *MockSaleRepository) FindSaleByID(ctx context.Context, saleID int64) (*domain.Sale, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

func (m *MockSaleRepository) FindSaleItems(ctx context.Context, saleID int64) ([]domain.SaleItem, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SaleItem), args.Error(1)
}

func (m *MockSaleRepository) FindTradeInBySaleID(ctx context.Context, saleID int64) (*domain.OldBatteryTradeIn, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OldBatteryTradeIn), args.Error(1)
}

func (m *MockSaleRepository) ListSales(ctx context.Context, from, to *time.Time, limit, offset int) ([]domain.Sale, error) {
	args := m.Called(ctx, from, to, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Sale), args.Error(1)
}

func (m *MockSaleRepository) SaveSale(ctx context.Context, sale domain.Sale, items []domain.SaleItem, tradeIn *domain.OldBatteryTradeIn, entry *domain.Transaction) (int64, error) {
	args := m.Called(ctx, sale, items, tradeIn, entry)
	return args.Get(0).(int64), args.Error(1)
}

// --- Test Suite ---
type SaleServiceTestSuite struct {
	suite.Suite
	mockSaleRepo    *MockSaleRepository
	mockProductRepo *MockProductRepository
	now             time.Time
	service         portssvc.SaleSvcFacade
}

func (suite *SaleServiceTestSuite) SetupTest() {
	suite.mockSaleRepo = new(MockSaleRepository)
	suite.mockProductRepo = new(MockProductRepository)
	suite.now = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	suite.service = services.NewSaleService(suite.mockSaleRepo, suite.mockProductRepo, clock.Fixed{Instant: suite.now})
}

func (suite *SaleServiceTestSuite) TestCreateSale_DiscountAndTradeIn() {
	ctx := context.Background()
	req := dto.CreateSaleRequest{
		CustomerName: "Rahim",
		Items: []dto.SaleItemRequest{
			{ProductID: 10, Quantity: decimal.RequireFromString("1"), UnitPrice: decimal.RequireFromString("150")},
		},
		Discount: decimal.RequireFromString("20"),
		TradeIn: &dto.TradeInRequest{
			Brand:  "Volta",
			Weight: decimal.RequireFromString("12.5"),
			Amount: decimal.RequireFromString("800"),
		},
	}

	suite.mockProductRepo.On("FindProductByID", ctx, int64(10)).Return(&domain.Product{ProductID: 10}, nil).Once()

	suite.mockSaleRepo.On("SaveSale", ctx,
		mock.MatchedBy(func(s domain.Sale) bool {
			return s.TotalAmount.Equal(decimal.RequireFromString("150")) &&
				s.FinalAmount.Equal(decimal.RequireFromString("130")) &&
				s.PaymentMode == domain.ModeCash
		}),
		mock.AnythingOfType("[]domain.SaleItem"),
		mock.MatchedBy(func(tradeIn *domain.OldBatteryTradeIn) bool {
			return tradeIn != nil && tradeIn.Amount.Equal(decimal.RequireFromString("800"))
		}),
		// The posting is the full final amount; the trade-in never nets
		// against it.
		mock.MatchedBy(func(entry *domain.Transaction) bool {
			return entry != nil &&
				entry.Direction == domain.DirectionIn &&
				entry.Category == domain.CategorySale &&
				entry.Amount.Equal(decimal.RequireFromString("130")) &&
				entry.Reference.Type == domain.RefSale
		}),
	).Return(int64(31), nil).Once()

	sale, err := suite.service.CreateSale(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(sale)
	suite.Equal(int64(31), sale.SaleID)
	suite.True(sale.FinalAmount.Equal(decimal.RequireFromString("130")))
	suite.mockSaleRepo.AssertExpectations(suite.T())
	suite.mockProductRepo.AssertExpectations(suite.T())
}

func (suite *SaleServiceTestSuite) TestCreateSale_DiscountExceedsTotal() {
	ctx := context.Background()
	req := dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{
			{ProductID: 10, Quantity: decimal.RequireFromString("1"), UnitPrice: decimal.RequireFromString("100")},
		},
		Discount: decimal.RequireFromString("120"),
	}

	suite.mockProductRepo.On("FindProductByID", ctx, int64(10)).Return(&domain.Product{ProductID: 10}, nil).Once()

	sale, err := suite.service.CreateSale(ctx, req)

	suite.Require().Error(err)
	suite.Nil(sale)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockSaleRepo.AssertNotCalled(suite.T(), "SaveSale", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SaleServiceTestSuite) TestCreateSale_NoItems() {
	ctx := context.Background()

	sale, err := suite.service.CreateSale(ctx, dto.CreateSaleRequest{})

	suite.Require().Error(err)
	suite.Nil(sale)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *SaleServiceTestSuite) TestCreateSale_ZeroQuantityLine() {
	ctx := context.Background()
	req := dto.CreateSaleRequest{
		Items: []dto.SaleItemRequest{
			{ProductID: 10, Quantity: decimal.Zero, UnitPrice: decimal.RequireFromString("100")},
		},
	}

	sale, err := suite.service.CreateSale(ctx, req)

	suite.Require().Error(err)
	suite.Nil(sale)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *SaleServiceTestSuite) TestGetSaleWithItems_NoTradeIn() {
	ctx := context.Background()
	expected := &domain.Sale{SaleID: 5}
	items := []domain.SaleItem{{SaleItemID: 1, SaleID: 5}}

	suite.mockSaleRepo.On("FindSaleByID", ctx, int64(5)).Return(expected, nil).Once()
	suite.mockSaleRepo.On("FindSaleItems", ctx, int64(5)).Return(items, nil).Once()
	suite.mockSaleRepo.On("FindTradeInBySaleID", ctx, int64(5)).Return(nil, apperrors.ErrNotFound).Once()

	sale, gotItems, tradeIn, err := suite.service.GetSaleWithItems(ctx, 5)

	suite.Require().NoError(err)
	suite.Equal(expected, sale)
	suite.Len(gotItems, 1)
	suite.Nil(tradeIn)
	suite.mockSaleRepo.AssertExpectations(suite.T())
}

func TestSaleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SaleServiceTestSuite))
}
