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

// --- Mock OrderRepository ---
type MockOrderRepository struct {
	mock.Mock
}

var _ portsrepo.OrderRepositoryFacade = (*MockOrderRepository)(nil)

func (m *MockOrderRepository) FindOrderByID(ctx context.Context, orderID int64) (*domain.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) FindOrderItems(ctx context.Context, orderID int64) ([]domain.OrderItem, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OrderItem), args.Error(1)
}

func (m *MockOrderRepository) ListOrders(ctx context.Context, status *domain.OrderStatus, limit, offset int) ([]domain.Order, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) SaveOrder(ctx context.Context, order domain.Order, items []domain.OrderItem, entry *domain.Transaction) (int64, error) {
	args := m.Called(ctx, order, items, entry)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) ConvertToSale(ctx context.Context, orderID int64, sale domain.Sale, items []domain.SaleItem, entry *domain.Transaction, completedAt time.Time) (int64, error) {
	args := m.Called(ctx, orderID, sale, items, entry, completedAt)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) UpdateOrderStatus(ctx context.Context, orderID int64, status domain.OrderStatus, updatedAt time.Time) error {
	args := m.Called(ctx, orderID, status, updatedAt)
	return args.Error(0)
}

// --- Test Suite ---
type OrderServiceTestSuite struct {
	suite.Suite
	mockOrderRepo   *MockOrderRepository
	mockSaleRepo    *MockSaleRepository
	mockProductRepo *MockProductRepository
	now             time.Time
	service         portssvc.OrderSvcFacade
}

func (suite *OrderServiceTestSuite) SetupTest() {
	suite.mockOrderRepo = new(MockOrderRepository)
	suite.mockSaleRepo = new(MockSaleRepository)
	suite.mockProductRepo = new(MockProductRepository)
	suite.now = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	suite.service = services.NewOrderService(suite.mockOrderRepo, suite.mockSaleRepo, suite.mockProductRepo, clock.Fixed{Instant: suite.now})
}

func (suite *OrderServiceTestSuite) TestCreateOrder_AdvancePostsToLedger() {
	ctx := context.Background()
	req := dto.CreateOrderRequest{
		CustomerName: "Karim",
		Items: []dto.OrderItemRequest{
			{ProductID: 10, Quantity: decimal.RequireFromString("1"), UnitPrice: decimal.RequireFromString("200")},
		},
		AdvanceAmount: decimal.RequireFromString("50"),
	}

	suite.mockProductRepo.On("FindProductByID", ctx, int64(10)).Return(&domain.Product{ProductID: 10}, nil).Once()

	suite.mockOrderRepo.On("SaveOrder", ctx,
		mock.MatchedBy(func(o domain.Order) bool {
			return o.Status == domain.OrderPending &&
				o.TotalAmount.Equal(decimal.RequireFromString("200")) &&
				o.AdvanceAmount.Equal(decimal.RequireFromString("50"))
		}),
		mock.AnythingOfType("[]domain.OrderItem"),
		mock.MatchedBy(func(entry *domain.Transaction) bool {
			return entry != nil &&
				entry.Direction == domain.DirectionIn &&
				entry.Category == domain.CategoryAdvance &&
				entry.Amount.Equal(decimal.RequireFromString("50")) &&
				entry.Reference.Type == domain.RefOrder
		}),
	).Return(int64(21), nil).Once()

	order, err := suite.service.CreateOrder(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(int64(21), order.OrderID)
	suite.Equal(domain.OrderPending, order.Status)
	suite.mockOrderRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestCreateOrder_NoAdvanceNoEntry() {
	ctx := context.Background()
	req := dto.CreateOrderRequest{
		CustomerName: "Karim",
		Items: []dto.OrderItemRequest{
			{ProductID: 10, Quantity: decimal.RequireFromString("1"), UnitPrice: decimal.RequireFromString("200")},
		},
	}

	suite.mockProductRepo.On("FindProductByID", ctx, int64(10)).Return(&domain.Product{ProductID: 10}, nil).Once()
	suite.mockOrderRepo.On("SaveOrder", ctx, mock.AnythingOfType("domain.Order"), mock.AnythingOfType("[]domain.OrderItem"), (*domain.Transaction)(nil)).Return(int64(22), nil).Once()

	order, err := suite.service.CreateOrder(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(int64(22), order.OrderID)
	suite.mockOrderRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestConvertOrderToSale_PostsBalanceOnly() {
	ctx := context.Background()
	order := &domain.Order{
		OrderID:       21,
		CustomerName:  "Karim",
		TotalAmount:   decimal.RequireFromString("200"),
		AdvanceAmount: decimal.RequireFromString("50"),
		Status:        domain.OrderPending,
	}
	orderItems := []domain.OrderItem{
		{OrderItemID: 1, OrderID: 21, ProductID: 10, Quantity: decimal.RequireFromString("1"), UnitPrice: decimal.RequireFromString("200"), LineTotal: decimal.RequireFromString("200")},
	}

	suite.mockOrderRepo.On("FindOrderByID", ctx, int64(21)).Return(order, nil).Once()
	suite.mockOrderRepo.On("FindOrderItems", ctx, int64(21)).Return(orderItems, nil).Once()

	suite.mockOrderRepo.On("ConvertToSale", ctx, int64(21),
		mock.MatchedBy(func(s domain.Sale) bool {
			return s.CustomerName == "Karim" && s.FinalAmount.Equal(decimal.RequireFromString("200"))
		}),
		mock.MatchedBy(func(items []domain.SaleItem) bool {
			return len(items) == 1 && items[0].ProductID == 10
		}),
		// Only the unpaid balance posts; the advance already went to the
		// ledger at order creation.
		mock.MatchedBy(func(entry *domain.Transaction) bool {
			return entry != nil &&
				entry.Category == domain.CategorySale &&
				entry.Amount.Equal(decimal.RequireFromString("150"))
		}),
		suite.now,
	).Return(int64(77), nil).Once()

	sale, err := suite.service.ConvertOrderToSale(ctx, 21, dto.ConvertOrderRequest{})

	suite.Require().NoError(err)
	suite.Equal(int64(77), sale.SaleID)
	suite.mockOrderRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestConvertOrderToSale_AdvanceCoversFinal() {
	ctx := context.Background()
	order := &domain.Order{
		OrderID:       30,
		TotalAmount:   decimal.RequireFromString("100"),
		AdvanceAmount: decimal.RequireFromString("100"),
		Status:        domain.OrderPending,
	}

	suite.mockOrderRepo.On("FindOrderByID", ctx, int64(30)).Return(order, nil).Once()
	suite.mockOrderRepo.On("FindOrderItems", ctx, int64(30)).Return([]domain.OrderItem{{OrderID: 30}}, nil).Once()
	suite.mockOrderRepo.On("ConvertToSale", ctx, int64(30),
		mock.AnythingOfType("domain.Sale"),
		mock.AnythingOfType("[]domain.SaleItem"),
		(*domain.Transaction)(nil),
		suite.now,
	).Return(int64(78), nil).Once()

	sale, err := suite.service.ConvertOrderToSale(ctx, 30, dto.ConvertOrderRequest{})

	suite.Require().NoError(err)
	suite.Equal(int64(78), sale.SaleID)
	suite.mockOrderRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestConvertOrderToSale_NotPending() {
	ctx := context.Background()
	order := &domain.Order{OrderID: 40, Status: domain.OrderCompleted}

	suite.mockOrderRepo.On("FindOrderByID", ctx, int64(40)).Return(order, nil).Once()

	sale, err := suite.service.ConvertOrderToSale(ctx, 40, dto.ConvertOrderRequest{})

	suite.Require().Error(err)
	suite.Nil(sale)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "ConvertToSale", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestCancelOrder_Pending() {
	ctx := context.Background()
	order := &domain.Order{OrderID: 50, Status: domain.OrderPending}

	suite.mockOrderRepo.On("FindOrderByID", ctx, int64(50)).Return(order, nil).Once()
	suite.mockOrderRepo.On("UpdateOrderStatus", ctx, int64(50), domain.OrderCancelled, suite.now).Return(nil).Once()

	suite.Require().NoError(suite.service.CancelOrder(ctx, 50))
	suite.mockOrderRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestCancelOrder_AlreadyCancelled() {
	ctx := context.Background()
	order := &domain.Order{OrderID: 51, Status: domain.OrderCancelled}

	suite.mockOrderRepo.On("FindOrderByID", ctx, int64(51)).Return(order, nil).Once()

	err := suite.service.CancelOrder(ctx, 51)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "UpdateOrderStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}
