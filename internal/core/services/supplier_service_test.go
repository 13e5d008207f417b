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

// --- Mock SupplierRepository ---
type MockSupplierRepository struct {
	mock.Mock
}

var _ portsrepo.SupplierRepositoryFacade = (*MockSupplierRepository)(nil)

func (m *MockSupplierRepository) FindSupplierByID(ctx context.Context, supplierID int64) (*domain.Supplier, error) {
	args := m.Called(ctx, supplierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) ListSuppliers(ctx context.Context, activeOnly bool, limit, offset int) ([]domain.Supplier, error) {
	args := m.Called(ctx, activeOnly, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) SaveSupplier(ctx context.Context, supplier domain.Supplier) (int64, error) {
	args := m.Called(ctx, supplier)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSupplierRepository) UpdateSupplier(ctx context.Context, supplier domain.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) SetSupplierStatus(ctx context.Context, supplierID int64, status domain.MasterStatus, updatedAt time.Time) error {
	args := m.Called(ctx, supplierID, status, updatedAt)
	return args.Error(0)
}

func (m *MockSupplierRepository) ListPaymentsBySupplier(ctx context.Context, supplierID int64, limit, offset int) ([]domain.SupplierPayment, error) {
	args := m.Called(ctx, supplierID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SupplierPayment), args.Error(1)
}

func (m *MockSupplierRepository) SavePaymentWithTransaction(ctx context.Context, payment domain.SupplierPayment, entry domain.Transaction) (int64, error) {
	args := m.Called(ctx, payment, entry)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSupplierRepository) InsertPaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.SupplierPayment) (int64, error) {
	args := m.Called(ctx, tx, payment)
	return args.Get(0).(int64), args.Error(1)
}

// --- Test Suite ---
type SupplierServiceTestSuite struct {
	suite.Suite
	mockSupplierRepo  *MockSupplierRepository
	mockPurchaseRepo  *MockPurchaseRepository
	mockReportingRepo *MockReportingRepository
	now               time.Time
	service           portssvc.SupplierSvcFacade
}

func (suite *SupplierServiceTestSuite) SetupTest() {
	suite.mockSupplierRepo = new(MockSupplierRepository)
	suite.mockPurchaseRepo = new(MockPurchaseRepository)
	suite.mockReportingRepo = new(MockReportingRepository)
	suite.now = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	suite.service = services.NewSupplierService(suite.mockSupplierRepo, suite.mockPurchaseRepo, suite.mockReportingRepo, clock.Fixed{Instant: suite.now})
}

func (suite *SupplierServiceTestSuite) activeSupplier(id int64) *domain.Supplier {
	return &domain.Supplier{SupplierID: id, Name: "Wholesale House", Status: domain.StatusActive}
}

func (suite *SupplierServiceTestSuite) TestPaySupplier_Success() {
	ctx := context.Background()
	req := dto.PaySupplierRequest{Amount: decimal.RequireFromString("500"), PaymentMode: "BANK"}

	suite.mockSupplierRepo.On("FindSupplierByID", ctx, int64(1)).Return(suite.activeSupplier(1), nil).Once()
	suite.mockSupplierRepo.On("SavePaymentWithTransaction", ctx,
		mock.MatchedBy(func(p domain.SupplierPayment) bool {
			return p.SupplierID == 1 && p.PurchaseID == nil && p.Amount.Equal(decimal.RequireFromString("500")) && p.PaymentMode == domain.ModeBank
		}),
		mock.MatchedBy(func(entry domain.Transaction) bool {
			return entry.Direction == domain.DirectionOut &&
				entry.Category == domain.CategoryPurchase &&
				entry.Amount.Equal(decimal.RequireFromString("500")) &&
				entry.Reference.Type == domain.RefSupplierPayment
		}),
	).Return(int64(15), nil).Once()

	payment, err := suite.service.PaySupplier(ctx, 1, req)

	suite.Require().NoError(err)
	suite.Equal(int64(15), payment.PaymentID)
	suite.mockSupplierRepo.AssertExpectations(suite.T())
}

func (suite *SupplierServiceTestSuite) TestPaySupplier_InactiveSupplier() {
	ctx := context.Background()
	inactive := &domain.Supplier{SupplierID: 2, Status: domain.StatusInactive}

	suite.mockSupplierRepo.On("FindSupplierByID", ctx, int64(2)).Return(inactive, nil).Once()

	payment, err := suite.service.PaySupplier(ctx, 2, dto.PaySupplierRequest{Amount: decimal.RequireFromString("100")})

	suite.Require().Error(err)
	suite.Nil(payment)
	suite.ErrorIs(err, apperrors.ErrInactive)
	suite.mockSupplierRepo.AssertNotCalled(suite.T(), "SavePaymentWithTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SupplierServiceTestSuite) TestPaySupplier_PurchaseBelongsToOtherSupplier() {
	ctx := context.Background()
	purchaseID := int64(9)
	req := dto.PaySupplierRequest{Amount: decimal.RequireFromString("100"), PurchaseID: &purchaseID}

	suite.mockSupplierRepo.On("FindSupplierByID", ctx, int64(1)).Return(suite.activeSupplier(1), nil).Once()
	suite.mockPurchaseRepo.On("FindPurchaseByID", ctx, purchaseID).Return(&domain.Purchase{PurchaseID: 9, SupplierID: 3}, nil).Once()

	payment, err := suite.service.PaySupplier(ctx, 1, req)

	suite.Require().Error(err)
	suite.Nil(payment)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *SupplierServiceTestSuite) TestGetSupplierDue_Recomputed() {
	ctx := context.Background()

	suite.mockSupplierRepo.On("FindSupplierByID", ctx, int64(1)).Return(suite.activeSupplier(1), nil).Once()
	suite.mockReportingRepo.On("GetSupplierTotals", ctx, int64(1)).Return(decimal.RequireFromString("1000"), decimal.RequireFromString("350"), nil).Once()

	due, err := suite.service.GetSupplierDue(ctx, 1)

	suite.Require().NoError(err)
	suite.True(due.TotalPurchased.Equal(decimal.RequireFromString("1000")))
	suite.True(due.TotalPaid.Equal(decimal.RequireFromString("350")))
	suite.True(due.Due.Equal(decimal.RequireFromString("650")))
	suite.mockReportingRepo.AssertExpectations(suite.T())
}

func (suite *SupplierServiceTestSuite) TestGetSupplierLedger_MergeAndRunningDue() {
	ctx := context.Background()
	d1 := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	supplierID := int64(1)

	purchases := []domain.Purchase{
		{PurchaseID: 101, SupplierID: 1, PurchaseDate: d1, TotalAmount: decimal.RequireFromString("100")},
		{PurchaseID: 102, SupplierID: 1, PurchaseDate: d2, TotalAmount: decimal.RequireFromString("50")},
	}
	payments := []domain.SupplierPayment{
		{PaymentID: 201, SupplierID: 1, PaidAt: d2, Amount: decimal.RequireFromString("40")},
	}

	suite.mockSupplierRepo.On("FindSupplierByID", ctx, supplierID).Return(suite.activeSupplier(1), nil).Once()
	suite.mockPurchaseRepo.On("ListPurchases", ctx, &supplierID, mock.AnythingOfType("int"), 0).Return(purchases, nil).Once()
	suite.mockSupplierRepo.On("ListPaymentsBySupplier", ctx, supplierID, mock.AnythingOfType("int"), 0).Return(payments, nil).Once()

	entries, err := suite.service.GetSupplierLedger(ctx, supplierID)

	suite.Require().NoError(err)
	suite.Require().Len(entries, 3)

	// Chronological, with the purchase winning the d2 tie.
	suite.Equal(domain.SupplierEntryPurchase, entries[0].Kind)
	suite.Equal(int64(101), entries[0].SourceID)
	suite.True(entries[0].RunningDue.Equal(decimal.RequireFromString("100")))

	suite.Equal(domain.SupplierEntryPurchase, entries[1].Kind)
	suite.Equal(int64(102), entries[1].SourceID)
	suite.True(entries[1].RunningDue.Equal(decimal.RequireFromString("150")))

	suite.Equal(domain.SupplierEntryPayment, entries[2].Kind)
	suite.Equal(int64(201), entries[2].SourceID)
	suite.True(entries[2].RunningDue.Equal(decimal.RequireFromString("110")))
}

func (suite *SupplierServiceTestSuite) TestCreateSupplier_Success() {
	ctx := context.Background()
	req := dto.CreateSupplierRequest{Name: "Battery Depot", Phone: "018", Address: "Chawkbazar"}

	suite.mockSupplierRepo.On("SaveSupplier", ctx, mock.MatchedBy(func(s domain.Supplier) bool {
		return s.Name == req.Name && s.Status == domain.StatusActive
	})).Return(int64(3), nil).Once()

	supplier, err := suite.service.CreateSupplier(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(int64(3), supplier.SupplierID)
	suite.mockSupplierRepo.AssertExpectations(suite.T())
}

func TestSupplierServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SupplierServiceTestSuite))
}
