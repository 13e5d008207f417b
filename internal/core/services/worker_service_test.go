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

// --- Mock WorkerRepository ---
type MockWorkerRepository struct {
	mock.Mock
}

var _ portsrepo.WorkerRepositoryFacade = (*MockWorkerRepository)(nil)

func (m *MockWorkerRepository) FindWorkerByID(ctx context.Context, workerID int64) (*domain.Worker, error) {
	args := m.Called(ctx, workerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Worker), args.Error(1)
}

func (m *MockWorkerRepository) ListWorkers(ctx context.Context, activeOnly bool, limit, offset int) ([]domain.Worker, error) {
	args := m.Called(ctx, activeOnly, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Worker), args.Error(1)
}

func (m *MockWorkerRepository) SaveWorker(ctx context.Context, worker domain.Worker) (int64, error) {
	args := m.Called(ctx, worker)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWorkerRepository) UpdateWorker(ctx context.Context, worker domain.Worker) error {
	args := m.Called(ctx, worker)
	return args.Error(0)
}

func (m *MockWorkerRepository) SetWorkerStatus(ctx context.Context, workerID int64, status domain.MasterStatus, updatedAt time.Time) error {
	args := m.Called(ctx, workerID, status, updatedAt)
	return args.Error(0)
}

func (m *MockWorkerRepository) UpsertAttendance(ctx context.Context, attendance domain.WorkerAttendance) error {
	args := m.Called(ctx, attendance)
	return args.Error(0)
}

func (m *MockWorkerRepository) ListAttendance(ctx context.Context, workerID int64, from, to time.Time) ([]domain.WorkerAttendance, error) {
	args := m.Called(ctx, workerID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorkerAttendance), args.Error(1)
}

func (m *MockWorkerRepository) CountPresentDays(ctx context.Context, workerID int64, from, to time.Time) (int, error) {
	args := m.Called(ctx, workerID, from, to)
	return args.Int(0), args.Error(1)
}

func (m *MockWorkerRepository) ListPaymentsByWorker(ctx context.Context, workerID int64, limit, offset int) ([]domain.WorkerPayment, error) {
	args := m.Called(ctx, workerID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WorkerPayment), args.Error(1)
}

func (m *MockWorkerRepository) SumPaymentsByWorker(ctx context.Context, workerID int64, from, to time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, workerID, from, to)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockWorkerRepository) SavePaymentWithTransaction(ctx context.Context, payment domain.WorkerPayment, entry domain.Transaction) (int64, error) {
	args := m.Called(ctx, payment, entry)
	return args.Get(0).(int64), args.Error(1)
}

// --- Test Suite ---
type WorkerServiceTestSuite struct {
	suite.Suite
	mockRepo *MockWorkerRepository
	now      time.Time
	service  portssvc.WorkerSvcFacade
}

func (suite *WorkerServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockWorkerRepository)
	suite.now = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	suite.service = services.NewWorkerService(suite.mockRepo, clock.Fixed{Instant: suite.now})
}

func (suite *WorkerServiceTestSuite) dailyWorker(id int64) *domain.Worker {
	return &domain.Worker{
		WorkerID:    id,
		Name:        "Jamal",
		SalaryType:  domain.SalaryDaily,
		DefaultRate: decimal.RequireFromString("500"),
		Status:      domain.StatusActive,
	}
}

func (suite *WorkerServiceTestSuite) TestMarkAttendance_Success() {
	ctx := context.Background()

	suite.mockRepo.On("FindWorkerByID", ctx, int64(1)).Return(suite.dailyWorker(1), nil).Once()
	suite.mockRepo.On("UpsertAttendance", ctx, mock.MatchedBy(func(a domain.WorkerAttendance) bool {
		return a.WorkerID == 1 &&
			a.Date.Equal(time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)) &&
			a.Status == domain.AttendancePresent
	})).Return(nil).Once()

	attendance, err := suite.service.MarkAttendance(ctx, 1, dto.MarkAttendanceRequest{Date: "2025-06-14", Status: "PRESENT"})

	suite.Require().NoError(err)
	suite.Equal(domain.AttendancePresent, attendance.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *WorkerServiceTestSuite) TestMarkAttendance_RemarkSameDateReplaces() {
	ctx := context.Background()

	suite.mockRepo.On("FindWorkerByID", ctx, int64(1)).Return(suite.dailyWorker(1), nil).Twice()
	suite.mockRepo.On("UpsertAttendance", ctx, mock.MatchedBy(func(a domain.WorkerAttendance) bool {
		return a.Status == domain.AttendancePresent
	})).Return(nil).Once()
	suite.mockRepo.On("UpsertAttendance", ctx, mock.MatchedBy(func(a domain.WorkerAttendance) bool {
		return a.Status == domain.AttendanceAbsent
	})).Return(nil).Once()

	_, err := suite.service.MarkAttendance(ctx, 1, dto.MarkAttendanceRequest{Date: "2025-06-14", Status: "PRESENT"})
	suite.Require().NoError(err)

	attendance, err := suite.service.MarkAttendance(ctx, 1, dto.MarkAttendanceRequest{Date: "2025-06-14", Status: "ABSENT"})
	suite.Require().NoError(err)
	suite.Equal(domain.AttendanceAbsent, attendance.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *WorkerServiceTestSuite) TestMarkAttendance_BadDate() {
	ctx := context.Background()

	suite.mockRepo.On("FindWorkerByID", ctx, int64(1)).Return(suite.dailyWorker(1), nil).Once()

	attendance, err := suite.service.MarkAttendance(ctx, 1, dto.MarkAttendanceRequest{Date: "14-06-2025", Status: "PRESENT"})

	suite.Require().Error(err)
	suite.Nil(attendance)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *WorkerServiceTestSuite) TestEstimateSalary_Daily() {
	ctx := context.Background()
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	suite.mockRepo.On("FindWorkerByID", ctx, int64(1)).Return(suite.dailyWorker(1), nil).Once()
	suite.mockRepo.On("CountPresentDays", ctx, int64(1), from, to).Return(3, nil).Once()

	estimate, err := suite.service.EstimateSalary(ctx, 1, from, to)

	suite.Require().NoError(err)
	suite.Equal(3, estimate.PresentDays)
	suite.True(estimate.Amount.Equal(decimal.RequireFromString("1500")))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *WorkerServiceTestSuite) TestEstimateSalary_MonthlyIgnoresAttendance() {
	ctx := context.Background()
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	worker := &domain.Worker{
		WorkerID:     2,
		SalaryType:   domain.SalaryMonthly,
		SalaryAmount: decimal.RequireFromString("12000"),
		Status:       domain.StatusActive,
	}

	suite.mockRepo.On("FindWorkerByID", ctx, int64(2)).Return(worker, nil).Once()
	suite.mockRepo.On("CountPresentDays", ctx, int64(2), from, to).Return(2, nil).Once()

	estimate, err := suite.service.EstimateSalary(ctx, 2, from, to)

	suite.Require().NoError(err)
	suite.True(estimate.Amount.Equal(decimal.RequireFromString("12000")))
}

func (suite *WorkerServiceTestSuite) TestEstimateSalary_PerJobIsZero() {
	ctx := context.Background()
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	worker := &domain.Worker{WorkerID: 3, SalaryType: domain.SalaryPerJob, Status: domain.StatusActive}

	suite.mockRepo.On("FindWorkerByID", ctx, int64(3)).Return(worker, nil).Once()
	suite.mockRepo.On("CountPresentDays", ctx, int64(3), from, to).Return(10, nil).Once()

	estimate, err := suite.service.EstimateSalary(ctx, 3, from, to)

	suite.Require().NoError(err)
	suite.True(estimate.Amount.IsZero())
}

func (suite *WorkerServiceTestSuite) TestPayWorker_Success() {
	ctx := context.Background()
	req := dto.PayWorkerRequest{Amount: decimal.RequireFromString("1500"), PaymentMode: "NAGAD"}

	suite.mockRepo.On("FindWorkerByID", ctx, int64(1)).Return(suite.dailyWorker(1), nil).Once()
	suite.mockRepo.On("SavePaymentWithTransaction", ctx,
		mock.MatchedBy(func(p domain.WorkerPayment) bool {
			return p.WorkerID == 1 && p.Amount.Equal(decimal.RequireFromString("1500")) && p.PaymentMode == domain.ModeNagad
		}),
		mock.MatchedBy(func(entry domain.Transaction) bool {
			return entry.Direction == domain.DirectionOut &&
				entry.Category == domain.CategorySalary &&
				entry.Amount.Equal(decimal.RequireFromString("1500")) &&
				entry.Reference.Type == domain.RefWorkerPayment
		}),
	).Return(int64(88), nil).Once()

	payment, err := suite.service.PayWorker(ctx, 1, req)

	suite.Require().NoError(err)
	suite.Equal(int64(88), payment.PaymentID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *WorkerServiceTestSuite) TestPayWorker_InactiveWorkerRejected() {
	ctx := context.Background()
	inactive := &domain.Worker{WorkerID: 4, Status: domain.StatusInactive}

	suite.mockRepo.On("FindWorkerByID", ctx, int64(4)).Return(inactive, nil).Once()

	payment, err := suite.service.PayWorker(ctx, 4, dto.PayWorkerRequest{Amount: decimal.RequireFromString("500")})

	suite.Require().Error(err)
	suite.Nil(payment)
	suite.ErrorIs(err, apperrors.ErrInactive)
	suite.mockRepo.AssertNotCalled(suite.T(), "SavePaymentWithTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *WorkerServiceTestSuite) TestPayWorker_NonPositiveAmount() {
	ctx := context.Background()

	payment, err := suite.service.PayWorker(ctx, 1, dto.PayWorkerRequest{Amount: decimal.Zero})

	suite.Require().Error(err)
	suite.Nil(payment)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindWorkerByID", mock.Anything, mock.Anything)
}

func (suite *WorkerServiceTestSuite) TestGetWorkerLedger_BalanceIsAccruedMinusPaid() {
	ctx := context.Background()
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	suite.mockRepo.On("FindWorkerByID", ctx, int64(1)).Return(suite.dailyWorker(1), nil).Once()
	suite.mockRepo.On("CountPresentDays", ctx, int64(1), from, to).Return(4, nil).Once()
	suite.mockRepo.On("SumPaymentsByWorker", ctx, int64(1), from, to).Return(decimal.RequireFromString("1200"), nil).Once()

	ledger, err := suite.service.GetWorkerLedger(ctx, 1, from, to)

	suite.Require().NoError(err)
	suite.True(ledger.AccruedSalary.Equal(decimal.RequireFromString("2000")))
	suite.True(ledger.TotalPaid.Equal(decimal.RequireFromString("1200")))
	suite.True(ledger.Balance.Equal(decimal.RequireFromString("800")))
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestWorkerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WorkerServiceTestSuite))
}
