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

// --- Mock PersonalRepository ---
type MockPersonalRepository struct {
	mock.Mock
}

var _ portsrepo.PersonalRepositoryFacade = (*MockPersonalRepository)(nil)

func (m *MockPersonalRepository) ListPersonalTransactions(ctx context.Context, limit, offset int) ([]domain.PersonalTransaction, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PersonalTransaction), args.Error(1)
}

func (m *MockPersonalRepository) SaveWithTransaction(ctx context.Context, personal domain.PersonalTransaction, entry domain.Transaction) (int64, error) {
	args := m.Called(ctx, personal, entry)
	return args.Get(0).(int64), args.Error(1)
}

// --- Test Suite ---
type PersonalServiceTestSuite struct {
	suite.Suite
	mockRepo *MockPersonalRepository
	now      time.Time
	service  portssvc.PersonalSvcFacade
}

func (suite *PersonalServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockPersonalRepository)
	suite.now = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	suite.service = services.NewPersonalService(suite.mockRepo, clock.Fixed{Instant: suite.now})
}

func (suite *PersonalServiceTestSuite) TestRecordPersonalTransaction_MirrorsLedgerEntry() {
	ctx := context.Background()
	req := dto.RecordPersonalTxnRequest{
		Direction: "OUT",
		Amount:    decimal.RequireFromString("2000"),
		Notes:     "school fees",
	}

	suite.mockRepo.On("SaveWithTransaction", ctx,
		mock.MatchedBy(func(p domain.PersonalTransaction) bool {
			return p.Direction == domain.DirectionOut &&
				p.Amount.Equal(decimal.RequireFromString("2000")) &&
				p.TxnDate.Equal(suite.now)
		}),
		mock.MatchedBy(func(entry domain.Transaction) bool {
			return entry.Direction == domain.DirectionOut &&
				entry.Category == domain.CategoryPersonal &&
				entry.Amount.Equal(decimal.RequireFromString("2000")) &&
				entry.Reference.Type == domain.RefPersonal
		}),
	).Return(int64(12), nil).Once()

	personal, err := suite.service.RecordPersonalTransaction(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(int64(12), personal.PersonalTxnID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PersonalServiceTestSuite) TestRecordPersonalTransaction_ExplicitDate() {
	ctx := context.Background()
	txnDate := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	req := dto.RecordPersonalTxnRequest{
		Direction: "IN",
		Amount:    decimal.RequireFromString("500"),
		TxnDate:   &txnDate,
	}

	suite.mockRepo.On("SaveWithTransaction", ctx,
		mock.MatchedBy(func(p domain.PersonalTransaction) bool {
			return p.TxnDate.Equal(txnDate) && p.Direction == domain.DirectionIn
		}),
		mock.MatchedBy(func(entry domain.Transaction) bool {
			return entry.TxnDate.Equal(txnDate)
		}),
	).Return(int64(13), nil).Once()

	personal, err := suite.service.RecordPersonalTransaction(ctx, req)

	suite.Require().NoError(err)
	suite.True(personal.TxnDate.Equal(txnDate))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PersonalServiceTestSuite) TestRecordPersonalTransaction_NonPositiveAmount() {
	ctx := context.Background()

	personal, err := suite.service.RecordPersonalTransaction(ctx, dto.RecordPersonalTxnRequest{Direction: "IN", Amount: decimal.Zero})

	suite.Require().Error(err)
	suite.Nil(personal)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveWithTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func TestPersonalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PersonalServiceTestSuite))
}
