package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/shopledger/shop_ledger_app/internal/apperrors"
	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	portsrepo "github.com/shopledger/shop_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/shopledger/shop_ledger_app/internal/core/ports/services"
	"github.com/shopledger/shop_ledger_app/internal/dto"
	"github.com/shopledger/shop_ledger_app/internal/platform/clock"
	"github.com/shopledger/shop_ledger_app/internal/utils/accounting"
)

const attendanceDateLayout = "2006-01-02"

type workerService struct {
	BaseService
	workerRepo portsrepo.WorkerRepositoryFacade
	clk        clock.Clock
}

// NewWorkerService creates the worker master-data, attendance and salary
// service.
func NewWorkerService(workerRepo portsrepo.WorkerRepositoryFacade, clk clock.Clock) portssvc.WorkerSvcFacade {
	return &workerService{
		workerRepo: workerRepo,
		clk:        clk,
	}
}

var _ portssvc.WorkerSvcFacade = (*workerService)(nil)

func (s *workerService) CreateWorker(ctx context.Context, req dto.CreateWorkerRequest) (*domain.Worker, error) {
	now := s.clk.Now()
	worker := domain.Worker{
		Name:         req.Name,
		Phone:        req.Phone,
		SalaryType:   domain.SalaryType(req.SalaryType),
		SalaryAmount: req.SalaryAmount,
		DefaultRate:  req.DefaultRate,
		Status:       domain.StatusActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	workerID, err := s.workerRepo.SaveWorker(ctx, worker)
	if err != nil {
		s.LogError(ctx, err, "failed to create worker")
		return nil, fmt.Errorf("failed to create worker: %w", err)
	}
	worker.WorkerID = workerID

	s.LogInfo(ctx, "worker created", slog.Int64("worker_id", workerID))
	return &worker, nil
}

func (s *workerService) GetWorkerByID(ctx context.Context, workerID int64) (*domain.Worker, error) {
	return s.workerRepo.FindWorkerByID(ctx, workerID)
}

func (s *workerService) ListWorkers(ctx context.Context, activeOnly bool, limit, offset int) ([]domain.Worker, error) {
	return s.workerRepo.ListWorkers(ctx, activeOnly, limit, offset)
}

func (s *workerService) UpdateWorker(ctx context.Context, workerID int64, req dto.UpdateWorkerRequest) (*domain.Worker, error) {
	worker, err := s.workerRepo.FindWorkerByID(ctx, workerID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		worker.Name = *req.Name
	}
	if req.Phone != nil {
		worker.Phone = *req.Phone
	}
	if req.SalaryType != nil {
		worker.SalaryType = domain.SalaryType(*req.SalaryType)
	}
	if req.SalaryAmount != nil {
		worker.SalaryAmount = *req.SalaryAmount
	}
	if req.DefaultRate != nil {
		worker.DefaultRate = *req.DefaultRate
	}
	worker.LastUpdatedAt = s.clk.Now()

	if err := s.workerRepo.UpdateWorker(ctx, *worker); err != nil {
		s.LogError(ctx, err, "failed to update worker", slog.Int64("worker_id", workerID))
		return nil, fmt.Errorf("failed to update worker: %w", err)
	}

	return worker, nil
}

func (s *workerService) DeactivateWorker(ctx context.Context, workerID int64) error {
	return s.workerRepo.SetWorkerStatus(ctx, workerID, domain.StatusInactive, s.clk.Now())
}

func (s *workerService) ReactivateWorker(ctx context.Context, workerID int64) error {
	return s.workerRepo.SetWorkerStatus(ctx, workerID, domain.StatusActive, s.clk.Now())
}

// MarkAttendance upserts the (worker, date) fact. Re-marking the same date
// replaces the prior status, it never duplicates the row.
func (s *workerService) MarkAttendance(ctx context.Context, workerID int64, req dto.MarkAttendanceRequest) (*domain.WorkerAttendance, error) {
	worker, err := s.workerRepo.FindWorkerByID(ctx, workerID)
	if err != nil {
		return nil, err
	}
	if worker.Status != domain.StatusActive {
		return nil, apperrors.NewAppError(422, fmt.Sprintf("worker %d is inactive", workerID), apperrors.ErrInactive)
	}

	date, err := time.Parse(attendanceDateLayout, req.Date)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid attendance date, expected YYYY-MM-DD")
	}

	attendance := domain.WorkerAttendance{
		WorkerID: workerID,
		Date:     date,
		Status:   domain.AttendanceStatus(req.Status),
		MarkedAt: s.clk.Now(),
	}

	if err := s.workerRepo.UpsertAttendance(ctx, attendance); err != nil {
		s.LogError(ctx, err, "failed to mark attendance", slog.Int64("worker_id", workerID))
		return nil, fmt.Errorf("failed to mark attendance: %w", err)
	}

	s.LogInfo(ctx, "attendance marked",
		slog.Int64("worker_id", workerID),
		slog.String("date", req.Date),
		slog.String("status", req.Status))

	return &attendance, nil
}

func (s *workerService) ListAttendance(ctx context.Context, workerID int64, from, to time.Time) ([]domain.WorkerAttendance, error) {
	return s.workerRepo.ListAttendance(ctx, workerID, from, to)
}

// EstimateSalary derives the earned amount for a period from the worker's
// salary type and the attendance facts.
func (s *workerService) EstimateSalary(ctx context.Context, workerID int64, from, to time.Time) (*domain.SalaryEstimate, error) {
	worker, err := s.workerRepo.FindWorkerByID(ctx, workerID)
	if err != nil {
		return nil, err
	}

	presentDays, err := s.workerRepo.CountPresentDays(ctx, workerID, from, to)
	if err != nil {
		return nil, err
	}

	estimate, err := accounting.AccrueSalary(*worker, presentDays, from, to)
	if err != nil {
		return nil, err
	}
	return &estimate, nil
}

// PayWorker rejects inactive workers before any write, then persists the
// payment and its ledger entry atomically.
func (s *workerService) PayWorker(ctx context.Context, workerID int64, req dto.PayWorkerRequest) (*domain.WorkerPayment, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, apperrors.NewValidationError("payment amount must be positive")
	}

	worker, err := s.workerRepo.FindWorkerByID(ctx, workerID)
	if err != nil {
		return nil, err
	}
	if worker.Status != domain.StatusActive {
		return nil, apperrors.NewAppError(422, fmt.Sprintf("worker %d is inactive", workerID), apperrors.ErrInactive)
	}

	now := s.clk.Now()
	mode := resolvePaymentMode(req.PaymentMode)

	payment := domain.WorkerPayment{
		WorkerID:    workerID,
		Amount:      req.Amount,
		PaymentMode: mode,
		PaidAt:      now,
		Notes:       req.Notes,
	}
	entry := domain.Transaction{
		TxnDate:     now,
		Direction:   domain.DirectionOut,
		Category:    domain.CategorySalary,
		Amount:      req.Amount,
		PaymentMode: mode,
		Reference:   domain.Reference{Type: domain.RefWorkerPayment},
		Notes:       req.Notes,
		CreatedAt:   now,
	}

	paymentID, err := s.workerRepo.SavePaymentWithTransaction(ctx, payment, entry)
	if err != nil {
		s.LogError(ctx, err, "failed to pay worker", slog.Int64("worker_id", workerID))
		return nil, fmt.Errorf("failed to pay worker: %w", err)
	}
	payment.PaymentID = paymentID

	s.LogInfo(ctx, "worker paid",
		slog.Int64("worker_id", workerID),
		slog.Int64("payment_id", paymentID),
		slog.String("amount", req.Amount.String()))

	return &payment, nil
}

// GetWorkerLedger computes accrued salary against disbursements for a period.
func (s *workerService) GetWorkerLedger(ctx context.Context, workerID int64, from, to time.Time) (*domain.WorkerLedger, error) {
	estimate, err := s.EstimateSalary(ctx, workerID, from, to)
	if err != nil {
		return nil, err
	}

	totalPaid, err := s.workerRepo.SumPaymentsByWorker(ctx, workerID, from, to)
	if err != nil {
		return nil, err
	}

	return &domain.WorkerLedger{
		WorkerID:      workerID,
		From:          from,
		To:            to,
		PresentDays:   estimate.PresentDays,
		AccruedSalary: estimate.Amount,
		TotalPaid:     totalPaid,
		Balance:       estimate.Amount.Sub(totalPaid),
	}, nil
}

func (s *workerService) ListWorkerPayments(ctx context.Context, workerID int64, limit, offset int) ([]domain.WorkerPayment, error) {
	return s.workerRepo.ListPaymentsByWorker(ctx, workerID, limit, offset)
}
