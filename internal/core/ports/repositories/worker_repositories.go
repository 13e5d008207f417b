package repositories

import (
	"context"
	"time"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// WorkerReader defines read operations for worker master data.
type WorkerReader interface {
	// FindWorkerByID retrieves a worker by its identifier.
	FindWorkerByID(ctx context.Context, workerID int64) (*domain.Worker, error)

	// ListWorkers retrieves workers ordered by name; activeOnly excludes
	// INACTIVE workers from picker listings.
	ListWorkers(ctx context.Context, activeOnly bool, limit, offset int) ([]domain.Worker, error)
}

// WorkerWriter defines write operations for worker master data.
type WorkerWriter interface {
	// SaveWorker persists a new worker and returns its identifier.
	SaveWorker(ctx context.Context, worker domain.Worker) (int64, error)

	// UpdateWorker updates the mutable fields of a worker.
	UpdateWorker(ctx context.Context, worker domain.Worker) error

	// SetWorkerStatus flips the lifecycle status (never deletes).
	SetWorkerStatus(ctx context.Context, workerID int64, status domain.MasterStatus, updatedAt time.Time) error
}

// AttendanceRepository defines the (workerID, date) fact table operations.
type AttendanceRepository interface {
	// UpsertAttendance records a worker's status for a date. At most one row
	// exists per (workerID, date); re-marking replaces the prior status.
	UpsertAttendance(ctx context.Context, attendance domain.WorkerAttendance) error

	// ListAttendance retrieves attendance facts in [from, to] ordered by date.
	ListAttendance(ctx context.Context, workerID int64, from, to time.Time) ([]domain.WorkerAttendance, error)

	// CountPresentDays counts PRESENT facts in [from, to].
	CountPresentDays(ctx context.Context, workerID int64, from, to time.Time) (int, error)
}

// WorkerPaymentReader defines read operations for salary disbursements.
type WorkerPaymentReader interface {
	// ListPaymentsByWorker retrieves payments newest first.
	ListPaymentsByWorker(ctx context.Context, workerID int64, limit, offset int) ([]domain.WorkerPayment, error)

	// SumPaymentsByWorker totals disbursements in [from, to].
	SumPaymentsByWorker(ctx context.Context, workerID int64, from, to time.Time) (decimal.Decimal, error)
}

// WorkerPaymentWriter defines salary disbursement writes.
type WorkerPaymentWriter interface {
	// SavePaymentWithTransaction persists the payment and its SALARY/OUT
	// ledger entry in one database transaction, returning the payment ID.
	SavePaymentWithTransaction(ctx context.Context, payment domain.WorkerPayment, entry domain.Transaction) (int64, error)
}

// WorkerRepositoryFacade combines all worker repository interfaces.
type WorkerRepositoryFacade interface {
	WorkerReader
	WorkerWriter
	AttendanceRepository
	WorkerPaymentReader
	WorkerPaymentWriter
}
