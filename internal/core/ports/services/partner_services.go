package services

import (
	"context"
	"time"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	"github.com/shopledger/shop_ledger_app/internal/dto"
)

// SupplierSvcFacade covers supplier master data, the supplier payment
// orchestration, and the always-recomputed due/ledger views.
type SupplierSvcFacade interface {
	CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest) (*domain.Supplier, error)
	GetSupplierByID(ctx context.Context, supplierID int64) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context, activeOnly bool, limit, offset int) ([]domain.Supplier, error)
	UpdateSupplier(ctx context.Context, supplierID int64, req dto.UpdateSupplierRequest) (*domain.Supplier, error)
	DeactivateSupplier(ctx context.Context, supplierID int64) error
	ReactivateSupplier(ctx context.Context, supplierID int64) error

	// PaySupplier persists the payment and its PURCHASE/OUT ledger entry
	// atomically. It never touches any purchase's frozen snapshot.
	PaySupplier(ctx context.Context, supplierID int64, req dto.PaySupplierRequest) (*domain.SupplierPayment, error)

	// GetSupplierDue recomputes the outstanding balance from purchases and
	// payments on every call.
	GetSupplierDue(ctx context.Context, supplierID int64) (*domain.SupplierDue, error)

	// GetSupplierLedger merges purchases (debit) and payments (credit) into
	// one time-ordered sequence with a running due.
	GetSupplierLedger(ctx context.Context, supplierID int64) ([]domain.SupplierLedgerEntry, error)

	ListSupplierPayments(ctx context.Context, supplierID int64, limit, offset int) ([]domain.SupplierPayment, error)
}

// WorkerSvcFacade covers worker master data, attendance, salary accrual and
// the worker payment orchestration.
type WorkerSvcFacade interface {
	CreateWorker(ctx context.Context, req dto.CreateWorkerRequest) (*domain.Worker, error)
	GetWorkerByID(ctx context.Context, workerID int64) (*domain.Worker, error)
	ListWorkers(ctx context.Context, activeOnly bool, limit, offset int) ([]domain.Worker, error)
	UpdateWorker(ctx context.Context, workerID int64, req dto.UpdateWorkerRequest) (*domain.Worker, error)
	DeactivateWorker(ctx context.Context, workerID int64) error
	ReactivateWorker(ctx context.Context, workerID int64) error

	// MarkAttendance upserts the (worker, date) fact; re-marking replaces.
	MarkAttendance(ctx context.Context, workerID int64, req dto.MarkAttendanceRequest) (*domain.WorkerAttendance, error)

	ListAttendance(ctx context.Context, workerID int64, from, to time.Time) ([]domain.WorkerAttendance, error)

	// EstimateSalary derives the earned amount for a period from the
	// worker's salary type and attendance.
	EstimateSalary(ctx context.Context, workerID int64, from, to time.Time) (*domain.SalaryEstimate, error)

	// PayWorker rejects inactive workers before any write, then persists the
	// payment and its SALARY/OUT ledger entry atomically.
	PayWorker(ctx context.Context, workerID int64, req dto.PayWorkerRequest) (*domain.WorkerPayment, error)

	// GetWorkerLedger computes accrued salary minus disbursements for a period.
	GetWorkerLedger(ctx context.Context, workerID int64, from, to time.Time) (*domain.WorkerLedger, error)

	ListWorkerPayments(ctx context.Context, workerID int64, limit, offset int) ([]domain.WorkerPayment, error)
}
