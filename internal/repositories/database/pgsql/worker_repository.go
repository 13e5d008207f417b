package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/shopledger/shop_ledger_app/internal/apperrors"
	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	portsrepo "github.com/shopledger/shop_ledger_app/internal/core/ports/repositories"
	"github.com/shopledger/shop_ledger_app/internal/models"
	"github.com/shopledger/shop_ledger_app/internal/utils/mapping"
)

type PgxWorkerRepository struct {
	BaseRepository
	txnRepo portsrepo.TransactionWriter
}

// newPgxWorkerRepository creates a new repository for worker master data,
// attendance facts and salary disbursements.
func newPgxWorkerRepository(pool *pgxpool.Pool, txnRepo portsrepo.TransactionWriter) portsrepo.WorkerRepositoryFacade {
	return &PgxWorkerRepository{
		BaseRepository: BaseRepository{Pool: pool},
		txnRepo:        txnRepo,
	}
}

var _ portsrepo.WorkerRepositoryFacade = (*PgxWorkerRepository)(nil)

// SaveWorker inserts a new worker and returns its identifier.
func (r *PgxWorkerRepository) SaveWorker(ctx context.Context, worker domain.Worker) (int64, error) {
	m := mapping.ToModelWorker(worker)
	query := `
		INSERT INTO workers (name, phone, salary_type, salary_amount, default_rate, status, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING worker_id;
	`
	var workerID int64
	err := r.Pool.QueryRow(ctx, query,
		m.Name,
		m.Phone,
		m.SalaryType,
		m.SalaryAmount,
		m.DefaultRate,
		m.Status,
		m.CreatedAt,
		m.LastUpdatedAt,
	).Scan(&workerID)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to insert worker", err)
	}
	return workerID, nil
}

// FindWorkerByID retrieves a worker by its identifier.
func (r *PgxWorkerRepository) FindWorkerByID(ctx context.Context, workerID int64) (*domain.Worker, error) {
	query := `
		SELECT worker_id, name, phone, salary_type, salary_amount, default_rate, status, created_at, last_updated_at
		FROM workers
		WHERE worker_id = $1;
	`
	var m models.Worker
	err := r.Pool.QueryRow(ctx, query, workerID).Scan(
		&m.WorkerID,
		&m.Name,
		&m.Phone,
		&m.SalaryType,
		&m.SalaryAmount,
		&m.DefaultRate,
		&m.Status,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to find worker %d", workerID), err)
	}
	d := mapping.ToDomainWorker(m)
	return &d, nil
}

// ListWorkers retrieves workers ordered by name.
func (r *PgxWorkerRepository) ListWorkers(ctx context.Context, activeOnly bool, limit, offset int) ([]domain.Worker, error) {
	query := `
		SELECT worker_id, name, phone, salary_type, salary_amount, default_rate, status, created_at, last_updated_at
		FROM workers
	`
	args := []any{}
	if activeOnly {
		query += ` WHERE status = $1 ORDER BY name LIMIT $2 OFFSET $3;`
		args = append(args, string(domain.StatusActive), limit, offset)
	} else {
		query += ` ORDER BY name LIMIT $1 OFFSET $2;`
		args = append(args, limit, offset)
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query workers", err)
	}
	defer rows.Close()

	workers := []models.Worker{}
	for rows.Next() {
		var m models.Worker
		if err := rows.Scan(&m.WorkerID, &m.Name, &m.Phone, &m.SalaryType, &m.SalaryAmount, &m.DefaultRate, &m.Status, &m.CreatedAt, &m.LastUpdatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan worker row", err)
		}
		workers = append(workers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating worker rows", err)
	}

	return mapping.ToDomainWorkerSlice(workers), nil
}

// UpdateWorker updates the mutable fields of a worker.
func (r *PgxWorkerRepository) UpdateWorker(ctx context.Context, worker domain.Worker) error {
	m := mapping.ToModelWorker(worker)
	query := `
		UPDATE workers
		SET name = $2, phone = $3, salary_type = $4, salary_amount = $5, default_rate = $6, last_updated_at = $7
		WHERE worker_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, m.WorkerID, m.Name, m.Phone, m.SalaryType, m.SalaryAmount, m.DefaultRate, m.LastUpdatedAt)
	if err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to update worker %d", worker.WorkerID), err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SetWorkerStatus flips the lifecycle status of a worker.
func (r *PgxWorkerRepository) SetWorkerStatus(ctx context.Context, workerID int64, status domain.MasterStatus, updatedAt time.Time) error {
	query := `UPDATE workers SET status = $2, last_updated_at = $3 WHERE worker_id = $1;`
	tag, err := r.Pool.Exec(ctx, query, workerID, string(status), updatedAt)
	if err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to set status for worker %d", workerID), err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpsertAttendance records a worker's status for a date. Re-marking the same
// date replaces the prior status instead of adding a second row.
func (r *PgxWorkerRepository) UpsertAttendance(ctx context.Context, attendance domain.WorkerAttendance) error {
	query := `
		INSERT INTO worker_attendance (worker_id, att_date, status, marked_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (worker_id, att_date)
		DO UPDATE SET status = EXCLUDED.status, marked_at = EXCLUDED.marked_at;
	`
	_, err := r.Pool.Exec(ctx, query, attendance.WorkerID, attendance.Date, string(attendance.Status), attendance.MarkedAt)
	if err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to upsert attendance for worker %d", attendance.WorkerID), err)
	}
	return nil
}

// ListAttendance retrieves attendance facts in [from, to] ordered by date.
func (r *PgxWorkerRepository) ListAttendance(ctx context.Context, workerID int64, from, to time.Time) ([]domain.WorkerAttendance, error) {
	query := `
		SELECT attendance_id, worker_id, att_date, status, marked_at
		FROM worker_attendance
		WHERE worker_id = $1 AND att_date >= $2 AND att_date <= $3
		ORDER BY att_date;
	`
	rows, err := r.Pool.Query(ctx, query, workerID, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to query attendance for worker %d", workerID), err)
	}
	defer rows.Close()

	facts := []models.WorkerAttendance{}
	for rows.Next() {
		var m models.WorkerAttendance
		if err := rows.Scan(&m.AttendanceID, &m.WorkerID, &m.Date, &m.Status, &m.MarkedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan attendance row", err)
		}
		facts = append(facts, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating attendance rows", err)
	}

	return mapping.ToDomainWorkerAttendanceSlice(facts), nil
}

// CountPresentDays counts PRESENT facts in [from, to].
func (r *PgxWorkerRepository) CountPresentDays(ctx context.Context, workerID int64, from, to time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM worker_attendance
		WHERE worker_id = $1 AND att_date >= $2 AND att_date <= $3 AND status = $4;
	`
	var count int
	err := r.Pool.QueryRow(ctx, query, workerID, from, to, string(domain.AttendancePresent)).Scan(&count)
	if err != nil {
		return 0, apperrors.NewAppError(500, fmt.Sprintf("failed to count present days for worker %d", workerID), err)
	}
	return count, nil
}

// SavePaymentWithTransaction persists the payment and its ledger entry in
// one DB transaction, returning the payment ID.
func (r *PgxWorkerRepository) SavePaymentWithTransaction(ctx context.Context, payment domain.WorkerPayment, entry domain.Transaction) (int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx)

	paymentQuery := `
		INSERT INTO worker_payments (worker_id, amount, payment_mode, paid_at, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING payment_id;
	`
	var paymentID int64
	err = tx.QueryRow(ctx, paymentQuery,
		payment.WorkerID,
		payment.Amount,
		string(payment.PaymentMode),
		payment.PaidAt,
		payment.Notes,
	).Scan(&paymentID)
	if err != nil {
		return 0, apperrors.NewAppError(500, fmt.Sprintf("failed to insert payment for worker %d", payment.WorkerID), err)
	}

	if entry.Reference.ID == 0 {
		entry.Reference.ID = paymentID
	}
	if _, err := r.txnRepo.InsertTransactionInTx(ctx, tx, entry); err != nil {
		return 0, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}

	return paymentID, nil
}

// ListPaymentsByWorker retrieves payments newest first.
func (r *PgxWorkerRepository) ListPaymentsByWorker(ctx context.Context, workerID int64, limit, offset int) ([]domain.WorkerPayment, error) {
	query := `
		SELECT payment_id, worker_id, amount, payment_mode, paid_at, notes
		FROM worker_payments
		WHERE worker_id = $1
		ORDER BY paid_at DESC, payment_id DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, workerID, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to query payments for worker %d", workerID), err)
	}
	defer rows.Close()

	payments := []models.WorkerPayment{}
	for rows.Next() {
		var m models.WorkerPayment
		if err := rows.Scan(&m.PaymentID, &m.WorkerID, &m.Amount, &m.PaymentMode, &m.PaidAt, &m.Notes); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan worker payment row", err)
		}
		payments = append(payments, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating worker payment rows", err)
	}

	return mapping.ToDomainWorkerPaymentSlice(payments), nil
}

// SumPaymentsByWorker totals disbursements in [from, to].
func (r *PgxWorkerRepository) SumPaymentsByWorker(ctx context.Context, workerID int64, from, to time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM worker_payments
		WHERE worker_id = $1 AND paid_at >= $2 AND paid_at <= $3;
	`
	var total decimal.Decimal
	err := r.Pool.QueryRow(ctx, query, workerID, from, to).Scan(&total)
	if err != nil {
		return decimal.Zero, apperrors.NewAppError(500, fmt.Sprintf("failed to sum payments for worker %d", workerID), err)
	}
	return total, nil
}
