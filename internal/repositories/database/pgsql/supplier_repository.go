package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shopledger/shop_ledger_app/internal/apperrors"
	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	portsrepo "github.com/shopledger/shop_ledger_app/internal/core/ports/repositories"
	"github.com/shopledger/shop_ledger_app/internal/models"
	"github.com/shopledger/shop_ledger_app/internal/utils/mapping"
)

type PgxSupplierRepository struct {
	BaseRepository
	txnRepo portsrepo.TransactionWriter
}

// newPgxSupplierRepository creates a new repository for supplier master data
// and supplier disbursements.
func newPgxSupplierRepository(pool *pgxpool.Pool, txnRepo portsrepo.TransactionWriter) portsrepo.SupplierRepositoryFacade {
	return &PgxSupplierRepository{
		BaseRepository: BaseRepository{Pool: pool},
		txnRepo:        txnRepo,
	}
}

var _ portsrepo.SupplierRepositoryFacade = (*PgxSupplierRepository)(nil)

// SaveSupplier inserts a new supplier and returns its identifier.
func (r *PgxSupplierRepository) SaveSupplier(ctx context.Context, supplier domain.Supplier) (int64, error) {
	m := mapping.ToModelSupplier(supplier)
	query := `
		INSERT INTO suppliers (name, phone, address, status, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING supplier_id;
	`
	var supplierID int64
	err := r.Pool.QueryRow(ctx, query, m.Name, m.Phone, m.Address, m.Status, m.CreatedAt, m.LastUpdatedAt).Scan(&supplierID)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to insert supplier", err)
	}
	return supplierID, nil
}

// FindSupplierByID retrieves a supplier by its identifier.
func (r *PgxSupplierRepository) FindSupplierByID(ctx context.Context, supplierID int64) (*domain.Supplier, error) {
	query := `
		SELECT supplier_id, name, phone, address, status, created_at, last_updated_at
		FROM suppliers
		WHERE supplier_id = $1;
	`
	var m models.Supplier
	err := r.Pool.QueryRow(ctx, query, supplierID).Scan(
		&m.SupplierID,
		&m.Name,
		&m.Phone,
		&m.Address,
		&m.Status,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to find supplier %d", supplierID), err)
	}
	d := mapping.ToDomainSupplier(m)
	return &d, nil
}

// ListSuppliers retrieves suppliers ordered by name.
func (r *PgxSupplierRepository) ListSuppliers(ctx context.Context, activeOnly bool, limit, offset int) ([]domain.Supplier, error) {
	query := `
		SELECT supplier_id, name, phone, address, status, created_at, last_updated_at
		FROM suppliers
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
		return nil, apperrors.NewAppError(500, "failed to query suppliers", err)
	}
	defer rows.Close()

	suppliers := []models.Supplier{}
	for rows.Next() {
		var m models.Supplier
		if err := rows.Scan(&m.SupplierID, &m.Name, &m.Phone, &m.Address, &m.Status, &m.CreatedAt, &m.LastUpdatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan supplier row", err)
		}
		suppliers = append(suppliers, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating supplier rows", err)
	}

	return mapping.ToDomainSupplierSlice(suppliers), nil
}

// UpdateSupplier updates the mutable fields of a supplier.
func (r *PgxSupplierRepository) UpdateSupplier(ctx context.Context, supplier domain.Supplier) error {
	m := mapping.ToModelSupplier(supplier)
	query := `
		UPDATE suppliers
		SET name = $2, phone = $3, address = $4, last_updated_at = $5
		WHERE supplier_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, m.SupplierID, m.Name, m.Phone, m.Address, m.LastUpdatedAt)
	if err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to update supplier %d", supplier.SupplierID), err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SetSupplierStatus flips the lifecycle status of a supplier.
func (r *PgxSupplierRepository) SetSupplierStatus(ctx context.Context, supplierID int64, status domain.MasterStatus, updatedAt time.Time) error {
	query := `UPDATE suppliers SET status = $2, last_updated_at = $3 WHERE supplier_id = $1;`
	tag, err := r.Pool.Exec(ctx, query, supplierID, string(status), updatedAt)
	if err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to set status for supplier %d", supplierID), err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

const supplierPaymentInsertQuery = `
	INSERT INTO supplier_payments (supplier_id, purchase_id, amount, payment_mode, paid_at, notes)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING payment_id;
`

// InsertPaymentInTx persists a payment inside a caller-owned transaction.
func (r *PgxSupplierRepository) InsertPaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.SupplierPayment) (int64, error) {
	var paymentID int64
	err := tx.QueryRow(ctx, supplierPaymentInsertQuery,
		payment.SupplierID,
		payment.PurchaseID,
		payment.Amount,
		string(payment.PaymentMode),
		payment.PaidAt,
		payment.Notes,
	).Scan(&paymentID)
	if err != nil {
		return 0, apperrors.NewAppError(500, fmt.Sprintf("failed to insert payment for supplier %d", payment.SupplierID), err)
	}
	return paymentID, nil
}

// SavePaymentWithTransaction persists the payment and its ledger entry in
// one DB transaction, returning the payment ID.
func (r *PgxSupplierRepository) SavePaymentWithTransaction(ctx context.Context, payment domain.SupplierPayment, entry domain.Transaction) (int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer r.Rollback(ctx, tx)

	paymentID, err := r.InsertPaymentInTx(ctx, tx, payment)
	if err != nil {
		return 0, err
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

// ListPaymentsBySupplier retrieves payments newest first.
func (r *PgxSupplierRepository) ListPaymentsBySupplier(ctx context.Context, supplierID int64, limit, offset int) ([]domain.SupplierPayment, error) {
	query := `
		SELECT payment_id, supplier_id, purchase_id, amount, payment_mode, paid_at, notes
		FROM supplier_payments
		WHERE supplier_id = $1
		ORDER BY paid_at DESC, payment_id DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, supplierID, limit, offset)
	if err != nil {
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to query payments for supplier %d", supplierID), err)
	}
	defer rows.Close()

	payments := []models.SupplierPayment{}
	for rows.Next() {
		var m models.SupplierPayment
		if err := rows.Scan(&m.PaymentID, &m.SupplierID, &m.PurchaseID, &m.Amount, &m.PaymentMode, &m.PaidAt, &m.Notes); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan supplier payment row", err)
		}
		payments = append(payments, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating supplier payment rows", err)
	}

	return mapping.ToDomainSupplierPaymentSlice(payments), nil
}
