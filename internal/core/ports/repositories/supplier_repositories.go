package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopledger/shop_ledger_app/internal/core/domain"
)

// SupplierReader defines read operations for supplier master data.
type SupplierReader interface {
	// FindSupplierByID retrieves a supplier by its identifier.
	FindSupplierByID(ctx context.Context, supplierID int64) (*domain.Supplier, error)

	// ListSuppliers retrieves suppliers ordered by name; activeOnly excludes
	// INACTIVE suppliers from picker listings.
	ListSuppliers(ctx context.Context, activeOnly bool, limit, offset int) ([]domain.Supplier, error)
}

// SupplierWriter defines write operations for supplier master data.
type SupplierWriter interface {
	// SaveSupplier persists a new supplier and returns its identifier.
	SaveSupplier(ctx context.Context, supplier domain.Supplier) (int64, error)

	// UpdateSupplier updates the mutable fields of a supplier.
	UpdateSupplier(ctx context.Context, supplier domain.Supplier) error

	// SetSupplierStatus flips the lifecycle status (never deletes).
	SetSupplierStatus(ctx context.Context, supplierID int64, status domain.MasterStatus, updatedAt time.Time) error
}

// SupplierPaymentReader defines read operations for supplier disbursements.
type SupplierPaymentReader interface {
	// ListPaymentsBySupplier retrieves payments newest first.
	ListPaymentsBySupplier(ctx context.Context, supplierID int64, limit, offset int) ([]domain.SupplierPayment, error)
}

// SupplierPaymentWriter defines supplier disbursement writes.
type SupplierPaymentWriter interface {
	// SavePaymentWithTransaction persists the payment and its PURCHASE/OUT
	// ledger entry in one database transaction, returning the payment ID.
	SavePaymentWithTransaction(ctx context.Context, payment domain.SupplierPayment, entry domain.Transaction) (int64, error)

	// InsertPaymentInTx persists a payment inside a caller-owned transaction
	// (purchase orchestration).
	InsertPaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.SupplierPayment) (int64, error)
}

// SupplierRepositoryFacade combines all supplier repository interfaces.
type SupplierRepositoryFacade interface {
	SupplierReader
	SupplierWriter
	SupplierPaymentReader
	SupplierPaymentWriter
}
