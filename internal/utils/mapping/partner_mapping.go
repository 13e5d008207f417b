package mapping

import (
	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	"github.com/shopledger/shop_ledger_app/internal/models"
)

// ToModelSupplier converts a domain Supplier to a model Supplier.
func ToModelSupplier(d domain.Supplier) models.Supplier {
	return models.Supplier{
		SupplierID:  d.SupplierID,
		Name:        d.Name,
		Phone:       d.Phone,
		Address:     d.Address,
		Status:      string(d.Status),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSupplier converts a model Supplier to a domain Supplier.
func ToDomainSupplier(m models.Supplier) domain.Supplier {
	return domain.Supplier{
		SupplierID:  m.SupplierID,
		Name:        m.Name,
		Phone:       m.Phone,
		Address:     m.Address,
		Status:      domain.MasterStatus(m.Status),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainSupplierSlice converts a slice of model Suppliers.
func ToDomainSupplierSlice(ms []models.Supplier) []domain.Supplier {
	ds := make([]domain.Supplier, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSupplier(m)
	}
	return ds
}

// ToDomainSupplierPayment converts a model SupplierPayment to its domain form.
func ToDomainSupplierPayment(m models.SupplierPayment) domain.SupplierPayment {
	return domain.SupplierPayment{
		PaymentID:   m.PaymentID,
		SupplierID:  m.SupplierID,
		PurchaseID:  m.PurchaseID,
		Amount:      m.Amount,
		PaymentMode: domain.PaymentMode(m.PaymentMode),
		PaidAt:      m.PaidAt,
		Notes:       m.Notes,
	}
}

// ToDomainSupplierPaymentSlice converts a slice of model SupplierPayments.
func ToDomainSupplierPaymentSlice(ms []models.SupplierPayment) []domain.SupplierPayment {
	ds := make([]domain.SupplierPayment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSupplierPayment(m)
	}
	return ds
}

// ToModelWorker converts a domain Worker to a model Worker.
func ToModelWorker(d domain.Worker) models.Worker {
	return models.Worker{
		WorkerID:     d.WorkerID,
		Name:         d.Name,
		Phone:        d.Phone,
		SalaryType:   string(d.SalaryType),
		SalaryAmount: d.SalaryAmount,
		DefaultRate:  d.DefaultRate,
		Status:       string(d.Status),
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainWorker converts a model Worker to a domain Worker.
func ToDomainWorker(m models.Worker) domain.Worker {
	return domain.Worker{
		WorkerID:     m.WorkerID,
		Name:         m.Name,
		Phone:        m.Phone,
		SalaryType:   domain.SalaryType(m.SalaryType),
		SalaryAmount: m.SalaryAmount,
		DefaultRate:  m.DefaultRate,
		Status:       domain.MasterStatus(m.Status),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainWorkerSlice converts a slice of model Workers.
func ToDomainWorkerSlice(ms []models.Worker) []domain.Worker {
	ds := make([]domain.Worker, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainWorker(m)
	}
	return ds
}

// ToDomainWorkerAttendance converts a model WorkerAttendance to its domain form.
func ToDomainWorkerAttendance(m models.WorkerAttendance) domain.WorkerAttendance {
	return domain.WorkerAttendance{
		AttendanceID: m.AttendanceID,
		WorkerID:     m.WorkerID,
		Date:         m.Date,
		Status:       domain.AttendanceStatus(m.Status),
		MarkedAt:     m.MarkedAt,
	}
}

// ToDomainWorkerAttendanceSlice converts a slice of model WorkerAttendances.
func ToDomainWorkerAttendanceSlice(ms []models.WorkerAttendance) []domain.WorkerAttendance {
	ds := make([]domain.WorkerAttendance, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainWorkerAttendance(m)
	}
	return ds
}

// ToDomainWorkerPayment converts a model WorkerPayment to its domain form.
func ToDomainWorkerPayment(m models.WorkerPayment) domain.WorkerPayment {
	return domain.WorkerPayment{
		PaymentID:   m.PaymentID,
		WorkerID:    m.WorkerID,
		Amount:      m.Amount,
		PaymentMode: domain.PaymentMode(m.PaymentMode),
		PaidAt:      m.PaidAt,
		Notes:       m.Notes,
	}
}

// ToDomainWorkerPaymentSlice converts a slice of model WorkerPayments.
func ToDomainWorkerPaymentSlice(ms []models.WorkerPayment) []domain.WorkerPayment {
	ds := make([]domain.WorkerPayment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainWorkerPayment(m)
	}
	return ds
}

// ToDomainPersonalTransaction converts a model PersonalTransaction to its
// domain form.
func ToDomainPersonalTransaction(m models.PersonalTransaction) domain.PersonalTransaction {
	return domain.PersonalTransaction{
		PersonalTxnID: m.PersonalTxnID,
		TxnDate:       m.TxnDate,
		Direction:     domain.Direction(m.Direction),
		Amount:        m.Amount,
		PaymentMode:   domain.PaymentMode(m.PaymentMode),
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt,
	}
}

// ToDomainPersonalTransactionSlice converts a slice of model
// PersonalTransactions.
func ToDomainPersonalTransactionSlice(ms []models.PersonalTransaction) []domain.PersonalTransaction {
	ds := make([]domain.PersonalTransaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPersonalTransaction(m)
	}
	return ds
}
