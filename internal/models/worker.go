package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Worker is the storage representation of an employed person.
type Worker struct {
	WorkerID     int64           `json:"workerID"`
	Name         string          `json:"name"`
	Phone        string          `json:"phone"`
	SalaryType   string          `json:"salaryType"` // DAILY / MONTHLY / PER_JOB
	SalaryAmount decimal.Decimal `json:"salaryAmount"`
	DefaultRate  decimal.Decimal `json:"defaultRate"`
	Status       string          `json:"status"` // ACTIVE / INACTIVE
	AuditFields
}

// WorkerAttendance is the storage representation of one attendance fact.
// The table carries a unique constraint on (worker_id, att_date).
type WorkerAttendance struct {
	AttendanceID int64     `json:"attendanceID"`
	WorkerID     int64     `json:"workerID"`
	Date         time.Time `json:"date"`
	Status       string    `json:"status"` // PRESENT / ABSENT
	MarkedAt     time.Time `json:"markedAt"`
}

// WorkerPayment is the storage representation of one salary disbursement.
type WorkerPayment struct {
	PaymentID   int64           `json:"paymentID"`
	WorkerID    int64           `json:"workerID"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentMode string          `json:"paymentMode"`
	PaidAt      time.Time       `json:"paidAt"`
	Notes       string          `json:"notes"`
}
