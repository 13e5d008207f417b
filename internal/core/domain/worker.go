package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryType determines how a worker's earned amount is derived.
type SalaryType string

const (
	SalaryDaily   SalaryType = "DAILY"   // presentDays * DefaultRate
	SalaryMonthly SalaryType = "MONTHLY" // flat SalaryAmount per period
	SalaryPerJob  SalaryType = "PER_JOB" // entered manually at payment time
)

// Worker is an employed person. Only ACTIVE workers can be paid.
type Worker struct {
	WorkerID     int64           `json:"workerID"`
	Name         string          `json:"name"`
	Phone        string          `json:"phone"`
	SalaryType   SalaryType      `json:"salaryType"`
	SalaryAmount decimal.Decimal `json:"salaryAmount"` // monthly salary
	DefaultRate  decimal.Decimal `json:"defaultRate"`  // daily rate
	Status       MasterStatus    `json:"status"`
	AuditFields
}

// AttendanceStatus marks a worker present or absent on a given date.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "PRESENT"
	AttendanceAbsent  AttendanceStatus = "ABSENT"
)

// WorkerAttendance is a fact table row, unique per (WorkerID, Date).
// Re-marking the same date replaces the prior status.
type WorkerAttendance struct {
	AttendanceID int64            `json:"attendanceID"`
	WorkerID     int64            `json:"workerID"`
	Date         time.Time        `json:"date"` // date only, midnight UTC
	Status       AttendanceStatus `json:"status"`
	MarkedAt     time.Time        `json:"markedAt"`
}

// SalaryEstimate is the derived earned amount for a worker over a period.
// PER_JOB workers always estimate to zero; their amount is entered manually
// at payment time.
type SalaryEstimate struct {
	WorkerID    int64           `json:"workerID"`
	SalaryType  SalaryType      `json:"salaryType"`
	From        time.Time       `json:"from"`
	To          time.Time       `json:"to"`
	PresentDays int             `json:"presentDays"`
	Amount      decimal.Decimal `json:"amount"`
}

// WorkerPayment is an immutable salary disbursement record.
type WorkerPayment struct {
	PaymentID   int64           `json:"paymentID"`
	WorkerID    int64           `json:"workerID"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentMode PaymentMode     `json:"paymentMode"`
	PaidAt      time.Time       `json:"paidAt"`
	Notes       string          `json:"notes"`
}
