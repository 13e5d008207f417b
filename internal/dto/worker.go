package dto

import (
	"time"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateWorkerRequest defines the payload for adding a worker.
type CreateWorkerRequest struct {
	Name         string          `json:"name" binding:"required"`
	Phone        string          `json:"phone"`
	SalaryType   string          `json:"salaryType" binding:"required,salarytype"`
	SalaryAmount decimal.Decimal `json:"salaryAmount"`
	DefaultRate  decimal.Decimal `json:"defaultRate"`
}

// UpdateWorkerRequest defines the partial-update payload for a worker.
type UpdateWorkerRequest struct {
	Name         *string          `json:"name,omitempty"`
	Phone        *string          `json:"phone,omitempty"`
	SalaryType   *string          `json:"salaryType,omitempty" binding:"omitempty,salarytype"`
	SalaryAmount *decimal.Decimal `json:"salaryAmount,omitempty"`
	DefaultRate  *decimal.Decimal `json:"defaultRate,omitempty"`
}

// MarkAttendanceRequest records a worker's presence for one date.
type MarkAttendanceRequest struct {
	Date   string `json:"date" binding:"required,datetime=2006-01-02"`
	Status string `json:"status" binding:"required,oneof=PRESENT ABSENT"`
}

// PayWorkerRequest defines the payload for the worker payment orchestration.
type PayWorkerRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	PaymentMode string          `json:"paymentMode" binding:"omitempty,paymentmode"`
	Notes       string          `json:"notes"`
}

// WorkerResponse defines the data returned for a worker.
type WorkerResponse struct {
	WorkerID     int64           `json:"workerID"`
	Name         string          `json:"name"`
	Phone        string          `json:"phone"`
	SalaryType   string          `json:"salaryType"`
	SalaryAmount decimal.Decimal `json:"salaryAmount"`
	DefaultRate  decimal.Decimal `json:"defaultRate"`
	Status       string          `json:"status"`
}

// AttendanceResponse defines the data returned for one attendance fact.
type AttendanceResponse struct {
	AttendanceID int64     `json:"attendanceID"`
	WorkerID     int64     `json:"workerID"`
	Date         string    `json:"date"`
	Status       string    `json:"status"`
	MarkedAt     time.Time `json:"markedAt"`
}

// SalaryEstimateResponse defines the derived salary for a period.
type SalaryEstimateResponse struct {
	WorkerID    int64           `json:"workerID"`
	SalaryType  string          `json:"salaryType"`
	From        time.Time       `json:"from"`
	To          time.Time       `json:"to"`
	PresentDays int             `json:"presentDays"`
	Amount      decimal.Decimal `json:"amount"`
}

// WorkerLedgerResponse defines accrued-vs-paid for a period.
type WorkerLedgerResponse struct {
	WorkerID      int64           `json:"workerID"`
	From          time.Time       `json:"from"`
	To            time.Time       `json:"to"`
	PresentDays   int             `json:"presentDays"`
	AccruedSalary decimal.Decimal `json:"accruedSalary"`
	TotalPaid     decimal.Decimal `json:"totalPaid"`
	Balance       decimal.Decimal `json:"balance"`
}

// WorkerPaymentResponse defines the data returned for a disbursement.
type WorkerPaymentResponse struct {
	PaymentID   int64           `json:"paymentID"`
	WorkerID    int64           `json:"workerID"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentMode string          `json:"paymentMode"`
	PaidAt      time.Time       `json:"paidAt"`
	Notes       string          `json:"notes"`
}

// ToWorkerResponse converts a domain.Worker.
func ToWorkerResponse(w *domain.Worker) WorkerResponse {
	return WorkerResponse{
		WorkerID:     w.WorkerID,
		Name:         w.Name,
		Phone:        w.Phone,
		SalaryType:   string(w.SalaryType),
		SalaryAmount: w.SalaryAmount,
		DefaultRate:  w.DefaultRate,
		Status:       string(w.Status),
	}
}

// ToWorkerResponses converts a slice of domain.Worker.
func ToWorkerResponses(workers []domain.Worker) []WorkerResponse {
	responses := make([]WorkerResponse, len(workers))
	for i := range workers {
		responses[i] = ToWorkerResponse(&workers[i])
	}
	return responses
}

// ToAttendanceResponse converts a domain.WorkerAttendance.
func ToAttendanceResponse(a *domain.WorkerAttendance) AttendanceResponse {
	return AttendanceResponse{
		AttendanceID: a.AttendanceID,
		WorkerID:     a.WorkerID,
		Date:         a.Date.Format("2006-01-02"),
		Status:       string(a.Status),
		MarkedAt:     a.MarkedAt,
	}
}

// ToAttendanceResponses converts a slice of domain.WorkerAttendance.
func ToAttendanceResponses(attendance []domain.WorkerAttendance) []AttendanceResponse {
	responses := make([]AttendanceResponse, len(attendance))
	for i := range attendance {
		responses[i] = ToAttendanceResponse(&attendance[i])
	}
	return responses
}

// ToSalaryEstimateResponse converts a domain.SalaryEstimate.
func ToSalaryEstimateResponse(e *domain.SalaryEstimate) SalaryEstimateResponse {
	return SalaryEstimateResponse{
		WorkerID:    e.WorkerID,
		SalaryType:  string(e.SalaryType),
		From:        e.From,
		To:          e.To,
		PresentDays: e.PresentDays,
		Amount:      e.Amount,
	}
}

// ToWorkerLedgerResponse converts a domain.WorkerLedger.
func ToWorkerLedgerResponse(l *domain.WorkerLedger) WorkerLedgerResponse {
	return WorkerLedgerResponse{
		WorkerID:      l.WorkerID,
		From:          l.From,
		To:            l.To,
		PresentDays:   l.PresentDays,
		AccruedSalary: l.AccruedSalary,
		TotalPaid:     l.TotalPaid,
		Balance:       l.Balance,
	}
}

// ToWorkerPaymentResponse converts a domain.WorkerPayment.
func ToWorkerPaymentResponse(p *domain.WorkerPayment) WorkerPaymentResponse {
	return WorkerPaymentResponse{
		PaymentID:   p.PaymentID,
		WorkerID:    p.WorkerID,
		Amount:      p.Amount,
		PaymentMode: string(p.PaymentMode),
		PaidAt:      p.PaidAt,
		Notes:       p.Notes,
	}
}

// ToWorkerPaymentResponses converts a slice of domain.WorkerPayment.
func ToWorkerPaymentResponses(payments []domain.WorkerPayment) []WorkerPaymentResponse {
	responses := make([]WorkerPaymentResponse, len(payments))
	for i := range payments {
		responses[i] = ToWorkerPaymentResponse(&payments[i])
	}
	return responses
}
