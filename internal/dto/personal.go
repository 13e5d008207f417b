package dto

import (
	"time"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordPersonalTxnRequest defines the payload for a private cash movement.
type RecordPersonalTxnRequest struct {
	Direction   string          `json:"direction" binding:"required,direction"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	PaymentMode string          `json:"paymentMode" binding:"omitempty,paymentmode"`
	TxnDate     *time.Time      `json:"txnDate,omitempty"`
	Notes       string          `json:"notes"`
}

// PersonalTxnResponse defines the data returned for a personal transaction.
type PersonalTxnResponse struct {
	PersonalTxnID int64           `json:"personalTxnID"`
	TxnDate       time.Time       `json:"txnDate"`
	Direction     string          `json:"direction"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMode   string          `json:"paymentMode"`
	Notes         string          `json:"notes"`
}

// ToPersonalTxnResponse converts a domain.PersonalTransaction.
func ToPersonalTxnResponse(p *domain.PersonalTransaction) PersonalTxnResponse {
	return PersonalTxnResponse{
		PersonalTxnID: p.PersonalTxnID,
		TxnDate:       p.TxnDate,
		Direction:     string(p.Direction),
		Amount:        p.Amount,
		PaymentMode:   string(p.PaymentMode),
		Notes:         p.Notes,
	}
}

// ToPersonalTxnResponses converts a slice of domain.PersonalTransaction.
func ToPersonalTxnResponses(personals []domain.PersonalTransaction) []PersonalTxnResponse {
	responses := make([]PersonalTxnResponse, len(personals))
	for i := range personals {
		responses[i] = ToPersonalTxnResponse(&personals[i])
	}
	return responses
}
