package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PersonalTransaction is a private, non-business cash movement. It still
// mirrors into the ledger under category PERSONAL so overall cash-flow
// reporting stays complete.
type PersonalTransaction struct {
	PersonalTxnID int64           `json:"personalTxnID"`
	TxnDate       time.Time       `json:"txnDate"`
	Direction     Direction       `json:"direction"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMode   PaymentMode     `json:"paymentMode"`
	Notes         string          `json:"notes"`
	CreatedAt     time.Time       `json:"createdAt"`
}
