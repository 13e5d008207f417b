package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PersonalTransaction is the storage representation of a private cash
// movement.
type PersonalTransaction struct {
	PersonalTxnID int64           `json:"personalTxnID"`
	TxnDate       time.Time       `json:"txnDate"`
	Direction     string          `json:"direction"` // IN / OUT
	Amount        decimal.Decimal `json:"amount"`
	PaymentMode   string          `json:"paymentMode"`
	Notes         string          `json:"notes"`
	CreatedAt     time.Time       `json:"createdAt"`
}
