package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the storage representation of one immutable ledger entry.
// ReferenceType and ReferenceID together form the back-reference to the
// originating business event.
type Transaction struct {
	TransactionID int64           `json:"transactionID"`
	TxnDate       time.Time       `json:"txnDate"`
	Direction     string          `json:"direction"` // IN / OUT
	Category      string          `json:"category"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMode   string          `json:"paymentMode"`
	ReferenceType string          `json:"referenceType"`
	ReferenceID   int64           `json:"referenceID"`
	Notes         string          `json:"notes"`
	CreatedAt     time.Time       `json:"createdAt"`
}
