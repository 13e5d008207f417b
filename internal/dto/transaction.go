package dto

import (
	"time"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListTransactionsParams narrows and paginates a ledger listing.
type ListTransactionsParams struct {
	From      *time.Time `form:"from" time_format:"2006-01-02"`
	To        *time.Time `form:"to" time_format:"2006-01-02"`
	Direction *string    `form:"direction" binding:"omitempty,direction"`
	Category  *string    `form:"category"`
	Limit     int        `form:"limit"`
	NextToken *string    `form:"nextToken"`
}

// TransactionResponse defines the data returned for a ledger entry.
type TransactionResponse struct {
	TransactionID int64           `json:"transactionID"`
	TxnDate       time.Time       `json:"txnDate"`
	Direction     string          `json:"direction"`
	Category      string          `json:"category"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMode   string          `json:"paymentMode"`
	ReferenceType string          `json:"referenceType"`
	ReferenceID   int64           `json:"referenceID"`
	Notes         string          `json:"notes"`
}

// ListTransactionsResponse is a ledger page plus the token for the next one.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ReferenceOriginResponse describes the entity a ledger entry points back to.
type ReferenceOriginResponse struct {
	ReferenceType string `json:"referenceType"`
	ReferenceID   int64  `json:"referenceID"`
	Description   string `json:"description"`
}

// ToTransactionResponse converts a domain.Transaction.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		TxnDate:       t.TxnDate,
		Direction:     string(t.Direction),
		Category:      string(t.Category),
		Amount:        t.Amount,
		PaymentMode:   string(t.PaymentMode),
		ReferenceType: string(t.Reference.Type),
		ReferenceID:   t.Reference.ID,
		Notes:         t.Notes,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}
