package mapping

import (
	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	"github.com/shopledger/shop_ledger_app/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		TxnDate:       d.TxnDate,
		Direction:     string(d.Direction),
		Category:      string(d.Category),
		Amount:        d.Amount,
		PaymentMode:   string(d.PaymentMode),
		ReferenceType: string(d.Reference.Type),
		ReferenceID:   d.Reference.ID,
		Notes:         d.Notes,
		CreatedAt:     d.CreatedAt,
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		TxnDate:       m.TxnDate,
		Direction:     domain.Direction(m.Direction),
		Category:      domain.TxnCategory(m.Category),
		Amount:        m.Amount,
		PaymentMode:   domain.PaymentMode(m.PaymentMode),
		Reference: domain.Reference{
			Type: domain.ReferenceType(m.ReferenceType),
			ID:   m.ReferenceID,
		},
		Notes:     m.Notes,
		CreatedAt: m.CreatedAt,
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions.
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
