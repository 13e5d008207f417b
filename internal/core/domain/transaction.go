package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TxnCategory classifies a ledger entry by the business event that caused it.
type TxnCategory string

const (
	CategorySale       TxnCategory = "SALE"
	CategoryPurchase   TxnCategory = "PURCHASE"
	CategorySalary     TxnCategory = "SALARY"
	CategoryExpense    TxnCategory = "EXPENSE"
	CategoryAdjustment TxnCategory = "ADJUSTMENT"
	CategoryAdvance    TxnCategory = "ADVANCE"
	CategoryPersonal   TxnCategory = "PERSONAL"
)

// ReferenceType identifies the kind of entity a ledger entry points back to.
// The set is closed; ResolveReference in the ledger service switches over it
// exhaustively.
type ReferenceType string

const (
	RefSale            ReferenceType = "SALE"
	RefPurchase        ReferenceType = "PURCHASE"
	RefOrder           ReferenceType = "ORDER"
	RefSupplierPayment ReferenceType = "SUPPLIER_PAYMENT"
	RefWorkerPayment   ReferenceType = "WORKER_PAYMENT"
	RefPersonal        ReferenceType = "PERSONAL"
	RefStockAdjustment ReferenceType = "STOCK_ADJUSTMENT"
)

// Reference is the discriminated back-reference from a ledger entry to the
// event that produced it. It is a lookup aid, never an ownership link.
type Reference struct {
	Type ReferenceType `json:"type"`
	ID   int64         `json:"id"`
}

// Transaction is one immutable ledger entry. Amount is always non-negative;
// Direction encodes the sign.
type Transaction struct {
	TransactionID int64           `json:"transactionID"`
	TxnDate       time.Time       `json:"txnDate"`
	Direction     Direction       `json:"direction"`
	Category      TxnCategory     `json:"category"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMode   PaymentMode     `json:"paymentMode"`
	Reference     Reference       `json:"reference"`
	Notes         string          `json:"notes"`
	CreatedAt     time.Time       `json:"createdAt"`
}
