package domain_test

import (
	"testing"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDerivePurchaseStatus(t *testing.T) {
	testCases := []struct {
		name     string
		total    string
		paid     string
		expected domain.PurchaseStatus
	}{
		{"nothing paid", "100", "0", domain.PurchaseCreated},
		{"negative paid treated as unpaid", "100", "-5", domain.PurchaseCreated},
		{"partially paid", "100", "40", domain.PurchasePartiallyPaid},
		{"fully paid", "100", "100", domain.PurchasePaid},
		{"overpaid still paid", "100", "120", domain.PurchasePaid},
		{"zero total with payment", "0", "10", domain.PurchasePaid},
		{"fractional partial", "70.50", "70.49", domain.PurchasePartiallyPaid},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			total := decimal.RequireFromString(tc.total)
			paid := decimal.RequireFromString(tc.paid)
			assert.Equal(t, tc.expected, domain.DerivePurchaseStatus(total, paid))
		})
	}
}
