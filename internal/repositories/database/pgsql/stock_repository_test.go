package pgsql

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/shopledger/shop_ledger_app/internal/core/domain"
)

// The no-lost-update guarantee lives in the upsert SQL, not in Go code, so
// these tests need a real database. Point TEST_PGSQL_URL at a migrated
// database to enable them; they skip otherwise.
func stockTestRepo(t *testing.T) (*PgxStockRepository, *pgxpool.Pool) {
	t.Helper()
	url := os.Getenv("TEST_PGSQL_URL")
	if url == "" {
		t.Skip("TEST_PGSQL_URL not set")
	}
	pool, err := pgxpool.New(context.Background(), url)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	txnRepo := newPgxTransactionRepository(pool)
	return newPgxStockRepository(pool, txnRepo).(*PgxStockRepository), pool
}

func createStockTestProduct(t *testing.T, pool *pgxpool.Pool) int64 {
	t.Helper()
	ctx := context.Background()

	var productID int64
	err := pool.QueryRow(ctx, `
		INSERT INTO products (name, created_at, last_updated_at)
		VALUES ($1, now(), now())
		RETURNING product_id;
	`, "stock test product "+t.Name()).Scan(&productID)
	require.NoError(t, err)

	t.Cleanup(func() {
		_, _ = pool.Exec(ctx, `
			DELETE FROM transactions
			WHERE reference_type = 'STOCK_ADJUSTMENT'
			  AND reference_id IN (SELECT adjustment_id FROM stock_adjustments WHERE product_id = $1);
		`, productID)
		_, _ = pool.Exec(ctx, `DELETE FROM stock_adjustments WHERE product_id = $1;`, productID)
		_, _ = pool.Exec(ctx, `DELETE FROM stocks WHERE product_id = $1;`, productID)
		_, _ = pool.Exec(ctx, `DELETE FROM products WHERE product_id = $1;`, productID)
	})

	return productID
}

func TestApplyStockDelta_ConcurrentIncrementsLoseNothing(t *testing.T) {
	repo, pool := stockTestRepo(t)
	productID := createStockTestProduct(t, pool)
	ctx := context.Background()

	const workers = 20
	errs := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- repo.ApplyStockDelta(ctx, productID, decimal.NewFromInt(1), "concurrent count", time.Now())
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	stock, err := repo.FindStockByProductID(ctx, productID)
	require.NoError(t, err)
	require.True(t, stock.QuantityOnHand.Equal(decimal.NewFromInt(workers)),
		"expected %d on hand, got %s", workers, stock.QuantityOnHand)

	adjustments, err := repo.ListAdjustmentsByProduct(ctx, productID, workers+1, 0)
	require.NoError(t, err)
	require.Len(t, adjustments, workers)
}

func TestApplyStockDelta_InThenOutLeavesZero(t *testing.T) {
	repo, pool := stockTestRepo(t)
	productID := createStockTestProduct(t, pool)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	require.NoError(t, repo.ApplyStockDelta(ctx, productID, decimal.NewFromInt(5), "received", now))
	require.NoError(t, repo.ApplyStockDelta(ctx, productID, decimal.NewFromInt(-5), "shipped", now.Add(time.Minute)))

	stock, err := repo.FindStockByProductID(ctx, productID)
	require.NoError(t, err)
	require.True(t, stock.QuantityOnHand.IsZero(), "expected zero on hand, got %s", stock.QuantityOnHand)

	adjustments, err := repo.ListAdjustmentsByProduct(ctx, productID, 10, 0)
	require.NoError(t, err)
	require.Len(t, adjustments, 2)

	// Newest first.
	require.Equal(t, domain.DirectionOut, adjustments[0].Direction)
	require.True(t, adjustments[0].Quantity.Equal(decimal.NewFromInt(5)))
	require.Equal(t, domain.DirectionIn, adjustments[1].Direction)
	require.True(t, adjustments[1].Quantity.Equal(decimal.NewFromInt(5)))
}

func TestApplyAdjustmentWithEntry_LinksEntryToAuditRow(t *testing.T) {
	repo, pool := stockTestRepo(t)
	productID := createStockTestProduct(t, pool)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	entry := &domain.Transaction{
		TxnDate:     now,
		Direction:   domain.DirectionOut,
		Category:    domain.CategoryAdjustment,
		Amount:      decimal.NewFromInt(300),
		PaymentMode: domain.ModeCash,
		Reference:   domain.Reference{Type: domain.RefStockAdjustment},
		Notes:       "shrinkage",
		CreatedAt:   now,
	}

	adjustmentID, err := repo.ApplyAdjustmentWithEntry(ctx, productID, decimal.NewFromInt(-1), "shrinkage", now, entry)
	require.NoError(t, err)
	require.Positive(t, adjustmentID)

	var refID int64
	err = pool.QueryRow(ctx, `
		SELECT reference_id FROM transactions
		WHERE reference_type = 'STOCK_ADJUSTMENT' AND reference_id = $1;
	`, adjustmentID).Scan(&refID)
	require.NoError(t, err)
	require.Equal(t, adjustmentID, refID)
}
