package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shopledger/shop_ledger_app/internal/apperrors"
	"github.com/shopledger/shop_ledger_app/internal/core/domain"
	portsrepo "github.com/shopledger/shop_ledger_app/internal/core/ports/repositories"
	"github.com/shopledger/shop_ledger_app/internal/models"
	"github.com/shopledger/shop_ledger_app/internal/utils/mapping"
)

type PgxProductRepository struct {
	BaseRepository
}

// newPgxProductRepository creates a new repository for catalog data.
func newPgxProductRepository(pool *pgxpool.Pool) portsrepo.ProductRepositoryFacade {
	return &PgxProductRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ProductRepositoryFacade = (*PgxProductRepository)(nil)

// SaveProduct inserts a new product row and returns its assigned identifier.
func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) (int64, error) {
	modelProduct := mapping.ToModelProduct(product)
	query := `
		INSERT INTO products (
			name, brand, unit, category, purchase_price, selling_price,
			warranty_months, status, created_at, last_updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING product_id;
	`
	var productID int64
	err := r.Pool.QueryRow(ctx, query,
		modelProduct.Name,
		modelProduct.Brand,
		modelProduct.Unit,
		modelProduct.Category,
		modelProduct.PurchasePrice,
		modelProduct.SellingPrice,
		modelProduct.WarrantyMonths,
		modelProduct.Status,
		modelProduct.CreatedAt,
		modelProduct.LastUpdatedAt,
	).Scan(&productID)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to insert product", err)
	}
	return productID, nil
}

// FindProductByID retrieves a product by its identifier.
func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID int64) (*domain.Product, error) {
	query := `
		SELECT product_id, name, brand, unit, category, purchase_price, selling_price,
		       warranty_months, status, created_at, last_updated_at
		FROM products
		WHERE product_id = $1;
	`
	var m models.Product
	err := r.Pool.QueryRow(ctx, query, productID).Scan(
		&m.ProductID,
		&m.Name,
		&m.Brand,
		&m.Unit,
		&m.Category,
		&m.PurchasePrice,
		&m.SellingPrice,
		&m.WarrantyMonths,
		&m.Status,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to find product %d", productID), err)
	}
	d := mapping.ToDomainProduct(m)
	return &d, nil
}

// ListProducts retrieves products ordered by name.
func (r *PgxProductRepository) ListProducts(ctx context.Context, activeOnly bool, limit, offset int) ([]domain.Product, error) {
	query := `
		SELECT product_id, name, brand, unit, category, purchase_price, selling_price,
		       warranty_months, status, created_at, last_updated_at
		FROM products
	`
	args := []any{}
	if activeOnly {
		query += ` WHERE status = $1 ORDER BY name LIMIT $2 OFFSET $3;`
		args = append(args, string(domain.StatusActive), limit, offset)
	} else {
		query += ` ORDER BY name LIMIT $1 OFFSET $2;`
		args = append(args, limit, offset)
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query products", err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var m models.Product
		if err := rows.Scan(
			&m.ProductID,
			&m.Name,
			&m.Brand,
			&m.Unit,
			&m.Category,
			&m.PurchasePrice,
			&m.SellingPrice,
			&m.WarrantyMonths,
			&m.Status,
			&m.CreatedAt,
			&m.LastUpdatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan product row", err)
		}
		products = append(products, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating product rows", err)
	}

	return mapping.ToDomainProductSlice(products), nil
}

// UpdateProduct updates the mutable fields of a product.
func (r *PgxProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	modelProduct := mapping.ToModelProduct(product)
	query := `
		UPDATE products
		SET name = $2, brand = $3, unit = $4, category = $5, purchase_price = $6,
		    selling_price = $7, warranty_months = $8, last_updated_at = $9
		WHERE product_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		modelProduct.ProductID,
		modelProduct.Name,
		modelProduct.Brand,
		modelProduct.Unit,
		modelProduct.Category,
		modelProduct.PurchasePrice,
		modelProduct.SellingPrice,
		modelProduct.WarrantyMonths,
		modelProduct.LastUpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to update product %d", product.ProductID), err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SetProductStatus flips the lifecycle status of a product.
func (r *PgxProductRepository) SetProductStatus(ctx context.Context, productID int64, status domain.MasterStatus, updatedAt time.Time) error {
	query := `UPDATE products SET status = $2, last_updated_at = $3 WHERE product_id = $1;`
	tag, err := r.Pool.Exec(ctx, query, productID, string(status), updatedAt)
	if err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to set status for product %d", productID), err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
