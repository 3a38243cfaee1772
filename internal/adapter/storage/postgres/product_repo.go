package postgres

import (
	"context"
	"errors"
	"fmt"

	"vas-gateway/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// ProductRepo implements ports.ProductRepository.
type ProductRepo struct {
	pool Pool
}

// NewProductRepo creates a new ProductRepo.
func NewProductRepo(pool Pool) *ProductRepo {
	return &ProductRepo{pool: pool}
}

const productColumns = `code, name, category_code, provider_code, min_amount, max_amount, is_active, created_at, updated_at`

// GetByCode fetches a single product by its code.
func (r *ProductRepo) GetByCode(ctx context.Context, code string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE code = $1 AND is_active = TRUE`
	p := &domain.Product{}
	err := r.pool.QueryRow(ctx, query, code).Scan(
		&p.Code, &p.Name, &p.CategoryCode, &p.ProviderCode, &p.MinAmount, &p.MaxAmount, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by code: %w", err)
	}
	return p, nil
}

// ListByCategory lists active products under a category.
func (r *ProductRepo) ListByCategory(ctx context.Context, categoryCode string) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE category_code = $1 AND is_active = TRUE ORDER BY code`
	rows, err := r.pool.Query(ctx, query, categoryCode)
	if err != nil {
		return nil, fmt.Errorf("list products by category: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.Code, &p.Name, &p.CategoryCode, &p.ProviderCode, &p.MinAmount, &p.MaxAmount, &p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// ListActiveCategories lists every active product category.
func (r *ProductRepo) ListActiveCategories(ctx context.Context) ([]domain.ProductCategory, error) {
	query := `SELECT code, name, is_active, created_at FROM product_categories WHERE is_active = TRUE ORDER BY code`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list active categories: %w", err)
	}
	defer rows.Close()

	var cats []domain.ProductCategory
	for rows.Next() {
		var c domain.ProductCategory
		if err := rows.Scan(&c.Code, &c.Name, &c.IsActive, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category row: %w", err)
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

const dataPackageColumns = `data_code, product_code, provider_code, name, price, validity_days, is_active, created_at`

// GetDataPackage fetches a single data bundle by product, data code, and provider.
func (r *ProductRepo) GetDataPackage(ctx context.Context, productCode, dataCode, providerCode string) (*domain.DataPackage, error) {
	query := `SELECT ` + dataPackageColumns + ` FROM data_packages
		WHERE product_code = $1 AND data_code = $2 AND provider_code = $3 AND is_active = TRUE`
	p := &domain.DataPackage{}
	err := r.pool.QueryRow(ctx, query, productCode, dataCode, providerCode).Scan(
		&p.DataCode, &p.ProductCode, &p.ProviderCode, &p.Name, &p.Price, &p.ValidityDays, &p.IsActive, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get data package: %w", err)
	}
	return p, nil
}

// ListDataBundles lists every active data bundle for a product/provider pair.
func (r *ProductRepo) ListDataBundles(ctx context.Context, productCode, providerCode string) ([]domain.DataPackage, error) {
	query := `SELECT ` + dataPackageColumns + ` FROM data_packages
		WHERE product_code = $1 AND provider_code = $2 AND is_active = TRUE ORDER BY price`
	rows, err := r.pool.Query(ctx, query, productCode, providerCode)
	if err != nil {
		return nil, fmt.Errorf("list data bundles: %w", err)
	}
	defer rows.Close()

	var pkgs []domain.DataPackage
	for rows.Next() {
		var p domain.DataPackage
		if err := rows.Scan(&p.DataCode, &p.ProductCode, &p.ProviderCode, &p.Name, &p.Price, &p.ValidityDays, &p.IsActive, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan data package row: %w", err)
		}
		pkgs = append(pkgs, p)
	}
	return pkgs, rows.Err()
}
