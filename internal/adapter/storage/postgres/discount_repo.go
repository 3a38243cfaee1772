package postgres

import (
	"context"
	"fmt"

	"vas-gateway/internal/core/domain"

	"github.com/google/uuid"
)

// DiscountRepo implements ports.DiscountRepository.
type DiscountRepo struct {
	pool Pool
}

// NewDiscountRepo creates a new DiscountRepo.
func NewDiscountRepo(pool Pool) *DiscountRepo {
	return &DiscountRepo{pool: pool}
}

// ListActiveForProduct lists every active discount rule a merchant has for
// a product. The vending coordinator aggregates these by MAX, not sum.
func (r *DiscountRepo) ListActiveForProduct(ctx context.Context, merchantID uuid.UUID, productCode string) ([]domain.MerchantDiscount, error) {
	query := `SELECT id, merchant_id, product_code, type, value, is_active, created_at, updated_at
		FROM merchant_discounts WHERE merchant_id = $1 AND product_code = $2 AND is_active = TRUE`

	rows, err := r.pool.Query(ctx, query, merchantID, productCode)
	if err != nil {
		return nil, fmt.Errorf("list active discounts: %w", err)
	}
	defer rows.Close()

	var discounts []domain.MerchantDiscount
	for rows.Next() {
		var d domain.MerchantDiscount
		if err := rows.Scan(&d.ID, &d.MerchantID, &d.ProductCode, &d.Type, &d.Value, &d.IsActive, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan discount row: %w", err)
		}
		discounts = append(discounts, d)
	}
	return discounts, rows.Err()
}
