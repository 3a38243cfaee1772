package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductCategory groups products (e.g. "AIRTIME", "DATA") for catalog
// browsing via getProductCategories.
type ProductCategory struct {
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// Product represents a vendable airtime/data product (e.g. MTNVTU,
// GLODATA) tied to a provider.
type Product struct {
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	CategoryCode string          `json:"category_code"`
	ProviderCode string          `json:"provider_code"`
	MinAmount    decimal.Decimal `json:"min_amount"`
	MaxAmount    decimal.Decimal `json:"max_amount"`
	IsActive     bool            `json:"is_active"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// WithinRange reports whether amount is inside [MinAmount, MaxAmount].
func (p *Product) WithinRange(amount decimal.Decimal) bool {
	return amount.GreaterThanOrEqual(p.MinAmount) && amount.LessThanOrEqual(p.MaxAmount)
}

// DataPackage represents a specific data bundle (e.g. "1GB-30DAYS") sold
// under a data Product via a specific provider.
type DataPackage struct {
	DataCode     string          `json:"data_code"`
	ProductCode  string          `json:"product_code"`
	ProviderCode string          `json:"provider_code"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	ValidityDays int             `json:"validity_days"`
	IsActive     bool            `json:"is_active"`
	CreatedAt    time.Time       `json:"created_at"`
}
