package redis

import (
	"context"
	"encoding/json"
	"time"

	"vas-gateway/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// TTLs for the C3 read-through cache, per spec.md §4.3.
const (
	ttlProduct           = 1 * time.Hour
	ttlProductsCategory  = 30 * time.Minute
	ttlDataBundles       = 1 * time.Hour
	ttlDataPackage       = 1 * time.Hour
	ttlActiveCategories  = 2 * time.Hour
	ttlMerchantAuth      = 5 * time.Minute
	keyActiveCategories  = "product_categories_active"
	prefixProduct        = "product:"
	prefixProductsByCat  = "products:category:"
	prefixDataBundles    = "data_bundles:"
	prefixDataPackage    = "data_package:"
	prefixMerchantAuth   = "merchant_auth:"
)

// ProductCache implements ports.ProductCache using Redis. Every read is
// best-effort: a Redis error degrades silently to a cache miss so the
// caller falls through to the database, per spec.md's cache failure policy.
type ProductCache struct {
	client *goredis.Client
	log    zerolog.Logger
}

// NewProductCache creates a new Redis-backed product/auth cache.
func NewProductCache(client *goredis.Client, log zerolog.Logger) *ProductCache {
	return &ProductCache{client: client, log: log}
}

func (c *ProductCache) getJSON(ctx context.Context, key string, out interface{}) bool {
	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != goredis.Nil {
			c.log.Warn().Err(err).Str("key", key).Msg("product cache: get failed, falling through to database")
		}
		return false
	}
	if err := json.Unmarshal(val, out); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("product cache: corrupt entry, falling through to database")
		return false
	}
	return true
}

func (c *ProductCache) setJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	b, err := json.Marshal(value)
	if err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("product cache: marshal failed")
		return
	}
	if err := c.client.Set(ctx, key, b, ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("product cache: set failed")
	}
}

func (c *ProductCache) GetProduct(ctx context.Context, code string) (*domain.Product, bool) {
	var p domain.Product
	if !c.getJSON(ctx, prefixProduct+code, &p) {
		return nil, false
	}
	return &p, true
}

func (c *ProductCache) SetProduct(ctx context.Context, p *domain.Product) {
	c.setJSON(ctx, prefixProduct+p.Code, p, ttlProduct)
}

func (c *ProductCache) GetProductsByCategory(ctx context.Context, categoryCode string) ([]domain.Product, bool) {
	var ps []domain.Product
	if !c.getJSON(ctx, prefixProductsByCat+categoryCode, &ps) {
		return nil, false
	}
	return ps, true
}

func (c *ProductCache) SetProductsByCategory(ctx context.Context, categoryCode string, products []domain.Product) {
	c.setJSON(ctx, prefixProductsByCat+categoryCode, products, ttlProductsCategory)
}

func (c *ProductCache) dataBundlesKey(productCode, providerCode string) string {
	return prefixDataBundles + productCode + ":" + providerCode
}

func (c *ProductCache) GetDataBundles(ctx context.Context, productCode, providerCode string) ([]domain.DataPackage, bool) {
	var pkgs []domain.DataPackage
	if !c.getJSON(ctx, c.dataBundlesKey(productCode, providerCode), &pkgs) {
		return nil, false
	}
	return pkgs, true
}

func (c *ProductCache) SetDataBundles(ctx context.Context, productCode, providerCode string, bundles []domain.DataPackage) {
	c.setJSON(ctx, c.dataBundlesKey(productCode, providerCode), bundles, ttlDataBundles)
}

func (c *ProductCache) dataPackageKey(productCode, dataCode, providerCode string) string {
	return prefixDataPackage + productCode + ":" + dataCode + ":" + providerCode
}

func (c *ProductCache) GetDataPackage(ctx context.Context, productCode, dataCode, providerCode string) (*domain.DataPackage, bool) {
	var pkg domain.DataPackage
	if !c.getJSON(ctx, c.dataPackageKey(productCode, dataCode, providerCode), &pkg) {
		return nil, false
	}
	return &pkg, true
}

func (c *ProductCache) SetDataPackage(ctx context.Context, productCode, dataCode, providerCode string, pkg *domain.DataPackage) {
	c.setJSON(ctx, c.dataPackageKey(productCode, dataCode, providerCode), pkg, ttlDataPackage)
}

func (c *ProductCache) GetActiveCategories(ctx context.Context) ([]domain.ProductCategory, bool) {
	var cats []domain.ProductCategory
	if !c.getJSON(ctx, keyActiveCategories, &cats) {
		return nil, false
	}
	return cats, true
}

func (c *ProductCache) SetActiveCategories(ctx context.Context, categories []domain.ProductCategory) {
	c.setJSON(ctx, keyActiveCategories, categories, ttlActiveCategories)
}

func (c *ProductCache) GetMerchantAuth(ctx context.Context, merchantCode string) (*domain.Merchant, bool) {
	var m domain.Merchant
	if !c.getJSON(ctx, prefixMerchantAuth+merchantCode, &m) {
		return nil, false
	}
	return &m, true
}

func (c *ProductCache) SetMerchantAuth(ctx context.Context, merchant *domain.Merchant) {
	c.setJSON(ctx, prefixMerchantAuth+merchant.MerchantCode, merchant, ttlMerchantAuth)
}

func (c *ProductCache) InvalidateProduct(ctx context.Context, code string) {
	if err := c.client.Del(ctx, prefixProduct+code).Err(); err != nil {
		c.log.Warn().Err(err).Str("code", code).Msg("product cache: invalidate product failed")
	}
}

func (c *ProductCache) InvalidateCategories(ctx context.Context) {
	if err := c.client.Del(ctx, keyActiveCategories).Err(); err != nil {
		c.log.Warn().Err(err).Msg("product cache: invalidate categories failed")
	}
}
