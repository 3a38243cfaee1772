package service

import (
	"context"
	"fmt"

	"vas-gateway/internal/core/domain"
	"vas-gateway/internal/core/ports"
	"vas-gateway/pkg/apperror"
)

// ProductServiceImpl implements ports.ProductService (C3): the read-through
// catalog lookups backing getProductCategories, getProducts, and
// getDataBundle. Every read checks the Redis cache first and populates it
// on a miss, mirroring VendingCoordinatorImpl.resolveProduct.
type ProductServiceImpl struct {
	productRepo ports.ProductRepository
	cache       ports.ProductCache
}

// NewProductService creates a new ProductServiceImpl.
func NewProductService(productRepo ports.ProductRepository, cache ports.ProductCache) *ProductServiceImpl {
	return &ProductServiceImpl{productRepo: productRepo, cache: cache}
}

// GetProductCategories returns the active product categories.
func (s *ProductServiceImpl) GetProductCategories(ctx context.Context) ([]domain.ProductCategory, error) {
	if s.cache != nil {
		if categories, ok := s.cache.GetActiveCategories(ctx); ok {
			return categories, nil
		}
	}

	categories, err := s.productRepo.ListActiveCategories(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list categories: %w", err))
	}
	if s.cache != nil {
		s.cache.SetActiveCategories(ctx, categories)
	}
	return categories, nil
}

// GetProducts returns the active products under categoryCode.
func (s *ProductServiceImpl) GetProducts(ctx context.Context, categoryCode string) ([]domain.Product, error) {
	if s.cache != nil {
		if products, ok := s.cache.GetProductsByCategory(ctx, categoryCode); ok {
			return products, nil
		}
	}

	products, err := s.productRepo.ListByCategory(ctx, categoryCode)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list products: %w", err))
	}
	if len(products) == 0 {
		return nil, apperror.ErrNoDataFound("products")
	}
	if s.cache != nil {
		s.cache.SetProductsByCategory(ctx, categoryCode, products)
	}
	return products, nil
}

// GetDataBundle returns the data bundles for productCode, optionally
// filtered to a single providerCode.
func (s *ProductServiceImpl) GetDataBundle(ctx context.Context, productCode, providerCode string) ([]domain.DataPackage, error) {
	if s.cache != nil {
		if bundles, ok := s.cache.GetDataBundles(ctx, productCode, providerCode); ok {
			return bundles, nil
		}
	}

	bundles, err := s.productRepo.ListDataBundles(ctx, productCode, providerCode)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list data bundles: %w", err))
	}
	if len(bundles) == 0 {
		return nil, apperror.ErrNoDataFound("data bundles")
	}
	if s.cache != nil {
		s.cache.SetDataBundles(ctx, productCode, providerCode, bundles)
	}
	return bundles, nil
}

var _ ports.ProductService = (*ProductServiceImpl)(nil)
