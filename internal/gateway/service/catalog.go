package service

import (
	"context"
	"errors"

	"github.com/casadometal/vitrine/internal/gateway/domain"
)

var ErrProductNotFound = errors.New("product_not_found")

// CatalogUpstream is the slice of the upstream client the catalog needs.
type CatalogUpstream interface {
	Products(ctx context.Context) ([]domain.Product, error)
	ProductBySlug(ctx context.Context, slug string) (*domain.Product, error)
	Categories(ctx context.Context) ([]domain.Category, error)
}

// CatalogService serves product listings. Search is an in-process substring
// and price filter over the upstream catalog, intentionally nothing more.
type CatalogService struct {
	Upstream CatalogUpstream
}

// ListProducts returns the catalog narrowed by the filter.
func (s *CatalogService) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	products, err := s.Upstream.Products(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if filter.Matches(p) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// GetProduct returns one product by slug.
func (s *CatalogService) GetProduct(ctx context.Context, slug string) (domain.Product, error) {
	p, err := s.Upstream.ProductBySlug(ctx, slug)
	if err != nil {
		return domain.Product{}, err
	}
	if p == nil {
		return domain.Product{}, ErrProductNotFound
	}
	return *p, nil
}

// Categories returns all product categories.
func (s *CatalogService) Categories(ctx context.Context) ([]domain.Category, error) {
	return s.Upstream.Categories(ctx)
}
