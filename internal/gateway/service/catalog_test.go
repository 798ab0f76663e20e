package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/casadometal/vitrine/internal/gateway/domain"
	"github.com/casadometal/vitrine/internal/gateway/service"
	"github.com/stretchr/testify/require"
)

type fakeCatalogUpstream struct {
	products   []domain.Product
	bySlug     map[string]*domain.Product
	categories []domain.Category
	err        error
}

func (f *fakeCatalogUpstream) Products(ctx context.Context) ([]domain.Product, error) {
	return f.products, f.err
}

func (f *fakeCatalogUpstream) ProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.bySlug[slug], nil
}

func (f *fakeCatalogUpstream) Categories(ctx context.Context) ([]domain.Category, error) {
	return f.categories, f.err
}

func testProducts() []domain.Product {
	return []domain.Product{
		{ID: "1", Slug: "portao-basculante", Name: "Portão Basculante", Price: 2500, Categories: []string{"portoes"}},
		{ID: "2", Slug: "grade-janela", Name: "Grade de Janela", Price: 450, Categories: []string{"grades"}},
		{ID: "3", Slug: "corrimao-inox", Name: "Corrimão Inox", Price: 1200, Categories: []string{"corrimaos"}},
	}
}

func TestListProductsAppliesFilter(t *testing.T) {
	svc := &service.CatalogService{Upstream: &fakeCatalogUpstream{products: testProducts()}}

	t.Run("no filter returns everything", func(t *testing.T) {
		got, err := svc.ListProducts(context.Background(), domain.ProductFilter{})
		require.NoError(t, err)
		require.Len(t, got, 3)
	})

	t.Run("search narrows by name", func(t *testing.T) {
		got, err := svc.ListProducts(context.Background(), domain.ProductFilter{Search: "grade"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, "grade-janela", got[0].Slug)
	})

	t.Run("category and price range combine", func(t *testing.T) {
		got, err := svc.ListProducts(context.Background(), domain.ProductFilter{
			Category: "portoes",
			MinPrice: 1000,
			MaxPrice: 3000,
		})
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, "portao-basculante", got[0].Slug)
	})
}

func TestListProductsUpstreamError(t *testing.T) {
	upErr := errors.New("upstream: transport: timeout")
	svc := &service.CatalogService{Upstream: &fakeCatalogUpstream{err: upErr}}

	_, err := svc.ListProducts(context.Background(), domain.ProductFilter{})
	require.ErrorIs(t, err, upErr)
}

func TestGetProduct(t *testing.T) {
	p := testProducts()[0]
	up := &fakeCatalogUpstream{bySlug: map[string]*domain.Product{p.Slug: &p}}
	svc := &service.CatalogService{Upstream: up}

	got, err := svc.GetProduct(context.Background(), "portao-basculante")
	require.NoError(t, err)
	require.Equal(t, "Portão Basculante", got.Name)

	_, err = svc.GetProduct(context.Background(), "nao-existe")
	require.ErrorIs(t, err, service.ErrProductNotFound)
}

func TestCategories(t *testing.T) {
	up := &fakeCatalogUpstream{categories: []domain.Category{{Slug: "portoes", Name: "Portões", Count: 12}}}
	svc := &service.CatalogService{Upstream: up}

	got, err := svc.Categories(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "portoes", got[0].Slug)
}
