package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/casadometal/vitrine/internal/gateway/domain"
	"github.com/casadometal/vitrine/internal/gateway/service"
	"github.com/casadometal/vitrine/pkg/httpx"
	"github.com/casadometal/vitrine/pkg/shopsdk"
	"github.com/casadometal/vitrine/pkg/slogx"
)

// ProductsHandler serves GET /api/products and GET /api/products/{slug}.
type ProductsHandler struct {
	CatalogService *service.CatalogService
}

// HandleList godoc
//
//	@Summary		List products
//	@Description	Lists the catalog, optionally narrowed by a case-insensitive substring search over
//	@Description	name and description, a category slug, and a price range.
//	@Tags			Catalog
//	@Produce		json
//	@Param			search		query		string	false	"Substring to match"
//	@Param			category	query		string	false	"Category slug"
//	@Param			minPrice	query		number	false	"Minimum price"
//	@Param			maxPrice	query		number	false	"Maximum price"
//	@Success		200			{object}	shopsdk.ProductsResponse	"products"
//	@Failure		502			{object}	shopsdk.APIError			"upstream unreachable"
//	@Router			/api/products [get].
func (h *ProductsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	products, err := h.CatalogService.ListProducts(ctx, productFilterFromQuery(r))
	if err != nil {
		log.Error("product listing failed", "err", err)
		shopsdk.ErrUpstreamUnavailable.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, shopsdk.ProductsResponse{Products: productsToWire(products)})
}

// HandleGet godoc
//
//	@Summary		Get product
//	@Description	Fetches one product by slug.
//	@Tags			Catalog
//	@Produce		json
//	@Param			slug	path		string	true	"Product slug"
//	@Success		200		{object}	shopsdk.ProductResponse	"product"
//	@Failure		404		{object}	shopsdk.APIError		"unknown slug"
//	@Failure		502		{object}	shopsdk.APIError		"upstream unreachable"
//	@Router			/api/products/{slug} [get].
func (h *ProductsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	product, err := h.CatalogService.GetProduct(ctx, r.PathValue("slug"))
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			shopsdk.ErrNotFound.WriteError(w)
			return
		}
		log.Error("product lookup failed", "err", err)
		shopsdk.ErrUpstreamUnavailable.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, shopsdk.ProductResponse{Product: productToWire(product)})
}

// CategoriesHandler serves GET /api/categories.
type CategoriesHandler struct {
	CatalogService *service.CatalogService
}

// ServeHTTP godoc
//
//	@Summary		List categories
//	@Description	Lists all product categories with their product counts.
//	@Tags			Catalog
//	@Produce		json
//	@Success		200	{object}	shopsdk.CategoriesResponse	"categories"
//	@Failure		502	{object}	shopsdk.APIError			"upstream unreachable"
//	@Router			/api/categories [get].
func (h *CategoriesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	categories, err := h.CatalogService.Categories(ctx)
	if err != nil {
		log.Error("category listing failed", "err", err)
		shopsdk.ErrUpstreamUnavailable.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, shopsdk.CategoriesResponse{Categories: categoriesToWire(categories)})
}

// productFilterFromQuery reads the shared catalog filter params. Both the
// public listing and the admin product table accept the same set.
func productFilterFromQuery(r *http.Request) domain.ProductFilter {
	return domain.ProductFilter{
		Search:   r.URL.Query().Get("search"),
		Category: r.URL.Query().Get("category"),
		MinPrice: parsePriceParam(r.URL.Query().Get("minPrice")),
		MaxPrice: parsePriceParam(r.URL.Query().Get("maxPrice")),
	}
}

// parsePriceParam is forgiving: a missing or malformed price query param
// means "no constraint", never an error.
func parsePriceParam(raw string) float64 {
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
