package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/casadometal/vitrine/internal/gateway/service"
	"github.com/casadometal/vitrine/pkg/httpx"
	"github.com/casadometal/vitrine/pkg/shopsdk"
	"github.com/casadometal/vitrine/pkg/slogx"
)

// HomeContentHandler serves GET and PUT /api/admin/home. The route guard has
// already established a valid session; the PUT additionally forwards the
// access token so the upstream can enforce edit permission itself.
type HomeContentHandler struct {
	ContentService *service.ContentService
}

// HandleGet godoc
//
//	@Summary		Read home-page content
//	@Description	Reads the editable home-page block for the admin console.
//	@Tags			Admin
//	@Produce		json
//	@Success		200	{object}	shopsdk.HomeContentResponse	"content"
//	@Failure		401	{object}	shopsdk.APIError			"no valid session"
//	@Failure		502	{object}	shopsdk.APIError			"upstream unreachable"
//	@Router			/api/admin/home [get].
func (h *HomeContentHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	content, err := h.ContentService.HomeContent(ctx)
	if err != nil {
		log.Error("home content read failed", "err", err)
		shopsdk.ErrUpstreamUnavailable.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, shopsdk.HomeContentResponse{Content: contentToWire(content)})
}

// HandlePut godoc
//
//	@Summary		Overwrite home-page content
//	@Description	Replaces the editable home-page block as a unit. The hero title is required.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			content	body		shopsdk.HomeContentResponse	true	"New content block"
//	@Success		200		{object}	shopsdk.HomeContentResponse	"content as stored"
//	@Failure		400		{object}	shopsdk.APIError			"invalid content"
//	@Failure		401		{object}	shopsdk.APIError			"no valid session"
//	@Failure		502		{object}	shopsdk.APIError			"upstream unreachable"
//	@Router			/api/admin/home [put].
func (h *HomeContentHandler) HandlePut(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req shopsdk.HomeContentResponse
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		shopsdk.ErrInvalidBody.WriteError(w)
		return
	}

	content := contentFromWire(req.Content)
	if err := h.ContentService.UpdateHomeContent(ctx, AccessTokenFromContext(ctx), content); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidContent):
			shopsdk.NewAPIError(http.StatusBadRequest, shopsdk.ErrorCodeInvalidRequest,
				"o título principal é obrigatório").WriteError(w)
		default:
			log.Error("home content update failed", "err", err)
			shopsdk.ErrUpstreamUnavailable.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, req)
}

// AdminProductsHandler serves GET /api/admin/products, the listing behind
// the admin console's product table. It accepts the same filter params as
// the public catalog listing.
type AdminProductsHandler struct {
	CatalogService *service.CatalogService
}

// ServeHTTP godoc
//
//	@Summary		List products (admin)
//	@Description	Lists the catalog for the admin console, narrowed by the same search, category
//	@Description	and price-range params as the public listing.
//	@Tags			Admin
//	@Produce		json
//	@Param			search		query		string	false	"Substring to match"
//	@Param			category	query		string	false	"Category slug"
//	@Param			minPrice	query		number	false	"Minimum price"
//	@Param			maxPrice	query		number	false	"Maximum price"
//	@Success		200			{object}	shopsdk.ProductsResponse	"products"
//	@Failure		401			{object}	shopsdk.APIError			"no valid session"
//	@Failure		502			{object}	shopsdk.APIError			"upstream unreachable"
//	@Router			/api/admin/products [get].
func (h *AdminProductsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	products, err := h.CatalogService.ListProducts(ctx, productFilterFromQuery(r))
	if err != nil {
		log.Error("admin product listing failed", "err", err)
		shopsdk.ErrUpstreamUnavailable.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, shopsdk.ProductsResponse{Products: productsToWire(products)})
}
