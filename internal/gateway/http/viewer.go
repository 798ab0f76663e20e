package http

import (
	"net/http"

	"github.com/casadometal/vitrine/internal/gateway/service"
	"github.com/casadometal/vitrine/pkg/httpx"
	"github.com/casadometal/vitrine/pkg/shopsdk"
)

// ViewerHandler serves GET /api/auth/me.
type ViewerHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Current user
//	@Description	Resolves the token cookie against the upstream viewer query. Never refreshes: an expired
//	@Description	token answers 401 with a null user and the client decides whether to refresh.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	shopsdk.ViewerResponse	"user"
//	@Failure		401	{object}	shopsdk.ViewerResponse	"user is null"
//	@Router			/api/auth/me [get].
func (h *ViewerHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	viewer, err := h.AuthService.Viewer(r.Context(), cookieValue(r, accessCookieName))
	if err != nil {
		httpx.WriteJSON(w, http.StatusUnauthorized, shopsdk.ViewerResponse{User: nil})
		return
	}

	user := viewerToUser(viewer)
	httpx.WriteJSON(w, http.StatusOK, shopsdk.ViewerResponse{User: &user})
}
